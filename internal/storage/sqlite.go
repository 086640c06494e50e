// Package storage provides SQLite-based persistence for named board
// layouts. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when no layout is saved under the requested name.
var ErrNotFound = errors.New("storage: board not found")

// Store manages the SQLite database connection for layout persistence.
type Store struct {
	db *sql.DB
}

// BoardEntry is one saved layout record. Layout holds the YAML document
// produced by the boardfile package.
type BoardEntry struct {
	ID        int64
	Name      string
	Layout    string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS boards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			layout TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_boards_name ON boards(name);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveBoard stores a layout under the given name, replacing any previous
// layout saved under that name.
func (s *Store) SaveBoard(name, layout string) error {
	_, err := s.db.Exec(
		`INSERT INTO boards (name, layout) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET layout = excluded.layout`,
		name, layout,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save board %q: %w", name, err)
	}
	return nil
}

// LoadBoard returns the layout saved under the given name.
func (s *Store) LoadBoard(name string) (string, error) {
	var layout string
	err := s.db.QueryRow("SELECT layout FROM boards WHERE name = ?", name).Scan(&layout)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot load board %q: %w", name, err)
	}
	return layout, nil
}

// ListBoards returns all saved layouts, newest first.
func (s *Store) ListBoards() ([]BoardEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, layout, created_at
		 FROM boards
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query boards: %w", err)
	}
	defer rows.Close()

	var entries []BoardEntry
	for rows.Next() {
		var e BoardEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Layout, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteBoard removes the layout saved under the given name.
func (s *Store) DeleteBoard(name string) error {
	res, err := s.db.Exec("DELETE FROM boards WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete board %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
