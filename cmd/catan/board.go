package main

import (
	"fmt"

	"github.com/mkravets/tui-catan/internal/board"
	"github.com/mkravets/tui-catan/internal/boardfile"
	"github.com/mkravets/tui-catan/internal/render"
	"github.com/mkravets/tui-catan/internal/storage"
)

// loadBoard resolves the board selection flags shared by render and view:
// an explicit layout file wins, then a saved layout from the database, then
// the built-in beginner board.
func loadBoard(boardPath, savedName string) (*board.Board, map[string]*board.Player, error) {
	switch {
	case boardPath != "" && savedName != "":
		return nil, nil, fmt.Errorf("--board and --saved are mutually exclusive")

	case boardPath != "":
		f, err := boardfile.Load(boardPath)
		if err != nil {
			return nil, nil, err
		}
		return f.ToBoard()

	case savedName != "":
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return nil, nil, err
		}
		defer store.Close()
		layout, err := store.LoadBoard(savedName)
		if err != nil {
			return nil, nil, err
		}
		f, err := boardfile.Parse([]byte(layout))
		if err != nil {
			return nil, nil, err
		}
		return f.ToBoard()

	default:
		return board.BeginnerBoard(), map[string]*board.Player{}, nil
	}
}

// rendererOptions builds renderer options from an optional theme file.
func rendererOptions(themePath string, players map[string]*board.Player) (render.Options, error) {
	if themePath == "" {
		return render.Options{}, nil
	}
	theme, err := boardfile.LoadTheme(themePath)
	if err != nil {
		return render.Options{}, err
	}
	return theme.Options(players)
}
