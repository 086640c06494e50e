package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkravets/tui-catan/internal/board"
	"github.com/mkravets/tui-catan/internal/boardfile"
	"github.com/mkravets/tui-catan/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeBoard  string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the board viewer over SSH",
	Long: `Start an SSH server that gives each connection its own board viewer.

Each session gets a fresh copy of the board, so robber moves in one session
never show up in another.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.catan/host_key

Examples:
  catan serve                          # Listen on :23235 with auto-generated key
  catan serve --ssh :2222              # Listen on port 2222
  catan serve --board ./my-board.yaml  # Serve a custom layout

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeBoard, "board", "", "Path to a board layout YAML (default: beginner board)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	if flagServeBoard != "" {
		// Re-read the file per session so edits show up on reconnect.
		path := flagServeBoard
		cfg.NewBoard = func() (*board.Board, error) {
			f, err := boardfile.Load(path)
			if err != nil {
				return nil, err
			}
			b, _, err := f.ToBoard()
			return b, err
		}
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting catan SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
