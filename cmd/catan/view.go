package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkravets/tui-catan/internal/platform/tui"
	"github.com/mkravets/tui-catan/internal/render"
)

var (
	flagViewBoard string
	flagViewSaved string
	flagViewTheme string
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Interactive board viewer",
	Long: `Open the board in an interactive viewer.

Controls:
  Arrows/hjkl  - Move the robber
  ?            - Toggle help
  Q/Esc        - Quit

Examples:
  catan view
  catan view --board ./my-board.yaml`,
	Run: runView,
}

func init() {
	viewCmd.Flags().StringVar(&flagViewBoard, "board", "", "Path to a board layout YAML")
	viewCmd.Flags().StringVar(&flagViewSaved, "saved", "", "Name of a saved board layout")
	viewCmd.Flags().StringVar(&flagViewTheme, "theme", "", "Path to a theme YAML")
}

func runView(cmd *cobra.Command, args []string) {
	b, players, err := loadBoard(flagViewBoard, flagViewSaved)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts, err := rendererOptions(flagViewTheme, players)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The canvas has a fixed footprint; warn early instead of letting the
	// drawing wrap mid-row.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < render.CanvasCols || h < render.CanvasRows+3 {
			fmt.Fprintf(os.Stderr, "Warning: terminal %dx%d is smaller than the %dx%d board\n",
				w, h, render.CanvasCols, render.CanvasRows)
		}
	}

	model := tui.NewViewerModel(b, render.New(opts))
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}
