package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkravets/tui-catan/internal/render"
)

var (
	flagRenderBoard string
	flagRenderSaved string
	flagRenderTheme string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a board to stdout",
	Long: `Render a board as colorized text and print it.

By default the built-in beginner board is rendered. Pass --board to render
a YAML layout file, or --saved to render a layout from the boards database.

Examples:
  catan render
  catan render --board ./my-board.yaml
  catan render --saved classic --theme ./my-theme.yaml`,
	Run: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&flagRenderBoard, "board", "", "Path to a board layout YAML")
	renderCmd.Flags().StringVar(&flagRenderSaved, "saved", "", "Name of a saved board layout")
	renderCmd.Flags().StringVar(&flagRenderTheme, "theme", "", "Path to a theme YAML")
}

func runRender(cmd *cobra.Command, args []string) {
	b, players, err := loadBoard(flagRenderBoard, flagRenderSaved)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts, err := rendererOptions(flagRenderTheme, players)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := render.New(opts).RenderBoard(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering board: %v\n", err)
		os.Exit(1)
	}
}
