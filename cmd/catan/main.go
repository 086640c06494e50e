// catan renders Settlers-of-Catan-style boards in the terminal.
//
// Usage:
//
//	catan render             - Render a board to stdout
//	catan view               - Interactive board viewer
//	catan serve              - Serve the viewer over SSH
//	catan boards             - Manage saved board layouts
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.catan/boards.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagDBPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catan",
	Short: "Catan-style hex boards in your terminal",
	Long: `catan models Settlers-of-Catan-style boards and draws them as
colorized text.

Available commands:
  render   - Render a board to stdout
  view     - Interactive viewer (move the robber around)
  serve    - Serve the viewer over SSH
  boards   - Manage saved board layouts

Examples:
  catan render
  catan render --board ./my-board.yaml --theme ./my-theme.yaml
  catan view
  catan serve --ssh :23235
  catan boards save classic --board ./my-board.yaml
  catan boards list`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.catan/boards.db", "Path to boards database")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(boardsCmd)
}
