package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkravets/tui-catan/internal/board"
	"github.com/mkravets/tui-catan/internal/boardfile"
	"github.com/mkravets/tui-catan/internal/storage"
)

var flagSaveBoard string

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "Manage saved board layouts",
	Long:  `List, save and delete board layouts in the boards database.`,
}

var boardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved board layouts",
	Run:   runBoardsList,
}

var boardsSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a board layout under a name",
	Long: `Save a layout into the boards database. With --board, the given
YAML file is saved; without it, the built-in beginner board is saved.

Examples:
  catan boards save classic
  catan boards save island --board ./island.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runBoardsSave,
}

var boardsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved board layout",
	Args:  cobra.ExactArgs(1),
	Run:   runBoardsDelete,
}

func init() {
	boardsSaveCmd.Flags().StringVar(&flagSaveBoard, "board", "", "Path to a board layout YAML")

	boardsCmd.AddCommand(boardsListCmd)
	boardsCmd.AddCommand(boardsSaveCmd)
	boardsCmd.AddCommand(boardsDeleteCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening boards database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runBoardsList(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	entries, err := store.ListBoards()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No saved boards.")
		return
	}

	fmt.Println("Saved boards:")
	fmt.Println()
	for _, e := range entries {
		fmt.Printf("  %-20s %s\n", e.Name, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Println("Run 'catan render --saved <name>' to render one.")
}

func runBoardsSave(cmd *cobra.Command, args []string) {
	name := args[0]

	var layout []byte
	if flagSaveBoard != "" {
		f, err := boardfile.Load(flagSaveBoard)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// Round-trip through ToBoard so a broken layout is rejected at
		// save time, not at render time.
		if _, _, err := f.ToBoard(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		layout, err = f.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		f := boardfile.FromBoard(board.BeginnerBoard())
		var err error
		layout, err = f.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	store := openStore()
	defer store.Close()

	if err := store.SaveBoard(name, string(layout)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved board %q.\n", name)
}

func runBoardsDelete(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if err := store.DeleteBoard(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted board %q.\n", args[0])
}
