package main

import (
	"fmt"
	"time"

	"github.com/jmorales/pizarra/kanban"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the full board, column by column",
	Args:  cobra.NoArgs,
	RunE:  runBoard,
}

func init() {
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	now := time.Now()
	prefixLengths := store.IDIndex().PrefixLengths()
	for i, col := range kanban.ValidColumns() {
		if i > 0 {
			fmt.Println()
		}
		tasks := store.OrderedTasks(col, now)
		fmt.Printf("=== %s (%s) ===\n", col.Title(), taskCount(len(tasks)))
		if len(tasks) == 0 {
			continue
		}
		fmt.Print(formatTaskTable(tasks, prefixLengths, now))
	}
	return nil
}
