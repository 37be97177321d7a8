package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jmorales/pizarra/kanban"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the whole board state to a JSON snapshot",
	Long: `Export the whole board state to a JSON snapshot.

Without a file argument the snapshot is written to a timestamped file in the
working directory. Use "-" to write to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the whole board state from a JSON snapshot",
	Long: `Replace the whole board state from a JSON snapshot.

The snapshot is validated before anything is written; a rejected snapshot
leaves the current state untouched. This is a full replace, never a merge.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importYes bool

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, _, err := openKV()
	if err != nil {
		return err
	}

	now := time.Now()
	text, err := kanban.ExportSnapshot(store, now)
	if err != nil {
		return err
	}

	if len(args) > 0 && args[0] == "-" {
		fmt.Println(text)
		return nil
	}

	name := kanban.ExportFileName(now)
	if len(args) > 0 {
		name = args[0]
	}
	if err := os.WriteFile(name, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	fmt.Printf("Exported board to %s\n", name)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	items, err := kanban.ParseSnapshot(string(data))
	if err != nil {
		return err
	}

	board, err := openStore()
	if err != nil {
		return err
	}

	if !importYes && !confirmImport(os.Stdin, args[0]) {
		fmt.Println("Import cancelled.")
		return nil
	}

	if err := board.ImportReplaceAll(items); err != nil {
		return err
	}

	kpis := board.KPIs(time.Now())
	fmt.Printf("Imported board from %s (%s)\n", args[0], taskCount(kpis.WIP.Total+kpis.WIP.Done))
	return nil
}

// confirmImport asks before replacing the board. A non-terminal stdin skips
// the prompt, so piped invocations behave like --yes.
func confirmImport(stdin *os.File, name string) bool {
	if !term.IsTerminal(int(stdin.Fd())) {
		return true
	}

	fmt.Printf("Replace the entire board with the contents of %s? [y/N] ", name)
	answer, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
