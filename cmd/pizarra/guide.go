package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/jmorales/pizarra/internal/markdown"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

//go:embed guide.md
var guideText string

const guideFallbackWidth = 80

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the user guide",
	Args:  cobra.NoArgs,
	RunE:  runGuide,
}

func init() {
	rootCmd.AddCommand(guideCmd)
}

func runGuide(cmd *cobra.Command, args []string) error {
	width := guideFallbackWidth
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 {
			width = cols
		}
	} else {
		// Plain wrap for pipes; glamour styling is wasted on them.
		fmt.Println(wordwrap.String(guideText, width))
		return nil
	}

	rendered := markdown.SafeRender(width, 0, []byte(guideText))
	if len(rendered) == 0 {
		return nil
	}
	fmt.Println(string(rendered))
	return nil
}
