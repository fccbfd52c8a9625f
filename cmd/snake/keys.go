package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the controls",
	Long:  `Lists every key the game responds to.`,
	Run: func(cmd *cobra.Command, args []string) {
		printKeys(cmd.OutOrStdout())
	},
}

func printKeys(w io.Writer) {
	bindings := tui.Bindings()

	// Calculate column width
	maxKeyLen := 3 // "Key" header
	for _, b := range bindings {
		if len(b.Keys) > maxKeyLen {
			maxKeyLen = len(b.Keys)
		}
	}

	fmt.Fprintln(w, "Controls:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %s\n", maxKeyLen, "Key", "Action")
	fmt.Fprintf(w, "  %-*s  %s\n", maxKeyLen, "---", "------")

	for _, b := range bindings {
		fmt.Fprintf(w, "  %-*s  %s\n", maxKeyLen, b.Keys, b.Help)
	}
}
