package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered games",
	Long:  `Shows every game registered with the platform.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %-10s %s\n", maxIDLen, "ID", "Title", "Description")
	fmt.Fprintf(out, "  %-*s  %-10s %s\n", maxIDLen, "--", "-----", "-----------")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %-10s %s\n", maxIDLen, g.ID, g.Title, g.Description)
	}
}
