package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes [letter...]",
	Short: "Print the shape catalog",
	Long: `Print every rotation of each tetromino as ASCII art.

Examples:
  tetris shapes
  tetris shapes T I`,
	RunE: runShapes,
}

func runShapes(cmd *cobra.Command, args []string) error {
	ids := tetris.Shapes()
	if len(args) > 0 {
		ids = ids[:0]
		for _, name := range args {
			id, err := tetris.ParseShapeID(name)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
	}

	out := cmd.OutOrStdout()
	for i, id := range ids {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s (%d rotations)\n", id, tetris.RotationCount(id))
		fmt.Fprint(out, formatRotations(id))
	}
	return nil
}

// formatRotations lays out every rotation of id side by side.
func formatRotations(id tetris.ShapeID) string {
	n := tetris.RotationCount(id)
	arts := make([][]string, n)
	for r := range n {
		arts[r] = tetris.RotationMask(id, r).Art()
	}

	var sb strings.Builder
	for row := range tetris.MaskSize {
		parts := make([]string, n)
		for r := range n {
			parts[r] = arts[r][row]
		}
		sb.WriteString("  ")
		sb.WriteString(strings.Join(parts, "   "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
