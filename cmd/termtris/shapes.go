package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtris/internal/games/tetris"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print every piece in every rotation",
	Long: `Shows the seven pieces with their meta tag, color and rotation states
in clockwise order, starting from the spawn orientation.`,
	Args: cobra.NoArgs,
	Run:  runShapes,
}

func runShapes(cmd *cobra.Command, args []string) {
	printShapes(cmd.OutOrStdout())
}

// printShapes writes each piece's rotations side by side.
func printShapes(w io.Writer) {
	for i, k := range tetris.Kinds() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s  tag=%c  color=%s  rotations=%d\n", k, k.Tag(), k.Tag().Color(), k.Rotations())

		masks := make([][]string, k.Rotations())
		height := 0
		for r := range masks {
			masks[r] = strings.Split(strings.ReplaceAll(k.Mask(r).String(), " ", "."), "\n")
			height = max(height, len(masks[r]))
		}
		for y := range height {
			row := make([]string, len(masks))
			for r, m := range masks {
				row[r] = m[y]
			}
			fmt.Fprintf(w, "  %s\n", strings.Join(row, "  "))
		}
	}
}
