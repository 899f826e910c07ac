package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-plinko/internal/games/plinko"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List board styles",
	Long:  `Shows the board styles with their size, peg field and gate values.`,
	Args:  cobra.NoArgs,
	Run:   runStyles,
}

func runStyles(_ *cobra.Command, _ []string) {
	fmt.Println("Board styles:")
	fmt.Println()
	fmt.Printf("  %-8s  %-8s  %-5s  %-6s  %-24s  %s\n", "ID", "Size", "Pegs", "Reset", "Gates", "Title")
	fmt.Printf("  %-8s  %-8s  %-5s  %-6s  %-24s  %s\n", "--", "----", "----", "-----", "-----", "-----")

	for _, s := range plinko.Styles() {
		p := s.Preset()
		b := plinko.Generate(s)

		values := make([]string, len(b.Gates))
		for i, g := range b.Gates {
			values[i] = fmt.Sprint(g.Value)
		}
		reset := "now"
		if !p.Reset.Immediate() {
			reset = p.Reset.Delay.String()
		}

		fmt.Printf("  %-8s  %-8s  %-5d  %-6s  %-24s  %s\n",
			s, fmt.Sprintf("%gx%g", p.Width, p.Height), len(b.Pegs), reset, strings.Join(values, " "), p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'plinko play --style <id>' to play a style.")
}
