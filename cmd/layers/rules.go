package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-layers/internal/automata"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the layer rules",
	Long:  `Shows every layer of the sandbox with its glyph, rule and reset density.`,
	Args:  cobra.NoArgs,
	Run:   runRules,
}

func runRules(cmd *cobra.Command, args []string) {
	specs := automata.Classic(automata.DefaultDimension)

	// Calculate column widths
	maxRuleLen := 4 // "Rule" header
	for _, s := range specs {
		if len(s.Rule.String()) > maxRuleLen {
			maxRuleLen = len(s.Rule.String())
		}
	}

	fmt.Printf("Layers (%dx%d each):\n", automata.DefaultDimension, automata.DefaultDimension)
	fmt.Println()

	// Print header
	fmt.Printf("  %-5s  %-*s  %-7s  %s\n", "Glyph", maxRuleLen, "Rule", "Density", "Behaviour")
	fmt.Printf("  %-5s  %-*s  %-7s  %s\n", "-----", maxRuleLen, "----", "-------", "---------")

	// Print layers
	for _, s := range specs {
		density := fmt.Sprintf("%.1f%%", s.Seeding.Probability*100)
		if len(s.Seeding.Forced) > 0 {
			density = fmt.Sprintf("%d cell", len(s.Seeding.Forced))
		}
		fmt.Printf("  %-5c  %-*s  %-7s  %s\n", s.Glyph, maxRuleLen, s.Rule, density, s.Rule.Description())
	}

	fmt.Println()
	fmt.Println("Run 'layers' and press Enter to tick.")
}
