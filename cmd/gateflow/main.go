package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gateflow-xyz/go-gateflow/gate"
	"github.com/gateflow-xyz/go-gateflow/recipe"
	"github.com/gateflow-xyz/go-gateflow/token"
)

var rootCmd = &cobra.Command{
	Use:   "gateflow",
	Short: "gateflow - gated recipe flows",
	Long: `Parse, resolve, and inspect gated recipe flows.

A recipe is a sequence of sigil-tagged tokens (* ingredient, = action,
/ combination, , modifier, ; annotation) that can branch into bracketed
alternatives. Each alternative carries a gate over numbered slots, and a
stack of slot choices picks one route through the nesting, outermost
choice first.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadRecipe reads a recipe file and, when given, its label table.
func loadRecipe(path, labelsPath string) (*recipe.Recipe, error) {
	r, err := recipe.Load(path)
	if err != nil {
		return nil, err
	}
	if labelsPath != "" {
		labels, err := recipe.LoadLabels(labelsPath)
		if err != nil {
			return nil, err
		}
		r.Labels = labels
	}
	return r, nil
}

// parseSlots parses a comma-separated choice stack, outermost first.
func parseSlots(s string) ([]gate.Slot, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	slots := make([]gate.Slot, len(parts))
	for i, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("bad slot %q: %w", part, err)
		}
		slots[i] = gate.Slot(n)
	}
	return slots, nil
}

func renderWalk(w []token.Token) string {
	parts := make([]string, len(w))
	for i, tok := range w {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}

func describeSlots(slots []gate.Slot, labels recipe.Labels) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = labels.Name(s)
	}
	return strings.Join(parts, ", ")
}
