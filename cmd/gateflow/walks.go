package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gateflow-xyz/go-gateflow/process"
)

var (
	walksFile   string
	walksSlots  string
	walksLabels string
	walksSteps  bool
)

var walksCmd = &cobra.Command{
	Use:   "walks",
	Short: "Resolve a recipe against slot choices",
	Long: `Resolve a recipe's flow against a stack of slot choices and print
every walk it yields.

Choices are ordered outermost first: the first slot picks among the
top-level alternatives, the second among alternatives one level deeper,
and so on. Splits on the same nesting level share one choice.

Examples:
  gateflow walks -f breakfast.gf -s 0
  gateflow walks -f breakfast.gf -s 0,2 --labels labels.yaml
  gateflow walks -f breakfast.gf -s 1,3 --steps`,
	Run: runWalks,
}

func init() {
	walksCmd.Flags().StringVarP(&walksFile, "file", "f", "", "Recipe file to resolve")
	walksCmd.Flags().StringVarP(&walksSlots, "slots", "s", "", "Comma-separated slot choices, outermost first")
	walksCmd.Flags().StringVar(&walksLabels, "labels", "", "Slot label table (YAML)")
	walksCmd.Flags().BoolVar(&walksSteps, "steps", false, "Fold each walk into steps with attached modifiers")
	_ = walksCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(walksCmd)
}

func runWalks(cmd *cobra.Command, args []string) {
	r, err := loadRecipe(walksFile, walksLabels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	choices, err := parseSlots(walksSlots)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	walks, err := r.Flow.Walks(choices)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recipe: %s\n", r.Title)
	if len(choices) > 0 {
		fmt.Printf("Choices: %s\n", describeSlots(choices, r.Labels))
	}
	fmt.Printf("Walks: %d\n", len(walks))

	for i, w := range walks {
		if !walksSteps {
			fmt.Printf("\nWalk %d: %s\n", i+1, renderWalk(w))
			continue
		}
		steps, err := process.Fold(w)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWalk %d:\n", i+1)
		for _, st := range steps {
			fmt.Printf("  %s\n", st)
		}
	}
}
