package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gateflow-xyz/go-gateflow/flow"
	"github.com/gateflow-xyz/go-gateflow/gate"
	"github.com/gateflow-xyz/go-gateflow/graph"
)

var (
	slotsFile   string
	slotsLabels string
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List the slots a recipe's gates reference",
	Long: `List every slot the recipe's gates mention, with labels when a
table is given, and survey the walk variants each slot produces.

Examples:
  gateflow slots -f breakfast.gf
  gateflow slots -f breakfast.gf --labels labels.yaml`,
	Run: runSlots,
}

func init() {
	slotsCmd.Flags().StringVarP(&slotsFile, "file", "f", "", "Recipe file to examine")
	slotsCmd.Flags().StringVar(&slotsLabels, "labels", "", "Slot label table (YAML)")
	_ = slotsCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(slotsCmd)
}

func runSlots(cmd *cobra.Command, args []string) {
	r, err := loadRecipe(slotsFile, slotsLabels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	used := referencedSlots(r.Flow)
	fmt.Printf("Recipe: %s\n", r.Title)
	if len(used) == 0 {
		fmt.Println("Slots: none")
		return
	}

	names := make([]string, len(used))
	for i, s := range used {
		names[i] = strconv.Itoa(int(s))
		if name, err := r.Labels.Lookup(s); err == nil {
			names[i] = fmt.Sprintf("%d (%s)", s, name)
		}
	}
	fmt.Printf("Slots: %s\n\n", strings.Join(names, ", "))

	summary, err := graph.Survey(r.Flow, used)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	summary.Print()
}

// referencedSlots unions the slot sets of every gate in the tree, in
// ascending order.
func referencedSlots(f *flow.Flow) []gate.Slot {
	return collectSlots(f, gate.SlotSet{}).Slots()
}

func collectSlots(f *flow.Flow, acc gate.SlotSet) gate.SlotSet {
	if f == nil {
		return acc
	}
	for _, it := range f.Items {
		sp, ok := it.(flow.SplitItem)
		if !ok {
			continue
		}
		for _, alt := range sp.Splits.Splits() {
			acc = acc.Union(alt.Gate.Slots())
			acc = collectSlots(alt.Flow, acc)
		}
	}
	return acc
}
