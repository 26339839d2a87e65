package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gateflow-xyz/go-gateflow/flow"
	"github.com/gateflow-xyz/go-gateflow/recipe"
)

var inspectFile string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show a recipe's structure and identity",
	Long: `Show a recipe's token and split counts, its content-derived
identifiers, and the normalized flow tree.

Examples:
  gateflow inspect -f breakfast.gf`,
	Run: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectFile, "file", "f", "", "Recipe file to inspect")
	_ = inspectCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) {
	r, err := recipe.Load(inspectFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recipe: %s\n", r.Title)
	fmt.Printf("Content ID: %s\n", r.FID())
	fmt.Printf("Document ID: %s\n", r.DocID())
	fmt.Printf("Tokens: %d\n", r.Flow.NumTokens())
	fmt.Printf("Splits: %d\n", r.Flow.NumSplits())
	fmt.Printf("Depth: %d\n", r.Flow.Depth())

	fmt.Println("\nNormalized flow:")
	printTree(r.Flow, "  ")
}

// printTree renders the flow with one token per line, bracketing each
// split and leading every alternative with its gate marker.
func printTree(f *flow.Flow, indent string) {
	if f == nil {
		return
	}
	for _, it := range f.Items {
		switch v := it.(type) {
		case flow.TokenItem:
			fmt.Printf("%s%s\n", indent, v.Token)
		case flow.SplitItem:
			for i, sp := range v.Splits.Splits() {
				lead := "|"
				if i == 0 {
					lead = "["
				}
				fmt.Printf("%s%s%s\n", indent, lead, flow.GateMarker(sp.Gate))
				printTree(sp.Flow, indent+"  ")
			}
			fmt.Printf("%s]\n", indent)
		}
	}
}
