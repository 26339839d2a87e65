package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gateflow-xyz/go-gateflow/graph"
)

var (
	graphFile string
	graphOut  string
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Render a recipe's flow graph",
	Long: `Lower a recipe's flow into its edge graph and render it as
Graphviz DOT, or as SVG when the output file ends in .svg. Token runs
label the edges; gated alternatives are drawn dashed with their gate
markers.

Examples:
  gateflow graph -f breakfast.gf
  gateflow graph -f breakfast.gf -o breakfast.dot
  gateflow graph -f breakfast.gf -o breakfast.svg`,
	Run: runGraph,
}

func init() {
	graphCmd.Flags().StringVarP(&graphFile, "file", "f", "", "Recipe file to render")
	graphCmd.Flags().StringVarP(&graphOut, "output", "o", "", "Output file (default stdout)")
	_ = graphCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) {
	r, err := loadRecipe(graphFile, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	g := graph.Build(r.Flow)

	if graphOut == "" {
		if err := graph.WriteDOT(os.Stdout, g); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	f, err := os.Create(graphOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	write := graph.WriteDOT
	if strings.EqualFold(filepath.Ext(graphOut), ".svg") {
		write = graph.WriteSVG
	}
	if err := write(f, g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", graphOut)
}
