package graph

import (
	"fmt"
	"io"
	"strings"

	"github.com/gateflow-xyz/go-gateflow/flow"
	"github.com/gateflow-xyz/go-gateflow/token"
)

// WriteDOT renders the graph as Graphviz DOT, left to right, with token
// runs as edge labels and gate hops drawn in the source notation.
func WriteDOT(w io.Writer, g *Graph) error {
	var b strings.Builder
	b.WriteString("digraph gateflow {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=point, width=0.12];\n")
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=11, color=\"#666666\"];\n")
	fmt.Fprintf(&b, "  %d [shape=circle, width=0.25, label=\"\", xlabel=\"start\"];\n", g.Entry)
	fmt.Fprintf(&b, "  %d [shape=doublecircle, width=0.2, label=\"\", xlabel=\"end\"];\n", g.Exit)
	for _, e := range g.Edges {
		label := escapeLabel(edgeLabel(e))
		attrs := fmt.Sprintf("label=\"%s\"", label)
		if e.Hop.Open != nil || e.Hop.Close != nil {
			attrs += ", style=dashed"
		}
		fmt.Fprintf(&b, "  %d -> %d [%s];\n", e.Src, e.Dst, attrs)
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// edgeLabel renders an edge the way the source text would: token runs
// joined by spaces, gated alternatives bracketed with their gate marker.
func edgeLabel(e Edge) string {
	body := renderTokens(e.Tokens)
	switch {
	case e.Hop.Open != nil && e.Hop.Close != nil:
		marker := flow.GateMarker(*e.Hop.Open)
		if marker == "" {
			return "[" + body + "]"
		}
		if body == "" {
			return "[" + marker + "]"
		}
		return "[" + marker + " " + body + "]"
	case e.Hop.Open != nil:
		return "[" + flow.GateMarker(*e.Hop.Open)
	case e.Hop.Close != nil:
		return "]"
	default:
		return body
	}
}

func renderTokens(toks []token.Token) string {
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
