// Package graph lowers flows into an edge-first graph form for rendering
// and variant analysis. Linear token runs become single edges; every split
// fans out between two junction nodes, one edge set per alternative, with
// gate hops marking entry into and exit from the gated region.
package graph

import (
	"github.com/gateflow-xyz/go-gateflow/flow"
	"github.com/gateflow-xyz/go-gateflow/gate"
	"github.com/gateflow-xyz/go-gateflow/token"
)

// NodeID identifies a junction in the lowered graph.
type NodeID int

// Hop records the gate crossed along an edge: Open when the edge enters a
// gated alternative, Close when it leaves one. A short alternative can
// open and close on the same edge.
type Hop struct {
	Open  *gate.Gate
	Close *gate.Gate
}

// Edge is one step of the lowered graph: the tokens passed on the way
// from Src to Dst, plus any gate hops.
type Edge struct {
	ID     int
	Src    NodeID
	Dst    NodeID
	Tokens []token.Token
	Hop    Hop
}

// Graph is a lowered flow: a DAG from Entry to Exit whose out-edges are
// stored in the flow's canonical order.
type Graph struct {
	Entry NodeID
	Exit  NodeID
	Edges []Edge

	nodes int
	out   [][]int
}

// Build lowers a flow into its graph form.
func Build(f *flow.Flow) *Graph {
	g := &Graph{}
	g.Entry = g.newNode()
	g.Exit = g.lower(f, g.Entry)
	return g
}

// NumNodes returns the number of junction nodes.
func (g *Graph) NumNodes() int {
	return g.nodes
}

func (g *Graph) newNode() NodeID {
	id := NodeID(g.nodes)
	g.nodes++
	g.out = append(g.out, nil)
	return id
}

func (g *Graph) addEdge(src, dst NodeID, toks []token.Token, hop Hop) {
	id := len(g.Edges)
	g.Edges = append(g.Edges, Edge{ID: id, Src: src, Dst: dst, Tokens: toks, Hop: hop})
	g.out[src] = append(g.out[src], id)
}

// lower emits edges for one flow starting at src and returns the node the
// flow ends on.
func (g *Graph) lower(f *flow.Flow, src NodeID) NodeID {
	cur := src
	var run []token.Token
	if f == nil {
		return cur
	}
	for _, it := range f.Items {
		switch v := it.(type) {
		case flow.TokenItem:
			run = append(run, v.Token)
		case flow.SplitItem:
			if len(run) > 0 {
				n := g.newNode()
				g.addEdge(cur, n, run, Hop{})
				run = nil
				cur = n
			}
			dst := g.newNode()
			for _, sp := range v.Splits.Splits() {
				g.lowerAlt(sp, cur, dst)
			}
			cur = dst
		}
	}
	if len(run) > 0 {
		n := g.newNode()
		g.addEdge(cur, n, run, Hop{})
		cur = n
	}
	return cur
}

// lowerAlt emits the edges of one alternative between the split's
// junction nodes. A split-free alternative becomes a single edge that
// opens and closes its gate; anything deeper gets dedicated hop edges
// around its lowered body.
func (g *Graph) lowerAlt(sp flow.Split, src, dst NodeID) {
	gt := sp.Gate
	if sp.Flow.NumSplits() == 0 {
		g.addEdge(src, dst, linearTokens(sp.Flow), Hop{Open: &gt, Close: &gt})
		return
	}
	open := g.newNode()
	g.addEdge(src, open, nil, Hop{Open: &gt})
	end := g.lower(sp.Flow, open)
	g.addEdge(end, dst, nil, Hop{Close: &gt})
}

// linearTokens collects the tokens of a split-free flow.
func linearTokens(f *flow.Flow) []token.Token {
	if f == nil {
		return nil
	}
	var toks []token.Token
	for _, it := range f.Items {
		if v, ok := it.(flow.TokenItem); ok {
			toks = append(toks, v.Token)
		}
	}
	return toks
}
