package graph

import (
	"fmt"

	"github.com/gateflow-xyz/go-gateflow/flow"
	"github.com/gateflow-xyz/go-gateflow/gate"
	"github.com/gateflow-xyz/go-gateflow/token"
)

// Walks resolves the graph against a choice stack and returns every walk
// from Entry to Exit, in the same order the source flow yields them.
//
// The gate nesting depth along a path doubles as the cursor into choices:
// crossing an Open hop reads choices[depth] and descends, crossing a
// Close hop ascends. Splits that share a nesting level therefore share
// one choice, exactly as in flow walk resolution, and the same stack
// errors apply at the boundaries.
func (g *Graph) Walks(choices []gate.Slot) ([][]token.Token, error) {
	walks, consumed, err := g.walk(g.Entry, choices, 0)
	if err != nil {
		return nil, err
	}
	if consumed < len(choices) {
		return nil, &flow.LeftoverStackError{Leftover: append([]gate.Slot(nil), choices[consumed:]...)}
	}
	return walks, nil
}

func (g *Graph) walk(n NodeID, choices []gate.Slot, depth int) ([][]token.Token, int, error) {
	if n == g.Exit {
		return make([][]token.Token, 1), depth, nil
	}
	edges := g.out[n]
	if len(edges) == 0 {
		return nil, depth, nil
	}
	consumed := depth

	if g.Edges[edges[0]].Hop.Open != nil {
		// Split junction: every out-edge opens an alternative gate.
		if depth >= len(choices) {
			return nil, consumed, fmt.Errorf("%w: split at level %d, %d choices supplied",
				flow.ErrEmptyStack, depth, len(choices))
		}
		slot := choices[depth]
		consumed = depth + 1
		var walks [][]token.Token
		for _, ei := range edges {
			e := g.Edges[ei]
			if !e.Hop.Open.AllowsSlot(slot) {
				continue
			}
			d := depth + 1
			if e.Hop.Close != nil {
				d--
			}
			sub, subConsumed, err := g.walk(e.Dst, choices, d)
			if err != nil {
				return nil, consumed, err
			}
			if subConsumed > consumed {
				consumed = subConsumed
			}
			walks = append(walks, prependTokens(e.Tokens, sub)...)
		}
		return walks, consumed, nil
	}

	// Run or close edge: exactly one way forward.
	e := g.Edges[edges[0]]
	d := depth
	if e.Hop.Close != nil {
		d--
	}
	sub, subConsumed, err := g.walk(e.Dst, choices, d)
	if err != nil {
		return nil, consumed, err
	}
	if subConsumed > consumed {
		consumed = subConsumed
	}
	return prependTokens(e.Tokens, sub), consumed, nil
}

// prependTokens prefixes every walk with the edge's tokens, copying so
// walks never share backing arrays.
func prependTokens(prefix []token.Token, walks [][]token.Token) [][]token.Token {
	out := make([][]token.Token, 0, len(walks))
	for _, w := range walks {
		merged := make([]token.Token, 0, len(prefix)+len(w))
		merged = append(merged, prefix...)
		merged = append(merged, w...)
		out = append(out, merged)
	}
	return out
}
