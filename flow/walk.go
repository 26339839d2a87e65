package flow

import (
	"fmt"

	"github.com/gateflow-xyz/go-gateflow/gate"
	"github.com/gateflow-xyz/go-gateflow/token"
)

// Walks resolves the flow against one slot choice per nesting level and
// returns every token sequence the chosen slots permit. choices[0] selects
// at the outermost split level, choices[1] inside those splits, and so on.
// All splits at the same level share that level's single choice.
//
// A walk through a split keeps only the alternatives whose gate allows the
// level's slot; an alternative chain that blocks everywhere contributes no
// walks. Walks errors with ErrEmptyStack when a split lies deeper than the
// supplied choices reach, and with a LeftoverStackError when choices remain
// after the deepest level actually visited.
func (f *Flow) Walks(choices []gate.Slot) ([][]token.Token, error) {
	walks, consumed, err := findWalks(f, choices, 0)
	if err != nil {
		return nil, err
	}
	if consumed < len(choices) {
		leftover := append([]gate.Slot(nil), choices[consumed:]...)
		return nil, &LeftoverStackError{Leftover: leftover}
	}
	return walks, nil
}

// findWalks resolves one flow at one nesting level. depth is the index
// into choices for this level; the slice itself is never modified. The
// returned consumed value is the high-water index read by this flow and
// everything beneath it.
func findWalks(f *Flow, choices []gate.Slot, depth int) ([][]token.Token, int, error) {
	walks := make([][]token.Token, 1)
	consumed := depth
	if f == nil {
		return walks, consumed, nil
	}

	popped := false
	var slot gate.Slot
	for _, it := range f.Items {
		switch v := it.(type) {
		case TokenItem:
			for i := range walks {
				walks[i] = append(walks[i], v.Token)
			}
		case SplitItem:
			if !popped {
				if depth >= len(choices) {
					return nil, 0, fmt.Errorf("%w: split at level %d, %d choices supplied", ErrEmptyStack, depth, len(choices))
				}
				slot = choices[depth]
				popped = true
				consumed = depth + 1
			}

			var branches [][]token.Token
			for _, sp := range v.Splits.Splits() {
				if !sp.Gate.AllowsSlot(slot) {
					continue
				}
				sub, subConsumed, err := findWalks(sp.Flow, choices, depth+1)
				if err != nil {
					return nil, 0, err
				}
				if subConsumed > consumed {
					consumed = subConsumed
				}
				branches = append(branches, sub...)
			}

			next := make([][]token.Token, 0, len(walks)*len(branches))
			for _, prefix := range walks {
				for _, branch := range branches {
					w := make([]token.Token, 0, len(prefix)+len(branch))
					w = append(w, prefix...)
					w = append(w, branch...)
					next = append(next, w)
				}
			}
			walks = next
		}
	}
	return walks, consumed, nil
}
