package flow

import (
	"fmt"

	"github.com/gateflow-xyz/go-gateflow/gate"
	"github.com/gateflow-xyz/go-gateflow/token"
)

// WalkItemKind tags one entry of a linearized walk.
type WalkItemKind uint8

const (
	// WalkToken is a token passed through on the walk.
	WalkToken WalkItemKind = iota
	// WalkPush marks entry into a gated alternative.
	WalkPush
	// WalkPop marks exit from a gated alternative.
	WalkPop
)

// WalkItem is one entry of a linearized walk: a token, or a gate push/pop
// bracketing the alternative the walk took.
type WalkItem struct {
	Kind  WalkItemKind
	Token token.Token
	Gate  gate.Gate
}

// TokenStep wraps a token as a walk item.
func TokenStep(t token.Token) WalkItem {
	return WalkItem{Kind: WalkToken, Token: t}
}

// PushStep marks entry through a gate.
func PushStep(g gate.Gate) WalkItem {
	return WalkItem{Kind: WalkPush, Gate: g}
}

// PopStep marks exit through a gate.
func PopStep(g gate.Gate) WalkItem {
	return WalkItem{Kind: WalkPop, Gate: g}
}

func (it WalkItem) String() string {
	switch it.Kind {
	case WalkPush:
		return fmt.Sprintf("push(%v)", it.Gate)
	case WalkPop:
		return fmt.Sprintf("pop(%v)", it.Gate)
	default:
		return it.Token.String()
	}
}

// Linearize resolves the flow like Walks but keeps the structure visible:
// each returned sequence carries the walk's tokens in order, with the gate
// of every alternative taken bracketed by push and pop entries.
func Linearize(f *Flow, choices []gate.Slot) ([][]WalkItem, error) {
	seqs, consumed, err := findWalkItems(f, choices, 0)
	if err != nil {
		return nil, err
	}
	if consumed < len(choices) {
		leftover := append([]gate.Slot(nil), choices[consumed:]...)
		return nil, &LeftoverStackError{Leftover: leftover}
	}
	return seqs, nil
}

func findWalkItems(f *Flow, choices []gate.Slot, depth int) ([][]WalkItem, int, error) {
	seqs := make([][]WalkItem, 1)
	consumed := depth
	if f == nil {
		return seqs, consumed, nil
	}

	popped := false
	var slot gate.Slot
	for _, it := range f.Items {
		switch v := it.(type) {
		case TokenItem:
			for i := range seqs {
				seqs[i] = append(seqs[i], TokenStep(v.Token))
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

			var branches [][]WalkItem
			for _, sp := range v.Splits.Splits() {
				if !sp.Gate.AllowsSlot(slot) {
					continue
				}
				sub, subConsumed, err := findWalkItems(sp.Flow, choices, depth+1)
				if err != nil {
					return nil, 0, err
				}
				if subConsumed > consumed {
					consumed = subConsumed
				}
				for _, inner := range sub {
					branch := make([]WalkItem, 0, len(inner)+2)
					branch = append(branch, PushStep(sp.Gate))
					branch = append(branch, inner...)
					branch = append(branch, PopStep(sp.Gate))
					branches = append(branches, branch)
				}
			}

			next := make([][]WalkItem, 0, len(seqs)*len(branches))
			for _, prefix := range seqs {
				for _, branch := range branches {
					seq := make([]WalkItem, 0, len(prefix)+len(branch))
					seq = append(seq, prefix...)
					seq = append(seq, branch...)
					next = append(next, seq)
				}
			}
			seqs = next
		}
	}
	return seqs, consumed, nil
}

// ReplayWalkItems validates the gate-stack discipline of a linearized walk
// and returns its token sequence. Every pop must match the most recent
// unmatched push, and no gate may remain open at the end.
func ReplayWalkItems(seq []WalkItem) ([]token.Token, error) {
	var stack []gate.Gate
	var toks []token.Token
	for i, it := range seq {
		switch it.Kind {
		case WalkToken:
			toks = append(toks, it.Token)
		case WalkPush:
			stack = append(stack, it.Gate)
		case WalkPop:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: pop %v at item %d", ErrGateStackEmpty, it.Gate, i)
			}
			top := stack[len(stack)-1]
			if top != it.Gate {
				return nil, fmt.Errorf("%w: have %v, popped %v at item %d", ErrGateStackMismatch, top, it.Gate, i)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: %d still open", ErrGateStackLeftover, len(stack))
	}
	return toks, nil
}
