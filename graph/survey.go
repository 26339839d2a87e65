package graph

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gateflow-xyz/go-gateflow/flow"
	"github.com/gateflow-xyz/go-gateflow/gate"
	"github.com/gateflow-xyz/go-gateflow/token"
)

// Variant is one distinct token sequence a flow can resolve to, with the
// slots that produce it.
type Variant struct {
	Tokens []token.Token
	Slots  []gate.Slot
}

// Summary reports a variant survey over a slot range.
type Summary struct {
	NumSlots    int
	NumWalks    int
	NumVariants int
	Variants    []Variant
}

// Survey resolves the flow once per slot, holding the choice stack at
// that single slot, and groups the resulting walks into variants by
// token-sequence fingerprint. Variants appear in first-seen order.
func Survey(f *flow.Flow, universe []gate.Slot) (*Summary, error) {
	s := &Summary{NumSlots: len(universe)}
	index := make(map[[32]byte]int)
	for _, slot := range universe {
		walks, err := walksForSlot(f, slot)
		if err != nil {
			return nil, fmt.Errorf("graph: survey slot %d: %w", slot, err)
		}
		s.NumWalks += len(walks)
		for _, w := range walks {
			fp := flow.FromTokens(w...).Fingerprint()
			i, ok := index[fp]
			if !ok {
				i = len(s.Variants)
				index[fp] = i
				s.Variants = append(s.Variants, Variant{Tokens: w})
			}
			v := &s.Variants[i]
			if n := len(v.Slots); n == 0 || v.Slots[n-1] != slot {
				v.Slots = append(v.Slots, slot)
			}
		}
	}
	s.NumVariants = len(s.Variants)
	return s, nil
}

// walksForSlot resolves the flow with the slot repeated to full nesting
// depth. A branch shallower than the deepest nesting leaves choices
// unconsumed; the reported leftover tells us exactly how much to trim
// for the retry.
func walksForSlot(f *flow.Flow, slot gate.Slot) ([][]token.Token, error) {
	choices := make([]gate.Slot, f.Depth())
	for i := range choices {
		choices[i] = slot
	}
	walks, err := f.Walks(choices)
	var leftover *flow.LeftoverStackError
	if errors.As(err, &leftover) {
		return f.Walks(choices[:len(choices)-len(leftover.Leftover)])
	}
	return walks, err
}

// Print writes the survey to standard output.
func (s *Summary) Print() {
	fmt.Println("=== Variant Survey ===")
	fmt.Printf("Slots surveyed: %d\n", s.NumSlots)
	fmt.Printf("Total walks: %d\n", s.NumWalks)
	fmt.Printf("Distinct variants: %d\n", s.NumVariants)
	for _, v := range s.Variants {
		fmt.Printf("  slots %-12s %s\n", slotList(v.Slots), renderTokens(v.Tokens))
	}
}

func slotList(slots []gate.Slot) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = strconv.Itoa(int(s))
	}
	return strings.Join(parts, ",")
}
