package flow

import (
	"sort"
	"strings"

	"github.com/gateflow-xyz/go-gateflow/gate"
)

// Split is one gated alternative of a split: the sub-flow taken when the
// level's slot choice passes the gate.
type Split struct {
	Flow *Flow
	Gate gate.Gate
}

// NewSplit creates a gated alternative.
func NewSplit(f *Flow, g gate.Gate) Split {
	return Split{Flow: f, Gate: g}
}

// SplitSet is a normalized collection of gated alternatives. Construction
// through NewSplitSet guarantees the set invariants: the gates cover the
// whole slot universe, no gate is block-all, no two alternatives share a
// structurally identical sub-flow, and the order is canonical.
type SplitSet struct {
	splits []Split
}

// NewSplitSet normalizes the given alternatives into a set.
func NewSplitSet(splits ...Split) *SplitSet {
	return &SplitSet{splits: Normalize(splits)}
}

// Splits returns the alternatives in canonical order. The returned slice
// is the set's backing storage and must not be modified.
func (s *SplitSet) Splits() []Split {
	return s.splits
}

// Len returns the number of alternatives.
func (s *SplitSet) Len() int {
	return len(s.splits)
}

// UnionGate returns the union of all alternative gates. On a normalized
// set this is always allow-all.
func (s *SplitSet) UnionGate() gate.Gate {
	u := gate.BlockAll()
	for _, sp := range s.splits {
		u = u.Union(sp.Gate)
	}
	return u
}

// Clone returns a deep copy of the set.
func (s *SplitSet) Clone() *SplitSet {
	splits := make([]Split, len(s.splits))
	for i, sp := range s.splits {
		splits[i] = Split{Flow: sp.Flow.Clone(), Gate: sp.Gate}
	}
	return &SplitSet{splits: splits}
}

// Equal reports structural equality of two sets.
func (s *SplitSet) Equal(o *SplitSet) bool {
	if len(s.splits) != len(o.splits) {
		return false
	}
	for i, sp := range s.splits {
		if sp.Gate != o.splits[i].Gate || !sp.Flow.Equal(o.splits[i].Flow) {
			return false
		}
	}
	return true
}

// String renders the set as "[alt | alt]" with grammar gate markers:
// "#1,2" for allow gates, "#!0" for block gates, nothing for allow-all.
func (s *SplitSet) String() string {
	alts := make([]string, len(s.splits))
	for i, sp := range s.splits {
		marker := GateMarker(sp.Gate)
		body := sp.Flow.String()
		switch {
		case marker == "":
			alts[i] = body
		case body == "":
			alts[i] = marker
		default:
			alts[i] = marker + " " + body
		}
	}
	return "[" + strings.Join(alts, " | ") + "]"
}

// GateMarker renders a gate in source notation: nothing for allow-all,
// "#" plus slots for allow gates, "#!" plus slots for block gates.
func GateMarker(g gate.Gate) string {
	if g.IsAllowAll() {
		return ""
	}
	var b strings.Builder
	b.WriteByte('#')
	if g.Kind() == gate.KindBlock {
		b.WriteByte('!')
	}
	set := g.Slots().String()
	b.WriteString(set[1 : len(set)-1])
	return b.String()
}

// Normalize rewrites alternatives into canonical form. The result covers
// the slot universe: if the input gates union to less than allow-all, an
// empty escape alternative gated on the uncovered slots is added. Block-all
// alternatives are dropped, structurally identical sub-flows are coalesced
// by unioning their gates, and the survivors are sorted by sub-flow
// fingerprint with the gate as tiebreaker. Normalize is total and
// idempotent; an empty input yields the single alternative
// {empty flow, allow-all}.
func Normalize(splits []Split) []Split {
	union := gate.BlockAll()
	for _, sp := range splits {
		union = union.Union(sp.Gate)
	}

	kept := make([]Split, 0, len(splits)+1)
	kept = append(kept, splits...)
	if !union.IsAllowAll() {
		kept = append(kept, Split{Flow: New(), Gate: union.Invert()})
	}

	coalesced := make([]Split, 0, len(kept))
	index := make(map[[32]byte]int, len(kept))
	for _, sp := range kept {
		if sp.Gate.IsBlockAll() {
			continue
		}
		fp := sp.Flow.Fingerprint()
		if i, ok := index[fp]; ok {
			coalesced[i].Gate = coalesced[i].Gate.Union(sp.Gate)
			continue
		}
		index[fp] = len(coalesced)
		coalesced = append(coalesced, sp)
	}

	sort.Slice(coalesced, func(i, j int) bool {
		return compareSplits(coalesced[i], coalesced[j]) < 0
	})
	return coalesced
}

func compareSplits(a, b Split) int {
	afp, bfp := a.Flow.Fingerprint(), b.Flow.Fingerprint()
	if c := strings.Compare(string(afp[:]), string(bfp[:])); c != 0 {
		return c
	}
	if a.Gate.Kind() != b.Gate.Kind() {
		if a.Gate.Kind() < b.Gate.Kind() {
			return -1
		}
		return 1
	}
	return a.Gate.Slots().Compare(b.Gate.Slots())
}

// NormalizeTree rebuilds a flow with every nested split set re-normalized,
// leaves first. Flows built bottom-up through NewSplitSet are already
// normalized; NormalizeTree covers trees assembled by hand or decoded from
// external data.
func NormalizeTree(f *Flow) *Flow {
	if f == nil {
		return New()
	}
	items := make([]Item, 0, len(f.Items))
	for _, it := range f.Items {
		switch v := it.(type) {
		case TokenItem:
			items = append(items, v)
		case SplitItem:
			splits := make([]Split, 0, v.Splits.Len())
			for _, sp := range v.Splits.Splits() {
				splits = append(splits, Split{Flow: NormalizeTree(sp.Flow), Gate: sp.Gate})
			}
			items = append(items, SplitItem{Splits: NewSplitSet(splits...)})
		}
	}
	return New(items...)
}
