package flow

import (
	"testing"

	"github.com/gateflow-xyz/go-gateflow/gate"
)

// gateFor finds the gate attached to the alternative whose sub-flow equals
// f, failing the test when no such alternative exists.
func gateFor(t *testing.T, s *SplitSet, f *Flow) gate.Gate {
	t.Helper()
	for _, sp := range s.Splits() {
		if sp.Flow.Equal(f) {
			return sp.Gate
		}
	}
	t.Fatalf("Expected an alternative with sub-flow %q", f)
	return gate.Gate{}
}

func checkNormalized(t *testing.T, s *SplitSet) {
	t.Helper()
	if !s.UnionGate().IsAllowAll() {
		t.Errorf("Expected gates to union to allow-all, got %v", s.UnionGate())
	}
	seen := make(map[[32]byte]bool)
	for _, sp := range s.Splits() {
		if sp.Gate.IsBlockAll() {
			t.Errorf("Expected no block-all gates, got one on %q", sp.Flow)
		}
		fp := sp.Flow.Fingerprint()
		if seen[fp] {
			t.Errorf("Expected distinct sub-flows, got duplicate %q", sp.Flow)
		}
		seen[fp] = true
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	s := NewSplitSet()
	if s.Len() != 1 {
		t.Fatalf("Expected 1 alternative, got %d", s.Len())
	}
	sp := s.Splits()[0]
	if !sp.Flow.IsEmpty() {
		t.Errorf("Expected an empty sub-flow, got %q", sp.Flow)
	}
	if !sp.Gate.IsAllowAll() {
		t.Errorf("Expected an allow-all gate, got %v", sp.Gate)
	}
	checkNormalized(t, s)
}

func TestNormalizeSingletonDilutes(t *testing.T) {
	s := NewSplitSet(NewSplit(New(), gate.Allow(0, 1, 2)))
	if s.Len() != 1 {
		t.Fatalf("Expected the hatch to coalesce into 1 alternative, got %d", s.Len())
	}
	if !s.Splits()[0].Gate.IsAllowAll() {
		t.Errorf("Expected the coalesced gate to be allow-all, got %v", s.Splits()[0].Gate)
	}
	checkNormalized(t, s)
}

func TestNormalizeAddsEscapeHatch(t *testing.T) {
	eggs := FromTokens(ing("eggs"))
	s := NewSplitSet(NewSplit(eggs, gate.Allow(0)))

	if s.Len() != 2 {
		t.Fatalf("Expected 2 alternatives, got %d", s.Len())
	}
	if g := gateFor(t, s, eggs); g != gate.Allow(0) {
		t.Errorf("Expected the gated branch to keep %v, got %v", gate.Allow(0), g)
	}
	if g := gateFor(t, s, New()); g != gate.Block(0) {
		t.Errorf("Expected the hatch gate %v, got %v", gate.Block(0), g)
	}
	checkNormalized(t, s)
}

func TestNormalizeCoalescesIdenticalFlows(t *testing.T) {
	s := NewSplitSet(
		NewSplit(FromTokens(ing("eggs")), gate.Allow(0)),
		NewSplit(FromTokens(ing("eggs")), gate.Allow(1)),
	)

	if s.Len() != 2 {
		t.Fatalf("Expected 2 alternatives, got %d", s.Len())
	}
	if g := gateFor(t, s, FromTokens(ing("eggs"))); g != gate.Allow(0, 1) {
		t.Errorf("Expected coalesced gate %v, got %v", gate.Allow(0, 1), g)
	}
	if g := gateFor(t, s, New()); g != gate.Block(0, 1) {
		t.Errorf("Expected hatch gate %v, got %v", gate.Block(0, 1), g)
	}
	checkNormalized(t, s)
}

func TestNormalizeDropsBlockAll(t *testing.T) {
	s := NewSplitSet(
		NewSplit(FromTokens(ing("lard")), gate.BlockAll()),
		NewSplit(FromTokens(ing("butter")), gate.AllowAll()),
	)

	if s.Len() != 1 {
		t.Fatalf("Expected 1 alternative, got %d", s.Len())
	}
	if got := s.Splits()[0].Flow; !got.Equal(FromTokens(ing("butter"))) {
		t.Errorf("Expected only the live branch to survive, got %q", got)
	}
	checkNormalized(t, s)
}

func TestNormalizeDropOnlyInput(t *testing.T) {
	s := NewSplitSet(NewSplit(FromTokens(ing("lard")), gate.BlockAll()))
	if s.Len() != 1 {
		t.Fatalf("Expected 1 alternative, got %d", s.Len())
	}
	sp := s.Splits()[0]
	if !sp.Flow.IsEmpty() || !sp.Gate.IsAllowAll() {
		t.Errorf("Expected {empty, allow-all}, got {%q, %v}", sp.Flow, sp.Gate)
	}
}

func TestNormalizeAllowAllPassthrough(t *testing.T) {
	fry := FromTokens(act("fry"))
	s := NewSplitSet(NewSplit(fry, gate.AllowAll()))
	if s.Len() != 1 {
		t.Fatalf("Expected 1 alternative, got %d", s.Len())
	}
	if g := gateFor(t, s, fry); !g.IsAllowAll() {
		t.Errorf("Expected the gate to stay allow-all, got %v", g)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := [][]Split{
		{},
		{NewSplit(New(), gate.Allow(0, 1, 2))},
		{NewSplit(FromTokens(ing("eggs")), gate.Allow(0))},
		{
			NewSplit(FromTokens(ing("eggs")), gate.Allow(0)),
			NewSplit(FromTokens(ing("tofu")), gate.Allow(1)),
			NewSplit(FromTokens(ing("eggs")), gate.Allow(2)),
		},
	}
	for _, in := range inputs {
		once := NewSplitSet(in...)
		twice := NewSplitSet(once.Splits()...)
		if !once.Equal(twice) {
			t.Errorf("Expected normalization to be idempotent, got %v then %v", once, twice)
		}
	}
}

func TestNormalizeOrderDeterministic(t *testing.T) {
	a := NewSplitSet(
		NewSplit(FromTokens(ing("eggs")), gate.Allow(0)),
		NewSplit(FromTokens(ing("tofu")), gate.Allow(1)),
	)
	b := NewSplitSet(
		NewSplit(FromTokens(ing("tofu")), gate.Allow(1)),
		NewSplit(FromTokens(ing("eggs")), gate.Allow(0)),
	)
	if !a.Equal(b) {
		t.Errorf("Expected input order not to matter, got %v and %v", a, b)
	}
}

func TestNormalizeTreeRecurses(t *testing.T) {
	// Hand-built inner set that skips NewSplitSet, leaving slot 1 uncovered.
	inner := &SplitSet{splits: []Split{{Flow: FromTokens(ing("eggs")), Gate: gate.Allow(0)}}}
	outer := New(Tok(act("start")), SplitItem{Splits: NewSplitSet(
		NewSplit(New(SplitItem{Splits: inner}), gate.AllowAll()),
	)})

	fixed := NormalizeTree(outer)
	inSplit := fixed.Items[1].(SplitItem).Splits.Splits()[0]
	nested := inSplit.Flow.Items[0].(SplitItem).Splits
	if nested.Len() != 2 {
		t.Fatalf("Expected the nested set to gain its hatch, got %d alternatives", nested.Len())
	}
	checkNormalized(t, nested)

	if !NormalizeTree(fixed).Equal(fixed) {
		t.Errorf("Expected NormalizeTree to be idempotent")
	}
}

func TestSplitSetClone(t *testing.T) {
	s := NewSplitSet(NewSplit(FromTokens(ing("eggs")), gate.Allow(0)))
	c := s.Clone()
	if !s.Equal(c) {
		t.Fatalf("Expected clone to equal the original")
	}
	c.splits[0].Gate = gate.Allow(5)
	if s.Equal(c) {
		t.Errorf("Expected mutating the clone to leave the original untouched")
	}
}
