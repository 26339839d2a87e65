package graph

import (
	"testing"

	"github.com/gateflow-xyz/go-gateflow/flow"
	"github.com/gateflow-xyz/go-gateflow/gate"
)

func TestSurveyNested(t *testing.T) {
	f := mustParse(t, nestedSrc)
	s, err := Survey(f, []gate.Slot{0, 1, 2, 3})
	if err != nil {
		t.Fatalf("Survey failed: %v", err)
	}

	if s.NumSlots != 4 {
		t.Errorf("Expected 4 slots surveyed, got %d", s.NumSlots)
	}
	if s.NumWalks != 4 {
		t.Errorf("Expected 4 walks, got %d", s.NumWalks)
	}
	if s.NumVariants != 3 {
		t.Fatalf("Expected 3 variants, got %d", s.NumVariants)
	}

	want := []struct {
		walk  string
		slots string
	}{
		{"=wake *eggs =fry =eat", "0"},
		{"=wake *eggs =scramble =eat", "1"},
		{"=wake *cereal =eat", "2,3"},
	}
	for i, w := range want {
		v := s.Variants[i]
		if got := renderWalk(v.Tokens); got != w.walk {
			t.Errorf("Variant %d: expected %q, got %q", i, w.walk, got)
		}
		if got := slotList(v.Slots); got != w.slots {
			t.Errorf("Variant %d: expected slots %q, got %q", i, w.slots, got)
		}
	}
}

func TestSurveyLinear(t *testing.T) {
	f := mustParse(t, "* eggs\n= fry\n")
	s, err := Survey(f, []gate.Slot{0, 1})
	if err != nil {
		t.Fatalf("Survey failed: %v", err)
	}
	if s.NumWalks != 2 || s.NumVariants != 1 {
		t.Errorf("Expected 2 walks and 1 variant, got %d and %d", s.NumWalks, s.NumVariants)
	}
	if got := slotList(s.Variants[0].Slots); got != "0,1" {
		t.Errorf("Expected variant on slots 0,1, got %q", got)
	}
}

func TestSurveyEmptyFlow(t *testing.T) {
	s, err := Survey(flow.New(), []gate.Slot{0, 5})
	if err != nil {
		t.Fatalf("Survey failed: %v", err)
	}
	if s.NumVariants != 1 {
		t.Fatalf("Expected 1 variant, got %d", s.NumVariants)
	}
	if len(s.Variants[0].Tokens) != 0 {
		t.Errorf("Expected the empty walk, got %v", s.Variants[0].Tokens)
	}
}

func TestSurveyEmptyUniverse(t *testing.T) {
	s, err := Survey(mustParse(t, "* eggs"), nil)
	if err != nil {
		t.Fatalf("Survey failed: %v", err)
	}
	if s.NumSlots != 0 || s.NumWalks != 0 || s.NumVariants != 0 {
		t.Errorf("Expected an empty summary, got %+v", s)
	}
}

func TestSurveyOverlappingGates(t *testing.T) {
	// Slot 0 passes both the fry and bake gates, so one slot contributes
	// two walks.
	f := mustParse(t, "[#0,1 = fry | #0 = bake | #!0,1 = rest]")
	s, err := Survey(f, []gate.Slot{0, 1})
	if err != nil {
		t.Fatalf("Survey failed: %v", err)
	}
	if s.NumWalks != 3 {
		t.Errorf("Expected 3 walks, got %d", s.NumWalks)
	}
	if s.NumVariants != 2 {
		t.Errorf("Expected 2 variants, got %d", s.NumVariants)
	}
}
