package flow

import (
	"testing"

	"github.com/gateflow-xyz/go-gateflow/gate"
	"github.com/gateflow-xyz/go-gateflow/token"
)

func ing(text string) token.Token {
	return token.New(token.Ingredient, text)
}

func act(text string) token.Token {
	return token.New(token.Action, text)
}

func TestFromTokens(t *testing.T) {
	f := FromTokens(ing("butter"), act("melt"))
	if f.Len() != 2 {
		t.Fatalf("Expected 2 items, got %d", f.Len())
	}
	if f.NumTokens() != 2 {
		t.Errorf("Expected 2 tokens, got %d", f.NumTokens())
	}
	if f.NumSplits() != 0 {
		t.Errorf("Expected 0 splits, got %d", f.NumSplits())
	}
	if f.Depth() != 0 {
		t.Errorf("Expected depth 0, got %d", f.Depth())
	}
}

func TestEmptyFlow(t *testing.T) {
	var nilFlow *Flow
	if !nilFlow.IsEmpty() {
		t.Errorf("Expected nil flow to be empty")
	}
	if !New().IsEmpty() {
		t.Errorf("Expected New() to be empty")
	}
	if nilFlow.Depth() != 0 || nilFlow.NumTokens() != 0 || nilFlow.Len() != 0 {
		t.Errorf("Expected zero counts on nil flow")
	}
	if !nilFlow.Equal(New()) {
		t.Errorf("Expected nil flow to equal an empty flow")
	}
}

func TestFlowDepth(t *testing.T) {
	inner := NewSplitSet(NewSplit(FromTokens(ing("eggs")), gate.AllowAll()))
	outer := NewSplitSet(
		NewSplit(New(SplitItem{Splits: inner}), gate.Allow(0)),
		NewSplit(FromTokens(ing("tofu")), gate.Block(0)),
	)
	f := New(Tok(act("start")), SplitItem{Splits: outer})

	if f.Depth() != 2 {
		t.Errorf("Expected depth 2, got %d", f.Depth())
	}
	if f.NumSplits() != 2 {
		t.Errorf("Expected 2 splits, got %d", f.NumSplits())
	}
	if f.NumTokens() != 3 {
		t.Errorf("Expected 3 tokens, got %d", f.NumTokens())
	}
}

func TestFlowEqual(t *testing.T) {
	build := func() *Flow {
		s := NewSplitSet(
			NewSplit(FromTokens(ing("eggs")), gate.Allow(0)),
			NewSplit(FromTokens(ing("tofu")), gate.Block(0)),
		)
		return New(Tok(ing("butter")), SplitItem{Splits: s})
	}

	a, b := build(), build()
	if !a.Equal(b) {
		t.Fatalf("Expected identically built flows to be equal")
	}

	c := New(Tok(ing("butter")))
	if a.Equal(c) {
		t.Errorf("Expected flows of different shape to differ")
	}

	d := New(Tok(ing("margarine")), a.Items[1])
	if a.Equal(d) {
		t.Errorf("Expected flows with different tokens to differ")
	}
}

func TestFlowClone(t *testing.T) {
	s := NewSplitSet(
		NewSplit(FromTokens(ing("eggs")), gate.Allow(0)),
		NewSplit(FromTokens(ing("tofu")), gate.Block(0)),
	)
	orig := New(Tok(ing("butter")), SplitItem{Splits: s})

	clone := orig.Clone()
	if !orig.Equal(clone) {
		t.Fatalf("Expected clone to equal the original")
	}

	clone.Items[0] = Tok(ing("margarine"))
	if orig.Equal(clone) {
		t.Errorf("Expected mutating the clone to leave the original untouched")
	}
	if got := orig.Items[0].(TokenItem).Token.Text; got != "butter" {
		t.Errorf("Expected original token %q, got %q", "butter", got)
	}
}

func TestFingerprintStructural(t *testing.T) {
	a := FromTokens(ing("butter"), act("melt"))
	b := FromTokens(ing("butter"), act("melt"))
	c := FromTokens(act("melt"), ing("butter"))

	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("Expected equal flows to share a fingerprint")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Errorf("Expected reordered flows to differ")
	}

	var nilFlow *Flow
	if nilFlow.Fingerprint() != New().Fingerprint() {
		t.Errorf("Expected nil and empty flows to share a fingerprint")
	}
}

func TestFingerprintDelimits(t *testing.T) {
	a := FromTokens(token.New(token.Ingredient, "ab"), token.New(token.Ingredient, "c"))
	b := FromTokens(token.New(token.Ingredient, "a"), token.New(token.Ingredient, "bc"))
	if a.Fingerprint() == b.Fingerprint() {
		t.Errorf("Expected length-prefixed encoding to keep texts apart")
	}
}

func TestFlowString(t *testing.T) {
	s := NewSplitSet(
		NewSplit(FromTokens(act("fry")), gate.AllowAll()),
	)
	f := New(Tok(ing("butter")), SplitItem{Splits: s})
	if got := f.String(); got != "*butter [=fry]" {
		t.Errorf("Expected %q, got %q", "*butter [=fry]", got)
	}

	gated := NewSplitSet(
		NewSplit(FromTokens(act("bake")), gate.Allow(1)),
	)
	g := New(SplitItem{Splits: gated})
	want := "[#1 =bake | #!1]"
	other := "[#!1 | #1 =bake]"
	if got := g.String(); got != want && got != other {
		t.Errorf("Expected %q or %q, got %q", want, other, got)
	}
}
