// Package flow models procedures as ordered trees of tokens and gated
// splits, and resolves them into concrete walks.
//
// A Flow is a sequence of items. Each item is either a single token or a
// split over alternative sub-flows, every alternative guarded by a gate.
// Splits are kept in normalized SplitSets: the gates of a set always cover
// the whole slot universe and no two alternatives share a structurally
// identical sub-flow. Given one slot choice per nesting level, Walks
// expands a flow into every token sequence the chosen slots permit.
//
// Normalized flows are immutable. Sub-flows may be shared between trees;
// Clone is the copy boundary for callers that need to rewrite.
package flow

import (
	"strings"

	"github.com/gateflow-xyz/go-gateflow/token"
)

// Item is one element of a flow: a TokenItem or a SplitItem.
type Item interface {
	isItem()
	String() string
}

// TokenItem wraps a single token.
type TokenItem struct {
	Token token.Token
}

func (TokenItem) isItem() {}

func (it TokenItem) String() string {
	return it.Token.String()
}

// SplitItem wraps a normalized set of gated alternatives.
type SplitItem struct {
	Splits *SplitSet
}

func (SplitItem) isItem() {}

func (it SplitItem) String() string {
	return it.Splits.String()
}

// Tok wraps a token as a flow item.
func Tok(t token.Token) Item {
	return TokenItem{Token: t}
}

// Flow is an ordered sequence of items. A nil *Flow is treated as empty.
type Flow struct {
	Items []Item
}

// New creates a flow from the given items.
func New(items ...Item) *Flow {
	return &Flow{Items: items}
}

// FromTokens creates a flow holding only the given tokens, in order.
func FromTokens(toks ...token.Token) *Flow {
	items := make([]Item, len(toks))
	for i, t := range toks {
		items[i] = TokenItem{Token: t}
	}
	return New(items...)
}

// IsEmpty reports whether the flow has no items.
func (f *Flow) IsEmpty() bool {
	return f == nil || len(f.Items) == 0
}

// Len returns the number of top-level items.
func (f *Flow) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Items)
}

// Depth returns the number of nesting levels: 0 for a flow without splits,
// otherwise one more than the deepest alternative. Walks needs exactly
// Depth slot choices along its deepest path.
func (f *Flow) Depth() int {
	if f == nil {
		return 0
	}
	depth := 0
	for _, it := range f.Items {
		sp, ok := it.(SplitItem)
		if !ok {
			continue
		}
		for _, alt := range sp.Splits.Splits() {
			if d := 1 + alt.Flow.Depth(); d > depth {
				depth = d
			}
		}
	}
	return depth
}

// NumTokens counts tokens in the whole tree, nested alternatives included.
func (f *Flow) NumTokens() int {
	if f == nil {
		return 0
	}
	n := 0
	for _, it := range f.Items {
		switch v := it.(type) {
		case TokenItem:
			n++
		case SplitItem:
			for _, alt := range v.Splits.Splits() {
				n += alt.Flow.NumTokens()
			}
		}
	}
	return n
}

// NumSplits counts split sets in the whole tree.
func (f *Flow) NumSplits() int {
	if f == nil {
		return 0
	}
	n := 0
	for _, it := range f.Items {
		sp, ok := it.(SplitItem)
		if !ok {
			continue
		}
		n++
		for _, alt := range sp.Splits.Splits() {
			n += alt.Flow.NumSplits()
		}
	}
	return n
}

// Clone returns a deep copy sharing no mutable state with the receiver.
func (f *Flow) Clone() *Flow {
	if f == nil {
		return New()
	}
	items := make([]Item, len(f.Items))
	for i, it := range f.Items {
		switch v := it.(type) {
		case TokenItem:
			items[i] = v
		case SplitItem:
			items[i] = SplitItem{Splits: v.Splits.Clone()}
		}
	}
	return New(items...)
}

// Equal reports structural equality of two flows.
func (f *Flow) Equal(o *Flow) bool {
	if f.Len() != o.Len() {
		return false
	}
	if f == nil || o == nil {
		return true
	}
	for i, it := range f.Items {
		switch v := it.(type) {
		case TokenItem:
			w, ok := o.Items[i].(TokenItem)
			if !ok || v.Token != w.Token {
				return false
			}
		case SplitItem:
			w, ok := o.Items[i].(SplitItem)
			if !ok || !v.Splits.Equal(w.Splits) {
				return false
			}
		}
	}
	return true
}

// String renders the flow in its grammar-like form, items separated by
// spaces and splits bracketed: "*butter [=fry | #1 =bake]".
func (f *Flow) String() string {
	if f == nil {
		return ""
	}
	parts := make([]string, 0, len(f.Items))
	for _, it := range f.Items {
		parts = append(parts, it.String())
	}
	return strings.Join(parts, " ")
}
