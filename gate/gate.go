// Package gate implements allow/block predicates over variant selection slots.
// A slot identifies one concrete variant pathway through a procedure, and a
// gate decides which slots may proceed through a branch point. Gates compose
// with exact boolean set semantics and are immutable value types.
package gate

import (
	"encoding/json"
	"fmt"
)

// Slot identifies a unique variant pathway through a procedure.
type Slot uint8

// Kind distinguishes allow-list gates from block-list gates.
type Kind uint8

const (
	// KindAllow gates permit only the slots in their set.
	KindAllow Kind = iota
	// KindBlock gates permit every slot except those in their set.
	KindBlock
)

func (k Kind) String() string {
	if k == KindAllow {
		return "allow"
	}
	return "block"
}

// Gate is a filter on a procedure's variant pathways, permitting or
// restricting slots from proceeding through a branch point.
// Equality is structural: gates of different kind are never equal, even when
// they permit the same slots. Two equivalent extensions may disagree
// syntactically because the gate alone does not know the slot universe.
type Gate struct {
	kind Kind
	set  SlotSet
}

// Allow creates a gate permitting only the given slots.
// Duplicates are ignored. Allow() with no slots is the block-all gate.
func Allow(slots ...Slot) Gate {
	return Gate{kind: KindAllow, set: NewSlotSet(slots...)}
}

// Block creates a gate permitting every slot except the given ones.
// Duplicates are ignored. Block() with no slots is the allow-all gate.
func Block(slots ...Slot) Gate {
	return Gate{kind: KindBlock, set: NewSlotSet(slots...)}
}

// AllowAll returns the gate that permits every slot.
func AllowAll() Gate {
	return Block()
}

// BlockAll returns the gate that permits no slot.
func BlockAll() Gate {
	return Allow()
}

// Kind returns the gate's kind.
func (g Gate) Kind() Kind {
	return g.kind
}

// Slots returns the gate's underlying slot set.
func (g Gate) Slots() SlotSet {
	return g.set
}

// IsAllow reports whether the gate has allow semantics (is a white list).
func (g Gate) IsAllow() bool {
	return g.kind == KindAllow
}

// IsBlock reports whether the gate has block semantics (is a black list).
func (g Gate) IsBlock() bool {
	return g.kind == KindBlock
}

// IsAllowAll reports whether the gate is the canonical allow-all gate.
// Only the empty block gate qualifies; an allow gate listing every slot of
// some universe is not recognized.
func (g Gate) IsAllowAll() bool {
	return g.kind == KindBlock && g.set.IsEmpty()
}

// IsBlockAll reports whether the gate is the canonical block-all gate.
// Only the empty allow gate qualifies.
func (g Gate) IsBlockAll() bool {
	return g.kind == KindAllow && g.set.IsEmpty()
}

// AllowsSlot reports whether the slot may proceed through this gate.
func (g Gate) AllowsSlot(s Slot) bool {
	return g.set.Has(s) == (g.kind == KindAllow)
}

// BlocksSlot reports whether the slot is stopped by this gate.
func (g Gate) BlocksSlot(s Slot) bool {
	return !g.AllowsSlot(s)
}

// Invert swaps the gate's kind, keeping the same slot set.
// The resulting gate allows any slots blocked by the input gate, and vice versa.
func (g Gate) Invert() Gate {
	if g.kind == KindAllow {
		return Gate{kind: KindBlock, set: g.set}
	}
	return Gate{kind: KindAllow, set: g.set}
}

// Union combines two gates such that the result allows any slot allowed by
// either input gate.
func (g Gate) Union(o Gate) Gate {
	switch {
	case g.kind == KindAllow && o.kind == KindAllow:
		return Gate{kind: KindAllow, set: g.set.Union(o.set)}
	case g.kind == KindAllow && o.kind == KindBlock:
		return Gate{kind: KindBlock, set: o.set.Difference(g.set)}
	case g.kind == KindBlock && o.kind == KindAllow:
		return Gate{kind: KindBlock, set: g.set.Difference(o.set)}
	default:
		return Gate{kind: KindBlock, set: g.set.Intersection(o.set)}
	}
}

// Intersection combines two gates such that the result allows any slot
// allowed by both input gates.
func (g Gate) Intersection(o Gate) Gate {
	switch {
	case g.kind == KindAllow && o.kind == KindAllow:
		return Gate{kind: KindAllow, set: g.set.Intersection(o.set)}
	case g.kind == KindAllow && o.kind == KindBlock:
		return Gate{kind: KindAllow, set: g.set.Difference(o.set)}
	case g.kind == KindBlock && o.kind == KindAllow:
		return Gate{kind: KindAllow, set: o.set.Difference(g.set)}
	default:
		return Gate{kind: KindBlock, set: g.set.Union(o.set)}
	}
}

// Difference combines two gates such that the result allows any slot allowed
// by the first but not the second input gate.
func (g Gate) Difference(o Gate) Gate {
	return g.Intersection(o.Invert())
}

// SymDifference combines two gates such that the result allows any slot
// allowed by exactly one of the input gates.
func (g Gate) SymDifference(o Gate) Gate {
	set := g.set.SymDifference(o.set)
	if g.kind == o.kind {
		return Gate{kind: KindAllow, set: set}
	}
	return Gate{kind: KindBlock, set: set}
}

// String renders the gate as "ALLOW(0,1,2)" or "BLOCK()".
func (g Gate) String() string {
	name := "BLOCK"
	if g.kind == KindAllow {
		name = "ALLOW"
	}
	s := g.set.String()
	return name + "(" + s[1:len(s)-1] + ")"
}

type gateJSON struct {
	Kind  string `json:"kind"`
	Slots []Slot `json:"slots,omitempty"`
}

// MarshalJSON encodes the gate as {"kind": "allow"|"block", "slots": [...]}.
func (g Gate) MarshalJSON() ([]byte, error) {
	return json.Marshal(gateJSON{Kind: g.kind.String(), Slots: g.set.Slots()})
}

// UnmarshalJSON decodes a gate from its JSON form.
func (g *Gate) UnmarshalJSON(data []byte) error {
	var raw gateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Kind {
	case "allow":
		*g = Allow(raw.Slots...)
	case "block":
		*g = Block(raw.Slots...)
	default:
		return fmt.Errorf("gate: unknown kind %q", raw.Kind)
	}
	return nil
}
