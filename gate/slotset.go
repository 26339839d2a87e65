package gate

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

// SlotSet is an immutable set of slots backed by a 256-bit mask.
// Bit s of the mask is set exactly when slot s is a member, so the full
// uint8 slot universe fits in a single word-aligned value. SlotSet is
// comparable with ==, which makes gates usable as map keys.
type SlotSet struct {
	mask uint256.Int
}

// NewSlotSet creates a set containing the given slots.
// Duplicates are ignored.
func NewSlotSet(slots ...Slot) SlotSet {
	var s SlotSet
	for _, sl := range slots {
		s.mask[sl/64] |= uint64(1) << (sl % 64)
	}
	return s
}

// Has reports whether the slot is a member of the set.
func (s SlotSet) Has(sl Slot) bool {
	return s.mask[sl/64]&(uint64(1)<<(sl%64)) != 0
}

// With returns a copy of the set that contains sl.
func (s SlotSet) With(sl Slot) SlotSet {
	s.mask[sl/64] |= uint64(1) << (sl % 64)
	return s
}

// Without returns a copy of the set that lacks sl.
func (s SlotSet) Without(sl Slot) SlotSet {
	s.mask[sl/64] &^= uint64(1) << (sl % 64)
	return s
}

// IsEmpty reports whether the set has no members.
func (s SlotSet) IsEmpty() bool {
	return s.mask.IsZero()
}

// Len returns the number of slots in the set.
func (s SlotSet) Len() int {
	n := 0
	for _, limb := range s.mask {
		n += bits.OnesCount64(limb)
	}
	return n
}

// Union returns the set of slots in either s or o.
func (s SlotSet) Union(o SlotSet) SlotSet {
	var out SlotSet
	out.mask.Or(&s.mask, &o.mask)
	return out
}

// Intersection returns the set of slots in both s and o.
func (s SlotSet) Intersection(o SlotSet) SlotSet {
	var out SlotSet
	out.mask.And(&s.mask, &o.mask)
	return out
}

// Difference returns the set of slots in s but not in o.
func (s SlotSet) Difference(o SlotSet) SlotSet {
	var not uint256.Int
	not.Not(&o.mask)

	var out SlotSet
	out.mask.And(&s.mask, &not)
	return out
}

// SymDifference returns the set of slots in exactly one of s and o.
func (s SlotSet) SymDifference(o SlotSet) SlotSet {
	var out SlotSet
	out.mask.Xor(&s.mask, &o.mask)
	return out
}

// Compare orders sets by their mask value, low slots least significant.
func (s SlotSet) Compare(o SlotSet) int {
	return s.mask.Cmp(&o.mask)
}

// Slots returns the members in ascending order.
func (s SlotSet) Slots() []Slot {
	out := make([]Slot, 0, s.Len())
	for i, limb := range s.mask {
		for limb != 0 {
			b := bits.TrailingZeros64(limb)
			out = append(out, Slot(i*64+b))
			limb &= limb - 1
		}
	}
	return out
}

// String renders the set as "{0,1,2}".
func (s SlotSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, sl := range s.Slots() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(sl)))
	}
	b.WriteByte('}')
	return b.String()
}
