package token

import (
	"fmt"
)

// PortionKind records which written form a portion was parsed from.
// Portions compare syntactically: 1/2 and 0.5 are distinct values.
type PortionKind uint8

const (
	// PortionNone marks a token with no measured portion.
	PortionNone PortionKind = iota
	// PortionInteger is a whole count, e.g. "2".
	PortionInteger
	// PortionDecimal is a base-ten fraction, e.g. "0.5". Den is the power
	// of ten matching the written number of fractional digits.
	PortionDecimal
	// PortionRational is an explicit ratio, e.g. "1/2".
	PortionRational
)

var portionKindNames = [...]string{"none", "integer", "decimal", "rational"}

func (k PortionKind) String() string {
	if int(k) < len(portionKindNames) {
		return portionKindNames[k]
	}
	return fmt.Sprintf("portion(%d)", uint8(k))
}

// MarshalText encodes the portion kind as its lowercase name.
func (k PortionKind) MarshalText() ([]byte, error) {
	if int(k) >= len(portionKindNames) {
		return nil, fmt.Errorf("token: unknown portion kind %d", uint8(k))
	}
	return []byte(portionKindNames[k]), nil
}

// UnmarshalText decodes a portion kind from its lowercase name.
func (k *PortionKind) UnmarshalText(text []byte) error {
	for i, name := range portionKindNames {
		if name == string(text) {
			*k = PortionKind(i)
			return nil
		}
	}
	return fmt.Errorf("token: unknown portion kind %q", text)
}

// Portion is a measured quantity stored as an exact numerator and
// denominator. The zero value means no portion. The denominator is never
// zero for a present portion; parsers reject "1/0" before construction.
type Portion struct {
	Kind PortionKind
	Num  uint64
	Den  uint64
}

type portionJSON struct {
	Kind PortionKind `json:"kind"`
	Num  uint64      `json:"num"`
	Den  uint64      `json:"den"`
}

// Integer creates a whole-count portion.
func Integer(n uint64) Portion {
	return Portion{Kind: PortionInteger, Num: n, Den: 1}
}

// Decimal creates a portion from a scaled decimal: num over a power-of-ten
// den, e.g. Decimal(5, 10) for "0.5".
func Decimal(num, den uint64) Portion {
	return Portion{Kind: PortionDecimal, Num: num, Den: den}
}

// Rational creates an explicit-ratio portion. Den must be nonzero.
func Rational(num, den uint64) Portion {
	return Portion{Kind: PortionRational, Num: num, Den: den}
}

// IsNone reports whether the portion is absent.
func (p Portion) IsNone() bool {
	return p.Kind == PortionNone
}

// Compare orders portions by kind, then numerator, then denominator.
// The ordering is syntactic, not numeric.
func (p Portion) Compare(o Portion) int {
	if p.Kind != o.Kind {
		if p.Kind < o.Kind {
			return -1
		}
		return 1
	}
	if p.Num != o.Num {
		if p.Num < o.Num {
			return -1
		}
		return 1
	}
	if p.Den != o.Den {
		if p.Den < o.Den {
			return -1
		}
		return 1
	}
	return 0
}

// String renders the portion in its written form: "2", "0.5", or "1/2".
func (p Portion) String() string {
	switch p.Kind {
	case PortionNone:
		return ""
	case PortionInteger:
		return fmt.Sprintf("%d", p.Num)
	case PortionDecimal:
		places := 0
		for d := p.Den; d > 1; d /= 10 {
			places++
		}
		if places == 0 {
			return fmt.Sprintf("%d", p.Num)
		}
		return fmt.Sprintf("%d.%0*d", p.Num/p.Den, places, p.Num%p.Den)
	default:
		return fmt.Sprintf("%d/%d", p.Num, p.Den)
	}
}
