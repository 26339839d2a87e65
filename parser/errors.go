package parser

import "errors"

var (
	// ErrUnknownSigil is returned for a character or bare phrase with no
	// place in the grammar.
	ErrUnknownSigil = errors.New("parser: unknown sigil")

	// ErrEmptyPhrase is returned for a sigil with no phrase on its line.
	ErrEmptyPhrase = errors.New("parser: sigil without a phrase")

	// ErrUnbalancedSplit is returned for an unclosed [ or a stray ].
	ErrUnbalancedSplit = errors.New("parser: unbalanced split brackets")

	// ErrBareAlternative is returned for a | outside any split.
	ErrBareAlternative = errors.New("parser: alternative separator outside a split")

	// ErrBadGate is returned for a malformed or misplaced gate marker.
	ErrBadGate = errors.New("parser: bad gate marker")

	// ErrBadPortion is returned for a malformed or misplaced portion.
	ErrBadPortion = errors.New("parser: bad portion")

	// ErrDeadBranch is returned when a nested gate leaves no slot alive
	// under its enclosing gates.
	ErrDeadBranch = errors.New("parser: unreachable alternative")
)
