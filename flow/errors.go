package flow

import (
	"errors"
	"fmt"

	"github.com/gateflow-xyz/go-gateflow/gate"
)

var (
	// ErrEmptyStack is returned when a split is reached with no slot
	// choice left for its nesting level.
	ErrEmptyStack = errors.New("flow: no slot choice left for split")

	// ErrLeftoverStack is returned when slot choices remain after the
	// deepest split level has been resolved.
	ErrLeftoverStack = errors.New("flow: unconsumed slot choices after walk")

	// ErrGateStackEmpty is returned by walk-item replay when a gate is
	// popped off an empty stack.
	ErrGateStackEmpty = errors.New("flow: gate pop on empty stack")

	// ErrGateStackMismatch is returned by walk-item replay when a popped
	// gate does not match the stack top.
	ErrGateStackMismatch = errors.New("flow: popped gate does not match stack top")

	// ErrGateStackLeftover is returned by walk-item replay when gates
	// remain open at the end of the sequence.
	ErrGateStackLeftover = errors.New("flow: gates left open after replay")
)

// LeftoverStackError carries the slot choices a walk did not consume.
// It wraps ErrLeftoverStack for errors.Is matching.
type LeftoverStackError struct {
	Leftover []gate.Slot
}

func (e *LeftoverStackError) Error() string {
	return fmt.Sprintf("%v: %v", ErrLeftoverStack, e.Leftover)
}

func (e *LeftoverStackError) Unwrap() error {
	return ErrLeftoverStack
}
