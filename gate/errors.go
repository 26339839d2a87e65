package gate

import (
	"errors"
	"fmt"
)

var (
	// ErrNoIntersection is returned when a nested gate shares no live slots
	// with its enclosing scope.
	ErrNoIntersection = errors.New("gate: no common slots between enclosing and provided gates")

	// ErrScopeUnderflow is returned when a scope is closed without a
	// matching begin.
	ErrScopeUnderflow = errors.New("gate: scope closed without matching begin")
)

// NoIntersectionError reports a nested gate that leaves no slot able to
// proceed. It wraps ErrNoIntersection and carries both gates for diagnostics.
type NoIntersectionError struct {
	Expected Gate // effective gate of the enclosing scope
	Provided Gate // gate supplied to Begin
}

func (e *NoIntersectionError) Error() string {
	return fmt.Sprintf("%v; expected %v, provided %v", ErrNoIntersection, e.Expected, e.Provided)
}

func (e *NoIntersectionError) Unwrap() error {
	return ErrNoIntersection
}
