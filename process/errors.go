package process

import "errors"

var (
	// ErrNoTarget is returned when a modifier or annotation arrives
	// before any step exists to attach it to.
	ErrNoTarget = errors.New("process: no step to attach to")

	// ErrNotModifiable is returned when the target step's kind does not
	// take modifiers.
	ErrNotModifiable = errors.New("process: step does not take modifiers")

	// ErrNotAnnotatable is returned when the target step's kind does not
	// take annotations.
	ErrNotAnnotatable = errors.New("process: step does not take annotations")
)
