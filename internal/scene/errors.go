package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRealized indicates a reporter was constructed before the
	// system's topology was finalized. Not recoverable.
	ErrNotRealized = errors.New("scene: system topology has not been realized")

	// ErrBodyRange indicates a body id outside the registry. Signals
	// caller misuse, never retried.
	ErrBodyRange = errors.New("scene: body id out of range")

	// ErrNotALine indicates rubber-band geometry of the wrong kind.
	ErrNotALine = errors.New("scene: rubber-band geometry must be a line")

	// ErrSharedBackend indicates an attempt to clone a reporter onto the
	// backend it already owns, which would double-own every proxy.
	ErrSharedBackend = errors.New("scene: clone requires its own backend")

	// ErrDisposed indicates an operation that must return a value was
	// invoked after the reporter released its backend.
	ErrDisposed = errors.New("scene: reporter is disposed")
)

// BodyRangeError carries the offending id alongside the valid range.
type BodyRangeError struct {
	Body      int
	NumBodies int
}

func (e *BodyRangeError) Error() string {
	return fmt.Sprintf("scene: body %d out of range [0, %d)", e.Body, e.NumBodies)
}

func (e *BodyRangeError) Unwrap() error { return ErrBodyRange }
