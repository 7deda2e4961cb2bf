package fist

import (
	"errors"
	"fmt"
)

var (
	// ErrIdle is returned by Step when no continuation is queued and no
	// suspension is outstanding.
	ErrIdle = errors.New("runtime idle: no pending continuations")

	// ErrPending is returned by Future.Result before the Future settles.
	ErrPending = errors.New("future not settled")

	// ErrNoMatch is the cause of every MatchError.
	ErrNoMatch = errors.New("no matching handler for state")

	// ErrPanic is the cause of a PanicError.
	ErrPanic = errors.New("action panicked")

	// ErrNilError replaces a nil error passed to Raise or Future.Reject.
	ErrNilError = errors.New("nil error raised")
)

// PanicError carries a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%v: %v", ErrPanic, e.Value)
}

func (e *PanicError) Unwrap() error {
	return ErrPanic
}

// panicError converts a recovered value into an error. Errors pass through
// unchanged so that hooks observe exactly what was panicked.
func panicError(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return &PanicError{Value: p}
}

// unhandled is the panic value used to unwind a raise that has no OnError
// hook. It is recovered at the Dispatch/Step boundary and returned.
type unhandled struct {
	err error
}
