package canvasui

import (
	"errors"
	"fmt"
)

// Usage errors. They signal programmer mistakes in the order or arguments of
// runtime calls, never bad data. Returned values wrap them in *UsageError, so
// test with errors.Is.
var (
	ErrMismatchedEnd   = errors.New("end does not match the open block type")
	ErrEmptyStack      = errors.New("no open block")
	ErrStackOverflow   = errors.New("block nesting exceeds the maximum depth")
	ErrNoContext       = errors.New("no window has been initialized")
	ErrUnknownContext  = errors.New("window is not registered")
	ErrInvalidButton   = errors.New("invalid mouse button")
	ErrInvalidQuery    = errors.New("invalid mouse query")
	ErrUnbalancedFrame = errors.New("frame ended with open blocks")
	ErrNoWindow        = errors.New("no window name given")
)

// UsageError records the runtime call that misbehaved.
type UsageError struct {
	Op     string // Runtime method, e.g. "EndRow"
	Detail string // Optional context, e.g. the open block type
	Err    error
}

func (e *UsageError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("canvasui: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("canvasui: %s: %v (%s)", e.Op, e.Err, e.Detail)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageError(op string, err error, detail string) *UsageError {
	return &UsageError{Op: op, Detail: detail, Err: err}
}
