package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrActorNotFound = errors.New("actor not found")
	ErrInvalidWeight = errors.New("edge weight must be positive")
)

// Error describes a rejected graph mutation.
type Error struct {
	Op      string // Operation that failed (e.g. "AddEdge")
	ActorID int    // Offending actor, if any
	Weight  int    // Offending weight, if any
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case errors.Is(e.Cause, ErrActorNotFound):
		return fmt.Sprintf("%s actor %d: %v", e.Op, e.ActorID, e.Cause)
	case errors.Is(e.Cause, ErrInvalidWeight):
		return fmt.Sprintf("%s weight %d: %v", e.Op, e.Weight, e.Cause)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	}
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}
