package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrContradiction means no dictionary word satisfies the feedback received.
	ErrContradiction = errors.New("feedback inconsistent with dictionary")
	// ErrExhausted means every attempt was used without solving.
	ErrExhausted = errors.New("number of guesses exceeded")
	// ErrSessionOver is returned when a finished session is asked to continue.
	ErrSessionOver = errors.New("session is over")
)

// ValidationError reports a malformed word or feedback value.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// ProviderError wraps a failure of the external feedback provider.
// It is fatal for the session.
type ProviderError struct {
	Attempt int
	Guess   Word
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("feedback provider failed on attempt %d (%s): %v", e.Attempt, e.Guess, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
