package machine

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the umbrella kind for every failed table lookup.
	ErrNotFound = errors.New("not found")
	// ErrIncompleteTransition is returned when a (state, input) pair has no next state.
	ErrIncompleteTransition = fmt.Errorf("incomplete transition: %w", ErrNotFound)
	// ErrUnknownDestination is returned when a destination state has no output.
	ErrUnknownDestination = fmt.Errorf("unknown destination: %w", ErrNotFound)
	// ErrUnknownState is returned when a trace starts from a state the machine does not have.
	ErrUnknownState = fmt.Errorf("unknown state: %w", ErrNotFound)
	// ErrMissingOutput is returned when a Moore state has no output label.
	ErrMissingOutput = fmt.Errorf("missing output: %w", ErrNotFound)
)

// LookupError identifies the state and input that a failed lookup was about.
type LookupError struct {
	// Kind is one of the lookup kinds declared above.
	Kind error
	// State is the state being looked up from.
	State State
	// Input is the symbol being consumed. Only transition kinds use it.
	Input Symbol
	// Destination is the offending next state for ErrUnknownDestination.
	Destination State
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	switch {
	case errors.Is(e.Kind, ErrUnknownDestination):
		return fmt.Sprintf("%v: δ(%s, %s) = %s has no output", e.Kind, e.State, e.Input, e.Destination)
	case errors.Is(e.Kind, ErrIncompleteTransition):
		return fmt.Sprintf("%v: δ(%s, %s) is undefined", e.Kind, e.State, e.Input)
	default:
		return fmt.Sprintf("%v: %s", e.Kind, e.State)
	}
}

// Unwrap exposes the error kind to errors.Is and errors.As.
func (e *LookupError) Unwrap() error {
	return e.Kind
}

// IncompleteTransition returns the lookup error reported for a missing δ(state, input).
func IncompleteTransition(state State, input Symbol) error {
	return &LookupError{
		Kind:  ErrIncompleteTransition,
		State: state,
		Input: input,
	}
}

// UnknownDestination returns the lookup error reported when δ(state, input) = destination
// leads to a state without output.
func UnknownDestination(state State, input Symbol, destination State) error {
	return &LookupError{
		Kind:        ErrUnknownDestination,
		State:       state,
		Input:       input,
		Destination: destination,
	}
}

// UnknownState returns the lookup error reported for a state outside the machine.
func UnknownState(state State) error {
	return &LookupError{
		Kind:  ErrUnknownState,
		State: state,
	}
}

// MissingOutput returns the lookup error reported for a Moore state without output.
func MissingOutput(state State) error {
	return &LookupError{
		Kind:  ErrMissingOutput,
		State: state,
	}
}
