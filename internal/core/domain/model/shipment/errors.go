package shipment

import (
	"errors"
	"fmt"
)

// Sentinel errors for shipment transition failures, usable with errors.Is.
var (
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrMismatch               = errors.New("scanned identifier mismatch")
)

// InvalidStateTransitionError indicates that a shipment's current status does
// not match the precondition for the requested transition (including
// double-dispatch and wrong-status pickup).
type InvalidStateTransitionError struct {
	From  Status
	To    Status
	Cause error
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError for
// the rejected transition.
func NewInvalidStateTransitionError(from, to Status) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{From: from, To: to}
}

func (e *InvalidStateTransitionError) Error() string {
	message := fmt.Sprintf("%s: %s is not a valid status to transition to %s", ErrInvalidStateTransition, e.From, e.To)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", message, e.Cause)
	}
	return message
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// MismatchError indicates that an operator-entered confirmation identifier
// does not match the expected one (anti-misscan guard).
type MismatchError struct {
	Expected string
	Actual   string
	Cause    error
}

// NewMismatchError creates a MismatchError for the failed confirmation.
func NewMismatchError(expected, actual string) *MismatchError {
	return &MismatchError{Expected: expected, Actual: actual}
}

func (e *MismatchError) Error() string {
	message := fmt.Sprintf("%s: expected %s, got %s", ErrMismatch, e.Expected, e.Actual)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", message, e.Cause)
	}
	return message
}

func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}
