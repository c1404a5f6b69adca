package bin

import (
	"errors"
	"fmt"
)

// Sentinel errors for bin gating failures, usable with errors.Is.
var (
	ErrBinUnavailable   = errors.New("bin is not available")
	ErrCapacityExceeded = errors.New("bin capacity exceeded")
)

// BinUnavailableError indicates that a bin's status prevents the requested
// operation (occupied or in maintenance when availability is required).
type BinUnavailableError struct {
	BinID  string
	Status Status
	Cause  error
}

// NewBinUnavailableError creates a BinUnavailableError for the given bin.
func NewBinUnavailableError(binID string, status Status) *BinUnavailableError {
	return &BinUnavailableError{BinID: binID, Status: status}
}

func (e *BinUnavailableError) Error() string {
	message := fmt.Sprintf("%s: bin %s has status %s", ErrBinUnavailable, e.BinID, e.Status)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", message, e.Cause)
	}
	return message
}

func (e *BinUnavailableError) Unwrap() error {
	return ErrBinUnavailable
}

// CapacityExceededError indicates that a bin's putaway occupancy is at or
// above its capacity, so it cannot accept another shipment.
type CapacityExceededError struct {
	BinID     string
	Capacity  int
	Occupancy int
	Cause     error
}

// NewCapacityExceededError creates a CapacityExceededError for the given bin.
func NewCapacityExceededError(binID string, capacity, occupancy int) *CapacityExceededError {
	return &CapacityExceededError{BinID: binID, Capacity: capacity, Occupancy: occupancy}
}

func (e *CapacityExceededError) Error() string {
	message := fmt.Sprintf("%s: bin %s holds %d of %d", ErrCapacityExceeded, e.BinID, e.Occupancy, e.Capacity)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", message, e.Cause)
	}
	return message
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}
