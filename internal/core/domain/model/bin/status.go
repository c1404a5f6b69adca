package bin

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the occupancy state of a storage bin.
//
// A bin is occupied exactly when its putaway occupancy has reached its
// capacity; otherwise it is available, unless an administrator has manually
// placed it in maintenance. Status is recomputed by the capacity allocator
// after every mutation that changes bin occupancy.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available means the bin can accept further putaway shipments.
	Available

	// Occupied means putaway occupancy has reached the bin's capacity.
	Occupied

	// Maintenance means the bin was manually taken out of rotation.
	// Maintenance bins reject scans but still revert to Available once
	// fully emptied by dispatch or pickup.
	Maintenance
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		Available:   "available",
		Occupied:    "occupied",
		Maintenance: "maintenance",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available:   "available",
		Occupied:    "occupied",
		Maintenance: "maintenance",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Available, Occupied, Maintenance.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid bin status", s))
	}
	return nil
}

// String returns the wire name of the status ("available", "occupied",
// "maintenance"). Implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire name back into a Status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid bin status", s))
}
