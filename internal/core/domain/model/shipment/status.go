package shipment

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions so that every
// status change is an explicit, validated operation rather than a field
// overwrite.
//
// State transitions:
//
//	unregistered ──> registered ──> manifested ──> putaway ──> picklist-created ──> picked ──> dispatched ──> delivered
//	      │                             │             │               │
//	      └───────── (walk-in) ─────────┴──> putaway  ├──> picked ────┴──> dispatched
//	                                                  │
//	                                    (dissociate)  └──> picked-up   [terminal]
//
// A transition whose source state does not match the shipment's current
// recorded state is rejected with an InvalidStateTransitionError.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Unregistered is the initial status of a walk-in shipment that was
	// scanned before appearing on any manifest.
	Unregistered

	// Registered means the shipment was recorded at intake.
	Registered

	// Manifested means the shipment appears on an uploaded manifest.
	Manifested

	// Putaway means the shipment is physically stored in a bin.
	Putaway

	// PicklistCreated means the shipment has been assigned to an operator
	// for retrieval.
	PicklistCreated

	// Picked means an operator has physically retrieved the shipment.
	Picked

	// PickedUp is the terminal status of a shipment released directly from
	// its bin without going through the pick-assignment path.
	PickedUp

	// Dispatched means the shipment has left the warehouse.
	Dispatched

	// Delivered is the final status of the outbound path.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "unknown",
		Unregistered:    "unregistered",
		Registered:      "registered",
		Manifested:      "manifested",
		Putaway:         "putaway",
		PicklistCreated: "picklist-created",
		Picked:          "picked",
		PickedUp:        "picked-up",
		Dispatched:      "dispatched",
		Delivered:       "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Unregistered:    "unregistered",
		Registered:      "registered",
		Manifested:      "manifested",
		Putaway:         "putaway",
		PicklistCreated: "picklist-created",
		Picked:          "picked",
		PickedUp:        "picked-up",
		Dispatched:      "dispatched",
		Delivered:       "delivered",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// String returns the wire name of the status (e.g. "picklist-created").
// Implements fmt.Stringer; safe on any value.
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
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid shipment status", s))
}

// Register transitions the status to Registered.
// Valid source: Unregistered.
func (s Status) Register() (Status, error) {
	if s != Unregistered {
		return 0, NewInvalidStateTransitionError(s, Registered)
	}
	return Registered, nil
}

// Putaway transitions the status to Putaway (shipment stored in a bin).
// Valid sources: Unregistered (walk-in), Registered, Manifested.
func (s Status) Putaway() (Status, error) {
	if s != Unregistered && s != Registered && s != Manifested {
		return 0, NewInvalidStateTransitionError(s, Putaway)
	}
	return Putaway, nil
}

// CreatePicklist transitions the status to PicklistCreated.
// Valid source: Putaway. The picklist flag is set only at operator-assignment
// time, never during manifest processing.
func (s Status) CreatePicklist() (Status, error) {
	if s != Putaway {
		return 0, NewInvalidStateTransitionError(s, PicklistCreated)
	}
	return PicklistCreated, nil
}

// Pick transitions the status to Picked.
// Valid sources: Putaway (direct outbound scan) and PicklistCreated
// (picklist flow).
func (s Status) Pick() (Status, error) {
	if s != Putaway && s != PicklistCreated {
		return 0, NewInvalidStateTransitionError(s, Picked)
	}
	return Picked, nil
}

// Dispatch transitions the status to Dispatched.
// Valid sources: Picked and PicklistCreated. A second dispatch fails because
// Dispatched is not a valid source.
func (s Status) Dispatch() (Status, error) {
	if s != Picked && s != PicklistCreated {
		return 0, NewInvalidStateTransitionError(s, Dispatched)
	}
	return Dispatched, nil
}

// Deliver transitions the status to Delivered.
// Valid source: Dispatched.
func (s Status) Deliver() (Status, error) {
	if s != Dispatched {
		return 0, NewInvalidStateTransitionError(s, Delivered)
	}
	return Delivered, nil
}

// Release transitions the status to PickedUp (dissociation from a bin).
// Valid from any status except PickedUp itself, which is terminal.
func (s Status) Release() (Status, error) {
	if s == PickedUp {
		return 0, NewInvalidStateTransitionError(s, PickedUp)
	}
	return PickedUp, nil
}
