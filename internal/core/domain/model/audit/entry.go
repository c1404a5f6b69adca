// Package audit contains the append-only audit trail entry.
//
// Every successful mutating operation on the shipment ledger writes exactly
// one Entry, inside the same transaction as the mutation itself: an entry
// must never exist without its committed state change, and vice versa.
// Entries are immutable once written; the type exposes no mutators.
package audit

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created via
// NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is a single immutable audit record tied to a shipment mutation.
// The acting user is nil for anonymous or system actions.
type Entry struct {
	id          kernel.UUID
	action      Action
	trackingID  kernel.TrackingID
	warehouseID *kernel.UUID
	userID      *kernel.UUID
	details     string
	timestamp   time.Time

	isConstructed bool
}

// NewEntry creates an audit entry for a just-performed mutation.
// The timestamp is server-assigned by the caller at write time.
func NewEntry(
	action Action,
	trackingID kernel.TrackingID,
	warehouseID *kernel.UUID,
	userID *kernel.UUID,
	details string,
	timestamp time.Time,
) (*Entry, error) {
	if err := action.Validate(); err != nil {
		return nil, err
	}
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}
	if timestamp.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamp")
	}

	return &Entry{
		id:            kernel.NewUUID(),
		action:        action,
		trackingID:    trackingID,
		warehouseID:   warehouseID,
		userID:        userID,
		details:       details,
		timestamp:     timestamp,
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs an Entry from persistence with its stored identity.
func RestoreEntry(
	id kernel.UUID,
	action Action,
	trackingID kernel.TrackingID,
	warehouseID *kernel.UUID,
	userID *kernel.UUID,
	details string,
	timestamp time.Time,
) (*Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	entry, err := NewEntry(action, trackingID, warehouseID, userID, details, timestamp)
	if err != nil {
		return nil, err
	}

	entry.id = id
	return entry, nil
}

// Validate ensures the Entry was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's identity.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// Action returns the recorded action.
func (e *Entry) Action() Action {
	return e.action
}

// TrackingID returns the mutated shipment's identity.
func (e *Entry) TrackingID() kernel.TrackingID {
	return e.trackingID
}

// Warehouse returns the warehouse scope of the mutation, or nil.
func (e *Entry) Warehouse() *kernel.UUID {
	return e.warehouseID
}

// User returns the acting user, or nil for anonymous/system actions.
func (e *Entry) User() *kernel.UUID {
	return e.userID
}

// Details returns the free-text description of the mutation.
func (e *Entry) Details() string {
	return e.details
}

// Timestamp returns the server-assigned write time.
func (e *Entry) Timestamp() time.Time {
	return e.timestamp
}
