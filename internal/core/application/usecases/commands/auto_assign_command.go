package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrAutoAssignCommandIsNotConstructed = errors.New(
	"AutoAssignCommand must be created via NewAutoAssignCommand constructor",
)

// AutoAssignCommand represents spreading a set of putaway packages across a
// warehouse's active operators round-robin.
type AutoAssignCommand struct { //nolint:recvcheck //using for validation
	trackingIDs []kernel.TrackingID
	warehouseID kernel.UUID
	actorID     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAutoAssignCommand creates a command for round-robin assignment.
// Identifiers are normalized and deduplicated at construction.
func NewAutoAssignCommand(
	rawTrackingIDs []string, warehouseID kernel.UUID, actorID *kernel.UUID,
) (AutoAssignCommand, error) {
	if err := warehouseID.Validate(); err != nil {
		return AutoAssignCommand{}, ErrNoWarehouseSelected
	}

	trackingIDs, err := normalizeTrackingIDs(rawTrackingIDs)
	if err != nil {
		return AutoAssignCommand{}, err
	}

	return AutoAssignCommand{
		trackingIDs: trackingIDs,
		warehouseID: warehouseID,
		actorID:     actorID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AutoAssignCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignCommandIsNotConstructed)
}

// TrackingIDs returns the normalized candidates in input order. Input order
// drives the round-robin pairing.
func (c AutoAssignCommand) TrackingIDs() []kernel.TrackingID {
	return c.trackingIDs
}

// WarehouseID returns the acting warehouse.
func (c AutoAssignCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// ActorID returns the acting user, or nil.
func (c AutoAssignCommand) ActorID() *kernel.UUID {
	return c.actorID
}
