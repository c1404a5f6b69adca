package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrAssignOperatorCommandIsNotConstructed = errors.New(
	"AssignOperatorCommand must be created via NewAssignOperatorCommand constructor",
)

// AssignOperatorCommand represents a supervisor handing a set of putaway
// packages to a specific operator as a picklist.
type AssignOperatorCommand struct { //nolint:recvcheck //using for validation
	trackingIDs []kernel.TrackingID
	operatorID  kernel.UUID
	warehouseID kernel.UUID
	actorID     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOperatorCommand creates a command to assign packages to one
// operator. Identifiers are normalized and deduplicated at construction.
func NewAssignOperatorCommand(
	rawTrackingIDs []string, operatorID kernel.UUID, warehouseID kernel.UUID, actorID *kernel.UUID,
) (AssignOperatorCommand, error) {
	if err := warehouseID.Validate(); err != nil {
		return AssignOperatorCommand{}, ErrNoWarehouseSelected
	}
	if err := operatorID.Validate(); err != nil {
		return AssignOperatorCommand{}, err
	}

	trackingIDs, err := normalizeTrackingIDs(rawTrackingIDs)
	if err != nil {
		return AssignOperatorCommand{}, err
	}

	return AssignOperatorCommand{
		trackingIDs: trackingIDs,
		operatorID:  operatorID,
		warehouseID: warehouseID,
		actorID:     actorID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOperatorCommand) Validate() error {
	return c.guard.Validate(ErrAssignOperatorCommandIsNotConstructed)
}

// TrackingIDs returns the normalized picklist candidates.
func (c AssignOperatorCommand) TrackingIDs() []kernel.TrackingID {
	return c.trackingIDs
}

// OperatorID returns the operator receiving the picklist.
func (c AssignOperatorCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// WarehouseID returns the acting warehouse.
func (c AssignOperatorCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// ActorID returns the acting user, or nil.
func (c AssignOperatorCommand) ActorID() *kernel.UUID {
	return c.actorID
}
