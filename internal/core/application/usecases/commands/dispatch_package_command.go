package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrDispatchPackageCommandIsNotConstructed = errors.New(
	"DispatchPackageCommand must be created via NewDispatchPackageCommand constructor",
)

// DispatchPackageCommand represents a picked package leaving the warehouse
// on an outbound vehicle.
type DispatchPackageCommand struct { //nolint:recvcheck //using for validation
	trackingID  kernel.TrackingID
	warehouseID kernel.UUID
	actorID     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewDispatchPackageCommand creates a command to dispatch a package.
func NewDispatchPackageCommand(
	trackingID kernel.TrackingID, warehouseID kernel.UUID, actorID *kernel.UUID,
) (DispatchPackageCommand, error) {
	dispatchCommand := DispatchPackageCommand{
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dispatchCommand.setTrackingID(trackingID),
		dispatchCommand.setWarehouseID(warehouseID),
	); err != nil {
		return DispatchPackageCommand{}, err
	}

	return dispatchCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchPackageCommand) Validate() error {
	return c.guard.Validate(ErrDispatchPackageCommandIsNotConstructed)
}

// TrackingID returns the package to dispatch.
func (c DispatchPackageCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// WarehouseID returns the dispatching warehouse.
func (c DispatchPackageCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// ActorID returns the acting user, or nil.
func (c DispatchPackageCommand) ActorID() *kernel.UUID {
	return c.actorID
}

func (c *DispatchPackageCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *DispatchPackageCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return ErrNoWarehouseSelected
	}

	c.warehouseID = warehouseID
	return nil
}
