package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrAssignPackageCommandIsNotConstructed = errors.New(
	"AssignPackageCommand must be created via NewAssignPackageCommand constructor",
)

// AssignPackageCommand represents storing a scanned package into a bin.
// The acting user is nil for anonymous station scans.
type AssignPackageCommand struct { //nolint:recvcheck //using for validation
	binID       kernel.BinID
	trackingID  kernel.TrackingID
	warehouseID kernel.UUID
	actorID     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignPackageCommand creates a command to putaway a package into a bin.
func NewAssignPackageCommand(
	binID kernel.BinID, trackingID kernel.TrackingID, warehouseID kernel.UUID, actorID *kernel.UUID,
) (AssignPackageCommand, error) {
	assignCommand := AssignPackageCommand{
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setBinID(binID),
		assignCommand.setTrackingID(trackingID),
		assignCommand.setWarehouseID(warehouseID),
	); err != nil {
		return AssignPackageCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPackageCommand) Validate() error {
	return c.guard.Validate(ErrAssignPackageCommandIsNotConstructed)
}

// BinID returns the destination bin identifier.
func (c AssignPackageCommand) BinID() kernel.BinID {
	return c.binID
}

// TrackingID returns the package's tracking identifier.
func (c AssignPackageCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// WarehouseID returns the acting warehouse.
func (c AssignPackageCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// ActorID returns the acting user, or nil for anonymous scans.
func (c AssignPackageCommand) ActorID() *kernel.UUID {
	return c.actorID
}

func (c *AssignPackageCommand) setBinID(binID kernel.BinID) error {
	if err := binID.Validate(); err != nil {
		return err
	}

	c.binID = binID
	return nil
}

func (c *AssignPackageCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *AssignPackageCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return ErrNoWarehouseSelected
	}

	c.warehouseID = warehouseID
	return nil
}
