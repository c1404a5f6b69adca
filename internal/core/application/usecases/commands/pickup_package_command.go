package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrPickupPackageCommandIsNotConstructed = errors.New(
	"PickupPackageCommand must be created via NewPickupPackageCommand constructor",
)

// PickupPackageCommand represents an operator picking a package out of its
// bin. The confirmation identifier is the barcode scanned at the shelf; it
// must match the package being picked.
type PickupPackageCommand struct { //nolint:recvcheck //using for validation
	trackingID   kernel.TrackingID
	confirmation kernel.TrackingID
	actorID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickupPackageCommand creates a command to pick a package.
func NewPickupPackageCommand(
	trackingID kernel.TrackingID, confirmation kernel.TrackingID, actorID *kernel.UUID,
) (PickupPackageCommand, error) {
	pickupCommand := PickupPackageCommand{
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pickupCommand.setTrackingID(trackingID),
		pickupCommand.setConfirmation(confirmation),
	); err != nil {
		return PickupPackageCommand{}, err
	}

	return pickupCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PickupPackageCommand) Validate() error {
	return c.guard.Validate(ErrPickupPackageCommandIsNotConstructed)
}

// TrackingID returns the package to pick.
func (c PickupPackageCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Confirmation returns the identifier scanned as confirmation.
func (c PickupPackageCommand) Confirmation() kernel.TrackingID {
	return c.confirmation
}

// ActorID returns the acting user, or nil.
func (c PickupPackageCommand) ActorID() *kernel.UUID {
	return c.actorID
}

func (c *PickupPackageCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *PickupPackageCommand) setConfirmation(confirmation kernel.TrackingID) error {
	if err := confirmation.Validate(); err != nil {
		return err
	}

	c.confirmation = confirmation
	return nil
}
