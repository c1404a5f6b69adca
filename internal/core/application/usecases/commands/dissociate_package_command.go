package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrDissociatePackageCommandIsNotConstructed = errors.New(
	"DissociatePackageCommand must be created via NewDissociatePackageCommand constructor",
)

// DissociatePackageCommand represents a package being handed over at the
// counter: released from its bin and closed out as picked up.
type DissociatePackageCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID
	binID      kernel.BinID
	actorID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewDissociatePackageCommand creates a command to dissociate a package from
// a bin. The bin identifier is the one scanned at handover; it must be the
// bin the package actually sits in.
func NewDissociatePackageCommand(
	trackingID kernel.TrackingID, binID kernel.BinID, actorID *kernel.UUID,
) (DissociatePackageCommand, error) {
	dissociateCommand := DissociatePackageCommand{
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dissociateCommand.setTrackingID(trackingID),
		dissociateCommand.setBinID(binID),
	); err != nil {
		return DissociatePackageCommand{}, err
	}

	return dissociateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DissociatePackageCommand) Validate() error {
	return c.guard.Validate(ErrDissociatePackageCommandIsNotConstructed)
}

// TrackingID returns the package to release.
func (c DissociatePackageCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// BinID returns the bin scanned at handover.
func (c DissociatePackageCommand) BinID() kernel.BinID {
	return c.binID
}

// ActorID returns the acting user, or nil.
func (c DissociatePackageCommand) ActorID() *kernel.UUID {
	return c.actorID
}

func (c *DissociatePackageCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *DissociatePackageCommand) setBinID(binID kernel.BinID) error {
	if err := binID.Validate(); err != nil {
		return err
	}

	c.binID = binID
	return nil
}
