package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents a carrier confirming that a dispatched
// package reached its recipient.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID
	actorID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to confirm delivery.
func NewMarkDeliveredCommand(trackingID kernel.TrackingID, actorID *kernel.UUID) (MarkDeliveredCommand, error) {
	deliveredCommand := MarkDeliveredCommand{
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := deliveredCommand.setTrackingID(trackingID); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return deliveredCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// TrackingID returns the delivered package's identifier.
func (c MarkDeliveredCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// ActorID returns the acting user, or nil.
func (c MarkDeliveredCommand) ActorID() *kernel.UUID {
	return c.actorID
}

func (c *MarkDeliveredCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}
