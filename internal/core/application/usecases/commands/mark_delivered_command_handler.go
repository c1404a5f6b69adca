package commands

import (
	"context"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/audit"
)

// MarkDeliveredCommandHandler handles delivery confirmation of a dispatched
// package.
type MarkDeliveredCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for delivery confirmation.
func NewMarkDeliveredCommandHandler(uowFactory LedgerUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation command.
// The shipment must be dispatched; the status change and the delivered
// audit entry commit in the same transaction.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, command MarkDeliveredCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	pkg, err := shipmentRepo.GetForUpdate(ctx, command.TrackingID())
	if err != nil {
		return err
	}

	if err = pkg.Deliver(); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, pkg); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		audit.ActionDelivered, command.TrackingID(), pkg.Warehouse(), command.ActorID(),
		fmt.Sprintf("Package %s delivered", command.TrackingID()),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.AuditLogRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
