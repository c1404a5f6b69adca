package commands

import (
	"context"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/audit"
)

// PickupPackageCommandHandler handles picking a package out of its bin.
// A confirmation mismatch rejects the pick without any state change.
type PickupPackageCommandHandler struct {
	uowFactory StorageUoWFactory
}

// NewPickupPackageCommandHandler creates a handler for package picks.
func NewPickupPackageCommandHandler(uowFactory StorageUoWFactory) PickupPackageCommandHandler {
	return PickupPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup command.
// Locks the shipment row, verifies the scanned confirmation identifier,
// advances the shipment to picked, recomputes the bin status now that the
// package no longer consumes a putaway slot, and appends the updated audit
// entry in the same transaction.
func (h PickupPackageCommandHandler) Handle(ctx context.Context, command PickupPackageCommand) error {
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
	binRepo := uow.BinRepository()

	pkg, err := shipmentRepo.GetForUpdate(ctx, command.TrackingID())
	if err != nil {
		return err
	}

	assignedBinID := pkg.Bin()

	if err = pkg.Pick(command.Confirmation()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, pkg); err != nil {
		return err
	}

	// The package left putaway, so its bin frees a slot.
	if assignedBinID != nil {
		assignedBin, binErr := binRepo.GetForUpdate(ctx, *assignedBinID)
		if binErr != nil {
			return binErr
		}

		putaway, binErr := shipmentRepo.CountPutawayInBin(ctx, *assignedBinID)
		if binErr != nil {
			return binErr
		}

		assignedBin.RecordOccupancy(putaway)
		if binErr = binRepo.Update(ctx, assignedBin); binErr != nil {
			return binErr
		}
	}

	entry, err := audit.NewEntry(
		audit.ActionUpdated, command.TrackingID(), pkg.Warehouse(), command.ActorID(),
		fmt.Sprintf("Package %s picked", command.TrackingID()),
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
