package commands

import (
	"context"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/audit"
)

// DispatchPackageCommandHandler handles outbound dispatch of a package.
// Dispatching frees the package's bin slot; a bin emptied of every shipment
// reverts to available regardless of a prior manual override.
type DispatchPackageCommandHandler struct {
	uowFactory StorageUoWFactory
}

// NewDispatchPackageCommandHandler creates a handler for package dispatch.
func NewDispatchPackageCommandHandler(uowFactory StorageUoWFactory) DispatchPackageCommandHandler {
	return DispatchPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
// The shipment must be picked or picklist-created; a second dispatch fails
// on the recorded state. Shipment update, bin release, and the dispatched
// audit entry commit atomically.
func (h DispatchPackageCommandHandler) Handle(ctx context.Context, command DispatchPackageCommand) error {
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

	if err = pkg.EnsureScopedTo(command.WarehouseID()); err != nil {
		return err
	}

	departedBinID := pkg.Bin()

	if err = pkg.Dispatch(time.Now().UTC()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, pkg); err != nil {
		return err
	}

	if departedBinID != nil {
		departedBin, binErr := binRepo.GetForUpdate(ctx, *departedBinID)
		if binErr != nil {
			return binErr
		}

		remaining, binErr := shipmentRepo.CountInBin(ctx, *departedBinID)
		if binErr != nil {
			return binErr
		}

		if departedBin.ReleaseIfEmpty(remaining) {
			if binErr = binRepo.Update(ctx, departedBin); binErr != nil {
				return binErr
			}
		}
	}

	warehouseID := command.WarehouseID()
	entry, err := audit.NewEntry(
		audit.ActionDispatched, command.TrackingID(), &warehouseID, command.ActorID(),
		fmt.Sprintf("Package %s dispatched", command.TrackingID()),
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
