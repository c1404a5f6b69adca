package commands

import (
	"context"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/services"
)

// AssignPackageCommandHandler handles the putaway of a package into a bin.
// The bin row is locked for the whole transaction, so two concurrent assigns
// into the last free slot serialize and exactly one fails on capacity.
type AssignPackageCommandHandler struct {
	uowFactory StorageUoWFactory
}

// NewAssignPackageCommandHandler creates a handler for package putaway.
func NewAssignPackageCommandHandler(uowFactory StorageUoWFactory) AssignPackageCommandHandler {
	return AssignPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the package putaway command.
// Resolves or creates the bin and the shipment, gates admission through the
// capacity allocator, moves the shipment to putaway, recomputes the bin
// status, and appends the assigned audit entry. A rejected item leaves no
// partial change: shipment, bin, and audit commit together or not at all.
func (h AssignPackageCommandHandler) Handle(ctx context.Context, command AssignPackageCommand) error {
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

	binRepo := uow.BinRepository()
	shipmentRepo := uow.ShipmentRepository()
	auditRepo := uow.AuditLogRepository()

	targetBin, _, err := binRepo.GetOrCreate(ctx, command.BinID(), command.WarehouseID())
	if err != nil {
		return err
	}

	if err = targetBin.EnsureScopedTo(command.WarehouseID()); err != nil {
		return err
	}

	occupancy, err := shipmentRepo.CountPutawayInBin(ctx, command.BinID())
	if err != nil {
		return err
	}

	if err = services.NewCapacityAllocator().EnsureAdmits(targetBin, occupancy, 1); err != nil {
		return err
	}

	pkg, _, err := shipmentRepo.GetOrCreate(ctx, command.TrackingID(), command.WarehouseID())
	if err != nil {
		return err
	}

	if err = pkg.EnsureScopedTo(command.WarehouseID()); err != nil {
		return err
	}

	if err = pkg.AssignToBin(command.BinID(), command.WarehouseID()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, pkg); err != nil {
		return err
	}

	targetBin.RecordOccupancy(occupancy + 1)
	if err = binRepo.Update(ctx, targetBin); err != nil {
		return err
	}

	warehouseID := command.WarehouseID()
	entry, err := audit.NewEntry(
		audit.ActionAssigned, command.TrackingID(), &warehouseID, command.ActorID(),
		fmt.Sprintf("Package %s assigned to bin %s", command.TrackingID(), command.BinID()),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = auditRepo.Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
