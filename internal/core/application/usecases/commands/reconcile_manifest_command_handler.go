package commands

import (
	"context"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/kernel"
)

// ReconcileManifestCommandHandler pre-registers manifested packages.
// Each identifier runs in its own transaction: the batch is best-effort and
// never aborts on a failed item.
type ReconcileManifestCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewReconcileManifestCommandHandler creates a handler for manifest reconciliation.
func NewReconcileManifestCommandHandler(uowFactory LedgerUoWFactory) ReconcileManifestCommandHandler {
	return ReconcileManifestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manifest reconciliation command.
// Per identifier: upsert the shipment to manifested status with the
// manifested flag set and the warehouse overwritten, plus one updated audit
// entry in the same transaction. The report distinguishes created, updated,
// and failed items.
func (h ReconcileManifestCommandHandler) Handle(
	ctx context.Context, command ReconcileManifestCommand,
) ([]ItemResult, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	results := make([]ItemResult, 0, len(command.TrackingIDs()))
	for _, trackingID := range command.TrackingIDs() {
		outcome, err := h.reconcileOne(ctx, command, trackingID)
		if err != nil {
			results = append(results, ItemResult{TrackingID: trackingID, Outcome: OutcomeFailed, Err: err})
			continue
		}
		results = append(results, ItemResult{TrackingID: trackingID, Outcome: outcome})
	}

	return results, nil
}

func (h ReconcileManifestCommandHandler) reconcileOne(
	ctx context.Context, command ReconcileManifestCommand, trackingID kernel.TrackingID,
) (ItemOutcome, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OutcomeFailed, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	pkg, created, err := shipmentRepo.GetOrCreate(ctx, trackingID, command.WarehouseID())
	if err != nil {
		return OutcomeFailed, err
	}

	if err = pkg.Manifest(command.WarehouseID()); err != nil {
		return OutcomeFailed, err
	}

	if err = shipmentRepo.Update(ctx, pkg); err != nil {
		return OutcomeFailed, err
	}

	warehouseID := command.WarehouseID()
	entry, err := audit.NewEntry(
		audit.ActionUpdated, trackingID, &warehouseID, command.ActorID(),
		fmt.Sprintf("Package %s reconciled from manifest", trackingID),
		time.Now().UTC(),
	)
	if err != nil {
		return OutcomeFailed, err
	}

	if err = uow.AuditLogRepository().Add(ctx, entry); err != nil {
		return OutcomeFailed, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OutcomeFailed, err
	}

	if created {
		return OutcomeCreated, nil
	}
	return OutcomeUpdated, nil
}
