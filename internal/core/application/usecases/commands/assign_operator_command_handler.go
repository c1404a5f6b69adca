package commands

import (
	"context"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/kernel"
)

// AssignOperatorCommandHandler handles manual picklist assignment.
// The operator is validated once up front; each package then moves to
// picklist-created in its own transaction, best-effort.
type AssignOperatorCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignOperatorCommandHandler creates a handler for manual assignment.
func NewAssignOperatorCommandHandler(uowFactory AssignmentUoWFactory) AssignOperatorCommandHandler {
	return AssignOperatorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manual assignment command.
// The operator must exist, hold the operator role, be active, and belong to
// the warehouse; otherwise the whole batch is rejected before any item.
// Per item: the package must be putaway in the warehouse; it gets the
// operator and picklist-created status plus one updated audit entry, and
// its bin's occupancy is recomputed since it no longer consumes a slot.
func (h AssignOperatorCommandHandler) Handle(
	ctx context.Context, command AssignOperatorCommand,
) ([]ItemResult, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	if err := h.checkOperator(ctx, command.OperatorID(), command.WarehouseID()); err != nil {
		return nil, err
	}

	results := make([]ItemResult, 0, len(command.TrackingIDs()))
	for _, trackingID := range command.TrackingIDs() {
		if err := h.assignOne(ctx, command, trackingID); err != nil {
			results = append(results, ItemResult{TrackingID: trackingID, Outcome: OutcomeFailed, Err: err})
			continue
		}
		results = append(results, ItemResult{TrackingID: trackingID, Outcome: OutcomeUpdated})
	}

	return results, nil
}

func (h AssignOperatorCommandHandler) checkOperator(
	ctx context.Context, operatorID kernel.UUID, warehouseID kernel.UUID,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignee, err := uow.OperatorRepository().Get(ctx, operatorID)
	if err != nil {
		return err
	}

	return assignee.EnsureAssignable(warehouseID)
}

func (h AssignOperatorCommandHandler) assignOne(
	ctx context.Context, command AssignOperatorCommand, trackingID kernel.TrackingID,
) error {
	return assignShipmentToOperator(
		ctx, h.uowFactory.Create(), trackingID, command.OperatorID(),
		command.WarehouseID(), command.ActorID(),
	)
}

// assignShipmentToOperator moves one putaway package onto an operator's
// picklist inside a single transaction, shared by the manual and the
// round-robin assignment paths.
func assignShipmentToOperator(
	ctx context.Context,
	uow AssignmentUoW,
	trackingID kernel.TrackingID,
	operatorID kernel.UUID,
	warehouseID kernel.UUID,
	actorID *kernel.UUID,
) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	binRepo := uow.BinRepository()

	pkg, err := shipmentRepo.GetForUpdate(ctx, trackingID)
	if err != nil {
		return err
	}

	if err = pkg.EnsureScopedTo(warehouseID); err != nil {
		return err
	}

	assignedBinID := pkg.Bin()

	if err = pkg.AssignOperator(operatorID); err != nil {
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
		audit.ActionUpdated, trackingID, &warehouseID, actorID,
		fmt.Sprintf("Package %s assigned to operator %s", trackingID, operatorID),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.AuditLogRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
