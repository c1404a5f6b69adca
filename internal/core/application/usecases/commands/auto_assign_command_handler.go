package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/operator"
	"warehouse/internal/core/domain/services"
)

// AutoAssignCommandHandler handles round-robin picklist assignment.
// An empty operator pool rejects the whole batch with no partial effect;
// otherwise items are processed best-effort like manifest reconciliation.
type AutoAssignCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAutoAssignCommandHandler creates a handler for round-robin assignment.
func NewAutoAssignCommandHandler(uowFactory AssignmentUoWFactory) AutoAssignCommandHandler {
	return AutoAssignCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the round-robin assignment command.
// Loads the warehouse's active operators, pairs the i-th identifier with
// operator i modulo pool size (pool ordered by identity), then assigns each
// package in its own transaction.
func (h AutoAssignCommandHandler) Handle(ctx context.Context, command AutoAssignCommand) ([]ItemResult, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	operators, err := h.loadOperators(ctx, command.WarehouseID())
	if err != nil {
		return nil, err
	}

	assignments, err := services.NewRoundRobinDistributor().Distribute(command.TrackingIDs(), operators)
	if err != nil {
		return nil, err
	}

	results := make([]ItemResult, 0, len(command.TrackingIDs()))
	for _, trackingID := range command.TrackingIDs() {
		err = assignShipmentToOperator(
			ctx, h.uowFactory.Create(), trackingID, assignments[trackingID],
			command.WarehouseID(), command.ActorID(),
		)
		if err != nil {
			results = append(results, ItemResult{TrackingID: trackingID, Outcome: OutcomeFailed, Err: err})
			continue
		}
		results = append(results, ItemResult{TrackingID: trackingID, Outcome: OutcomeUpdated})
	}

	return results, nil
}

func (h AutoAssignCommandHandler) loadOperators(
	ctx context.Context, warehouseID kernel.UUID,
) ([]*operator.Operator, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OperatorRepository().GetActiveByWarehouse(ctx, warehouseID)
}
