package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/operator"
)

// OperatorRepository defines the read contract for warehouse staff.
// Operator accounts are administered outside the engine, so there are no
// mutators here.
type OperatorRepository interface {
	// Get retrieves an operator by identity.
	// Returns errs.ObjectNotFoundError when no such operator exists.
	Get(ctx context.Context, id kernel.UUID) (*operator.Operator, error)

	// GetActiveByWarehouse retrieves the active operators (role OPERATOR)
	// of a warehouse, ordered by identity.
	GetActiveByWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*operator.Operator, error)
}
