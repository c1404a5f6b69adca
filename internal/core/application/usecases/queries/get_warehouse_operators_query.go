package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetWarehouseOperatorsQueryIsNotConstructed = errors.New(
	"GetWarehouseOperatorsQuery must be created via NewGetWarehouseOperatorsQuery constructor",
)

// GetWarehouseOperatorsQuery retrieves the active operators of a warehouse,
// the pool picklists can be assigned to.
type GetWarehouseOperatorsQuery struct {
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWarehouseOperatorsQuery creates a query for a warehouse's operators.
func NewGetWarehouseOperatorsQuery(warehouseID kernel.UUID) (GetWarehouseOperatorsQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return GetWarehouseOperatorsQuery{}, err
	}

	return GetWarehouseOperatorsQuery{
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWarehouseOperatorsQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehouseOperatorsQueryIsNotConstructed)
}

// WarehouseID returns the warehouse whose operators are listed.
func (q GetWarehouseOperatorsQuery) WarehouseID() kernel.UUID {
	return q.warehouseID
}

// GetWarehouseOperatorsQueryResponse is one operator in the read model,
// with the number of packages currently on their picklist.
type GetWarehouseOperatorsQueryResponse struct {
	ID            kernel.UUID
	Name          string
	PicklistCount int
}
