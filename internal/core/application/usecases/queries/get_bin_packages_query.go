package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetBinPackagesQueryIsNotConstructed = errors.New(
	"GetBinPackagesQuery must be created via NewGetBinPackagesQuery constructor",
)

// GetBinPackagesQuery retrieves a bin with the packages it currently holds.
type GetBinPackagesQuery struct {
	binID       kernel.BinID
	warehouseID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBinPackagesQuery creates a query for one bin's contents. A nil
// warehouse searches across all warehouses.
func NewGetBinPackagesQuery(binID kernel.BinID, warehouseID *kernel.UUID) (GetBinPackagesQuery, error) {
	if err := binID.Validate(); err != nil {
		return GetBinPackagesQuery{}, err
	}

	return GetBinPackagesQuery{
		binID:       binID,
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBinPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetBinPackagesQueryIsNotConstructed)
}

// BinID returns the searched bin identifier.
func (q GetBinPackagesQuery) BinID() kernel.BinID {
	return q.binID
}

// WarehouseID returns the warehouse filter, or nil.
func (q GetBinPackagesQuery) WarehouseID() *kernel.UUID {
	return q.warehouseID
}

// BinPackage is one package inside the bin read model.
type BinPackage struct {
	TrackingID string
	Status     string
	Manifested bool
	TimeIn     time.Time
}

// GetBinPackagesQueryResponse is the bin-with-contents read model.
type GetBinPackagesQueryResponse struct {
	BinID    string
	Location string
	Capacity int
	Status   string
	Packages []BinPackage
}
