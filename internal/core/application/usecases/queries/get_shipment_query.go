// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves the current state of one package by its
// tracking identifier, optionally restricted to a warehouse.
type GetShipmentQuery struct {
	trackingID  kernel.TrackingID
	warehouseID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for one package. A nil warehouse
// searches across all warehouses.
func NewGetShipmentQuery(trackingID kernel.TrackingID, warehouseID *kernel.UUID) (GetShipmentQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		trackingID:  trackingID,
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// TrackingID returns the searched identifier.
func (q GetShipmentQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

// WarehouseID returns the warehouse filter, or nil.
func (q GetShipmentQuery) WarehouseID() *kernel.UUID {
	return q.warehouseID
}

// GetShipmentQueryResponse is the package read model.
type GetShipmentQueryResponse struct {
	TrackingID  string
	Status      string
	Manifested  bool
	WarehouseID *kernel.UUID
	BinID       *string
	BinLocation *string
	OperatorID  *kernel.UUID
	TimeIn      time.Time
	TimeOut     *time.Time
}
