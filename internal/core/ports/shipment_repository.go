// Package ports defines repository interfaces for the warehouse domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. The tracking identifier is the natural key; all lookups are
// by normalized tracking ID.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate,
	// including cleared bin/operator references and reset flags.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its tracking identifier.
	// Returns errs.ObjectNotFoundError when no such shipment exists.
	Get(ctx context.Context, trackingID kernel.TrackingID) (*shipment.Shipment, error)

	// GetForUpdate retrieves a shipment like Get but takes a row lock,
	// serializing concurrent mutations of the same shipment within the
	// enclosing transaction.
	GetForUpdate(ctx context.Context, trackingID kernel.TrackingID) (*shipment.Shipment, error)

	// GetOrCreate retrieves the shipment with the given tracking identifier,
	// creating an unregistered one scoped to the warehouse if absent.
	// The created flag reports whether a new row was written.
	GetOrCreate(ctx context.Context, trackingID kernel.TrackingID, warehouseID kernel.UUID) (agg *shipment.Shipment, created bool, err error)

	// CountPutawayInBin counts shipments currently putaway in the bin.
	// This is the bin's occupancy for capacity admission.
	CountPutawayInBin(ctx context.Context, binID kernel.BinID) (int, error)

	// CountInBin counts shipments of any status still referencing the bin.
	// Zero means the bin is empty and may revert to available.
	CountInBin(ctx context.Context, binID kernel.BinID) (int, error)
}
