package ports

import (
	"context"

	"warehouse/internal/core/domain/model/bin"
	"warehouse/internal/core/domain/model/kernel"
)

// BinRepository defines the persistence contract for bin aggregates.
// Bins are keyed by their normalized human-readable identifier.
type BinRepository interface {
	// Add persists a new bin aggregate to storage.
	Add(ctx context.Context, aggregate *bin.Bin) error

	// Update persists changes to an existing bin aggregate.
	Update(ctx context.Context, aggregate *bin.Bin) error

	// Get retrieves a bin aggregate by its identifier.
	// Returns errs.ObjectNotFoundError when no such bin exists.
	Get(ctx context.Context, id kernel.BinID) (*bin.Bin, error)

	// GetForUpdate retrieves a bin like Get but takes a row lock, so
	// concurrent capacity checks against the same bin serialize within
	// the enclosing transaction.
	GetForUpdate(ctx context.Context, id kernel.BinID) (*bin.Bin, error)

	// GetOrCreate retrieves the bin with the given identifier, auto
	// provisioning a single-slot bin scoped to the warehouse if absent.
	// The row is locked either way; created reports whether a new row
	// was written.
	GetOrCreate(ctx context.Context, id kernel.BinID, warehouseID kernel.UUID) (agg *bin.Bin, created bool, err error)
}
