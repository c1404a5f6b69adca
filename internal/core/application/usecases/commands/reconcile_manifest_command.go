package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrReconcileManifestCommandIsNotConstructed = errors.New(
	"ReconcileManifestCommand must be created via NewReconcileManifestCommand constructor",
)

// ReconcileManifestCommand represents pre-registering a batch of expected
// packages from a carrier manifest. Raw identifiers are trimmed,
// deduplicated, and normalized at construction; blank entries are dropped.
type ReconcileManifestCommand struct { //nolint:recvcheck //using for validation
	trackingIDs []kernel.TrackingID
	warehouseID kernel.UUID
	actorID     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewReconcileManifestCommand creates a command to reconcile a manifest.
// Returns ErrNoWarehouseSelected when the caller's warehouse is unresolved,
// before any item is considered.
func NewReconcileManifestCommand(
	rawTrackingIDs []string, warehouseID kernel.UUID, actorID *kernel.UUID,
) (ReconcileManifestCommand, error) {
	if err := warehouseID.Validate(); err != nil {
		return ReconcileManifestCommand{}, ErrNoWarehouseSelected
	}

	trackingIDs, err := normalizeTrackingIDs(rawTrackingIDs)
	if err != nil {
		return ReconcileManifestCommand{}, err
	}

	return ReconcileManifestCommand{
		trackingIDs: trackingIDs,
		warehouseID: warehouseID,
		actorID:     actorID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileManifestCommand) Validate() error {
	return c.guard.Validate(ErrReconcileManifestCommandIsNotConstructed)
}

// TrackingIDs returns the normalized, deduplicated manifest identifiers.
func (c ReconcileManifestCommand) TrackingIDs() []kernel.TrackingID {
	return c.trackingIDs
}

// WarehouseID returns the warehouse expecting the manifest.
func (c ReconcileManifestCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// ActorID returns the acting user, or nil.
func (c ReconcileManifestCommand) ActorID() *kernel.UUID {
	return c.actorID
}
