package bin

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

const (
	// AutoProvisionCapacity is the capacity given to bins created on first scan.
	AutoProvisionCapacity = 1
	// AutoProvisionLocation is the location label given to bins created on first scan.
	AutoProvisionLocation = "Auto-created"
)

// ErrBinIsNotConstructed is returned when a Bin instance was not created
// through the NewBin or RestoreBin factory methods.
var ErrBinIsNotConstructed = errors.New("Bin must be created via NewBin constructor")

// Bin represents a physical storage slot holding in-transit shipments.
// It is an aggregate root owning its identity, capacity, and occupancy status.
//
// Bin follows these invariants:
//   - Must have a valid identity
//   - Capacity must be at least 1
//   - Status is Occupied exactly when putaway occupancy has reached capacity,
//     Available otherwise, unless manually placed in Maintenance
//   - Can only be created through NewBin or RestoreBin
//
// Occupancy itself lives in the shipment ledger (shipments in putaway status
// referencing the bin); the aggregate only records the status derived from it.
type Bin struct {
	id          kernel.BinID
	warehouseID *kernel.UUID
	location    string
	capacity    int
	status      Status

	isConstructed bool
}

// NewBin creates a new Bin with validation.
// The bin starts Available. warehouseID may be nil for an unscoped bin.
func NewBin(id kernel.BinID, warehouseID *kernel.UUID, location string, capacity int) (*Bin, error) {
	b := &Bin{
		status:        Available,
		location:      location,
		warehouseID:   warehouseID,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// NewAutoProvisionedBin creates the bin recorded when an unknown bin barcode
// is scanned for the first time: capacity 1, location "Auto-created",
// Available, scoped to the scanning warehouse.
func NewAutoProvisionedBin(id kernel.BinID, warehouseID kernel.UUID) (*Bin, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}
	return NewBin(id, &warehouseID, AutoProvisionLocation, AutoProvisionCapacity)
}

// RestoreBin reconstructs a Bin from persistence, including its stored status.
func RestoreBin(id kernel.BinID, warehouseID *kernel.UUID, location string, capacity int, status Status) (*Bin, error) {
	b, err := NewBin(id, warehouseID, location, capacity)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	b.status = status

	return b, nil
}

// Validate ensures the Bin instance was properly constructed.
func (b *Bin) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBinIsNotConstructed
	}
	return nil
}

// IsEqual compares two bins by identity.
func (b *Bin) IsEqual(other *Bin) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the bin's identity.
func (b *Bin) ID() kernel.BinID {
	return b.id
}

// Warehouse returns the owning warehouse, or nil for an unscoped bin.
func (b *Bin) Warehouse() *kernel.UUID {
	return b.warehouseID
}

// Location returns the bin's location label.
func (b *Bin) Location() string {
	return b.location
}

// Capacity returns how many putaway shipments the bin may hold.
func (b *Bin) Capacity() int {
	return b.capacity
}

// Status returns the bin's current status.
func (b *Bin) Status() Status {
	return b.status
}

// EnsureScopedTo verifies that the bin belongs to the caller's warehouse.
// A bin without a warehouse passes (it is claimed on assignment); a bin
// owned by a different warehouse is rejected with a CrossWarehouseError.
func (b *Bin) EnsureScopedTo(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	if b.warehouseID != nil && !b.warehouseID.IsEqual(warehouseID) {
		return errs.NewCrossWarehouseError("bin", b.id.String(), b.warehouseID.String())
	}
	return nil
}

// EnsureAvailable verifies that the bin can be prepared for assignment.
// Occupied and maintenance bins are rejected with a BinUnavailableError.
func (b *Bin) EnsureAvailable() error {
	if b.status != Available {
		return NewBinUnavailableError(b.id.String(), b.status)
	}
	return nil
}

// EnsureStorable verifies that the bin is not under a maintenance hold.
// A full bin passes here; capacity is enforced separately against the
// putaway occupancy so that a breach surfaces as a CapacityExceededError.
func (b *Bin) EnsureStorable() error {
	if b.status == Maintenance {
		return NewBinUnavailableError(b.id.String(), b.status)
	}
	return nil
}

// RecordOccupancy updates the bin's status from its current putaway
// occupancy after a shipment was stored: at or over capacity the bin flips
// to Occupied. A bin in maintenance keeps its manual override.
func (b *Bin) RecordOccupancy(putawayCount int) {
	if b.status == Maintenance {
		return
	}

	if putawayCount >= b.capacity {
		b.status = Occupied
	} else {
		b.status = Available
	}
}

// ReleaseIfEmpty reverts the bin to Available when no shipments of any
// status reference it anymore. The revert applies regardless of a prior
// manual maintenance override. Returns true if the status changed.
func (b *Bin) ReleaseIfEmpty(remaining int) bool {
	if remaining == 0 && b.status != Available {
		b.status = Available
		return true
	}
	return false
}

func (b *Bin) setID(id kernel.BinID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bin) setCapacity(capacity int) error {
	if capacity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("capacity is invalid", fmt.Errorf("%d is less than 1", capacity))
	}
	b.capacity = capacity
	return nil
}
