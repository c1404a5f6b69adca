package services

import (
	"warehouse/internal/core/domain/model/bin"
)

// CapacityAllocator is a domain service deciding whether a bin can admit
// more shipments. Occupancy counts only shipments currently putaway in the
// bin; shipments that progressed to a picklist or beyond no longer consume
// capacity for admission purposes.
type CapacityAllocator struct{}

// NewCapacityAllocator creates a new CapacityAllocator instance.
func NewCapacityAllocator() CapacityAllocator {
	return CapacityAllocator{}
}

// EnsureAdmits verifies that storing additional shipments into the bin keeps
// it within capacity. occupancy is the number of shipments currently putaway
// in the bin.
//
// Returns bin.BinUnavailableError when the bin is under a maintenance hold,
// and bin.CapacityExceededError when admission would overflow it. A full bin
// carries the Occupied status, so the breach is decided on the occupancy
// count, not on the stored status.
func (a CapacityAllocator) EnsureAdmits(b *bin.Bin, occupancy int, additional int) error {
	if err := b.Validate(); err != nil {
		return err
	}

	if err := b.EnsureStorable(); err != nil {
		return err
	}

	if occupancy+additional > b.Capacity() {
		return bin.NewCapacityExceededError(b.ID().String(), b.Capacity(), occupancy)
	}

	return nil
}
