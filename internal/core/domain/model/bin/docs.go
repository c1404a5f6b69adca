// Package bin contains the Bin aggregate: a finite-capacity physical storage
// slot for in-transit shipments.
//
// The aggregate enforces the occupancy invariant (Occupied exactly when
// putaway occupancy has reached capacity), warehouse scoping, and the
// availability gate used during scanning. Occupancy counting itself belongs
// to the shipment ledger; the capacity allocator in
// internal/core/domain/services combines both to gate assignments.
package bin
