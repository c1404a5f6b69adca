// Package kernel contains shared value objects used across the domain model.
//
// The kernel provides the identity types for the warehouse domain:
//
//   - TrackingID: normalized shipment identity (trimmed, upper-cased)
//   - BinID: normalized storage bin identity
//   - UUID: wrapper over github.com/google/uuid used for warehouses,
//     operators, and audit entries
//
// All kernel types are immutable value objects. Zero values are invalid and
// must be constructed through the provided factory functions; Validate()
// detects improperly constructed instances when reconstructing entities from
// persistence or external input.
package kernel
