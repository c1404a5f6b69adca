// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the warehouse system. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - CapacityAllocator: admits shipments into bins within capacity
//   - RoundRobinDistributor: spreads picklist assignments over operators
package services
