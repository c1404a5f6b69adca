// Package shipment contains the Shipment aggregate: a tracked package moving
// through intake, bin storage, picking, and dispatch.
//
// The lifecycle is modeled as an explicit state machine on Status. Every
// transition method validates the shipment's current recorded state and
// returns a typed InvalidStateTransitionError on mismatch, so illegal
// transitions are modeled errors rather than silently-overwritten fields.
// The one deliberate exception is Manifest, which overwrites state to make
// manifest re-uploads converge.
package shipment
