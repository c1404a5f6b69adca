package http

import "time"

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ScanBinRequest carries a bin barcode scanned at the intake station.
type ScanBinRequest struct {
	BinID string `json:"bin_id"`
}

// ScanBinResponse reports the scanned bin's state, including whether the
// scan auto-provisioned it.
type ScanBinResponse struct {
	BinID     string `json:"bin_id"`
	Location  string `json:"location"`
	Capacity  int    `json:"capacity"`
	Occupancy int    `json:"occupancy"`
	Created   bool   `json:"created"`
}

// AssignPackageRequest stores a package into a bin.
type AssignPackageRequest struct {
	BinID      string `json:"bin_id"`
	TrackingID string `json:"tracking_id"`
}

// ReconcileManifestRequest carries the tracking identifiers of an uploaded
// manifest.
type ReconcileManifestRequest struct {
	TrackingIDs []string `json:"tracking_ids"`
}

// PickupPackageRequest confirms a physical pick. Confirmation is the
// identifier scanned off the retrieved item.
type PickupPackageRequest struct {
	TrackingID   string `json:"tracking_id"`
	Confirmation string `json:"confirmation"`
}

// DispatchPackageRequest sends a package out of the warehouse.
type DispatchPackageRequest struct {
	TrackingID string `json:"tracking_id"`
}

// MarkDeliveredRequest confirms delivery of a dispatched package.
type MarkDeliveredRequest struct {
	TrackingID string `json:"tracking_id"`
}

// DissociatePackageRequest releases a package from its bin outside the pick
// path.
type DissociatePackageRequest struct {
	TrackingID string `json:"tracking_id"`
	BinID      string `json:"bin_id"`
}

// AssignOperatorRequest puts packages on a chosen operator's picklist.
type AssignOperatorRequest struct {
	TrackingIDs []string `json:"tracking_ids"`
	OperatorID  string   `json:"operator_id"`
}

// AutoAssignRequest distributes packages over the active operator pool.
type AutoAssignRequest struct {
	TrackingIDs []string `json:"tracking_ids"`
}

// BatchItemResult reports one tracking identifier's outcome in a batch
// operation.
type BatchItemResult struct {
	TrackingID string `json:"tracking_id"`
	Outcome    string `json:"outcome"`
	Error      string `json:"error,omitempty"`
}

// Package is the package read model returned by lookups.
type Package struct {
	TrackingID  string     `json:"tracking_id"`
	Status      string     `json:"status"`
	Manifested  bool       `json:"manifested"`
	WarehouseID *string    `json:"warehouse_id,omitempty"`
	BinID       *string    `json:"bin_id,omitempty"`
	BinLocation *string    `json:"bin_location,omitempty"`
	OperatorID  *string    `json:"operator_id,omitempty"`
	TimeIn      time.Time  `json:"time_in"`
	TimeOut     *time.Time `json:"time_out,omitempty"`
}

// BinPackage is one stored package in a bin lookup.
type BinPackage struct {
	TrackingID string    `json:"tracking_id"`
	Status     string    `json:"status"`
	Manifested bool      `json:"manifested"`
	TimeIn     time.Time `json:"time_in"`
}

// Bin is the bin-with-contents read model.
type Bin struct {
	BinID    string       `json:"bin_id"`
	Location string       `json:"location"`
	Capacity int          `json:"capacity"`
	Status   string       `json:"status"`
	Packages []BinPackage `json:"packages"`
}

// AuditLog is one audit trail entry.
type AuditLog struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	TrackingID string    `json:"tracking_id"`
	UserID     *string   `json:"user_id,omitempty"`
	Details    string    `json:"details"`
	Timestamp  time.Time `json:"timestamp"`
}

// Operator is one assignable operator with their current picklist load.
type Operator struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PicklistCount int    `json:"picklist_count"`
}
