package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

const defaultAuditLogsLimit = 100

var ErrGetAuditLogsQueryIsNotConstructed = errors.New(
	"GetAuditLogsQuery must be created via NewGetAuditLogsQuery constructor",
)

// GetAuditLogsQuery retrieves audit trail entries, newest first. Both
// filters are optional; limit caps the page size.
type GetAuditLogsQuery struct {
	trackingID  *kernel.TrackingID
	warehouseID *kernel.UUID
	limit       int

	guard guard.ConstructorGuard
}

// NewGetAuditLogsQuery creates a query over the audit trail.
// A non-positive limit falls back to the default page size.
func NewGetAuditLogsQuery(
	trackingID *kernel.TrackingID, warehouseID *kernel.UUID, limit int,
) (GetAuditLogsQuery, error) {
	if trackingID != nil {
		if err := trackingID.Validate(); err != nil {
			return GetAuditLogsQuery{}, err
		}
	}
	if limit <= 0 {
		limit = defaultAuditLogsLimit
	}

	return GetAuditLogsQuery{
		trackingID:  trackingID,
		warehouseID: warehouseID,
		limit:       limit,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAuditLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditLogsQueryIsNotConstructed)
}

// TrackingID returns the package filter, or nil.
func (q GetAuditLogsQuery) TrackingID() *kernel.TrackingID {
	return q.trackingID
}

// WarehouseID returns the warehouse filter, or nil.
func (q GetAuditLogsQuery) WarehouseID() *kernel.UUID {
	return q.warehouseID
}

// Limit returns the page size.
func (q GetAuditLogsQuery) Limit() int {
	return q.limit
}

// GetAuditLogsQueryResponse is one audit trail entry in the read model.
type GetAuditLogsQueryResponse struct {
	ID         kernel.UUID
	Action     string
	TrackingID string
	UserID     *kernel.UUID
	Details    string
	Timestamp  time.Time
}
