package queries

import (
	"context"
	"database/sql"

	"warehouse/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetStalePutawayQueryHandler lists packages that have been putaway longer
// than the report window.
type GetStalePutawayQueryHandler struct {
	db *gorm.DB
}

// NewGetStalePutawayQueryHandler creates a handler for overdue putaway reports.
func NewGetStalePutawayQueryHandler(db *gorm.DB) GetStalePutawayQueryHandler {
	return GetStalePutawayQueryHandler{db: db}
}

// Handle executes the overdue putaway query, oldest intake first.
func (h GetStalePutawayQueryHandler) Handle(
	ctx context.Context,
	query GetStalePutawayQuery,
) ([]GetStalePutawayQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT tracking_id, bin_id, time_in
		FROM shipments
		WHERE status = ? AND time_in < ?
		ORDER BY time_in
	`, int(shipment.Putaway), query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overdue := make([]GetStalePutawayQueryResponse, 0)
	for rows.Next() {
		var (
			response GetStalePutawayQueryResponse
			binID    sql.NullString
		)

		if err = rows.Scan(&response.TrackingID, &binID, &response.TimeIn); err != nil {
			return nil, err
		}
		if binID.Valid {
			response.BinID = &binID.String
		}

		overdue = append(overdue, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
