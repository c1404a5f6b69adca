package queries

import (
	"context"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAuditLogsQueryHandler retrieves audit trail pages from the database.
type GetAuditLogsQueryHandler struct {
	db *gorm.DB
}

// NewGetAuditLogsQueryHandler creates a handler for audit trail queries.
func NewGetAuditLogsQueryHandler(db *gorm.DB) GetAuditLogsQueryHandler {
	return GetAuditLogsQueryHandler{db: db}
}

// Handle executes the audit trail query, newest entries first.
func (h GetAuditLogsQueryHandler) Handle(
	ctx context.Context,
	query GetAuditLogsQuery,
) ([]GetAuditLogsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT id, action, tracking_id, user_id, details, timestamp
		FROM audit_logs
		WHERE 1 = 1
	`
	args := make([]any, 0, 3)
	if query.TrackingID() != nil {
		sqlQuery += " AND tracking_id = ?"
		args = append(args, query.TrackingID().String())
	}
	if query.WarehouseID() != nil {
		sqlQuery += " AND warehouse_id = ?"
		args = append(args, query.WarehouseID().Bytes())
	}
	sqlQuery += " ORDER BY timestamp DESC LIMIT ?"
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetAuditLogsQueryResponse, 0)
	for rows.Next() {
		var (
			entry  GetAuditLogsQueryResponse
			id     uuid.UUID
			action int
			userID *uuid.UUID
		)

		err = rows.Scan(&id, &action, &entry.TrackingID, &userID, &entry.Details, &entry.Timestamp)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID
		entry.Action = audit.Action(action).String()

		if userID != nil {
			actor, idErr := kernel.UUIDFromBytes((*userID)[:])
			if idErr != nil {
				return nil, idErr
			}
			entry.UserID = &actor
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
