package queries

import (
	"context"
	"database/sql"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler looks up one package with its bin location.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for package lookups.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the package lookup.
// Returns errs.ObjectNotFoundError when the identifier is unknown (or
// outside the warehouse filter).
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	sqlQuery := `
		SELECT
			s.tracking_id,
			s.status,
			s.manifested,
			s.warehouse_id,
			s.bin_id,
			b.location,
			s.operator_id,
			s.time_in,
			s.time_out
		FROM shipments s
		LEFT JOIN bins b ON b.id = s.bin_id
		WHERE s.tracking_id = ?
	`
	args := []any{query.TrackingID().String()}
	if query.WarehouseID() != nil {
		sqlQuery += " AND s.warehouse_id = ?"
		args = append(args, query.WarehouseID().Bytes())
	}

	row := h.db.WithContext(ctx).Raw(sqlQuery, args...).Row()

	var (
		response    GetShipmentQueryResponse
		status      int
		warehouseID *uuid.UUID
		binID       sql.NullString
		binLocation sql.NullString
		operatorID  *uuid.UUID
		timeOut     sql.NullTime
	)

	err := row.Scan(
		&response.TrackingID,
		&status,
		&response.Manifested,
		&warehouseID,
		&binID,
		&binLocation,
		&operatorID,
		&response.TimeIn,
		&timeOut,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipment", query.TrackingID().String())
	}
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	response.Status = shipment.Status(status).String()
	if warehouseID != nil {
		id, idErr := kernel.UUIDFromBytes((*warehouseID)[:])
		if idErr != nil {
			return GetShipmentQueryResponse{}, idErr
		}
		response.WarehouseID = &id
	}
	if operatorID != nil {
		id, idErr := kernel.UUIDFromBytes((*operatorID)[:])
		if idErr != nil {
			return GetShipmentQueryResponse{}, idErr
		}
		response.OperatorID = &id
	}
	if binID.Valid {
		response.BinID = &binID.String
	}
	if binLocation.Valid {
		response.BinLocation = &binLocation.String
	}
	if timeOut.Valid {
		out := timeOut.Time
		response.TimeOut = &out
	}

	return response, nil
}
