package queries

import (
	"context"
	"database/sql"
	"errors"

	"warehouse/internal/core/domain/model/bin"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetBinPackagesQueryHandler looks up a bin and the packages stored in it.
type GetBinPackagesQueryHandler struct {
	db *gorm.DB
}

// NewGetBinPackagesQueryHandler creates a handler for bin content lookups.
func NewGetBinPackagesQueryHandler(db *gorm.DB) GetBinPackagesQueryHandler {
	return GetBinPackagesQueryHandler{db: db}
}

// Handle executes the bin lookup.
// Packages still referencing the bin are listed putaway-first, oldest
// intake first. Returns errs.ObjectNotFoundError for an unknown bin.
func (h GetBinPackagesQueryHandler) Handle(
	ctx context.Context,
	query GetBinPackagesQuery,
) (GetBinPackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBinPackagesQueryResponse{}, err
	}

	binQuery := `
		SELECT id, location, capacity, status
		FROM bins
		WHERE id = ?
	`
	args := []any{query.BinID().String()}
	if query.WarehouseID() != nil {
		binQuery += " AND warehouse_id = ?"
		args = append(args, query.WarehouseID().Bytes())
	}

	var (
		response GetBinPackagesQueryResponse
		status   int
	)
	row := h.db.WithContext(ctx).Raw(binQuery, args...).Row()
	err := row.Scan(&response.BinID, &response.Location, &response.Capacity, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return GetBinPackagesQueryResponse{}, errs.NewObjectNotFoundError("bin", query.BinID().String())
	}
	if err != nil {
		return GetBinPackagesQueryResponse{}, err
	}
	response.Status = bin.Status(status).String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT tracking_id, status, manifested, time_in
		FROM shipments
		WHERE bin_id = ?
		ORDER BY status = ? DESC, time_in
	`, query.BinID().String(), int(shipment.Putaway)).Rows()
	if err != nil {
		return GetBinPackagesQueryResponse{}, err
	}
	defer rows.Close()

	response.Packages = make([]BinPackage, 0)
	for rows.Next() {
		var (
			pkg       BinPackage
			pkgStatus int
		)
		if err = rows.Scan(&pkg.TrackingID, &pkgStatus, &pkg.Manifested, &pkg.TimeIn); err != nil {
			return GetBinPackagesQueryResponse{}, err
		}
		pkg.Status = shipment.Status(pkgStatus).String()
		response.Packages = append(response.Packages, pkg)
	}

	if err = rows.Err(); err != nil {
		return GetBinPackagesQueryResponse{}, err
	}

	return response, nil
}
