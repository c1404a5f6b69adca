package queries

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/operator"
	"warehouse/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWarehouseOperatorsQueryHandler lists a warehouse's assignable
// operators with their current picklist load.
type GetWarehouseOperatorsQueryHandler struct {
	db *gorm.DB
}

// NewGetWarehouseOperatorsQueryHandler creates a handler for operator listings.
func NewGetWarehouseOperatorsQueryHandler(db *gorm.DB) GetWarehouseOperatorsQueryHandler {
	return GetWarehouseOperatorsQueryHandler{db: db}
}

// Handle executes the operator listing, ordered by identity so the result
// mirrors the round-robin order used by automatic assignment.
func (h GetWarehouseOperatorsQueryHandler) Handle(
	ctx context.Context,
	query GetWarehouseOperatorsQuery,
) ([]GetWarehouseOperatorsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.name,
			COUNT(s.tracking_id) AS picklist_count
		FROM operators o
		LEFT JOIN shipments s ON s.operator_id = o.id AND s.status = ?
		WHERE o.warehouse_id = ? AND o.role = ? AND o.active
		GROUP BY o.id, o.name
		ORDER BY o.id
	`, int(shipment.PicklistCreated), query.WarehouseID().Bytes(), string(operator.RoleOperator)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	operators := make([]GetWarehouseOperatorsQueryResponse, 0)
	for rows.Next() {
		var (
			response GetWarehouseOperatorsQueryResponse
			id       uuid.UUID
		)

		if err = rows.Scan(&id, &response.Name, &response.PicklistCount); err != nil {
			return nil, err
		}

		operatorID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = operatorID

		operators = append(operators, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return operators, nil
}
