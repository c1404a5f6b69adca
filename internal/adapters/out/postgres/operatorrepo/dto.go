// Package operatorrepo reads warehouse staff records. Operator accounts are
// administered by a separate system; this repository never writes.
package operatorrepo

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/operator"

	"github.com/google/uuid"
)

// OperatorDTO represents the database structure of warehouse staff records.
type OperatorDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Role        string
	WarehouseID uuid.UUID `gorm:"type:uuid;index"`
	Active      bool
}

// TableName specifies the database table name for operator records.
func (OperatorDTO) TableName() string {
	return "operators"
}

// toDomain converts a database DTO to an operator read model.
func toDomain(dto OperatorDTO) (*operator.Operator, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	return operator.NewOperator(id, dto.Name, operator.Role(dto.Role), warehouseID, dto.Active)
}
