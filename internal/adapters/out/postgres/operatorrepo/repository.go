package operatorrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/operator"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOperatorRepository implements OperatorRepository using GORM.
type GormOperatorRepository struct {
	db *gorm.DB
}

// NewGormOperatorRepository creates a new GORM operator repository.
func NewGormOperatorRepository(db *gorm.DB) *GormOperatorRepository {
	return &GormOperatorRepository{db: db}
}

// Get retrieves an operator by identity.
func (r *GormOperatorRepository) Get(ctx context.Context, id kernel.UUID) (*operator.Operator, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OperatorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("operator", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByWarehouse retrieves the active operators with the OPERATOR role
// in a warehouse, ordered by identity so round-robin distribution sees a
// stable pool.
func (r *GormOperatorRepository) GetActiveByWarehouse(
	ctx context.Context, warehouseID kernel.UUID,
) ([]*operator.Operator, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OperatorDTO
	err := r.db.WithContext(ctx).
		Where("warehouse_id = ? AND role = ? AND active", warehouseID.Bytes(), string(operator.RoleOperator)).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	operators := make([]*operator.Operator, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		operators = append(operators, o)
	}

	return operators, nil
}
