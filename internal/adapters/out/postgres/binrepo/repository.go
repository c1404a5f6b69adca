package binrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/bin"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBinRepository implements BinRepository using GORM.
type GormBinRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormBinRepository creates a new GORM bin repository.
func NewGormBinRepository(db *gorm.DB, tracker aggregateTracker) *GormBinRepository {
	return &GormBinRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new bin to the database.
func (r *GormBinRepository) Add(ctx context.Context, aggregate *bin.Bin) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing bin to the database.
// The full column set is written so nil references and other zero-valued
// columns are not skipped.
func (r *GormBinRepository) Update(ctx context.Context, aggregate *bin.Bin) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BinDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a bin by its identifier.
func (r *GormBinRepository) Get(ctx context.Context, id kernel.BinID) (*bin.Bin, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves a bin and locks its row for the enclosing
// transaction, serializing concurrent capacity checks against the same bin.
func (r *GormBinRepository) GetForUpdate(ctx context.Context, id kernel.BinID) (*bin.Bin, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetOrCreate retrieves the bin with the given identifier, auto provisioning
// a single-slot bin scoped to the warehouse when the barcode is unknown.
// The row is locked either way.
func (r *GormBinRepository) GetOrCreate(
	ctx context.Context, id kernel.BinID, warehouseID kernel.UUID,
) (*bin.Bin, bool, error) {
	existing, err := r.GetForUpdate(ctx, id)
	if err == nil {
		return existing, false, nil
	}

	var notFoundErr *errs.ObjectNotFoundError
	if !errors.As(err, &notFoundErr) {
		return nil, false, err
	}

	provisioned, err := bin.NewAutoProvisionedBin(id, warehouseID)
	if err != nil {
		return nil, false, err
	}

	if err = r.Add(ctx, provisioned); err != nil {
		return nil, false, err
	}

	return provisioned, true, nil
}

func (r *GormBinRepository) get(ctx context.Context, db *gorm.DB, id kernel.BinID) (*bin.Bin, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BinDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bin", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
