package shipmentrepo

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.TrackingID().String(), aggregate)
	return nil
}

// Update saves an existing shipment to the database.
// The full column set is written so cleared bin/operator references and a
// reset manifested flag are persisted, not skipped as zero values.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("tracking_id = ?", dto.TrackingID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.TrackingID().String(), aggregate)
	return nil
}

// Get retrieves a shipment by its tracking identifier.
func (r *GormShipmentRepository) Get(ctx context.Context, trackingID kernel.TrackingID) (*shipment.Shipment, error) {
	return r.get(ctx, r.db, trackingID)
}

// GetForUpdate retrieves a shipment and locks its row for the enclosing
// transaction, serializing concurrent mutations of the same shipment.
func (r *GormShipmentRepository) GetForUpdate(
	ctx context.Context, trackingID kernel.TrackingID,
) (*shipment.Shipment, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), trackingID)
}

// GetOrCreate retrieves the shipment with the given tracking identifier,
// creating an unregistered walk-in shipment scoped to the warehouse when the
// identifier is unknown. The row is locked either way.
func (r *GormShipmentRepository) GetOrCreate(
	ctx context.Context, trackingID kernel.TrackingID, warehouseID kernel.UUID,
) (*shipment.Shipment, bool, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, false, err
	}

	existing, err := r.GetForUpdate(ctx, trackingID)
	if err == nil {
		return existing, false, nil
	}

	var notFoundErr *errs.ObjectNotFoundError
	if !errors.As(err, &notFoundErr) {
		return nil, false, err
	}

	walkIn, err := shipment.NewShipment(trackingID, &warehouseID, time.Now().UTC())
	if err != nil {
		return nil, false, err
	}

	if err = r.Add(ctx, walkIn); err != nil {
		return nil, false, err
	}

	return walkIn, true, nil
}

// CountPutawayInBin counts shipments currently putaway in the bin. This is
// the occupancy used for capacity admission.
func (r *GormShipmentRepository) CountPutawayInBin(ctx context.Context, binID kernel.BinID) (int, error) {
	putaway := int(shipment.Putaway)
	return r.countInBin(ctx, binID, &putaway)
}

// CountInBin counts shipments of any status still referencing the bin.
func (r *GormShipmentRepository) CountInBin(ctx context.Context, binID kernel.BinID) (int, error) {
	return r.countInBin(ctx, binID, nil)
}

func (r *GormShipmentRepository) countInBin(ctx context.Context, binID kernel.BinID, status *int) (int, error) {
	if err := binID.Validate(); err != nil {
		return 0, err
	}

	query := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where("bin_id = ?", binID.String())
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}

	return int(count), nil
}

func (r *GormShipmentRepository) get(
	ctx context.Context, db *gorm.DB, trackingID kernel.TrackingID,
) (*shipment.Shipment, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := db.WithContext(ctx).First(&dto, "tracking_id = ?", trackingID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", trackingID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
