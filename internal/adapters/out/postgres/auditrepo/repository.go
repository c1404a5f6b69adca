package auditrepo

import (
	"context"

	"warehouse/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// GormAuditLogRepository implements AuditLogRepository using GORM.
// Entries are only ever inserted; there are no update or delete paths.
type GormAuditLogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormAuditLogRepository creates a new GORM audit log repository.
func NewGormAuditLogRepository(db *gorm.DB, tracker aggregateTracker) *GormAuditLogRepository {
	return &GormAuditLogRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends an audit entry.
func (r *GormAuditLogRepository) Add(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID().String(), entry)
	return nil
}
