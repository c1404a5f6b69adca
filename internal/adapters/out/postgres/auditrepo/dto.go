// Package auditrepo persists audit trail entries. The trail is append-only:
// the repository exposes Add and nothing else, and reads go through the
// query layer.
package auditrepo

import (
	"time"

	"warehouse/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting audit entries.
type EntryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Action      int
	TrackingID  string     `gorm:"index"`
	WarehouseID *uuid.UUID `gorm:"type:uuid;index"`
	UserID      *uuid.UUID `gorm:"type:uuid"`
	Details     string
	Timestamp   time.Time `gorm:"index"`
}

// TableName specifies the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "audit_logs"
}

// fromDomain converts an audit entry to its database representation.
func fromDomain(entry *audit.Entry) EntryDTO {
	var warehouseID *uuid.UUID
	if id := entry.Warehouse(); id != nil {
		raw := id.Bytes()
		warehouseID = &raw
	}

	var userID *uuid.UUID
	if id := entry.User(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	return EntryDTO{
		ID:          entry.ID().Bytes(),
		Action:      int(entry.Action()),
		TrackingID:  entry.TrackingID().String(),
		WarehouseID: warehouseID,
		UserID:      userID,
		Details:     entry.Details(),
		Timestamp:   entry.Timestamp(),
	}
}
