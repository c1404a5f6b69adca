// Package binrepo persists bin aggregates. It maps the bin domain model to
// the bins table, keyed by the normalized human-readable bin identifier.
package binrepo

import (
	"warehouse/internal/core/domain/model/bin"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BinDTO represents the database structure for persisting bin aggregates.
type BinDTO struct {
	ID          string     `gorm:"primaryKey"`
	WarehouseID *uuid.UUID `gorm:"type:uuid;index"`
	Location    string
	Capacity    int
	Status      int
}

// TableName specifies the database table name for bin entities.
func (BinDTO) TableName() string {
	return "bins"
}

// fromDomain converts a bin domain aggregate to its database representation.
func fromDomain(aggregate *bin.Bin) BinDTO {
	var warehouseID *uuid.UUID
	if id := aggregate.Warehouse(); id != nil {
		raw := id.Bytes()
		warehouseID = &raw
	}

	return BinDTO{
		ID:          aggregate.ID().String(),
		WarehouseID: warehouseID,
		Location:    aggregate.Location(),
		Capacity:    aggregate.Capacity(),
		Status:      int(aggregate.Status()),
	}
}

// toDomain converts a database DTO back to a bin domain aggregate.
func toDomain(dto BinDTO) (*bin.Bin, error) {
	id, err := kernel.NewBinID(dto.ID)
	if err != nil {
		return nil, err
	}

	var warehouseID *kernel.UUID
	if dto.WarehouseID != nil {
		wID, warehouseErr := kernel.UUIDFromBytes((*dto.WarehouseID)[:])
		if warehouseErr != nil {
			return nil, warehouseErr
		}
		warehouseID = &wID
	}

	return bin.RestoreBin(id, warehouseID, dto.Location, dto.Capacity, bin.Status(dto.Status))
}
