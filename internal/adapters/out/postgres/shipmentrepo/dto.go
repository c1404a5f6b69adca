// Package shipmentrepo persists shipment aggregates. It maps the shipment
// domain model to the shipments table, keyed by the normalized tracking
// identifier.
package shipmentrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Bin and operator references are nullable; they are set only
// while the shipment is stored or on a picklist.
type ShipmentDTO struct {
	TrackingID  string     `gorm:"primaryKey"`
	WarehouseID *uuid.UUID `gorm:"type:uuid;index"`
	BinID       *string    `gorm:"index"`
	OperatorID  *uuid.UUID `gorm:"type:uuid;index"`
	Manifested  bool
	Status      int `gorm:"index"`
	TimeIn      time.Time
	TimeOut     *time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database
// representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var warehouseID *uuid.UUID
	if id := aggregate.Warehouse(); id != nil {
		raw := id.Bytes()
		warehouseID = &raw
	}

	var binID *string
	if id := aggregate.Bin(); id != nil {
		raw := id.String()
		binID = &raw
	}

	var operatorID *uuid.UUID
	if id := aggregate.Operator(); id != nil {
		raw := id.Bytes()
		operatorID = &raw
	}

	return ShipmentDTO{
		TrackingID:  aggregate.TrackingID().String(),
		WarehouseID: warehouseID,
		BinID:       binID,
		OperatorID:  operatorID,
		Manifested:  aggregate.Manifested(),
		Status:      int(aggregate.Status()),
		TimeIn:      aggregate.TimeIn(),
		TimeOut:     aggregate.TimeOut(),
	}
}

// toDomain converts a database DTO back to a shipment domain aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	trackingID, err := kernel.NewTrackingID(dto.TrackingID)
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

	var binID *kernel.BinID
	if dto.BinID != nil {
		bID, binErr := kernel.NewBinID(*dto.BinID)
		if binErr != nil {
			return nil, binErr
		}
		binID = &bID
	}

	var operatorID *kernel.UUID
	if dto.OperatorID != nil {
		oID, operatorErr := kernel.UUIDFromBytes((*dto.OperatorID)[:])
		if operatorErr != nil {
			return nil, operatorErr
		}
		operatorID = &oID
	}

	return shipment.RestoreShipment(
		trackingID,
		warehouseID,
		binID,
		operatorID,
		shipment.Status(dto.Status),
		dto.Manifested,
		dto.TimeIn,
		dto.TimeOut,
	)
}
