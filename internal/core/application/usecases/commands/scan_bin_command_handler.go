package commands

import (
	"context"
)

// ScanBinResult is the snapshot returned to the intake station after a
// successful scan: where the bin stands before anything is stored in it.
type ScanBinResult struct {
	BinID     string
	Location  string
	Capacity  int
	Occupancy int
	Created   bool
}

// ScanBinCommandHandler handles bin barcode scans at the intake station.
// Fetches or auto-provisions the bin and verifies it can accept stock.
// Scanning writes no audit entry; the trail records shipment mutations only.
type ScanBinCommandHandler struct {
	uowFactory StorageUoWFactory
}

// NewScanBinCommandHandler creates a handler for bin scan operations.
func NewScanBinCommandHandler(uowFactory StorageUoWFactory) ScanBinCommandHandler {
	return ScanBinCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bin scan command.
// Unknown bins are auto-provisioned (capacity 1, location "Auto-created")
// scoped to the scanning warehouse. Bins owned by another warehouse are
// rejected with a CrossWarehouseError, unavailable bins with a
// BinUnavailableError. The transaction covers the provision so concurrent
// first scans of the same barcode yield exactly one bin.
func (h ScanBinCommandHandler) Handle(ctx context.Context, command ScanBinCommand) (ScanBinResult, error) {
	if err := command.Validate(); err != nil {
		return ScanBinResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ScanBinResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	binRepo := uow.BinRepository()
	shipmentRepo := uow.ShipmentRepository()

	scannedBin, created, err := binRepo.GetOrCreate(ctx, command.BinID(), command.WarehouseID())
	if err != nil {
		return ScanBinResult{}, err
	}

	if err = scannedBin.EnsureScopedTo(command.WarehouseID()); err != nil {
		return ScanBinResult{}, err
	}

	if err = scannedBin.EnsureAvailable(); err != nil {
		return ScanBinResult{}, err
	}

	occupancy, err := shipmentRepo.CountPutawayInBin(ctx, command.BinID())
	if err != nil {
		return ScanBinResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ScanBinResult{}, err
	}

	return ScanBinResult{
		BinID:     scannedBin.ID().String(),
		Location:  scannedBin.Location(),
		Capacity:  scannedBin.Capacity(),
		Occupancy: occupancy,
		Created:   created,
	}, nil
}
