package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrScanBinCommandIsNotConstructed = errors.New(
	"ScanBinCommand must be created via NewScanBinCommand constructor",
)

// ScanBinCommand represents an intake station scanning a bin barcode to
// check whether it can accept stock. Unknown barcodes are provisioned on
// the fly as single-slot bins.
type ScanBinCommand struct { //nolint:recvcheck //using for validation
	binID       kernel.BinID
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewScanBinCommand creates a command to scan a bin within a warehouse.
// The bin identifier is normalized by the kernel value object; the
// warehouse must be resolved from the caller's scope.
func NewScanBinCommand(binID kernel.BinID, warehouseID kernel.UUID) (ScanBinCommand, error) {
	scanCommand := ScanBinCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		scanCommand.setBinID(binID),
		scanCommand.setWarehouseID(warehouseID),
	); err != nil {
		return ScanBinCommand{}, err
	}

	return scanCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ScanBinCommand) Validate() error {
	return c.guard.Validate(ErrScanBinCommandIsNotConstructed)
}

// BinID returns the scanned bin identifier.
func (c ScanBinCommand) BinID() kernel.BinID {
	return c.binID
}

// WarehouseID returns the scanning warehouse.
func (c ScanBinCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c *ScanBinCommand) setBinID(binID kernel.BinID) error {
	if err := binID.Validate(); err != nil {
		return err
	}

	c.binID = binID
	return nil
}

func (c *ScanBinCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return ErrNoWarehouseSelected
	}

	c.warehouseID = warehouseID
	return nil
}
