package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/bin"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDissociatePackageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	trackingID := mustTrackingID(t, "T1")
	binID := mustBinID(t, "B-1")

	cmd, err := commands.NewDissociatePackageCommand(trackingID, binID, &actorID)
	require.NoError(t, err)

	pkg := putawayShipment(t, trackingID, warehouseID)
	occupiedBin, err := bin.RestoreBin(binID, &warehouseID, "Aisle 1", 1, bin.Occupied)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	binRepo := new(MockBinRepository)
	auditRepo := new(MockAuditLogRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("BinRepository").Return(binRepo).Once(),
		shipmentRepo.On("GetForUpdate", ctx, trackingID).Return(pkg, nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		binRepo.On("GetForUpdate", ctx, binID).Return(occupiedBin, nil).Once(),
		shipmentRepo.On("CountInBin", ctx, binID).Return(0, nil).Once(),
		binRepo.On("Update", ctx, mock.AnythingOfType("*bin.Bin")).Return(nil).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStorageUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDissociatePackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.PickedUp, pkg.Status())
	assert.Nil(t, pkg.Bin())
	assert.Equal(t, bin.Available, occupiedBin.Status())

	entry := auditRepo.Calls[0].Arguments[1].(*audit.Entry)
	assert.Equal(t, audit.ActionDissociated, entry.Action())
	uow.AssertExpectations(t)
}

func TestDissociatePackageCommandHandler_Handle_WrongBin(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	trackingID := mustTrackingID(t, "T1")

	cmd, err := commands.NewDissociatePackageCommand(trackingID, mustBinID(t, "B-2"), nil)
	require.NoError(t, err)

	pkg := putawayShipment(t, trackingID, warehouseID) // sits in B-1

	shipmentRepo := new(MockShipmentRepository)
	binRepo := new(MockBinRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("BinRepository").Return(binRepo).Once(),
		shipmentRepo.On("GetForUpdate", ctx, trackingID).Return(pkg, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStorageUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDissociatePackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, shipment.ErrMismatch)
	assert.Equal(t, shipment.Putaway, pkg.Status())
	assert.NotNil(t, pkg.Bin())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDissociatePackageCommandHandler_Handle_RecomputesOccupancy(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	trackingID := mustTrackingID(t, "T1")
	binID := mustBinID(t, "B-1")

	cmd, err := commands.NewDissociatePackageCommand(trackingID, binID, nil)
	require.NoError(t, err)

	pkg := putawayShipment(t, trackingID, warehouseID)
	occupiedBin, err := bin.RestoreBin(binID, &warehouseID, "Aisle 1", 2, bin.Occupied)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	binRepo := new(MockBinRepository)
	auditRepo := new(MockAuditLogRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("BinRepository").Return(binRepo).Once(),
		shipmentRepo.On("GetForUpdate", ctx, trackingID).Return(pkg, nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		binRepo.On("GetForUpdate", ctx, binID).Return(occupiedBin, nil).Once(),
		shipmentRepo.On("CountInBin", ctx, binID).Return(1, nil).Once(),
		shipmentRepo.On("CountPutawayInBin", ctx, binID).Return(1, nil).Once(),
		binRepo.On("Update", ctx, mock.AnythingOfType("*bin.Bin")).Return(nil).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStorageUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDissociatePackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	// One of two slots freed up: occupied reverts to available.
	assert.Equal(t, bin.Available, occupiedBin.Status())
}
