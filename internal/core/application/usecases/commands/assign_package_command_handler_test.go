package commands_test

import (
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/bin"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignPackageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	binID := mustBinID(t, "B-1")
	trackingID := mustTrackingID(t, "T1")

	cmd, err := commands.NewAssignPackageCommand(binID, trackingID, warehouseID, &actorID)
	require.NoError(t, err)

	targetBin, err := bin.NewBin(binID, &warehouseID, "Aisle 1", 2)
	require.NoError(t, err)
	pkg, err := shipment.NewShipment(trackingID, nil, time.Now())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	binRepo := new(MockBinRepository)
	auditRepo := new(MockAuditLogRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BinRepository").Return(binRepo).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		binRepo.On("GetOrCreate", ctx, binID, warehouseID).Return(targetBin, false, nil).Once(),
		shipmentRepo.On("CountPutawayInBin", ctx, binID).Return(1, nil).Once(),
		shipmentRepo.On("GetOrCreate", ctx, trackingID, warehouseID).Return(pkg, false, nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		binRepo.On("Update", ctx, mock.AnythingOfType("*bin.Bin")).Return(nil).Once(),
		auditRepo.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStorageUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignPackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Putaway, pkg.Status())
	require.NotNil(t, pkg.Bin())
	assert.True(t, pkg.Bin().IsEqual(binID))

	// Second slot of two is now taken, so the bin flips to occupied.
	assert.Equal(t, bin.Occupied, targetBin.Status())

	entry := auditRepo.Calls[0].Arguments[1].(*audit.Entry)
	assert.Equal(t, audit.ActionAssigned, entry.Action())
	assert.True(t, entry.TrackingID().IsEqual(trackingID))

	shipmentRepo.AssertExpectations(t)
	binRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignPackageCommandHandler_Handle_CapacityExceeded(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	binID := mustBinID(t, "B-1")
	trackingID := mustTrackingID(t, "T1")

	cmd, err := commands.NewAssignPackageCommand(binID, trackingID, warehouseID, nil)
	require.NoError(t, err)

	// A full bin is persisted as occupied; the rejection must still name the
	// capacity breach, not a generic unavailability.
	fullBin, err := bin.RestoreBin(binID, &warehouseID, "Aisle 1", 1, bin.Occupied)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	binRepo := new(MockBinRepository)
	auditRepo := new(MockAuditLogRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BinRepository").Return(binRepo).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		binRepo.On("GetOrCreate", ctx, binID, warehouseID).Return(fullBin, false, nil).Once(),
		shipmentRepo.On("CountPutawayInBin", ctx, binID).Return(1, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStorageUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignPackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, bin.ErrCapacityExceeded)
	require.NotErrorIs(t, err, bin.ErrBinUnavailable)
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	auditRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignPackageCommandHandler_Handle_ForeignBin(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	otherWarehouseID := kernel.NewUUID()
	binID := mustBinID(t, "B-1")
	trackingID := mustTrackingID(t, "T1")

	cmd, err := commands.NewAssignPackageCommand(binID, trackingID, warehouseID, nil)
	require.NoError(t, err)

	foreignBin, err := bin.NewBin(binID, &otherWarehouseID, "Aisle 1", 5)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	binRepo := new(MockBinRepository)
	auditRepo := new(MockAuditLogRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BinRepository").Return(binRepo).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		binRepo.On("GetOrCreate", ctx, binID, warehouseID).Return(foreignBin, false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStorageUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignPackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrCrossWarehouse)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignPackageCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignPackageCommand{} // not constructed properly

	factory := new(MockStorageUoWFactory)
	handler := commands.NewAssignPackageCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAssignPackageCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewAssignPackageCommand_NoWarehouse(t *testing.T) {
	_, err := commands.NewAssignPackageCommand(
		mustBinID(t, "B-1"), mustTrackingID(t, "T1"), kernel.UUID{}, nil,
	)

	require.ErrorIs(t, err, commands.ErrNoWarehouseSelected)
}
