package commands_test

import (
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkDeliveredCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	trackingID := mustTrackingID(t, "T1")

	t.Run("delivers a dispatched package", func(t *testing.T) {
		cmd, err := commands.NewMarkDeliveredCommand(trackingID, nil)
		require.NoError(t, err)

		pkg := putawayShipment(t, trackingID, warehouseID)
		require.NoError(t, pkg.Pick(trackingID))
		require.NoError(t, pkg.Dispatch(time.Now()))

		shipmentRepo := new(MockShipmentRepository)
		auditRepo := new(MockAuditLogRepository)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
			shipmentRepo.On("GetForUpdate", ctx, trackingID).Return(pkg, nil).Once(),
			shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
			uow.On("AuditLogRepository").Return(auditRepo).Once(),
			auditRepo.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockLedgerUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewMarkDeliveredCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, shipment.Delivered, pkg.Status())

		entry := auditRepo.Calls[0].Arguments[1].(*audit.Entry)
		assert.Equal(t, audit.ActionDelivered, entry.Action())
	})

	t.Run("rejects a package that was never dispatched", func(t *testing.T) {
		cmd, err := commands.NewMarkDeliveredCommand(trackingID, nil)
		require.NoError(t, err)

		pkg := putawayShipment(t, trackingID, warehouseID)

		shipmentRepo := new(MockShipmentRepository)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
			shipmentRepo.On("GetForUpdate", ctx, trackingID).Return(pkg, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockLedgerUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewMarkDeliveredCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, shipment.ErrInvalidStateTransition)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
