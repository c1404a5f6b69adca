package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/operator"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAutoAssignCommandHandler_Handle_Distributes(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	binID := mustBinID(t, "B-1")

	first, err := operator.NewOperator(kernel.NewUUID(), "Asha", operator.RoleOperator, warehouseID, true)
	require.NoError(t, err)
	second, err := operator.NewOperator(kernel.NewUUID(), "Bo", operator.RoleOperator, warehouseID, true)
	require.NoError(t, err)
	pool := []*operator.Operator{first, second}

	cmd, err := commands.NewAutoAssignCommand([]string{"T1", "T2", "T3"}, warehouseID, &actorID)
	require.NoError(t, err)

	packages := map[string]*shipment.Shipment{}
	for _, raw := range []string{"T1", "T2", "T3"} {
		packages[raw] = putawayShipment(t, mustTrackingID(t, raw), warehouseID)
	}

	shipmentRepo := new(MockShipmentRepository)
	binRepo := new(MockBinRepository)
	operatorRepo := new(MockOperatorRepository)
	auditRepo := new(MockAuditLogRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Times(4)
	uow.On("OperatorRepository").Return(operatorRepo).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Times(3)
	uow.On("BinRepository").Return(binRepo).Times(3)
	uow.On("AuditLogRepository").Return(auditRepo).Times(3)
	uow.On("Commit", ctx).Return(nil).Times(3)
	uow.On("Rollback", ctx).Return(nil).Times(4)

	operatorRepo.On("GetActiveByWarehouse", ctx, warehouseID).Return(pool, nil).Once()
	for raw, pkg := range packages {
		shipmentRepo.On("GetForUpdate", ctx, mustTrackingID(t, raw)).Return(pkg, nil).Once()
	}
	shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Times(3)
	binRepo.On("GetForUpdate", ctx, binID).Return(mustBin(t, binID, warehouseID, 3), nil).Times(3)
	shipmentRepo.On("CountPutawayInBin", ctx, binID).Return(0, nil).Times(3)
	binRepo.On("Update", ctx, mock.AnythingOfType("*bin.Bin")).Return(nil).Times(3)
	auditRepo.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Times(3)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Times(4)

	handler := commands.NewAutoAssignCommandHandler(factory)
	results, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, result := range results {
		assert.Equal(t, commands.OutcomeUpdated, result.Outcome)
	}

	// Two operators over three packages: the first and third share one,
	// and both operators are used.
	require.NotNil(t, packages["T1"].Operator())
	require.NotNil(t, packages["T2"].Operator())
	require.NotNil(t, packages["T3"].Operator())
	assert.True(t, packages["T1"].Operator().IsEqual(*packages["T3"].Operator()))
	assert.False(t, packages["T1"].Operator().IsEqual(*packages["T2"].Operator()))

	uow.AssertExpectations(t)
}

func TestAutoAssignCommandHandler_Handle_EmptyPool(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()

	cmd, err := commands.NewAutoAssignCommand([]string{"T1", "T2"}, warehouseID, nil)
	require.NoError(t, err)

	operatorRepo := new(MockOperatorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OperatorRepository").Return(operatorRepo).Once(),
		operatorRepo.On("GetActiveByWarehouse", ctx, warehouseID).
			Return([]*operator.Operator{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAutoAssignCommandHandler(factory)
	results, err := handler.Handle(ctx, cmd)

	// No partial effect: the batch fails as a whole.
	require.ErrorIs(t, err, services.ErrNoOperators)
	assert.Nil(t, results)
}

func TestNewAutoAssignCommand_NoWarehouse(t *testing.T) {
	_, err := commands.NewAutoAssignCommand([]string{"T1"}, kernel.UUID{}, nil)

	require.ErrorIs(t, err, commands.ErrNoWarehouseSelected)
}
