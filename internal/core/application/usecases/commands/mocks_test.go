package commands_test

import (
	"context"
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/bin"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/operator"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustTrackingID(t *testing.T, raw string) kernel.TrackingID {
	t.Helper()
	id, err := kernel.NewTrackingID(raw)
	require.NoError(t, err)
	return id
}

func mustBinID(t *testing.T, raw string) kernel.BinID {
	t.Helper()
	id, err := kernel.NewBinID(raw)
	require.NoError(t, err)
	return id
}

func mustBin(t *testing.T, id kernel.BinID, warehouseID kernel.UUID, capacity int) *bin.Bin {
	t.Helper()
	b, err := bin.NewBin(id, &warehouseID, "Aisle 1", capacity)
	require.NoError(t, err)
	return b
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, trackingID kernel.TrackingID) (*shipment.Shipment, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetForUpdate(
	ctx context.Context, trackingID kernel.TrackingID,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetOrCreate(
	ctx context.Context, trackingID kernel.TrackingID, warehouseID kernel.UUID,
) (*shipment.Shipment, bool, error) {
	args := m.Called(ctx, trackingID, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*shipment.Shipment), args.Bool(1), args.Error(2)
}

func (m *MockShipmentRepository) CountPutawayInBin(ctx context.Context, binID kernel.BinID) (int, error) {
	args := m.Called(ctx, binID)
	return args.Int(0), args.Error(1)
}

func (m *MockShipmentRepository) CountInBin(ctx context.Context, binID kernel.BinID) (int, error) {
	args := m.Called(ctx, binID)
	return args.Int(0), args.Error(1)
}

type MockBinRepository struct{ mock.Mock }

func (m *MockBinRepository) Add(ctx context.Context, aggregate *bin.Bin) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBinRepository) Update(ctx context.Context, aggregate *bin.Bin) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBinRepository) Get(ctx context.Context, id kernel.BinID) (*bin.Bin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bin.Bin), args.Error(1)
}

func (m *MockBinRepository) GetForUpdate(ctx context.Context, id kernel.BinID) (*bin.Bin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bin.Bin), args.Error(1)
}

func (m *MockBinRepository) GetOrCreate(
	ctx context.Context, id kernel.BinID, warehouseID kernel.UUID,
) (*bin.Bin, bool, error) {
	args := m.Called(ctx, id, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*bin.Bin), args.Bool(1), args.Error(2)
}

type MockAuditLogRepository struct{ mock.Mock }

func (m *MockAuditLogRepository) Add(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockOperatorRepository struct{ mock.Mock }

func (m *MockOperatorRepository) Get(ctx context.Context, id kernel.UUID) (*operator.Operator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operator.Operator), args.Error(1)
}

func (m *MockOperatorRepository) GetActiveByWarehouse(
	ctx context.Context, warehouseID kernel.UUID,
) ([]*operator.Operator, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*operator.Operator), args.Error(1)
}

// MockUoW satisfies every command unit-of-work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) BinRepository() ports.BinRepository {
	args := m.Called()
	return args.Get(0).(ports.BinRepository)
}

func (m *MockUoW) AuditLogRepository() ports.AuditLogRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditLogRepository)
}

func (m *MockUoW) OperatorRepository() ports.OperatorRepository {
	args := m.Called()
	return args.Get(0).(ports.OperatorRepository)
}

type MockStorageUoWFactory struct{ mock.Mock }

func (m *MockStorageUoWFactory) Create() commands.StorageUoW {
	args := m.Called()
	return args.Get(0).(commands.StorageUoW)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}
