package binrepo_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres/binrepo"
	"warehouse/internal/core/domain/model/bin"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate interface{}) {
	m.Called(id, aggregate)
}

// BinRepositoryIntegrationTestSuite provides integration tests for
// BinRepository using a PostgreSQL container.
type BinRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *binrepo.GormBinRepository
	tracker    *MockAggregateTracker
}

func (suite *BinRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&binrepo.BinDTO{}))
}

func (suite *BinRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE bins").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = binrepo.NewGormBinRepository(suite.db, suite.tracker)
}

func (suite *BinRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BinRepositoryIntegrationTestSuite) TestAdd_Get_RoundTrip() {
	ctx := context.Background()

	warehouseID := kernel.NewUUID()
	testBin := suite.createTestBin("A-01-02", &warehouseID, "Aisle 1 Shelf 2", 5)

	suite.tracker.On("TrackAggregate", "A-01-02", testBin).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testBin))

	retrieved, err := suite.repository.Get(ctx, testBin.ID())
	suite.Require().NoError(err)

	suite.Equal("A-01-02", retrieved.ID().String())
	suite.Require().NotNil(retrieved.Warehouse())
	suite.True(warehouseID.IsEqual(*retrieved.Warehouse()))
	suite.Equal("Aisle 1 Shelf 2", retrieved.Location())
	suite.Equal(5, retrieved.Capacity())
	suite.Equal(bin.Available, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BinRepositoryIntegrationTestSuite) TestGet_NonExistentBin_ReturnsNotFoundError() {
	ctx := context.Background()

	id, err := kernel.NewBinID("GHOST-1")
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, id)
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *BinRepositoryIntegrationTestSuite) TestGetOrCreate_UnknownBarcode_AutoProvisions() {
	ctx := context.Background()

	id, err := kernel.NewBinID("NEW-BIN")
	suite.Require().NoError(err)
	warehouseID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", "NEW-BIN", mock.Anything).Once()

	provisioned, created, err := suite.repository.GetOrCreate(ctx, id, warehouseID)
	suite.Require().NoError(err)
	suite.True(created)
	suite.Equal(bin.AutoProvisionCapacity, provisioned.Capacity())
	suite.Equal(bin.AutoProvisionLocation, provisioned.Location())
	suite.Require().NotNil(provisioned.Warehouse())
	suite.True(warehouseID.IsEqual(*provisioned.Warehouse()))

	// Second lookup finds the provisioned row.
	existing, created, err := suite.repository.GetOrCreate(ctx, id, warehouseID)
	suite.Require().NoError(err)
	suite.False(created)
	suite.True(provisioned.IsEqual(existing))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BinRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusRevert() {
	ctx := context.Background()

	warehouseID := kernel.NewUUID()
	id, err := kernel.NewBinID("B-07")
	suite.Require().NoError(err)

	occupied, err := bin.RestoreBin(id, &warehouseID, "Aisle 7", 1, bin.Occupied)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", "B-07", mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, occupied))

	// Releasing the last shipment reverts the bin to Available; the update
	// must write the lower status value, not skip it.
	suite.True(occupied.ReleaseIfEmpty(0))
	suite.Require().NoError(suite.repository.Update(ctx, occupied))

	retrieved, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(bin.Available, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BinRepositoryIntegrationTestSuite) TestUpdate_NonExistentBin_ReturnsError() {
	ctx := context.Background()

	missing := suite.createTestBin("MISSING", nil, "Nowhere", 3)
	err := suite.repository.Update(ctx, missing)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BinRepositoryIntegrationTestSuite) TestGetForUpdate_ReturnsBin() {
	ctx := context.Background()

	warehouseID := kernel.NewUUID()
	testBin := suite.createTestBin("C-11", &warehouseID, "Aisle 11", 2)

	suite.tracker.On("TrackAggregate", "C-11", testBin).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testBin))

	retrieved, err := suite.repository.GetForUpdate(ctx, testBin.ID())
	suite.Require().NoError(err)
	suite.True(testBin.IsEqual(retrieved))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BinRepositoryIntegrationTestSuite) createTestBin(
	rawID string, warehouseID *kernel.UUID, location string, capacity int,
) *bin.Bin {
	id, err := kernel.NewBinID(rawID)
	suite.Require().NoError(err)

	testBin, err := bin.NewBin(id, warehouseID, location, capacity)
	suite.Require().NoError(err)
	return testBin
}

func TestBinRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BinRepositoryIntegrationTestSuite))
}
