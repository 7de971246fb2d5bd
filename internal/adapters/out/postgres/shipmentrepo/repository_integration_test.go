package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/shipmentrepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite verifies shipment persistence
// against a real PostgreSQL instance.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &shipmentrepo.StopDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE general CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment() *shipment.Shipment {
	origin, err := shipment.NewWaypoint("Av. Corrientes 1234, Buenos Aires")
	suite.Require().NoError(err)

	point, err := kernel.NewGeoPoint(-31.4201, -64.1888)
	suite.Require().NoError(err)
	destination, err := shipment.NewResolvedWaypoint("Av. Colón 500, Córdoba", point)
	suite.Require().NoError(err)

	agg, err := shipment.NewShipment(
		kernel.NewUUID(),
		kernel.NewUUID(),
		origin,
		destination,
		1200,
		time.Now().Add(48*time.Hour).Truncate(time.Second).UTC(),
	)
	suite.Require().NoError(err)
	return agg
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_Success() {
	ctx := context.Background()
	agg := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", agg.ID(), agg).Once()

	err := suite.repository.Add(ctx, agg)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Table("general").Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_RoundTripsWaypointsAndStops() {
	ctx := context.Background()
	agg := suite.createTestShipment()

	stop, err := shipment.NewWaypoint("Ruta 9 km 120, Zárate")
	suite.Require().NoError(err)
	suite.Require().NoError(agg.AddStop(stop))

	agg.SetCargo("palletized", "120x80x150", "semi", "flatbed")
	agg.SetObservations("forklift needed at destination")

	suite.tracker.On("TrackAggregate", agg.ID(), agg).Once()
	suite.Require().NoError(suite.repository.Add(ctx, agg))

	loaded, err := suite.repository.Get(ctx, agg.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(agg))
	suite.Equal(shipment.Requested, loaded.Status())
	suite.Equal(agg.Origin().Address(), loaded.Origin().Address())
	suite.False(loaded.Origin().IsResolved())
	suite.True(loaded.Destination().IsResolved())
	suite.Require().Len(loaded.Stops(), 1)
	suite.Equal("Ruta 9 km 120, Zárate", loaded.Stops()[0].Address())
	suite.Equal("palletized", loaded.CargoType())
	suite.Equal("forklift needed at destination", loaded.Observations())
	suite.InDelta(agg.WeightKg(), loaded.WeightKg(), 0.001)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdateStatusFrom_ExpectedStatus_Persists() {
	ctx := context.Background()
	agg := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", agg.ID(), agg)
	suite.Require().NoError(suite.repository.Add(ctx, agg))

	previous := agg.Status()
	suite.Require().NoError(agg.ReceiveQuote())

	err := suite.repository.UpdateStatusFrom(ctx, agg, previous)
	suite.Require().NoError(err)

	loaded, err := suite.repository.Get(ctx, agg.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Available, loaded.Status())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdateStatusFrom_StaleStatus_Conflict() {
	ctx := context.Background()
	agg := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", agg.ID(), agg)
	suite.Require().NoError(suite.repository.Add(ctx, agg))

	suite.Require().NoError(agg.ReceiveQuote())

	// The stored row is still Requested; claiming it was Available must fail.
	err := suite.repository.UpdateStatusFrom(ctx, agg, shipment.Available)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)

	loaded, err := suite.repository.Get(ctx, agg.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Requested, loaded.Status())
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
