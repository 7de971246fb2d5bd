package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgresadapter "freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/quoterepo"
	"freight/internal/adapters/out/postgres/shipmentrepo"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"
)

type GetShipmentsByOwnerQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetShipmentsByOwnerQueryHandler
}

func (suite *GetShipmentsByOwnerQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &shipmentrepo.StopDTO{}, &quoterepo.QuoteDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetShipmentsByOwnerQueryHandler(db)
}

func (suite *GetShipmentsByOwnerQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetShipmentsByOwnerQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE general, cotizaciones CASCADE").Error)
}

func (suite *GetShipmentsByOwnerQueryHandlerTestSuite) addShipment(
	ownerID kernel.UUID, originAddress string, pickupAt time.Time,
) *shipment.Shipment {
	origin, err := shipment.NewWaypoint(originAddress)
	suite.Require().NoError(err)
	destination, err := shipment.NewWaypoint("Parque Industrial, Rosario")
	suite.Require().NoError(err)

	shp, err := shipment.RestoreShipment(
		kernel.NewUUID(), ownerID, shipment.Available, origin, destination, nil, 1200, pickupAt)
	suite.Require().NoError(err)

	uow := postgresadapter.NewGormUnitOfWorkFactory(suite.db).Create()
	suite.Require().NoError(uow.ShipmentRepository().Add(context.Background(), shp))
	return shp
}

func (suite *GetShipmentsByOwnerQueryHandlerTestSuite) addQuote(shipmentID kernel.UUID, amount float64) {
	offer, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)

	now := time.Now().Truncate(time.Second)
	q, err := quote.RestoreQuote(
		kernel.NewUUID(), shipmentID, kernel.NewUUID(), "Transportes La Pampa", offer,
		now, now.Add(quote.ValidityPeriod), quote.Pending)
	suite.Require().NoError(err)

	uow := postgresadapter.NewGormUnitOfWorkFactory(suite.db).Create()
	suite.Require().NoError(uow.QuoteRepository().Add(context.Background(), q))
}

func (suite *GetShipmentsByOwnerQueryHandlerTestSuite) TestHandle_CountsQuotesNewestPickupFirst() {
	ownerID := kernel.NewUUID()
	base := time.Now().Add(24 * time.Hour).Truncate(time.Second)

	quoted := suite.addShipment(ownerID, "Mercado Central, Buenos Aires", base)
	unquoted := suite.addShipment(ownerID, "Puerto Madero, Buenos Aires", base.Add(6*time.Hour))
	foreign := suite.addShipment(kernel.NewUUID(), "Depósito Norte, San Martín", base.Add(time.Hour))

	suite.addQuote(quoted.ID(), 85000)
	suite.addQuote(quoted.ID(), 92000)
	suite.addQuote(foreign.ID(), 70000)

	query, err := queries.NewGetShipmentsByOwnerQuery(ownerID)
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(response, 2)
	suite.Equal(unquoted.ID(), response[0].ID)
	suite.Equal(0, response[0].QuoteCount)
	suite.Equal(quoted.ID(), response[1].ID)
	suite.Equal(2, response[1].QuoteCount)
	suite.Equal("Mercado Central, Buenos Aires", response[1].OriginAddress)
	suite.Equal(shipment.Available.String(), response[1].Status)
	suite.InDelta(1200, response[1].WeightKg, 0.0001)
}

func (suite *GetShipmentsByOwnerQueryHandlerTestSuite) TestHandle_OwnerWithoutShipments() {
	suite.addShipment(kernel.NewUUID(), "Puerto Madero, Buenos Aires", time.Now().Add(24*time.Hour))

	query, err := queries.NewGetShipmentsByOwnerQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(response)
}

func TestGetShipmentsByOwnerQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetShipmentsByOwnerQueryHandlerTestSuite))
}
