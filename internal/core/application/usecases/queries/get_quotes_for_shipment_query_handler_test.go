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

type GetQuotesForShipmentQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetQuotesForShipmentQueryHandler
}

func (suite *GetQuotesForShipmentQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetQuotesForShipmentQueryHandler(db)
}

func (suite *GetQuotesForShipmentQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetQuotesForShipmentQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE general, cotizaciones CASCADE").Error)
}

func (suite *GetQuotesForShipmentQueryHandlerTestSuite) addShipment(weightKg float64) *shipment.Shipment {
	origin, err := shipment.NewWaypoint("Puerto de Buenos Aires")
	suite.Require().NoError(err)
	destination, err := shipment.NewWaypoint("Zona Franca, Mendoza")
	suite.Require().NoError(err)

	shp, err := shipment.RestoreShipment(
		kernel.NewUUID(), kernel.NewUUID(), shipment.Available, origin, destination, nil,
		weightKg, time.Now().Add(48*time.Hour))
	suite.Require().NoError(err)

	uow := postgresadapter.NewGormUnitOfWorkFactory(suite.db).Create()
	suite.Require().NoError(uow.ShipmentRepository().Add(context.Background(), shp))
	return shp
}

func (suite *GetQuotesForShipmentQueryHandlerTestSuite) addQuote(
	shipmentID kernel.UUID, carrierName string, amount float64,
) *quote.Quote {
	offer, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)

	now := time.Now().Truncate(time.Second)
	q, err := quote.RestoreQuote(
		kernel.NewUUID(), shipmentID, kernel.NewUUID(), carrierName, offer,
		now, now.Add(quote.ValidityPeriod), quote.Pending)
	suite.Require().NoError(err)

	uow := postgresadapter.NewGormUnitOfWorkFactory(suite.db).Create()
	suite.Require().NoError(uow.QuoteRepository().Add(context.Background(), q))
	return q
}

func (suite *GetQuotesForShipmentQueryHandlerTestSuite) TestHandle_CheapestFirstWithJoinedWeight() {
	shp := suite.addShipment(1500)
	other := suite.addShipment(900)

	suite.addQuote(shp.ID(), "Fletes del Plata", 92000)
	suite.addQuote(shp.ID(), "Transportes La Pampa", 85000)
	suite.addQuote(other.ID(), "Cargas del Oeste", 70000)

	query, err := queries.NewGetQuotesForShipmentQuery(shp.ID())
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(response, 2)
	suite.Equal("Transportes La Pampa", response[0].CarrierName)
	suite.InDelta(85000, response[0].Amount, 0.0001)
	suite.Equal("Fletes del Plata", response[1].CarrierName)
	suite.InDelta(1500, response[0].WeightKg, 0.0001)
	suite.Equal(quote.Pending.String(), response[0].Status)
	suite.False(response[0].CarrierID.IsEmpty())
}

func (suite *GetQuotesForShipmentQueryHandlerTestSuite) TestHandle_ShipmentWithoutQuotes() {
	shp := suite.addShipment(1500)

	query, err := queries.NewGetQuotesForShipmentQuery(shp.ID())
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(response)
}

func TestGetQuotesForShipmentQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetQuotesForShipmentQueryHandlerTestSuite))
}
