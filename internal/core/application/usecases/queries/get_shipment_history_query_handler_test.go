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
	"freight/internal/adapters/out/postgres/historyrepo"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/history"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"
)

type GetShipmentHistoryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetShipmentHistoryQueryHandler
}

func (suite *GetShipmentHistoryQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&historyrepo.StatusChangeDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetShipmentHistoryQueryHandler(db)
}

func (suite *GetShipmentHistoryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetShipmentHistoryQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE status_history").Error)
}

func (suite *GetShipmentHistoryQueryHandlerTestSuite) appendChange(
	kind history.EntityKind, entityID kernel.UUID,
	fromStatus, toStatus, event string,
	actorID kernel.UUID, occurredAt time.Time,
) {
	change, err := history.NewStatusChange(kind, entityID, fromStatus, toStatus, event, actorID, occurredAt)
	suite.Require().NoError(err)

	uow := postgresadapter.NewGormUnitOfWorkFactory(suite.db).Create()
	suite.Require().NoError(uow.HistoryRepository().Append(context.Background(), change))
}

func (suite *GetShipmentHistoryQueryHandlerTestSuite) TestHandle_ChronologicalForOneShipment() {
	shipmentID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	base := time.Now().Add(-time.Hour).Truncate(time.Second)

	suite.appendChange(history.KindShipment, shipmentID,
		shipment.Available.String(), shipment.InProgress.String(), shipment.EventStartTrip,
		carrierID, base.Add(10*time.Minute))
	suite.appendChange(history.KindShipment, shipmentID,
		shipment.Requested.String(), shipment.Available.String(), shipment.EventReceiveQuote,
		carrierID, base)
	suite.appendChange(history.KindShipment, kernel.NewUUID(),
		shipment.Requested.String(), shipment.Available.String(), shipment.EventReceiveQuote,
		carrierID, base)
	suite.appendChange(history.KindQuote, shipmentID,
		quote.Pending.String(), quote.Rejected.String(), quote.EventExpire,
		kernel.UUID{}, base.Add(5*time.Minute))

	query, err := queries.NewGetShipmentHistoryQuery(shipmentID)
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(response, 2)
	suite.Equal(shipment.EventReceiveQuote, response[0].Event)
	suite.Equal(shipment.Requested.String(), response[0].FromStatus)
	suite.Equal(shipment.Available.String(), response[0].ToStatus)
	suite.Equal(carrierID, response[0].ActorID)
	suite.Equal(shipment.EventStartTrip, response[1].Event)
	suite.True(response[0].OccurredAt.Before(response[1].OccurredAt))
}

func (suite *GetShipmentHistoryQueryHandlerTestSuite) TestHandle_SystemTransitionKeepsZeroActor() {
	shipmentID := kernel.NewUUID()

	suite.appendChange(history.KindShipment, shipmentID,
		shipment.InProgress.String(), shipment.Completed.String(), shipment.EventCompleteTrip,
		kernel.UUID{}, time.Now().Truncate(time.Second))

	query, err := queries.NewGetShipmentHistoryQuery(shipmentID)
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(response, 1)
	suite.True(response[0].ActorID.IsEmpty())
}

func (suite *GetShipmentHistoryQueryHandlerTestSuite) TestHandle_NoHistory() {
	query, err := queries.NewGetShipmentHistoryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(response)
}

func TestGetShipmentHistoryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetShipmentHistoryQueryHandlerTestSuite))
}
