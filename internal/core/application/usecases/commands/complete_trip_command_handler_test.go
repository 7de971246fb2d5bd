package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"
)

func TestCompleteTripCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	shp := testShipment(t, kernel.NewUUID(), shipment.InProgress)
	accepted := testQuote(t, shp.ID(), carrierID, quote.Accepted)

	cmd, err := commands.NewCompleteTripCommand(shp.ID(), carrierID)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("Get", mock.Anything, shp.ID()).Return(shp, nil).Once()
	shipmentRepo.On("UpdateStatusFrom", mock.Anything, shp, shipment.InProgress).Return(nil).Once()

	quoteRepo := new(MockQuoteRepository)
	quoteRepo.On("GetAcceptedForShipment", mock.Anything, shp.ID()).Return(accepted, nil).Once()

	historyRepo := new(MockHistoryRepository)
	historyRepo.On("Append", mock.Anything, mock.AnythingOfType("*history.StatusChange")).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("QuoteRepository").Return(quoteRepo).Once()
	uow.On("HistoryRepository").Return(historyRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteTripCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, shipment.Completed, shp.Status())
}

func TestCompleteTripCommandHandler_Handle_OtherCarrierUnauthorized(t *testing.T) {
	ctx := t.Context()
	shp := testShipment(t, kernel.NewUUID(), shipment.InProgress)
	accepted := testQuote(t, shp.ID(), kernel.NewUUID(), quote.Accepted)

	cmd, err := commands.NewCompleteTripCommand(shp.ID(), kernel.NewUUID())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("Get", mock.Anything, shp.ID()).Return(shp, nil).Once()

	quoteRepo := new(MockQuoteRepository)
	quoteRepo.On("GetAcceptedForShipment", mock.Anything, shp.ID()).Return(accepted, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("QuoteRepository").Return(quoteRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteTripCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.Equal(t, shipment.InProgress, shp.Status())
}

func TestCompleteTripCommandHandler_Handle_NotInProgress(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	shp := testShipment(t, kernel.NewUUID(), shipment.Available)
	accepted := testQuote(t, shp.ID(), carrierID, quote.Accepted)

	cmd, err := commands.NewCompleteTripCommand(shp.ID(), carrierID)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("Get", mock.Anything, shp.ID()).Return(shp, nil).Once()

	quoteRepo := new(MockQuoteRepository)
	quoteRepo.On("GetAcceptedForShipment", mock.Anything, shp.ID()).Return(accepted, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("QuoteRepository").Return(quoteRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteTripCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	require.Equal(t, shipment.Available, shp.Status())
}
