package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

func TestAcceptQuoteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	shp := testShipment(t, ownerID, shipment.Available)
	q := testQuote(t, shp.ID(), kernel.NewUUID(), quote.Pending)

	cmd, err := commands.NewAcceptQuoteCommand(q.ID(), ownerID)
	require.NoError(t, err)

	quoteRepo := new(MockQuoteRepository)
	quoteRepo.On("Get", mock.Anything, q.ID()).Return(q, nil).Once()
	quoteRepo.On("HasAcceptedForShipment", mock.Anything, shp.ID()).Return(false, nil).Once()
	quoteRepo.On("UpdateStatusFrom", mock.Anything, q, quote.Pending).Return(nil).Once()

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("Get", mock.Anything, shp.ID()).Return(shp, nil).Once()

	historyRepo := new(MockHistoryRepository)
	historyRepo.On("Append", mock.Anything, mock.AnythingOfType("*history.StatusChange")).Return(nil).Once()

	payments := new(MockPaymentGateway)
	payments.On("CreateCheckout", mock.Anything, q.Offer(), mock.AnythingOfType("string")).
		Return(ports.Checkout{Reference: "chk_1", URL: "https://pay.example/chk_1"}, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("QuoteRepository").Return(quoteRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("HistoryRepository").Return(historyRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptQuoteCommandHandler(factory, payments)
	checkout, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "https://pay.example/chk_1", checkout.URL)
	require.Equal(t, quote.Accepted, q.Status())
	payments.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptQuoteCommandHandler_Handle_NonOwnerUnauthorized(t *testing.T) {
	ctx := t.Context()
	shp := testShipment(t, kernel.NewUUID(), shipment.Available)
	q := testQuote(t, shp.ID(), kernel.NewUUID(), quote.Pending)

	cmd, err := commands.NewAcceptQuoteCommand(q.ID(), kernel.NewUUID())
	require.NoError(t, err)

	quoteRepo := new(MockQuoteRepository)
	quoteRepo.On("Get", mock.Anything, q.ID()).Return(q, nil).Once()

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("Get", mock.Anything, shp.ID()).Return(shp, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("QuoteRepository").Return(quoteRepo).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptQuoteCommandHandler(factory, new(MockPaymentGateway))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.Equal(t, quote.Pending, q.Status())
}

func TestAcceptQuoteCommandHandler_Handle_SecondAcceptConflicts(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	shp := testShipment(t, ownerID, shipment.Available)
	q := testQuote(t, shp.ID(), kernel.NewUUID(), quote.Pending)

	cmd, err := commands.NewAcceptQuoteCommand(q.ID(), ownerID)
	require.NoError(t, err)

	quoteRepo := new(MockQuoteRepository)
	quoteRepo.On("Get", mock.Anything, q.ID()).Return(q, nil).Once()
	quoteRepo.On("HasAcceptedForShipment", mock.Anything, shp.ID()).Return(true, nil).Once()

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("Get", mock.Anything, shp.ID()).Return(shp, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("QuoteRepository").Return(quoteRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptQuoteCommandHandler(factory, new(MockPaymentGateway))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.Equal(t, quote.Pending, q.Status())
}

func TestAcceptQuoteCommandHandler_Handle_ConcurrentAcceptLosesOnUpdate(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	shp := testShipment(t, ownerID, shipment.Available)
	q := testQuote(t, shp.ID(), kernel.NewUUID(), quote.Pending)

	cmd, err := commands.NewAcceptQuoteCommand(q.ID(), ownerID)
	require.NoError(t, err)

	quoteRepo := new(MockQuoteRepository)
	quoteRepo.On("Get", mock.Anything, q.ID()).Return(q, nil).Once()
	quoteRepo.On("HasAcceptedForShipment", mock.Anything, shp.ID()).Return(false, nil).Once()
	quoteRepo.On("UpdateStatusFrom", mock.Anything, q, quote.Pending).
		Return(errs.NewConflictError("quote status changed concurrently")).Once()

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("Get", mock.Anything, shp.ID()).Return(shp, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("QuoteRepository").Return(quoteRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptQuoteCommandHandler(factory, new(MockPaymentGateway))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestAcceptQuoteCommandHandler_Handle_ExpiredQuote(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	shp := testShipment(t, ownerID, shipment.Available)
	q := expiredPendingQuote(t, shp.ID())

	cmd, err := commands.NewAcceptQuoteCommand(q.ID(), ownerID)
	require.NoError(t, err)

	quoteRepo := new(MockQuoteRepository)
	quoteRepo.On("Get", mock.Anything, q.ID()).Return(q, nil).Once()
	quoteRepo.On("HasAcceptedForShipment", mock.Anything, shp.ID()).Return(false, nil).Once()

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("Get", mock.Anything, shp.ID()).Return(shp, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("QuoteRepository").Return(quoteRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptQuoteCommandHandler(factory, new(MockPaymentGateway))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrExpired)
}
