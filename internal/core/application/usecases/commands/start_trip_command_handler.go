package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/history"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"
)

// StartTripCommandHandler handles the InProgress transition. Only the carrier
// holding the shipment's accepted quote may start the trip.
type StartTripCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewStartTripCommandHandler creates a handler for trip starts.
func NewStartTripCommandHandler(uowFactory LifecycleUoWFactory) StartTripCommandHandler {
	return StartTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command. A shipment without an accepted quote
// cannot start; a carrier other than the winner is unauthorized.
func (h StartTripCommandHandler) Handle(ctx context.Context, cmd StartTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	accepted, err := acceptedQuoteOrNil(ctx, uow, aggregate.ID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = services.NewTripAuthorizer().AuthorizeStart(aggregate, accepted, cmd.ActorID()); err != nil {
		return err
	}

	if err = shipmentRepo.UpdateStatusFrom(ctx, aggregate, previous); err != nil {
		return err
	}

	change, err := history.NewStatusChange(
		history.KindShipment, aggregate.ID(), previous.String(), aggregate.Status().String(),
		shipment.EventStartTrip, cmd.ActorID(), time.Now())
	if err != nil {
		return err
	}
	if err = uow.HistoryRepository().Append(ctx, change); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// acceptedQuoteOrNil loads the shipment's accepted quote, mapping the
// not-found case to nil so the authorizer can report the missing-winner
// condition as an invalid transition.
func acceptedQuoteOrNil(ctx context.Context, uow LifecycleUoW, shipmentID kernel.UUID) (*quote.Quote, error) {
	accepted, err := uow.QuoteRepository().GetAcceptedForShipment(ctx, shipmentID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return accepted, nil
}
