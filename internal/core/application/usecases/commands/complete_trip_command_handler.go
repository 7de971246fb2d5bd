package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/history"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/services"
)

// CompleteTripCommandHandler handles the Completed transition. Only the
// carrier holding the accepted quote may complete, and only from InProgress.
type CompleteTripCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewCompleteTripCommandHandler creates a handler for trip completion.
func NewCompleteTripCommandHandler(uowFactory LifecycleUoWFactory) CompleteTripCommandHandler {
	return CompleteTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h CompleteTripCommandHandler) Handle(ctx context.Context, cmd CompleteTripCommand) error {
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
	if err = services.NewTripAuthorizer().AuthorizeComplete(aggregate, accepted, cmd.ActorID()); err != nil {
		return err
	}

	if err = shipmentRepo.UpdateStatusFrom(ctx, aggregate, previous); err != nil {
		return err
	}

	change, err := history.NewStatusChange(
		history.KindShipment, aggregate.ID(), previous.String(), aggregate.Status().String(),
		shipment.EventCompleteTrip, cmd.ActorID(), time.Now())
	if err != nil {
		return err
	}
	if err = uow.HistoryRepository().Append(ctx, change); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
