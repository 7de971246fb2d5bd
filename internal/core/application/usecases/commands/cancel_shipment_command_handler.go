package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/history"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"
)

// CancelShipmentCommandHandler handles shipment cancellation. The owner may
// cancel at any non-terminal point; the accepted carrier may also cancel,
// backing out after winning.
type CancelShipmentCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewCancelShipmentCommandHandler creates a handler for shipment cancellation.
func NewCancelShipmentCommandHandler(uowFactory LifecycleUoWFactory) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) error {
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

	authorized := aggregate.OwnerID().IsEqual(cmd.ActorID())
	if !authorized {
		accepted, quoteErr := acceptedQuoteOrNil(ctx, uow, aggregate.ID())
		if quoteErr != nil {
			return quoteErr
		}
		authorized = accepted != nil && accepted.CarrierID().IsEqual(cmd.ActorID())
	}
	if !authorized {
		return errs.NewUnauthorizedError(cmd.ActorID().String(), shipment.EventCancel)
	}

	previous := aggregate.Status()
	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = shipmentRepo.UpdateStatusFrom(ctx, aggregate, previous); err != nil {
		return err
	}

	change, err := history.NewStatusChange(
		history.KindShipment, aggregate.ID(), previous.String(), aggregate.Status().String(),
		shipment.EventCancel, cmd.ActorID(), time.Now())
	if err != nil {
		return err
	}
	if err = uow.HistoryRepository().Append(ctx, change); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
