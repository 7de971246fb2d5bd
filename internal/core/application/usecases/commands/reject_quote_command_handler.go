package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/history"
	"freight/internal/core/domain/model/quote"
	"freight/internal/pkg/errs"
)

// RejectQuoteCommandHandler handles quote rejection by the shipment owner.
type RejectQuoteCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewRejectQuoteCommandHandler creates a handler for quote rejection.
func NewRejectQuoteCommandHandler(uowFactory LifecycleUoWFactory) RejectQuoteCommandHandler {
	return RejectQuoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command. Only Pending quotes can be rejected.
func (h RejectQuoteCommandHandler) Handle(ctx context.Context, cmd RejectQuoteCommand) error {
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

	quoteRepo := uow.QuoteRepository()
	aggregate, err := quoteRepo.Get(ctx, cmd.QuoteID())
	if err != nil {
		return err
	}

	shp, err := uow.ShipmentRepository().Get(ctx, aggregate.ShipmentID())
	if err != nil {
		return err
	}
	if !shp.OwnerID().IsEqual(cmd.ActorID()) {
		return errs.NewUnauthorizedError(cmd.ActorID().String(), quote.EventReject)
	}

	if err = aggregate.Reject(); err != nil {
		return err
	}

	if err = quoteRepo.UpdateStatusFrom(ctx, aggregate, quote.Pending); err != nil {
		return err
	}

	change, err := history.NewStatusChange(
		history.KindQuote, aggregate.ID(), quote.Pending.String(), aggregate.Status().String(),
		quote.EventReject, cmd.ActorID(), time.Now())
	if err != nil {
		return err
	}
	if err = uow.HistoryRepository().Append(ctx, change); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
