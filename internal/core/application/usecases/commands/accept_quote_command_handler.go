package commands

import (
	"context"
	"fmt"
	"time"

	"freight/internal/core/domain/model/history"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// AcceptQuoteCommandHandler handles quote acceptance by the shipment owner.
//
// The at-most-one-accepted invariant is enforced twice: an exists-check inside
// the transaction and a conditional status update that only lands when the
// quote is still Pending. Concurrent accepts therefore surface as ConflictError
// rather than two winners. On success a hosted checkout is created for the
// offer amount; a payment provider failure aborts the acceptance.
type AcceptQuoteCommandHandler struct {
	uowFactory LifecycleUoWFactory
	payments   ports.PaymentGateway
}

// NewAcceptQuoteCommandHandler creates a handler for quote acceptance.
func NewAcceptQuoteCommandHandler(
	uowFactory LifecycleUoWFactory, payments ports.PaymentGateway,
) AcceptQuoteCommandHandler {
	return AcceptQuoteCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
	}
}

// Handle processes the acceptance and returns the checkout the owner is
// redirected to for payment.
func (h AcceptQuoteCommandHandler) Handle(ctx context.Context, cmd AcceptQuoteCommand) (ports.Checkout, error) {
	if err := cmd.Validate(); err != nil {
		return ports.Checkout{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.Checkout{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quoteRepo := uow.QuoteRepository()
	aggregate, err := quoteRepo.Get(ctx, cmd.QuoteID())
	if err != nil {
		return ports.Checkout{}, err
	}

	shp, err := uow.ShipmentRepository().Get(ctx, aggregate.ShipmentID())
	if err != nil {
		return ports.Checkout{}, err
	}
	if !shp.OwnerID().IsEqual(cmd.ActorID()) {
		return ports.Checkout{}, errs.NewUnauthorizedError(cmd.ActorID().String(), quote.EventAccept)
	}

	hasAccepted, err := quoteRepo.HasAcceptedForShipment(ctx, shp.ID())
	if err != nil {
		return ports.Checkout{}, err
	}

	now := time.Now()
	if err = services.NewQuoteAward().Award(shp, aggregate, hasAccepted, now); err != nil {
		return ports.Checkout{}, err
	}

	if err = quoteRepo.UpdateStatusFrom(ctx, aggregate, quote.Pending); err != nil {
		return ports.Checkout{}, err
	}

	change, err := history.NewStatusChange(
		history.KindQuote, aggregate.ID(), quote.Pending.String(), aggregate.Status().String(),
		quote.EventAccept, cmd.ActorID(), now)
	if err != nil {
		return ports.Checkout{}, err
	}
	if err = uow.HistoryRepository().Append(ctx, change); err != nil {
		return ports.Checkout{}, err
	}

	checkout, err := h.payments.CreateCheckout(ctx, aggregate.Offer(),
		fmt.Sprintf("freight %s", shp.ID()))
	if err != nil {
		return ports.Checkout{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.Checkout{}, err
	}

	return checkout, nil
}
