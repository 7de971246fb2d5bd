package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/history"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"
)

// SubmitQuoteCommandHandler handles quote submission. The first quote against
// a Requested shipment moves it to Available; later quotes leave the shipment
// where it is. The carrier's display name is snapshotted onto the quote so
// owner-facing listings survive later profile edits.
type SubmitQuoteCommandHandler struct {
	uowFactory SubmitQuoteUoWFactory
}

// NewSubmitQuoteCommandHandler creates a handler for quote submission.
func NewSubmitQuoteCommandHandler(uowFactory SubmitQuoteUoWFactory) SubmitQuoteCommandHandler {
	return SubmitQuoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quote submission command.
// Only profiles that may carry cargo can submit; the target shipment must
// still be open for quotes.
func (h SubmitQuoteCommandHandler) Handle(ctx context.Context, cmd SubmitQuoteCommand) error {
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

	carrier, err := uow.ProfileRepository().Get(ctx, cmd.CarrierID())
	if err != nil {
		return err
	}
	if !carrier.CanCarry() {
		return errs.NewUnauthorizedError(cmd.CarrierID().String(), shipment.EventReceiveQuote)
	}

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.ReceiveQuote(); err != nil {
		return err
	}

	offer, err := kernel.NewMoney(cmd.Amount())
	if err != nil {
		return err
	}

	now := time.Now()
	newQuote, err := quote.NewQuote(
		cmd.QuoteID(), cmd.ShipmentID(), cmd.CarrierID(), carrier.DisplayName(), offer, now)
	if err != nil {
		return err
	}

	if err = uow.QuoteRepository().Add(ctx, newQuote); err != nil {
		return err
	}

	if aggregate.Status() != previous {
		if err = shipmentRepo.UpdateStatusFrom(ctx, aggregate, previous); err != nil {
			return err
		}

		change, changeErr := history.NewStatusChange(
			history.KindShipment, aggregate.ID(), previous.String(), aggregate.Status().String(),
			shipment.EventReceiveQuote, cmd.CarrierID(), now)
		if changeErr != nil {
			return changeErr
		}
		if err = uow.HistoryRepository().Append(ctx, change); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
