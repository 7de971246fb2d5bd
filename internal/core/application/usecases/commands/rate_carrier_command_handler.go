package commands

import (
	"context"

	"freight/internal/core/domain/model/scoring"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"
)

// RateCarrierCommandHandler handles carrier scoring. Only the owner of a
// Completed shipment may rate, once per shipment; the rated carrier is the
// one whose quote was accepted.
type RateCarrierCommandHandler struct {
	uowFactory ScoringUoWFactory
}

// NewRateCarrierCommandHandler creates a handler for carrier scoring.
func NewRateCarrierCommandHandler(uowFactory ScoringUoWFactory) RateCarrierCommandHandler {
	return RateCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating command.
func (h RateCarrierCommandHandler) Handle(ctx context.Context, cmd RateCarrierCommand) error {
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

	shp, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	if !shp.OwnerID().IsEqual(cmd.RaterID()) {
		return errs.NewUnauthorizedError(cmd.RaterID().String(), "RateCarrier")
	}
	if shp.Status() != shipment.Completed {
		return errs.NewInvalidTransitionError("shipment", shp.Status().String(), "RateCarrier")
	}

	scoringRepo := uow.ScoringRepository()
	alreadyRated, err := scoringRepo.ExistsForShipment(ctx, shp.ID())
	if err != nil {
		return err
	}
	if alreadyRated {
		return errs.NewConflictError("shipment already rated")
	}

	accepted, err := uow.QuoteRepository().GetAcceptedForShipment(ctx, shp.ID())
	if err != nil {
		return err
	}

	rating, err := scoring.NewRating(
		cmd.RatingID(), shp.ID(), accepted.CarrierID(), cmd.RaterID(),
		cmd.Efficiency(), cmd.Communication(), cmd.VehicleCondition(), cmd.Comment())
	if err != nil {
		return err
	}

	if err = scoringRepo.Add(ctx, rating); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
