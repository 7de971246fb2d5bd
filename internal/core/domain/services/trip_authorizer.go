package services

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"
)

// TripAuthorizer is a domain service that authorizes trip transitions for
// a shipment. Only the carrier whose quote was accepted may start or
// complete the trip; a shipment without an accepted quote cannot move at all.
type TripAuthorizer struct{}

// NewTripAuthorizer creates a new TripAuthorizer instance.
func NewTripAuthorizer() TripAuthorizer {
	return TripAuthorizer{}
}

// AuthorizeStart transitions the shipment to InProgress on behalf of carrierID.
//
// accepted is the shipment's accepted quote, or nil when no quote has been
// accepted yet. A missing accepted quote makes the transition itself invalid,
// regardless of who asks.
func (a TripAuthorizer) AuthorizeStart(shp *shipment.Shipment, accepted *quote.Quote, carrierID kernel.UUID) error {
	if err := a.authorize(shp, accepted, carrierID, shipment.EventStartTrip); err != nil {
		return err
	}
	return shp.Start()
}

// AuthorizeComplete transitions the shipment to Completed on behalf of carrierID.
func (a TripAuthorizer) AuthorizeComplete(shp *shipment.Shipment, accepted *quote.Quote, carrierID kernel.UUID) error {
	if err := a.authorize(shp, accepted, carrierID, shipment.EventCompleteTrip); err != nil {
		return err
	}
	return shp.Complete()
}

func (TripAuthorizer) authorize(
	shp *shipment.Shipment, accepted *quote.Quote, carrierID kernel.UUID, event string,
) error {
	if err := shp.Validate(); err != nil {
		return err
	}

	if accepted == nil {
		return errs.NewInvalidTransitionError("shipment", shp.Status().String(), event)
	}
	if err := accepted.Validate(); err != nil {
		return err
	}
	if accepted.Status() != quote.Accepted || !accepted.ShipmentID().IsEqual(shp.ID()) {
		return errs.NewInvalidTransitionError("shipment", shp.Status().String(), event)
	}

	if !accepted.CarrierID().IsEqual(carrierID) {
		return errs.NewUnauthorizedError(carrierID.String(), event)
	}

	return nil
}
