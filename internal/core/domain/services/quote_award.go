package services

import (
	"time"

	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"
)

// QuoteAward is a domain service responsible for accepting a quote on behalf
// of the shipment owner while keeping the shipment and quote aggregates
// consistent with each other.
//
// Business rules:
//   - The quote must belong to the shipment being awarded
//   - The shipment must still be open for carrier selection (Requested or Available)
//   - The quote must be Pending and not past its validity window
//   - At most one quote per shipment may ever be Accepted
type QuoteAward struct{}

// NewQuoteAward creates a new QuoteAward instance.
func NewQuoteAward() QuoteAward {
	return QuoteAward{}
}

// Award accepts the given quote for the given shipment.
//
// hasAcceptedSibling reports whether another quote for the same shipment is
// already Accepted; the caller reads it inside the same transaction that
// persists the result so the single-winner rule holds under concurrency.
//
// On success the quote transitions to Accepted. The shipment itself is not
// transitioned here: the trip starts later, when the winning carrier picks
// up the cargo.
func (QuoteAward) Award(shp *shipment.Shipment, q *quote.Quote, hasAcceptedSibling bool, now time.Time) error {
	if err := shp.Validate(); err != nil {
		return err
	}
	if err := q.Validate(); err != nil {
		return err
	}

	if !q.ShipmentID().IsEqual(shp.ID()) {
		return errs.NewValueIsInvalidError("quote does not belong to shipment")
	}

	if shp.Status() != shipment.Requested && shp.Status() != shipment.Available {
		return errs.NewInvalidTransitionError("shipment", shp.Status().String(), quote.EventAccept)
	}

	if hasAcceptedSibling {
		return errs.NewConflictError("shipment already has an accepted quote")
	}

	return q.Accept(now)
}
