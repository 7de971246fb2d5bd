package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetQuotesByCarrierQueryIsNotConstructed = errors.New(
	"GetQuotesByCarrierQuery must be created via NewGetQuotesByCarrierQuery constructor",
)

// GetQuotesByCarrierQuery retrieves the carrier's dashboard: every quote the
// carrier submitted, with the route of the underlying shipment.
type GetQuotesByCarrierQuery struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetQuotesByCarrierQuery creates a query for the carrier's quotes.
func NewGetQuotesByCarrierQuery(carrierID kernel.UUID) (GetQuotesByCarrierQuery, error) {
	if err := carrierID.Validate(); err != nil {
		return GetQuotesByCarrierQuery{}, err
	}

	return GetQuotesByCarrierQuery{
		carrierID: carrierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetQuotesByCarrierQuery) Validate() error {
	return q.guard.Validate(ErrGetQuotesByCarrierQueryIsNotConstructed)
}

// CarrierID returns the carrier whose quotes are listed.
func (q GetQuotesByCarrierQuery) CarrierID() kernel.UUID { return q.carrierID }

// GetQuotesByCarrierQueryResponse is one carrier dashboard row.
type GetQuotesByCarrierQueryResponse struct {
	ID                 kernel.UUID
	ShipmentID         kernel.UUID
	Amount             float64
	Status             string
	ValidUntil         time.Time
	OriginAddress      string
	DestinationAddress string
	ShipmentStatus     string
}
