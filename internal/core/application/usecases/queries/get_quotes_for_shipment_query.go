package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetQuotesForShipmentQueryIsNotConstructed = errors.New(
	"GetQuotesForShipmentQuery must be created via NewGetQuotesForShipmentQuery constructor",
)

// GetQuotesForShipmentQuery retrieves the offers an owner received for one
// shipment, joined with the shipment's weight so price-per-kilo comparisons
// don't need a second lookup.
type GetQuotesForShipmentQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetQuotesForShipmentQuery creates a query for a shipment's quotes.
func NewGetQuotesForShipmentQuery(shipmentID kernel.UUID) (GetQuotesForShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetQuotesForShipmentQuery{}, err
	}

	return GetQuotesForShipmentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetQuotesForShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetQuotesForShipmentQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose quotes are listed.
func (q GetQuotesForShipmentQuery) ShipmentID() kernel.UUID { return q.shipmentID }

// GetQuotesForShipmentQueryResponse is one offer row.
type GetQuotesForShipmentQueryResponse struct {
	ID          kernel.UUID
	CarrierID   kernel.UUID
	CarrierName string
	Amount      float64
	CreatedAt   time.Time
	ValidUntil  time.Time
	Status      string
	WeightKg    float64
}
