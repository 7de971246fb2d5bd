package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetShipmentHistoryQueryIsNotConstructed = errors.New(
	"GetShipmentHistoryQuery must be created via NewGetShipmentHistoryQuery constructor",
)

// GetShipmentHistoryQuery retrieves the append-only transition log of one
// shipment, oldest entry first.
type GetShipmentHistoryQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentHistoryQuery creates a query for a shipment's transition log.
func NewGetShipmentHistoryQuery(shipmentID kernel.UUID) (GetShipmentHistoryQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentHistoryQuery{}, err
	}

	return GetShipmentHistoryQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentHistoryQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose history is listed.
func (q GetShipmentHistoryQuery) ShipmentID() kernel.UUID { return q.shipmentID }

// GetShipmentHistoryQueryResponse is one transition log entry. ActorID is
// the zero UUID for system-driven transitions.
type GetShipmentHistoryQueryResponse struct {
	FromStatus string
	ToStatus   string
	Event      string
	ActorID    kernel.UUID
	OccurredAt time.Time
}
