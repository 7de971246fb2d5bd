package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetShipmentsByOwnerQueryIsNotConstructed = errors.New(
	"GetShipmentsByOwnerQuery must be created via NewGetShipmentsByOwnerQuery constructor",
)

// GetShipmentsByOwnerQuery retrieves the shipper's dashboard: every shipment
// the owner published, whatever its status.
type GetShipmentsByOwnerQuery struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentsByOwnerQuery creates a query for the owner's shipments.
func NewGetShipmentsByOwnerQuery(ownerID kernel.UUID) (GetShipmentsByOwnerQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetShipmentsByOwnerQuery{}, err
	}

	return GetShipmentsByOwnerQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsByOwnerQueryIsNotConstructed)
}

// OwnerID returns the shipper whose shipments are listed.
func (q GetShipmentsByOwnerQuery) OwnerID() kernel.UUID { return q.ownerID }

// GetShipmentsByOwnerQueryResponse is one dashboard row.
type GetShipmentsByOwnerQueryResponse struct {
	ID                 kernel.UUID
	Status             string
	OriginAddress      string
	DestinationAddress string
	WeightKg           float64
	PickupAt           time.Time
	CargoType          string
	VehicleType        string
	QuoteCount         int
}
