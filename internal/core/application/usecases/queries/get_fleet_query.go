package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetFleetQueryIsNotConstructed = errors.New(
	"GetFleetQuery must be created via NewGetFleetQuery constructor",
)

// GetFleetQuery lists the vehicles registered by one carrier.
type GetFleetQuery struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetFleetQuery creates a query for a carrier's fleet.
func NewGetFleetQuery(ownerID kernel.UUID) (GetFleetQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetFleetQuery{}, err
	}

	return GetFleetQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFleetQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetQueryIsNotConstructed)
}

// OwnerID returns the carrier whose fleet is listed.
func (q GetFleetQuery) OwnerID() kernel.UUID { return q.ownerID }

// GetFleetQueryResponse is one registered vehicle.
type GetFleetQueryResponse struct {
	ID          kernel.UUID
	VehicleType string
	BodyType    string
	Plate       string
	CapacityKg  float64
}
