// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetOpenShipmentsQueryIsNotConstructed = errors.New(
	"GetOpenShipmentsQuery must be created via NewGetOpenShipmentsQuery constructor",
)

// GetOpenShipmentsQuery retrieves the carrier marketplace view: shipments
// still open for quoting (Requested or Available).
type GetOpenShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenShipmentsQuery creates a query for the marketplace listing.
func NewGetOpenShipmentsQuery() GetOpenShipmentsQuery {
	return GetOpenShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenShipmentsQueryIsNotConstructed)
}

// GetOpenShipmentsQueryResponse is one marketplace row.
type GetOpenShipmentsQueryResponse struct {
	ID                 kernel.UUID
	OwnerID            kernel.UUID
	Status             string
	OriginAddress      string
	DestinationAddress string
	WeightKg           float64
	PickupAt           time.Time
	CargoType          string
	VehicleType        string
}
