// Package ports defines repository and collaborator interfaces for the freight
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// The shipment must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// UpdateStatusFrom persists the aggregate like Update, but only if the
	// stored row is still in the expected status. Returns ConflictError when
	// a concurrent transition got there first.
	UpdateStatusFrom(ctx context.Context, aggregate *shipment.Shipment, expected shipment.Status) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no such shipment exists.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
}
