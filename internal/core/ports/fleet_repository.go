package ports

import (
	"context"

	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/kernel"
)

// FleetRepository defines the persistence contract for a carrier's vehicles.
type FleetRepository interface {
	// Add persists a new vehicle to storage.
	Add(ctx context.Context, aggregate *fleet.Vehicle) error

	// Get retrieves a vehicle by its unique identifier.
	// Returns ObjectNotFoundError when no such vehicle exists.
	Get(ctx context.Context, id kernel.UUID) (*fleet.Vehicle, error)
}
