package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/scoring"
)

// ScoringRepository defines the persistence contract for carrier ratings.
type ScoringRepository interface {
	// Add persists a new rating to storage.
	Add(ctx context.Context, aggregate *scoring.Rating) error

	// ExistsForShipment reports whether the shipment was already rated.
	// A completed shipment may be rated at most once.
	ExistsForShipment(ctx context.Context, shipmentID kernel.UUID) (bool, error)
}
