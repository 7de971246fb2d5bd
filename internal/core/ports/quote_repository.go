package ports

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quote"
)

// QuoteRepository defines the persistence contract for quote aggregates.
type QuoteRepository interface {
	// Add persists a new quote aggregate to storage.
	Add(ctx context.Context, aggregate *quote.Quote) error

	// Update persists changes to an existing quote aggregate.
	Update(ctx context.Context, aggregate *quote.Quote) error

	// UpdateStatusFrom persists the aggregate like Update, but only if the
	// stored row is still in the expected status. Returns ConflictError when
	// a concurrent transition got there first. This is how two simultaneous
	// accepts of the same quote are serialized.
	UpdateStatusFrom(ctx context.Context, aggregate *quote.Quote, expected quote.Status) error

	// Get retrieves a quote aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no such quote exists.
	Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error)

	// HasAcceptedForShipment reports whether any quote for the shipment is
	// already in Accepted status. Read inside the accepting transaction to
	// keep the single-winner rule.
	HasAcceptedForShipment(ctx context.Context, shipmentID kernel.UUID) (bool, error)

	// GetAcceptedForShipment retrieves the shipment's accepted quote.
	// Returns ObjectNotFoundError when no quote has been accepted yet.
	GetAcceptedForShipment(ctx context.Context, shipmentID kernel.UUID) (*quote.Quote, error)

	// GetExpiredPending retrieves up to limit quotes that are still Pending
	// but whose validity window elapsed before now. Used by the expiry sweep.
	GetExpiredPending(ctx context.Context, now time.Time, limit int) ([]*quote.Quote, error)
}
