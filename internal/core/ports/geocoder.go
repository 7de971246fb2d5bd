package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
)

// Prediction is one ranked address suggestion returned by the geocoder.
type Prediction struct {
	// PlaceID is the provider's opaque identifier, usable with Resolve.
	PlaceID string
	// Description is the human-readable address text.
	Description string
}

// Geocoder resolves free-text addresses into coordinates through an external
// places provider. Implementations return UpstreamUnavailableError when the
// provider cannot be reached so callers can retry or degrade gracefully.
type Geocoder interface {
	// Suggest returns ranked address predictions for a partial query.
	Suggest(ctx context.Context, query string) ([]Prediction, error)

	// Resolve returns the coordinates of a previously suggested place.
	Resolve(ctx context.Context, placeID string) (kernel.GeoPoint, error)
}
