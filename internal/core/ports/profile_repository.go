package ports

import (
	"context"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
)

// ProfileRepository defines the persistence contract for account profiles.
type ProfileRepository interface {
	// Add persists a new profile to storage.
	Add(ctx context.Context, aggregate *account.Profile) error

	// Update persists changes to an existing profile.
	Update(ctx context.Context, aggregate *account.Profile) error

	// Get retrieves a profile by its unique identifier.
	// Returns ObjectNotFoundError when no such profile exists.
	Get(ctx context.Context, id kernel.UUID) (*account.Profile, error)

	// Exists reports whether a profile row has materialized for the id.
	// Polled after sign-up, when the identity provider writes the row
	// asynchronously.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
