package ports

import (
	"context"

	"freight/internal/core/domain/model/history"
)

// HistoryRepository defines the persistence contract for the transition log.
// The log is append-only; entries are never updated or deleted.
type HistoryRepository interface {
	// Append persists one status change in the same transaction as the
	// status update it records.
	Append(ctx context.Context, change *history.StatusChange) error
}
