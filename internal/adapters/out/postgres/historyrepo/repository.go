package historyrepo

import (
	"context"

	"gorm.io/gorm"

	"freight/internal/core/domain/model/history"
	"freight/internal/core/domain/model/kernel"
)

// GormHistoryRepository implements HistoryRepository using GORM.
type GormHistoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB, tracker aggregateTracker) *GormHistoryRepository {
	return &GormHistoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append persists one transition log entry. Entries are never updated or
// deleted.
func (r *GormHistoryRepository) Append(ctx context.Context, change *history.StatusChange) error {
	if err := change.Validate(); err != nil {
		return err
	}

	dto := fromDomain(change)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(change.ID(), change)
	return nil
}
