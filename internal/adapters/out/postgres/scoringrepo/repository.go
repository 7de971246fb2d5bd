package scoringrepo

import (
	"context"

	"gorm.io/gorm"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/scoring"
)

// GormScoringRepository implements ScoringRepository using GORM.
type GormScoringRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormScoringRepository creates a new GORM scoring repository.
func NewGormScoringRepository(db *gorm.DB, tracker aggregateTracker) *GormScoringRepository {
	return &GormScoringRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rating to the database.
func (r *GormScoringRepository) Add(ctx context.Context, aggregate *scoring.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ExistsForShipment reports whether the shipment was already rated.
func (r *GormScoringRepository) ExistsForShipment(
	ctx context.Context,
	shipmentID kernel.UUID,
) (bool, error) {
	if err := shipmentID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&RatingDTO{}).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
