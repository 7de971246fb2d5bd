// Package scoringrepo provides data transfer objects and mapping functions
// for rating persistence. Ratings live in the legacy "scoring" table.
package scoringrepo

import (
	"github.com/google/uuid"

	"freight/internal/core/domain/model/scoring"
)

// RatingDTO represents the database structure for persisting ratings.
// The shipment id carries a unique index: a shipment is rated at most once.
type RatingDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CarrierID        uuid.UUID `gorm:"type:uuid;not null;index"`
	RaterID          uuid.UUID `gorm:"type:uuid;not null"`
	Efficiency       int       `gorm:"not null"`
	Communication    int       `gorm:"not null"`
	VehicleCondition int       `gorm:"not null"`
	Comment          string    `gorm:"type:text"`
}

// TableName overrides GORM's default naming to the legacy "scoring" table.
func (RatingDTO) TableName() string {
	return "scoring"
}

// fromDomain converts a rating aggregate to its database representation.
func fromDomain(agg *scoring.Rating) RatingDTO {
	return RatingDTO{
		ID:               agg.ID().Bytes(),
		ShipmentID:       agg.ShipmentID().Bytes(),
		CarrierID:        agg.CarrierID().Bytes(),
		RaterID:          agg.RaterID().Bytes(),
		Efficiency:       agg.Efficiency(),
		Communication:    agg.Communication(),
		VehicleCondition: agg.VehicleCondition(),
		Comment:          agg.Comment(),
	}
}
