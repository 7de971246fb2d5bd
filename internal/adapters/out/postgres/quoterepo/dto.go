// Package quoterepo provides data transfer objects and mapping functions for
// quote persistence. Quotes live in the legacy "cotizaciones" table.
package quoterepo

import (
	"time"

	"github.com/google/uuid"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quote"
)

// QuoteDTO represents the database structure for persisting quote aggregates.
// The carrier name is denormalized at submission time so listings do not
// join back into the profiles table.
type QuoteDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CarrierID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CarrierName string    `gorm:"type:varchar(255);not null"`
	Amount      float64   `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	ValidUntil  time.Time `gorm:"not null;index"`
	Status      string    `gorm:"type:varchar(32);not null;index"`
}

// TableName overrides GORM's default naming to the legacy "cotizaciones" table.
func (QuoteDTO) TableName() string {
	return "cotizaciones"
}

// fromDomain converts a quote aggregate to its database representation.
func fromDomain(agg *quote.Quote) QuoteDTO {
	return QuoteDTO{
		ID:          agg.ID().Bytes(),
		ShipmentID:  agg.ShipmentID().Bytes(),
		CarrierID:   agg.CarrierID().Bytes(),
		CarrierName: agg.CarrierName(),
		Amount:      agg.Offer().Amount(),
		CreatedAt:   agg.CreatedAt(),
		ValidUntil:  agg.ValidUntil(),
		Status:      agg.Status().String(),
	}
}

// toDomain converts a database DTO to a quote aggregate.
func toDomain(dto QuoteDTO) (*quote.Quote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	offer, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	status, err := quote.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return quote.RestoreQuote(
		id, shipmentID, carrierID, dto.CarrierName, offer, dto.CreatedAt, dto.ValidUntil, status)
}
