// Package fleetrepo provides data transfer objects and mapping functions
// for vehicle persistence. Vehicles live in the legacy "flota" table.
package fleetrepo

import (
	"github.com/google/uuid"

	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/kernel"
)

// VehicleDTO represents the database structure for persisting vehicles.
type VehicleDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	VehicleType string    `gorm:"type:varchar(255);not null"`
	BodyType    string    `gorm:"type:varchar(255)"`
	Plate       string    `gorm:"type:varchar(32);not null"`
	CapacityKg  float64   `gorm:"not null"`
}

// TableName overrides GORM's default naming to the legacy "flota" table.
func (VehicleDTO) TableName() string {
	return "flota"
}

// fromDomain converts a vehicle aggregate to its database representation.
func fromDomain(agg *fleet.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:          agg.ID().Bytes(),
		OwnerID:     agg.OwnerID().Bytes(),
		VehicleType: agg.VehicleType(),
		BodyType:    agg.BodyType(),
		Plate:       agg.Plate(),
		CapacityKg:  agg.CapacityKg(),
	}
}

// toDomain converts a database DTO to a vehicle aggregate.
func toDomain(dto VehicleDTO) (*fleet.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return fleet.NewVehicle(id, ownerID, dto.VehicleType, dto.BodyType, dto.Plate, dto.CapacityKg)
}
