// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. The table names follow the legacy data model:
// shipments live in "general" and route stops in "paradas".
package shipmentrepo

import (
	"time"

	"github.com/google/uuid"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Status is stored as its canonical string so the legacy rows
// remain readable.
type ShipmentDTO struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID   `gorm:"type:uuid;not null;index"`
	Status       string      `gorm:"type:varchar(32);not null;index"`
	Origin       WaypointDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Destination  WaypointDTO `gorm:"embedded;embeddedPrefix:destination_"`
	Stops        []StopDTO   `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	WeightKg     float64     `gorm:"not null"`
	PickupAt     time.Time   `gorm:"not null"`
	CargoType    string      `gorm:"type:varchar(255)"`
	Dimensions   string      `gorm:"type:varchar(255)"`
	VehicleType  string      `gorm:"type:varchar(255)"`
	BodyType     string      `gorm:"type:varchar(255)"`
	Observations string      `gorm:"type:text"`
}

// TableName overrides GORM's default naming to the legacy "general" table.
func (ShipmentDTO) TableName() string {
	return "general"
}

// WaypointDTO represents an embedded route endpoint. Coordinates are nil
// until the address is resolved by the geocoder.
type WaypointDTO struct {
	Address string `gorm:"type:varchar(512);not null"`
	Lat     *float64
	Lng     *float64
}

// StopDTO represents one intermediate stop of a shipment's route.
type StopDTO struct {
	ShipmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey"`
	Address    string    `gorm:"type:varchar(512);not null"`
	Lat        *float64
	Lng        *float64
}

// TableName overrides GORM's default naming to the legacy "paradas" table.
func (StopDTO) TableName() string {
	return "paradas"
}

func waypointFromDomain(w shipment.Waypoint) WaypointDTO {
	dto := WaypointDTO{Address: w.Address()}
	if point := w.Point(); point != nil {
		lat := point.Latitude()
		lng := point.Longitude()
		dto.Lat = &lat
		dto.Lng = &lng
	}
	return dto
}

func waypointToDomain(dto WaypointDTO) (shipment.Waypoint, error) {
	if dto.Lat == nil || dto.Lng == nil {
		return shipment.NewWaypoint(dto.Address)
	}

	point, err := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
	if err != nil {
		return shipment.Waypoint{}, err
	}
	return shipment.NewResolvedWaypoint(dto.Address, point)
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(agg *shipment.Shipment) ShipmentDTO {
	shipmentID := agg.ID().Bytes()

	stops := make([]StopDTO, 0, len(agg.Stops()))
	for i, stop := range agg.Stops() {
		waypoint := waypointFromDomain(stop)
		stops = append(stops, StopDTO{
			ShipmentID: shipmentID,
			Position:   i,
			Address:    waypoint.Address,
			Lat:        waypoint.Lat,
			Lng:        waypoint.Lng,
		})
	}

	return ShipmentDTO{
		ID:           shipmentID,
		OwnerID:      agg.OwnerID().Bytes(),
		Status:       agg.Status().String(),
		Origin:       waypointFromDomain(agg.Origin()),
		Destination:  waypointFromDomain(agg.Destination()),
		Stops:        stops,
		WeightKg:     agg.WeightKg(),
		PickupAt:     agg.PickupAt(),
		CargoType:    agg.CargoType(),
		Dimensions:   agg.Dimensions(),
		VehicleType:  agg.VehicleType(),
		BodyType:     agg.BodyType(),
		Observations: agg.Observations(),
	}
}

// toDomain converts a database DTO to a shipment aggregate. Stops are
// restored in their stored position order.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	origin, err := waypointToDomain(dto.Origin)
	if err != nil {
		return nil, err
	}

	destination, err := waypointToDomain(dto.Destination)
	if err != nil {
		return nil, err
	}

	stops := make([]shipment.Waypoint, 0, len(dto.Stops))
	for _, stopDTO := range dto.Stops {
		stop, stopErr := waypointToDomain(WaypointDTO{
			Address: stopDTO.Address,
			Lat:     stopDTO.Lat,
			Lng:     stopDTO.Lng,
		})
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, stop)
	}

	agg, err := shipment.RestoreShipment(
		id, ownerID, status, origin, destination, stops, dto.WeightKg, dto.PickupAt)
	if err != nil {
		return nil, err
	}

	agg.SetCargo(dto.CargoType, dto.Dimensions, dto.VehicleType, dto.BodyType)
	agg.SetObservations(dto.Observations)
	return agg, nil
}
