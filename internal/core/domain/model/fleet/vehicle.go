// Package fleet contains the Vehicle aggregate: a carrier's registered truck
// with its type, body, and capacity.
package fleet

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrVehicleIsNotConstructed is returned when a Vehicle was not created
	// through NewVehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrPlateIsRequired is returned when the license plate is missing.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
	// ErrVehicleTypeIsRequired is returned when the vehicle type is missing.
	ErrVehicleTypeIsRequired = errs.NewValueIsRequiredError("vehicleType")
	// ErrCapacityMustBePositive is returned when the load capacity is zero or negative.
	ErrCapacityMustBePositive = errs.NewValueIsInvalidError("capacity must be greater than 0")
)

// Vehicle is a unit of a carrier's fleet.
type Vehicle struct {
	id          kernel.UUID
	ownerID     kernel.UUID
	vehicleType string
	bodyType    string
	plate       string
	capacityKg  float64

	guard guard.ConstructorGuard
}

// NewVehicle registers a vehicle for a carrier.
func NewVehicle(
	id kernel.UUID,
	ownerID kernel.UUID,
	vehicleType string,
	bodyType string,
	plate string,
	capacityKg float64,
) (*Vehicle, error) {
	v := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setOwnerID(ownerID),
		v.setVehicleType(vehicleType),
		v.setPlate(plate),
		v.setCapacityKg(capacityKg),
	); err != nil {
		return nil, err
	}

	v.bodyType = bodyType
	return v, nil
}

// Validate ensures the Vehicle was created through the constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID { return v.id }

// OwnerID returns the owning carrier's user id.
func (v *Vehicle) OwnerID() kernel.UUID { return v.ownerID }

// VehicleType returns the vehicle type (e.g. semi, rigid).
func (v *Vehicle) VehicleType() string { return v.vehicleType }

// BodyType returns the body type (e.g. flatbed, refrigerated).
func (v *Vehicle) BodyType() string { return v.bodyType }

// Plate returns the license plate.
func (v *Vehicle) Plate() string { return v.plate }

// CapacityKg returns the load capacity in kilograms.
func (v *Vehicle) CapacityKg() float64 { return v.capacityKg }

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	v.ownerID = ownerID
	return nil
}

func (v *Vehicle) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}
	v.vehicleType = vehicleType
	return nil
}

func (v *Vehicle) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setCapacityKg(capacityKg float64) error {
	if capacityKg <= 0 {
		return ErrCapacityMustBePositive
	}
	v.capacityKg = capacityKg
	return nil
}
