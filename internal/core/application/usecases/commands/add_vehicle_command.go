package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrAddVehicleCommandIsNotConstructed = errors.New(
	"AddVehicleCommand must be created via NewAddVehicleCommand constructor",
)

// AddVehicleCommand represents a carrier registering a vehicle in its fleet.
type AddVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID   kernel.UUID
	ownerID     kernel.UUID
	vehicleType string
	bodyType    string
	plate       string
	capacityKg  float64

	guard guard.ConstructorGuard
}

// NewAddVehicleCommand creates a command to register a vehicle.
func NewAddVehicleCommand(
	vehicleID kernel.UUID,
	ownerID kernel.UUID,
	vehicleType string,
	bodyType string,
	plate string,
	capacityKg float64,
) (AddVehicleCommand, error) {
	cmd := AddVehicleCommand{
		bodyType: bodyType,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setOwnerID(ownerID),
		cmd.setVehicleType(vehicleType),
		cmd.setPlate(plate),
		cmd.setCapacityKg(capacityKg),
	); err != nil {
		return AddVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAddVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier for the new vehicle.
func (c AddVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }

// OwnerID returns the carrier registering the vehicle.
func (c AddVehicleCommand) OwnerID() kernel.UUID { return c.ownerID }

// VehicleType returns the vehicle category.
func (c AddVehicleCommand) VehicleType() string { return c.vehicleType }

// BodyType returns the body category, possibly empty.
func (c AddVehicleCommand) BodyType() string { return c.bodyType }

// Plate returns the license plate.
func (c AddVehicleCommand) Plate() string { return c.plate }

// CapacityKg returns the load capacity in kilograms.
func (c AddVehicleCommand) CapacityKg() float64 { return c.capacityKg }

func (c *AddVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *AddVehicleCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *AddVehicleCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicle type")
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *AddVehicleCommand) setPlate(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}

	c.plate = plate
	return nil
}

func (c *AddVehicleCommand) setCapacityKg(capacityKg float64) error {
	if capacityKg <= 0 {
		return errs.NewValueIsInvalidError("capacity")
	}

	c.capacityKg = capacityKg
	return nil
}
