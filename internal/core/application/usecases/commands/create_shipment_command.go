package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents a request to publish a new shipment.
// Origin, destination, a positive weight and a pickup date/time are mandatory;
// everything else refines the request for carriers.
//
// Addresses may carry an optional place id from a prior geocoder suggestion;
// when present the handler resolves it to coordinates so the route distance
// can be computed.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	ownerID    kernel.UUID

	originAddress      string
	originPlaceID      string
	destinationAddress string
	destinationPlaceID string
	stopAddresses      []string

	weightKg     float64
	pickupAt     time.Time
	cargoType    string
	dimensions   string
	vehicleType  string
	bodyType     string
	observations string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to publish a shipment.
// Validates identifiers, mandatory addresses, weight, pickup time and the
// stop count; detailed invariants are re-checked by the aggregate.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	ownerID kernel.UUID,
	originAddress string,
	destinationAddress string,
	weightKg float64,
	pickupAt time.Time,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setOwnerID(ownerID),
		cmd.setOriginAddress(originAddress),
		cmd.setDestinationAddress(destinationAddress),
		cmd.setWeightKg(weightKg),
		cmd.setPickupAt(pickupAt),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// WithPlaceIDs attaches geocoder place ids to the origin and destination.
// Empty ids mean the address stays unresolved.
func (c CreateShipmentCommand) WithPlaceIDs(originPlaceID, destinationPlaceID string) CreateShipmentCommand {
	c.originPlaceID = originPlaceID
	c.destinationPlaceID = destinationPlaceID
	return c
}

// WithStops attaches up to shipment.MaxStops intermediate stop addresses.
func (c CreateShipmentCommand) WithStops(stopAddresses []string) (CreateShipmentCommand, error) {
	if len(stopAddresses) > shipment.MaxStops {
		return CreateShipmentCommand{}, shipment.ErrTooManyStops
	}
	c.stopAddresses = stopAddresses
	return c, nil
}

// WithCargo attaches the optional cargo description fields.
func (c CreateShipmentCommand) WithCargo(cargoType, dimensions, vehicleType, bodyType, observations string) CreateShipmentCommand {
	c.cargoType = cargoType
	c.dimensions = dimensions
	c.vehicleType = vehicleType
	c.bodyType = bodyType
	c.observations = observations
	return c
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// OwnerID returns the identifier of the shipper publishing the request.
func (c CreateShipmentCommand) OwnerID() kernel.UUID { return c.ownerID }

// OriginAddress returns the pickup address text.
func (c CreateShipmentCommand) OriginAddress() string { return c.originAddress }

// OriginPlaceID returns the geocoder place id of the origin, possibly empty.
func (c CreateShipmentCommand) OriginPlaceID() string { return c.originPlaceID }

// DestinationAddress returns the delivery address text.
func (c CreateShipmentCommand) DestinationAddress() string { return c.destinationAddress }

// DestinationPlaceID returns the geocoder place id of the destination, possibly empty.
func (c CreateShipmentCommand) DestinationPlaceID() string { return c.destinationPlaceID }

// StopAddresses returns the intermediate stop addresses in visit order.
func (c CreateShipmentCommand) StopAddresses() []string { return c.stopAddresses }

// WeightKg returns the cargo weight in kilograms.
func (c CreateShipmentCommand) WeightKg() float64 { return c.weightKg }

// PickupAt returns the requested pickup date/time.
func (c CreateShipmentCommand) PickupAt() time.Time { return c.pickupAt }

// CargoType returns the declared cargo category, possibly empty.
func (c CreateShipmentCommand) CargoType() string { return c.cargoType }

// Dimensions returns the declared cargo dimensions, possibly empty.
func (c CreateShipmentCommand) Dimensions() string { return c.dimensions }

// VehicleType returns the requested vehicle type, possibly empty.
func (c CreateShipmentCommand) VehicleType() string { return c.vehicleType }

// BodyType returns the requested body type, possibly empty.
func (c CreateShipmentCommand) BodyType() string { return c.bodyType }

// Observations returns free-text notes for carriers, possibly empty.
func (c CreateShipmentCommand) Observations() string { return c.observations }

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateShipmentCommand) setOriginAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("origin address")
	}

	c.originAddress = address
	return nil
}

func (c *CreateShipmentCommand) setDestinationAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("destination address")
	}

	c.destinationAddress = address
	return nil
}

func (c *CreateShipmentCommand) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}

	c.weightKg = weightKg
	return nil
}

func (c *CreateShipmentCommand) setPickupAt(pickupAt time.Time) error {
	if pickupAt.IsZero() {
		return errs.NewValueIsRequiredError("pickup date/time")
	}

	c.pickupAt = pickupAt
	return nil
}
