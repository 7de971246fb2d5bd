package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCompleteTripCommandIsNotConstructed = errors.New(
	"CompleteTripCommand must be created via NewCompleteTripCommand constructor",
)

// CompleteTripCommand represents the winning carrier finishing the delivery.
type CompleteTripCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteTripCommand creates a command to complete the trip on behalf of actorID.
func NewCompleteTripCommand(shipmentID, actorID kernel.UUID) (CompleteTripCommand, error) {
	cmd := CompleteTripCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActorID(actorID),
	); err != nil {
		return CompleteTripCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteTripCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTripCommandIsNotConstructed)
}

// ShipmentID returns the shipment whose trip completes.
func (c CompleteTripCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// ActorID returns the carrier requesting the completion.
func (c CompleteTripCommand) ActorID() kernel.UUID { return c.actorID }

func (c *CompleteTripCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CompleteTripCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
