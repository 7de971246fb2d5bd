package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/scoring"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrRateCarrierCommandIsNotConstructed = errors.New(
	"RateCarrierCommand must be created via NewRateCarrierCommand constructor",
)

// RateCarrierCommand represents the shipment owner scoring the carrier after
// a completed trip.
type RateCarrierCommand struct { //nolint:recvcheck //using for validation
	ratingID         kernel.UUID
	shipmentID       kernel.UUID
	raterID          kernel.UUID
	efficiency       int
	communication    int
	vehicleCondition int
	comment          string

	guard guard.ConstructorGuard
}

// NewRateCarrierCommand creates a command to rate a carrier. Sub-scores must
// be within the scoring scale.
func NewRateCarrierCommand(
	ratingID kernel.UUID,
	shipmentID kernel.UUID,
	raterID kernel.UUID,
	efficiency int,
	communication int,
	vehicleCondition int,
	comment string,
) (RateCarrierCommand, error) {
	cmd := RateCarrierCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRatingID(ratingID),
		cmd.setShipmentID(shipmentID),
		cmd.setRaterID(raterID),
		cmd.setScore("efficiency", efficiency, &cmd.efficiency),
		cmd.setScore("communication", communication, &cmd.communication),
		cmd.setScore("vehicle condition", vehicleCondition, &cmd.vehicleCondition),
	); err != nil {
		return RateCarrierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrRateCarrierCommandIsNotConstructed)
}

// RatingID returns the identifier for the new rating.
func (c RateCarrierCommand) RatingID() kernel.UUID { return c.ratingID }

// ShipmentID returns the completed shipment being rated.
func (c RateCarrierCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// RaterID returns the shipment owner submitting the rating.
func (c RateCarrierCommand) RaterID() kernel.UUID { return c.raterID }

// Efficiency returns the efficiency sub-score.
func (c RateCarrierCommand) Efficiency() int { return c.efficiency }

// Communication returns the communication sub-score.
func (c RateCarrierCommand) Communication() int { return c.communication }

// VehicleCondition returns the vehicle condition sub-score.
func (c RateCarrierCommand) VehicleCondition() int { return c.vehicleCondition }

// Comment returns the free-text comment, possibly empty.
func (c RateCarrierCommand) Comment() string { return c.comment }

func (c *RateCarrierCommand) setRatingID(ratingID kernel.UUID) error {
	if err := ratingID.Validate(); err != nil {
		return err
	}

	c.ratingID = ratingID
	return nil
}

func (c *RateCarrierCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *RateCarrierCommand) setRaterID(raterID kernel.UUID) error {
	if err := raterID.Validate(); err != nil {
		return err
	}

	c.raterID = raterID
	return nil
}

func (c *RateCarrierCommand) setScore(name string, value int, target *int) error {
	if value < scoring.MinScore || value > scoring.MaxScore {
		return errs.NewValueIsOutOfRangeError(name, value, scoring.MinScore, scoring.MaxScore)
	}

	*target = value
	return nil
}
