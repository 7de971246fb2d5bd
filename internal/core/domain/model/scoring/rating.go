// Package scoring contains the Rating aggregate: a cargo owner's post-trip
// evaluation of a carrier's performance, split into efficiency,
// communication, and vehicle condition sub-scores on a 1..5 scale.
package scoring

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const (
	// MinScore is the lowest sub-score value.
	MinScore = 1
	// MaxScore is the highest sub-score value.
	MaxScore = 5
)

// ErrRatingIsNotConstructed is returned when a Rating was not created
// through NewRating.
var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating constructor")

// Rating is one evaluation of a completed shipment's carrier.
// A shipment can be rated at most once; the application layer enforces that.
type Rating struct {
	id               kernel.UUID
	shipmentID       kernel.UUID
	carrierID        kernel.UUID
	raterID          kernel.UUID
	efficiency       int
	communication    int
	vehicleCondition int
	comment          string

	guard guard.ConstructorGuard
}

// NewRating creates a rating. All three sub-scores must be within
// [MinScore, MaxScore].
func NewRating(
	id kernel.UUID,
	shipmentID kernel.UUID,
	carrierID kernel.UUID,
	raterID kernel.UUID,
	efficiency int,
	communication int,
	vehicleCondition int,
	comment string,
) (*Rating, error) {
	r := &Rating{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setShipmentID(shipmentID),
		r.setCarrierID(carrierID),
		r.setRaterID(raterID),
		r.setScore(&r.efficiency, "efficiency", efficiency),
		r.setScore(&r.communication, "communication", communication),
		r.setScore(&r.vehicleCondition, "vehicleCondition", vehicleCondition),
	); err != nil {
		return nil, err
	}

	r.comment = comment
	return r, nil
}

// Validate ensures the Rating was created through the constructor.
func (r *Rating) Validate() error {
	if r == nil {
		return ErrRatingIsNotConstructed
	}
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

// ID returns the rating's unique identifier.
func (r *Rating) ID() kernel.UUID { return r.id }

// ShipmentID returns the rated shipment's id.
func (r *Rating) ShipmentID() kernel.UUID { return r.shipmentID }

// CarrierID returns the rated carrier's user id.
func (r *Rating) CarrierID() kernel.UUID { return r.carrierID }

// RaterID returns the evaluating owner's user id.
func (r *Rating) RaterID() kernel.UUID { return r.raterID }

// Efficiency returns the efficiency sub-score.
func (r *Rating) Efficiency() int { return r.efficiency }

// Communication returns the communication sub-score.
func (r *Rating) Communication() int { return r.communication }

// VehicleCondition returns the vehicle condition sub-score.
func (r *Rating) VehicleCondition() int { return r.vehicleCondition }

// Comment returns the free-text comment.
func (r *Rating) Comment() string { return r.comment }

// Overall returns the mean of the three sub-scores.
func (r *Rating) Overall() float64 {
	return float64(r.efficiency+r.communication+r.vehicleCondition) / 3
}

func (r *Rating) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rating) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.shipmentID = id
	return nil
}

func (r *Rating) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.carrierID = id
	return nil
}

func (r *Rating) setRaterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.raterID = id
	return nil
}

func (r *Rating) setScore(field *int, name string, value int) error {
	if value < MinScore || value > MaxScore {
		return errs.NewValueIsOutOfRangeError(name, value, MinScore, MaxScore)
	}
	*field = value
	return nil
}
