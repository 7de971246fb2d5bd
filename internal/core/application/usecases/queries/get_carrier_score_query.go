package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetCarrierScoreQueryIsNotConstructed = errors.New(
	"GetCarrierScoreQuery must be created via NewGetCarrierScoreQuery constructor",
)

// GetCarrierScoreQuery retrieves a carrier's aggregated rating.
type GetCarrierScoreQuery struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCarrierScoreQuery creates a query for a carrier's score.
func NewGetCarrierScoreQuery(carrierID kernel.UUID) (GetCarrierScoreQuery, error) {
	if err := carrierID.Validate(); err != nil {
		return GetCarrierScoreQuery{}, err
	}

	return GetCarrierScoreQuery{
		carrierID: carrierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierScoreQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierScoreQueryIsNotConstructed)
}

// CarrierID returns the carrier whose score is aggregated.
func (q GetCarrierScoreQuery) CarrierID() kernel.UUID { return q.carrierID }

// GetCarrierScoreQueryResponse is the aggregated score of a carrier.
// Averages are zero when the carrier has no ratings yet.
type GetCarrierScoreQueryResponse struct {
	CarrierID        kernel.UUID
	RatingCount      int
	Efficiency       float64
	Communication    float64
	VehicleCondition float64
	Overall          float64
}
