package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCarrierScoreQueryHandler aggregates a carrier's ratings.
type GetCarrierScoreQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierScoreQueryHandler creates a handler for carrier score queries.
func NewGetCarrierScoreQueryHandler(db *gorm.DB) GetCarrierScoreQueryHandler {
	return GetCarrierScoreQueryHandler{db: db}
}

// Handle executes the aggregation. A carrier with no ratings yields a
// response with RatingCount 0 and zero averages.
func (h GetCarrierScoreQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierScoreQuery,
) (GetCarrierScoreQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCarrierScoreQueryResponse{}, err
	}

	response := GetCarrierScoreQueryResponse{CarrierID: query.CarrierID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(AVG(efficiency), 0),
			COALESCE(AVG(communication), 0),
			COALESCE(AVG(vehicle_condition), 0)
		FROM scoring
		WHERE carrier_id = ?
	`, query.CarrierID().Bytes()).Row()

	err := row.Scan(
		&response.RatingCount,
		&response.Efficiency,
		&response.Communication,
		&response.VehicleCondition,
	)
	if err != nil {
		return GetCarrierScoreQueryResponse{}, err
	}

	response.Overall = (response.Efficiency + response.Communication + response.VehicleCondition) / 3

	return response, nil
}
