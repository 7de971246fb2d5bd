package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight/internal/core/domain/model/kernel"
)

// GetQuotesForShipmentQueryHandler retrieves a shipment's quotes joined with
// the shipment weight.
type GetQuotesForShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetQuotesForShipmentQueryHandler creates a handler for quote listings.
func NewGetQuotesForShipmentQueryHandler(db *gorm.DB) GetQuotesForShipmentQueryHandler {
	return GetQuotesForShipmentQueryHandler{db: db}
}

// Handle executes the query, cheapest offers first.
func (h GetQuotesForShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetQuotesForShipmentQuery,
) ([]GetQuotesForShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	quotes := make([]GetQuotesForShipmentQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.carrier_id,
			c.carrier_name,
			c.amount,
			c.created_at,
			c.valid_until,
			c.status,
			g.weight_kg
		FROM cotizaciones c
		INNER JOIN general g ON g.id = c.shipment_id
		WHERE c.shipment_id = ?
		ORDER BY c.amount
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetQuotesForShipmentQueryResponse
		var id, carrierID uuid.UUID

		err = rows.Scan(
			&id,
			&carrierID,
			&row.CarrierName,
			&row.Amount,
			&row.CreatedAt,
			&row.ValidUntil,
			&row.Status,
			&row.WeightKg,
		)
		if err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if row.CarrierID, err = kernel.UUIDFromBytes(carrierID[:]); err != nil {
			return nil, err
		}

		quotes = append(quotes, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return quotes, nil
}
