package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight/internal/core/domain/model/kernel"
)

// GetQuotesByCarrierQueryHandler retrieves a carrier's quotes joined with
// the shipments they target.
type GetQuotesByCarrierQueryHandler struct {
	db *gorm.DB
}

// NewGetQuotesByCarrierQueryHandler creates a handler for carrier dashboards.
func NewGetQuotesByCarrierQueryHandler(db *gorm.DB) GetQuotesByCarrierQueryHandler {
	return GetQuotesByCarrierQueryHandler{db: db}
}

// Handle executes the query, newest quotes first.
func (h GetQuotesByCarrierQueryHandler) Handle(
	ctx context.Context,
	query GetQuotesByCarrierQuery,
) ([]GetQuotesByCarrierQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	quotes := make([]GetQuotesByCarrierQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.shipment_id,
			c.amount,
			c.status,
			c.valid_until,
			g.origin_address,
			g.destination_address,
			g.status AS shipment_status
		FROM cotizaciones c
		INNER JOIN general g ON g.id = c.shipment_id
		WHERE c.carrier_id = ?
		ORDER BY c.created_at DESC
	`, query.CarrierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetQuotesByCarrierQueryResponse
		var id, shipmentID uuid.UUID

		err = rows.Scan(
			&id,
			&shipmentID,
			&row.Amount,
			&row.Status,
			&row.ValidUntil,
			&row.OriginAddress,
			&row.DestinationAddress,
			&row.ShipmentStatus,
		)
		if err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if row.ShipmentID, err = kernel.UUIDFromBytes(shipmentID[:]); err != nil {
			return nil, err
		}

		quotes = append(quotes, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return quotes, nil
}
