package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight/internal/core/domain/model/kernel"
)

// GetShipmentsByOwnerQueryHandler retrieves an owner's shipments with the
// number of quotes each one received.
type GetShipmentsByOwnerQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsByOwnerQueryHandler creates a handler for owner dashboards.
func NewGetShipmentsByOwnerQueryHandler(db *gorm.DB) GetShipmentsByOwnerQueryHandler {
	return GetShipmentsByOwnerQueryHandler{db: db}
}

// Handle executes the query, newest pickups first.
func (h GetShipmentsByOwnerQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsByOwnerQuery,
) ([]GetShipmentsByOwnerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetShipmentsByOwnerQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			g.id,
			g.status,
			g.origin_address,
			g.destination_address,
			g.weight_kg,
			g.pickup_at,
			COUNT(c.id) AS quote_count
		FROM general g
		LEFT JOIN cotizaciones c ON c.shipment_id = g.id
		WHERE g.owner_id = ?
		GROUP BY g.id, g.status, g.origin_address, g.destination_address, g.weight_kg, g.pickup_at
		ORDER BY g.pickup_at DESC
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetShipmentsByOwnerQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.Status,
			&row.OriginAddress,
			&row.DestinationAddress,
			&row.WeightKg,
			&row.PickupAt,
			&row.QuoteCount,
		)
		if err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		shipments = append(shipments, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
