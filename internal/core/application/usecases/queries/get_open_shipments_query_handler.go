package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight/internal/core/domain/model/kernel"
)

// GetOpenShipmentsQueryHandler retrieves open shipments from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOpenShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenShipmentsQueryHandler creates a handler for marketplace queries.
func NewGetOpenShipmentsQueryHandler(db *gorm.DB) GetOpenShipmentsQueryHandler {
	return GetOpenShipmentsQueryHandler{db: db}
}

// Handle executes the query. Rows are sorted by pickup time so the most
// urgent loads surface first.
func (h GetOpenShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenShipmentsQuery,
) ([]GetOpenShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetOpenShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			status,
			origin_address,
			destination_address,
			weight_kg,
			pickup_at,
			cargo_type,
			vehicle_type
		FROM general
		WHERE status IN ('Requested', 'Available')
		ORDER BY pickup_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetOpenShipmentsQueryResponse
		var id, ownerID uuid.UUID

		err = rows.Scan(
			&id,
			&ownerID,
			&row.Status,
			&row.OriginAddress,
			&row.DestinationAddress,
			&row.WeightKg,
			&row.PickupAt,
			&row.CargoType,
			&row.VehicleType,
		)
		if err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if row.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}

		shipments = append(shipments, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
