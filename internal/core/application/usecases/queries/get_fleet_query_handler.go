package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight/internal/core/domain/model/kernel"
)

// GetFleetQueryHandler lists a carrier's vehicles.
type GetFleetQueryHandler struct {
	db *gorm.DB
}

// NewGetFleetQueryHandler creates a handler for fleet queries.
func NewGetFleetQueryHandler(db *gorm.DB) GetFleetQueryHandler {
	return GetFleetQueryHandler{db: db}
}

// Handle executes the query ordered by license plate.
func (h GetFleetQueryHandler) Handle(
	ctx context.Context,
	query GetFleetQuery,
) ([]GetFleetQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]GetFleetQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vehicle_type,
			body_type,
			plate,
			capacity_kg
		FROM flota
		WHERE owner_id = ?
		ORDER BY plate
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetFleetQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.VehicleType,
			&row.BodyType,
			&row.Plate,
			&row.CapacityKg,
		)
		if err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		vehicles = append(vehicles, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
