package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight/internal/core/domain/model/kernel"
)

// GetShipmentHistoryQueryHandler retrieves the transition log of a shipment.
type GetShipmentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentHistoryQueryHandler creates a handler for history queries.
func NewGetShipmentHistoryQueryHandler(db *gorm.DB) GetShipmentHistoryQueryHandler {
	return GetShipmentHistoryQueryHandler{db: db}
}

// Handle executes the query in chronological order.
func (h GetShipmentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentHistoryQuery,
) ([]GetShipmentHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetShipmentHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			from_status,
			to_status,
			event,
			actor_id,
			occurred_at
		FROM status_history
		WHERE entity_kind = 'shipment' AND entity_id = ?
		ORDER BY occurred_at
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetShipmentHistoryQueryResponse
		var actorID uuid.UUID

		err = rows.Scan(
			&row.FromStatus,
			&row.ToStatus,
			&row.Event,
			&actorID,
			&row.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		// The nil actor marks a system-driven transition; keep the zero UUID.
		if actorID != uuid.Nil {
			if row.ActorID, err = kernel.UUIDFromBytes(actorID[:]); err != nil {
				return nil, err
			}
		}

		entries = append(entries, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
