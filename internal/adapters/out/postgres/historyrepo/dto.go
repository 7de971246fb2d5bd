// Package historyrepo provides data transfer objects for the append-only
// transition log in the "status_history" table.
package historyrepo

import (
	"time"

	"github.com/google/uuid"

	"freight/internal/core/domain/model/history"
)

// StatusChangeDTO represents the database structure for one transition log
// entry. The actor id is null for system-driven transitions.
type StatusChangeDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EntityKind string     `gorm:"type:varchar(16);not null;index:idx_status_history_entity"`
	EntityID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_status_history_entity"`
	FromStatus string     `gorm:"type:varchar(32);not null"`
	ToStatus   string     `gorm:"type:varchar(32);not null"`
	Event      string     `gorm:"type:varchar(64);not null"`
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	OccurredAt time.Time  `gorm:"not null"`
}

// TableName overrides GORM's default naming to "status_history".
func (StatusChangeDTO) TableName() string {
	return "status_history"
}

// fromDomain converts a transition log entry to its database representation.
func fromDomain(change *history.StatusChange) StatusChangeDTO {
	var actorID *uuid.UUID
	if !change.ActorID().IsEmpty() {
		raw := change.ActorID().Bytes()
		actorID = &raw
	}

	return StatusChangeDTO{
		ID:         change.ID().Bytes(),
		EntityKind: string(change.EntityKind()),
		EntityID:   change.EntityID().Bytes(),
		FromStatus: change.FromStatus(),
		ToStatus:   change.ToStatus(),
		Event:      change.Event(),
		ActorID:    actorID,
		OccurredAt: change.OccurredAt(),
	}
}
