// Package history contains the append-only record of lifecycle transitions.
// Every accepted transition writes exactly one StatusChange in the same
// transaction as the status update, giving shipments and quotes an audit
// trail that the status column alone cannot provide.
package history

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// EntityKind names the aggregate a status change belongs to.
type EntityKind string

const (
	// KindShipment marks a shipment transition.
	KindShipment EntityKind = "shipment"
	// KindQuote marks a quote transition.
	KindQuote EntityKind = "quote"
)

// Validate checks that the EntityKind holds one of the defined values.
func (k EntityKind) Validate() error {
	if k != KindShipment && k != KindQuote {
		return errs.NewValueIsInvalidError("entity kind")
	}
	return nil
}

var (
	// ErrStatusChangeIsNotConstructed is returned when a StatusChange was not
	// created through NewStatusChange.
	ErrStatusChangeIsNotConstructed = errors.New(
		"StatusChange must be created via NewStatusChange constructor")
	// ErrEventIsRequired is returned when the event name is missing.
	ErrEventIsRequired = errs.NewValueIsRequiredError("event")
)

// StatusChange is one entry of the transition log.
type StatusChange struct {
	id         kernel.UUID
	entityKind EntityKind
	entityID   kernel.UUID
	fromStatus string
	toStatus   string
	event      string
	actorID    kernel.UUID
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewStatusChange records a transition of the given entity from one status
// to another, driven by the named event and actor. actorID may be the zero
// UUID for system-driven transitions such as the expiry sweep.
func NewStatusChange(
	entityKind EntityKind,
	entityID kernel.UUID,
	fromStatus string,
	toStatus string,
	event string,
	actorID kernel.UUID,
	occurredAt time.Time,
) (*StatusChange, error) {
	if err := entityKind.Validate(); err != nil {
		return nil, err
	}
	if err := entityID.Validate(); err != nil {
		return nil, err
	}
	if event == "" {
		return nil, ErrEventIsRequired
	}

	return &StatusChange{
		id:         kernel.NewUUID(),
		entityKind: entityKind,
		entityID:   entityID,
		fromStatus: fromStatus,
		toStatus:   toStatus,
		event:      event,
		actorID:    actorID,
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreStatusChange reconstructs an entry from persistence.
func RestoreStatusChange(
	id kernel.UUID,
	entityKind EntityKind,
	entityID kernel.UUID,
	fromStatus string,
	toStatus string,
	event string,
	actorID kernel.UUID,
	occurredAt time.Time,
) (*StatusChange, error) {
	change, err := NewStatusChange(entityKind, entityID, fromStatus, toStatus, event, actorID, occurredAt)
	if err != nil {
		return nil, err
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}

	change.id = id
	return change, nil
}

// Validate ensures the StatusChange was created through a constructor.
func (c *StatusChange) Validate() error {
	if c == nil {
		return ErrStatusChangeIsNotConstructed
	}
	return c.guard.Validate(ErrStatusChangeIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (c *StatusChange) ID() kernel.UUID { return c.id }

// EntityKind returns the kind of aggregate that transitioned.
func (c *StatusChange) EntityKind() EntityKind { return c.entityKind }

// EntityID returns the transitioned aggregate's id.
func (c *StatusChange) EntityID() kernel.UUID { return c.entityID }

// FromStatus returns the canonical name of the previous status.
func (c *StatusChange) FromStatus() string { return c.fromStatus }

// ToStatus returns the canonical name of the new status.
func (c *StatusChange) ToStatus() string { return c.toStatus }

// Event returns the event that drove the transition.
func (c *StatusChange) Event() string { return c.event }

// ActorID returns the user who requested the transition.
func (c *StatusChange) ActorID() kernel.UUID { return c.actorID }

// OccurredAt returns when the transition was applied.
func (c *StatusChange) OccurredAt() time.Time { return c.occurredAt }
