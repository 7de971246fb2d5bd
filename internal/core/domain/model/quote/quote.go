package quote

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ValidityPeriod is how long a submitted quote stays acceptable.
const ValidityPeriod = 7 * 24 * time.Hour

var (
	// ErrQuoteIsNotConstructed is returned when a Quote was not created
	// through NewQuote or RestoreQuote.
	ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote constructor")
	// ErrCarrierNameIsRequired is returned when the carrier display name is missing.
	ErrCarrierNameIsRequired = errs.NewValueIsRequiredError("carrierName")
	// ErrCreatedAtIsRequired is returned when the creation timestamp is missing.
	ErrCreatedAtIsRequired = errs.NewValueIsRequiredError("createdAt")
)

// Quote is the aggregate root for a carrier's priced offer against a
// shipment.
//
// Invariants:
//   - id, shipment id, and carrier id are valid UUIDs
//   - the offer amount is strictly positive (kernel.Money)
//   - validUntil is fixed at creation time + ValidityPeriod
//   - status changes only through the transition methods
type Quote struct {
	id          kernel.UUID
	shipmentID  kernel.UUID
	carrierID   kernel.UUID
	carrierName string
	offer       kernel.Money
	createdAt   time.Time
	validUntil  time.Time
	status      Status

	guard guard.ConstructorGuard
}

// NewQuote creates a quote in Pending status, valid for ValidityPeriod
// from the given submission time.
func NewQuote(
	id kernel.UUID,
	shipmentID kernel.UUID,
	carrierID kernel.UUID,
	carrierName string,
	offer kernel.Money,
	now time.Time,
) (*Quote, error) {
	q := &Quote{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setID(id),
		q.setShipmentID(shipmentID),
		q.setCarrierID(carrierID),
		q.setCarrierName(carrierName),
		q.setOffer(offer),
		q.setCreatedAt(now),
	); err != nil {
		return nil, err
	}

	q.validUntil = q.createdAt.Add(ValidityPeriod)
	return q, nil
}

// RestoreQuote reconstructs a quote from persistence, re-validating every
// invariant but keeping the stored status and validity window.
func RestoreQuote(
	id kernel.UUID,
	shipmentID kernel.UUID,
	carrierID kernel.UUID,
	carrierName string,
	offer kernel.Money,
	createdAt time.Time,
	validUntil time.Time,
	status Status,
) (*Quote, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	q, err := NewQuote(id, shipmentID, carrierID, carrierName, offer, createdAt)
	if err != nil {
		return nil, err
	}

	q.validUntil = validUntil
	q.status = status
	return q, nil
}

// Validate ensures the Quote was created through a constructor.
func (q *Quote) Validate() error {
	if q == nil {
		return ErrQuoteIsNotConstructed
	}
	return q.guard.Validate(ErrQuoteIsNotConstructed)
}

// IsEqual compares two quotes by identity.
func (q *Quote) IsEqual(other *Quote) bool {
	return other != nil && q.id.IsEqual(other.id)
}

// ID returns the quote's unique identifier.
func (q *Quote) ID() kernel.UUID {
	return q.id
}

// ShipmentID returns the id of the shipment this quote targets.
func (q *Quote) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// CarrierID returns the submitting carrier's user id.
func (q *Quote) CarrierID() kernel.UUID {
	return q.carrierID
}

// CarrierName returns the carrier's display name.
func (q *Quote) CarrierName() string {
	return q.carrierName
}

// Offer returns the offered amount.
func (q *Quote) Offer() kernel.Money {
	return q.offer
}

// CreatedAt returns the submission timestamp.
func (q *Quote) CreatedAt() time.Time {
	return q.createdAt
}

// ValidUntil returns the expiry timestamp.
func (q *Quote) ValidUntil() time.Time {
	return q.validUntil
}

// Status returns the current lifecycle status.
func (q *Quote) Status() Status {
	return q.status
}

// IsExpired reports whether the validity window has elapsed at the given time.
func (q *Quote) IsExpired(now time.Time) bool {
	return now.After(q.validUntil)
}

// Accept transitions the quote to Accepted. Only valid from Pending, and
// only while the validity window is open; accepting an expired quote fails
// with an ExpiredError.
func (q *Quote) Accept(now time.Time) error {
	if q.IsExpired(now) {
		return errs.NewExpiredError("quote", q.validUntil)
	}

	newStatus, err := q.status.Accept()
	if err != nil {
		return err
	}

	q.status = newStatus
	return nil
}

// Reject transitions the quote to Rejected. Only valid from Pending.
func (q *Quote) Reject() error {
	newStatus, err := q.status.Reject()
	if err != nil {
		return err
	}

	q.status = newStatus
	return nil
}

// Expire rejects a pending quote whose validity window elapsed. It is the
// sweep-job counterpart of Reject: still-valid quotes are left untouched
// and report an InvalidTransition.
func (q *Quote) Expire(now time.Time) error {
	if !q.IsExpired(now) {
		return errs.NewInvalidTransitionError("quote", q.status.String(), EventExpire)
	}

	newStatus, err := q.status.Reject()
	if err != nil {
		return err
	}

	q.status = newStatus
	return nil
}

func (q *Quote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.id = id
	return nil
}

func (q *Quote) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	q.shipmentID = shipmentID
	return nil
}

func (q *Quote) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	q.carrierID = carrierID
	return nil
}

func (q *Quote) setCarrierName(carrierName string) error {
	if carrierName == "" {
		return ErrCarrierNameIsRequired
	}
	q.carrierName = carrierName
	return nil
}

func (q *Quote) setOffer(offer kernel.Money) error {
	if err := offer.Validate(); err != nil {
		return err
	}
	q.offer = offer
	return nil
}

func (q *Quote) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	q.createdAt = createdAt
	return nil
}
