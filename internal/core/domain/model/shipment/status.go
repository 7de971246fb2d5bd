package shipment

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment. It is a closed
// enumeration with a single canonical serialization; transitions are only
// performed through the methods below, which implement the shipment rows of
// the lifecycle transition table.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Requested is the initial status of a newly created shipment.
	// The shipment is visible to carriers but has received no quotes yet.
	Requested

	// Available indicates the shipment has received at least one quote
	// and is open for acceptance by the owner.
	Available

	// InProgress indicates the accepted carrier has started the trip.
	InProgress

	// Completed indicates the trip finished. Terminal.
	Completed

	// Cancelled indicates the shipment was withdrawn before completion.
	// Reachable from any non-terminal status. Terminal.
	Cancelled
)

// Events that drive shipment transitions, recorded in the status history.
const (
	EventReceiveQuote = "ReceiveQuote"
	EventStartTrip    = "StartTrip"
	EventCompleteTrip = "CompleteTrip"
	EventCancel       = "Cancel"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Requested:     "Requested",
		Available:     "Available",
		InProgress:    "InProgress",
		Completed:     "Completed",
		Cancelled:     "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Requested:  "Requested",
		Available:  "Available",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// Validate checks that the Status holds one of the defined values.
// Used when reconstructing shipments from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// String returns the canonical name of the status. It implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a canonical status name case-insensitively.
// Accepting any casing absorbs the status-string drift of legacy data while
// keeping a single canonical form on the way out.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid shipment status", s))
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ReceiveQuote transitions the status when a quote arrives.
//
// Valid transitions:
//   - Requested -> Available (first quote)
//   - Available -> Available (further quotes)
func (s Status) ReceiveQuote() (Status, error) {
	if s != Requested && s != Available {
		return 0, errs.NewInvalidTransitionError("shipment", s.String(), EventReceiveQuote)
	}

	return Available, nil
}

// Start transitions the status to InProgress when the accepted carrier
// starts the trip.
//
// Valid transitions:
//   - Requested -> InProgress
//   - Available -> InProgress
//
// The caller must additionally hold an accepted quote for the shipment;
// that cross-aggregate guard lives in the domain service layer.
func (s Status) Start() (Status, error) {
	if s != Requested && s != Available {
		return 0, errs.NewInvalidTransitionError("shipment", s.String(), EventStartTrip)
	}

	return InProgress, nil
}

// Complete transitions the status to Completed when the trip finishes.
//
// Valid transitions:
//   - InProgress -> Completed
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidTransitionError("shipment", s.String(), EventCompleteTrip)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from any non-terminal status; Completed and Cancelled reject the
// event.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidTransitionError("shipment", s.String(), EventCancel)
	}

	return Cancelled, nil
}
