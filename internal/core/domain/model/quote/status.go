package quote

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of a quote. It is a closed
// enumeration with a single canonical serialization; the legacy data this
// model replaces compared free-text statuses case-insensitively, which is
// why StatusFromString tolerates any casing on input.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending is the initial status of a submitted quote, awaiting the
	// shipment owner's decision.
	Pending

	// Accepted indicates the owner took this offer. Terminal.
	Accepted

	// Rejected indicates the owner declined the offer, or the offer
	// expired before a decision. Terminal.
	Rejected
)

// Events that drive quote transitions, recorded in the status history.
const (
	EventAccept = "Accept"
	EventReject = "Reject"
	EventExpire = "Expire"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "Pending",
		Accepted:      "Accepted",
		Rejected:      "Rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pending",
		Accepted: "Accepted",
		Rejected: "Rejected",
	}
}

// Validate checks that the Status holds one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid quote status", s))
	}
	return nil
}

// String returns the canonical name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a canonical status name case-insensitively.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid quote status", s))
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Accepted || s == Rejected
}

// Accept transitions the status to Accepted. Only valid from Pending.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("quote", s.String(), EventAccept)
	}

	return Accepted, nil
}

// Reject transitions the status to Rejected. Only valid from Pending.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("quote", s.String(), EventReject)
	}

	return Rejected, nil
}
