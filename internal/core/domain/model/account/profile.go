package account

import (
	"errors"
	"fmt"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// PersonType distinguishes individual users from businesses.
type PersonType int

const (
	// PersonTypeUnknown represents an invalid or undefined person type.
	PersonTypeUnknown PersonType = iota
	// Individual is a natural person.
	Individual
	// Business is a company account.
	Business
)

func getPersonTypeStrings() map[PersonType]string {
	return map[PersonType]string{
		Individual: "Individual",
		Business:   "Business",
	}
}

// Validate checks that the PersonType holds one of the defined values.
func (p PersonType) Validate() error {
	if _, ok := getPersonTypeStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("personType is invalid",
			fmt.Errorf("%d is not a valid person type", p))
	}
	return nil
}

// String returns the canonical name of the person type.
func (p PersonType) String() string {
	if str, ok := getPersonTypeStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// PersonTypeFromString parses a canonical person type name case-insensitively.
func PersonTypeFromString(s string) (PersonType, error) {
	for personType, name := range getPersonTypeStrings() {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return personType, nil
		}
	}
	return PersonTypeUnknown, errs.NewValueIsInvalidErrorWithCause("personType is invalid",
		fmt.Errorf("%q is not a valid person type", s))
}

var (
	// ErrProfileIsNotConstructed is returned when a Profile was not created
	// through NewProfile.
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")
	// ErrDisplayNameIsRequired is returned when the display name is missing.
	ErrDisplayNameIsRequired = errs.NewValueIsRequiredError("displayName")
	// ErrAtLeastOneRoleRequired is returned when a profile carries no roles.
	ErrAtLeastOneRoleRequired = errs.NewValueIsRequiredError("at least one role")
)

// Profile is the aggregate root for a marketplace user. It owns zero or more
// shipments (as shipper) and submits zero or more quotes (as carrier),
// depending on role membership.
type Profile struct {
	id          kernel.UUID
	displayName string
	personType  PersonType
	roles       []Role
	email       string
	phone       string

	guard guard.ConstructorGuard
}

// NewProfile creates a profile. The phone number is canonicalized via
// FormatPhone before storage.
func NewProfile(
	id kernel.UUID,
	displayName string,
	personType PersonType,
	roles []Role,
	email string,
	phone string,
) (*Profile, error) {
	p := &Profile{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setDisplayName(displayName),
		p.setPersonType(personType),
		p.setRoles(roles),
	); err != nil {
		return nil, err
	}

	p.email = email
	p.phone = FormatPhone(phone)
	return p, nil
}

// Validate ensures the Profile was created through the constructor.
func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

// ID returns the profile's unique identifier.
func (p *Profile) ID() kernel.UUID {
	return p.id
}

// DisplayName returns the user's display name.
func (p *Profile) DisplayName() string {
	return p.displayName
}

// PersonType returns whether this is an individual or business account.
func (p *Profile) PersonType() PersonType {
	return p.personType
}

// Roles returns the profile's operational roles.
func (p *Profile) Roles() []Role {
	roles := make([]Role, len(p.roles))
	copy(roles, p.roles)
	return roles
}

// Email returns the contact email.
func (p *Profile) Email() string {
	return p.email
}

// Phone returns the canonically formatted phone number.
func (p *Profile) Phone() string {
	return p.phone
}

// HasRole reports whether the profile holds the given role.
func (p *Profile) HasRole(role Role) bool {
	for _, r := range p.roles {
		if r == role {
			return true
		}
	}
	return false
}

// CanShip reports whether any of the profile's roles may create shipments.
func (p *Profile) CanShip() bool {
	for _, r := range p.roles {
		if r.CanShip() {
			return true
		}
	}
	return false
}

// CanCarry reports whether any of the profile's roles may submit quotes and
// run trips.
func (p *Profile) CanCarry() bool {
	for _, r := range p.roles {
		if r.CanCarry() {
			return true
		}
	}
	return false
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setDisplayName(displayName string) error {
	if displayName == "" {
		return ErrDisplayNameIsRequired
	}
	p.displayName = displayName
	return nil
}

func (p *Profile) setPersonType(personType PersonType) error {
	if err := personType.Validate(); err != nil {
		return err
	}
	p.personType = personType
	return nil
}

func (p *Profile) setRoles(roles []Role) error {
	if len(roles) == 0 {
		return ErrAtLeastOneRoleRequired
	}
	for _, role := range roles {
		if err := role.Validate(); err != nil {
			return err
		}
	}
	p.roles = append([]Role(nil), roles...)
	return nil
}
