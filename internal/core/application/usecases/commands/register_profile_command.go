package commands

import (
	"errors"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRegisterProfileCommandIsNotConstructed = errors.New(
	"RegisterProfileCommand must be created via NewRegisterProfileCommand constructor",
)

// RegisterProfileCommand represents a sign-up request for a marketplace user.
type RegisterProfileCommand struct { //nolint:recvcheck //using for validation
	profileID   kernel.UUID
	displayName string
	personType  account.PersonType
	roles       []account.Role
	email       string
	phone       string

	guard guard.ConstructorGuard
}

// NewRegisterProfileCommand creates a command to register a profile. Name,
// person type and at least one role are mandatory; deeper invariants are
// re-checked by the aggregate.
func NewRegisterProfileCommand(
	profileID kernel.UUID,
	displayName string,
	personType account.PersonType,
	roles []account.Role,
	email string,
	phone string,
) (RegisterProfileCommand, error) {
	cmd := RegisterProfileCommand{
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProfileID(profileID),
		cmd.setDisplayName(displayName),
		cmd.setPersonType(personType),
		cmd.setRoles(roles),
	); err != nil {
		return RegisterProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterProfileCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProfileCommandIsNotConstructed)
}

// ProfileID returns the identifier for the new profile.
func (c RegisterProfileCommand) ProfileID() kernel.UUID { return c.profileID }

// DisplayName returns the user's display name.
func (c RegisterProfileCommand) DisplayName() string { return c.displayName }

// PersonType returns whether the user is an individual or a business.
func (c RegisterProfileCommand) PersonType() account.PersonType { return c.personType }

// Roles returns the requested role set.
func (c RegisterProfileCommand) Roles() []account.Role { return c.roles }

// Email returns the contact email, possibly empty.
func (c RegisterProfileCommand) Email() string { return c.email }

// Phone returns the contact phone as entered; canonicalized at the aggregate.
func (c RegisterProfileCommand) Phone() string { return c.phone }

func (c *RegisterProfileCommand) setProfileID(profileID kernel.UUID) error {
	if err := profileID.Validate(); err != nil {
		return err
	}

	c.profileID = profileID
	return nil
}

func (c *RegisterProfileCommand) setDisplayName(displayName string) error {
	if displayName == "" {
		return account.ErrDisplayNameIsRequired
	}

	c.displayName = displayName
	return nil
}

func (c *RegisterProfileCommand) setPersonType(personType account.PersonType) error {
	if err := personType.Validate(); err != nil {
		return err
	}

	c.personType = personType
	return nil
}

func (c *RegisterProfileCommand) setRoles(roles []account.Role) error {
	if len(roles) == 0 {
		return account.ErrAtLeastOneRoleRequired
	}

	c.roles = roles
	return nil
}
