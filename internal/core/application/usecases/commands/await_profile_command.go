package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrAwaitProfileCommandIsNotConstructed = errors.New(
	"AwaitProfileCommand must be created via NewAwaitProfileCommand constructor",
)

// AwaitProfileCommand represents the post-sign-up wait for the profile row to
// materialize before the session proceeds.
type AwaitProfileCommand struct { //nolint:recvcheck //using for validation
	profileID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAwaitProfileCommand creates a command to wait for the given profile.
func NewAwaitProfileCommand(profileID kernel.UUID) (AwaitProfileCommand, error) {
	cmd := AwaitProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProfileID(profileID); err != nil {
		return AwaitProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AwaitProfileCommand) Validate() error {
	return c.guard.Validate(ErrAwaitProfileCommandIsNotConstructed)
}

// ProfileID returns the profile being awaited.
func (c AwaitProfileCommand) ProfileID() kernel.UUID { return c.profileID }

func (c *AwaitProfileCommand) setProfileID(profileID kernel.UUID) error {
	if err := profileID.Validate(); err != nil {
		return err
	}

	c.profileID = profileID
	return nil
}
