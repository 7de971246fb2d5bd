package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrExpireQuotesCommandIsNotConstructed = errors.New(
	"ExpireQuotesCommand must be created via NewExpireQuotesCommand constructor",
)

// ExpireQuotesCommand triggers the expiry sweep: Pending quotes past their
// validity window are moved to Rejected so they stop looking acceptable.
// Issued periodically by the scheduler, not by users.
type ExpireQuotesCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireQuotesCommand creates a new command to trigger the expiry sweep.
func NewExpireQuotesCommand() ExpireQuotesCommand {
	return ExpireQuotesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ExpireQuotesCommand) Validate() error {
	return c.guard.Validate(
		ErrExpireQuotesCommandIsNotConstructed,
	)
}
