package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRejectQuoteCommandIsNotConstructed = errors.New(
	"RejectQuoteCommand must be created via NewRejectQuoteCommand constructor",
)

// RejectQuoteCommand represents the shipment owner's decision to decline an offer.
type RejectQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectQuoteCommand creates a command to reject a quote on behalf of actorID.
func NewRejectQuoteCommand(quoteID, actorID kernel.UUID) (RejectQuoteCommand, error) {
	cmd := RejectQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setActorID(actorID),
	); err != nil {
		return RejectQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectQuoteCommand) Validate() error {
	return c.guard.Validate(ErrRejectQuoteCommandIsNotConstructed)
}

// QuoteID returns the quote being rejected.
func (c RejectQuoteCommand) QuoteID() kernel.UUID { return c.quoteID }

// ActorID returns the user requesting the rejection.
func (c RejectQuoteCommand) ActorID() kernel.UUID { return c.actorID }

func (c *RejectQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}

	c.quoteID = quoteID
	return nil
}

func (c *RejectQuoteCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
