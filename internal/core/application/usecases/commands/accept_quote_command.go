package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrAcceptQuoteCommandIsNotConstructed = errors.New(
	"AcceptQuoteCommand must be created via NewAcceptQuoteCommand constructor",
)

// AcceptQuoteCommand represents the shipment owner's decision to take an offer.
type AcceptQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptQuoteCommand creates a command to accept a quote on behalf of actorID.
func NewAcceptQuoteCommand(quoteID, actorID kernel.UUID) (AcceptQuoteCommand, error) {
	cmd := AcceptQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setActorID(actorID),
	); err != nil {
		return AcceptQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptQuoteCommand) Validate() error {
	return c.guard.Validate(ErrAcceptQuoteCommandIsNotConstructed)
}

// QuoteID returns the quote being accepted.
func (c AcceptQuoteCommand) QuoteID() kernel.UUID { return c.quoteID }

// ActorID returns the user requesting the acceptance.
func (c AcceptQuoteCommand) ActorID() kernel.UUID { return c.actorID }

func (c *AcceptQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}

	c.quoteID = quoteID
	return nil
}

func (c *AcceptQuoteCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
