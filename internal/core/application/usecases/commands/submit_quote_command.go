package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrSubmitQuoteCommandIsNotConstructed = errors.New(
	"SubmitQuoteCommand must be created via NewSubmitQuoteCommand constructor",
)

// SubmitQuoteCommand represents a carrier's offer against an open shipment.
type SubmitQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID    kernel.UUID
	shipmentID kernel.UUID
	carrierID  kernel.UUID
	amount     float64

	guard guard.ConstructorGuard
}

// NewSubmitQuoteCommand creates a command to submit a quote.
// The offer amount must be strictly positive.
func NewSubmitQuoteCommand(
	quoteID kernel.UUID,
	shipmentID kernel.UUID,
	carrierID kernel.UUID,
	amount float64,
) (SubmitQuoteCommand, error) {
	cmd := SubmitQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setShipmentID(shipmentID),
		cmd.setCarrierID(carrierID),
		cmd.setAmount(amount),
	); err != nil {
		return SubmitQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitQuoteCommand) Validate() error {
	return c.guard.Validate(ErrSubmitQuoteCommandIsNotConstructed)
}

// QuoteID returns the identifier for the new quote.
func (c SubmitQuoteCommand) QuoteID() kernel.UUID { return c.quoteID }

// ShipmentID returns the shipment the offer targets.
func (c SubmitQuoteCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// CarrierID returns the offering carrier.
func (c SubmitQuoteCommand) CarrierID() kernel.UUID { return c.carrierID }

// Amount returns the offered price.
func (c SubmitQuoteCommand) Amount() float64 { return c.amount }

func (c *SubmitQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}

	c.quoteID = quoteID
	return nil
}

func (c *SubmitQuoteCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *SubmitQuoteCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *SubmitQuoteCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}
