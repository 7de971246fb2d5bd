package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when using an improperly initialized
// Money value. Money must be created via NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// ErrAmountMustBePositive is returned when a monetary amount is zero or negative.
var ErrAmountMustBePositive = errs.NewValueIsInvalidError("amount must be greater than 0")

// Money is a strictly positive monetary amount, used for quote offers and
// checkout prices. It is an immutable value object; the zero value fails
// validation.
type Money struct { //nolint:recvcheck //using for validation
	amount float64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value. The amount must be greater than zero.
func NewMoney(amount float64) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := money.setAmount(amount); err != nil {
		return Money{}, err
	}

	return money, nil
}

// Validate checks that the Money value was built through NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the monetary amount.
func (m Money) Amount() float64 {
	return m.amount
}

// String implements fmt.Stringer.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}

// IsEqual compares two monetary amounts.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

func (m *Money) setAmount(amount float64) error {
	if amount <= 0 {
		return ErrAmountMustBePositive
	}

	m.amount = amount
	return nil
}
