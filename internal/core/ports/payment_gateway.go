package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
)

// Checkout is a hosted payment page created for an accepted quote.
type Checkout struct {
	// Reference is the gateway's identifier for the payment attempt.
	Reference string
	// URL is the hosted page the payer is redirected to.
	URL string
}

// PaymentGateway creates hosted checkouts with an external payment provider.
// Implementations return UpstreamUnavailableError when the provider cannot
// be reached.
type PaymentGateway interface {
	// CreateCheckout registers a payment for the given amount and returns
	// the hosted checkout to redirect the payer to.
	CreateCheckout(ctx context.Context, amount kernel.Money, description string) (Checkout, error)
}
