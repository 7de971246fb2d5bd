// Package payments implements the PaymentGateway port against a hosted
// checkout HTTP API. The provider returns a reference and a redirect URL;
// the payment itself completes out of band on the provider's page.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultMaxElapsed = 20 * time.Second
)

// ErrBaseURLIsRequired is returned when the client is created without a
// provider URL.
var ErrBaseURLIsRequired = errs.NewValueIsRequiredError("baseURL")

// Client is an HTTP checkout client implementing ports.PaymentGateway.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxElapsed time.Duration
}

// NewClient creates a payment client for the given provider endpoint.
func NewClient(baseURL string, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, ErrBaseURLIsRequired
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		maxElapsed: defaultMaxElapsed,
	}, nil
}

type checkoutRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type checkoutResponse struct {
	Reference string `json:"reference"`
	URL       string `json:"url"`
}

// CreateCheckout registers a payment for the given amount and returns the
// hosted checkout to redirect the payer to. Transport failures and 5xx
// responses are retried briefly, then surface as UpstreamUnavailableError.
func (c *Client) CreateCheckout(
	ctx context.Context,
	amount kernel.Money,
	description string,
) (ports.Checkout, error) {
	if err := amount.Validate(); err != nil {
		return ports.Checkout{}, err
	}

	body, err := json.Marshal(checkoutRequest{
		Amount:      amount.Amount(),
		Description: description,
	})
	if err != nil {
		return ports.Checkout{}, err
	}

	var checkout ports.Checkout

	// One key for all attempts of this call, so provider-side retries
	// cannot create duplicate checkouts.
	idempotencyKey := uuid.NewString()

	operation := func() error {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost,
			c.baseURL+"/v1/checkouts", bytes.NewReader(body))
		if reqErr != nil {
			return backoff.Permanent(reqErr)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Idempotency-Key", idempotencyKey)

		resp, doErr := c.httpClient.Do(req)
		if doErr != nil {
			return errs.NewUpstreamUnavailableError("payments", doErr)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= http.StatusInternalServerError:
			return errs.NewUpstreamUnavailableError("payments",
				fmt.Errorf("status %d", resp.StatusCode))
		case resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK:
			return backoff.Permanent(errs.NewUpstreamUnavailableError("payments",
				fmt.Errorf("status %d", resp.StatusCode)))
		}

		var decoded checkoutResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&decoded); decodeErr != nil {
			return backoff.Permanent(errs.NewUpstreamUnavailableError("payments", decodeErr))
		}

		checkout = ports.Checkout{Reference: decoded.Reference, URL: decoded.URL}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = c.maxElapsed

	if err = backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return ports.Checkout{}, err
	}

	return checkout, nil
}
