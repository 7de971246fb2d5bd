// Package geo implements the Geocoder port against a places HTTP API.
// Transport failures and 5xx responses surface as UpstreamUnavailableError
// after a short exponential-backoff retry, so callers can degrade to
// unresolved waypoints.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

const (
	defaultTimeout    = 5 * time.Second
	defaultMaxElapsed = 15 * time.Second
)

// ErrBaseURLIsRequired is returned when the client is created without a
// provider URL.
var ErrBaseURLIsRequired = errs.NewValueIsRequiredError("baseURL")

// Client is an HTTP geocoding client implementing ports.Geocoder.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxElapsed time.Duration
}

// NewClient creates a geocoding client for the given provider endpoint.
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

type predictionsResponse struct {
	Predictions []struct {
		PlaceID     string `json:"place_id"`
		Description string `json:"description"`
	} `json:"predictions"`
}

type placeResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Suggest returns ranked address predictions for a partial query.
func (c *Client) Suggest(ctx context.Context, query string) ([]ports.Prediction, error) {
	if query == "" {
		return nil, errs.NewValueIsRequiredError("query")
	}

	endpoint := fmt.Sprintf("%s/v1/predictions?%s", c.baseURL, url.Values{
		"query": {query},
		"key":   {c.apiKey},
	}.Encode())

	var decoded predictionsResponse
	if err := c.getJSON(ctx, endpoint, &decoded); err != nil {
		return nil, err
	}

	predictions := make([]ports.Prediction, 0, len(decoded.Predictions))
	for _, p := range decoded.Predictions {
		predictions = append(predictions, ports.Prediction{
			PlaceID:     p.PlaceID,
			Description: p.Description,
		})
	}

	return predictions, nil
}

// Resolve returns the coordinates of a previously suggested place.
func (c *Client) Resolve(ctx context.Context, placeID string) (kernel.GeoPoint, error) {
	if placeID == "" {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("placeID")
	}

	endpoint := fmt.Sprintf("%s/v1/places/%s?%s", c.baseURL, url.PathEscape(placeID), url.Values{
		"key": {c.apiKey},
	}.Encode())

	var decoded placeResponse
	if err := c.getJSON(ctx, endpoint, &decoded); err != nil {
		return kernel.GeoPoint{}, err
	}

	return kernel.NewGeoPoint(decoded.Lat, decoded.Lng)
}

// getJSON issues a GET with retry. 4xx responses are permanent; transport
// errors and 5xx are retried until the backoff window closes.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return errs.NewUpstreamUnavailableError("geocoder", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(errs.NewObjectNotFoundError("place", endpoint))
		case resp.StatusCode >= http.StatusInternalServerError:
			return errs.NewUpstreamUnavailableError("geocoder",
				fmt.Errorf("status %d", resp.StatusCode))
		case resp.StatusCode != http.StatusOK:
			return backoff.Permanent(errs.NewUpstreamUnavailableError("geocoder",
				fmt.Errorf("status %d", resp.StatusCode)))
		}

		if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(errs.NewUpstreamUnavailableError("geocoder", err))
		}

		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = c.maxElapsed

	return backoff.Retry(operation, backoff.WithContext(policy, ctx))
}
