package commands

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// Defaults for the materialization poll. The first probe fires quickly
// because the row is usually there already; later probes back off.
const (
	defaultAwaitInitialInterval = 200 * time.Millisecond
	defaultAwaitTimeout         = 10 * time.Second
)

var errProfileNotMaterialized = errors.New("profile row not materialized yet")

// AwaitProfileCommandHandler polls until the profile row exists, with bounded
// exponential backoff. A fixed-interval poll either hammers the database or
// adds a constant latency floor to every sign-up; backoff does neither.
// On timeout the caller gets ObjectNotFoundError for the profile.
type AwaitProfileCommandHandler struct {
	profiles ports.ProfileRepository
	timeout  time.Duration
}

// NewAwaitProfileCommandHandler creates a handler for the materialization wait.
// The repository is read outside any transaction; a zero timeout selects the
// default.
func NewAwaitProfileCommandHandler(
	profiles ports.ProfileRepository, timeout time.Duration,
) AwaitProfileCommandHandler {
	if timeout <= 0 {
		timeout = defaultAwaitTimeout
	}
	return AwaitProfileCommandHandler{
		profiles: profiles,
		timeout:  timeout,
	}
}

// Handle blocks until the profile exists, the timeout elapses, or the context
// is cancelled.
func (h AwaitProfileCommandHandler) Handle(ctx context.Context, cmd AwaitProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	probe := func() error {
		exists, err := h.profiles.Exists(ctx, cmd.ProfileID())
		if err != nil {
			return backoff.Permanent(err)
		}
		if !exists {
			return errProfileNotMaterialized
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = defaultAwaitInitialInterval
	policy.MaxElapsedTime = h.timeout

	err := backoff.Retry(probe, backoff.WithContext(policy, ctx))
	if errors.Is(err, errProfileNotMaterialized) {
		return errs.NewObjectNotFoundError("profile", cmd.ProfileID())
	}
	return err
}
