package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/history"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quote"
	"freight/internal/pkg/errs"
)

// expireBatchSize bounds how many quotes one sweep run touches.
const expireBatchSize = 100

// ExpireQuotesCommandHandler rejects Pending quotes whose validity window
// elapsed. Each expired quote gets an Expire entry in the transition log with
// no actor, marking the transition as system-driven. Quotes that a concurrent
// accept or reject already moved are skipped.
type ExpireQuotesCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewExpireQuotesCommandHandler creates a handler for the expiry sweep.
func NewExpireQuotesCommandHandler(uowFactory LifecycleUoWFactory) ExpireQuotesCommandHandler {
	return ExpireQuotesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one sweep run and returns how many quotes were expired.
func (h ExpireQuotesCommandHandler) Handle(ctx context.Context, cmd ExpireQuotesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()
	quoteRepo := uow.QuoteRepository()
	expired, err := quoteRepo.GetExpiredPending(ctx, now, expireBatchSize)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, aggregate := range expired {
		if err = aggregate.Expire(now); err != nil {
			return count, err
		}

		err = quoteRepo.UpdateStatusFrom(ctx, aggregate, quote.Pending)
		if errors.Is(err, errs.ErrConflict) {
			continue
		}
		if err != nil {
			return count, err
		}

		change, changeErr := history.NewStatusChange(
			history.KindQuote, aggregate.ID(), quote.Pending.String(), aggregate.Status().String(),
			quote.EventExpire, kernel.UUID{}, now)
		if changeErr != nil {
			return count, changeErr
		}
		if err = uow.HistoryRepository().Append(ctx, change); err != nil {
			return count, err
		}

		count++
	}

	if err = uow.Commit(ctx); err != nil {
		return count, err
	}

	return count, nil
}
