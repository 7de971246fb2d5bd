package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"freight/internal/core/application/usecases/commands"
)

// quoteExpirySchedule runs the sweep every minute; quote validity is
// measured in days, so sub-minute precision buys nothing.
const quoteExpirySchedule = "0 * * * * *"

// QuoteExpiryJob periodically expires pending quotes whose validity window
// has elapsed.
type QuoteExpiryJob struct {
	handler commands.ExpireQuotesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQuoteExpiryJob creates the background sweep over stale pending quotes.
func NewQuoteExpiryJob(handler commands.ExpireQuotesCommandHandler, logger *slog.Logger) *QuoteExpiryJob {
	return &QuoteExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "quote_expiry_job"),
	}
}

// Start begins the quote expiry job to run every minute.
func (j *QuoteExpiryJob) Start() error {
	_, err := j.cron.AddFunc(quoteExpirySchedule, func() {
		ctx := context.Background()
		cmd := commands.NewExpireQuotesCommand()

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Quote expiry sweep failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale quotes", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quote expiry job started (running every minute)")
	return nil
}

// Stop stops the quote expiry job.
func (j *QuoteExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Quote expiry job stopped")
}
