// Package jobs provides scheduled background tasks for the freight
// marketplace, built on github.com/robfig/cron/v3. The only job today is
// the quote expiry sweep; JobManager keeps the start/stop surface stable
// as jobs are added.
package jobs

import (
	"fmt"
	"log/slog"

	"freight/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	quoteExpiryJob *QuoteExpiryJob
}

// NewJobManager creates a job manager wired to the given handlers.
func NewJobManager(
	expireQuotesHandler commands.ExpireQuotesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		quoteExpiryJob: NewQuoteExpiryJob(expireQuotesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.quoteExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start quote expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.quoteExpiryJob.Stop()
}
