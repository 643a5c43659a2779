package jobs

import (
	"fmt"
	"log/slog"

	"foodrun/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	marketplaceSummaryJob *MarketplaceSummaryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	summarySpec string,
	pendingHandler queries.GetPendingOrdersQueryHandler,
	menuHandler queries.GetMenuQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		marketplaceSummaryJob: NewMarketplaceSummaryJob(
			summarySpec, pendingHandler, menuHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.marketplaceSummaryJob.Start(); err != nil {
		return fmt.Errorf("failed to start marketplace summary job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.marketplaceSummaryJob.Stop()
}
