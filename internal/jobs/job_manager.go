package jobs

import (
	"fmt"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stalePutawayReportJob *StalePutawayReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	stalePutawayHandler queries.GetStalePutawayQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stalePutawayReportJob: NewStalePutawayReportJob(stalePutawayHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stalePutawayReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale putaway report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalePutawayReportJob.Stop()
}
