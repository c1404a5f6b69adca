package jobs

import (
	"context"
	"log/slog"
	"time"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// Packages putaway longer than this are reported as stale.
const stalePutawayThreshold = 72 * time.Hour

// StalePutawayReportJob periodically reports packages that have been sitting
// putaway past the threshold. The job only reads; every ledger mutation
// stays request-driven.
type StalePutawayReportJob struct {
	handler queries.GetStalePutawayQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStalePutawayReportJob creates a job reporting overdue putaway packages
// once an hour.
func NewStalePutawayReportJob(handler queries.GetStalePutawayQueryHandler, logger *slog.Logger) *StalePutawayReportJob {
	return &StalePutawayReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_putaway_report_job"),
	}
}

// Start begins the hourly stale putaway report.
func (j *StalePutawayReportJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetStalePutawayQuery(time.Now().UTC().Add(-stalePutawayThreshold))
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Stale putaway report failed to build query", "error", queryErr)
			return
		}

		overdue, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale putaway report failed", "error", handleErr)
			return
		}

		if len(overdue) == 0 {
			return
		}

		j.logger.InfoContext(ctx, "Stale putaway packages detected", "count", len(overdue))
		for _, pkg := range overdue {
			binID := "none"
			if pkg.BinID != nil {
				binID = *pkg.BinID
			}
			j.logger.WarnContext(ctx, "Package putaway past threshold",
				"tracking_id", pkg.TrackingID,
				"bin_id", binID,
				"time_in", pkg.TimeIn,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale putaway report job started (running hourly)")
	return nil
}

// Stop stops the stale putaway report job.
func (j *StalePutawayReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale putaway report job stopped")
}
