// Package jobs provides scheduled background tasks for the warehouse
// engine, implemented with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StalePutawayReportJob - Runs hourly and logs packages that have been
// putaway longer than the threshold, so floor staff can chase them.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(stalePutawayHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Mutations
//
// Jobs never mutate the shipment ledger. State changes happen only through
// request-driven commands; jobs are limited to read models.
package jobs
