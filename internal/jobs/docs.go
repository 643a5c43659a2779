// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. MarketplaceSummaryJob - Periodically logs the number of pending orders
// and the best-rated restaurant
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager("@every 1m", pendingHandler, menuHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The summary job schedule comes from configuration as a standard cron
// expression or descriptor, "@every 1m" by default.
//
// # Error Handling
//
// - Summary job logs failures and waits for the next tick; a failed snapshot
// never stops the schedule
// - Failed job starts will stop any already running jobs
package jobs
