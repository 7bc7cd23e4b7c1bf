// Package jobs provides scheduled background tasks for the order
// management system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. OverdueOrdersJob - Runs every minute to surface manufacturing orders
// that have passed their expected completion without finishing
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getOverdueOrdersHandler, logger)
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
// The overdue monitor uses the cron expression "0 * * * * *", running once
// a minute. Overdue detection is informational, so a minute of latency is
// acceptable.
//
// # Error Handling
//
// Query failures are logged and the job retries on the next tick.
package jobs
