// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfilment.
//
// # Available Jobs
//
// 1. PartnerAssignmentJob - Periodically matches orders that are ready for
// pickup with available delivery partners.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignPartnerHandler, schedule, logger)
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
// The assignment schedule comes from configuration and uses the six-field
// cron syntax with a seconds column, e.g. "*/30 * * * * *" for every thirty
// seconds.
//
// # Error Handling
//
// An empty pickup queue and an empty partner pool are normal outcomes, not
// failures; the assignment job logs them at debug level and logs everything
// else as an error.
package jobs
