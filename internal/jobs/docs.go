// Package jobs provides scheduled background tasks for the shipping service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the order manager relies on.
//
// # Available Jobs
//
// 1. CacheRefreshJob - Reloads the in-memory order cache from the store every minute
// 2. StoreHealthJob - Pings the store every 30 seconds and logs when it becomes unreachable
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required collaborators
//	jobManager := jobs.NewJobManager(manager, store, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Cache refresh failures are logged and the previous snapshot stays in place
// - Health probe failures are logged as warnings and never stop the scheduler
// - Failed job starts will stop any already running jobs
package jobs
