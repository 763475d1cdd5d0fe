package jobs

import (
	"fmt"
	"log/slog"

	"shipping/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	cacheRefreshJob *CacheRefreshJob
	storeHealthJob  *StoreHealthJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(refresher CacheRefresher, store ports.Store, logger *slog.Logger) *JobManager {
	return &JobManager{
		cacheRefreshJob: NewCacheRefreshJob(refresher, logger),
		storeHealthJob:  NewStoreHealthJob(store, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.storeHealthJob.Start(); err != nil {
		return fmt.Errorf("failed to start store health job: %w", err)
	}

	if err := jm.cacheRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.storeHealthJob.Stop()
		return fmt.Errorf("failed to start cache refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cacheRefreshJob.Stop()
	jm.storeHealthJob.Stop()
}
