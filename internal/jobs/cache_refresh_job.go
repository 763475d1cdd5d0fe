package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// CacheRefresher reloads the in-memory order snapshot from the store.
type CacheRefresher interface {
	Refresh(ctx context.Context) error
}

// CacheRefreshJob periodically reloads the order cache so that rows written
// by other instances become visible without a mutation on this one.
type CacheRefreshJob struct {
	refresher CacheRefresher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCacheRefreshJob creates a new job for refreshing the order cache.
func NewCacheRefreshJob(refresher CacheRefresher, logger *slog.Logger) *CacheRefreshJob {
	return &CacheRefreshJob{
		refresher: refresher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "cache_refresh_job"),
	}
}

// Start begins the cache refresh job to run every minute.
func (j *CacheRefreshJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		if err := j.refresher.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Cache refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cache refresh job started (running every minute)")
	return nil
}

// Stop stops the cache refresh job.
func (j *CacheRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cache refresh job stopped")
}
