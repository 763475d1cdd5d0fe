package jobs

import (
	"context"
	"log/slog"

	"shipping/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StoreHealthJob probes the store connection on a schedule. A store that
// stops answering does not interrupt serving from the cache, but the outage
// should be visible in the logs before the next mutation fails.
type StoreHealthJob struct {
	store  ports.Store
	cron   *cron.Cron
	logger *slog.Logger
}

// NewStoreHealthJob creates a new job for probing store liveness.
func NewStoreHealthJob(store ports.Store, logger *slog.Logger) *StoreHealthJob {
	return &StoreHealthJob{
		store:  store,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "store_health_job"),
	}
}

// Start begins the store health job to run every 30 seconds.
func (j *StoreHealthJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		if !j.store.IsLive(ctx) {
			j.logger.WarnContext(ctx, "Store is not reachable")
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Store health job started (running every 30 seconds)")
	return nil
}

// Stop stops the store health job.
func (j *StoreHealthJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Store health job stopped")
}
