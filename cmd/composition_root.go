package cmd

import (
	"log/slog"
	"os"

	httpadapter "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/core/application/orders"
	"shipping/internal/core/application/resolve"
	"shipping/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	logger   *slog.Logger
	store    *postgres.GormStore
	resolver *resolve.SQLPartyResolver
	manager  *orders.Manager
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	store := postgres.NewGormStore(gormDB)
	resolver := resolve.NewSQLPartyResolver(store, logger)
	repository := orders.NewSQLOrderRepository(store)
	manager := orders.NewManager(resolver, repository, logger)

	return CompositionRoot{
		logger:   logger,
		store:    store,
		resolver: resolver,
		manager:  manager,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) OrderManager() *orders.Manager {
	return c.manager
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.manager, c.store, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(c.manager, c.resolver, c.store)
}
