package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/field-sync/internal/adapter"
	"github.com/MKhiriev/field-sync/internal/config"
	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/internal/service"
	"github.com/MKhiriev/field-sync/internal/store"
	"github.com/MKhiriev/field-sync/internal/workers"
)

type App struct {
	Services *service.ClientServices

	remote   adapter.RemoteService
	storages *store.ClientStorages
	cfg      *config.ClientConfig

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp opens and migrates the local store and builds the remote adapter
// and client services on top of it.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	remote, err := adapter.NewHTTPRemoteService(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	return &App{
		Services: service.NewClientServices(storages, remote, *cfg, logger),
		remote:   remote,
		storages: storages,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Run starts the sync job and the connectivity watcher. It returns once ctx
// is cancelled and both have stopped.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	ws := workers.NewWorkers(
		workers.NewSyncJobWorker(a.Services.SyncJob, a.cfg.Workers.SyncInterval),
		workers.NewConnectivityWatcher(a.remote, a.Services.SyncJob, a.cfg.Workers.ConnectivityInterval),
	)

	a.logger.Info().
		Str("service_provider_id", a.cfg.App.ServiceProviderID).
		Str("remote", a.cfg.Adapter.HTTPAddress).
		Msg("field client running")
	ws.Run(ctx)
	a.logger.Info().Msg("field client stopped")

	return nil
}

func (a *App) Close() error {
	return a.storages.Close()
}
