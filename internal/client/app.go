package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/career-dashboard/internal/adapter"
	"github.com/MKhiriev/career-dashboard/internal/config"
	"github.com/MKhiriev/career-dashboard/internal/logger"
	"github.com/MKhiriev/career-dashboard/internal/service"
	"github.com/MKhiriev/career-dashboard/internal/session"
	"github.com/MKhiriev/career-dashboard/internal/store"
	"github.com/MKhiriev/career-dashboard/internal/tui"
	"github.com/MKhiriev/career-dashboard/internal/workers"
	"github.com/MKhiriev/career-dashboard/models"
)

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp wires credential persistence, the request dispatcher, the session
// store, feature services, background workers and the terminal UI.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	dispatcher, err := adapter.NewHTTPDispatcher(cfg.Adapter, storages.Credentials, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create request dispatcher: %w", err)
	}

	sess := session.NewStore()
	services := service.NewClientServices(dispatcher, storages.Credentials, sess, log)

	jobs := workers.NewWorkers(
		workers.NewSessionExpiryWorker(services.AuthService, cfg.Workers.SessionCheckInterval, log),
	)

	ui := tui.New(services, sess, dispatcher.PendingCounter(), buildInfo, log)

	return &App{
		storages: storages,
		services: services,
		workers:  jobs,
		ui:       ui,
		logger:   log,
	}, nil
}

// Run restores a persisted session, starts background workers and blocks in
// the UI until the user quits or the process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer a.close()

	if a.services.AuthService.Restore(ctx) {
		a.logger.Info().Str("func", "App.Run").Msg("session restored")
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

func (a *App) close() {
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.close").Msg("error closing client storages")
	}
}
