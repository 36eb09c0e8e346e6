package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "covid_dashboard/docs"
	"covid_dashboard/internal/config"
	"covid_dashboard/internal/handlers"
	"covid_dashboard/internal/logger"
	"covid_dashboard/internal/repository"
	"covid_dashboard/internal/repository/db"
	"covid_dashboard/internal/server"
	"covid_dashboard/internal/service"
	"covid_dashboard/internal/source"
)

const (
	configDir       = "configs"
	shutdownTimeout = 10 * time.Second
)

// @title        Epidemic Dashboard API
// @version      1.0
// @description  Per-country epidemic time series shaped for a dashboard.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load(configDir)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	sqlDB, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "path", cfg.DBPath, "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	if cfg.SigningKey == "" {
		log.Warnw("auth.signing_key is empty; admin endpoints are disabled")
	}

	repos := repository.NewRepository(sqlDB)
	feed := source.NewClient(cfg.SourceURL, cfg.SourceTimeout, log.Component("source"))
	services := service.NewService(repos, feed, service.Options{
		Locale:     cfg.LocaleTag,
		SigningKey: cfg.SigningKey,
		TokenTTL:   cfg.TokenTTL,
		Log:        log,
	})
	apiHandler := handlers.NewHandler(services, log.Component("http")).WithStreamInterval(cfg.WSDefaultInterval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loadInitialDataset(ctx, services, log)
	go services.Refresher.Run(ctx, cfg.RefreshInterval)

	srv := server.New(cfg.Port, apiHandler.InitRoutes())
	runHTTPServer(srv, log)

	waitForShutdown(cancel, srv, log)
}

// loadInitialDataset serves the persisted snapshot first, then fetches fresh data in
// the background so a slow or failing feed does not delay startup.
func loadInitialDataset(ctx context.Context, services *service.Service, log *logger.Logger) {
	restored, err := services.Dataset.Restore(ctx)
	if err != nil {
		log.Warnw("snapshot_restore_failed", "err", err)
	} else if !restored {
		log.Infow("no snapshot to restore; waiting for first fetch")
	}

	go func() {
		// failures are logged by the dataset service
		_, _ = services.Dataset.Refresh(ctx)
	}()
}

func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
