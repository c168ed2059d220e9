// Package app wires configuration, storage, the scraping pipeline, and the
// HTTP server into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"NewsAggregator/internal/api"
	"NewsAggregator/internal/config"
	"NewsAggregator/internal/extractor"
	"NewsAggregator/internal/infrastructure/scheduler"
	"NewsAggregator/internal/infrastructure/storage"
	"NewsAggregator/internal/logging"
	"NewsAggregator/internal/usecase"
)

// Application holds the wired components and their lifecycle.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	db        *storage.DB
	scheduler *usecase.Scheduler
	server    *http.Server
}

// New builds the application: database, repositories, pipeline, scheduler,
// and HTTP router.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	db, err := storage.Open(cfg.Database, baseLogger)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	if err := db.RunMigrations(cfg.Database.MigrationsPath); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	articles := storage.NewArticleRepository(db, baseLogger)
	tags := storage.NewTagRepository(db, baseLogger)
	categories := storage.NewCategoryRepository(db)
	agencies := storage.NewAgencyRepository(db)

	client := &http.Client{Timeout: cfg.Scraper.FetchTimeout}
	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Extractor: extractor.New(client, baseLogger.With("component", "extractor")),
		Articles:  articles,
		Resolver:  usecase.NewResolver(tags, categories, agencies),
		Logger:    baseLogger,
		Workers:   cfg.Scraper.Workers,
	})

	var sched *usecase.Scheduler
	if cfg.Scheduler.Enabled {
		driver := scheduler.NewTickerScheduler(cfg.Scheduler.Interval, baseLogger)
		sched = usecase.NewScheduler(driver, pipeline)
	}

	router := api.NewRouter(api.RouterDeps{
		Scraper: api.NewScraperHandler(pipeline, baseLogger),
		Catalog: api.NewCatalogHandler(articles, agencies, categories, tags),
		Health:  db,
		Logger:  baseLogger.With("component", "http"),
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Application{
		cfg:       cfg,
		logger:    baseLogger.With("component", "app"),
		db:        db,
		scheduler: sched,
		server:    server,
	}, nil
}

// Run starts the scheduler and HTTP server and blocks until ctx is
// cancelled, then shuts both down.
func (a *Application) Run(ctx context.Context) error {
	if a.scheduler != nil {
		if err := a.scheduler.Start(ctx); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", a.cfg.Server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if a.scheduler != nil {
		if err := a.scheduler.Stop(shutdownCtx); err != nil {
			a.logger.Warn("scheduler stop", "error", err)
		}
	}
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Warn("server shutdown", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("close database", "error", err)
	}

	return nil
}
