package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/jai-kanban/internal/config"
	"github.com/thenoetrevino/jai-kanban/internal/events"
	"github.com/thenoetrevino/jai-kanban/internal/metrics"
	"github.com/thenoetrevino/jai-kanban/internal/persistence"
	"github.com/thenoetrevino/jai-kanban/internal/seed"
	taskservice "github.com/thenoetrevino/jai-kanban/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config

	// Seed document and the snapshot store that falls back to it
	Seed    *seed.Source
	Adapter *persistence.Adapter
	Metrics *metrics.Metrics

	// Service layer (business logic)
	TaskService taskservice.Service

	// Snapshot watcher, nil unless watching a file backend
	watcher *events.Watcher
	logger  *slog.Logger
}

// New creates a new App with all services initialized and the board loaded.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	options := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&options)
	}

	slot, snapshotPath := options.slot, ""
	if slot == nil {
		var err error
		slot, snapshotPath, err = openSlot(ctx, cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
		}
	}

	a := &App{
		Config:  cfg,
		Seed:    seed.New(cfg.SeedPath),
		Metrics: metrics.New(options.registry),
		logger:  options.logger,
	}

	if options.watch && snapshotPath != "" {
		w, err := events.NewWatcher(events.WatcherConfig{Path: snapshotPath, Logger: options.logger})
		if err != nil {
			// live reload is optional; the board still works without it
			options.logger.Warn("Snapshot watcher unavailable", "path", snapshotPath, "error", err)
		} else {
			a.watcher = w
		}
	}

	a.Adapter = persistence.NewAdapter(slot, cfg.Storage.Slot, a.Seed,
		persistence.WithMetrics(a.Metrics),
		persistence.WithSaveHook(a.recordSave),
	)
	a.TaskService = taskservice.NewService(a.Adapter,
		taskservice.WithPolicy(cfg.Policy),
		taskservice.WithMetrics(a.Metrics),
	)

	if err := a.TaskService.Reload(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}
	a.logger.Debug("Board loaded", "backend", cfg.Storage.Backend, "slot", a.Adapter.Key(), "seed", a.Seed.Name())
	return a, nil
}

// recordSave tells the watcher about our own writes so they are not
// reported back as external changes
func (a *App) recordSave(data []byte) {
	if a.watcher == nil {
		return
	}
	event := events.Event{Type: events.EventSnapshotSaved, Hash: events.HashContent(data)}
	if err := events.Publish(a.watcher, event); err != nil {
		a.logger.Debug("Failed to record snapshot save", "error", err)
	}
}

// Watch starts the snapshot watcher and returns its events. It returns a nil
// channel when watching is disabled or the backend is not file based.
func (a *App) Watch(ctx context.Context) (<-chan events.Event, error) {
	if a.watcher == nil {
		return nil, nil
	}
	if err := a.watcher.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start snapshot watcher: %w", err)
	}
	return a.watcher.Events(), nil
}

// Reload re-reads the snapshot after an external change
func (a *App) Reload(ctx context.Context) error {
	a.Metrics.IncReloads()
	return a.TaskService.Reload(ctx)
}

// Close stops the watcher and closes the snapshot backend
func (a *App) Close() error {
	var errs []error
	if a.watcher != nil {
		errs = append(errs, a.watcher.Stop())
	}
	if a.Adapter != nil {
		errs = append(errs, a.Adapter.Close())
	}
	return errors.Join(errs...)
}
