package app

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/thenoetrevino/jai-kanban/internal/persistence"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	slot     persistence.Slot
	registry prometheus.Registerer
	logger   *slog.Logger
	watch    bool
}

// WithSlot bypasses the configured backend and stores snapshots in slot
func WithSlot(slot persistence.Slot) Option {
	return func(cfg *appConfig) {
		cfg.slot = slot
	}
}

// WithRegistry registers the application metrics on reg
func WithRegistry(reg prometheus.Registerer) Option {
	return func(cfg *appConfig) {
		cfg.registry = reg
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithWatch enables the snapshot file watcher (file backend only)
func WithWatch(enabled bool) Option {
	return func(cfg *appConfig) {
		cfg.watch = enabled
	}
}
