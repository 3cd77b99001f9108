package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/thenoetrevino/jai-kanban/internal/api"
	"github.com/thenoetrevino/jai-kanban/internal/app"
	"github.com/thenoetrevino/jai-kanban/internal/config"
	"github.com/thenoetrevino/jai-kanban/internal/logging"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	if err := run(ctx); err != nil {
		slog.Error("kanband error", "error", err)
		cancel()
		os.Exit(1)
	}
	slog.Info("kanband shut down gracefully")
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logging.Setup(os.Stderr, cfg.Log); err != nil {
		return err
	}

	shutdownTracing := api.SetupTracing(cfg.Server.Tracing)
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Error("failed to flush traces", "error", err)
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	application, err := app.New(ctx, cfg, app.WithRegistry(reg))
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("failed to close application", "error", err)
		}
	}()

	server, err := api.NewServer(cfg.Server, api.Deps{
		Seed:     application.Seed,
		Store:    application.Adapter,
		Metrics:  application.Metrics,
		Registry: reg,
	})
	if err != nil {
		return err
	}

	slog.Info("kanband starting", "addr", cfg.Server.Addr, "backend", cfg.Storage.Backend, "pid", os.Getpid())

	// Start blocks until ctx is cancelled
	return server.Start(ctx)
}
