package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/thenoetrevino/jai-kanban/internal/config"
	"github.com/thenoetrevino/jai-kanban/internal/metrics"
)

// Deps are the collaborators the HTTP server reads from
type Deps struct {
	Seed    RawSource
	Store   BoardLoader
	Metrics *metrics.Metrics

	// Registry receives the HTTP collectors and is served on /metrics.
	// Nil uses a fresh registry.
	Registry *prometheus.Registry
}

// Server serves the read-only board API
type Server struct {
	echo            *echo.Echo
	addr            string
	shutdownTimeout time.Duration
	shutdownOnce    sync.Once
	shutdownErr     error
}

// NewServer builds the echo instance and registers all routes
func NewServer(cfg config.ServerConfig, deps Deps) (*Server, error) {
	if deps.Seed == nil || deps.Store == nil {
		return nil, errors.New("api: seed and store are required")
	}
	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = sonicSerializer{}

	e.Use(middleware.Recover())
	e.Use(requestID())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:                 "jai_kanban",
		Subsystem:                 "http",
		Registerer:                reg,
		DoNotUseRequestPathFor404: true,
	}))
	e.Use(tracing())
	e.Use(requestLog())

	Register(e, deps.Seed, deps.Store, deps.Metrics)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))

	return &Server{
		echo:            e,
		addr:            cfg.Addr,
		shutdownTimeout: cfg.ShutdownTimeout,
	}, nil
}

// Handler exposes the router for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until ctx is cancelled or the listener fails, then shuts down
func (s *Server) Start(ctx context.Context) error {
	slog.Info("HTTP server starting", "addr", s.addr)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.echo.Start(s.addr)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Server context cancelled, shutting down")
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			_ = s.Shutdown(context.Background())
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown drains in-flight requests; safe to call more than once
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		slog.Info("Shutting down HTTP server...")
		if err := s.echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.shutdownErr = err
		}
	})
	return s.shutdownErr
}
