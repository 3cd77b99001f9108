package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/thenoetrevino/jai-kanban/internal/board"
	"github.com/thenoetrevino/jai-kanban/internal/metrics"
	"github.com/thenoetrevino/jai-kanban/internal/models"
)

// RawSource yields the seed document bytes
type RawSource interface {
	Raw() ([]byte, error)
}

// BoardLoader yields the current board, from the snapshot or the seed
type BoardLoader interface {
	Load(ctx context.Context) (models.Board, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
	metrics.Snapshot
}

// Register wires up all API routes on the provided Echo instance.
func Register(e *echo.Echo, seed RawSource, store BoardLoader, m *metrics.Metrics) {
	e.GET("/api/tasks", getTasks(seed))
	e.GET("/api/tasks/:id", getTask(store))
	e.GET("/api/board", getBoard(store))
	e.GET("/healthz", healthz(m))
}

// getTasks serves the seed document byte for byte
func getTasks(seed RawSource) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := seed.Raw()
		if err != nil {
			slog.Error("Failed to load tasks", "error", err)
			trace.SpanFromContext(c.Request().Context()).RecordError(err)
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to load tasks"})
		}
		return c.JSONBlob(http.StatusOK, data)
	}
}

func getTask(store BoardLoader) echo.HandlerFunc {
	return func(c echo.Context) error {
		b, err := store.Load(c.Request().Context())
		if err != nil {
			slog.Error("Failed to load board", "error", err)
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to load tasks"})
		}
		task, idx := board.FindTask(b, c.Param("id"))
		if idx < 0 {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Task not found"})
		}
		return c.JSON(http.StatusOK, task)
	}
}

func getBoard(store BoardLoader) echo.HandlerFunc {
	return func(c echo.Context) error {
		filter := c.QueryParam("filter")
		if filter == "" {
			filter = models.FilterAll
		}
		trace.SpanFromContext(c.Request().Context()).SetAttributes(attribute.String("board.filter", filter))

		b, err := store.Load(c.Request().Context())
		if err != nil {
			slog.Error("Failed to load board", "error", err)
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to load tasks"})
		}

		return c.JSON(http.StatusOK, board.BuildView(b, filter))
	}
}

func healthz(m *metrics.Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthResponse{Status: "ok", Snapshot: m.GetSnapshot()})
	}
}
