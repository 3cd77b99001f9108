package api

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/thenoetrevino/jai-kanban/internal/board"
	"github.com/thenoetrevino/jai-kanban/internal/config"
	"github.com/thenoetrevino/jai-kanban/internal/metrics"
	"github.com/thenoetrevino/jai-kanban/internal/models"
	"github.com/thenoetrevino/jai-kanban/internal/persistence"
	"github.com/thenoetrevino/jai-kanban/internal/seed"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type failingSeed struct{}

func (failingSeed) Raw() ([]byte, error) { return nil, errors.New("no such file") }

type failingStore struct{}

func (failingStore) Load(context.Context) (models.Board, error) {
	return models.Board{}, errors.New("seed unreadable")
}

func newTestServer(t *testing.T, deps Deps) http.Handler {
	t.Helper()
	if deps.Seed == nil {
		deps.Seed = seed.New("")
	}
	if deps.Store == nil {
		deps.Store = persistence.NewAdapter(persistence.NewMemorySlot(), "", nil)
	}
	srv, err := NewServer(config.ServerConfig{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second}, deps)
	require.NoError(t, err)
	return srv.Handler()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func setupTestTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
	)
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	t.Cleanup(func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("shutdown tracer provider: %v", err)
		}
		otel.SetTracerProvider(prev)
	})
	return exporter
}

// ============================================================================
// /api/tasks
// ============================================================================

func TestGetTasks_ServesSeedVerbatim(t *testing.T) {
	h := newTestServer(t, Deps{})

	rec := get(t, h, "/api/tasks")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, seed.Embedded(), rec.Body.Bytes())
}

func TestGetTasks_SeedFailure(t *testing.T) {
	h := newTestServer(t, Deps{Seed: failingSeed{}})

	rec := get(t, h, "/api/tasks")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to load tasks"}`, rec.Body.String())
}

func TestGetTasks_InvalidSeedFile(t *testing.T) {
	path := t.TempDir() + "/tasks.json"
	require.NoError(t, os.WriteFile(path, []byte(`{"tasks": [`), 0o644))

	h := newTestServer(t, Deps{Seed: seed.New(path)})
	rec := get(t, h, "/api/tasks")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to load tasks"}`, rec.Body.String())
}

// ============================================================================
// /api/tasks/:id and /api/board
// ============================================================================

func TestGetTask(t *testing.T) {
	h := newTestServer(t, Deps{})

	rec := get(t, h, "/api/tasks/t1")
	require.Equal(t, http.StatusOK, rec.Code)
	var task models.Task
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &task))
	assert.Equal(t, "t1", task.ID)

	rec = get(t, h, "/api/tasks/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Task not found"}`, rec.Body.String())
}

func TestGetBoard_ReflectsSnapshot(t *testing.T) {
	ctx := context.Background()
	adapter := persistence.NewAdapter(persistence.NewMemorySlot(), "", nil)
	b, err := adapter.Load(ctx)
	require.NoError(t, err)
	moved, err := board.MoveTask(b, "t1", models.StatusDone, time.Now())
	require.NoError(t, err)
	require.NoError(t, adapter.Save(ctx, moved))

	h := newTestServer(t, Deps{Store: adapter})
	rec := get(t, h, "/api/board")
	require.Equal(t, http.StatusOK, rec.Code)

	var view board.View
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, models.FilterAll, view.Filter)
	require.Len(t, view.Columns, 4)

	var doneIDs []string
	for _, task := range view.Columns[3].Tasks {
		doneIDs = append(doneIDs, task.ID)
	}
	assert.Contains(t, doneIDs, "t1")
}

func TestGetBoard_UnknownFilter(t *testing.T) {
	h := newTestServer(t, Deps{})

	rec := get(t, h, "/api/board?filter=nothing-matches")
	require.Equal(t, http.StatusOK, rec.Code)

	var view board.View
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Columns, 4)
	for _, col := range view.Columns {
		assert.Empty(t, col.Tasks, "column %s should be empty", col.Status)
	}
}

func TestGetBoard_LoadFailure(t *testing.T) {
	h := newTestServer(t, Deps{Store: failingStore{}})

	rec := get(t, h, "/api/board")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ============================================================================
// AMBIENT ROUTES AND MIDDLEWARE
// ============================================================================

func TestHealthz(t *testing.T) {
	h := newTestServer(t, Deps{Metrics: metrics.New(nil)})

	rec := get(t, h, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), `"uptime"`)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	h := newTestServer(t, Deps{Metrics: m, Registry: reg})

	_ = get(t, h, "/api/tasks")
	rec := get(t, h, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "jai_kanban_http_requests_total")
	assert.Contains(t, body, "jai_kanban_active_tasks")
}

func TestRequestID(t *testing.T) {
	h := newTestServer(t, Deps{})

	rec := get(t, h, "/healthz")
	assert.Len(t, rec.Header().Get("X-Request-Id"), 36)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "caller-id")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "caller-id", rec.Header().Get("X-Request-Id"))
}

func TestTracing_RecordsSpans(t *testing.T) {
	exporter := setupTestTracer(t)
	h := newTestServer(t, Deps{Seed: failingSeed{}})

	_ = get(t, h, "/api/tasks")

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "GET /api/tasks", span.Name)
	assert.Equal(t, "Error", span.Status.Code.String())

	attrs := map[string]any{}
	for _, kv := range span.Attributes {
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	assert.Equal(t, int64(http.StatusInternalServerError), attrs["http.response.status_code"])
	assert.Equal(t, "/api/tasks", attrs["http.route"])
	assert.NotEmpty(t, span.Events, "seed failure should be recorded on the span")
}

func TestStart_ShutsDownOnCancel(t *testing.T) {
	srv, err := NewServer(config.ServerConfig{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second},
		Deps{Seed: seed.New(""), Store: failingStore{}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.NoError(t, srv.Shutdown(context.Background()), "second shutdown is a no-op")
}

func TestNewServer_RequiresDeps(t *testing.T) {
	_, err := NewServer(config.ServerConfig{}, Deps{})
	assert.Error(t, err)
}

// ============================================================================
// TRACING SETUP
// ============================================================================

func TestSetupTracing_LogExporterWritesSpans(t *testing.T) {
	var buf bytes.Buffer
	prevLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	prevProvider := otel.GetTracerProvider()
	t.Cleanup(func() {
		slog.SetDefault(prevLogger)
		otel.SetTracerProvider(prevProvider)
	})

	shutdown := SetupTracing(config.TracingConfig{Exporter: config.TraceExporterLog, SampleRatio: 1})
	h := newTestServer(t, Deps{})

	rec := get(t, h, "/api/tasks")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, shutdown(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "GET /api/tasks")
	assert.Contains(t, out, "http.route=/api/tasks")
	assert.Contains(t, out, "trace_id=")
}

func TestSetupTracing_NoneKeepsGlobalProvider(t *testing.T) {
	prev := otel.GetTracerProvider()
	shutdown := SetupTracing(config.TracingConfig{Exporter: config.TraceExporterNone})

	assert.Equal(t, prev, otel.GetTracerProvider())
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewTracerProvider_SamplesByRatio(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  int
	}{
		{"every request", 1, 3},
		{"almost none", 1e-12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := tracetest.NewInMemoryExporter()
			tp := newTracerProvider(config.TracingConfig{SampleRatio: tt.ratio}, sdktrace.WithSyncer(exporter))
			defer func() { _ = tp.Shutdown(context.Background()) }()

			for range 3 {
				_, span := tp.Tracer("test").Start(context.Background(), "op")
				span.End()
			}
			assert.Len(t, exporter.GetSpans(), tt.want)
		})
	}
}
