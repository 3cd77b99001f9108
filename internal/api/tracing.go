package api

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/thenoetrevino/jai-kanban/internal/config"
)

const serviceName = "kanband"

// SetupTracing installs the global tracer provider described by cfg and
// returns the function that flushes and stops it. With the none exporter the
// global no-op provider is left in place.
func SetupTracing(cfg config.TracingConfig) func(context.Context) error {
	if cfg.Exporter == config.TraceExporterNone {
		return func(context.Context) error { return nil }
	}

	tp := newTracerProvider(cfg, sdktrace.WithBatcher(logExporter{}))
	otel.SetTracerProvider(tp)
	slog.Info("Tracing enabled", "exporter", cfg.Exporter, "sample_ratio", cfg.SampleRatio)
	return tp.Shutdown
}

func newTracerProvider(cfg config.TracingConfig, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	opts = append([]sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
	}, opts...)
	return sdktrace.NewTracerProvider(opts...)
}

// logExporter writes each finished span as one debug log line
type logExporter struct{}

func (logExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	logger := slog.Default()
	for _, span := range spans {
		attrs := []slog.Attr{
			slog.String("trace_id", span.SpanContext().TraceID().String()),
			slog.String("span_id", span.SpanContext().SpanID().String()),
			slog.Duration("duration", span.EndTime().Sub(span.StartTime())),
			slog.String("status", span.Status().Code.String()),
		}
		for _, kv := range span.Attributes() {
			attrs = append(attrs, slog.String(string(kv.Key), kv.Value.Emit()))
		}
		logger.LogAttrs(ctx, slog.LevelDebug, "span "+span.Name(), attrs...)
	}
	return nil
}

func (logExporter) Shutdown(context.Context) error { return nil }
