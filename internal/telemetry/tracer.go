package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/jamesprial/zeabur-mcp/internal/config"
)

// TracerName is the instrumentation scope used by all spans in this module.
const TracerName = "github.com/jamesprial/zeabur-mcp"

// Tracer returns the module tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// SetupTracing installs a global TracerProvider according to cfg and returns
// a shutdown function that flushes pending spans. When tracing is disabled the
// global no-op provider is left in place.
func SetupTracing(cfg config.TracingConfig, version string, w io.Writer) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if !cfg.Enabled {
		return noop, nil
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", "zeabur-mcp"),
		attribute.String("service.version", version),
	)

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}

	switch cfg.Exporter {
	case "stdout":
		if w == nil {
			w = os.Stderr
		}
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, fmt.Errorf("create stdout trace exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	case "none", "":
		// Spans are sampled but not exported.
	default:
		return nil, fmt.Errorf("unsupported trace exporter: %s", cfg.Exporter)
	}

	provider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}
