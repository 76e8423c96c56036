// Package otel provides OpenTelemetry tracer provider initialization and management.
package otel

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/mrzor/rinfo/internal/config"
	"github.com/mrzor/rinfo/internal/log"
)

// TracerName is the instrumentation scope of rinfo spans.
const TracerName = "github.com/mrzor/rinfo"

// exporterOptions translates cfg into OTLP/HTTP options. Endpoints with a
// scheme are taken as full URLs, bare host:port pairs as endpoints.
func exporterOptions(cfg *config.OTELConfig) []otlptracehttp.Option {
	endpoint := cfg.GetEndpoint()

	var opts []otlptracehttp.Option
	if strings.Contains(endpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpointURL(endpoint))
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint))
		if cfg.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
	}
	if cfg.Timeout > 0 {
		opts = append(opts, otlptracehttp.WithTimeout(cfg.Timeout))
	}
	return opts
}

// NewResource builds the resource describing this rinfo instance.
func NewResource(ctx context.Context, cfg *config.OTELConfig, attrs ...attribute.KeyValue) (*resource.Resource, error) {
	resourceAttrs := []resource.Option{
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	}
	if len(attrs) > 0 {
		resourceAttrs = append(resourceAttrs, resource.WithAttributes(attrs...))
	}

	// Add custom resource attributes from environment
	if custom := cfg.ParseResourceAttributes(); len(custom) > 0 {
		resourceAttrs = append(resourceAttrs, resource.WithAttributes(custom...))
	}

	res, err := resource.New(ctx, resourceAttrs...)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

// InitProvider initializes the OpenTelemetry tracer provider exporting over
// OTLP/HTTP. attrs are added to the resource.
//
// The HTTP client honors HTTP_PROXY, HTTPS_PROXY and NO_PROXY through
// net/http's default transport.
func InitProvider(ctx context.Context, cfg *config.OTELConfig, attrs ...attribute.KeyValue) (*sdktrace.TracerProvider, error) {
	log.WithFields(map[string]any{
		"service":  cfg.ServiceName,
		"endpoint": cfg.GetEndpoint(),
		"insecure": cfg.Insecure,
		"timeout":  cfg.Timeout,
	}).Debug("initializing OTLP/HTTP exporter")
	for _, key := range []string{"HTTPS_PROXY", "HTTP_PROXY", "NO_PROXY"} {
		if v := os.Getenv(key); v != "" {
			log.Debugf("proxy configuration: %s=%q", key, v)
		}
	}

	exporter, err := otlptracehttp.New(ctx, exporterOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	res, err := NewResource(ctx, cfg, attrs...)
	if err != nil {
		return nil, err
	}

	// One probe per run: export synchronously on End.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	)

	return tp, nil
}

// ShutdownProvider gracefully shuts down the tracer provider, flushing any remaining spans.
func ShutdownProvider(ctx context.Context, tp *sdktrace.TracerProvider) error {
	if tp == nil {
		return nil
	}

	if err := tp.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown tracer provider: %w", err)
	}

	return nil
}
