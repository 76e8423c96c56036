package otel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/mrzor/rinfo/internal/config"
)

func testConfig() *config.OTELConfig {
	return &config.OTELConfig{
		ServiceName:        "rinfo-test",
		ResourceAttributes: "deployment.environment=ci, team=infra",
		Insecure:           true,
		Timeout:            time.Second,
	}
}

func TestNewResource(t *testing.T) {
	res, err := NewResource(context.Background(), testConfig(), semconv.HostName("box"))
	require.NoError(t, err)

	set := res.Set()
	v, ok := set.Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.Equal(t, "rinfo-test", v.AsString())

	v, ok = set.Value(semconv.HostNameKey)
	require.True(t, ok)
	assert.Equal(t, "box", v.AsString())

	v, ok = set.Value(attribute.Key("deployment.environment"))
	require.True(t, ok)
	assert.Equal(t, "ci", v.AsString())

	v, ok = set.Value(attribute.Key("team"))
	require.True(t, ok)
	assert.Equal(t, "infra", v.AsString())
}

func TestExporterOptions(t *testing.T) {
	cfg := testConfig()
	assert.Len(t, exporterOptions(cfg), 3, "endpoint, insecure, timeout")

	cfg.TracesEndpoint = "https://collector.example.com:4318/v1/traces"
	assert.Len(t, exporterOptions(cfg), 2, "endpoint URL, timeout")

	cfg.TracesEndpoint = ""
	cfg.Insecure = false
	cfg.Timeout = 0
	assert.Len(t, exporterOptions(cfg), 1)
}

func TestInitAndShutdownProvider(t *testing.T) {
	// The exporter connects lazily, so no collector is needed.
	tp, err := InitProvider(context.Background(), testConfig())
	require.NoError(t, err)
	require.NotNil(t, tp)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, ShutdownProvider(ctx, tp))
}

func TestShutdownProviderNil(t *testing.T) {
	assert.NoError(t, ShutdownProvider(context.Background(), nil))
}
