package infrastructure

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XwaeK/2024-assignment-pandas/internal/config"
)

func telemetryPaths(t *testing.T) *config.Paths {
	t.Helper()
	dir := t.TempDir()
	return &config.Paths{
		OutputDir:   dir,
		TraceFile:   filepath.Join(dir, "trace.json"),
		MetricsFile: filepath.Join(dir, "metrics", "pipeline.prom"),
	}
}

func TestInitializeTelemetry_Disabled(t *testing.T) {
	ctx := context.Background()
	paths := telemetryPaths(t)

	providers, err := InitializeTelemetry(ctx, config.TelemetryConfig{}, paths, nil)
	require.NoError(t, err)

	assert.Nil(t, providers.TracerProvider)
	assert.Nil(t, providers.MeterProvider)
	require.NotNil(t, providers.Tracer)
	require.NotNil(t, providers.Meter)

	_, span := providers.Tracer.Start(ctx, "noop")
	span.End()

	metrics, err := NewPipelineMetrics(providers.Meter)
	require.NoError(t, err)
	metrics.RecordStage(ctx, "load", time.Millisecond, 3, nil)

	require.NoError(t, providers.Shutdown(ctx))
	assert.False(t, config.FileExists(paths.TraceFile))
	assert.False(t, config.FileExists(paths.MetricsFile))
}

func TestInitializeTelemetry_TracingWritesSpans(t *testing.T) {
	ctx := context.Background()
	paths := telemetryPaths(t)

	providers, err := InitializeTelemetry(ctx, config.TelemetryConfig{EnableTracing: true}, paths, nil)
	require.NoError(t, err)

	_, span := providers.Tracer.Start(ctx, "aggregate-regions")
	span.End()
	require.NoError(t, providers.Shutdown(ctx))

	content, err := os.ReadFile(paths.TraceFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "aggregate-regions")
}

func TestInitializeTelemetry_MetricsTextfile(t *testing.T) {
	ctx := context.Background()
	paths := telemetryPaths(t)

	providers, err := InitializeTelemetry(ctx, config.TelemetryConfig{EnableMetrics: true}, paths, nil)
	require.NoError(t, err)
	require.NotNil(t, providers.Registry)

	metrics, err := NewPipelineMetrics(providers.Meter)
	require.NoError(t, err)
	metrics.RecordStage(ctx, "merge-areas", 20*time.Millisecond, 96, nil)
	metrics.RecordStage(ctx, "merge-ballots", 5*time.Millisecond, 0, errors.New("boom"))
	metrics.RecordRun(ctx, nil)

	require.NoError(t, providers.Shutdown(ctx))

	content, err := os.ReadFile(paths.MetricsFile)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "pipeline_stage_duration_seconds")
	assert.Contains(t, text, "pipeline_stage_rows_total")
	assert.Contains(t, text, "pipeline_runs_total")
	assert.Contains(t, text, `stage="merge-areas"`)
	assert.Contains(t, text, `outcome="success"`)
}
