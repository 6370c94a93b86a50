package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/XwaeK/2024-assignment-pandas/internal/config"
)

const (
	InstrumentationName = "github.com/XwaeK/2024-assignment-pandas"
)

// TelemetryProviders holds the tracer and meter used by the pipeline. When a
// signal is disabled its field holds a no-op implementation, so callers never
// branch on configuration.
type TelemetryProviders struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	Tracer         trace.Tracer
	Meter          metric.Meter
	Registry       *promclient.Registry

	traceFile   *os.File
	metricsFile string
	logger      *slog.Logger
}

// InitializeTelemetry sets up stage tracing (stdouttrace into paths.TraceFile)
// and stage metrics (OpenTelemetry -> Prometheus registry, flushed to
// paths.MetricsFile on Shutdown).
func InitializeTelemetry(ctx context.Context, cfg config.TelemetryConfig, paths *config.Paths, logger *slog.Logger) (*TelemetryProviders, error) {
	if logger == nil {
		logger = GetLogger()
	}

	providers := &TelemetryProviders{
		Tracer: tracenoop.NewTracerProvider().Tracer(InstrumentationName),
		Meter:  metricnoop.NewMeterProvider().Meter(InstrumentationName),
		logger: logger,
	}

	res := createResource()

	if cfg.EnableTracing {
		if err := providers.initializeTracing(paths.TraceFile, res); err != nil {
			return nil, fmt.Errorf("failed to initialize tracing: %w", err)
		}
	}

	if cfg.EnableMetrics {
		if err := providers.initializeMetrics(paths.MetricsFile, res); err != nil {
			_ = providers.Shutdown(ctx)
			return nil, fmt.Errorf("failed to initialize metrics: %w", err)
		}
	}

	logger.DebugContext(ctx, "Telemetry initialized",
		slog.Bool("tracing_enabled", cfg.EnableTracing),
		slog.Bool("metrics_enabled", cfg.EnableMetrics))

	return providers, nil
}

// createResource creates the OpenTelemetry resource
func createResource() *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(config.AppName),
		semconv.ServiceVersion(config.AppVersion),
	)
}

func (p *TelemetryProviders) initializeTracing(path string, res *resource.Resource) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create trace directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}

	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(file),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to create trace exporter: %w", err)
	}

	// Syncer rather than batcher: the process is short-lived and every span
	// must reach the file before exit.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	)

	p.traceFile = file
	p.TracerProvider = tp
	p.Tracer = tp.Tracer(InstrumentationName, trace.WithInstrumentationVersion(config.AppVersion))
	return nil
}

func (p *TelemetryProviders) initializeMetrics(path string, res *resource.Resource) error {
	registry := promclient.NewRegistry()

	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)

	p.Registry = registry
	p.MeterProvider = mp
	p.Meter = mp.Meter(InstrumentationName, metric.WithInstrumentationVersion(config.AppVersion))
	p.metricsFile = path
	return nil
}

// Shutdown flushes spans, writes the metrics textfile and releases files.
func (p *TelemetryProviders) Shutdown(ctx context.Context) error {
	var errs []error

	if p.TracerProvider != nil {
		if err := p.TracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.traceFile != nil {
		if err := p.traceFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close trace file: %w", err))
		}
		p.traceFile = nil
	}

	if p.Registry != nil && p.metricsFile != "" {
		if err := os.MkdirAll(filepath.Dir(p.metricsFile), 0755); err != nil {
			errs = append(errs, fmt.Errorf("create metrics directory: %w", err))
		} else if err := promclient.WriteToTextfile(p.metricsFile, p.Registry); err != nil {
			errs = append(errs, fmt.Errorf("write metrics textfile: %w", err))
		} else {
			p.logger.DebugContext(ctx, "Metrics textfile written", slog.String("path", p.metricsFile))
		}
	}
	if p.MeterProvider != nil {
		if err := p.MeterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}

	return errors.Join(errs...)
}

// PipelineMetrics groups the instruments recorded by the stage runner.
type PipelineMetrics struct {
	stageDuration metric.Float64Histogram
	stageRows     metric.Int64Counter
	runs          metric.Int64Counter
}

// NewPipelineMetrics creates the pipeline instruments on meter.
func NewPipelineMetrics(meter metric.Meter) (*PipelineMetrics, error) {
	stageDuration, err := meter.Float64Histogram(
		"pipeline_stage_duration_seconds",
		metric.WithDescription("Pipeline stage execution duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	stageRows, err := meter.Int64Counter(
		"pipeline_stage_rows",
		metric.WithDescription("Rows produced by a pipeline stage"),
	)
	if err != nil {
		return nil, err
	}

	runs, err := meter.Int64Counter(
		"pipeline_runs",
		metric.WithDescription("Pipeline runs by outcome"),
	)
	if err != nil {
		return nil, err
	}

	return &PipelineMetrics{
		stageDuration: stageDuration,
		stageRows:     stageRows,
		runs:          runs,
	}, nil
}

// RecordStage records one stage execution.
func (m *PipelineMetrics) RecordStage(ctx context.Context, stage string, elapsed time.Duration, rows int, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("stage", stage),
		attribute.String("status", status),
	)
	m.stageDuration.Record(ctx, elapsed.Seconds(), attrs)
	if err == nil {
		m.stageRows.Add(ctx, int64(rows), metric.WithAttributes(attribute.String("stage", stage)))
	}
}

// RecordRun records a finished pipeline run.
func (m *PipelineMetrics) RecordRun(ctx context.Context, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.runs.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
