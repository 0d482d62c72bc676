package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records labelkit metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRender records a completed render with its duration and whether
	// the compiled template came from the cache.
	RecordRender(ctx context.Context, duration time.Duration, cacheHit bool)

	// RecordCompile records a template compilation and its token count.
	RecordCompile(ctx context.Context, tokenCount int)

	// RecordCacheEviction records a compiled template leaving the cache.
	RecordCacheEviction(ctx context.Context)

	// RecordModifierRecovery records a recovered modifier panic.
	RecordModifierRecovery(ctx context.Context, name string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	renders            metric.Int64Counter
	renderLatency      metric.Float64Histogram
	compiles           metric.Int64Counter
	templateTokens     metric.Int64Histogram
	cacheEvictions     metric.Int64Counter
	modifierRecoveries metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("labelkit")

	renders, err := meter.Int64Counter("labelkit.renders",
		metric.WithDescription("Number of template renders"),
	)
	if err != nil {
		return nil, err
	}

	renderLatency, err := meter.Float64Histogram("labelkit.render.latency_ms",
		metric.WithDescription("Render latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	compiles, err := meter.Int64Counter("labelkit.compiles",
		metric.WithDescription("Number of template compilations"),
	)
	if err != nil {
		return nil, err
	}

	templateTokens, err := meter.Int64Histogram("labelkit.template.tokens",
		metric.WithDescription("Token count per compiled template"),
	)
	if err != nil {
		return nil, err
	}

	cacheEvictions, err := meter.Int64Counter("labelkit.cache.evictions",
		metric.WithDescription("Number of compiled templates evicted from the cache"),
	)
	if err != nil {
		return nil, err
	}

	modifierRecoveries, err := meter.Int64Counter("labelkit.modifier.recoveries",
		metric.WithDescription("Number of recovered modifier panics"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		renders:            renders,
		renderLatency:      renderLatency,
		compiles:           compiles,
		templateTokens:     templateTokens,
		cacheEvictions:     cacheEvictions,
		modifierRecoveries: modifierRecoveries,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordRender records a completed render.
func (m *otelMetrics) RecordRender(ctx context.Context, duration time.Duration, cacheHit bool) {
	attrs := []attribute.KeyValue{
		attribute.Bool("cache_hit", cacheHit),
	}

	m.renders.Add(ctx, 1, metric.WithAttributes(attrs...))
	// Renders routinely finish in well under a millisecond, so record
	// fractional milliseconds rather than truncating.
	ms := float64(duration.Nanoseconds()) / 1e6
	m.renderLatency.Record(ctx, ms, metric.WithAttributes(attrs...))
}

// RecordCompile records a template compilation.
func (m *otelMetrics) RecordCompile(ctx context.Context, tokenCount int) {
	m.compiles.Add(ctx, 1)
	m.templateTokens.Record(ctx, int64(tokenCount))
}

// RecordCacheEviction records a cache eviction.
func (m *otelMetrics) RecordCacheEviction(ctx context.Context) {
	m.cacheEvictions.Add(ctx, 1)
}

// RecordModifierRecovery records a recovered modifier panic.
func (m *otelMetrics) RecordModifierRecovery(ctx context.Context, name string) {
	m.modifierRecoveries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("modifier", name),
	))
}
