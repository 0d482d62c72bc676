package labelkit

import (
	"log/slog"
	"time"

	"github.com/randalmurphal/labelkit/pkg/labelkit/cache"
	"github.com/randalmurphal/labelkit/pkg/labelkit/modifier"
	"github.com/randalmurphal/labelkit/pkg/labelkit/observability"
)

// engineConfig holds construction-time settings for an Engine.
type engineConfig struct {
	cacheSize      int
	cacheTTL       time.Duration
	logger         *slog.Logger
	metrics        observability.MetricsRecorder
	metricsEnabled bool
	spans          observability.SpanManager
	tracingEnabled bool
	modifiers      map[string]modifier.Func
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() engineConfig {
	return engineConfig{
		cacheSize: cache.DefaultMaxSize,
		metrics:   observability.NoopMetrics{},
		spans:     observability.NoopSpanManager{},
	}
}

// Option configures an Engine at construction.
type Option func(*engineConfig)

// WithCacheSize sets how many compiled templates the engine caches.
// Default: cache.DefaultMaxSize. Zero disables caching entirely, so every
// render re-parses its template. Negative values are ignored.
func WithCacheSize(n int) Option {
	return func(c *engineConfig) {
		if n >= 0 {
			c.cacheSize = n
		}
	}
}

// WithCacheTTL sets an expiry for cached compiled templates.
// Default: 0, meaning cached templates never expire. Negative values are
// ignored.
func WithCacheTTL(d time.Duration) Option {
	return func(c *engineConfig) {
		if d >= 0 {
			c.cacheTTL = d
		}
	}
}

// WithLogger sets the structured logger for render, compile, and cache
// events. Per-render events log at Debug level. A nil logger (the default)
// disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics via the global meter provider.
// Disabled engines record through a no-op recorder with no overhead.
//
// Example:
//
//	engine := labelkit.New(labelkit.WithMetrics(true))
func WithMetrics(enabled bool) Option {
	return func(c *engineConfig) {
		c.metricsEnabled = enabled
		if enabled {
			c.metrics = observability.NewMetricsRecorder()
		} else {
			c.metrics = observability.NoopMetrics{}
		}
	}
}

// WithMetricsRecorder sets a custom metrics recorder, overriding
// WithMetrics. A nil recorder is ignored.
func WithMetricsRecorder(rec observability.MetricsRecorder) Option {
	return func(c *engineConfig) {
		if rec != nil {
			c.metrics = rec
			c.metricsEnabled = true
		}
	}
}

// WithTracing enables OpenTelemetry tracing via the global tracer provider.
// Each render gets a span, with a child compile span on cache misses.
//
// Example:
//
//	engine := labelkit.New(labelkit.WithTracing(true))
func WithTracing(enabled bool) Option {
	return func(c *engineConfig) {
		c.tracingEnabled = enabled
		if enabled {
			c.spans = observability.NewSpanManager()
		} else {
			c.spans = observability.NoopSpanManager{}
		}
	}
}

// WithSpanManager sets a custom span manager, overriding WithTracing. A nil
// manager is ignored.
func WithSpanManager(sm observability.SpanManager) Option {
	return func(c *engineConfig) {
		if sm != nil {
			c.spans = sm
			c.tracingEnabled = true
		}
	}
}

// WithModifier registers a custom modifier, or overrides a built-in of the
// same name. May be given multiple times.
//
// Example:
//
//	engine := labelkit.New(labelkit.WithModifier("shout", func(v any, args []string) (any, bool) {
//	    return strings.ToUpper(expr.ToString(v)) + "!", true
//	}))
func WithModifier(name string, fn modifier.Func) Option {
	return func(c *engineConfig) {
		if c.modifiers == nil {
			c.modifiers = make(map[string]modifier.Func)
		}
		c.modifiers[name] = fn
	}
}
