package labelkit

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/randalmurphal/labelkit/pkg/labelkit/cache"
	"github.com/randalmurphal/labelkit/pkg/labelkit/config"
	"github.com/randalmurphal/labelkit/pkg/labelkit/expr"
	"github.com/randalmurphal/labelkit/pkg/labelkit/modifier"
	"github.com/randalmurphal/labelkit/pkg/labelkit/observability"
)

// Engine compiles and renders templates. It owns a bounded cache of
// compiled templates, a modifier registry, and the observability hooks
// configured at construction. An Engine is safe for concurrent use.
type Engine struct {
	cache          *cache.Cache[*Template]
	modifiers      *modifier.Registry
	eval           *expr.Evaluator
	logger         *slog.Logger
	metrics        observability.MetricsRecorder
	spans          observability.SpanManager
	tracingEnabled bool
}

// New creates an Engine with the given options. With no options the engine
// caches up to cache.DefaultMaxSize compiled templates, has all built-in
// modifiers registered, and carries no logging, metrics, or tracing.
func New(opts ...Option) *Engine {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		eval:           expr.New(),
		logger:         cfg.logger,
		metrics:        cfg.metrics,
		spans:          cfg.spans,
		tracingEnabled: cfg.tracingEnabled,
	}

	e.cache = cache.New[*Template](
		cache.WithMaxSize(cfg.cacheSize),
		cache.WithTTL(cfg.cacheTTL),
		cache.WithEvictionHook(func(key string) {
			observability.LogCacheEviction(e.logger, len(key))
			e.metrics.RecordCacheEviction(context.Background())
		}),
	)

	e.modifiers = modifier.New(modifier.WithRecoveryHook(func(pe *modifier.PanicError) {
		observability.LogModifierRecovered(e.logger, pe.Name, pe.Value)
		e.metrics.RecordModifierRecovery(context.Background(), pe.Name)
	}))
	for name, fn := range cfg.modifiers {
		e.modifiers.Register(name, fn)
	}

	return e
}

// NewFromConfig creates an Engine from a loaded configuration. Recognized
// keys, all optional:
//
//	cache_size  int       compiled template cache capacity (0 disables)
//	cache_ttl   duration  compiled template expiry ("15m", or seconds)
//	metrics     bool      enable OpenTelemetry metrics
//	tracing     bool      enable OpenTelemetry tracing
//	log_level   string    enable logging at "debug", "info", "warn" or "error"
//
// Unknown keys are ignored; mistyped values fall back to defaults.
func NewFromConfig(cfg config.Config) *Engine {
	opts := []Option{
		WithCacheSize(cfg.Int("cache_size", cache.DefaultMaxSize)),
		WithCacheTTL(cfg.Duration("cache_ttl", 0)),
		WithMetrics(cfg.Bool("metrics", false)),
		WithTracing(cfg.Bool("tracing", false)),
	}
	if cfg.Has("log_level") {
		opts = append(opts, WithLogger(newLevelLogger(cfg.String("log_level", "info"))))
	}
	return New(opts...)
}

// newLevelLogger builds a JSON logger to stderr at the named level.
func newLevelLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// RegisterModifier adds a modifier to a built engine, or replaces one of
// the same name. Safe for concurrent use; renders already in flight may
// still apply the previous registration.
func (e *Engine) RegisterModifier(name string, fn modifier.Func) {
	e.modifiers.Register(name, fn)
}

// Compile returns the compiled form of text, parsing at most once per
// distinct text while it stays cached. Compilation cannot fail: malformed
// markers become literal text tokens.
func (e *Engine) Compile(text string) *Template {
	return e.cache.GetOrCompute(text, func() *Template {
		return e.compile(context.Background(), text)
	})
}

// Render compiles (or fetches) text and renders it against data in one
// call. It never panics and never returns an error; see Template.Render
// for the degradation rules.
func (e *Engine) Render(text string, data any) string {
	return e.RenderContext(context.Background(), text, data)
}

// RenderContext is Render with a caller-supplied context for trace span
// parenting.
func (e *Engine) RenderContext(ctx context.Context, text string, data any) (out string) {
	renderID := e.renderID()
	start := time.Now()
	observability.LogRenderStart(e.logger, renderID, len(text))

	var span trace.Span
	if e.tracingEnabled {
		ctx, span = e.spans.StartRenderSpan(ctx, renderID, len(text))
	}

	tpl, hit := e.cache.Get(text)
	if !hit {
		tpl = e.compile(ctx, text)
		e.cache.Set(text, tpl)
	}

	out = e.renderTokens(tpl.tokens, data)

	if e.tracingEnabled {
		e.spans.EndSpanWithError(span, nil)
	}

	duration := time.Since(start)
	observability.LogRenderComplete(e.logger, renderID, durationMs(duration), len(out))
	e.metrics.RecordRender(ctx, duration, hit)
	return out
}

// compile parses text into a Template, recording the compile span, log
// line, and metric. The caller is responsible for caching the result.
func (e *Engine) compile(ctx context.Context, text string) *Template {
	var span trace.Span
	if e.tracingEnabled {
		ctx, span = e.spans.StartCompileSpan(ctx, len(text))
	}

	tokens := parse(text)

	if e.tracingEnabled {
		e.spans.EndSpanWithError(span, nil)
	}
	observability.LogCompile(e.logger, len(text), len(tokens))
	e.metrics.RecordCompile(ctx, len(tokens))

	return &Template{raw: text, tokens: tokens, engine: e}
}

// renderCompiled renders an already-compiled template with full
// instrumentation. Template.Render lands here, so precompiled renders are
// reported as cache hits.
func (e *Engine) renderCompiled(ctx context.Context, tpl *Template, data any, cacheHit bool) string {
	renderID := e.renderID()
	start := time.Now()
	observability.LogRenderStart(e.logger, renderID, len(tpl.raw))

	var span trace.Span
	if e.tracingEnabled {
		ctx, span = e.spans.StartRenderSpan(ctx, renderID, len(tpl.raw))
	}

	out := e.renderTokens(tpl.tokens, data)

	if e.tracingEnabled {
		e.spans.EndSpanWithError(span, nil)
	}

	duration := time.Since(start)
	observability.LogRenderComplete(e.logger, renderID, durationMs(duration), len(out))
	e.metrics.RecordRender(ctx, duration, cacheHit)
	return out
}

// renderID returns a fresh id correlating one render's logs and spans, or
// "" when neither is active, keeping uuid generation off the bare hot path.
func (e *Engine) renderID() string {
	if e.logger == nil && !e.tracingEnabled {
		return ""
	}
	return uuid.NewString()
}

func durationMs(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// defaultEngine backs the package-level Compile and Render functions.
var defaultEngine = New()

// Compile compiles text on the default engine.
func Compile(text string) *Template {
	return defaultEngine.Compile(text)
}

// Render renders text against data on the default engine.
func Render(text string, data any) string {
	return defaultEngine.Render(text, data)
}
