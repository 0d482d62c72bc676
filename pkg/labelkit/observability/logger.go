// Package observability provides production-grade observability features
// for labelkit: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
// Rendering is a hot path, so per-render events log at Debug level; only
// rare lifecycle events (catalog loads, modifier panics) log higher.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds render context to a logger.
// Returns a new logger with render_id and template_len fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "render-123", 42)
//	enriched.Debug("resolving variable") // includes render_id, template_len
func EnrichLogger(logger *slog.Logger, renderID string, templateLen int) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("render_id", renderID),
		slog.Int("template_len", templateLen),
	)
}

// LogRenderStart logs the start of a template render.
func LogRenderStart(logger *slog.Logger, renderID string, templateLen int) {
	if logger == nil {
		return
	}
	logger.Debug("render starting",
		slog.String("render_id", renderID),
		slog.Int("template_len", templateLen),
	)
}

// LogRenderComplete logs render completion.
func LogRenderComplete(logger *slog.Logger, renderID string, durationMs float64, outputLen int) {
	if logger == nil {
		return
	}
	logger.Debug("render completed",
		slog.String("render_id", renderID),
		slog.Float64("duration_ms", durationMs),
		slog.Int("output_len", outputLen),
	)
}

// LogCompile logs a template compilation. Cache hits skip compilation, so
// this fires once per distinct template text.
func LogCompile(logger *slog.Logger, templateLen, tokenCount int) {
	if logger == nil {
		return
	}
	logger.Debug("template compiled",
		slog.Int("template_len", templateLen),
		slog.Int("tokens", tokenCount),
	)
}

// LogModifierRecovered logs a recovered modifier panic. The render continues
// with the modifier's input value, so this is a warning rather than an error.
func LogModifierRecovered(logger *slog.Logger, name string, panicValue any) {
	if logger == nil {
		return
	}
	logger.Warn("modifier panicked",
		slog.String("modifier", name),
		slog.Any("panic", panicValue),
	)
}

// LogCacheEviction logs a compiled template leaving the cache.
func LogCacheEviction(logger *slog.Logger, templateLen int) {
	if logger == nil {
		return
	}
	logger.Debug("cached template evicted",
		slog.Int("template_len", templateLen),
	)
}

// LogCatalogLoad logs a successful catalog load or reload.
func LogCatalogLoad(logger *slog.Logger, path string, count int) {
	if logger == nil {
		return
	}
	logger.Info("catalog loaded",
		slog.String("path", path),
		slog.Int("templates", count),
	)
}

// LogCatalogError logs a catalog load failure (non-fatal on reload; the
// previous catalog stays active).
func LogCatalogError(logger *slog.Logger, path string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("catalog load failed",
		slog.String("path", path),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Nanoseconds()) / 1e6
	}
}
