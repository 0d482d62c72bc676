package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the labelkit tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("labelkit")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartRenderSpan starts a span covering one template render.
	// Returns the context with span and the span itself.
	StartRenderSpan(ctx context.Context, renderID string, templateLen int) (context.Context, trace.Span)

	// StartCompileSpan starts a span for a template compilation.
	// The compile span should be a child of the render span when the render
	// misses the cache.
	StartCompileSpan(ctx context.Context, templateLen int) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartRenderSpan starts a span covering one template render.
func (m *otelSpanManager) StartRenderSpan(ctx context.Context, renderID string, templateLen int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "labelkit.render",
		trace.WithAttributes(
			attribute.String("render.id", renderID),
			attribute.Int("template.len", templateLen),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartCompileSpan starts a span for a template compilation.
func (m *otelSpanManager) StartCompileSpan(ctx context.Context, templateLen int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "labelkit.compile",
		trace.WithAttributes(
			attribute.Int("template.len", templateLen),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}

// Convenience functions that operate on the global tracer.
// These are useful for simple cases where you don't need the interface.

// StartRenderSpan starts a span covering one template render.
// Uses the global OTel tracer.
func StartRenderSpan(ctx context.Context, renderID string, templateLen int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "labelkit.render",
		trace.WithAttributes(
			attribute.String("render.id", renderID),
			attribute.Int("template.len", templateLen),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartCompileSpan starts a span for a template compilation.
// Uses the global OTel tracer.
func StartCompileSpan(ctx context.Context, templateLen int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "labelkit.compile",
		trace.WithAttributes(
			attribute.Int("template.len", templateLen),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
