package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics(t *testing.T) {
	m := NoopMetrics{}
	ctx := context.Background()

	assert.NotPanics(t, func() {
		m.RecordRender(ctx, 100*time.Microsecond, true)
		m.RecordRender(ctx, time.Millisecond, false)
		m.RecordCompile(ctx, 5)
		m.RecordCacheEviction(ctx)
		m.RecordModifierRecovery(ctx, "shout")
	})

	t.Run("works with nil context", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordRender(nil, 0, false) //nolint:staticcheck
			m.RecordCompile(nil, 0)       //nolint:staticcheck
		})
	})
}

func TestNoopSpanManager(t *testing.T) {
	sm := NoopSpanManager{}
	ctx := context.Background()

	t.Run("StartRenderSpan returns context unchanged", func(t *testing.T) {
		newCtx, span := sm.StartRenderSpan(ctx, "render-1", 10)
		assert.Equal(t, ctx, newCtx)
		assert.NotNil(t, span)
		assert.False(t, span.IsRecording())
	})

	t.Run("StartCompileSpan returns context unchanged", func(t *testing.T) {
		newCtx, span := sm.StartCompileSpan(ctx, 10)
		assert.Equal(t, ctx, newCtx)
		assert.NotNil(t, span)
		assert.False(t, span.IsRecording())
	})

	t.Run("EndSpanWithError does not panic", func(t *testing.T) {
		_, span := sm.StartRenderSpan(ctx, "render-1", 10)
		assert.NotPanics(t, func() {
			sm.EndSpanWithError(span, nil)
			sm.EndSpanWithError(span, errors.New("test"))
			sm.EndSpanWithError(nil, nil)
		})
	})

	t.Run("AddSpanEvent does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			sm.AddSpanEvent(ctx, "event", attribute.String("k", "v"))
		})
	})
}

func TestNoopImplementsInterfaces(t *testing.T) {
	var _ MetricsRecorder = NoopMetrics{}
	var _ SpanManager = NoopSpanManager{}
}
