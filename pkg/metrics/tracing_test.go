package metrics_test

import (
	"aggregator/pkg/metrics"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewTracerProvider_LogsSpans(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tp := metrics.NewTracerProvider(zap.New(core), 1)
	ctx := context.Background()

	tracer := tp.Tracer("test")
	ctx, parent := tracer.Start(ctx, "jobDetail")
	_, child := tracer.Start(ctx, "catalog GET")
	child.SetAttributes(attribute.String("backend.service", "catalog"))
	child.SetStatus(codes.Error, "backend call failed")
	child.End()
	parent.End()

	require.NoError(t, tp.ForceFlush(ctx))

	entries := logs.FilterMessage("span finished").All()
	require.Len(t, entries, 2)

	childFields := entries[0].ContextMap()
	parentFields := entries[1].ContextMap()
	require.Equal(t, "catalog GET", childFields["span"])
	require.Equal(t, "catalog", childFields["backend.service"])
	require.Equal(t, "Error", childFields["status"])
	require.Equal(t, parentFields["span_id"], childFields["parent_span_id"])
	require.Equal(t, parentFields["trace_id"], childFields["trace_id"])
	require.NotContains(t, parentFields, "parent_span_id")

	require.NoError(t, tp.Shutdown(ctx))
}

func TestNewTracerProvider_ZeroRatioSamplesNothing(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tp := metrics.NewTracerProvider(zap.New(core), 0)
	ctx := context.Background()

	_, span := tp.Tracer("test").Start(ctx, "dashboard")
	require.False(t, span.SpanContext().IsSampled())
	span.End()

	require.NoError(t, tp.ForceFlush(ctx))
	require.Zero(t, logs.Len())
	require.NoError(t, tp.Shutdown(ctx))
}
