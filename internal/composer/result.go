package composer

import (
	"aggregator/pkg/logger"
	"aggregator/pkg/metrics"
	"aggregator/pkg/serrors"
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// errAbsent marks an optional single-record lookup that found nothing.
var errAbsent = errors.New("record absent")

// Result is the outcome of an optional call: either the fetched Value, or
// the declared fallback with Fallback set and Err holding the cause.
type Result[T any] struct {
	Value    T
	Fallback bool
	Err      error
}

// fallback returns a Result carrying the fallback value v for a call that was
// never attempted.
func fallback[T any](v T) Result[T] {
	return Result[T]{Value: v, Fallback: true}
}

// invoke performs one backend call under the per-call timeout, inside its own span.
func invoke[T any](ctx context.Context, c *composer, call string, fn func(context.Context) (T, error)) (T, error) {
	if c.options.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.options.CallTimeout)
		defer cancel()
	}
	ctx, span := c.tracer.Start(ctx, "call "+call)
	defer span.End()

	v, err := fn(ctx)
	if err != nil && !errors.Is(err, errAbsent) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.Bool("absent", errors.Is(err, errAbsent)))

	return v, err
}

// mandatory performs a call whose failure fails the whole view.
func mandatory[T any](ctx context.Context, c *composer, call string, fn func(context.Context) (T, error)) (T, error) {
	v, err := invoke(ctx, c, call, fn)
	if err != nil {
		return v, failure(ctx, call, err)
	}

	return v, nil
}

// optional performs a call whose failure is replaced by fallbackValue.
func optional[T any](ctx context.Context, c *composer, view, call string, fallbackValue T,
	fn func(context.Context) (T, error)) Result[T] {
	v, err := invoke(ctx, c, call, fn)
	if err == nil {
		return Result[T]{Value: v}
	}

	switch {
	case ctx.Err() != nil:
		// the view is being torn down; the caller reports the cancellation
	case errors.Is(err, errAbsent):
		metrics.FallbacksApplied.WithLabelValues(view, call).Inc()
		logger.Debug(ctx, "optional record absent, using placeholder", zap.String("call", call))
	default:
		metrics.FallbacksApplied.WithLabelValues(view, call).Inc()
		logger.Warn(ctx, "optional call failed, using fallback", zap.String("call", call), zap.Error(err))
	}

	return Result[T]{Value: fallbackValue, Fallback: true, Err: err}
}

// present adapts a single-record lookup so that an absent record is reported
// as errAbsent and a found one is dereferenced.
func present[T any](fn func(context.Context) (*T, error)) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		var zero T
		v, err := fn(ctx)
		if err != nil {
			return zero, err
		}
		if v == nil {
			return zero, errAbsent
		}

		return *v, nil
	}
}

// failure classifies the error of a mandatory call.
func failure(ctx context.Context, call string, err error) error {
	if ctx.Err() != nil {
		return canceled(ctx)
	}

	return serrors.Wrap(serrors.ErrUpstream, err, "could not fetch %s", call)
}

func canceled(ctx context.Context) error {
	return serrors.Wrap(serrors.ErrCanceled, ctx.Err(), "composition canceled")
}
