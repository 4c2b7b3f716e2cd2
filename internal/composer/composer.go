// Package composer builds composite job-portal views out of concurrent calls
// to the application, catalog and review services.
//
// Every view resolves its mandatory root record first, then issues the calls
// that depend on it concurrently, waits for all of them and assembles the
// result. Optional calls that fail are replaced by a fallback value and only
// show up in logs and metrics.
package composer

import (
	"aggregator/pkg/backend"
	"aggregator/pkg/logger"
	"aggregator/pkg/metrics"
	"aggregator/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "aggregator/internal/composer"

// View names, used in logs, metric labels and span names.
const (
	ViewCandidateProfile  = "candidateProfile"
	ViewJobDetail         = "jobDetail"
	ViewApplicationDetail = "applicationDetail"
	ViewDashboard         = "dashboard"
	ViewCompanyOverview   = "companyOverview"
	ViewJobSearch         = "jobSearch"
)

// State is the terminal state of one composition.
type State string

const (
	StateCompleted State = "completed"
	StateNotFound  State = "not_found"
	StateFailed    State = "failed"
	StateCanceled  State = "canceled"
)

// StateOf maps the error returned by a Composer method to the terminal state
// of the composition.
func StateOf(err error) State {
	switch {
	case err == nil:
		return StateCompleted
	case errors.Is(err, serrors.ErrNotFound):
		return StateNotFound
	case errors.Is(err, serrors.ErrCanceled):
		return StateCanceled
	default:
		return StateFailed
	}
}

// Deps are the backend services views are composed from.
type Deps struct {
	Applications backend.ApplicationService
	Catalog      backend.CatalogService
	Reviews      backend.ReviewService
}

// composer is the concrete implementation of the Composer interface.
type composer struct {
	options Options

	apps    backend.ApplicationService
	catalog backend.CatalogService
	reviews backend.ReviewService

	tracer   trace.Tracer
	duration metric.Float64Histogram
}

// New creates a Composer calling the given backend services.
func New(deps Deps, options Options) (Composer, error) {
	if deps.Applications == nil || deps.Catalog == nil || deps.Reviews == nil {
		return nil, errors.New("all backend services are required")
	}
	options = options.withDefaults()
	if options.FanOutPolicy != FanOutStrict && options.FanOutPolicy != FanOutLenient {
		return nil, fmt.Errorf("unknown fan-out policy %q", options.FanOutPolicy)
	}

	mp := options.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	tp := options.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	duration, err := mp.Meter(instrumentationName).Float64Histogram(
		"aggregator.composition.duration",
		metric.WithDescription("Time taken to compose a view."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &composer{
		options:  options,
		apps:     deps.Applications,
		catalog:  deps.Catalog,
		reviews:  deps.Reviews,
		tracer:   tp.Tracer(instrumentationName),
		duration: duration,
	}, nil
}

// begin starts the composition of view. The returned function must be called
// with the composition's final error.
func (c *composer) begin(ctx context.Context, view string, fields ...zap.Field) (context.Context, func(error)) {
	start := time.Now()
	ctx = logger.WithFields(ctx, append(fields, zap.String("view", view))...)
	ctx, span := c.tracer.Start(ctx, "compose "+view, trace.WithAttributes(attribute.String("view", view)))

	return ctx, func(err error) {
		state := StateOf(err)
		elapsed := time.Since(start)

		metrics.Compositions.WithLabelValues(view, string(state)).Inc()
		c.duration.Record(context.WithoutCancel(ctx), elapsed.Seconds(), metric.WithAttributes(
			attribute.String("view", view),
			attribute.String("state", string(state)),
		))

		span.SetAttributes(attribute.String("state", string(state)))
		if state == StateFailed {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		switch state {
		case StateFailed:
			logger.Error(ctx, "view composition failed", zap.Duration("elapsed", elapsed), zap.Error(err))
		case StateCanceled, StateNotFound:
			logger.Info(ctx, "view composition ended", zap.String("state", string(state)), zap.Error(err))
		case StateCompleted:
			logger.Debug(ctx, "view composed", zap.Duration("elapsed", elapsed))
		}
	}
}
