// Package metrics holds the Prometheus collectors shared by the backend
// clients and the composer, plus the OpenTelemetry meter provider that
// exports through the same registry.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const namespace = "aggregator"

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
	OutcomeCanceled = "canceled"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// UpstreamCalls counts backend calls by service and outcome.
	UpstreamCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "calls_total",
			Help:      "Total number of calls made to backend services.",
		},
		[]string{"service", "outcome"},
	)

	// UpstreamLatency observes backend call durations.
	UpstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "call_duration_seconds",
			Help:      "Duration of calls made to backend services.",
			Buckets:   DefaultBuckets,
		},
		[]string{"service"},
	)

	// Compositions counts composite views built, by view and outcome.
	Compositions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "composer",
			Name:      "compositions_total",
			Help:      "Total number of composite views built.",
		},
		[]string{"view", "outcome"},
	)

	// FallbacksApplied counts optional calls that were replaced by a placeholder.
	FallbacksApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "composer",
			Name:      "fallbacks_total",
			Help:      "Total number of optional calls substituted with a placeholder value.",
		},
		[]string{"view", "call"},
	)
)

func init() {
	prometheus.MustRegister(
		UpstreamCalls,
		UpstreamLatency,
		Compositions,
		FallbacksApplied,
	)
}

// NewMeterProvider returns an OpenTelemetry meter provider whose instruments
// are exported through the default Prometheus registerer.
func NewMeterProvider() (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}
