package composer

import (
	"aggregator/internal/config"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// FanOutPolicy decides what a failing per-item call of a fan-out does to the
// view being composed.
type FanOutPolicy string

const (
	// FanOutStrict cancels the sibling calls and fails the view.
	FanOutStrict FanOutPolicy = "strict"
	// FanOutLenient replaces the failed item's sublist with an empty one.
	FanOutLenient FanOutPolicy = "lenient"
)

const (
	defaultRecentLimit   = 10
	defaultUpcomingLimit = 10
)

// Options configure how views are composed.
type Options struct {
	// FanOutPolicy applies to per-item calls such as the interviews of every
	// application of a candidate.
	FanOutPolicy FanOutPolicy
	// FanOutLimit bounds concurrent per-item calls. Zero or less means unbounded.
	FanOutLimit int
	// CallTimeout bounds every single backend call. Zero disables it.
	CallTimeout time.Duration
	// RecentLimit is the number of applications listed on the dashboard.
	RecentLimit int
	// UpcomingLimit is the number of interviews listed on the dashboard.
	UpcomingLimit int

	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
	// MeterProvider records composition durations. Defaults to the global provider.
	MeterProvider metric.MeterProvider
	// TracerProvider creates a span per composition and per backend call.
	// Defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		FanOutPolicy:  FanOutPolicy(cfg.Composer.FanOutPolicy),
		FanOutLimit:   cfg.Composer.FanOutLimit,
		CallTimeout:   cfg.Composer.CallTimeout,
		RecentLimit:   cfg.Composer.RecentLimit,
		UpcomingLimit: cfg.Composer.UpcomingLimit,
	}
}

func (o Options) withDefaults() Options {
	if o.FanOutPolicy == "" {
		o.FanOutPolicy = FanOutStrict
	}
	// errgroup treats a negative limit as unbounded; zero would block forever.
	if o.FanOutLimit <= 0 {
		o.FanOutLimit = -1
	}
	if o.RecentLimit <= 0 {
		o.RecentLimit = defaultRecentLimit
	}
	if o.UpcomingLimit <= 0 {
		o.UpcomingLimit = defaultUpcomingLimit
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}

	return o
}
