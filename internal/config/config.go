// Package config loads the gateway configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Service holds the connection settings of one backend service.
type Service struct {
	// BaseURL is the scheme and host the service is reachable at.
	BaseURL string `env:"BASE_URL" validate:"required,url" yaml:"baseUrl"`
	// Timeout bounds a single call to the service.
	Timeout time.Duration `env:"TIMEOUT" env-default:"5s" validate:"gte=0" yaml:"timeout"`
	// MaxIdleConns is the size of the keep-alive pool kept for the service.
	MaxIdleConns int `env:"MAX_IDLE_CONNS" env-default:"32" validate:"gte=0" yaml:"maxIdleConns"`
}

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, backend services,
// composition behavior and graceful shutdown.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" validate:"oneof=development production" yaml:"environment"` //nolint: lll
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" validate:"required" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for composing a single view
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" validate:"gt=0" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" validate:"startswith=/" yaml:"metricsPath"`
	} `yaml:"http"`

	// Auth enables bearer token authentication on the aggregate endpoints when
	// PublicKey is set.
	Auth struct {
		// PublicKey is the PEM encoded RSA key used to verify tokens.
		PublicKey string `env:"AUTH_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA key used by the jwt command to mint tokens.
		PrivateKey string `env:"AUTH_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"auth"`

	// RateLimit throttles inbound requests. A zero RPS disables it.
	RateLimit struct {
		RPS   float64 `env:"RATE_LIMIT_RPS" env-default:"0" validate:"gte=0" yaml:"rps"`
		Burst int     `env:"RATE_LIMIT_BURST" env-default:"20" validate:"gte=0" yaml:"burst"`
	} `yaml:"rateLimit"`

	// Tracing configures the spans recorded around compositions and backend calls.
	Tracing struct {
		// SampleRatio is the fraction of requests traced. Zero disables tracing.
		SampleRatio float64 `env:"TRACING_SAMPLE_RATIO" env-default:"1" validate:"gte=0,lte=1" yaml:"sampleRatio"`
	} `yaml:"tracing"`

	// Services lists the backend services views are composed from.
	Services struct {
		Application Service `env-prefix:"APPLICATION_SERVICE_" yaml:"application"`
		Catalog     Service `env-prefix:"CATALOG_SERVICE_" yaml:"catalog"`
		Review      Service `env-prefix:"REVIEW_SERVICE_" yaml:"review"`
	} `yaml:"services"`

	// Composer tunes how views are composed.
	Composer struct {
		// FanOutPolicy decides what a failing per-item call does to the whole view.
		FanOutPolicy string `env:"COMPOSER_FAN_OUT_POLICY" env-default:"strict" validate:"oneof=strict lenient" yaml:"fanOutPolicy"` //nolint: lll
		// FanOutLimit bounds the number of concurrent per-item calls of one view.
		FanOutLimit int `env:"COMPOSER_FAN_OUT_LIMIT" env-default:"8" validate:"gte=0" yaml:"fanOutLimit"`
		// CallTimeout bounds every backend call made while composing. Zero disables it.
		CallTimeout time.Duration `env:"COMPOSER_CALL_TIMEOUT" env-default:"0s" validate:"gte=0" yaml:"callTimeout"`
		// RecentLimit is the number of applications shown on the dashboard.
		RecentLimit int `env:"COMPOSER_RECENT_LIMIT" env-default:"10" validate:"gt=0" yaml:"recentLimit"`
		// UpcomingLimit is the number of interviews shown on the dashboard.
		UpcomingLimit int `env:"COMPOSER_UPCOMING_LIMIT" env-default:"10" validate:"gt=0" yaml:"upcomingLimit"`
	} `yaml:"composer"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// applyServiceDefaults fills in the base URL of every service left unset.
func (c *Config) applyServiceDefaults() {
	defaults := []struct {
		svc     *Service
		baseURL string
	}{
		{&c.Services.Application, "http://localhost:5001"},
		{&c.Services.Catalog, "http://localhost:5002"},
		{&c.Services.Review, "http://localhost:5003"},
	}
	for _, d := range defaults {
		if d.svc.BaseURL == "" {
			d.svc.BaseURL = d.baseURL
		}
	}
}

// Validate checks the configuration for values the gateway cannot run with.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Load receives the path for yaml config file and returns a filled, validated
// Config struct. An empty path reads the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	cfg.applyServiceDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
