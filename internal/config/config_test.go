package config_test

import (
	"aggregator/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: development\n"))
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, "strict", cfg.Composer.FanOutPolicy)
	require.Equal(t, 8, cfg.Composer.FanOutLimit)
	require.Equal(t, 10, cfg.Composer.RecentLimit)
	require.Equal(t, 10, cfg.Composer.UpcomingLimit)
	require.Equal(t, "http://localhost:5001", cfg.Services.Application.BaseURL)
	require.Equal(t, "http://localhost:5002", cfg.Services.Catalog.BaseURL)
	require.Equal(t, "http://localhost:5003", cfg.Services.Review.BaseURL)
	require.Equal(t, 5*time.Second, cfg.Services.Review.Timeout)
	require.Equal(t, 32, cfg.Services.Catalog.MaxIdleConns)
	require.Empty(t, cfg.Auth.PublicKey)
	require.InDelta(t, 1.0, cfg.Tracing.SampleRatio, 1e-9)
}

func TestLoad_file(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
environment: production
logLevel: warn
services:
  catalog:
    baseUrl: http://catalog:8080
    timeout: 2s
composer:
  fanOutPolicy: lenient
  fanOutLimit: 3
  callTimeout: 750ms
tracing:
  sampleRatio: 0.25
`))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "http://catalog:8080", cfg.Services.Catalog.BaseURL)
	require.Equal(t, 2*time.Second, cfg.Services.Catalog.Timeout)
	require.Equal(t, "lenient", cfg.Composer.FanOutPolicy)
	require.Equal(t, 3, cfg.Composer.FanOutLimit)
	require.Equal(t, 750*time.Millisecond, cfg.Composer.CallTimeout)
	require.InDelta(t, 0.25, cfg.Tracing.SampleRatio, 1e-9)
}

func TestLoad_invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown fan-out policy", body: "composer:\n  fanOutPolicy: eager\n"},
		{name: "unknown environment", body: "environment: staging\n"},
		{name: "bad log level", body: "logLevel: chatty\n"},
		{name: "sample ratio above one", body: "tracing:\n  sampleRatio: 1.5\n"},
		{name: "bad base url", body: "services:\n  review:\n    baseUrl: not a url\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestLoad_missingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
