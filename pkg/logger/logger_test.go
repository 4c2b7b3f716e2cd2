package logger_test

import (
	"aggregator/pkg/logger"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantDebug   bool
	}{
		{
			name:        "development defaults to debug",
			environment: logger.DevelopmentEnvironment,
			wantDebug:   true,
		},
		{
			name:        "production defaults to info",
			environment: logger.ProductionEnvironment,
			wantDebug:   false,
		},
		{
			name:        "explicit level overrides environment default",
			environment: logger.DevelopmentEnvironment,
			level:       "warn",
			wantDebug:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, logger.Setup(tt.environment, tt.level))

			ctx := context.Background()
			require.NotNil(t, logger.Get(ctx))
			require.Equal(t, tt.wantDebug, logger.IsDebug(ctx))
		})
	}
}

func TestSetup_InvalidLevel(t *testing.T) {
	require.Error(t, logger.Setup(logger.DevelopmentEnvironment, "loud"))
}

func TestSetLevel(t *testing.T) {
	require.NoError(t, logger.Setup(logger.ProductionEnvironment))
	ctx := context.Background()
	require.False(t, logger.IsDebug(ctx))

	require.NoError(t, logger.SetLevel("debug"))
	require.True(t, logger.IsDebug(ctx))
}

func TestWithLogger(t *testing.T) {
	ctx := context.Background()
	customLogger, _ := zap.NewDevelopment()

	ctxWithLogger := logger.WithLogger(ctx, customLogger)
	require.Equal(t, customLogger, logger.Get(ctxWithLogger), "logger in context should match the one we added")
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("correlationId", "abc-123"), zap.Int("jobId", 7))
	logger.Warn(ctx, "company fetch failed")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	require.Equal(t, "abc-123", fields["correlationId"])
	require.EqualValues(t, 7, fields["jobId"])
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message", zap.String("key", "value"))
	logger.Info(ctx, "info message", zap.String("key", "value"))
	logger.Warn(ctx, "warn message", zap.String("key", "value"))
	logger.Error(ctx, "error message", zap.String("key", "value"))

	require.Equal(t, 4, logs.Len())
	require.Equal(t, 1, logs.FilterMessage("warn message").Len())
}
