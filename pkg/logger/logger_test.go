package logger_test

import (
	"context"
	"spacescope/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantDebug   bool
		wantErr     bool
	}{
		{name: "development defaults to debug", environment: logger.DevelopmentEnvironment, wantDebug: true},
		{name: "production defaults to info", environment: logger.ProductionEnvironment},
		{name: "level override", environment: logger.ProductionEnvironment, level: "debug", wantDebug: true},
		{name: "unknown environment is development", environment: "staging", wantDebug: true},
		{name: "invalid level", environment: logger.DevelopmentEnvironment, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.Build(tt.environment, tt.level)
			if tt.wantErr {
				require.ErrorContains(t, err, "could not parse log level")

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantDebug, l.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestSetup_KeepsPreviousOnError(t *testing.T) {
	require.NoError(t, logger.Setup(logger.ProductionEnvironment, "warn"))
	before := logger.Get(context.Background())

	require.Error(t, logger.Setup(logger.DevelopmentEnvironment, "nope"))
	require.Same(t, before, logger.Get(context.Background()))
	require.False(t, logger.IsDebug(context.Background()))
}

func TestContextLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("feed", "iss"))

	require.True(t, logger.IsDebug(ctx))

	logger.Debug(ctx, "fetching")
	logger.Info(ctx, "fetched", zap.Int("status", 200))
	logger.Warn(ctx, "degraded")
	logger.Error(ctx, "failed")

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	for _, e := range entries {
		require.Equal(t, "iss", e.ContextMap()["feed"])
	}
	require.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel},
		[]zapcore.Level{entries[0].Level, entries[1].Level, entries[2].Level, entries[3].Level})
	require.EqualValues(t, 200, entries[1].ContextMap()["status"])
}

func TestGet_FallsBackWithoutContextLogger(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))
	require.NotNil(t, logger.Get(context.Background()))
	require.NotPanics(t, func() { logger.Info(context.Background(), "no context logger") })
}
