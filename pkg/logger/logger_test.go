package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	appConfig "github.com/festy23/sales_dashboard/internal/config"
)

func TestNew(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_OUTPUT", "stdout")

	logger, err := New()
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestNewWithConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     appConfig.LoggerConfig
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{
			name:    "production json info",
			cfg:     appConfig.LoggerConfig{Level: "info", Format: "json", Output: "stdout"},
			enabled: zapcore.InfoLevel,
			muted:   zapcore.DebugLevel,
		},
		{
			name:    "development console debug",
			cfg:     appConfig.LoggerConfig{Level: "debug", Format: "console", Output: "stderr"},
			enabled: zapcore.DebugLevel,
			muted:   zapcore.DebugLevel - 1,
		},
		{
			name:    "warn level",
			cfg:     appConfig.LoggerConfig{Level: "warn", Format: "json", Output: "stdout"},
			enabled: zapcore.WarnLevel,
			muted:   zapcore.InfoLevel,
		},
		{
			name:    "invalid level falls back to info",
			cfg:     appConfig.LoggerConfig{Level: "verbose", Format: "json", Output: "stdout"},
			enabled: zapcore.InfoLevel,
			muted:   zapcore.DebugLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewWithConfig(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, logger)

			core := logger.Desugar().Core()
			assert.True(t, core.Enabled(tt.enabled))
			assert.False(t, core.Enabled(tt.muted))
		})
	}
}

func TestNewWithConfig_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.log")

	logger, err := NewWithConfig(appConfig.LoggerConfig{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Infow("sale recorded", "sale_id", "s-1", "amount", 1500)
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)
	assert.True(t, strings.Contains(line, `"msg":"sale recorded"`), line)
	assert.Contains(t, line, `"sale_id":"s-1"`)
	assert.Contains(t, line, `"service":"sales-dashboard"`)
}

func TestNewWithConfig_EmptyOutputDefaultsToStdout(t *testing.T) {
	logger, err := NewWithConfig(appConfig.LoggerConfig{Level: "error", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
