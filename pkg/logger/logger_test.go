package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		enabled     zapcore.Level
		disabled    zapcore.Level
	}{
		{"Production default", "production", "", zapcore.InfoLevel, zapcore.DebugLevel},
		{"Development default", "development", "", zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"Override", "development", "warn", zapcore.WarnLevel, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.environment, tt.level)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.disabled))
		})
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	_, err := NewLogger("development", "loud")
	assert.Error(t, err)
}
