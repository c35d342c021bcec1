package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLoggerConfig(t *testing.T) {
	tests := []struct {
		name       string
		production bool
		level      string
		want       zapcore.Level
		encoding   string
	}{
		{"production default", true, "", zapcore.InfoLevel, "json"},
		{"development default", false, "", zapcore.DebugLevel, "console"},
		{"override", true, "warn", zapcore.WarnLevel, "json"},
		{"bad level keeps default", false, "loud", zapcore.DebugLevel, "console"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loggerConfig(tt.production, tt.level)
			assert.Equal(t, tt.want, cfg.Level.Level())
			assert.Equal(t, tt.encoding, cfg.Encoding)
		})
	}
}

func TestGetLoggerInstallsGlobal(t *testing.T) {
	logger := GetLogger()
	assert.NotNil(t, logger)
	assert.Same(t, logger, GetLogger())
	assert.Same(t, logger, zap.L())
}
