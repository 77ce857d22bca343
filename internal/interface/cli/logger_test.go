package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogLevelWarn, &buf)

	logger.Debug("debug %d", 1)
	logger.Info("info %d", 2)
	logger.Warn("warn %d", 3)
	logger.Error("error %d", 4)

	assert.Equal(t, "WARN: warn 3\nERROR: error 4\n", buf.String())
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogLevelError, &buf)

	logger.Info("hidden")
	logger.SetLevel(LogLevelDebug)
	logger.Debug("shown")

	assert.Equal(t, LogLevelDebug, logger.GetLevel())
	assert.Equal(t, "DEBUG: shown\n", buf.String())
}

func TestLogLevelFromString(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LogLevelDebug,
		"INFO":    LogLevelInfo,
		" warn ":  LogLevelWarn,
		"warning": LogLevelWarn,
		"error":   LogLevelError,
		"":        LogLevelWarn,
		"verbose": LogLevelWarn,
	}
	for input, want := range tests {
		assert.Equal(t, want, LogLevelFromString(input), "input %q", input)
	}
}
