package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		expected string
	}{
		{"debug level", LevelDebug, "DEBUG"},
		{"info level", LevelInfo, "INFO"},
		{"error level", LevelError, "ERROR"},
		{"unknown level", Level(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestNewLogger_WithNilConfig(t *testing.T) {
	logger, err := NewLogger(nil)

	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.Equal(t, LevelInfo, logger.level)
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(&Config{Level: LevelInfo, Output: &buf})
	require.NoError(t, err)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "error message")
	assert.Contains(t, output, "[INFO]")
	assert.Contains(t, output, "[ERROR]")
}

func TestLogger_Formatting(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(&Config{Level: LevelDebug, Output: &buf})
	require.NoError(t, err)

	logger.Info("edition=%s auto=%t", "proedu", true)

	assert.Contains(t, buf.String(), "edition=proedu auto=true")
}

func TestNewFileLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "winedition.log")

	logger, err := NewFileLogger(LevelDebug, logFile)
	require.NoError(t, err)

	logger.Debug("written to file")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "written to file"))
}

func TestNewDiscardLogger(t *testing.T) {
	logger := NewDiscardLogger()

	// Must not panic and must not write anywhere visible.
	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Error("dropped")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(&Config{Level: LevelError, Output: &buf})
	require.NoError(t, err)

	logger.Info("filtered")
	assert.Empty(t, buf.String())

	logger.SetLevel(LevelInfo)
	assert.Equal(t, LevelInfo, logger.GetLevel())

	logger.Info("visible")
	assert.Contains(t, buf.String(), "visible")
}
