package logger

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogger swaps the global logger for one writing to a buffer at
// debug level, restoring the original when the test ends.
func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	original := Logger

	Logger = log.New(&buf)
	Logger.SetTimeFormat("")
	Logger.SetLevel(log.DebugLevel)

	t.Cleanup(func() {
		Logger = original
	})
	return &buf
}

func TestConfigureLevelPrecedence(t *testing.T) {
	t.Run("explicit level wins", func(t *testing.T) {
		require.NoError(t, Configure("debug", "", false))
		assert.Equal(t, log.DebugLevel, Logger.GetLevel())
	})

	t.Run("env var fills in when the flag is empty", func(t *testing.T) {
		t.Setenv("INKLINE_LOG_LEVEL", "error")
		require.NoError(t, Configure("", "", false))
		assert.Equal(t, log.ErrorLevel, Logger.GetLevel())
	})

	t.Run("test mode clamps to warn", func(t *testing.T) {
		require.NoError(t, Configure("debug", "", true))
		assert.Equal(t, log.WarnLevel, Logger.GetLevel())
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		require.NoError(t, Configure("loud", "", false))
		assert.Equal(t, log.InfoLevel, Logger.GetLevel())
	})
}

func TestThemeResolutionLogsDetails(t *testing.T) {
	buf := captureLogger(t)

	ThemeResolution("dark", "default", 9)

	out := buf.String()
	assert.Contains(t, out, "Theme resolved")
	assert.Contains(t, out, "theme=dark")
	assert.Contains(t, out, "extends=default")
	assert.Contains(t, out, "elements=9")
}

func TestServiceOperationLogsDetails(t *testing.T) {
	buf := captureLogger(t)

	ServiceOperation("theme", "set-active", "theme", "mono")

	out := buf.String()
	assert.Contains(t, out, "service=theme")
	assert.Contains(t, out, "operation=set-active")
	assert.Contains(t, out, "mono")
}

func TestNewStyledLoggerCarriesPrefix(t *testing.T) {
	component := NewStyledLogger("Theme")
	require.NotNil(t, component)
	assert.Equal(t, "Theme ", component.GetPrefix())
	assert.Equal(t, Logger.GetLevel(), component.GetLevel())
}
