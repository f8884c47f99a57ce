package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesToFileAndConsole(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		_ = Close()
	})

	dir := t.TempDir()
	var console bytes.Buffer
	require.NoError(t, Init(Options{
		Dir:           dir,
		Level:         "debug",
		Console:       true,
		ConsoleWriter: &console,
	}))

	slog.Warn("failed to read tasks", "key", "@ToDoApp:tasks")
	slog.Debug("task created", "id", "abc")

	data, err := os.ReadFile(filepath.Join(dir, "todo.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "failed to read tasks")
	assert.Contains(t, string(data), "task created")
	assert.Contains(t, console.String(), "failed to read tasks")
	assert.Contains(t, console.String(), "@ToDoApp:tasks")
}

func TestInit_LevelFiltersFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		_ = Close()
	})

	dir := t.TempDir()
	require.NoError(t, Init(Options{Dir: dir, Level: "warn"}))

	slog.Info("quiet")
	slog.Error("loud")

	data, err := os.ReadFile(filepath.Join(dir, "todo.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "loud")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, charmlog.DebugLevel, ParseLogLevel("DEBUG"))
	assert.Equal(t, charmlog.WarnLevel, ParseLogLevel("warning"))
	assert.Equal(t, charmlog.ErrorLevel, ParseLogLevel("error"))
	assert.Equal(t, charmlog.InfoLevel, ParseLogLevel("nonsense"))
	assert.Equal(t, slog.LevelWarn, slog.Level(ParseLogLevel("warn")))
}

func TestParseLogFormatter(t *testing.T) {
	assert.Equal(t, charmlog.JSONFormatter, ParseLogFormatter("json"))
	assert.Equal(t, charmlog.LogfmtFormatter, ParseLogFormatter("logfmt"))
	assert.Equal(t, charmlog.TextFormatter, ParseLogFormatter(""))
}

func TestFanoutHandler_RespectsEachLevel(t *testing.T) {
	var debugBuf, errorBuf bytes.Buffer
	h := NewFanoutHandler(
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errorBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(h).With("component", "test")

	logger.Info("info message")
	logger.Error("error message")

	assert.Contains(t, debugBuf.String(), "info message")
	assert.Contains(t, debugBuf.String(), "component=test")
	assert.NotContains(t, errorBuf.String(), "info message")
	assert.Contains(t, errorBuf.String(), "error message")
}
