package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureConsole(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev, prevLogger := console, logger
	console = &buf
	t.Cleanup(func() { console, logger = prev, prevLogger })
	return &buf
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}

func TestInitialize_ConsoleLevelFilter(t *testing.T) {
	buf := captureConsole(t)
	cfg := DefaultConfig()
	require.NoError(t, Initialize(cfg))

	Info("hidden")
	Warningf("loop of %d tiles", 16)
	Errorf("bad row %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "loop of 16 tiles")
	assert.Contains(t, out, "bad row 2")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestInitialize_JSONConsole(t *testing.T) {
	buf := captureConsole(t)
	cfg := DefaultConfig()
	cfg.Level = "DEBUG"
	cfg.ConsoleFormat = "json"
	require.NoError(t, Initialize(cfg))

	Debug("parsed grid", "rows", 5, "columns", 7)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "parsed grid", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.EqualValues(t, 5, rec["rows"])
}

func TestInitialize_UnknownFormat(t *testing.T) {
	captureConsole(t)
	cfg := DefaultConfig()
	cfg.ConsoleFormat = "xml"
	assert.Error(t, Initialize(cfg))
}

func TestInitialize_FileAndConsole(t *testing.T) {
	buf := captureConsole(t)
	path := filepath.Join(t.TempDir(), "logs", "pipeloop.log")

	cfg := DefaultConfig()
	cfg.Level = "INFO"
	cfg.FileEnabled = true
	cfg.FilePath = path
	require.NoError(t, Initialize(cfg))
	_, multi := logger.Handler().(*multiHandler)
	assert.True(t, multi)

	Infof("solved %s", "input.txt")

	assert.Contains(t, buf.String(), "solved input.txt")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "solved input.txt")
}

func TestInitialize_FileWithoutPath(t *testing.T) {
	captureConsole(t)
	cfg := DefaultConfig()
	cfg.FileEnabled = true
	cfg.FilePath = ""
	assert.Error(t, Initialize(cfg))
}

func TestInitialize_NoHandlers(t *testing.T) {
	buf := captureConsole(t)
	cfg := DefaultConfig()
	cfg.ConsoleEnabled = false
	require.NoError(t, Initialize(cfg))

	Error("dropped")
	assert.Empty(t, buf.String())
}

func TestMultiHandler_EnabledIsUnion(t *testing.T) {
	var a, b bytes.Buffer
	h := newMultiHandler(
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	ctx := context.Background()
	assert.True(t, h.Enabled(ctx, slog.LevelDebug))

	l := slog.New(h).With("component", "store").WithGroup("sql")
	l.Info("migrated", "tables", 1)

	assert.Empty(t, a.String())
	assert.Contains(t, b.String(), "component=store")
	assert.Contains(t, b.String(), "sql.tables=1")
}
