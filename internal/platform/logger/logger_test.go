// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLevel slog.Level
		wantOK    bool
	}{
		{"debug", "debug", slog.LevelDebug, true},
		{"info", "info", slog.LevelInfo, true},
		{"warn", "warn", slog.LevelWarn, true},
		{"error", "error", slog.LevelError, true},
		{"mixed case", "DeBuG", slog.LevelDebug, true},
		{"unknown", "verbose", slog.LevelInfo, false},
		{"empty", "", slog.LevelInfo, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level, ok := logger.ParseLevel(tc.input)
			assert.Equal(t, tc.wantLevel, level)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestNewWritesJSONAtConfiguredLevel(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	l := logger.New(buf, "warn")

	l.Info("should be filtered")
	l.Warn("should appear", "task_id", "3")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "Only the warn entry should be written")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "should appear", entry["msg"])
	assert.Equal(t, "3", entry["task_id"])
}

func TestNewWithInvalidLevelWarnsAndDefaultsToInfo(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	l := logger.New(buf, "chatty")

	entry, ok := buf.FindEntry("invalid log level configured, using default level")
	require.True(t, ok, "Expected a warning about the invalid level")
	assert.Equal(t, "chatty", entry["configured_level"])

	buf.Reset()
	l.Debug("hidden")
	l.Info("visible")
	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "visible", entries[0]["msg"])
}

func TestSetupInstallsDefaultLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	l, err := logger.Setup(config.ServerConfig{Port: 3000, LogLevel: "debug"})
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Same(t, l, slog.Default())
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))
}

func TestContextLogger(t *testing.T) {
	_, fallback := logger.SetupTestLogger(t)
	scoped := fallback.With("trace_id", "abc")

	t.Run("empty context returns fallback", func(t *testing.T) {
		assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	})

	t.Run("FromContext falls back to slog default", func(t *testing.T) {
		assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
	})

	t.Run("stored logger is returned", func(t *testing.T) {
		ctx := logger.WithContext(context.Background(), scoped)
		assert.Same(t, scoped, logger.FromContextOrDefault(ctx, fallback))
		assert.Same(t, scoped, logger.FromContext(ctx))
	})

	t.Run("nil logger in context is ignored", func(t *testing.T) {
		ctx := logger.WithContext(context.Background(), nil)
		assert.Same(t, fallback, logger.FromContextOrDefault(ctx, fallback))
	})
}
