package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelDebug, Component: ComponentStore, Output: &buf})

	logger.Info("snapshot saved", FieldCount, 3)

	out := buf.String()
	assert.Contains(t, out, "component=store")
	assert.Contains(t, out, "snapshot saved")
	assert.Contains(t, out, "count=3")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Component: ComponentApp, Output: &buf})

	tagged := logger.WithComponent(ComponentTracker)
	assert.Equal(t, ComponentTracker, tagged.Component())
	assert.Equal(t, ComponentApp, logger.Component(), "original is unchanged")

	tagged.Warn("mutation rejected")
	assert.Contains(t, buf.String(), "component=tracker")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Component: ComponentCLI, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Error("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""), "unknown strings default to info")
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
