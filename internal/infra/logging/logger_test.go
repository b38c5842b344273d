package logging

import (
	"log/slog"
	"os"
	"testing"

	"github.com/runoshun/lintmux/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	lintDir := t.TempDir()
	logger := New(lintDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("clippy", "run", "test message")

	// Verify global log
	content, err := os.ReadFile(domain.GlobalLogPath(lintDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[clippy]")
	assert.Contains(t, string(content), "[run]")
	assert.Contains(t, string(content), "test message")

	// Verify tool log
	toolContent, err := os.ReadFile(domain.ToolLogPath(lintDir, "clippy"))
	require.NoError(t, err)
	assert.Contains(t, string(toolContent), "[INFO]")
	assert.Contains(t, string(toolContent), "test message")
}

func TestLogger_GlobalLogOnly(t *testing.T) {
	lintDir := t.TempDir()
	logger := New(lintDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("", "config", "global message")

	content, err := os.ReadFile(domain.GlobalLogPath(lintDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[global]")
	assert.Contains(t, string(content), "global message")
}

func TestLogger_LevelFiltering(t *testing.T) {
	lintDir := t.TempDir()
	logger := New(lintDir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Info("", "run", "filtered out")
	logger.Warn("", "run", "kept")

	content, err := os.ReadFile(domain.GlobalLogPath(lintDir))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "filtered out")
	assert.Contains(t, string(content), "kept")
}

func TestLogger_Disabled(t *testing.T) {
	logger := New("", slog.LevelInfo)
	// Must not panic or create files
	logger.Info("clippy", "run", "ignored")
	require.NoError(t, logger.Close())
}
