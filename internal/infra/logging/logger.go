// Package logging provides file-based logging for lintmux.
// It outputs logs to both a global log file (.git/lintmux/logs/lintmux.log)
// and tool-specific log files (.git/lintmux/logs/tool-<name>.log).
// The tools' standard error and exit statuses are recorded here so they
// never pollute the combined standard output stream.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/runoshun/lintmux/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger wraps slog levels with file-based output support.
// Fields are ordered to minimize memory padding.
type Logger struct {
	globalFile *os.File
	toolFiles  map[string]*os.File
	lintDir    string
	mu         sync.Mutex
	level      slog.Level
}

// New creates a new Logger that writes to the lintmux log directory.
// If lintDir is empty, logging is disabled (returns a no-op logger).
func New(lintDir string, level slog.Level) *Logger {
	return &Logger{
		lintDir:   lintDir,
		level:     level,
		toolFiles: make(map[string]*os.File),
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureLogsDir creates the logs directory if it doesn't exist.
func (l *Logger) ensureLogsDir() error {
	logsDir := filepath.Join(l.lintDir, "logs")
	return os.MkdirAll(logsDir, 0o750)
}

// ensureGlobalFile opens or returns the global log file.
func (l *Logger) ensureGlobalFile() (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.globalFile != nil {
		return l.globalFile, nil
	}

	if err := l.ensureLogsDir(); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	path := domain.GlobalLogPath(l.lintDir)
	// G302: Log files are append-only and need read access by repository users
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open global log file: %w", err)
	}
	l.globalFile = f
	return f, nil
}

// ensureToolFile opens or returns the tool log file.
func (l *Logger) ensureToolFile(tool string) (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if f, ok := l.toolFiles[tool]; ok {
		return f, nil
	}

	if err := l.ensureLogsDir(); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	path := domain.ToolLogPath(l.lintDir, tool)
	// G302: Log files are append-only and need read access by repository users
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open tool log file: %w", err)
	}
	l.toolFiles[tool] = f
	return f, nil
}

// Close closes all open log files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lastErr error
	if l.globalFile != nil {
		if err := l.globalFile.Close(); err != nil {
			lastErr = err
		}
		l.globalFile = nil
	}
	for name, f := range l.toolFiles {
		if err := f.Close(); err != nil {
			lastErr = err
		}
		delete(l.toolFiles, name)
	}
	return lastErr
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [clippy] [run] message
func formatLog(t time.Time, level slog.Level, tool, category, msg string) string {
	toolStr := tool
	if toolStr == "" {
		toolStr = "global"
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		toolStr,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// log writes a log entry to appropriate files based on tool.
// If tool is empty, logs only to the global log.
// Otherwise, logs to both the global and the tool-specific log.
func (l *Logger) log(level slog.Level, tool, category, msg string) {
	if l.lintDir == "" {
		return // Logging disabled
	}

	if level < l.level {
		return // Skip if below minimum level
	}

	now := time.Now()
	entry := formatLog(now, level, tool, category, msg)

	if gf, err := l.ensureGlobalFile(); err == nil {
		_, _ = io.WriteString(gf, entry)
	}

	if tool != "" {
		if tf, err := l.ensureToolFile(tool); err == nil {
			_, _ = io.WriteString(tf, entry)
		}
	}
}

// Info logs an info message.
func (l *Logger) Info(tool, category, msg string) {
	l.log(slog.LevelInfo, tool, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(tool, category, msg string) {
	l.log(slog.LevelDebug, tool, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(tool, category, msg string) {
	l.log(slog.LevelWarn, tool, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(tool, category, msg string) {
	l.log(slog.LevelError, tool, category, msg)
}
