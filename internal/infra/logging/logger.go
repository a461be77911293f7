// Package logging provides file-based logging for taskboard.
// Entries go to .taskboard/logs/taskboard.log and, optionally, to a mirror
// writer such as stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/runoshun/taskboard/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes formatted entries to the log file.
// Fields are ordered to minimize memory padding.
type Logger struct {
	clock       domain.Clock
	mirror      io.Writer
	file        *os.File
	dataDir     string
	mu          sync.Mutex
	level       slog.Level
	mirrorLevel slog.Level
}

// New creates a new Logger that writes under the data directory.
// If dataDir is empty, file logging is disabled.
func New(dataDir string, level slog.Level) *Logger {
	return &Logger{
		dataDir: dataDir,
		level:   level,
		clock:   domain.RealClock{},
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return New("", slog.LevelError)
}

// WithMirror copies entries at or above level to w.
func (l *Logger) WithMirror(w io.Writer, level slog.Level) *Logger {
	l.mirror = w
	l.mirrorLevel = level
	return l
}

// WithClock sets the clock used for timestamps.
func (l *Logger) WithClock(c domain.Clock) *Logger {
	l.clock = c
	return l
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureFile opens or returns the log file. Callers hold l.mu.
func (l *Logger) ensureFile() (*os.File, error) {
	if l.file != nil {
		return l.file, nil
	}

	path := domain.LogPath(l.dataDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// formatLog formats a log entry in the specified format.
// Format: [2025-12-30 09:32:51] [INFO] [item-1] [category] message
func formatLog(t time.Time, level slog.Level, itemID int, category, msg string) string {
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		domain.ItemLabel(itemID),
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

func (l *Logger) log(level slog.Level, itemID int, category, msg string) {
	toFile := l.dataDir != "" && level >= l.level
	toMirror := l.mirror != nil && level >= l.mirrorLevel
	if !toFile && !toMirror {
		return
	}

	entry := formatLog(l.clock.Now(), level, itemID, category, msg)

	l.mu.Lock()
	defer l.mu.Unlock()

	if toFile {
		if f, err := l.ensureFile(); err == nil {
			_, _ = io.WriteString(f, entry)
		}
	}
	if toMirror {
		_, _ = io.WriteString(l.mirror, entry)
	}
}

// Info logs an info message.
func (l *Logger) Info(itemID int, category, msg string) {
	l.log(slog.LevelInfo, itemID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(itemID int, category, msg string) {
	l.log(slog.LevelDebug, itemID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(itemID int, category, msg string) {
	l.log(slog.LevelWarn, itemID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(itemID int, category, msg string) {
	l.log(slog.LevelError, itemID, category, msg)
}
