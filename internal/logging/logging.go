// Package logging provides the engine's diagnostic output: structured
// slog lines to the host's message surface, gated by the debug flag
// except for errors, which are always surfaced.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger writes human-readable diagnostic lines. Debug output is
// suppressed unless enabled; errors are always written.
type Logger struct {
	level *slog.LevelVar
	sl    *slog.Logger
}

// New returns a Logger writing to w. Debug lines are emitted only when
// debug is true (toggleable later via SetDebug).
func New(w io.Writer, debug bool) *Logger {
	level := &slog.LevelVar{}
	if !debug {
		level.Set(slog.LevelError)
	} else {
		level.Set(slog.LevelDebug)
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{level: level, sl: slog.New(handler)}
}

// NewFile returns a Logger appending to a size-rotated log file at
// path. Used when diagnostics should outlive the host process.
func NewFile(path string, debug bool) *Logger {
	return New(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // MB
		MaxBackups: 2,
	}, debug)
}

// Discard returns a Logger that drops everything. Used in tests.
func Discard() *Logger {
	return New(io.Discard, false)
}

// Default returns a Logger writing to stderr with debug disabled.
func Default() *Logger {
	return New(os.Stderr, false)
}

// SetDebug enables or disables debug output at runtime.
func (l *Logger) SetDebug(on bool) {
	if on {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelError)
	}
}

// DebugEnabled reports whether debug output is currently emitted.
func (l *Logger) DebugEnabled() bool {
	return l.level.Level() <= slog.LevelDebug
}

// Debug writes a debug-gated diagnostic line.
func (l *Logger) Debug(msg string, args ...any) {
	l.sl.Debug(msg, args...)
}

// Error writes a diagnostic line regardless of the debug flag.
func (l *Logger) Error(msg string, args ...any) {
	l.sl.Error(msg, args...)
}
