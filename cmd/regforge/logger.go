package main

import (
	"io"
	"log/slog"
	"os"
)

// Logger provides verbose progress output for the command.
type Logger struct {
	enabled bool
	log     *slog.Logger
}

// NewLogger creates a new logger instance writing to stderr.
func NewLogger(enabled bool) *Logger {
	l := &Logger{enabled: enabled}
	l.SetOutput(os.Stderr)
	return l
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})
	l.log = slog.New(h).With("cmd", "regforge")
}

// Log prints a message with key/value pairs if verbose mode is enabled.
func (l *Logger) Log(msg string, args ...any) {
	if l.enabled {
		l.log.Info(msg, args...)
	}
}

// Warn prints a message regardless of verbose mode.
func (l *Logger) Warn(msg string, args ...any) {
	l.log.Warn(msg, args...)
}

// Section prints a section marker if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l.enabled {
		l.log.Info("=== " + name + " ===")
	}
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}
