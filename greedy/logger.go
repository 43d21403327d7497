// SPDX-License-Identifier: MIT

package greedy

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with greedy-run-specific context, grounded on
// hupe1980-vecgo's logger.go. The zero value is not usable; construct one
// via NewTextLogger, NewJSONLogger, or NoopLogger.
type Logger struct {
	*slog.Logger
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that writes JSON records to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards everything. This is the default
// for library use so that running a driver without a CLI produces no output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(1000)})
	return &Logger{Logger: slog.New(handler)}
}

// LogStep logs one greedy step at debug level: the element chosen, the
// running objective value, and the Gram entries realized so far. A nil
// *Logger logs nothing.
func (l *Logger) LogStep(step, element int, value float64, computedEntriesL int) {
	if l == nil {
		return
	}
	l.Debug("greedy step",
		"step", step,
		"element", element,
		"value", value,
		"computed_entries_L", computedEntriesL,
	)
}
