package par

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with colpar-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

var noopLogger = &Logger{Logger: slog.New(slog.DiscardHandler)}

// NoopLogger returns a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return noopLogger
}

// WithWorkers adds a workers field to the logger.
func (l *Logger) WithWorkers(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", n),
	}
}

// WithLen adds a len field to the logger.
func (l *Logger) WithLen(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("len", n),
	}
}

// LogBridge logs the start of a bridge.
func (l *Logger) LogBridge(n int, s LengthSplitter) {
	l.Debug("bridge started",
		"len", n,
		"splits", s.splits,
		"min_len", s.min,
		"workers", s.workers,
	)
}

// LogPanic logs a panic raised by a branch running on another goroutine,
// before it is re-raised on the joining goroutine.
func (l *Logger) LogPanic(value any, stack []byte) {
	l.Error("join task panicked",
		"panic", value,
		"stack", string(stack),
	)
}

// LogRecovered logs an invariant violation converted into an error.
func (l *Logger) LogRecovered(op string, err error) {
	l.Warn(op+" failed",
		"error", err,
	)
}
