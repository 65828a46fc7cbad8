package euclid

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with euclid-specific field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, a text handler writing to stderr at info level is used.
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

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithOp adds an operation name field.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithDimension adds a dimension field.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogOp logs the outcome of one operation on the pair at index. Name the
// operation with WithOp.
func (l *Logger) LogOp(ctx context.Context, index int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "operation failed",
			"index", index,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "operation completed",
			"index", index,
		)
	}
}

// LogBatch logs the outcome of a batch of operations.
func (l *Logger) LogBatch(ctx context.Context, count, completed int, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch aborted",
			"total", count,
			"completed", completed,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch completed",
			"count", count,
		)
	}
}
