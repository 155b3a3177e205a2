package uuidudf

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with uuidudf-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// LogReturnField logs a planning-time return field deduction.
func (l *Logger) LogReturnField(ctx context.Context, function, argType string, err error) {
	if err != nil {
		l.WarnContext(ctx, "return field rejected",
			"function", function,
			"arg_type", argType,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "return field resolved",
			"function", function,
			"arg_type", argType,
		)
	}
}

// LogInvoke logs a single invocation.
func (l *Logger) LogInvoke(ctx context.Context, function string, kind DatumKind, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "invoke failed",
			"function", function,
			"kind", kind.String(),
			"rows", rows,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "invoke completed",
			"function", function,
			"kind", kind.String(),
			"rows", rows,
		)
	}
}

// LogBatchEval logs a multi-batch evaluation.
func (l *Logger) LogBatchEval(ctx context.Context, function string, batches, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch evaluation failed",
			"function", function,
			"batches", batches,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch evaluation completed",
			"function", function,
			"batches", batches,
			"rows", rows,
		)
	}
}
