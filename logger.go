package fermigo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with fermigo-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithParticles adds a particle-count field to the logger.
func (l *Logger) WithParticles(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("particles", n),
	}
}

// WithOrbitals adds a total-orbital-count field to the logger.
func (l *Logger) WithOrbitals(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("orbitals", n),
	}
}

// LogUpdate logs an incremental update.
func (l *Logger) LogUpdate(ctx context.Context, particles, orbitals []int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fast update failed",
			"particles", particles,
			"orbitals", orbitals,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "fast update completed",
			"particles", particles,
			"orbitals", orbitals,
		)
	}
}

// LogRefresh logs a full Slater refresh.
func (l *Logger) LogRefresh(ctx context.Context, err error) {
	if err != nil {
		l.ErrorContext(ctx, "slater refresh failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "slater refresh completed")
	}
}

// LogMeasure logs a local estimator evaluation.
func (l *Logger) LogMeasure(ctx context.Context, sites []int, substates int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "measurement failed",
			"sites", sites,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "measurement completed",
			"sites", sites,
			"substates", substates,
		)
	}
}
