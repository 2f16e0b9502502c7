package trajmap

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with trajmap-specific context.
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

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithTrajectory adds a trajectory field to the logger.
func (l *Logger) WithTrajectory(trajectoryID int) *Logger {
	return &Logger{
		Logger: l.Logger.With("trajectory", trajectoryID),
	}
}

// LogTrajectoryCreated logs the lazy creation of a trajectory entry.
func (l *Logger) LogTrajectoryCreated(op string, trajectoryID int) {
	l.Debug("trajectory created",
		"op", op,
		"trajectory", trajectoryID,
	)
}

// LogLocked logs the Appendable -> Locked transition of a trajectory.
func (l *Logger) LogLocked(trajectoryID int, reason LockReason) {
	l.Debug("trajectory locked for append",
		"trajectory", trajectoryID,
		"reason", reason.String(),
	)
}

// LogViolation logs a contract violation right before it is raised.
func (l *Logger) LogViolation(v *ContractViolation) {
	l.Error("contract violation",
		"op", v.Op,
		"subject", v.Subject,
		"error", v.Err,
	)
}
