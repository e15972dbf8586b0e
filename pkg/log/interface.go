// Package log provides the structured logging interface used by the combiners,
// the base models and the experiment driver.
//
// The interface mirrors log/slog's call shape (message plus alternating
// key/value fields) and is backed by zerolog in production. Combiners take a
// Logger through an option and otherwise fall back to GetLoggerWithName.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("ensemble.unbiased").With(
//	    log.ModelNameKey, "Unbiased",
//	)
//	logger.Debug("fit started",
//	    log.OperationKey, log.OperationFit,
//	    log.SamplesKey, 1000,
//	    log.ModelsKey, 5,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are alternating key/value pairs. Implementations must be safe for
// concurrent use, since independent combiners may be fit from separate
// goroutines while sharing one logger.
type Logger interface {
	// Debug logs a debug-level message. Combiners emit their per-fit
	// diagnostics (loss, iterations, convergence) at this level.
	Debug(msg string, fields ...any)

	// Info logs an info-level message.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message.
	Warn(msg string, fields ...any)

	// Error logs an error-level message. If the first field is an error value
	// it is attached as the record's error, together with its stack trace.
	//
	// Example:
	//   logger.Error("fit failed", err, log.OperationKey, log.OperationFit)
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates and configures loggers. The package keeps one
// provider as the process default; tests swap it with SetProvider.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger tagged with a component name.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for loggers created afterwards.
	SetLevel(level Level)
}
