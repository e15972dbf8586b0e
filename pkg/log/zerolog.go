package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	scerrors "github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

const (
	// ErrAttrKey is the field name used for error values.
	ErrAttrKey = "error"
	// StacktraceAttrKey is the field name used for the extracted stack trace.
	StacktraceAttrKey = "stacktrace"
)

// ZerologLogger implements Logger on top of a zerolog.Logger.
type ZerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger wraps an existing zerolog logger.
func NewZerologLogger(zl zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{zl: zl}
}

// Debug implements Logger.Debug.
func (l *ZerologLogger) Debug(msg string, fields ...any) {
	l.zl.Debug().Fields(normalizeFields(fields)).Msg(msg)
}

// Info implements Logger.Info.
func (l *ZerologLogger) Info(msg string, fields ...any) {
	l.zl.Info().Fields(normalizeFields(fields)).Msg(msg)
}

// Warn implements Logger.Warn.
func (l *ZerologLogger) Warn(msg string, fields ...any) {
	l.zl.Warn().Fields(normalizeFields(fields)).Msg(msg)
}

// Error implements Logger.Error. A leading error value is attached with its
// cockroachdb stack trace.
func (l *ZerologLogger) Error(msg string, fields ...any) {
	ev := l.zl.Error()
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			ev = ev.Err(err)
			if st := extractStacktrace(err); st != "" {
				ev = ev.Str(StacktraceAttrKey, st)
			}
			fields = fields[1:]
		}
	}
	ev.Fields(normalizeFields(fields)).Msg(msg)
}

// With implements Logger.With.
func (l *ZerologLogger) With(fields ...any) Logger {
	return &ZerologLogger{zl: l.zl.With().Fields(normalizeFields(fields)).Logger()}
}

// Enabled implements Logger.Enabled.
func (l *ZerologLogger) Enabled(_ context.Context, level Level) bool {
	return l.zl.GetLevel() <= toZerologLevel(level)
}

// normalizeFields turns the key/value list into the []interface{} form zerolog
// expects, stringifying non-string keys and dropping a dangling key.
func normalizeFields(fields []any) []interface{} {
	out := make([]interface{}, 0, len(fields))
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", fields[i])
		}
		out = append(out, key, fields[i+1])
	}
	return out
}

func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// ParseLevel converts "debug", "info", "warn" or "error" into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, scerrors.NewValidationError("log_level", "must be one of debug, info, warn, error", s)
	}
}

// ZerologProvider is the default LoggerProvider.
type ZerologProvider struct {
	mu    sync.RWMutex
	base  zerolog.Logger
	level Level
}

// NewZerologProvider creates a provider writing JSON lines to w.
func NewZerologProvider(w io.Writer, level Level) *ZerologProvider {
	return &ZerologProvider{
		base:  zerolog.New(w).With().Timestamp().Logger(),
		level: level,
	}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *ZerologProvider) GetLogger() Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return NewZerologLogger(p.base.Level(toZerologLevel(p.level)))
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	return p.GetLogger().With(ComponentKey, name)
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *ZerologProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
}

var (
	globalMu       sync.RWMutex
	globalProvider LoggerProvider = NewZerologProvider(os.Stderr, LevelInfo)
)

func init() {
	scerrors.SetZerologWarnFunc(func(w error) {
		GetLogger().Warn(w.Error(), "warning", w)
	})
}

// SetProvider replaces the process-wide provider.
func SetProvider(p LoggerProvider) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalProvider = p
}

// GetLogger returns a logger from the process-wide provider.
func GetLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalProvider.GetLogger()
}

// GetLoggerWithName returns a component-tagged logger from the process-wide provider.
func GetLoggerWithName(name string) Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalProvider.GetLoggerWithName(name)
}

// SetLevel changes the minimum level of the process-wide provider.
func SetLevel(level Level) {
	globalMu.RLock()
	defer globalMu.RUnlock()
	globalProvider.SetLevel(level)
}

// SetupLogger installs a zerolog provider writing to stdout at the named level.
// Command-line drivers call it once at startup.
func SetupLogger(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	SetProvider(NewZerologProvider(os.Stdout, lvl))
	return nil
}

// SetOutput installs a zerolog provider writing to w, keeping the level of
// the provider it replaces when that provider is a ZerologProvider.
func SetOutput(w io.Writer) {
	globalMu.Lock()
	defer globalMu.Unlock()
	level := LevelInfo
	if zp, ok := globalProvider.(*ZerologProvider); ok {
		zp.mu.RLock()
		level = zp.level
		zp.mu.RUnlock()
	}
	globalProvider = NewZerologProvider(w, level)
}
