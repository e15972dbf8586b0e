// Package log provides testing utilities for structured logging.
//
// TestLogger captures records in memory so tests can assert that a combiner
// logged its fit diagnostics without parsing zerolog output.

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// TestLogger is a logger implementation designed for testing.
// Records are written as JSON lines into a shared buffer.
type TestLogger struct {
	mu     *sync.Mutex
	buffer *bytes.Buffer
	level  Level
	fields map[string]interface{}
}

// NewTestLogger creates a new TestLogger with the specified minimum level.
//
// Example:
//
//	logger, buffer := log.NewTestLogger(log.LevelDebug)
//	c, _ := ensemble.NewUnbiased(preds, ensemble.WithLogger(logger))
//	_ = c.Fit(X, y)
//	// inspect buffer.String() or logger.ContainsMessage("fit complete")
func NewTestLogger(level Level) (*TestLogger, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	return &TestLogger{
		mu:     &sync.Mutex{},
		buffer: buffer,
		level:  level,
		fields: make(map[string]interface{}),
	}, buffer
}

// Debug implements Logger.Debug.
func (t *TestLogger) Debug(msg string, fields ...any) {
	if t.level <= LevelDebug {
		t.writeLog("DEBUG", msg, fields...)
	}
}

// Info implements Logger.Info.
func (t *TestLogger) Info(msg string, fields ...any) {
	if t.level <= LevelInfo {
		t.writeLog("INFO", msg, fields...)
	}
}

// Warn implements Logger.Warn.
func (t *TestLogger) Warn(msg string, fields ...any) {
	if t.level <= LevelWarn {
		t.writeLog("WARN", msg, fields...)
	}
}

// Error implements Logger.Error.
func (t *TestLogger) Error(msg string, fields ...any) {
	if t.level <= LevelError {
		if len(fields) > 0 {
			if err, ok := fields[0].(error); ok {
				fields = append([]any{ErrAttrKey, err.Error()}, fields[1:]...)
			}
		}
		t.writeLog("ERROR", msg, fields...)
	}
}

// With implements Logger.With. The child shares the parent's buffer.
func (t *TestLogger) With(fields ...any) Logger {
	merged := make(map[string]interface{}, len(t.fields)+len(fields)/2)
	for k, v := range t.fields {
		merged[k] = v
	}
	for i := 0; i+1 < len(fields); i += 2 {
		merged[fmt.Sprintf("%v", fields[i])] = fields[i+1]
	}
	return &TestLogger{
		mu:     t.mu,
		buffer: t.buffer,
		level:  t.level,
		fields: merged,
	}
}

// Enabled implements Logger.Enabled.
func (t *TestLogger) Enabled(_ context.Context, level Level) bool {
	return level >= t.level
}

func (t *TestLogger) writeLog(level, msg string, fields ...any) {
	entry := map[string]interface{}{
		"level": level,
		"msg":   msg,
	}
	for k, v := range t.fields {
		entry[k] = v
	}
	for i := 0; i+1 < len(fields); i += 2 {
		entry[fmt.Sprintf("%v", fields[i])] = fields[i+1]
	}

	data, err := json.Marshal(entry)
	if err != nil {
		data = []byte(fmt.Sprintf(`{"level":%q,"msg":%q,"marshal_error":%q}`, level, msg, err.Error()))
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.buffer.Write(data)
	t.buffer.WriteByte('\n')
}

// GetLogEntries returns the captured records decoded from JSON.
func (t *TestLogger) GetLogEntries() ([]map[string]interface{}, error) {
	t.mu.Lock()
	raw := t.buffer.String()
	t.mu.Unlock()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, fmt.Errorf("failed to parse log entry %q: %w", line, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ContainsMessage reports whether any captured record has the given message.
func (t *TestLogger) ContainsMessage(msg string) bool {
	entries, err := t.GetLogEntries()
	if err != nil {
		return false
	}
	for _, e := range entries {
		if e["msg"] == msg {
			return true
		}
	}
	return false
}

// ContainsField reports whether any captured record has key set to value.
// Values are compared by their fmt representation.
func (t *TestLogger) ContainsField(key string, value interface{}) bool {
	entries, err := t.GetLogEntries()
	if err != nil {
		return false
	}
	want := fmt.Sprintf("%v", value)
	for _, e := range entries {
		if v, ok := e[key]; ok && fmt.Sprintf("%v", v) == want {
			return true
		}
	}
	return false
}

// Reset clears captured output.
func (t *TestLogger) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buffer.Reset()
}
