package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestZerologLogger_FieldsAndWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	l.With(ModelNameKey, "Unbiased").Debug("fit complete", LossKey, 0.5, IterationKey, 3)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, "fit complete", lines[0]["message"])
	assert.Equal(t, "Unbiased", lines[0][ModelNameKey])
	assert.Equal(t, 0.5, lines[0][LossKey])
	assert.Equal(t, float64(3), lines[0][IterationKey])
}

func TestZerologLogger_ErrorAttachesErr(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLogger(zerolog.New(&buf))

	l.Error("fit failed", errors.New("singular"), OperationKey, OperationFit)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "singular", lines[0][ErrAttrKey])
	assert.Equal(t, OperationFit, lines[0][OperationKey])
}

func TestZerologLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")

	assert.Len(t, decodeLines(t, &buf), 1)
	assert.False(t, l.Enabled(context.Background(), LevelInfo))
	assert.True(t, l.Enabled(context.Background(), LevelError))
}

func TestNormalizeFields_DanglingKeyDropped(t *testing.T) {
	got := normalizeFields([]any{"a", 1, 2, "b", "c"})
	assert.Equal(t, []interface{}{"a", 1, "2", "b"}, got)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProvider_NamedLoggerAndSetLevel(t *testing.T) {
	var buf bytes.Buffer
	p := NewZerologProvider(&buf, LevelInfo)

	p.GetLoggerWithName("grnn").Debug("hidden")
	p.SetLevel(LevelDebug)
	p.GetLoggerWithName("grnn").Debug("sigma search")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "grnn", lines[0][ComponentKey])
}

func TestGlobalProviderSwap(t *testing.T) {
	tl, _ := NewTestLogger(LevelDebug)
	SetProvider(&staticProvider{l: tl})
	defer SetProvider(NewZerologProvider(&bytes.Buffer{}, LevelInfo))

	GetLoggerWithName("ensemble").Info("hello", SamplesKey, 10)
	assert.True(t, tl.ContainsMessage("hello"))
	assert.True(t, tl.ContainsField(SamplesKey, 10))
}

func TestTestLogger_WithSharesBuffer(t *testing.T) {
	tl, buf := NewTestLogger(LevelInfo)
	child := tl.With(ComponentKey, "experiment")

	child.Debug("dropped")
	child.Info("kept", IterationKey, 2)
	child.Error("boom", errors.New("bad"))

	assert.Contains(t, buf.String(), "kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.True(t, tl.ContainsField(ComponentKey, "experiment"))
	assert.True(t, tl.ContainsField(ErrAttrKey, "bad"))

	tl.Reset()
	assert.Empty(t, buf.String())
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
}

type staticProvider struct {
	l Logger
}

func (s *staticProvider) GetLogger() Logger { return s.l }
func (s *staticProvider) GetLoggerWithName(name string) Logger {
	return s.l.With(ComponentKey, name)
}
func (s *staticProvider) SetLevel(Level) {}
