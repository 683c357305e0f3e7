package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHandler captures log records for testing.
type testHandler struct {
	buf    *bytes.Buffer
	level  slog.Level
	attrs  []slog.Attr
	groups []string
}

func newTestHandler() *testHandler {
	return &testHandler{
		buf:   &bytes.Buffer{},
		level: slog.LevelDebug,
	}
}

func (h *testHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *testHandler) Handle(_ context.Context, r slog.Record) error {
	// Build a map from the record
	data := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}

	// Add pre-configured attrs
	for _, attr := range h.attrs {
		data[attr.Key] = attr.Value.Any()
	}

	// Add record attrs
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})

	// Encode as JSON
	enc := json.NewEncoder(h.buf)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return nil
}

func (h *testHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := &testHandler{
		buf:    h.buf,
		level:  h.level,
		attrs:  make([]slog.Attr, len(h.attrs)+len(attrs)),
		groups: h.groups,
	}
	copy(newH.attrs, h.attrs)
	copy(newH.attrs[len(h.attrs):], attrs)
	return newH
}

func (h *testHandler) WithGroup(name string) slog.Handler {
	newH := &testHandler{
		buf:    h.buf,
		level:  h.level,
		attrs:  h.attrs,
		groups: append(h.groups, name),
	}
	return newH
}

func (h *testHandler) getLastRecord() map[string]any {
	lines := bytes.Split(h.buf.Bytes(), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		if len(lines[i]) > 0 {
			var m map[string]any
			if err := json.Unmarshal(lines[i], &m); err == nil {
				return m
			}
		}
	}
	return nil
}

func TestEnrichLogger(t *testing.T) {
	t.Run("adds identifier and key fields", func(t *testing.T) {
		h := newTestHandler()
		logger := slog.New(h)

		enriched := EnrichLogger(logger, "arrow", `["arrow",{}]`)
		require.NotNil(t, enriched)

		enriched.Info("working")

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "arrow", record["identifier"])
		assert.Equal(t, `["arrow",{}]`, record["cache_key"])
	})

	t.Run("nil logger returns nil", func(t *testing.T) {
		assert.Nil(t, EnrichLogger(nil, "arrow", "key"))
	})
}

func TestLogAcquireHit(t *testing.T) {
	t.Run("logs at debug level", func(t *testing.T) {
		h := newTestHandler()
		logger := slog.New(h)

		LogAcquireHit(logger, "arrow", "key-1")

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "DEBUG", record["level"])
		assert.Equal(t, "acquire hit", record["msg"])
		assert.Equal(t, "arrow", record["identifier"])
		assert.Equal(t, "key-1", record["cache_key"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			LogAcquireHit(nil, "arrow", "key-1")
		})
	})
}

func TestLogAcquireMiss(t *testing.T) {
	t.Run("logs duration", func(t *testing.T) {
		h := newTestHandler()
		logger := slog.New(h)

		LogAcquireMiss(logger, "arrow", "key-1", 12.5)

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "DEBUG", record["level"])
		assert.Equal(t, "arrow", record["identifier"])
		assert.Equal(t, 12.5, record["duration_ms"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			LogAcquireMiss(nil, "arrow", "key-1", 0)
		})
	})
}

func TestLogConstructError(t *testing.T) {
	t.Run("logs at error level", func(t *testing.T) {
		h := newTestHandler()
		logger := slog.New(h)

		LogConstructError(logger, "arrow", errors.New("bad params"))

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "ERROR", record["level"])
		assert.Equal(t, "construction failed", record["msg"])
		assert.Equal(t, "bad params", record["error"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			LogConstructError(nil, "arrow", errors.New("x"))
		})
	})
}

func TestLogEvict(t *testing.T) {
	h := newTestHandler()
	logger := slog.New(h)

	LogEvict(logger, "arrow", "key-1")

	record := h.getLastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "instance evicted", record["msg"])
	assert.Equal(t, "arrow", record["identifier"])

	assert.NotPanics(t, func() {
		LogEvict(nil, "arrow", "key-1")
	})
}

func TestLogClear(t *testing.T) {
	h := newTestHandler()
	logger := slog.New(h)

	LogClear(logger, 3)

	record := h.getLastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "cache cleared", record["msg"])
	assert.Equal(t, float64(3), record["evicted"])

	assert.NotPanics(t, func() {
		LogClear(nil, 0)
	})
}

func TestTimedOperation(t *testing.T) {
	done := TimedOperation()
	time.Sleep(10 * time.Millisecond)
	elapsed := done()

	assert.GreaterOrEqual(t, elapsed, float64(5))
	assert.Less(t, elapsed, float64(5000))
}
