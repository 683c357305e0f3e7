package params_test

import (
	"testing"
	"time"

	"github.com/rsheldon/flyweight/pkg/flyweight/params"
	"github.com/stretchr/testify/assert"
)

// TestNew verifies Params creation from maps.
func TestNew(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{"nil map", nil},
		{"empty map", map[string]any{}},
		{"with values", map[string]any{"key": "value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params.New(tt.data)
			assert.NotNil(t, p.Raw())
		})
	}
}

// TestString verifies string extraction with defaults.
func TestString(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal string
		want       string
	}{
		{"key exists", map[string]any{"name": "alice"}, "name", "default", "alice"},
		{"key missing", map[string]any{"other": "value"}, "name", "default", "default"},
		{"empty string", map[string]any{"name": ""}, "name", "default", ""},
		{"wrong type int", map[string]any{"name": 123}, "name", "default", "default"},
		{"wrong type bool", map[string]any{"name": true}, "name", "default", "default"},
		{"nil map", nil, "name", "default", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params.New(tt.data)
			assert.Equal(t, tt.want, p.String(tt.key, tt.defaultVal))
		})
	}
}

// TestInt verifies integer extraction and coercion rules.
func TestInt(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal int
		want       int
	}{
		{"int value", map[string]any{"n": 3}, "n", 0, 3},
		{"int64 value", map[string]any{"n": int64(4)}, "n", 0, 4},
		{"whole float", map[string]any{"n": 5.0}, "n", 0, 5},
		{"fractional float", map[string]any{"n": 5.5}, "n", -1, -1},
		{"missing", map[string]any{}, "n", 7, 7},
		{"wrong type", map[string]any{"n": "three"}, "n", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params.New(tt.data)
			assert.Equal(t, tt.want, p.Int(tt.key, tt.defaultVal))
		})
	}
}

// TestBool verifies boolean extraction.
func TestBool(t *testing.T) {
	p := params.New(map[string]any{"on": true, "off": false, "str": "true"})

	assert.True(t, p.Bool("on", false))
	assert.False(t, p.Bool("off", true))
	assert.True(t, p.Bool("missing", true))
	assert.False(t, p.Bool("str", false)) // strings are not coerced
}

// TestDuration verifies duration extraction with various input types.
func TestDuration(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal time.Duration
		want       time.Duration
	}{
		{"duration string", map[string]any{"d": "30s"}, "d", time.Second, 30 * time.Second},
		{"complex string", map[string]any{"d": "1h30m"}, "d", time.Second, 90 * time.Minute},
		{"int seconds", map[string]any{"d": 5}, "d", time.Second, 5 * time.Second},
		{"int64 seconds", map[string]any{"d": int64(6)}, "d", time.Second, 6 * time.Second},
		{"float seconds", map[string]any{"d": 1.5}, "d", time.Second, 1500 * time.Millisecond},
		{"duration value", map[string]any{"d": 2 * time.Minute}, "d", time.Second, 2 * time.Minute},
		{"bad string", map[string]any{"d": "soon"}, "d", time.Second, time.Second},
		{"missing", map[string]any{}, "d", 10 * time.Second, 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params.New(tt.data)
			assert.Equal(t, tt.want, p.Duration(tt.key, tt.defaultVal))
		})
	}
}

// TestFloat verifies float extraction and coercion.
func TestFloat(t *testing.T) {
	p := params.New(map[string]any{"f": 1.5, "i": 2, "i64": int64(3), "s": "1.5"})

	assert.Equal(t, 1.5, p.Float("f", 0))
	assert.Equal(t, 2.0, p.Float("i", 0))
	assert.Equal(t, 3.0, p.Float("i64", 0))
	assert.Equal(t, -1.0, p.Float("s", -1))
	assert.Equal(t, -1.0, p.Float("missing", -1))
}

// TestStringSlice verifies slice extraction.
func TestStringSlice(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal []string
		want       []string
	}{
		{"string slice", map[string]any{"s": []string{"a", "b"}}, "s", nil, []string{"a", "b"}},
		{"any slice", map[string]any{"s": []any{"a", "b"}}, "s", nil, []string{"a", "b"}},
		{"mixed any slice", map[string]any{"s": []any{"a", 1}}, "s", []string{"x"}, []string{"x"}},
		{"missing", map[string]any{}, "s", []string{"x"}, []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params.New(tt.data)
			assert.Equal(t, tt.want, p.StringSlice(tt.key, tt.defaultVal))
		})
	}
}

// TestAnyAndHas verifies raw access and presence checks.
func TestAnyAndHas(t *testing.T) {
	p := params.New(map[string]any{"k": []int{1, 2}})

	assert.Equal(t, []int{1, 2}, p.Any("k", nil))
	assert.Equal(t, "fallback", p.Any("missing", "fallback"))
	assert.True(t, p.Has("k"))
	assert.False(t, p.Has("missing"))
}

// TestZeroValue verifies the zero value of Params is usable.
func TestZeroValue(t *testing.T) {
	var p params.Params

	assert.True(t, p.IsZero())
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, "d", p.String("k", "d"))
	assert.False(t, p.Has("k"))
}

// TestMapIsACopy verifies Map returns a defensive copy.
func TestMapIsACopy(t *testing.T) {
	p := params.New(map[string]any{"a": 1})

	m := p.Map()
	m["b"] = 2
	delete(m, "a")

	assert.True(t, p.Has("a"))
	assert.False(t, p.Has("b"))
	assert.Equal(t, 1, p.Len())
}
