package params

import (
	"time"
)

// Params wraps a map[string]any of named construction parameters.
// All accessor methods return default values if the key is missing
// or the value cannot be converted to the requested type.
//
// Params is the free-form context passed to producers; the library
// never interprets its contents beyond deriving a cache key from it.
type Params struct {
	data map[string]any
}

// New creates Params from the given map.
// If data is nil, empty Params are returned.
func New(data map[string]any) Params {
	if data == nil {
		data = make(map[string]any)
	}
	return Params{data: data}
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (p Params) String(key, defaultVal string) string {
	v, ok := p.data[key]
	if !ok {
		return defaultVal
	}
	if s, ok := v.(string); ok {
		return s
	}
	return defaultVal
}

// Duration returns the duration value for key, or defaultVal if missing or invalid.
//
// Accepts:
//   - string: parsed with time.ParseDuration
//   - int: interpreted as seconds
//   - int64: interpreted as seconds
//   - float64: interpreted as seconds
//   - time.Duration: used directly
func (p Params) Duration(key string, defaultVal time.Duration) time.Duration {
	v, ok := p.data[key]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case string:
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	case float64:
		return time.Duration(val * float64(time.Second))
	case int:
		return time.Duration(val) * time.Second
	case int64:
		return time.Duration(val) * time.Second
	case time.Duration:
		return val
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal if missing or not a bool.
func (p Params) Bool(key string, defaultVal bool) bool {
	v, ok := p.data[key]
	if !ok {
		return defaultVal
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultVal
}

// Int returns the integer value for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - int: used directly
//   - int64: converted to int
//   - float64: converted to int (only if no fractional part)
func (p Params) Int(key string, defaultVal int) int {
	v, ok := p.data[key]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		// Only convert if there's no fractional part
		if val == float64(int(val)) {
			return int(val)
		}
	}
	return defaultVal
}

// Float returns the float64 value for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - float64: used directly
//   - int: converted to float64
//   - int64: converted to float64
func (p Params) Float(key string, defaultVal float64) float64 {
	v, ok := p.data[key]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	}
	return defaultVal
}

// StringSlice returns the string slice for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - []string: used directly
//   - []any: each element converted to string if possible
func (p Params) StringSlice(key string, defaultVal []string) []string {
	v, ok := p.data[key]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case []string:
		return val
	case []any:
		result := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				result = append(result, s)
			} else {
				// If any element isn't a string, return default
				return defaultVal
			}
		}
		return result
	}
	return defaultVal
}

// Any returns the raw value for key, or defaultVal if missing.
func (p Params) Any(key string, defaultVal any) any {
	v, ok := p.data[key]
	if !ok {
		return defaultVal
	}
	return v
}

// Has returns true if the key exists.
func (p Params) Has(key string) bool {
	_, ok := p.data[key]
	return ok
}

// Len returns the number of parameters.
func (p Params) Len() int {
	return len(p.data)
}

// IsZero returns true if no parameters are set.
// The zero value of Params is valid and empty.
func (p Params) IsZero() bool {
	return len(p.data) == 0
}

// Map returns a shallow copy of the parameters.
// Mutating the returned map does not affect p.
func (p Params) Map() map[string]any {
	out := make(map[string]any, len(p.data))
	for k, v := range p.data {
		out[k] = v
	}
	return out
}

// Raw returns the underlying map.
// The returned map should not be modified.
func (p Params) Raw() map[string]any {
	return p.data
}
