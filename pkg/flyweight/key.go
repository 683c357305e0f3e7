package flyweight

import (
	"encoding/json"

	"github.com/rsheldon/flyweight/pkg/flyweight/params"
)

// Key derives the cache key for an (identifier, params) pair.
//
// The key is the JSON encoding of the two-element array [identifier, params].
// encoding/json writes map keys in sorted order at every nesting level, so
// value-equal params produce byte-equal keys regardless of the order their
// entries were set in. The array form keeps the identifier and the params
// unambiguous with respect to each other.
//
// Key is a pure function: equal inputs always yield equal keys. It fails
// only when params contain values JSON cannot represent (channels,
// functions, cyclic structures), in which case a *KeyError is returned.
func Key(identifier string, p params.Params) (string, error) {
	// Map() normalizes the zero value to an empty map, so zero-value and
	// explicitly-empty params derive the same key.
	encoded, err := json.Marshal([2]any{identifier, p.Map()})
	if err != nil {
		return "", &KeyError{Identifier: identifier, Err: err}
	}
	return string(encoded), nil
}
