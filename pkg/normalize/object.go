package normalize

import (
	"encoding/json"
	"io"
)

// Object is one raw entity record as decoded from a response body. Accessors
// resolve fields across the backend's naming conventions: callers pass the
// accepted keys in priority order (camelCase first, then snake_case, then any
// historical alternate) and get the documented default when nothing matches.
// Accessors never panic for any JSON-shaped input.
type Object map[string]any

// Decode reads a JSON body into the loose representation the extraction and
// normalization helpers operate on.
func Decode(r io.Reader) (any, error) {
	var body any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&body); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	return body, nil
}

// String resolves the first key holding a string value; default "".
func (o Object) String(keys ...string) string {
	for _, key := range keys {
		if s, ok := o[key].(string); ok {
			return s
		}
	}
	return ""
}

// StringPtr resolves like String but keeps absence observable; default nil.
func (o Object) StringPtr(keys ...string) *string {
	for _, key := range keys {
		if s, ok := o[key].(string); ok {
			return &s
		}
	}
	return nil
}

// Float resolves the first key holding a numeric value; default 0.
func (o Object) Float(keys ...string) float64 {
	for _, key := range keys {
		if n, ok := toNumber(o[key]); ok {
			return n
		}
	}
	return 0
}

// FloatPtr resolves like Float but keeps absence observable; default nil.
func (o Object) FloatPtr(keys ...string) *float64 {
	for _, key := range keys {
		if n, ok := toNumber(o[key]); ok {
			return &n
		}
	}
	return nil
}

// Int resolves the first key holding a numeric value, truncated; default 0.
func (o Object) Int(keys ...string) int {
	for _, key := range keys {
		if n, ok := toNumber(o[key]); ok {
			return int(n)
		}
	}
	return 0
}

// Has reports whether any of the keys is present, regardless of value type.
// Identifier resolution depends on this: an entity that supplied any id field
// must never be treated as id-less just because the value was malformed.
func (o Object) Has(keys ...string) bool {
	for _, key := range keys {
		if _, ok := o[key]; ok {
			return true
		}
	}
	return false
}

// Object resolves the first key holding a nested object. Absence yields
// (nil, false) so callers can distinguish a missing embed from an empty one.
func (o Object) Object(keys ...string) (Object, bool) {
	for _, key := range keys {
		if nested, ok := o[key].(map[string]any); ok {
			return Object(nested), true
		}
	}
	return nil, false
}

// Objects resolves the first key holding an array and returns its object
// elements; default empty slice.
func (o Object) Objects(keys ...string) []Object {
	for _, key := range keys {
		if arr, ok := o[key].([]any); ok {
			return toObjects(arr)
		}
	}
	return []Object{}
}

func toNumber(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
