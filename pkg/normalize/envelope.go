package normalize

// Kind classifies the envelope shape of a decoded response body. The legacy
// backend shipped at least three list envelope conventions over its lifetime;
// classification makes the acceptance order explicit instead of probing
// properties ad hoc.
type Kind int

const (
	// KindEmpty covers nil bodies and any non-object, non-array JSON value.
	KindEmpty Kind = iota
	// KindArray is a bare top-level array of entities.
	KindArray
	// KindItems is the {"items": [...], "total": n} envelope.
	KindItems
	// KindData is the {"data": [...]} envelope.
	KindData
	// KindObject is a plain object that carries no recognized collection key.
	KindObject
)

// Classify returns the envelope kind for a decoded JSON value. The precedence
// mirrors the extraction contract: a bare array wins, then "items", then
// "data"; anything else is a plain object or empty.
func Classify(body any) Kind {
	switch v := body.(type) {
	case []any:
		return KindArray
	case map[string]any:
		if _, ok := v["items"].([]any); ok {
			return KindItems
		}
		if _, ok := v["data"].([]any); ok {
			return KindData
		}
		return KindObject
	default:
		return KindEmpty
	}
}

// ExtractItems produces the ordered raw entity records held by a list response
// body, accepting every historical envelope. Unknown shapes yield an empty
// slice, never an error.
func ExtractItems(body any) []Object {
	switch Classify(body) {
	case KindArray:
		return toObjects(body.([]any))
	case KindItems:
		return toObjects(body.(map[string]any)["items"].([]any))
	case KindData:
		return toObjects(body.(map[string]any)["data"].([]any))
	case KindObject, KindEmpty:
		return []Object{}
	}
	return []Object{}
}

// ExtractEntity unwraps a single-entity response: a {"data": {...}} envelope
// yields the inner object, a bare object is returned as is, anything else is
// nil.
func ExtractEntity(body any) Object {
	obj, ok := body.(map[string]any)
	if !ok {
		return nil
	}
	if inner, ok := obj["data"].(map[string]any); ok {
		return Object(inner)
	}
	return Object(obj)
}

// ExtractTotal reads the reported collection size from a list envelope,
// accepting "total" then "total_count". A missing or non-numeric value returns
// nil, which callers must treat as "unknown total", not zero results.
func ExtractTotal(body any) *int {
	obj, ok := body.(map[string]any)
	if !ok {
		return nil
	}
	for _, key := range []string{"total", "total_count"} {
		if raw, ok := obj[key]; ok {
			if n, ok := toNumber(raw); ok {
				total := int(n)
				return &total
			}
		}
	}
	return nil
}

func toObjects(raw []any) []Object {
	items := make([]Object, 0, len(raw))
	for _, el := range raw {
		if obj, ok := el.(map[string]any); ok {
			items = append(items, Object(obj))
		}
	}
	return items
}
