package pagination

import (
	"fmt"

	"github.com/angelmondragon/storegate/pkg/normalize"
)

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 10
	// MaxLimit caps how many rows any list request can ask for.
	MaxLimit = 50
)

// AllowedLimits enumerates the page sizes the list views offer.
var AllowedLimits = []int{5, 10, 20, 50}

// Params holds the 1-based page inputs from controllers or views. It is the
// sole place pages become offsets; every list call site converts through it.
type Params struct {
	Page  int
	Limit int
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// IsAllowedLimit reports whether the page size is one of the offered options.
func IsAllowedLimit(limit int) bool {
	for _, allowed := range AllowedLimits {
		if limit == allowed {
			return true
		}
	}
	return false
}

// Normalize returns params with the page floored at 1 and the limit bounded.
func (p Params) Normalize() Params {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return Params{Page: page, Limit: NormalizeLimit(p.Limit)}
}

// Offset converts the 1-based page to the offset the backend expects.
func (p Params) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.Limit
}

// Validate rejects params the contract does not cover.
func (p Params) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("page must be >= 1, got %d", p.Page)
	}
	if p.Limit < 1 {
		return fmt.Errorf("limit must be >= 1, got %d", p.Limit)
	}
	return nil
}

// Page is one normalized page of a listing. Items is never nil; Total is nil
// when the backend did not report a count, which callers read as "more pages
// may exist".
type Page[T any] struct {
	Items []T  `json:"items"`
	Total *int `json:"total,omitempty"`
}

// BuildPage applies the collection-extraction contract to a raw list body and
// maps every raw record through the entity normalizer. It is total over
// JSON-shaped input: malformed bodies become an empty page.
func BuildPage[T any](body any, fn func(normalize.Object) T) Page[T] {
	raw := normalize.ExtractItems(body)
	items := make([]T, 0, len(raw))
	for _, record := range raw {
		items = append(items, fn(record))
	}
	return Page[T]{Items: items, Total: normalize.ExtractTotal(body)}
}
