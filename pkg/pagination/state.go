package pagination

import "fmt"

// State is the navigation state one list view owns: the current 1-based page,
// the page size, and the total reported by the last fetch. TotalItems is nil
// until a fetch reports one, meaning the page count is unknown and forward
// navigation stays open-ended.
type State struct {
	Page       int
	Limit      int
	TotalItems *int
}

// NewState starts at page 1 with a bounded limit.
func NewState(limit int) State {
	return State{Page: 1, Limit: NormalizeLimit(limit)}
}

// Params returns the request-side view of the state.
func (s State) Params() Params {
	return Params{Page: s.Page, Limit: s.Limit}
}

// PageCount derives the number of pages, or nil when the total is unknown.
func (s State) PageCount() *int {
	if s.TotalItems == nil || *s.TotalItems <= 0 || s.Limit < 1 {
		return nil
	}
	count := (*s.TotalItems + s.Limit - 1) / s.Limit
	return &count
}

// CanGoPrev reports whether backward navigation is possible.
func (s State) CanGoPrev() bool {
	return s.Page > 1
}

// CanGoNext reports whether forward navigation is possible. A known-zero total
// closes it; an unknown total optimistically leaves it open.
func (s State) CanGoNext() bool {
	if s.TotalItems != nil && *s.TotalItems == 0 {
		return false
	}
	count := s.PageCount()
	if count == nil {
		return true
	}
	return s.Page < *count
}

// WithPage moves to the requested page. Out-of-range requests are rejected,
// not clamped: a stale view must re-derive its state from fresh data instead
// of having the pager silently patch it.
func (s State) WithPage(page int) (State, error) {
	if page < 1 {
		return s, fmt.Errorf("page must be >= 1, got %d", page)
	}
	if count := s.PageCount(); count != nil && page > *count {
		return s, fmt.Errorf("page %d exceeds page count %d", page, *count)
	}
	s.Page = page
	return s, nil
}

// WithLimit changes the page size and resets to page 1, since the previous
// offset is meaningless under a new limit.
func (s State) WithLimit(limit int) State {
	s.Limit = NormalizeLimit(limit)
	s.Page = 1
	return s
}

// WithTotal records the total reported by the latest fetch.
func (s State) WithTotal(total *int) State {
	s.TotalItems = total
	return s
}
