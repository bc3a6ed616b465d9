// Package listing owns the stateful side of a paginated collection view: the
// current page, limit, and filter set, plus the request-generation guard that
// keeps a fast sequence of page changes from letting an older response land
// on top of a newer one.
package listing

import (
	"sync"

	"github.com/angelmondragon/storegate/pkg/pagination"
)

// FetchEffect tells the owning view what to fetch after a transition. The
// generation must be echoed back through Apply or Fail so stale responses can
// be recognized and dropped.
type FetchEffect struct {
	Gen    uint64
	Offset int
	Limit  int
}

// Result is one completed fetch, tagged with the generation of the request
// that produced it.
type Result[T any] struct {
	Gen   uint64
	Items []T
	Total *int
}

// Snapshot is the renderable view of the machine at one instant.
type Snapshot[T any] struct {
	Items   []T
	State   pagination.State
	Window  []pagination.PageItem
	Loading bool
	Err     error
}

// Machine drives one paginated collection. All methods are safe for
// concurrent use; in practice a single view goroutine calls the transitions
// and response callbacks call Apply and Fail.
type Machine[T any] struct {
	mu      sync.Mutex
	state   pagination.State
	items   []T
	gen     uint64
	loading bool
	err     error
}

// NewMachine starts at page 1 with a normalized limit and no items.
func NewMachine[T any](limit int) *Machine[T] {
	return &Machine[T]{state: pagination.NewState(limit)}
}

// Start issues the initial fetch.
func (m *Machine[T]) Start() FetchEffect {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.beginFetch()
}

// ChangePage validates the requested page against the current state and, when
// valid, issues a fetch for it. Out-of-range pages are rejected rather than
// clamped; a stale pager must be corrected by fresh data, not papered over.
func (m *Machine[T]) ChangePage(newPage int) (FetchEffect, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, err := m.state.WithPage(newPage)
	if err != nil {
		return FetchEffect{}, err
	}
	m.state = next
	return m.beginFetch(), nil
}

// ChangeLimit switches the page size and resets to page 1, since the old
// offset is meaningless under a new limit.
func (m *Machine[T]) ChangeLimit(newLimit int) FetchEffect {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = m.state.WithLimit(newLimit)
	return m.beginFetch()
}

// ChangeFilter resets to page 1 with an unknown total, since a new filter
// redefines the collection being paged, and issues a fetch. The filter values
// themselves live with the caller; the machine only tracks position.
func (m *Machine[T]) ChangeFilter() FetchEffect {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = pagination.NewState(m.state.Limit)
	return m.beginFetch()
}

// Refresh re-issues the current page, discarding any in-flight response.
func (m *Machine[T]) Refresh() FetchEffect {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.beginFetch()
}

func (m *Machine[T]) beginFetch() FetchEffect {
	m.gen++
	m.loading = true
	m.err = nil
	params := m.state.Params()
	return FetchEffect{Gen: m.gen, Offset: params.Offset(), Limit: params.Limit}
}

// Apply installs a completed fetch. Responses from a superseded generation
// are dropped and the method reports false; the current contents stay as the
// newest request left them.
func (m *Machine[T]) Apply(res Result[T]) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if res.Gen != m.gen {
		return false
	}
	m.items = res.Items
	m.state = m.state.WithTotal(res.Total)
	m.loading = false
	m.err = nil
	return true
}

// Fail records a fetch failure. Stale failures are dropped like stale
// results; prior items stay visible alongside the error.
func (m *Machine[T]) Fail(gen uint64, err error) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen {
		return false
	}
	m.loading = false
	m.err = err
	return true
}

// Snapshot returns the current renderable state.
func (m *Machine[T]) Snapshot() Snapshot[T] {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]T, len(m.items))
	copy(items, m.items)
	return Snapshot[T]{
		Items:   items,
		State:   m.state,
		Window:  m.state.Window(),
		Loading: m.loading,
		Err:     m.err,
	}
}
