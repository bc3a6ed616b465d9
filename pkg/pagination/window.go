package pagination

// windowSize is the number of page entries shown between the edges.
const windowSize = 5

// PageItem is one entry of the renderable page-number strip.
type PageItem struct {
	Page     int  `json:"page,omitempty"`
	Current  bool `json:"current,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Window returns the sliding page-number strip: a fixed-size window centered
// on the current page, clamped to [1, pageCount], with the first and last page
// always reachable through an ellipsis entry once the count outgrows the
// window. An unknown page count renders just the current page.
func (s State) Window() []PageItem {
	count := s.PageCount()
	if count == nil {
		return []PageItem{{Page: s.Page, Current: true}}
	}

	n := *count
	if n <= windowSize {
		items := make([]PageItem, 0, n)
		for p := 1; p <= n; p++ {
			items = append(items, PageItem{Page: p, Current: p == s.Page})
		}
		return items
	}

	start := s.Page - windowSize/2
	if start < 1 {
		start = 1
	}
	if start > n-windowSize+1 {
		start = n - windowSize + 1
	}
	end := start + windowSize - 1

	items := make([]PageItem, 0, windowSize+4)
	if start > 1 {
		items = append(items, PageItem{Page: 1, Current: s.Page == 1})
		if start > 2 {
			items = append(items, PageItem{Ellipsis: true})
		}
	}
	for p := start; p <= end; p++ {
		items = append(items, PageItem{Page: p, Current: p == s.Page})
	}
	if end < n {
		if end < n-1 {
			items = append(items, PageItem{Ellipsis: true})
		}
		items = append(items, PageItem{Page: n, Current: s.Page == n})
	}
	return items
}
