// Package pager decides how many of an already-filtered, already-
// sorted result list are materialized in the view, and grows that
// window as the user approaches its end. The full list is in memory
// throughout; growing is bookkeeping plus a short staging delay for
// enter transitions, never I/O.
package pager

// Pager is the infinite-scroll window state machine. It is either
// idle or growing ("loading"); the proximity signal is ignored while
// growing and once the window covers the whole list.
//
// Not safe for concurrent use; it belongs to the UI loop.
type Pager struct {
	pageSize int
	total    int
	window   int
	loading  bool
}

// New creates a pager for an empty result list.
func New(pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = 12
	}
	return &Pager{pageSize: pageSize}
}

// Reset points the pager at a new result list. Any change upstream —
// new query, new tag selection, new sort — must come through here:
// pagination always restarts at the first page and never tries to
// preserve scroll position across a result-set change.
func (p *Pager) Reset(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	p.window = min(p.pageSize, total)
	p.loading = false
}

// NearEnd is the viewport proximity signal. It returns true when the
// pager starts growing, in which case the caller owes a CompleteGrow
// call after its staging delay. Signals while already growing, or when
// everything is materialized, return false and change nothing.
func (p *Pager) NearEnd() bool {
	if p.loading || p.window >= p.total {
		return false
	}
	p.loading = true
	return true
}

// CompleteGrow finishes a growth step: the window advances one page,
// clamped to the total, and the pager is idle again. A stray call
// while idle is a no-op.
func (p *Pager) CompleteGrow() {
	if !p.loading {
		return
	}
	p.loading = false
	p.window = min(p.window+p.pageSize, p.total)
}

// Window returns how many items are currently materialized.
func (p *Pager) Window() int { return p.window }

// Loading reports whether a growth step is in flight.
func (p *Pager) Loading() bool { return p.loading }

// Total returns the size of the upstream result list.
func (p *Pager) Total() int { return p.total }
