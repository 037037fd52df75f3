// Package catalog owns the in-memory catalog state and the engine
// facade the UI binds to. The current snapshot lives behind an
// explicit store that swaps references atomically — a query in flight
// against the old snapshot is never corrupted by a concurrent refresh.
package catalog

import (
	"sync"

	"github.com/hammamikhairi/dishdex/internal/domain"
)

// Store holds the current catalog snapshot and notifies subscribers
// whenever it is replaced. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	snap *domain.CatalogSnapshot
	subs []func()
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns the current snapshot, or nil before the first load.
// The returned snapshot is immutable; callers must not modify it.
func (s *Store) Snapshot() *domain.CatalogSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Loaded reports whether a snapshot has been installed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap != nil
}

// Swap installs a new snapshot and fires every subscriber. Callbacks
// run outside the lock, on the swapping goroutine.
func (s *Store) Swap(snap *domain.CatalogSnapshot) {
	s.mu.Lock()
	s.snap = snap
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// OnLoaded registers a callback fired after every snapshot swap. Used
// by the UI to repaint when a background refresh lands.
func (s *Store) OnLoaded(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
