package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hammamikhairi/dishdex/internal/domain"
)

// Compile-time interface check.
var _ domain.SnapshotCache = (*Memory)(nil)

// Memory is an in-memory snapshot cache with the same expiry contract
// as the badger store. Used when persistence is disabled and in tests.
// Safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	snap *domain.CatalogSnapshot
	ttl  time.Duration
	now  domain.Clock
}

// NewMemory creates an empty in-memory cache.
func NewMemory(ttl time.Duration, now domain.Clock) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{ttl: ttl, now: now}
}

// Read returns the held snapshot, or domain.ErrCacheMiss when nothing
// is held or the entry has expired.
func (m *Memory) Read(ctx context.Context) (*domain.CatalogSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.snap == nil || m.now().Sub(m.snap.LoadedAt) > m.ttl {
		return nil, domain.ErrCacheMiss
	}
	return m.snap, nil
}

// Write replaces the held snapshot.
func (m *Memory) Write(ctx context.Context, snap *domain.CatalogSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = snap
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
