package domain

import (
	"context"
	"time"
)

// RecipeSource produces recipe records from one listing source.
// Implementations can be a structured JSON endpoint, a feed, a
// sitemap, a rendered-page scrape, or a hardcoded fallback. All
// implementations return records in the same normalized shape.
type RecipeSource interface {
	// Name identifies the source in logs.
	Name() string

	// Fetch returns all records the source currently lists. An empty
	// slice with a nil error means the source answered but listed
	// nothing; callers treat both errors and empty results as
	// non-fatal and move on to the next source.
	Fetch(ctx context.Context) ([]RecipeRecord, error)
}

// SnapshotCache persists the most recently loaded catalog so a fresh
// run can serve results immediately while a refresh happens in the
// background.
type SnapshotCache interface {
	// Read returns the stored snapshot, or ErrCacheMiss when nothing
	// is stored, the entry has expired, or the stored bytes are
	// corrupt. Corruption is never surfaced as its own error.
	Read(ctx context.Context) (*CatalogSnapshot, error)

	// Write replaces the stored snapshot with the given one, stamped
	// at its LoadedAt time. Persistence failures are returned but
	// callers treat them as non-fatal: the in-memory snapshot still
	// serves the current session.
	Write(ctx context.Context, snap *CatalogSnapshot) error

	Close() error
}

// Clock abstracts time.Now for cache-expiry tests.
type Clock func() time.Time
