// Package loader builds catalog snapshots by trying recipe sources in
// order of reliability and falling back on failure or insufficient
// yield. Loading never fails: the worst case is the built-in fallback
// dataset, so the UI always has something to show.
package loader

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hammamikhairi/dishdex/internal/domain"
	"github.com/hammamikhairi/dishdex/internal/logger"
	"github.com/hammamikhairi/dishdex/internal/source"
)

// Option configures the loader.
type Option func(*Loader)

// WithMinCatalogSize sets the known full catalog size. A merged load
// below this unions in the fallback records.
func WithMinCatalogSize(n int) Option {
	return func(l *Loader) { l.minSize = n }
}

// WithFallback replaces the built-in fallback dataset.
func WithFallback(recs []domain.RecipeRecord) Option {
	return func(l *Loader) { l.fallback = recs }
}

// WithClock overrides the snapshot timestamp source for tests.
func WithClock(now domain.Clock) Option {
	return func(l *Loader) { l.now = now }
}

// Loader produces deduplicated catalog snapshots.
//
// Source order: the primary structured endpoint is accepted outright
// when it yields anything. Otherwise the secondary structured sources
// and the rendered-page scrape run concurrently and are merged by
// slug, with scraped records winning collisions (they reflect what is
// actually published) and structured records filling the gaps.
type Loader struct {
	primary     domain.RecipeSource
	secondaries []domain.RecipeSource
	scrape      domain.RecipeSource
	fallback    []domain.RecipeRecord
	minSize     int
	now         domain.Clock
	log         *logger.Logger
}

// New creates a loader. primary, scrape, and any secondary may be nil;
// nil sources are simply skipped.
func New(primary domain.RecipeSource, secondaries []domain.RecipeSource, scrape domain.RecipeSource, log *logger.Logger, opts ...Option) *Loader {
	l := &Loader{
		primary:     primary,
		secondaries: secondaries,
		scrape:      scrape,
		fallback:    source.Builtin(),
		minSize:     40,
		now:         time.Now,
		log:         log,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load builds a snapshot. It never returns an error; individual source
// failures are logged and swallowed, and total failure resolves to the
// fallback dataset.
func (l *Loader) Load(ctx context.Context) *domain.CatalogSnapshot {
	recs := l.fetchPrimary(ctx)
	if len(recs) == 0 {
		recs = l.fetchMerged(ctx)
	}

	if len(recs) < l.minSize {
		before := len(recs)
		recs = unionBySlug(recs, l.fallback)
		l.log.Info("catalog below minimum (%d < %d), unioned fallback to %d records",
			before, l.minSize, len(recs))
	}

	return &domain.CatalogSnapshot{Recipes: recs, LoadedAt: l.now()}
}

// fetchPrimary tries the primary structured endpoint. Any yield is
// accepted; errors and empty results both mean "move on".
func (l *Loader) fetchPrimary(ctx context.Context) []domain.RecipeRecord {
	if l.primary == nil {
		return nil
	}
	recs, err := l.primary.Fetch(ctx)
	if err != nil {
		l.log.Warn("primary source %s failed: %v", l.primary.Name(), err)
		return nil
	}
	if len(recs) == 0 {
		l.log.Warn("primary source %s listed nothing", l.primary.Name())
		return nil
	}
	l.log.Info("loaded %d recipes from %s", len(recs), l.primary.Name())
	return dedupeBySlug(recs)
}

// fetchMerged runs the secondary sources and the scrape concurrently,
// swallowing each attempt's error, and merges the survivors. The
// scrape wins slug collisions; earlier secondaries win over later.
func (l *Loader) fetchMerged(ctx context.Context) []domain.RecipeRecord {
	results := make([][]domain.RecipeRecord, len(l.secondaries))
	var scraped []domain.RecipeRecord

	g, gctx := errgroup.WithContext(ctx)

	for i, src := range l.secondaries {
		if src == nil {
			continue
		}
		g.Go(func() error {
			recs, err := src.Fetch(gctx)
			if err != nil {
				l.log.Warn("secondary source %s failed: %v", src.Name(), err)
				return nil
			}
			results[i] = recs
			return nil
		})
	}

	if l.scrape != nil {
		g.Go(func() error {
			recs, err := l.scrape.Fetch(gctx)
			if err != nil {
				l.log.Warn("scrape source %s failed: %v", l.scrape.Name(), err)
				return nil
			}
			scraped = recs
			return nil
		})
	}

	// All error paths return nil above, so Wait only joins.
	_ = g.Wait()

	merged := dedupeBySlug(scraped)
	for _, recs := range results {
		merged = unionBySlug(merged, recs)
	}

	l.log.Info("merged %d recipes (%d scraped)", len(merged), len(scraped))
	return merged
}

// dedupeBySlug drops later duplicates, keeping first-seen order.
func dedupeBySlug(recs []domain.RecipeRecord) []domain.RecipeRecord {
	if len(recs) == 0 {
		return nil
	}
	out := make([]domain.RecipeRecord, 0, len(recs))
	seen := make(map[string]bool, len(recs))
	for _, r := range recs {
		if r.Slug == "" || seen[r.Slug] {
			continue
		}
		seen[r.Slug] = true
		out = append(out, r)
	}
	return out
}

// unionBySlug appends records from extra whose slug is not already
// present. Present records are never overwritten.
func unionBySlug(base, extra []domain.RecipeRecord) []domain.RecipeRecord {
	seen := make(map[string]bool, len(base))
	for _, r := range base {
		seen[r.Slug] = true
	}
	out := base
	for _, r := range extra {
		if r.Slug == "" || seen[r.Slug] {
			continue
		}
		seen[r.Slug] = true
		out = append(out, r)
	}
	return out
}
