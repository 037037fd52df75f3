package catalog

import (
	"context"
	"errors"

	"github.com/hammamikhairi/dishdex/internal/domain"
	"github.com/hammamikhairi/dishdex/internal/logger"
	"github.com/hammamikhairi/dishdex/internal/query"
)

// CatalogLoader builds snapshots. Satisfied by loader.Loader; kept as
// a local interface so engine tests can stub it.
type CatalogLoader interface {
	Load(ctx context.Context) *domain.CatalogSnapshot
}

// Option configures the engine.
type Option func(*Engine)

// WithMinCatalogSize sets the smallest cached snapshot worth serving
// while a refresh runs. Smaller cache hits are ignored and the load
// happens in the foreground instead.
func WithMinCatalogSize(n int) Option {
	return func(e *Engine) { e.minSize = n }
}

// Engine is the discovery engine's library surface: it owns the
// catalog lifecycle (load, cache, refresh) and answers search, filter,
// and sort over the current snapshot. All query operations are pure
// functions of the snapshot, so the engine tolerates being called at
// any rate.
type Engine struct {
	store   *Store
	loader  CatalogLoader
	cache   domain.SnapshotCache
	minSize int
	log     *logger.Logger
	tokens  TokenSource
}

// New creates an engine. cache may be nil to disable persistence.
func New(ld CatalogLoader, cache domain.SnapshotCache, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		store:   NewStore(),
		loader:  ld,
		cache:   cache,
		minSize: 40,
		log:     log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start brings the catalog up, stale-while-revalidate style: a fresh
// enough cached snapshot of viable size is served immediately while
// the loader refreshes in the background; otherwise the first load
// happens in the foreground. Either way the catalog is usable when
// Start returns.
func (e *Engine) Start(ctx context.Context) {
	if e.cache != nil {
		snap, err := e.cache.Read(ctx)
		switch {
		case err == nil && snap.Len() >= e.minSize:
			e.log.Info("serving %d cached recipes, refreshing in background", snap.Len())
			e.store.Swap(snap)
			go e.Refresh(ctx)
			return
		case err == nil:
			e.log.Info("cached catalog too small (%d < %d), reloading", snap.Len(), e.minSize)
		case !errors.Is(err, domain.ErrCacheMiss):
			e.log.Warn("cache read: %v", err)
		}
	}

	e.Refresh(ctx)
}

// Refresh builds a new snapshot, swaps it in, and re-persists it. It
// never fails: the loader resolves to the fallback dataset in the
// worst case, and a cache-write failure only costs the next session a
// reload.
func (e *Engine) Refresh(ctx context.Context) {
	snap := e.loader.Load(ctx)
	e.store.Swap(snap)
	e.log.Info("catalog refreshed: %d recipes", snap.Len())

	if e.cache != nil {
		if err := e.cache.Write(ctx, snap); err != nil {
			e.log.Warn("persisting catalog: %v", err)
		}
	}
}

// IsLoaded reports whether a catalog snapshot is available.
func (e *Engine) IsLoaded() bool {
	return e.store.Loaded()
}

// AllRecipes returns every record of the current snapshot in catalog
// order, or nil before the first load.
func (e *Engine) AllRecipes() []domain.RecipeRecord {
	snap := e.store.Snapshot()
	if snap == nil {
		return nil
	}
	return snap.Recipes
}

// Search answers a free-text query over the current snapshot, ranked
// by match tier. An empty query returns the whole catalog.
func (e *Engine) Search(q string) []domain.RecipeRecord {
	return query.Search(e.AllRecipes(), q)
}

// FilterByTags returns the records carrying every selected tag.
func (e *Engine) FilterByTags(tags []string) []domain.RecipeRecord {
	return query.FilterByTags(e.AllRecipes(), tags)
}

// Sort returns recs in the given order without mutating them.
func (e *Engine) Sort(recs []domain.RecipeRecord, order domain.SortOrder) []domain.RecipeRecord {
	return query.Sort(recs, order)
}

// Tags returns the distinct tag universe of the current snapshot.
func (e *Engine) Tags() []string {
	return query.Tags(e.AllRecipes())
}

// OnCatalogLoaded registers a callback fired after every snapshot
// swap, including background refreshes.
func (e *Engine) OnCatalogLoaded(fn func()) {
	e.store.OnLoaded(fn)
}

// NextToken issues a request token for stale-response suppression.
func (e *Engine) NextToken() uint64 {
	return e.tokens.Next()
}

// IsCurrent reports whether tok is still the latest request.
func (e *Engine) IsCurrent(tok uint64) bool {
	return e.tokens.IsCurrent(tok)
}
