package catalog

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hammamikhairi/dishdex/internal/cache"
	"github.com/hammamikhairi/dishdex/internal/domain"
	"github.com/hammamikhairi/dishdex/internal/logger"
)

type stubLoader struct {
	snap  *domain.CatalogSnapshot
	calls atomic.Int32
}

func (s *stubLoader) Load(ctx context.Context) *domain.CatalogSnapshot {
	s.calls.Add(1)
	return s.snap
}

func snapOf(slugs ...string) *domain.CatalogSnapshot {
	recs := make([]domain.RecipeRecord, len(slugs))
	for i, s := range slugs {
		recs[i] = domain.RecipeRecord{Slug: s, Title: s}
	}
	return &domain.CatalogSnapshot{Recipes: recs, LoadedAt: time.Now()}
}

func testLog() *logger.Logger { return logger.New(logger.LevelOff, nil) }

func TestStartColdLoadsInForeground(t *testing.T) {
	ld := &stubLoader{snap: snapOf("a", "b")}
	mem := cache.NewMemory(24*time.Hour, nil)

	e := New(ld, mem, testLog(), WithMinCatalogSize(1))
	e.Start(context.Background())

	if !e.IsLoaded() {
		t.Fatal("engine not loaded after Start")
	}
	if got := e.AllRecipes(); len(got) != 2 {
		t.Fatalf("expected 2 recipes, got %d", len(got))
	}
	if ld.calls.Load() != 1 {
		t.Fatalf("loader called %d times, want 1", ld.calls.Load())
	}

	// The snapshot was persisted for the next session.
	if _, err := mem.Read(context.Background()); err != nil {
		t.Fatalf("snapshot not persisted: %v", err)
	}
}

func TestStartServesCacheWhileRevalidating(t *testing.T) {
	mem := cache.NewMemory(24*time.Hour, nil)
	cached := snapOf("old-a", "old-b")
	if err := mem.Write(context.Background(), cached); err != nil {
		t.Fatalf("seeding cache: %v", err)
	}

	fresh := snapOf("new-a", "new-b", "new-c")
	release := make(chan struct{})
	ld := &gatedLoader{snap: fresh, release: release}

	e := New(ld, mem, testLog(), WithMinCatalogSize(2))

	swaps := make(chan struct{}, 2)
	e.OnCatalogLoaded(func() { swaps <- struct{}{} })

	e.Start(context.Background())
	<-swaps // the cached snapshot swap, synchronous inside Start

	// The cached snapshot is usable immediately; the refresh is still
	// held behind the gate.
	if got := e.AllRecipes(); len(got) != 2 || got[0].Slug != "old-a" {
		t.Fatalf("expected the cached snapshot first, got %+v", got)
	}

	close(release)
	select {
	case <-swaps:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the background refresh")
	}

	if got := e.AllRecipes(); len(got) != 3 || got[0].Slug != "new-a" {
		t.Fatalf("background refresh did not land: %+v", got)
	}
}

type gatedLoader struct {
	snap    *domain.CatalogSnapshot
	release chan struct{}
}

func (g *gatedLoader) Load(ctx context.Context) *domain.CatalogSnapshot {
	<-g.release
	return g.snap
}

func TestStartIgnoresUndersizedCache(t *testing.T) {
	mem := cache.NewMemory(24*time.Hour, nil)
	if err := mem.Write(context.Background(), snapOf("only-one")); err != nil {
		t.Fatalf("seeding cache: %v", err)
	}

	ld := &stubLoader{snap: snapOf("a", "b", "c")}
	e := New(ld, mem, testLog(), WithMinCatalogSize(2))
	e.Start(context.Background())

	// The undersized cache hit is skipped; the foreground load serves.
	if got := e.AllRecipes(); len(got) != 3 {
		t.Fatalf("expected the loaded snapshot, got %+v", got)
	}
}

func TestEngineQuerySurface(t *testing.T) {
	ld := &stubLoader{snap: &domain.CatalogSnapshot{
		Recipes: []domain.RecipeRecord{
			{Title: "Roasted Cauliflower", Slug: "roasted-cauliflower", Tags: []string{"vegan"}, SearchTerms: "roasted cauliflower vegan"},
			{Title: "Beef Chili", Slug: "beef-chili", Tags: []string{"meat"}, SearchTerms: "beef chili meat"},
		},
		LoadedAt: time.Now(),
	}}

	e := New(ld, nil, testLog(), WithMinCatalogSize(1))

	if e.IsLoaded() {
		t.Fatal("engine loaded before Start")
	}
	if got := e.Search("anything"); len(got) != 0 {
		t.Fatalf("search before load should be empty, got %+v", got)
	}

	e.Start(context.Background())

	if got := e.Search("roast"); len(got) != 1 || got[0].Slug != "roasted-cauliflower" {
		t.Fatalf("search: %+v", got)
	}
	if got := e.FilterByTags([]string{"meat"}); len(got) != 1 || got[0].Slug != "beef-chili" {
		t.Fatalf("filter: %+v", got)
	}
	if got := e.Tags(); len(got) != 2 {
		t.Fatalf("tags: %v", got)
	}
	if got := e.Sort(e.AllRecipes(), domain.SortAlphabetical); got[0].Slug != "beef-chili" {
		t.Fatalf("sort: %+v", got)
	}
}

func TestRequestTokens(t *testing.T) {
	e := New(&stubLoader{snap: snapOf()}, nil, testLog())

	older := e.NextToken()
	newer := e.NextToken()

	if e.IsCurrent(older) {
		t.Fatal("superseded token still current")
	}
	if !e.IsCurrent(newer) {
		t.Fatal("latest token not current")
	}
}

func TestStoreSwapNotifiesSubscribers(t *testing.T) {
	s := NewStore()

	var fired atomic.Int32
	s.OnLoaded(func() { fired.Add(1) })
	s.OnLoaded(func() { fired.Add(1) })

	if s.Loaded() {
		t.Fatal("empty store reports loaded")
	}

	s.Swap(snapOf("a"))
	if !s.Loaded() {
		t.Fatal("store not loaded after swap")
	}
	if fired.Load() != 2 {
		t.Fatalf("expected both subscribers fired, got %d", fired.Load())
	}

	// Old snapshot references stay valid after a second swap.
	old := s.Snapshot()
	s.Swap(snapOf("b", "c"))
	if old.Len() != 1 || s.Snapshot().Len() != 2 {
		t.Fatal("swap corrupted snapshots")
	}
}
