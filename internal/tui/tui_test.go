package tui

import (
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/dishdex/internal/catalog"
	"github.com/hammamikhairi/dishdex/internal/domain"
	"github.com/hammamikhairi/dishdex/internal/logger"
	"github.com/hammamikhairi/dishdex/internal/pager"
)

type fixtureLoader struct {
	snap *domain.CatalogSnapshot
}

func (f fixtureLoader) Load(ctx context.Context) *domain.CatalogSnapshot {
	return f.snap
}

func fixtureRecords() []domain.RecipeRecord {
	return []domain.RecipeRecord{
		{Title: "Roasted Cauliflower", Slug: "roasted-cauliflower", Tags: []string{"vegan"}, SearchTerms: "roasted cauliflower vegan recipe"},
		{Title: "Roasted Chicken", Slug: "roasted-chicken", Tags: []string{"meat"}, SearchTerms: "roasted chicken meat recipe"},
		{Title: "Beef Chili", Slug: "beef-chili", Tags: []string{"meat"}, SearchTerms: "beef chili meat recipe"},
		{Title: "Pad Thai", Slug: "pad-thai", Tags: []string{"asian"}, SearchTerms: "pad thai asian recipe"},
		{Title: "Shakshuka", Slug: "shakshuka", Tags: []string{"breakfast"}, SearchTerms: "shakshuka breakfast recipe"},
		{Title: "Guacamole", Slug: "guacamole", Tags: []string{"vegan"}, SearchTerms: "guacamole vegan recipe"},
		{Title: "Miso Soup", Slug: "miso-soup", Tags: []string{"asian"}, SearchTerms: "miso soup asian recipe"},
	}
}

func newTestModel(t *testing.T, pageSize int) (model, *catalog.Engine) {
	t.Helper()

	snap := &domain.CatalogSnapshot{Recipes: fixtureRecords(), LoadedAt: time.Now()}
	eng := catalog.New(fixtureLoader{snap: snap}, nil, logger.New(logger.LevelOff, nil),
		catalog.WithMinCatalogSize(1))
	eng.Start(context.Background())

	ti := textinput.New()
	ti.Focus()

	m := model{
		engine:    eng,
		log:       logger.New(logger.LevelOff, nil),
		input:     ti,
		pager:     pager.New(pageSize),
		sortOrder: domain.SortDefault,
		selected:  make(map[string]bool),
		debounce:  time.Millisecond,
		growDelay: time.Millisecond,
		readyCh:   make(chan struct{}),
	}

	updated, _ := m.Update(catalogLoadedMsg{})
	return updated.(model), eng
}

func TestCatalogLoadedPopulatesResults(t *testing.T) {
	m, _ := newTestModel(t, 3)

	if len(m.results) != 7 {
		t.Fatalf("expected all records after load, got %d", len(m.results))
	}
	if m.pager.Window() != 3 {
		t.Fatalf("window = %d, want page size 3", m.pager.Window())
	}
	if len(m.tags) == 0 {
		t.Fatal("tag universe not populated")
	}
}

func TestDebouncedQueryEvaluation(t *testing.T) {
	m, eng := newTestModel(t, 3)

	m.input.SetValue("roast")
	tok := eng.NextToken()

	updated, _ := m.Update(debounceMsg{token: tok})
	m = updated.(model)

	if len(m.results) != 2 {
		t.Fatalf("expected 2 roast matches, got %d", len(m.results))
	}
	if m.lastQuery != "roast" {
		t.Fatalf("lastQuery = %q", m.lastQuery)
	}
}

func TestStaleDebounceDropped(t *testing.T) {
	m, eng := newTestModel(t, 3)

	m.input.SetValue("roast")
	stale := eng.NextToken()
	eng.NextToken() // a newer keystroke supersedes it

	updated, _ := m.Update(debounceMsg{token: stale})
	m = updated.(model)

	if len(m.results) != 7 {
		t.Fatalf("stale debounce evaluated: got %d results", len(m.results))
	}
}

func TestScrollNearEndGrowsWindow(t *testing.T) {
	m, _ := newTestModel(t, 3)

	// Move the cursor within two rows of the window's end.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(model)

	if cmd == nil {
		t.Fatal("expected a staged grow command")
	}
	if !m.pager.Loading() {
		t.Fatal("pager did not enter loading")
	}

	updated, _ = m.Update(growDoneMsg{})
	m = updated.(model)

	if m.pager.Window() != 6 {
		t.Fatalf("window = %d after grow, want 6", m.pager.Window())
	}
	if m.pager.Loading() {
		t.Fatal("pager stuck in loading after grow completed")
	}
}

func TestAltDigitTogglesTagFilter(t *testing.T) {
	m, _ := newTestModel(t, 12)

	// Tags sort alphabetically: asian is first.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}, Alt: true})
	m = updated.(model)

	if len(m.results) != 2 {
		t.Fatalf("expected 2 asian records, got %d: %+v", len(m.results), m.results)
	}
	for _, r := range m.results {
		if !r.HasTag("asian") {
			t.Fatalf("record %s missing toggled tag", r.Slug)
		}
	}

	// Toggling again removes the filter.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}, Alt: true})
	m = updated.(model)

	if len(m.results) != 7 {
		t.Fatalf("expected full catalog after untoggle, got %d", len(m.results))
	}
}

func TestEscClearsQueryAndFilters(t *testing.T) {
	m, eng := newTestModel(t, 12)

	m.input.SetValue("roast")
	updated, _ := m.Update(debounceMsg{token: eng.NextToken()})
	m = updated.(model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}, Alt: true})
	m = updated.(model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(model)

	if m.input.Value() != "" {
		t.Fatalf("query not cleared: %q", m.input.Value())
	}
	if len(m.selectedTags()) != 0 {
		t.Fatalf("tag filters not cleared: %v", m.selectedTags())
	}
	if len(m.results) != 7 {
		t.Fatalf("expected full catalog after clear, got %d", len(m.results))
	}
}

func TestSortToggle(t *testing.T) {
	m, _ := newTestModel(t, 12)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = updated.(model)

	if m.sortOrder != domain.SortAlphabetical {
		t.Fatalf("sort order = %s, want alphabetical", m.sortOrder)
	}
	if m.results[0].Title != "Beef Chili" {
		t.Fatalf("results not alphabetical: first is %s", m.results[0].Title)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = updated.(model)

	if m.sortOrder != domain.SortDefault {
		t.Fatalf("sort order = %s, want default", m.sortOrder)
	}
}

func TestTypingSchedulesDebounce(t *testing.T) {
	m, _ := newTestModel(t, 12)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(model)

	if cmd == nil {
		t.Fatal("expected a debounce command after an edit")
	}
	// The results are untouched until the debounce fires.
	if len(m.results) != 7 {
		t.Fatalf("results changed before debounce: %d", len(m.results))
	}
}
