// Package tui provides the terminal browsing surface using Bubble Tea.
//
// It is the binding layer between the user and the discovery engine:
// keystrokes become debounced queries, alt+digit toggles tag filters,
// and scrolling near the bottom of the materialized window grows it a
// page at a time. All query evaluation is synchronous and cheap; the
// only async points are the debounce timer and the short grow-staging
// delay.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/dishdex/internal/catalog"
	"github.com/hammamikhairi/dishdex/internal/domain"
	"github.com/hammamikhairi/dishdex/internal/logger"
	"github.com/hammamikhairi/dishdex/internal/pager"
	"github.com/hammamikhairi/dishdex/internal/query"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd")).
			Bold(true)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	tagOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Italic(true)
)

// ── UI ───────────────────────────────────────────────────────────

// UI wires the Bubble Tea program to the engine.
//
// Call [New] then [UI.Run] (blocking). [UI.WaitReady] unblocks once
// the event loop is running; the engine should only be started after
// that so catalog-swap notifications always have a live program to
// land in.
type UI struct {
	engine  *catalog.Engine
	program *tea.Program
	readyCh chan struct{}
	log     *logger.Logger

	pageSize  int
	debounce  time.Duration
	growDelay time.Duration
}

// New creates the UI for the given engine.
func New(eng *catalog.Engine, pageSize int, debounce, growDelay time.Duration, log *logger.Logger) *UI {
	return &UI{
		engine:    eng,
		readyCh:   make(chan struct{}),
		log:       log,
		pageSize:  pageSize,
		debounce:  debounce,
		growDelay: growDelay,
	}
}

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// Run starts the event loop. Blocks until quit.
func (u *UI) Run() error {
	ti := textinput.New()
	ti.Prompt = "search> "
	ti.PromptStyle = promptStyle
	ti.Focus()
	ti.CharLimit = 120
	ti.Width = 40 // updated on first WindowSizeMsg

	m := model{
		engine:    u.engine,
		log:       u.log,
		input:     ti,
		pager:     pager.New(u.pageSize),
		sortOrder: domain.SortDefault,
		selected:  make(map[string]bool),
		debounce:  u.debounce,
		growDelay: u.growDelay,
		readyCh:   u.readyCh,
	}

	u.program = tea.NewProgram(m, tea.WithAltScreen())

	// Repaint whenever a snapshot swap lands, including the
	// background stale-while-revalidate refresh.
	u.engine.OnCatalogLoaded(func() {
		u.program.Send(catalogLoadedMsg{})
	})

	_, err := u.program.Run()
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	engine *catalog.Engine
	log    *logger.Logger

	input     textinput.Model
	pager     *pager.Pager
	sortOrder domain.SortOrder

	tags     []string        // tag universe, display order
	selected map[string]bool // toggled tag filters

	results []domain.RecipeRecord
	cursor  int

	lastQuery string // last evaluated query, to skip no-op debounces

	debounce  time.Duration
	growDelay time.Duration

	width  int
	height int

	readyCh chan struct{}
}

// Messages.
type (
	catalogLoadedMsg struct{}
	debounceMsg      struct{ token uint64 }
	growDoneMsg      struct{}
)

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		signalReady(m.readyCh),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		const promptLen = 8
		if msg.Width > promptLen {
			m.input.Width = msg.Width - promptLen
		}
		return m, nil

	case catalogLoadedMsg:
		m.tags = m.engine.Tags()
		m.recompute()
		return m, nil

	case debounceMsg:
		// A newer keystroke supersedes this evaluation; drop it.
		if !m.engine.IsCurrent(msg.token) {
			return m, nil
		}
		if m.input.Value() == m.lastQuery {
			return m, nil
		}
		m.recompute()
		return m, nil

	case growDoneMsg:
		m.pager.CompleteGrow()
		return m, nil
	}

	return m.updateInput(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Alt+digit toggles the nth tag filter without touching the
	// search input.
	if msg.Alt && len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9' {
		m.toggleTag(int(msg.Runes[0] - '1'))
		return m, nil
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		// Clear-filters affordance: query, tags, selection.
		m.input.Reset()
		m.selected = make(map[string]bool)
		m.recompute()
		return m, nil

	case tea.KeyCtrlS:
		if m.sortOrder == domain.SortDefault {
			m.sortOrder = domain.SortAlphabetical
		} else {
			m.sortOrder = domain.SortDefault
		}
		m.recompute()
		return m, nil

	case tea.KeyCtrlR:
		// Explicit reload. The swap notification repaints when it
		// lands, so the command has nothing to report.
		eng := m.engine
		return m, func() tea.Msg {
			eng.Refresh(context.Background())
			return nil
		}

	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case tea.KeyDown:
		if m.cursor < m.pager.Window()-1 {
			m.cursor++
		}
		return m.maybeGrow()
	}

	return m.updateInput(msg)
}

// updateInput feeds a message to the text input and schedules a
// debounced evaluation when the query text changed.
func (m model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() == before {
		return m, cmd
	}

	// Each edit takes a fresh token; only the latest token's timer
	// is allowed to evaluate.
	token := m.engine.NextToken()
	debounced := tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return debounceMsg{token: token}
	})
	return m, tea.Batch(cmd, debounced)
}

// maybeGrow fires the viewport proximity signal when the cursor is
// within two rows of the window's end.
func (m model) maybeGrow() (tea.Model, tea.Cmd) {
	if m.cursor < m.pager.Window()-2 {
		return m, nil
	}
	if !m.pager.NearEnd() {
		return m, nil
	}
	grow := tea.Tick(m.growDelay, func(time.Time) tea.Msg {
		return growDoneMsg{}
	})
	return m, grow
}

// recompute re-evaluates the search → filter → sort pipeline against
// the current snapshot and resets pagination to the first page.
func (m *model) recompute() {
	recs := m.engine.Search(m.input.Value())
	recs = query.FilterByTags(recs, m.selectedTags())
	recs = query.Sort(recs, m.sortOrder)

	m.results = recs
	m.lastQuery = m.input.Value()
	m.pager.Reset(len(recs))
	if m.cursor >= m.pager.Window() {
		m.cursor = 0
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) toggleTag(i int) {
	if i < 0 || i >= len(m.tags) {
		return
	}
	tag := m.tags[i]
	if m.selected[tag] {
		delete(m.selected, tag)
	} else {
		m.selected[tag] = true
	}
	m.recompute()
}

func (m *model) selectedTags() []string {
	var out []string
	for _, t := range m.tags {
		if m.selected[t] {
			out = append(out, t)
		}
	}
	return out
}

// ── View ─────────────────────────────────────────────────────────

func (m model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(" DishDex "))
	if m.engine.IsLoaded() {
		b.WriteString(countStyle.Render(fmt.Sprintf(" %d recipes", len(m.engine.AllRecipes()))))
	} else {
		b.WriteString(loadingStyle.Render(" loading recipes…"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if len(m.tags) > 0 {
		b.WriteString(m.renderTagRow())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderResults())
	b.WriteString("\n")

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m model) renderTagRow() string {
	var parts []string
	for i, t := range m.tags {
		if i >= 9 {
			break
		}
		label := fmt.Sprintf("%d:%s", i+1, t)
		if m.selected[t] {
			parts = append(parts, tagOnStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, tagStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m model) renderResults() string {
	if !m.engine.IsLoaded() {
		return hintStyle.Render("  fetching the catalog…")
	}
	if len(m.results) == 0 {
		return emptyStyle.Render("  No matching recipes.") + "\n" +
			hintStyle.Render("  esc clears the search and filters.")
	}

	var b strings.Builder
	window := m.pager.Window()
	for i := 0; i < window && i < len(m.results); i++ {
		r := m.results[i]
		line := r.Title
		if len(r.Tags) > 0 {
			line += "  " + tagStyle.Render(strings.Join(r.Tags, ", "))
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(titleStyle.Render("  " + line))
		}
		b.WriteByte('\n')
	}
	if m.pager.Loading() {
		b.WriteString(loadingStyle.Render("  …"))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m model) renderFooter() string {
	shown := m.pager.Window()
	if shown > len(m.results) {
		shown = len(m.results)
	}
	status := fmt.Sprintf("showing %d of %d", shown, len(m.results))
	help := "alt+1..9 tags · ctrl+s sort (" + string(m.sortOrder) + ") · ctrl+r reload · esc clear · ctrl+c quit"
	return countStyle.Render(" "+status) + "\n" + hintStyle.Render(" "+help)
}
