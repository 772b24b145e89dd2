package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	puzzle "github.com/vovakirdan/tui-breach/internal/games/breach/core"
	"github.com/vovakirdan/tui-breach/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 100 // Minimum width to show the summary sidebar
	sidebarWidth       = 26  // Width of the summary sidebar
	maxRows            = 100 // Max rows to load per view
)

// HistoryView selects which table the history screen shows.
type HistoryView int

const (
	ViewRecent HistoryView = iota
	ViewHighScores
)

var historyViewTitles = []string{"Recent runs", "High scores"}

// failureReasons fixes the order failures are listed in the sidebar.
var failureReasons = []puzzle.Reason{
	puzzle.ReasonBufferExhausted,
	puzzle.ReasonTimeExpired,
	puzzle.ReasonUserCancelled,
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "switch view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "previous view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the results history screen.
type HistoryModel struct {
	store       *storage.Store
	view        HistoryView
	results     []storage.ResultEntry
	scores      []storage.ScoreEntry
	stats       storage.ResultStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show the summary sidebar
}

// NewHistoryModel creates a new history model. store may be nil.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:       store,
		view:        ViewRecent,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.load()
	m.table = m.createTable()
	m.updateTableRows()

	return m
}

// load reads results, scores and stats from the store.
func (m *HistoryModel) load() {
	if m.store == nil {
		return
	}
	var err error
	if m.results, err = m.store.RecentResults(maxRows); err != nil {
		m.loadErr = err
		return
	}
	if m.scores, err = m.store.TopScores(storage.GameID, maxRows); err != nil {
		m.loadErr = err
		return
	}
	if m.stats, err = m.store.Stats(); err != nil {
		m.loadErr = err
	}
}

// columns returns the table columns for the current view.
func (m *HistoryModel) columns() []table.Column {
	if m.view == ViewHighScores {
		return []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 18},
		}
	}
	return []table.Column{
		{Title: "Date", Width: 13},
		{Title: "Result", Width: 8},
		{Title: "Reason", Width: 17},
		{Title: "Seqs", Width: 5},
		{Title: "Buffer", Width: 7},
		{Title: "Left", Width: 6},
		{Title: "Level", Width: 7},
		{Title: "Score", Width: 6},
	}
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded data for the current view.
func (m *HistoryModel) updateTableRows() {
	var rows []table.Row

	switch m.view {
	case ViewHighScores:
		rows = make([]table.Row, len(m.scores))
		for i, s := range m.scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	default:
		rows = make([]table.Row, len(m.results))
		for i, r := range m.results {
			rows[i] = ResultRow(r)
		}
	}

	m.table.SetRows(rows)
	m.table.GotoTop()
}

// ResultRow formats one stored result for the recent-runs table.
func ResultRow(r storage.ResultEntry) table.Row {
	o := r.Outcome
	result := "FAIL"
	if o.Success {
		result = "OK"
	}
	reason := string(o.Reason)
	if reason == "" {
		reason = "-"
	}
	return table.Row{
		r.CreatedAt.Format("Jan 02 15:04"),
		result,
		reason,
		fmt.Sprintf("%d/%d", o.SequencesCompleted, o.SequenceCount),
		fmt.Sprintf("%d/%d", o.BufferUsed, o.BufferCapacity),
		fmt.Sprintf("%.0fs", o.TimeRemaining.Seconds()),
		r.Difficulty,
		fmt.Sprintf("%d", r.Score),
	}
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView), key.Matches(msg, m.keys.PrevView):
			// Two views, so both directions toggle
			m.view = (m.view + 1) % HistoryView(len(historyViewTitles))
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("BREACH HISTORY - %s", historyViewTitles[m.view])
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the aggregated stats next to the table.
func (m HistoryModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Summary\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Played     %d\n", m.stats.Played))
	sb.WriteString(fmt.Sprintf("Breached   %d\n", m.stats.Succeeded))
	sb.WriteString(fmt.Sprintf("Rate       %.0f%%\n", m.stats.SuccessRate()*100))
	sb.WriteString(fmt.Sprintf("Best       %d\n", m.stats.BestScore))
	for _, reason := range failureReasons {
		if n := m.stats.ByReason[reason]; n > 0 {
			sb.WriteString(fmt.Sprintf("%-16s %d\n", reason, n))
		}
	}

	return sidebarStyle.Render(sb.String())
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render(fmt.Sprintf("Cannot load history:\n%v", m.loadErr))
	}
	if len(m.table.Rows()) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nPlay a puzzle to fill the history!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to the picker.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen.
// Returns true if user wants to go back to the picker, false if quitting.
func RunHistory(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
