package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/ledger"
	"github.com/vovakirdan/snake-arcade/internal/scene"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

// Scoreboard layout constants
const (
	maxHistory  = 100 // Max history rows to load
	tableMargin = 4
)

// scoreboardTab is one page of the scoreboard.
type scoreboardTab int

const (
	tabLedger scoreboardTab = iota
	tabHistory
	tabCount
)

func (t scoreboardTab) title() string {
	if t == tabHistory {
		return "History"
	}
	return "Top 10"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev tab"),
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

// ScoreboardModel shows the top-ten ledger and, when a database is open,
// the match history with per-mode stats. Like MenuModel it reports its
// outcome through IsGoingBack and IsQuitting instead of quitting itself.
type ScoreboardModel struct {
	ledger  *ledger.Ledger
	store   *storage.Store
	logger  *log.Logger
	tab     scoreboardTab
	entries []ledger.Entry
	matches []storage.MatchRecord
	stats   []*storage.ModeStats
	table   table.Model
	help    help.Model
	keys    ScoreboardKeyMap
	width   int
	height  int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over the given ledger and store.
// Either may be nil.
func NewScoreboardModel(l *ledger.Ledger, store *storage.Store, logger *log.Logger, width, height int) ScoreboardModel {
	if logger == nil {
		logger = log.Default()
	}
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		ledger: l,
		store:  store,
		logger: logger,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads the ledger and history.
func (m *ScoreboardModel) load() {
	if m.ledger != nil {
		m.entries = m.ledger.Entries()
	}
	if m.store == nil {
		return
	}

	matches, err := m.store.RecentMatches(maxHistory)
	if err != nil {
		m.logger.Warn("cannot load match history", "err", err)
	}
	m.matches = matches

	stats, err := m.store.Stats()
	if err != nil {
		m.logger.Warn("cannot load match stats", "err", err)
	}
	m.stats = sortedStats(stats)
}

// sortedStats orders stats by the menu order of modes.
func sortedStats(stats map[string]*storage.ModeStats) []*storage.ModeStats {
	order := make(map[string]int, len(config.Modes))
	for i, mode := range config.Modes {
		order[string(mode)] = i
	}

	out := make([]*storage.ModeStats, 0, len(stats))
	for _, st := range stats {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		return order[out[i].Mode] < order[out[j].Mode]
	})
	return out
}

// columns returns the columns of the current tab.
func (m *ScoreboardModel) columns() []table.Column {
	if m.tab == tabHistory {
		return []table.Column{
			{Title: "Date", Width: 13},
			{Title: "Mode", Width: 10},
			{Title: "Diff", Width: 8},
			{Title: "Name", Width: 12},
			{Title: "Score", Width: 7},
			{Title: "Lvl", Width: 4},
			{Title: "End", Width: 9},
			{Title: "Time", Width: 6},
		}
	}

	nameWidth := ledger.MaxNameLength + 1
	if m.width-tableMargin < 6+8+nameWidth+14 {
		nameWidth = 12
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Name", Width: nameWidth},
		{Title: "Date", Width: 14},
	}
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	height := m.height - 10 // header, tabs, stats and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the current tab.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	if m.tab == tabHistory {
		rows = make([]table.Row, len(m.matches))
		for i, r := range m.matches {
			end := r.EndReason
			if r.Winner != "" {
				end = r.Winner + " won"
			}
			rows[i] = table.Row{
				r.PlayedAt.Format("Jan 02 15:04"),
				config.Mode(r.Mode).Title(),
				config.Difficulty(r.Difficulty).Title(),
				r.Name,
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.Level),
				end,
				scene.FormatElapsed(time.Duration(r.Duration) * time.Second),
			}
		}
	} else {
		rows = make([]table.Row, len(m.entries))
		for i, e := range m.entries {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", e.Score),
				e.Name,
				e.Date.Format("2006-01-02"),
			}
		}
	}

	// Old rows are cleared first; they may be shorter than the new columns.
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns())
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % tabCount
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.MarginBottom(1).Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.tab == tabHistory && len(m.stats) > 0 {
		b.WriteString(m.renderStats())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, tabCount)
	for t := range tabCount {
		if t == m.tab {
			tabs[t] = activeTabStyle.Render(t.title())
		} else {
			tabs[t] = tabStyle.Render(t.title())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ScoreboardModel) renderStats() string {
	var b strings.Builder
	for _, st := range m.stats {
		line := fmt.Sprintf("%-10s %3d games  best %5d  avg %7.1f  food %5d  time %s",
			config.Mode(st.Mode).Title(), st.GamesCount, st.HighScore, st.AvgScore,
			st.TotalFood, st.TotalTime)
		b.WriteString(dimStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	empty := len(m.entries) == 0
	msg := "No scores recorded yet.\nPlay a game to set a high score!"
	if m.tab == tabHistory {
		empty = len(m.matches) == 0
		msg = "No matches recorded yet."
		if m.store == nil {
			msg = "Match history is unavailable."
		}
	}

	if empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render(msg)
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
