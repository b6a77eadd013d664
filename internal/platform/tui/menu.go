package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/engine"
)

// Menu rows, top to bottom.
const (
	rowMode = iota
	rowDifficulty
	rowPlayers
	rowStart
	menuRows
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuSelection is what the player picked.
type MenuSelection struct {
	Mode       config.Mode
	Difficulty config.Difficulty
	Players    int
}

// Options converts the selection into session options.
func (s MenuSelection) Options(cfg config.SnakeConfig) engine.Options {
	return engine.Options{
		Mode:       s.Mode,
		Difficulty: s.Difficulty,
		Players:    s.Players,
		Config:     cfg,
	}
}

// MenuModel is the Bubble Tea model for the match setup screen. It never
// quits the program itself; the owner checks Selected, WantsScoreboard and
// IsQuitting after each update.
type MenuModel struct {
	modes        []config.Mode
	difficulties []config.Difficulty
	mode         int
	difficulty   int
	players      int
	cursor       int
	width        int
	height       int

	quitting       bool
	selected       *MenuSelection
	openScoreboard bool
}

// NewMenuModel creates a menu preselecting sel.
func NewMenuModel(sel MenuSelection, width, height int) MenuModel {
	m := MenuModel{
		modes:        config.Modes,
		difficulties: config.Difficulties,
		players:      1,
		width:        width,
		height:       height,
	}
	for i, mode := range m.modes {
		if mode == sel.Mode {
			m.mode = i
		}
	}
	m.difficulty = 1 // medium
	for i, d := range m.difficulties {
		if d == sel.Difficulty {
			m.difficulty = i
		}
	}
	if sel.Players == 2 {
		m.players = 2
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg), nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) MenuModel {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true

	case MenuActionUp:
		m.cursor = (m.cursor + menuRows - 1) % menuRows

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % menuRows

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionSelect:
		sel := m.Selection()
		m.selected = &sel

	case MenuActionScoreboard:
		m.openScoreboard = true
	}
	return m
}

// cycle changes the value on the current row.
func (m *MenuModel) cycle(delta int) {
	switch m.cursor {
	case rowMode:
		m.mode = wrapIndex(m.mode+delta, len(m.modes))
	case rowDifficulty:
		m.difficulty = wrapIndex(m.difficulty+delta, len(m.difficulties))
	case rowPlayers:
		m.players = 3 - m.players
	}
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

// Selection returns the current choices.
func (m MenuModel) Selection() MenuSelection {
	return MenuSelection{
		Mode:       m.modes[m.mode],
		Difficulty: m.difficulties[m.difficulty],
		Players:    m.players,
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	sel := m.Selection()
	p := sel.Difficulty.Params()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  S N A K E  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Set up a match", m.width))
	b.WriteString("\n\n")

	rows := [menuRows]string{
		fmt.Sprintf("Mode:       < %-9s >", sel.Mode.Title()),
		fmt.Sprintf("Difficulty: < %-9s >", sel.Difficulty.Title()),
		fmt.Sprintf("Players:    < %-9d >", sel.Players),
		"[ Start ]",
	}
	for i, row := range rows {
		line := centerText(row, m.width)
		if i == m.cursor {
			pad := len(line) - len(row)
			line = strings.Repeat(" ", pad) + selectedStyle.Render(row)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	info := fmt.Sprintf("%s - %dx%d grid, %d ms per move", sel.Mode.Description(), p.GridWidth, p.GridHeight, p.BaseSpeed)
	b.WriteString(dimStyle.Render(centerText(info, m.width)))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the confirmed selection, or nil if none.
func (m MenuModel) Selected() *MenuSelection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
