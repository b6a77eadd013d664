package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/engine"
	"github.com/vovakirdan/snake-arcade/internal/ledger"
	"github.com/vovakirdan/snake-arcade/internal/record"
	"github.com/vovakirdan/snake-arcade/internal/scene"
)

// phase is where a GameModel is in a match's lifecycle.
type phase int

const (
	phasePlaying phase = iota
	phaseNaming        // score placed in the ledger, asking for a name
	phaseFinished
)

var (
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// GameConfig configures a GameModel.
type GameConfig struct {
	Options  engine.Options
	Name     string
	Recorder *record.Recorder
	Logger   *log.Logger
	// Embedded models hand control back instead of quitting the program.
	Embedded bool
	// ScreenshotDir defaults to ~/.snake/screenshots.
	ScreenshotDir string
}

// GameModel is the Bubble Tea model for one match and its restarts.
type GameModel struct {
	cfg      GameConfig
	session  *engine.Session
	pacer    engine.Pacer
	screen   *core.Screen
	keyMap   *KeyMapper
	bindings GameKeyMap
	help     help.Model
	input    textinput.Model
	logger   *log.Logger

	phase      phase
	result     record.Result
	notice     string
	now        time.Time
	quitting   bool
	backToMenu bool
}

// NewGameModel creates the session and the model that presents it.
func NewGameModel(cfg GameConfig) (GameModel, error) {
	session, err := engine.NewSession(cfg.Options)
	if err != nil {
		return GameModel{}, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	input := textinput.New()
	input.Placeholder = ledger.DefaultName
	input.CharLimit = ledger.MaxNameLength
	input.Width = ledger.MaxNameLength + 1
	input.Prompt = "Name: "

	m := GameModel{
		cfg:      cfg,
		session:  session,
		screen:   core.NewScreen(1, 1),
		keyMap:   NewKeyMapper(cfg.Options.Players),
		bindings: NewGameKeyMap(cfg.Options.Players),
		help:     help.New(),
		input:    input,
		logger:   logger,
		now:      time.Now(),
	}
	m.pacer.Reset(m.now)
	return m, nil
}

// Init starts the loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(engine.LoopInterval)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleTick steps the session when the pacer says so. Ticks keep running
// while paused or over so the screen stays live.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.now = now
	if m.quitting || m.backToMenu {
		return m, nil
	}

	if m.phase == phasePlaying && m.pacer.Due(now, m.session.Speed(), m.session.Paused()) {
		res := m.session.Step()
		m.logEvents(res.Events)
		if m.session.Over() {
			m = m.finish()
		}
	}

	return m, tickCmd(engine.LoopInterval)
}

func (m GameModel) logEvents(events []engine.Event) {
	for _, e := range events {
		switch e.Kind {
		case engine.EventLevelUp:
			m.logger.Debug("level up", "level", e.Level)
		case engine.EventLifeLost:
			m.logger.Debug("life lost", "player", e.Player, "cause", e.Cause)
		case engine.EventPowerUpCollected:
			m.logger.Debug("power-up", "player", e.Player, "kind", e.PowerUp)
		}
	}
}

// finish moves a just-ended match to name entry or records it directly.
func (m GameModel) finish() GameModel {
	m.bindings.Restart.SetEnabled(true)
	m.bindings.Back.SetEnabled(m.cfg.Embedded)

	score := m.session.Score()
	if m.cfg.Recorder != nil && score > 0 && m.cfg.Recorder.Qualifies(score) {
		m.phase = phaseNaming
		m.input.SetValue(m.cfg.Name)
		m.input.CursorEnd()
		m.input.Focus()
		return m
	}
	return m.record(m.cfg.Name)
}

// record files the match once.
func (m GameModel) record(name string) GameModel {
	m.phase = phaseFinished
	m.input.Blur()
	if m.cfg.Recorder == nil {
		return m
	}
	m.result = m.cfg.Recorder.Record(m.session.Snapshot(), name)
	if m.result.Rank > 0 {
		m.notice = fmt.Sprintf("New top score! Rank #%d", m.result.Rank)
	}
	return m
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		if m.phase == phasePlaying {
			m.session.Quit()
			m = m.finish()
		}
		if m.phase == phaseNaming {
			m = m.record(m.cfg.Name)
		}
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case phaseNaming:
		return m.handleNameKey(msg)
	case phaseFinished:
		return m.handleFinishedKey(msg)
	}

	pa, ok := m.keyMap.MapKey(msg)
	if !ok {
		return m, nil
	}
	if pa.Action == core.ActionScreenshot {
		m.saveScreenshot()
		return m, nil
	}
	if cmd, ok := scene.Command(pa); ok {
		m.session.Apply(cmd)
		if m.session.Over() {
			m = m.finish()
		}
	}
	return m, nil
}

func (m GameModel) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.record(m.input.Value()), nil
	case "esc":
		return m.record(m.cfg.Name), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m GameModel) handleFinishedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pa, ok := m.keyMap.MapKey(msg)
	if !ok {
		return m, nil
	}

	switch pa.Action {
	case core.ActionRestart:
		m.restart()
		m.phase = phasePlaying
		m.result = record.Result{}
		m.notice = ""
		m.bindings.Restart.SetEnabled(false)
		m.bindings.Back.SetEnabled(false)
	case core.ActionBack:
		if m.cfg.Embedded {
			m.backToMenu = true
		}
	case core.ActionQuit:
		if m.cfg.Embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
	}
	return m, nil
}

// restart begins a new match on the same session.
func (m *GameModel) restart() {
	m.session.Reset(0)
	m.now = time.Now()
	m.pacer.Reset(m.now)
}

// saveScreenshot writes the current board as plain text.
func (m *GameModel) saveScreenshot() {
	scene.Draw(m.screen, m.session.Snapshot(), m.now)

	dir := m.cfg.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("cannot resolve screenshot directory", "err", err)
			return
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "err", err)
		return
	}

	name := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.notice = "Screenshot saved to " + path
}

// View renders the board, then the name prompt or the help bar.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	scene.Draw(m.screen, m.session.Snapshot(), m.now)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	switch m.phase {
	case phaseNaming:
		b.WriteString(noticeStyle.Render("Top ten! Enter your name (enter to save, esc to skip)"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
	default:
		b.WriteString(helpStyle.Render(m.help.View(m.bindings)))
	}
	return b.String()
}

// Snapshot returns the current session state.
func (m GameModel) Snapshot() engine.Snapshot {
	return m.session.Snapshot()
}

// Result returns what recording the last match produced.
func (m GameModel) Result() record.Result {
	return m.result
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays matches in a standalone Bubble Tea program.
func Run(cfg GameConfig, opts ...tea.ProgramOption) error {
	model, err := NewGameModel(cfg)
	if err != nil {
		return err
	}

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err = tea.NewProgram(model, opts...).Run()
	return err
}
