package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/ledger"
	"github.com/vovakirdan/snake-arcade/internal/record"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

// screenKind is the screen an AppModel currently shows.
type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScoreboard
)

// AppConfig configures an AppModel.
type AppConfig struct {
	Config        config.SnakeConfig
	Selection     MenuSelection // preselected menu values
	Name          string
	Recorder      *record.Recorder
	Logger        *log.Logger
	ScreenshotDir string
	Width         int
	Height        int
}

// AppModel manages the full session flow: menu -> game -> menu, plus the
// scoreboard. It is the top-level model of `snake menu` and of every SSH
// session.
type AppModel struct {
	cfg        AppConfig
	screen     screenKind
	menu       MenuModel
	game       *GameModel
	scoreboard ScoreboardModel
	err        string
	quitting   bool
}

// NewAppModel creates a session starting at the menu.
func NewAppModel(cfg AppConfig) AppModel {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return AppModel{
		cfg:  cfg,
		menu: NewMenuModel(cfg.Selection, cfg.Width, cfg.Height),
	}
}

// Init initializes the session.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the current screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Width = wsm.Width
		m.cfg.Height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.screen = screenScoreboard
		m.scoreboard = NewScoreboardModel(m.scoreLedger(), m.historyStore(), m.cfg.Logger, m.cfg.Width, m.cfg.Height)
		m.menu = NewMenuModel(m.menu.Selection(), m.cfg.Width, m.cfg.Height)
		return m, m.scoreboard.Init()
	}

	if sel := m.menu.Selected(); sel != nil {
		m.cfg.Selection = *sel
		game, err := NewGameModel(GameConfig{
			Options:       sel.Options(m.cfg.Config),
			Name:          m.cfg.Name,
			Recorder:      m.cfg.Recorder,
			Logger:        m.cfg.Logger,
			Embedded:      true,
			ScreenshotDir: m.cfg.ScreenshotDir,
		})
		m.menu = NewMenuModel(*sel, m.cfg.Width, m.cfg.Height)
		if err != nil {
			m.cfg.Logger.Error("cannot start match", "err", err)
			m.err = err.Error()
			return m, nil
		}

		m.err = ""
		m.game = &game
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.screen = screenMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m AppModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.screen = screenMenu
		return m, nil
	}
	return m, cmd
}

// View renders the current view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScoreboard:
		return m.scoreboard.View()
	}

	if m.err != "" {
		return m.menu.View() + "\n" + noticeStyle.Render(centerText(m.err, m.cfg.Width)) + "\n"
	}
	return m.menu.View()
}

func (m AppModel) scoreLedger() *ledger.Ledger {
	if m.cfg.Recorder == nil {
		return nil
	}
	return m.cfg.Recorder.Ledger
}

func (m AppModel) historyStore() *storage.Store {
	if m.cfg.Recorder == nil {
		return nil
	}
	return m.cfg.Recorder.Store
}
