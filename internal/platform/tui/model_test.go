package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/engine"
	"github.com/vovakirdan/snake-arcade/internal/ledger"
	"github.com/vovakirdan/snake-arcade/internal/record"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
}

func newTestGame(t *testing.T, players int, rec *record.Recorder) GameModel {
	t.Helper()
	m, err := NewGameModel(GameConfig{
		Options: engine.Options{
			Mode:       config.ModeClassic,
			Difficulty: config.DifficultyMedium,
			Players:    players,
			Seed:       42,
		},
		Name:          "tester",
		Recorder:      rec,
		Logger:        quietLogger(),
		ScreenshotDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("NewGameModel() error = %v", err)
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m tea.Model, keys ...string) tea.Model {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(keyMsg(k))
	}
	return m
}

func TestNewGameModelRejectsBadOptions(t *testing.T) {
	_, err := NewGameModel(GameConfig{Options: engine.Options{
		Mode:       config.ModeClassic,
		Difficulty: config.DifficultyMedium,
		Players:    3,
	}})
	if err == nil {
		t.Error("NewGameModel() with 3 players: expected error")
	}
}

func TestGameModelSteering(t *testing.T) {
	tests := []struct {
		name    string
		players int
		key     string
		player  engine.PlayerID
		want    engine.Direction
	}{
		{"wasd steers P1", 1, "s", engine.Player1, engine.DirDown},
		{"arrows steer P1 alone", 1, "up", engine.Player1, engine.DirUp},
		{"arrows steer P2", 2, "down", engine.Player2, engine.DirDown},
		{"wasd still P1 in two-player", 2, "w", engine.Player1, engine.DirUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, newTestGame(t, tt.players, nil), tt.key).(GameModel)
			got := m.session.Snake(tt.player).NextDir()
			if got != tt.want {
				t.Errorf("NextDir() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestGameModelPause(t *testing.T) {
	m := press(t, newTestGame(t, 1, nil), "p").(GameModel)
	if !m.Snapshot().Paused {
		t.Fatal("expected paused after p")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View() missing pause banner")
	}

	m = press(t, m, "p").(GameModel)
	if m.Snapshot().Paused {
		t.Error("expected running after second p")
	}
}

func TestGameModelTickSteps(t *testing.T) {
	m := newTestGame(t, 1, nil)
	start := m.now

	next, cmd := m.Update(TickMsg(start.Add(time.Duration(m.session.Speed()) * time.Millisecond)))
	if cmd == nil {
		t.Error("Update(TickMsg) should schedule the next tick")
	}
	if got := next.(GameModel).Snapshot().Tick; got != 1 {
		t.Errorf("Tick = %d, expected 1", got)
	}

	// Too early for a second step.
	next, _ = next.Update(TickMsg(start.Add(time.Duration(m.session.Speed()+1) * time.Millisecond)))
	if got := next.(GameModel).Snapshot().Tick; got != 1 {
		t.Errorf("Tick = %d, expected 1", got)
	}
}

func TestGameModelQuitAndRestart(t *testing.T) {
	m := press(t, newTestGame(t, 1, nil), "q").(GameModel)
	if !m.Snapshot().Over {
		t.Fatal("expected game over after q")
	}
	if m.phase != phaseFinished {
		t.Errorf("phase = %v, expected finished", m.phase)
	}
	if m.IsQuitting() {
		t.Error("first q should end the match, not the program")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("View() missing game over banner")
	}

	m = press(t, m, "r").(GameModel)
	if m.Snapshot().Over {
		t.Error("expected a fresh match after r")
	}
	if m.phase != phasePlaying {
		t.Errorf("phase = %v, expected playing", m.phase)
	}
}

func TestGameModelQuitAfterGameOver(t *testing.T) {
	m := press(t, newTestGame(t, 1, nil), "q")
	m, cmd := m.Update(keyMsg("q"))
	if !m.(GameModel).IsQuitting() {
		t.Error("expected quitting after second q")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
}

func TestGameModelEmbeddedBack(t *testing.T) {
	m := newTestGame(t, 1, nil)
	m.cfg.Embedded = true

	next := press(t, m, "q", "b").(GameModel)
	if !next.BackToMenu() {
		t.Error("expected BackToMenu() after b on game over")
	}
	if next.IsQuitting() {
		t.Error("embedded model should not quit the program")
	}
}

func TestGameModelRecordsOnce(t *testing.T) {
	l := ledger.Open(filepath.Join(t.TempDir(), "top_scores"), quietLogger())
	rec := &record.Recorder{Ledger: l, Logger: quietLogger()}

	// A zero score is recorded straight away, without a name prompt.
	m := press(t, newTestGame(t, 1, rec), "q", "q").(GameModel)
	if m.phase != phaseFinished {
		t.Errorf("phase = %v, expected finished", m.phase)
	}
	entries := l.Entries()
	if len(entries) != 1 {
		t.Fatalf("ledger has %d entries, expected 1", len(entries))
	}
	if entries[0].Name != "tester" {
		t.Errorf("Name = %q, expected %q", entries[0].Name, "tester")
	}
	if m.Result().Rank != 1 {
		t.Errorf("Rank = %d, expected 1", m.Result().Rank)
	}
}

func TestGameModelNameEntry(t *testing.T) {
	l := ledger.Open(filepath.Join(t.TempDir(), "top_scores"), quietLogger())
	rec := &record.Recorder{Ledger: l, Logger: quietLogger()}

	m := newTestGame(t, 1, rec)
	m.phase = phaseNaming
	m.input.SetValue("")
	m.input.Focus()

	next := press(t, m, "a", "c", "e", "enter").(GameModel)
	if next.phase != phaseFinished {
		t.Fatalf("phase = %v, expected finished", next.phase)
	}
	entries := l.Entries()
	if len(entries) != 1 || entries[0].Name != "ace" {
		t.Errorf("Entries() = %+v, expected one entry named ace", entries)
	}
}

func TestGameModelInterruptWhileNaming(t *testing.T) {
	l := ledger.Open(filepath.Join(t.TempDir(), "top_scores"), quietLogger())
	rec := &record.Recorder{Ledger: l, Logger: quietLogger()}

	m := newTestGame(t, 1, rec)
	m.session.Quit()
	m.phase = phaseNaming
	m.input.SetValue("half typed")
	m.input.Focus()

	next := press(t, m, "ctrl+c").(GameModel)
	if !next.IsQuitting() {
		t.Error("IsQuitting() = false after ctrl+c")
	}
	entries := l.Entries()
	if len(entries) != 1 || entries[0].Name != "tester" {
		t.Errorf("Entries() = %+v, expected one entry named tester", entries)
	}
}

func TestGameModelScreenshot(t *testing.T) {
	m := newTestGame(t, 1, nil)
	m = press(t, m, "ctrl+s").(GameModel)

	files, err := os.ReadDir(m.cfg.ScreenshotDir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d screenshots, expected 1", len(files))
	}
	data, err := os.ReadFile(filepath.Join(m.cfg.ScreenshotDir, files[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "@") {
		t.Error("screenshot missing snake head")
	}
	if !strings.HasPrefix(m.notice, "Screenshot saved") {
		t.Errorf("notice = %q", m.notice)
	}
}
