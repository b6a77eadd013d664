package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/ledger"
	"github.com/vovakirdan/snake-arcade/internal/record"
)

func TestMenuPreselection(t *testing.T) {
	m := NewMenuModel(MenuSelection{Mode: config.ModeFree, Difficulty: config.DifficultyHard, Players: 2}, 80, 24)
	got := m.Selection()
	want := MenuSelection{Mode: config.ModeFree, Difficulty: config.DifficultyHard, Players: 2}
	if got != want {
		t.Errorf("Selection() = %+v, expected %+v", got, want)
	}

	// Zero selection falls back to classic, medium, one player.
	got = NewMenuModel(MenuSelection{}, 80, 24).Selection()
	want = MenuSelection{Mode: config.ModeClassic, Difficulty: config.DifficultyMedium, Players: 1}
	if got != want {
		t.Errorf("Selection() = %+v, expected %+v", got, want)
	}
}

func TestMenuCycling(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want MenuSelection
	}{
		{"next mode", []string{"right"}, MenuSelection{config.ModeArcade, config.DifficultyMedium, 1}},
		{"previous mode wraps", []string{"left"}, MenuSelection{config.ModeFree, config.DifficultyMedium, 1}},
		{"difficulty row", []string{"down", "right", "right"}, MenuSelection{config.ModeClassic, config.DifficultyExtreme, 1}},
		{"players toggle", []string{"down", "down", "right"}, MenuSelection{config.ModeClassic, config.DifficultyMedium, 2}},
		{"players toggle twice", []string{"down", "down", "l", "h"}, MenuSelection{config.ModeClassic, config.DifficultyMedium, 1}},
		{"start row ignores cycling", []string{"up", "right"}, MenuSelection{config.ModeClassic, config.DifficultyMedium, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, NewMenuModel(MenuSelection{}, 80, 24), tt.keys...).(MenuModel)
			if got := m.Selection(); got != tt.want {
				t.Errorf("Selection() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestMenuOutcomes(t *testing.T) {
	m := press(t, NewMenuModel(MenuSelection{}, 80, 24), "enter").(MenuModel)
	if m.Selected() == nil {
		t.Error("expected a selection after enter")
	}

	m = press(t, NewMenuModel(MenuSelection{}, 80, 24), "tab").(MenuModel)
	if !m.WantsScoreboard() {
		t.Error("expected WantsScoreboard() after tab")
	}

	m = press(t, NewMenuModel(MenuSelection{}, 80, 24), "q").(MenuModel)
	if !m.IsQuitting() {
		t.Error("expected IsQuitting() after q")
	}
}

func TestMenuView(t *testing.T) {
	view := NewMenuModel(MenuSelection{}, 80, 24).View()
	for _, want := range []string{"S N A K E", "Classic", "Medium", "60x20"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"toolong", 4, "toolong"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func newTestApp(t *testing.T) AppModel {
	t.Helper()
	l := ledger.Open(filepath.Join(t.TempDir(), "top_scores"), quietLogger())
	return NewAppModel(AppConfig{
		Config:        config.DefaultSnakeConfig(),
		Name:          "tester",
		Recorder:      &record.Recorder{Ledger: l, Logger: quietLogger()},
		Logger:        quietLogger(),
		ScreenshotDir: t.TempDir(),
		Width:         100,
		Height:        30,
	})
}

func TestAppMenuGameMenu(t *testing.T) {
	m := press(t, newTestApp(t), "right", "enter").(AppModel)
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	if got := m.game.Snapshot().Mode; got != config.ModeArcade {
		t.Errorf("Mode = %v, expected %v", got, config.ModeArcade)
	}

	// Quit the match, then leave the game over screen.
	m = press(t, m, "q", "q").(AppModel)
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu", m.screen)
	}
	if m.quitting {
		t.Error("leaving a match should not quit the session")
	}
	if got := m.menu.Selection().Mode; got != config.ModeArcade {
		t.Errorf("menu kept Mode = %v, expected %v", got, config.ModeArcade)
	}
}

func TestAppScoreboard(t *testing.T) {
	m := press(t, newTestApp(t), "tab").(AppModel)
	if m.screen != screenScoreboard {
		t.Fatalf("screen = %v, expected scoreboard", m.screen)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("View() missing scoreboard title")
	}

	m = press(t, m, "esc").(AppModel)
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu", m.screen)
	}
}

func TestAppQuit(t *testing.T) {
	next, cmd := newTestApp(t).Update(keyMsg("q"))
	if !next.(AppModel).quitting {
		t.Error("expected quitting after q in menu")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
}
