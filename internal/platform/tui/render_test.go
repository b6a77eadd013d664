package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/registry"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q", want)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("colorStyles missing %v", c)
		}
	}
}

func TestKeyMapper(t *testing.T) {
	tests := []struct {
		name    string
		players int
		msg     tea.KeyMsg
		want    core.PlayerAction
		ok      bool
	}{
		{"w is P1 up", 2, keyMsg("w"), core.PlayerAction{Player: 1, Action: core.ActionUp}, true},
		{"arrow is P1 alone", 1, keyMsg("left"), core.PlayerAction{Player: 1, Action: core.ActionLeft}, true},
		{"arrow is P2 together", 2, keyMsg("left"), core.PlayerAction{Player: 2, Action: core.ActionLeft}, true},
		{"pause", 1, keyMsg("p"), core.PlayerAction{Action: core.ActionPause}, true},
		{"esc quits", 1, keyMsg("esc"), core.PlayerAction{Action: core.ActionQuit}, true},
		{"screenshot", 1, keyMsg("ctrl+s"), core.PlayerAction{Action: core.ActionScreenshot}, true},
		{"unbound", 1, keyMsg("x"), core.PlayerAction{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewKeyMapper(tt.players).MapKey(tt.msg)
			if ok != tt.ok || got != tt.want {
				t.Errorf("MapKey() = %v, %v, expected %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"j", MenuActionDown},
		{"a", MenuActionLeft},
		{"l", MenuActionRight},
		{"enter", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
		{"z", MenuActionNone},
	}
	for _, tt := range tests {
		if got := MapKeyToMenuAction(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.key, got, tt.want)
		}
	}
}

func TestGameKeyMapHelp(t *testing.T) {
	single := NewGameKeyMap(1)
	if single.P2.Enabled() {
		t.Error("P2 binding should be disabled in single player")
	}
	if single.Restart.Enabled() {
		t.Error("Restart should start disabled")
	}

	duo := NewGameKeyMap(2)
	if !duo.P2.Enabled() {
		t.Error("P2 binding should be enabled in two-player")
	}
	if got := duo.P1.Help().Key; got != "wasd" {
		t.Errorf("P1 help key = %q, expected %q", got, "wasd")
	}
}

func TestFrontendRegistered(t *testing.T) {
	f, err := registry.Create("tui")
	if err != nil {
		t.Fatalf("Create(tui) error = %v", err)
	}
	if f.ID() != "tui" {
		t.Errorf("ID() = %q, expected %q", f.ID(), "tui")
	}
}
