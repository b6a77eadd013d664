package core

import "testing"

func TestDefaultKeyScheme(t *testing.T) {
	tests := []struct {
		name    string
		players int
		key     string
		want    PlayerAction
	}{
		{"wasd single", 1, "a", PlayerAction{1, ActionLeft}},
		{"arrows single", 1, "up", PlayerAction{1, ActionUp}},
		{"wasd versus", 2, "d", PlayerAction{1, ActionRight}},
		{"arrows versus", 2, "left", PlayerAction{2, ActionLeft}},
		{"pause", 2, "p", PlayerAction{0, ActionPause}},
		{"esc quits", 1, "esc", PlayerAction{0, ActionQuit}},
		{"screenshot", 1, "ctrl+s", PlayerAction{0, ActionScreenshot}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DefaultKeyScheme(tt.players).Lookup(tt.key)
			if !ok {
				t.Fatalf("Lookup(%q) not bound", tt.key)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %+v, expected %+v", tt.key, got, tt.want)
			}
		})
	}

	if _, ok := DefaultKeyScheme(1).Lookup("z"); ok {
		t.Error("Lookup(\"z\") should not be bound")
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirection() {
			t.Errorf("%v.IsDirection() = false", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionPause, ActionQuit, ActionConfirm} {
		if a.IsDirection() {
			t.Errorf("%v.IsDirection() = true", a)
		}
	}
}
