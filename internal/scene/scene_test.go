package scene

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/engine"
)

func newSession(t *testing.T, mode config.Mode, players int) *engine.Session {
	t.Helper()
	s, err := engine.NewSession(engine.Options{
		Mode:       mode,
		Difficulty: config.DifficultyMedium,
		Players:    players,
		Seed:       99,
	})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

func TestDrawBoard(t *testing.T) {
	s := newSession(t, config.ModeArcade, 1)
	screen := core.NewScreen(1, 1)

	Draw(screen, s.Snapshot(), time.Now())

	if screen.Width() != 62 || screen.Height() != 24 {
		t.Fatalf("screen = %dx%d, expected 62x24", screen.Width(), screen.Height())
	}
	// Board origin is (1, 2); the head starts at grid (30, 10).
	if c := screen.GetCell(31, 12); c.Rune != '@' || c.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v, expected green '@'", c)
	}
	if c := screen.GetCell(30, 12); c.Rune != 'o' {
		t.Errorf("body cell = %+v, expected 'o'", c)
	}
	if screen.Get(0, 1) != '┌' || screen.Get(61, 22) != '┘' {
		t.Error("board border missing")
	}
	if !strings.HasPrefix(screen.Row(0), "Score: 0 | Level: 1 | Length: 3 | Lives: 3") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.HasPrefix(screen.Row(23), "Arcade/Medium") {
		t.Errorf("status row = %q", screen.Row(23))
	}
}

func TestDrawFoodGlyphs(t *testing.T) {
	s := newSession(t, config.ModeArcade, 1)
	snap := s.Snapshot()
	screen := core.NewScreen(1, 1)

	Draw(screen, snap, time.Now())

	for _, f := range snap.Foods {
		if got := screen.Get(f.Pos.X+1, f.Pos.Y+2); got != f.Kind.Glyph() {
			t.Errorf("food at %v drawn as %q, expected %q", f.Pos, got, f.Kind.Glyph())
		}
	}
}

func TestDrawPausedAndOver(t *testing.T) {
	s := newSession(t, config.ModeClassic, 2)
	screen := core.NewScreen(1, 1)

	s.TogglePause()
	Draw(screen, s.Snapshot(), time.Now())
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused banner missing")
	}

	s.TogglePause()
	s.Quit()
	Draw(screen, s.Snapshot(), time.Now())
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over banner missing")
	}
}

func TestHUDTwoPlayers(t *testing.T) {
	s := newSession(t, config.ModeClassic, 2)

	if got := HUD(s.Snapshot()); got != "P1: 0 | P2: 0 | Level: 1" {
		t.Errorf("HUD() = %q", got)
	}
}

func TestGameOverText(t *testing.T) {
	tests := []struct {
		name string
		snap engine.Snapshot
		want string
	}{
		{"winner", engine.Snapshot{Players: 2, Over: true, Winner: engine.Player2}, "GAME OVER - P2 wins!"},
		{"wall", engine.Snapshot{Players: 1, Over: true, Cause: engine.CauseWall, Score: 40}, "GAME OVER - hit wall - score 40"},
		{"quit", engine.Snapshot{Players: 1, Over: true, Cause: engine.CauseQuit, Score: 40}, "GAME OVER - score 40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GameOverText(tt.snap); got != tt.want {
				t.Errorf("GameOverText() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{61 * time.Second, "1:01"},
		{10*time.Minute + 5*time.Second, "10:05"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, expected %q", tt.d, got, tt.want)
		}
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		in   core.PlayerAction
		want engine.Command
		ok   bool
	}{
		{core.PlayerAction{Player: 1, Action: core.ActionUp}, engine.Turn(engine.Player1, engine.DirUp), true},
		{core.PlayerAction{Player: 2, Action: core.ActionLeft}, engine.Turn(engine.Player2, engine.DirLeft), true},
		{core.PlayerAction{Action: core.ActionPause}, engine.Command{Kind: engine.CmdPause}, true},
		{core.PlayerAction{Action: core.ActionQuit}, engine.Command{Kind: engine.CmdQuit}, true},
		{core.PlayerAction{Action: core.ActionRestart}, engine.Command{}, false},
	}

	for _, tt := range tests {
		got, ok := Command(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Command(%+v) = %+v, %v; expected %+v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
