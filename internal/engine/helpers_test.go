package engine

import (
	"testing"
	"time"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

// steppingClock returns a clock that moves 3s forward on every read, so
// consecutive foods never fall inside the combo window.
func steppingClock() func() time.Time {
	t := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(3 * time.Second)
		return t
	}
}

// quietConfig is the default config with power-up spawns disabled.
func quietConfig() config.SnakeConfig {
	cfg := config.DefaultSnakeConfig()
	cfg.Gameplay.PowerUpChance = 0
	return cfg
}

func newTestSession(t *testing.T, mode Mode, players int) *Session {
	t.Helper()
	s, err := NewSession(Options{
		Mode:       mode,
		Difficulty: config.DifficultyMedium,
		Players:    players,
		Seed:       42,
		Clock:      steppingClock(),
		Config:     quietConfig(),
	})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

// clearField moves every food into the top-left corner row so the tests
// control what lies in front of the snakes.
func clearField(s *Session) {
	for i := range s.foods {
		s.foods[i] = Food{Pos: Position{X: i, Y: 0}, Kind: FoodNormal}
	}
	s.powerUp = PowerUp{}
	s.obstacles = nil
}
