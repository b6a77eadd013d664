package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDifficultyParams(t *testing.T) {
	tests := []struct {
		diff          Difficulty
		width, height int
		speed         int
	}{
		{DifficultyEasy, 80, 30, 200},
		{DifficultyMedium, 60, 20, 150},
		{DifficultyHard, 50, 18, 100},
		{DifficultyExtreme, 40, 15, 50},
	}

	for _, tc := range tests {
		t.Run(string(tc.diff), func(t *testing.T) {
			p := tc.diff.Params()
			if p.GridWidth != tc.width || p.GridHeight != tc.height || p.BaseSpeed != tc.speed {
				t.Errorf("Params() = %+v, expected (%d, %d, %d)", p, tc.width, tc.height, tc.speed)
			}
		})
	}
}

func TestParseModeAndDifficulty(t *testing.T) {
	if m, err := ParseMode("arcade"); err != nil || m != ModeArcade {
		t.Errorf("ParseMode(arcade) = %q, %v", m, err)
	}
	if _, err := ParseMode("survival"); err == nil {
		t.Error("ParseMode should reject unknown modes")
	}
	if d, err := ParseDifficulty("extreme"); err != nil || d != DifficultyExtreme {
		t.Errorf("ParseDifficulty(extreme) = %q, %v", d, err)
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("ParseDifficulty should reject unknown tiers")
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	def := DefaultSnakeConfig()

	for _, mode := range Modes {
		if cfg.Modes[mode] != def.Modes[mode] {
			t.Errorf("mode %s: embedded %+v, hardcoded %+v", mode, cfg.Modes[mode], def.Modes[mode])
		}
	}
	if cfg.Gameplay != def.Gameplay {
		t.Errorf("gameplay: embedded %+v, hardcoded %+v", cfg.Gameplay, def.Gameplay)
	}
	if cfg.Food != def.Food {
		t.Errorf("food: embedded %+v, hardcoded %+v", cfg.Food, def.Food)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("modes:\n  classic:\n    food_count: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Modes[ModeClassic].FoodCount != 4 {
		t.Errorf("classic food_count = %d, expected 4", cfg.Modes[ModeClassic].FoodCount)
	}
	// Untouched sections keep their defaults
	if cfg.Gameplay.PowerUpDuration != 100 {
		t.Errorf("powerup_duration = %d, expected default 100", cfg.Gameplay.PowerUpDuration)
	}
	if cfg.ModeRules(ModeArcade).Lives != 3 {
		t.Errorf("arcade lives = %d, expected 3", cfg.ModeRules(ModeArcade).Lives)
	}
}

func TestPartialModeKeepsDefaults(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		mode Mode
		want ModeConfig
	}{
		{"free keeps wrap", "modes:\n  free:\n    food_count: 3\n", ModeFree,
			ModeConfig{FoodCount: 3, Lives: 0, Wrap: true}},
		{"arcade keeps lives", "modes:\n  arcade:\n    food_count: 5\n", ModeArcade,
			ModeConfig{FoodCount: 5, Lives: 3}},
		{"challenge keeps obstacles", "modes:\n  challenge:\n    lives: 1\n", ModeChallenge,
			ModeConfig{FoodCount: 2, Lives: 1, Obstacles: true}},
		{"explicit false wins", "modes:\n  free:\n    wrap: false\n", ModeFree,
			ModeConfig{FoodCount: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := parse([]byte(tc.yaml))
			if err != nil {
				t.Fatalf("parse() failed: %v", err)
			}
			if got := cfg.ModeRules(tc.mode); got != tc.want {
				t.Errorf("ModeRules(%s) = %+v, expected %+v", tc.mode, got, tc.want)
			}
			if got := cfg.ModeRules(ModeClassic); got != DefaultSnakeConfig().Modes[ModeClassic] {
				t.Errorf("ModeRules(classic) = %+v, expected defaults", got)
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		errSub string
	}{
		{"defaults are valid", func(*SnakeConfig) {}, ""},
		{"too much food", func(c *SnakeConfig) {
			c.Modes[ModeArcade] = ModeConfig{FoodCount: 6}
		}, "food_count"},
		{"no food", func(c *SnakeConfig) {
			c.Modes[ModeClassic] = ModeConfig{FoodCount: 0}
		}, "food_count"},
		{"bad weights", func(c *SnakeConfig) { c.Food.Bonus = 50 }, "food weights"},
		{"zero duration", func(c *SnakeConfig) { c.Gameplay.PowerUpDuration = 0 }, "powerup_duration"},
		{"too many obstacles", func(c *SnakeConfig) { c.Gameplay.MaxObstacles = 51 }, "max_obstacles"},
		{"negative speed step", func(c *SnakeConfig) { c.Gameplay.SpeedStep = -5 }, "speed_step"},
		{"teleporter chance over 100", func(c *SnakeConfig) { c.Gameplay.TeleporterChance = 101 }, "teleporter_chance"},
		{"negative combo window", func(c *SnakeConfig) { c.Gameplay.ComboWindowMs = -1 }, "combo_window_ms"},
		{"unknown mode", func(c *SnakeConfig) {
			c.Modes["survival"] = ModeConfig{FoodCount: 1}
		}, "unknown mode"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errSub == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.errSub)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/.snake/top_scores"); got != filepath.Join(home, ".snake", "top_scores") {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got := ExpandHome("/tmp/x"); got != "/tmp/x" {
		t.Errorf("ExpandHome(/tmp/x) = %q, expected unchanged", got)
	}
}
