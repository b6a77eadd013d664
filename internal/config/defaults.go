package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration. It mirrors
// defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Modes: map[Mode]ModeConfig{
			ModeClassic:   {FoodCount: 1, Lives: 0},
			ModeArcade:    {FoodCount: 3, Lives: 3},
			ModeChallenge: {FoodCount: 2, Lives: 0, Obstacles: true},
			ModeFree:      {FoodCount: 1, Lives: 0, Wrap: true},
		},
		Gameplay: GameplayConfig{
			PowerUpDuration:  100,
			PowerUpChance:    15,
			ComboWindowMs:    2000,
			PointsPerLevel:   100,
			SpeedStep:        5,
			MinSpeed:         30,
			MaxLength:        1000,
			ObstacleDensity:  50,
			MaxObstacles:     50,
			TeleporterChance: 20,
		},
		Food: FoodConfig{
			Normal: 50,
			Golden: 20,
			Poison: 15,
			Fast:   10,
			Bonus:  5,
		},
		Player: PlayerConfig{
			Name:       "Player",
			ScoresPath: "~/.snake/top_scores",
			DBPath:     "~/.snake/history.db",
			Frontend:   "tui",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
