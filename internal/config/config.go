// Package config provides YAML-based configuration loading for the snake
// arcade: per-mode rules, gameplay tuning, food weights and player defaults.
package config

import (
	"errors"
	"fmt"
)

const (
	// MaxFoodCount is the upper bound on simultaneous food items.
	MaxFoodCount = 5
	// MaxObstacleCap is the upper bound on generated obstacles.
	MaxObstacleCap = 50
)

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Modes    map[Mode]ModeConfig `yaml:"modes"`
	Gameplay GameplayConfig      `yaml:"gameplay"`
	Food     FoodConfig          `yaml:"food"`
	Player   PlayerConfig        `yaml:"player"`
}

// ModeConfig defines the rules a game mode applies.
type ModeConfig struct {
	FoodCount int  `yaml:"food_count"` // Simultaneous food items (1-5)
	Lives     int  `yaml:"lives"`      // Extra lives; 0 means first hazard ends the game
	Obstacles bool `yaml:"obstacles"`  // Generate obstacles at session start
	Wrap      bool `yaml:"wrap"`       // Wrap around grid edges instead of dying
}

// GameplayConfig defines timing and scoring parameters.
type GameplayConfig struct {
	PowerUpDuration  int `yaml:"powerup_duration"`  // Ticks each power-up lasts
	PowerUpChance    int `yaml:"powerup_chance"`    // Percent chance per food eaten
	ComboWindowMs    int `yaml:"combo_window_ms"`   // Max gap between foods to extend a combo
	PointsPerLevel   int `yaml:"points_per_level"`  // Score needed per level
	SpeedStep        int `yaml:"speed_step"`        // Milliseconds removed per level
	MinSpeed         int `yaml:"min_speed"`         // Fastest tick interval in milliseconds
	MaxLength        int `yaml:"max_length"`        // Snake capacity
	ObstacleDensity  int `yaml:"obstacle_density"`  // One obstacle per N cells
	MaxObstacles     int `yaml:"max_obstacles"`     // Obstacle cap
	TeleporterChance int `yaml:"teleporter_chance"` // Percent of obstacles that teleport
}

// FoodConfig defines the spawn weights of each food kind, in percent.
type FoodConfig struct {
	Normal int `yaml:"normal"`
	Golden int `yaml:"golden"`
	Poison int `yaml:"poison"`
	Fast   int `yaml:"fast"`
	Bonus  int `yaml:"bonus"`
}

// Total returns the sum of all weights.
func (f FoodConfig) Total() int {
	return f.Normal + f.Golden + f.Poison + f.Fast + f.Bonus
}

// PlayerConfig holds per-user defaults.
type PlayerConfig struct {
	Name       string `yaml:"name"`
	ScoresPath string `yaml:"scores_path"`
	DBPath     string `yaml:"db_path"`
	Frontend   string `yaml:"frontend"`
}

// ModeRules returns the rules for a mode, falling back to the built-in
// defaults when the mode is missing from the loaded config.
func (c SnakeConfig) ModeRules(m Mode) ModeConfig {
	if mc, ok := c.Modes[m]; ok {
		return mc
	}
	return DefaultSnakeConfig().Modes[m]
}

// Validate checks the config for values the engine cannot run with.
func (c SnakeConfig) Validate() error {
	var errs []error
	for mode, mc := range c.Modes {
		if !mode.Valid() {
			errs = append(errs, fmt.Errorf("config: unknown mode %q", mode))
			continue
		}
		if mc.FoodCount < 1 || mc.FoodCount > MaxFoodCount {
			errs = append(errs, fmt.Errorf("config: mode %s: food_count %d outside 1..%d", mode, mc.FoodCount, MaxFoodCount))
		}
		if mc.Lives < 0 {
			errs = append(errs, fmt.Errorf("config: mode %s: negative lives", mode))
		}
	}

	g := c.Gameplay
	if g.PowerUpDuration <= 0 {
		errs = append(errs, errors.New("config: powerup_duration must be positive"))
	}
	if g.PowerUpChance < 0 || g.PowerUpChance > 100 {
		errs = append(errs, errors.New("config: powerup_chance must be within 0..100"))
	}
	if g.ComboWindowMs < 0 {
		errs = append(errs, errors.New("config: combo_window_ms must not be negative"))
	}
	if g.PointsPerLevel <= 0 {
		errs = append(errs, errors.New("config: points_per_level must be positive"))
	}
	if g.SpeedStep < 0 {
		errs = append(errs, errors.New("config: speed_step must not be negative"))
	}
	if g.MinSpeed <= 0 {
		errs = append(errs, errors.New("config: min_speed must be positive"))
	}
	if g.MaxLength < 3 {
		errs = append(errs, errors.New("config: max_length must be at least 3"))
	}
	if g.ObstacleDensity <= 0 {
		errs = append(errs, errors.New("config: obstacle_density must be positive"))
	}
	if g.MaxObstacles < 0 || g.MaxObstacles > MaxObstacleCap {
		errs = append(errs, fmt.Errorf("config: max_obstacles must be within 0..%d", MaxObstacleCap))
	}
	if g.TeleporterChance < 0 || g.TeleporterChance > 100 {
		errs = append(errs, errors.New("config: teleporter_chance must be within 0..100"))
	}
	if total := c.Food.Total(); total != 100 {
		errs = append(errs, fmt.Errorf("config: food weights sum to %d, expected 100", total))
	}

	return errors.Join(errs...)
}
