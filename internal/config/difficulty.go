package config

import "fmt"

// Mode represents a game mode.
type Mode string

const (
	ModeClassic   Mode = "classic"
	ModeArcade    Mode = "arcade"
	ModeChallenge Mode = "challenge"
	ModeFree      Mode = "free"
)

// Modes lists all modes in menu order.
var Modes = []Mode{ModeClassic, ModeArcade, ModeChallenge, ModeFree}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeClassic, ModeArcade, ModeChallenge, ModeFree:
		return true
	}
	return false
}

// Title returns the display name.
func (m Mode) Title() string {
	switch m {
	case ModeClassic:
		return "Classic"
	case ModeArcade:
		return "Arcade"
	case ModeChallenge:
		return "Challenge"
	case ModeFree:
		return "Free"
	default:
		return "Unknown"
	}
}

// Description returns a one-line summary for menus.
func (m Mode) Description() string {
	switch m {
	case ModeClassic:
		return "walls kill, one life"
	case ModeArcade:
		return "extra lives, more food"
	case ModeChallenge:
		return "obstacles and teleporters"
	case ModeFree:
		return "no walls, edges wrap"
	default:
		return ""
	}
}

// ParseMode converts a CLI/config string to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("config: unknown mode %q (classic, arcade, challenge, free)", s)
	}
	return m, nil
}

// Difficulty represents a named difficulty tier. Each tier fixes the grid
// size and the base tick interval.
type Difficulty string

const (
	DifficultyEasy    Difficulty = "easy"
	DifficultyMedium  Difficulty = "medium"
	DifficultyHard    Difficulty = "hard"
	DifficultyExtreme Difficulty = "extreme"
)

// Difficulties lists all tiers in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExtreme}

// DifficultyParams holds the fixed values of a tier.
type DifficultyParams struct {
	GridWidth  int
	GridHeight int
	BaseSpeed  int // Tick interval in milliseconds
}

// Params returns the fixed grid size and base speed for the tier.
// Unknown tiers fall back to Medium.
func (d Difficulty) Params() DifficultyParams {
	switch d {
	case DifficultyEasy:
		return DifficultyParams{GridWidth: 80, GridHeight: 30, BaseSpeed: 200}
	case DifficultyHard:
		return DifficultyParams{GridWidth: 50, GridHeight: 18, BaseSpeed: 100}
	case DifficultyExtreme:
		return DifficultyParams{GridWidth: 40, GridHeight: 15, BaseSpeed: 50}
	default:
		return DifficultyParams{GridWidth: 60, GridHeight: 20, BaseSpeed: 150}
	}
}

// Valid reports whether d is a known tier.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExtreme:
		return true
	}
	return false
}

// Title returns the display name.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyExtreme:
		return "Extreme"
	default:
		return "Unknown"
	}
}

// ParseDifficulty converts a CLI/config string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("config: unknown difficulty %q (easy, medium, hard, extreme)", s)
	}
	return d, nil
}
