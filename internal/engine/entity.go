package engine

import "github.com/vovakirdan/snake-arcade/internal/config"

// Mode and Difficulty are defined alongside their config so YAML keys and
// engine values share one type.
type (
	Mode       = config.Mode
	Difficulty = config.Difficulty
)

// Position is a grid cell coordinate.
type Position struct {
	X, Y int
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction represents a snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Delta returns the one-cell offset for the direction.
func (d Direction) Delta() Position {
	switch d {
	case DirUp:
		return Position{Y: -1}
	case DirDown:
		return Position{Y: 1}
	case DirLeft:
		return Position{X: -1}
	default:
		return Position{X: 1}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// PlayerID identifies a snake within a session.
type PlayerID int

const (
	PlayerNone PlayerID = iota
	Player1
	Player2
)

// Other returns the opposing player in a two-player session.
func (p PlayerID) Other() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return PlayerNone
	}
}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "none"
	}
}

// FoodKind is the type of a food item.
type FoodKind int

const (
	FoodNormal FoodKind = iota
	FoodGolden
	FoodPoison
	FoodFast
	FoodBonus
)

// Points returns the base score for eating the food.
func (k FoodKind) Points() int {
	switch k {
	case FoodGolden:
		return 50
	case FoodPoison:
		return -5
	case FoodFast:
		return 15
	case FoodBonus:
		return 100
	default:
		return 10
	}
}

// Glyph returns the character used to draw the food.
func (k FoodKind) Glyph() rune {
	switch k {
	case FoodGolden:
		return '$'
	case FoodPoison:
		return 'X'
	case FoodFast:
		return '!'
	case FoodBonus:
		return '?'
	default:
		return '*'
	}
}

func (k FoodKind) String() string {
	switch k {
	case FoodNormal:
		return "normal"
	case FoodGolden:
		return "golden"
	case FoodPoison:
		return "poison"
	case FoodFast:
		return "fast"
	case FoodBonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// Food is a consumable item. Age and Pulse only drive presentation.
type Food struct {
	Pos   Position
	Kind  FoodKind
	Age   int
	Pulse int
}

// PowerUpKind is the effect a power-up grants.
type PowerUpKind int

const (
	PowerUpNone PowerUpKind = iota
	PowerUpSlow
	PowerUpInvincible
	PowerUpMultiplier
	PowerUpMagnetic
)

// PowerUpKinds lists the kinds that can spawn.
var PowerUpKinds = []PowerUpKind{PowerUpSlow, PowerUpInvincible, PowerUpMultiplier, PowerUpMagnetic}

// Glyph returns the character used to draw the power-up. PowerUpNone keeps
// the generic 'P'.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpSlow:
		return 'S'
	case PowerUpInvincible:
		return 'I'
	case PowerUpMultiplier:
		return 'M'
	case PowerUpMagnetic:
		return 'G'
	default:
		return 'P'
	}
}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSlow:
		return "slow"
	case PowerUpInvincible:
		return "invincible"
	case PowerUpMultiplier:
		return "multiplier"
	case PowerUpMagnetic:
		return "magnetic"
	default:
		return "none"
	}
}

// PowerUp is the single power-up slot of a session.
type PowerUp struct {
	Pos    Position
	Kind   PowerUpKind
	Active bool
}

// ObstacleKind distinguishes walls from teleporters.
type ObstacleKind int

const (
	ObstacleStatic ObstacleKind = iota
	ObstacleTeleporter
)

func (k ObstacleKind) String() string {
	if k == ObstacleTeleporter {
		return "teleporter"
	}
	return "static"
}

// Obstacle is a fixed cell. Teleporters move the head to Dest.
type Obstacle struct {
	Pos  Position
	Kind ObstacleKind
	Dest Position
}
