package engine

import (
	"slices"
	"time"
)

// SnakeView is the read-only state of one snake.
type SnakeView struct {
	ID         PlayerID
	Body       []Position
	Dir        Direction
	Alive      bool
	Invincible bool
	Lives      int
	Score      int
	Multiplier int
	Combo      int
}

// Head returns the head position.
func (v SnakeView) Head() Position {
	return v.Body[0]
}

// Snapshot is a deep copy of a session's state for renderers. It never
// aliases session memory.
type Snapshot struct {
	Width      int
	Height     int
	Mode       Mode
	Difficulty Difficulty
	Players    int

	Snakes    []SnakeView
	Foods     []Food
	PowerUp   PowerUp
	Obstacles []Obstacle

	Score     int
	Level     int
	Speed     int
	FoodEaten int
	Timers    Timers
	Tick      uint64

	Paused  bool
	Over    bool
	Winner  PlayerID
	Cause   Cause
	Elapsed time.Duration
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Width:      s.params.GridWidth,
		Height:     s.params.GridHeight,
		Mode:       s.opts.Mode,
		Difficulty: s.opts.Difficulty,
		Players:    len(s.snakes),
		Foods:      slices.Clone(s.foods),
		PowerUp:    s.powerUp,
		Obstacles:  slices.Clone(s.obstacles),
		Score:      s.score,
		Level:      s.level,
		Speed:      s.speed,
		FoodEaten:  s.foodEaten,
		Timers:     s.timers,
		Tick:       s.tick,
		Paused:     s.paused,
		Over:       s.over,
		Winner:     s.winner,
		Cause:      s.cause,
		Elapsed:    s.Elapsed(),
	}

	snap.Snakes = make([]SnakeView, len(s.snakes))
	for i, sn := range s.snakes {
		snap.Snakes[i] = SnakeView{
			ID:         sn.ID,
			Body:       slices.Clone(sn.Body),
			Dir:        sn.Dir,
			Alive:      sn.ID != s.loser,
			Invincible: s.timers.Invincible > 0,
			Lives:      sn.Lives,
			Score:      sn.Score,
			Multiplier: sn.Multiplier,
			Combo:      sn.Combo,
		}
	}
	return snap
}

// Snake returns the view for id.
func (s Snapshot) Snake(id PlayerID) (SnakeView, bool) {
	for _, v := range s.Snakes {
		if v.ID == id {
			return v, true
		}
	}
	return SnakeView{}, false
}

// CellKind classifies what occupies a grid cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellSnakeHead
	CellSnakeBody
	CellFood
	CellPowerUp
	CellObstacle
	CellTeleporter
)

// Cell describes one grid cell for renderers.
type Cell struct {
	Kind    CellKind
	Player  PlayerID
	Food    FoodKind
	PowerUp PowerUpKind
}

// Grid flattens the snapshot into a row-major Height x Width cell table.
// Later layers win: obstacles, food, power-up, then snakes.
func (s Snapshot) Grid() [][]Cell {
	grid := make([][]Cell, s.Height)
	for y := range grid {
		grid[y] = make([]Cell, s.Width)
	}
	set := func(p Position, c Cell) {
		if p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height {
			grid[p.Y][p.X] = c
		}
	}

	for _, ob := range s.Obstacles {
		kind := CellObstacle
		if ob.Kind == ObstacleTeleporter {
			kind = CellTeleporter
		}
		set(ob.Pos, Cell{Kind: kind})
	}
	for _, f := range s.Foods {
		set(f.Pos, Cell{Kind: CellFood, Food: f.Kind})
	}
	if s.PowerUp.Active {
		set(s.PowerUp.Pos, Cell{Kind: CellPowerUp, PowerUp: s.PowerUp.Kind})
	}
	for _, v := range s.Snakes {
		for i := len(v.Body) - 1; i >= 0; i-- {
			kind := CellSnakeBody
			if i == 0 {
				kind = CellSnakeHead
			}
			set(v.Body[i], Cell{Kind: kind, Player: v.ID})
		}
	}
	return grid
}
