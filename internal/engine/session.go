// Package engine implements the snake simulation: entities, the per-tick
// step, collision precedence, scoring and timed power-up effects.
// It has no terminal or storage dependencies; front ends drive it through
// Commands and read it through Snapshots.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

// Options configures a session.
type Options struct {
	Mode       Mode
	Difficulty Difficulty
	Players    int   // 1 or 2
	Seed       int64 // RNG seed; 0 uses the clock
	// Clock supplies real time for combos and play time. Defaults to time.Now.
	Clock func() time.Time
	// Config supplies mode rules and tuning. Zero value uses the defaults.
	Config config.SnakeConfig
}

// Timers holds the remaining ticks of each power-up effect.
type Timers struct {
	Slow       int
	Invincible int
	Multiplier int
	Magnetic   int
}

// Session owns all state of one match.
type Session struct {
	opts     Options
	rules    config.ModeConfig
	gameplay config.GameplayConfig
	weights  config.FoodConfig
	params   config.DifficultyParams
	placer   *Placer
	now      func() time.Time

	snakes    []*Snake
	foods     []Food
	powerUp   PowerUp
	obstacles []Obstacle

	score     int
	level     int
	speed     int
	foodEaten int
	tick      uint64
	timers    Timers

	over   bool
	paused bool
	winner PlayerID
	loser  PlayerID
	cause  Cause

	startTime time.Time
	endTime   time.Time

	events []Event
}

// NewSession validates opts and creates a ready-to-play session.
func NewSession(opts Options) (*Session, error) {
	if !opts.Mode.Valid() {
		return nil, fmt.Errorf("engine: unknown mode %q", opts.Mode)
	}
	if !opts.Difficulty.Valid() {
		return nil, fmt.Errorf("engine: unknown difficulty %q", opts.Difficulty)
	}
	if opts.Players != 1 && opts.Players != 2 {
		return nil, fmt.Errorf("engine: players must be 1 or 2, got %d", opts.Players)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Config.Modes == nil {
		opts.Config = config.DefaultSnakeConfig()
	}
	if opts.Seed == 0 {
		opts.Seed = opts.Clock().UnixNano()
	}

	s := &Session{
		opts:     opts,
		rules:    opts.Config.ModeRules(opts.Mode),
		gameplay: opts.Config.Gameplay,
		weights:  opts.Config.Food,
		params:   opts.Difficulty.Params(),
		now:      opts.Clock,
	}
	s.init(opts.Seed)
	return s, nil
}

// Reset starts a new match with the same options and a fresh seed.
func (s *Session) Reset(seed int64) {
	if seed == 0 {
		seed = s.now().UnixNano()
	}
	s.init(seed)
}

// init places snakes, food and obstacles.
func (s *Session) init(seed int64) {
	s.placer = NewPlacer(rand.New(rand.NewSource(seed)), s.params.GridWidth, s.params.GridHeight)
	now := s.now()

	capacity := s.gameplay.MaxLength
	center := s.center()
	s.snakes = []*Snake{NewSnake(Player1, center, s.rules.Lives, capacity, now)}
	if s.opts.Players == 2 {
		start := Position{X: center.X - 10, Y: center.Y}
		s.snakes = append(s.snakes, NewSnake(Player2, start, s.rules.Lives, capacity, now))
	}

	s.score = 0
	s.level = 1
	s.speed = s.params.BaseSpeed
	s.foodEaten = 0
	s.tick = 0
	s.timers = Timers{}
	s.over = false
	s.paused = false
	s.winner = PlayerNone
	s.loser = PlayerNone
	s.cause = CauseNone
	s.startTime = now
	s.endTime = time.Time{}
	s.powerUp = PowerUp{}
	s.obstacles = nil
	s.events = nil

	s.foods = make([]Food, min(max(s.rules.FoodCount, 1), config.MaxFoodCount))
	for i := range s.foods {
		s.relocateFood(i)
	}
	if s.rules.Obstacles {
		s.generateObstacles()
	}
}

// center returns the respawn and start cell.
func (s *Session) center() Position {
	return Position{X: s.params.GridWidth / 2, Y: s.params.GridHeight / 2}
}

// IsPositionValid reports whether pos is on the grid and free of obstacles,
// food and, when checkSnakes is set, every snake segment.
func (s *Session) IsPositionValid(pos Position, checkSnakes bool) bool {
	if !s.placer.InBounds(pos) {
		return false
	}
	for _, ob := range s.obstacles {
		if ob.Pos == pos {
			return false
		}
	}
	for _, f := range s.foods {
		if f.Pos == pos {
			return false
		}
	}
	if checkSnakes {
		for _, sn := range s.snakes {
			if sn.Occupies(pos) {
				return false
			}
		}
	}
	return true
}

// Apply handles one input command. Commands only touch buffered directions
// and flags, never positions.
func (s *Session) Apply(cmd Command) {
	switch cmd.Kind {
	case CmdTurn:
		if sn := s.Snake(cmd.Player); sn != nil && !s.over {
			sn.Turn(cmd.Dir)
		}
	case CmdPause:
		s.TogglePause()
	case CmdQuit:
		s.Quit()
	}
}

// TogglePause flips the pause flag. Finished games stay unpaused.
func (s *Session) TogglePause() {
	if s.over {
		return
	}
	s.paused = !s.paused
}

// Quit ends the match without a winner.
func (s *Session) Quit() {
	if s.over {
		return
	}
	s.over = true
	s.paused = false
	s.cause = CauseQuit
	s.endTime = s.now()
}

// Snake returns the snake for id, or nil if the session has no such player.
func (s *Session) Snake(id PlayerID) *Snake {
	for _, sn := range s.snakes {
		if sn.ID == id {
			return sn
		}
	}
	return nil
}

// opponent returns the other snake in a two-player session.
func (s *Session) opponent(sn *Snake) *Snake {
	if len(s.snakes) < 2 {
		return nil
	}
	return s.Snake(sn.ID.Other())
}

// obstacleAt returns the obstacle occupying pos, if any.
func (s *Session) obstacleAt(pos Position) (Obstacle, bool) {
	for _, ob := range s.obstacles {
		if ob.Pos == pos {
			return ob, true
		}
	}
	return Obstacle{}, false
}

// Mode returns the session mode.
func (s *Session) Mode() Mode { return s.opts.Mode }

// Difficulty returns the session difficulty.
func (s *Session) Difficulty() Difficulty { return s.opts.Difficulty }

// Players returns the number of snakes.
func (s *Session) Players() int { return len(s.snakes) }

// Score returns the shared session score.
func (s *Session) Score() int { return s.score }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// Speed returns the current tick interval in milliseconds.
func (s *Session) Speed() int { return s.speed }

// BaseSpeed returns the difficulty's base tick interval in milliseconds.
func (s *Session) BaseSpeed() int { return s.params.BaseSpeed }

// Over reports whether the match has ended.
func (s *Session) Over() bool { return s.over }

// Paused reports whether the simulation is frozen.
func (s *Session) Paused() bool { return s.paused }

// Winner returns the winning player of a two-player match, or PlayerNone.
func (s *Session) Winner() PlayerID { return s.winner }

// EndCause returns why the match ended, or CauseNone while it runs.
func (s *Session) EndCause() Cause { return s.cause }

// Timers returns the remaining ticks of each effect.
func (s *Session) Timers() Timers { return s.timers }

// FoodEaten returns the number of foods consumed this match.
func (s *Session) FoodEaten() int { return s.foodEaten }

// Tick returns the number of simulation steps taken.
func (s *Session) Tick() uint64 { return s.tick }

// Elapsed returns the play time, frozen once the match ends.
func (s *Session) Elapsed() time.Duration {
	if s.over && !s.endTime.IsZero() {
		return s.endTime.Sub(s.startTime)
	}
	return s.now().Sub(s.startTime)
}
