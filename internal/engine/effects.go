package engine

import "time"

// comboBonus is the score scale added per combo step.
const comboBonus = 0.1

// teleportAttempts bounds the search for a teleporter destination.
const teleportAttempts = 50

// resolveFood applies the scoring algorithm when the head is on a food.
// tail is the cell vacated by the shift, reclaimed when the snake grows.
func (s *Session) resolveFood(sn *Snake, tail Position) {
	head := sn.Head()
	for i := range s.foods {
		if s.foods[i].Pos != head {
			continue
		}

		kind := s.foods[i].Kind
		points := kind.Points()
		grow := true

		switch kind {
		case FoodPoison:
			sn.shrink(2)
			grow = false
		case FoodFast:
			s.speed = s.params.BaseSpeed / 2
		}

		now := s.now()
		window := time.Duration(s.gameplay.ComboWindowMs) * time.Millisecond
		if now.Sub(sn.LastFood) < window {
			sn.Combo++
			points = int(float64(points) * (1.0 + float64(sn.Combo)*comboBonus))
		} else {
			sn.Combo = 0
		}
		sn.LastFood = now

		points *= sn.Multiplier

		if grow {
			sn.grow(tail)
		}

		sn.Score += points
		s.score += points
		s.foodEaten++
		s.emit(Event{Kind: EventFoodEaten, Player: sn.ID, Food: kind, Points: points, Pos: head})

		s.updateLevel()
		s.relocateFood(i)
		s.maybeSpawnPowerUp()
		return
	}
}

// updateLevel recomputes the level from the shared score. Levels never go
// down; speed follows the level unless Slow is active.
func (s *Session) updateLevel() {
	level := s.score/s.gameplay.PointsPerLevel + 1
	if level <= s.level {
		return
	}
	s.level = level
	if s.timers.Slow == 0 {
		s.speed = s.levelSpeed()
	}
	s.emit(Event{Kind: EventLevelUp, Level: level})
}

// levelSpeed returns the tick interval for the current level.
func (s *Session) levelSpeed() int {
	return max(s.gameplay.MinSpeed, s.params.BaseSpeed-(s.level-1)*s.gameplay.SpeedStep)
}

// relocateFood moves food slot i to a free cell and picks a new kind.
// If no cell is found the slot is left as it was.
func (s *Session) relocateFood(i int) {
	pos, ok := s.placer.Place(func(p Position) bool { return s.IsPositionValid(p, true) })
	if !ok {
		return
	}
	s.foods[i] = Food{Pos: pos, Kind: s.randomFoodKind()}
}

// randomFoodKind draws a kind using the configured percent weights.
func (s *Session) randomFoodKind() FoodKind {
	r := s.placer.Intn(100)
	w := s.weights
	switch {
	case r < w.Normal:
		return FoodNormal
	case r < w.Normal+w.Golden:
		return FoodGolden
	case r < w.Normal+w.Golden+w.Poison:
		return FoodPoison
	case r < w.Normal+w.Golden+w.Poison+w.Fast:
		return FoodFast
	default:
		return FoodBonus
	}
}

// maybeSpawnPowerUp rolls for a power-up after a food is eaten. Only one
// power-up can be on the grid.
func (s *Session) maybeSpawnPowerUp() {
	if s.powerUp.Active || !s.placer.Percent(s.gameplay.PowerUpChance) {
		return
	}
	pos, ok := s.placer.Place(func(p Position) bool { return s.IsPositionValid(p, true) })
	if !ok {
		return
	}
	kind := PowerUpKinds[s.placer.Intn(len(PowerUpKinds))]
	s.powerUp = PowerUp{Pos: pos, Kind: kind, Active: true}
	s.emit(Event{Kind: EventPowerUpSpawned, PowerUp: kind, Pos: pos})
}

// resolvePowerUp starts the effect of a power-up under the head.
func (s *Session) resolvePowerUp(sn *Snake) {
	if !s.powerUp.Active || s.powerUp.Pos != sn.Head() {
		return
	}
	s.activate(sn, s.powerUp.Kind)
	s.powerUp.Active = false
}

// activate starts the timer for kind. The Magnetic effect is tracked as a
// flag only.
func (s *Session) activate(sn *Snake, kind PowerUpKind) {
	d := s.gameplay.PowerUpDuration
	switch kind {
	case PowerUpSlow:
		s.timers.Slow = d
		s.speed = s.params.BaseSpeed * 2
	case PowerUpInvincible:
		s.timers.Invincible = d
	case PowerUpMultiplier:
		s.timers.Multiplier = d
		sn.Multiplier = 2
	case PowerUpMagnetic:
		s.timers.Magnetic = d
	default:
		return
	}
	s.emit(Event{Kind: EventPowerUpCollected, Player: sn.ID, PowerUp: kind, Pos: sn.Head()})
}

// advanceTimers counts every active effect down by one tick and restores
// what an effect changed when it reaches zero.
func (s *Session) advanceTimers() {
	if s.timers.Slow > 0 {
		s.timers.Slow--
		if s.timers.Slow == 0 {
			s.speed = s.levelSpeed()
			s.emit(Event{Kind: EventPowerUpExpired, PowerUp: PowerUpSlow})
		}
	}

	if s.timers.Invincible > 0 {
		s.timers.Invincible--
		if s.timers.Invincible == 0 {
			s.emit(Event{Kind: EventPowerUpExpired, PowerUp: PowerUpInvincible})
		}
	}

	if s.timers.Multiplier > 0 {
		s.timers.Multiplier--
		if s.timers.Multiplier == 0 {
			for _, sn := range s.snakes {
				sn.Multiplier = 1
			}
			s.emit(Event{Kind: EventPowerUpExpired, PowerUp: PowerUpMultiplier})
		}
	}

	if s.timers.Magnetic > 0 {
		s.timers.Magnetic--
		if s.timers.Magnetic == 0 {
			s.emit(Event{Kind: EventPowerUpExpired, PowerUp: PowerUpMagnetic})
		}
	}
}

// ageFood advances the presentation counters of every food.
func (s *Session) ageFood() {
	for i := range s.foods {
		s.foods[i].Age++
		s.foods[i].Pulse = (s.foods[i].Pulse + 1) % 10
	}
}

// generateObstacles scatters obstacles over the grid, one per
// ObstacleDensity cells up to MaxObstacles. The three cells ahead of each
// starting head stay clear.
func (s *Session) generateObstacles() {
	area := s.params.GridWidth * s.params.GridHeight
	count := min(area/s.gameplay.ObstacleDensity, s.gameplay.MaxObstacles)

	for range count {
		pos, ok := s.placer.Place(func(p Position) bool {
			return s.IsPositionValid(p, true) && !s.inStartLane(p)
		})
		if !ok {
			continue
		}

		ob := Obstacle{Pos: pos, Kind: ObstacleStatic}
		if s.placer.Percent(s.gameplay.TeleporterChance) {
			dest, found := s.placer.PlaceWithin(teleportAttempts, func(p Position) bool { return p != pos })
			if found {
				ob.Kind = ObstacleTeleporter
				ob.Dest = dest
			}
		}
		s.obstacles = append(s.obstacles, ob)
	}
}

// inStartLane reports whether p is directly ahead of a starting head.
func (s *Session) inStartLane(p Position) bool {
	for _, sn := range s.snakes {
		h := sn.Head()
		if p.Y == h.Y && p.X > h.X && p.X <= h.X+InitialLength {
			return true
		}
	}
	return false
}
