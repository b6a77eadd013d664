package engine

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventFoodEaten EventKind = iota
	EventPowerUpSpawned
	EventPowerUpCollected
	EventPowerUpExpired
	EventLifeLost
	EventTeleported
	EventLevelUp
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventFoodEaten:
		return "food_eaten"
	case EventPowerUpSpawned:
		return "powerup_spawned"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventPowerUpExpired:
		return "powerup_expired"
	case EventLifeLost:
		return "life_lost"
	case EventTeleported:
		return "teleported"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by Step for front ends and logs. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind    EventKind
	Player  PlayerID
	Pos     Position
	Food    FoodKind
	PowerUp PowerUpKind
	Points  int
	Level   int
	Cause   Cause
	Winner  PlayerID
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}
