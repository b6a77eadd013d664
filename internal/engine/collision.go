package engine

// Cause names what a snake ran into.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
	CauseOpponent
	CauseObstacle
	CauseQuit
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseOpponent:
		return "opponent"
	case CauseObstacle:
		return "obstacle"
	case CauseQuit:
		return "quit"
	default:
		return "none"
	}
}

// outcome is the result of hazard resolution for one move.
type outcome int

const (
	outcomeMove outcome = iota
	outcomeRespawn
	outcomeGameOver
)

// resolveHazards runs the pre-shift checks in precedence order: boundary,
// own body, opponent body, static obstacle. It returns the (possibly
// wrapped) head and what happened.
func (s *Session) resolveHazards(sn *Snake, head Position) (Position, outcome) {
	if !s.placer.InBounds(head) {
		if !s.rules.Wrap {
			return head, s.hazard(sn, CauseWall)
		}
		head = s.placer.Wrap(head)
	}

	// Invincible suspends every check below
	if s.timers.Invincible > 0 {
		return head, outcomeMove
	}

	if sn.hitsBody(head) {
		return head, s.hazard(sn, CauseSelf)
	}
	if other := s.opponent(sn); other != nil && other.Occupies(head) {
		return head, s.hazard(sn, CauseOpponent)
	}
	if ob, ok := s.obstacleAt(head); ok && ob.Kind == ObstacleStatic {
		return head, s.hazard(sn, CauseObstacle)
	}
	return head, outcomeMove
}

// hazard spends a life when the mode grants them, otherwise ends the match.
// In two-player matches the other snake wins.
func (s *Session) hazard(sn *Snake, cause Cause) outcome {
	if s.rules.Lives > 0 && sn.Lives > 0 {
		sn.respawn(s.center())
		s.emit(Event{Kind: EventLifeLost, Player: sn.ID, Cause: cause, Pos: sn.Head()})
		return outcomeRespawn
	}

	s.over = true
	s.cause = cause
	s.loser = sn.ID
	s.endTime = s.now()
	if len(s.snakes) > 1 {
		s.winner = sn.ID.Other()
	}
	s.emit(Event{Kind: EventGameOver, Player: sn.ID, Cause: cause, Winner: s.winner})
	return outcomeGameOver
}

// resolveTeleport moves the head to a teleporter's destination after the
// body shift. Landing on a teleporter is never a hazard.
func (s *Session) resolveTeleport(sn *Snake) {
	ob, ok := s.obstacleAt(sn.Head())
	if !ok || ob.Kind != ObstacleTeleporter {
		return
	}
	sn.Body[0] = ob.Dest
	s.emit(Event{Kind: EventTeleported, Player: sn.ID, Pos: ob.Dest})
}
