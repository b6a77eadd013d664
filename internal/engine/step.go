package engine

// StepResult reports what a single Step did.
type StepResult struct {
	Stepped bool    // false when paused or over
	Events  []Event // in the order they happened
}

// Step advances the simulation by one tick.
func (s *Session) Step() StepResult {
	if s.paused || s.over {
		return StepResult{}
	}
	s.tick++
	s.events = s.events[:0]

	for _, sn := range s.snakes {
		s.move(sn)
		if s.over {
			break
		}
	}

	if !s.over {
		s.advanceTimers()
		s.ageFood()
	}

	events := make([]Event, len(s.events))
	copy(events, s.events)
	return StepResult{Stepped: true, Events: events}
}

// move runs one snake through the resolver. A respawn consumes the move.
func (s *Session) move(sn *Snake) {
	sn.Dir = sn.nextDir
	head, result := s.resolveHazards(sn, sn.Head().Add(sn.Dir.Delta()))
	if result != outcomeMove {
		return
	}

	tail := sn.advance(head)
	s.resolveTeleport(sn)
	s.resolveFood(sn, tail)
	s.resolvePowerUp(sn)
}
