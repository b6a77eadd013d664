package engine

import "time"

// InitialLength is the length of a new or respawned snake.
const InitialLength = 3

// DefaultMaxLength is the snake capacity when the config sets none.
const DefaultMaxLength = 1000

// Snake is one player's snake. Body[0] is the head.
type Snake struct {
	ID         PlayerID
	Body       []Position
	Dir        Direction
	Lives      int
	Score      int
	Multiplier int
	Combo      int
	LastFood   time.Time

	nextDir  Direction // Buffered direction, applied on the next move
	capacity int
}

// NewSnake creates a snake of InitialLength facing right with its head at
// start and the body trailing to the left.
func NewSnake(id PlayerID, start Position, lives, capacity int, now time.Time) *Snake {
	if capacity < InitialLength {
		capacity = DefaultMaxLength
	}
	s := &Snake{
		ID:         id,
		Lives:      lives,
		Multiplier: 1,
		LastFood:   now,
		capacity:   capacity,
	}
	s.place(start)
	return s
}

// place resets the body to a horizontal line ending at head, facing right.
func (s *Snake) place(head Position) {
	s.Body = make([]Position, InitialLength, InitialLength+8)
	for i := range s.Body {
		s.Body[i] = Position{X: head.X - i, Y: head.Y}
	}
	s.Dir = DirRight
	s.nextDir = DirRight
}

// Head returns the head position.
func (s *Snake) Head() Position {
	return s.Body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Capacity returns the maximum length.
func (s *Snake) Capacity() int {
	return s.capacity
}

// NextDir returns the buffered direction.
func (s *Snake) NextDir() Direction {
	return s.nextDir
}

// Turn buffers a direction change for the next move. Requests that reverse
// the current direction are ignored and reported as false.
func (s *Snake) Turn(d Direction) bool {
	if d == s.Dir.Opposite() {
		return false
	}
	s.nextDir = d
	return true
}

// Occupies reports whether any segment is at p.
func (s *Snake) Occupies(p Position) bool {
	for _, seg := range s.Body {
		if seg == p {
			return true
		}
	}
	return false
}

// hitsBody reports whether p lands on a segment other than the head.
func (s *Snake) hitsBody(p Position) bool {
	for _, seg := range s.Body[1:] {
		if seg == p {
			return true
		}
	}
	return false
}

// advance shifts every segment to its predecessor's cell and puts the head at
// head. It returns the vacated tail cell so growth can reclaim it.
func (s *Snake) advance(head Position) Position {
	tail := s.Body[len(s.Body)-1]
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = head
	return tail
}

// grow appends a segment at tail unless the snake is at capacity.
func (s *Snake) grow(tail Position) {
	if len(s.Body) >= s.capacity {
		return
	}
	s.Body = append(s.Body, tail)
}

// shrink removes n tail segments without going below InitialLength.
func (s *Snake) shrink(n int) {
	s.Body = s.Body[:max(InitialLength, len(s.Body)-n)]
}

// respawn spends a life and resets the snake at center.
func (s *Snake) respawn(center Position) {
	s.Lives--
	s.place(center)
}
