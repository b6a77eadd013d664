package engine

import (
	"testing"
	"time"
)

func TestNewSnake(t *testing.T) {
	sn := NewSnake(Player1, Position{X: 10, Y: 4}, 3, DefaultMaxLength, time.Time{})

	if sn.Len() != InitialLength {
		t.Errorf("Len() = %d, expected %d", sn.Len(), InitialLength)
	}
	if sn.Dir != DirRight {
		t.Errorf("Dir = %v, expected %v", sn.Dir, DirRight)
	}

	want := []Position{{X: 10, Y: 4}, {X: 9, Y: 4}, {X: 8, Y: 4}}
	for i, p := range want {
		if sn.Body[i] != p {
			t.Errorf("Body[%d] = %v, expected %v", i, sn.Body[i], p)
		}
	}
	if sn.Multiplier != 1 {
		t.Errorf("Multiplier = %d, expected 1", sn.Multiplier)
	}
}

func TestTurnRejectsReversal(t *testing.T) {
	tests := []struct {
		current, requested Direction
		accepted           bool
	}{
		{DirRight, DirLeft, false},
		{DirLeft, DirRight, false},
		{DirUp, DirDown, false},
		{DirDown, DirUp, false},
		{DirRight, DirUp, true},
		{DirRight, DirDown, true},
		{DirRight, DirRight, true},
		{DirUp, DirLeft, true},
	}

	for _, tt := range tests {
		sn := NewSnake(Player1, Position{X: 10, Y: 10}, 0, DefaultMaxLength, time.Time{})
		sn.Dir = tt.current
		sn.nextDir = tt.current

		got := sn.Turn(tt.requested)
		if got != tt.accepted {
			t.Errorf("Turn(%v) from %v = %v, expected %v", tt.requested, tt.current, got, tt.accepted)
		}
		if !tt.accepted && sn.NextDir() != tt.current {
			t.Errorf("NextDir() after rejected turn = %v, expected %v", sn.NextDir(), tt.current)
		}
	}
}

func TestGrowClampsToCapacity(t *testing.T) {
	sn := NewSnake(Player1, Position{X: 10, Y: 10}, 0, 4, time.Time{})

	sn.grow(Position{X: 7, Y: 10})
	sn.grow(Position{X: 6, Y: 10})

	if sn.Len() != 4 {
		t.Errorf("Len() = %d, expected capacity 4", sn.Len())
	}
}

func TestShrinkFloor(t *testing.T) {
	sn := NewSnake(Player1, Position{X: 10, Y: 10}, 0, DefaultMaxLength, time.Time{})
	sn.grow(Position{X: 7, Y: 10})

	sn.shrink(2)
	if sn.Len() != InitialLength {
		t.Errorf("Len() after shrink = %d, expected %d", sn.Len(), InitialLength)
	}
}

func TestAdvanceReturnsTail(t *testing.T) {
	sn := NewSnake(Player1, Position{X: 10, Y: 10}, 0, DefaultMaxLength, time.Time{})

	tail := sn.advance(Position{X: 11, Y: 10})
	if tail != (Position{X: 8, Y: 10}) {
		t.Errorf("advance() tail = %v, expected (8,10)", tail)
	}
	want := []Position{{X: 11, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}}
	for i, p := range want {
		if sn.Body[i] != p {
			t.Errorf("Body[%d] = %v, expected %v", i, sn.Body[i], p)
		}
	}
}
