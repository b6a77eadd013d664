package engine

import "math/rand"

// MaxPlacementAttempts bounds rejection sampling in Placer.Place.
const MaxPlacementAttempts = 100

// Placer samples grid cells from a seeded RNG.
type Placer struct {
	rng    *rand.Rand
	width  int
	height int
}

// NewPlacer creates a placer for a width x height grid.
func NewPlacer(rng *rand.Rand, width, height int) *Placer {
	return &Placer{rng: rng, width: width, height: height}
}

// RandomPosition returns a uniformly sampled cell in [0,width) x [0,height).
func (p *Placer) RandomPosition() Position {
	return Position{X: p.rng.Intn(p.width), Y: p.rng.Intn(p.height)}
}

// Place samples cells until accept returns true, giving up after
// MaxPlacementAttempts. On failure the caller keeps its previous state.
func (p *Placer) Place(accept func(Position) bool) (Position, bool) {
	return p.PlaceWithin(MaxPlacementAttempts, accept)
}

// PlaceWithin is Place with an explicit attempt limit.
func (p *Placer) PlaceWithin(attempts int, accept func(Position) bool) (Position, bool) {
	for range attempts {
		pos := p.RandomPosition()
		if accept(pos) {
			return pos, true
		}
	}
	return Position{}, false
}

// InBounds reports whether pos lies on the grid.
func (p *Placer) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < p.width && pos.Y >= 0 && pos.Y < p.height
}

// Wrap folds an out-of-range position back onto the grid.
func (p *Placer) Wrap(pos Position) Position {
	pos.X = ((pos.X % p.width) + p.width) % p.width
	pos.Y = ((pos.Y % p.height) + p.height) % p.height
	return pos
}

// Percent returns true with the given percent probability.
func (p *Placer) Percent(chance int) bool {
	return p.rng.Intn(100) < chance
}

// Intn exposes the RNG for uniform choices.
func (p *Placer) Intn(n int) int {
	return p.rng.Intn(n)
}
