package tetris

import "math/rand"

// Factory produces new pieces. Every variant is equally likely on every
// spawn; there is no bag or history.
type Factory struct {
	rng *rand.Rand
}

// NewFactory creates a factory with a deterministic random source.
func NewFactory(seed int64) *Factory {
	return &Factory{rng: rand.New(rand.NewSource(seed))}
}

// Spawn returns a random piece at (x, y) with rotation 0.
func (f *Factory) Spawn(g *Grid, x, y int) *Piece {
	kind := Kind(f.rng.Intn(int(kindCount)))
	return NewPiece(g, kind, x, y)
}
