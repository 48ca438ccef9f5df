package tetris

import "github.com/vovakirdan/termtris/internal/core"

// Piece is the falling polyomino. Position is the top-left corner of the
// current rotation mask. The vertical position is fractional so gravity can
// advance a fraction of a cell per tick; it is truncated when queried.
type Piece struct {
	kind     Kind
	grid     *Grid
	x        int
	y        float64
	rotation int
}

// NewPiece creates a piece of the given kind at (x, y), rotation 0,
// moving on grid g.
func NewPiece(g *Grid, kind Kind, x, y int) *Piece {
	return &Piece{
		kind: kind,
		grid: g,
		x:    x,
		y:    float64(y),
	}
}

// Kind returns the piece variant.
func (p *Piece) Kind() Kind {
	return p.kind
}

// Tag returns the meta tag stamped into the grid when the piece locks.
func (p *Piece) Tag() Tag {
	return p.kind.Tag()
}

// X returns the column of the mask's left edge.
func (p *Piece) X() int {
	return p.x
}

// Y returns the row of the mask's top edge.
func (p *Piece) Y() int {
	return int(p.y)
}

// Rotation returns the current rotation index.
func (p *Piece) Rotation() int {
	return p.rotation
}

// Mask returns the occupancy mask for the current rotation.
func (p *Piece) Mask() Mask {
	return p.kind.Mask(p.rotation)
}

// Width returns the width of the current mask.
func (p *Piece) Width() int {
	return p.Mask().Width()
}

// Height returns the height of the current mask.
func (p *Piece) Height() int {
	return p.Mask().Height()
}

// Cells returns the occupied cells in grid coordinates.
func (p *Piece) Cells() []core.Point {
	rel := p.Mask().Cells()
	out := make([]core.Point, len(rel))
	x, y := p.X(), p.Y()
	for i, c := range rel {
		out[i] = c.Add(x, y)
	}
	return out
}

// Occupies reports whether the piece covers grid cell (x, y).
func (p *Piece) Occupies(x, y int) bool {
	return p.Mask().At(x-p.X(), y-p.Y())
}

// Rotate advances to the next rotation state clockwise.
// The new orientation is not checked against the grid: a rotation next to a
// wall or the stack can leave the piece overlapping or out of bounds until
// the next move attempt fails.
func (p *Piece) Rotate() {
	p.rotation = (p.rotation + 1) % p.kind.Rotations()
}

// TryMoveDown moves the piece down by step cells if the result does not
// collide. Returns false and leaves the piece untouched otherwise.
func (p *Piece) TryMoveDown(step float64) bool {
	prev := p.y
	p.y += step
	if !p.grid.CheckCollision(p) {
		return true
	}
	p.y = prev
	return false
}

// TryMoveHorizontal moves the piece delta columns (negative is left) if the
// result does not collide. Returns false and leaves the piece untouched otherwise.
func (p *Piece) TryMoveHorizontal(delta int) bool {
	p.x += delta
	if !p.grid.CheckCollision(p) {
		return true
	}
	p.x -= delta
	return false
}

// HardDrop moves the piece down one cell at a time until it rests on the
// stack or the floor. Returns the number of rows travelled.
func (p *Piece) HardDrop() int {
	start := p.Y()
	for p.TryMoveDown(1) {
	}
	return p.Y() - start
}
