package tetris

import "fmt"

// Grid is the playfield: the cells of every piece that has locked.
// Cells are stored in row-major order: index = y*W + x, with (0,0) at the
// top-left and y growing downward.
type Grid struct {
	w, h  int
	cells []Tag
}

// Default playfield dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// NewGrid creates an empty grid. Panics on non-positive dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("tetris: invalid grid size %dx%d", w, h))
	}
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]Tag, w*h),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(x, y int) int {
	return y*g.w + x
}

// InBounds returns true if (x, y) is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get returns the tag at (x, y). Out-of-bounds cells read as Empty.
func (g *Grid) Get(x, y int) Tag {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[g.index(x, y)]
}

// Set stores a tag at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, t Tag) {
	if g.InBounds(x, y) {
		g.cells[g.index(x, y)] = t
	}
}

// IsEmpty reports whether the cell at (x, y) is untagged.
// Callers bounds-check first; out-of-bounds coordinates are not meaningful here.
func (g *Grid) IsEmpty(x, y int) bool {
	return g.cells[g.index(x, y)] == Empty
}

// IsOutOfBounds reports whether any occupied cell of the piece lies outside the grid.
func (g *Grid) IsOutOfBounds(p *Piece) bool {
	for _, c := range p.Cells() {
		if !g.InBounds(c.X, c.Y) {
			return true
		}
	}
	return false
}

// CheckCollision reports whether the piece is out of bounds or overlaps a
// locked cell. Out of bounds counts as a collision.
func (g *Grid) CheckCollision(p *Piece) bool {
	if g.IsOutOfBounds(p) {
		return true
	}
	for _, c := range p.Cells() {
		if !g.IsEmpty(c.X, c.Y) {
			return true
		}
	}
	return false
}

// Place copies the piece's occupied cells into the grid with its tag.
// It does not check for overlap with locked cells; callers confirm the
// resting position first. A piece that is out of bounds is not placed at all.
func (g *Grid) Place(p *Piece) {
	if g.IsOutOfBounds(p) {
		return
	}
	tag := p.Tag()
	for _, c := range p.Cells() {
		g.cells[g.index(c.X, c.Y)] = tag
	}
}

// ClearCompleteLines removes every full row, shifting the rows above it down.
// Rows are scanned bottom-to-top and a row index is re-examined after a
// shift, so stacked full rows are all removed in one call.
// Returns the number of rows removed.
func (g *Grid) ClearCompleteLines() int {
	cleared := 0
	for y := g.h - 1; y >= 0; {
		if !g.rowComplete(y) {
			y--
			continue
		}
		cleared++
		g.collapseRow(y)
	}
	return cleared
}

// rowComplete reports whether every cell in row y is occupied.
func (g *Grid) rowComplete(y int) bool {
	row := g.cells[g.index(0, y):g.index(0, y+1)]
	for _, t := range row {
		if t == Empty {
			return false
		}
	}
	return true
}

// collapseRow drops row y and moves every row above it down by one.
// Row 0 becomes empty.
func (g *Grid) collapseRow(y int) {
	copy(g.cells[g.w:g.index(0, y+1)], g.cells[:g.index(0, y)])
	clear(g.cells[:g.w])
}

// String renders the grid, one row per line, '.' for empty cells.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.w+1)*g.h)
	for y := range g.h {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for x := range g.w {
			t := g.Get(x, y)
			if t == Empty {
				buf = append(buf, '.')
			} else {
				buf = append(buf, byte(t))
			}
		}
	}
	return string(buf)
}
