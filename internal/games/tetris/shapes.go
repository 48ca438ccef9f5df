package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/termtris/internal/core"
)

// Tag is the cosmetic marker a locked cell keeps from the piece that placed it.
// The zero value means the cell is empty.
type Tag byte

// Empty marks an unoccupied grid cell.
const Empty Tag = 0

// Meta tags, one per variant.
const (
	TagCyan    Tag = 'c'
	TagYellow  Tag = 'y'
	TagBlue    Tag = 'b'
	TagOrange  Tag = 'o'
	TagGreen   Tag = 'g'
	TagRed     Tag = 'r'
	TagMagenta Tag = 'm'
)

// Color returns the display color for a tag.
func (t Tag) Color() core.Color {
	switch t {
	case TagCyan:
		return core.ColorCyan
	case TagYellow:
		return core.ColorYellow
	case TagBlue:
		return core.ColorBlue
	case TagOrange:
		return core.ColorOrange
	case TagGreen:
		return core.ColorGreen
	case TagRed:
		return core.ColorRed
	case TagMagenta:
		return core.ColorMagenta
	default:
		return core.ColorDefault
	}
}

// Kind identifies one of the seven piece variants.
type Kind int

const (
	KindLine Kind = iota
	KindBlock
	KindJ
	KindL
	KindS
	KindZ
	KindT

	kindCount
)

// Kinds returns every variant in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := range kindCount {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the variant name.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return catalog[k].name
}

// Tag returns the variant's meta tag.
func (k Kind) Tag() Tag {
	return catalog[k].tag
}

// Rotations returns the number of distinct rotation states.
func (k Kind) Rotations() int {
	return len(catalog[k].rotations)
}

// Mask returns the rotation state at index r, wrapping modulo the state count.
func (k Kind) Mask(r int) Mask {
	rots := catalog[k].rotations
	return rots[r%len(rots)]
}

// Mask is a minimal bounding-box occupancy grid for one rotation state.
type Mask struct {
	w, h  int
	occ   []bool       // row-major, index y*w+x
	cells []core.Point // occupied cells, top-to-bottom, left-to-right
}

// parseMask builds a mask from rows of equal length; '#' marks an occupied cell.
func parseMask(rows ...string) Mask {
	h := len(rows)
	w := len(rows[0])
	m := Mask{w: w, h: h, occ: make([]bool, w*h)}
	for y, row := range rows {
		if len(row) != w {
			panic(fmt.Sprintf("tetris: mask row %d has width %d, expected %d", y, len(row), w))
		}
		for x := range w {
			if row[x] == '#' {
				m.occ[y*w+x] = true
				m.cells = append(m.cells, core.Point{X: x, Y: y})
			}
		}
	}
	return m
}

// Width returns the mask width in cells.
func (m Mask) Width() int {
	return m.w
}

// Height returns the mask height in cells.
func (m Mask) Height() int {
	return m.h
}

// At reports whether (x, y) inside the mask is occupied.
// Coordinates outside the mask are unoccupied.
func (m Mask) At(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.occ[y*m.w+x]
}

// Cells returns the occupied cells relative to the mask's top-left corner.
// The returned slice is shared; callers must not modify it.
func (m Mask) Cells() []core.Point {
	return m.cells
}

// Equal reports whether two masks have the same size and occupancy.
func (m Mask) Equal(other Mask) bool {
	if m.w != other.w || m.h != other.h {
		return false
	}
	for i := range m.occ {
		if m.occ[i] != other.occ[i] {
			return false
		}
	}
	return true
}

// String renders the mask with '#' for occupied and ' ' for empty cells.
func (m Mask) String() string {
	var sb strings.Builder
	for y := range m.h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range m.w {
			if m.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

// shape is the static definition of a variant.
type shape struct {
	name      string
	tag       Tag
	rotations []Mask // clockwise order starting at spawn orientation
}

// catalog holds every variant, indexed by Kind.
var catalog = [kindCount]shape{
	KindLine: {
		name: "Line",
		tag:  TagCyan,
		rotations: []Mask{
			parseMask(
				"  # ",
				"  # ",
				"  # ",
				"  # "),
			parseMask(
				"    ",
				"    ",
				"####",
				"    "),
			parseMask(
				" #  ",
				" #  ",
				" #  ",
				" #  "),
			parseMask(
				"    ",
				"####",
				"    ",
				"    "),
		},
	},
	KindBlock: {
		name: "Block",
		tag:  TagYellow,
		rotations: []Mask{
			parseMask(
				"##",
				"##"),
		},
	},
	KindJ: {
		name: "J",
		tag:  TagBlue,
		rotations: []Mask{
			parseMask(
				" # ",
				" # ",
				"## "),
			parseMask(
				"#  ",
				"###",
				"   "),
			parseMask(
				" ##",
				" # ",
				" # "),
			parseMask(
				"   ",
				"###",
				"  #"),
		},
	},
	KindL: {
		name: "L",
		tag:  TagOrange,
		rotations: []Mask{
			parseMask(
				" # ",
				" # ",
				" ##"),
			parseMask(
				"   ",
				"###",
				"#  "),
			parseMask(
				"## ",
				" # ",
				" # "),
			parseMask(
				"  #",
				"###",
				"   "),
		},
	},
	KindS: {
		name: "S",
		tag:  TagGreen,
		rotations: []Mask{
			parseMask(
				" ##",
				"## ",
				"   "),
			parseMask(
				" # ",
				" ##",
				"  #"),
			parseMask(
				"   ",
				" ##",
				"## "),
			parseMask(
				"#  ",
				"## ",
				" # "),
		},
	},
	KindZ: {
		name: "Z",
		tag:  TagRed,
		rotations: []Mask{
			parseMask(
				"## ",
				" ##",
				"   "),
			parseMask(
				"  #",
				" ##",
				" # "),
			parseMask(
				"   ",
				"## ",
				" ##"),
			parseMask(
				" # ",
				"## ",
				"#  "),
		},
	},
	KindT: {
		name: "T",
		tag:  TagMagenta,
		rotations: []Mask{
			parseMask(
				" # ",
				"###",
				"   "),
			parseMask(
				" # ",
				" ##",
				" # "),
			parseMask(
				"   ",
				"###",
				" # "),
			parseMask(
				" # ",
				"## ",
				" # "),
		},
	},
}
