// Package maze implements random maze generation with a solvability check
// and the single-player session that walks a validated maze.
// It has no UI or I/O dependencies so it can be driven by any front end.
package maze

import (
	"fmt"
	"strings"
)

// Cell is the state of a single grid cell.
type Cell uint8

const (
	Wall Cell = iota
	Path
)

// String returns a human-readable name for the cell.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "Wall"
	case Path:
		return "Path"
	default:
		return "Unknown"
	}
}

// Rune returns the ASCII glyph used by Grid.String and ParseGrid.
func (c Cell) Rune() rune {
	if c == Path {
		return '.'
	}
	return '#'
}

// Point is a grid coordinate. X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Step returns the neighbouring point one cell away in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Offset()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four orthogonal moves.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four neighbours in search order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Offset returns the (dx, dy) delta for the direction.
// Y grows downward, so Up is (0, -1).
func (d Direction) Offset() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Grid is a fixed-size rectangular field of cells stored row-major.
// A Grid returned by the Generator is never modified afterwards, so it is
// safe to share between snapshots.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid allocates a width x height grid with every cell set to Wall.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// ParseGrid builds a grid from rows of '#' (Wall) and '.' (Path).
// All rows must have the same length.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("maze: empty grid")
	}
	width := len(rows[0])
	g := NewGrid(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("maze: row %d has width %d, expected %d", y, len(row), width)
		}
		for x, r := range row {
			switch r {
			case '#':
				g.set(Point{x, y}, Wall)
			case '.':
				g.set(Point{x, y}, Path)
			default:
				return nil, fmt.Errorf("maze: unexpected %q at (%d,%d)", r, x, y)
			}
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsBorder reports whether p lies on the outermost ring of the grid.
func (g *Grid) IsBorder(p Point) bool {
	return p.X == 0 || p.Y == 0 || p.X == g.width-1 || p.Y == g.height-1
}

// At returns the cell at p. Out-of-bounds points read as Wall.
func (g *Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[g.index(p)]
}

// IsPath reports whether p is an in-bounds Path cell.
func (g *Grid) IsPath(p Point) bool {
	return g.At(p) == Path
}

// CountPaths returns the number of Path cells.
func (g *Grid) CountPaths() int {
	n := 0
	for _, c := range g.cells {
		if c == Path {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid one row per line using '#' and '.'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.width*g.height + g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.cells[y*g.width+x].Rune())
		}
	}
	return sb.String()
}

// Rows returns the grid as ASCII rows, the inverse of ParseGrid.
func (g *Grid) Rows() []string {
	if g.height == 0 {
		return nil
	}
	return strings.Split(g.String(), "\n")
}

func (g *Grid) index(p Point) int {
	return p.Y*g.width + p.X
}

// set writes a cell. Callers guarantee p is in bounds.
func (g *Grid) set(p Point, c Cell) {
	g.cells[g.index(p)] = c
}
