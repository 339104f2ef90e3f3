package engine

import (
	"errors"
	"fmt"
)

// Cell is the content of one maze square.
type Cell uint8

const (
	CellOpen  Cell = iota // Walkable, never held a dot
	CellWall              // Blocks movement
	CellDot               // Walkable, holds a collectible
	CellEaten             // Walkable, dot already collected
)

func (c Cell) String() string {
	switch c {
	case CellOpen:
		return "open"
	case CellWall:
		return "wall"
	case CellDot:
		return "dot"
	case CellEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// Layout runes understood by ParseLayout.
const (
	RuneWall = '#'
	RuneDot  = '.'
	RuneOpen = ' '
	// RuneOpenAlt lets YAML layouts avoid trailing spaces.
	RuneOpenAlt = '_'
)

// ErrBadLayout is returned for empty, ragged or unparsable layouts.
var ErrBadLayout = errors.New("engine: bad maze layout")

// DefaultLayout is the authored 20x20 maze.
var DefaultLayout = []string{
	"####################",
	"#........#.........#",
	"#.##.###.#.###.###.#",
	"#.##.###.#.###.###.#",
	"#..................#",
	"#.##.#.#####.#.###.#",
	"#....#...#...#.....#",
	"####.### # ###.#####",
	"   #.#       #.#    ",
	"####.# ## ## #.#####",
	"    .  #   #  .     ",
	"####.# ##### #.#####",
	"   #.#       #.#    ",
	"####.# ##### #.#####",
	"#........#.........#",
	"#.##.###.#.###.###.#",
	"#..#..... .....#...#",
	"##.#.#.#####.#.#.###",
	"#....#...#...#.....#",
	"####################",
}

// ParseLayout converts rows of layout runes into cells.
// Every row must have the same length.
func ParseLayout(rows []string) ([][]Cell, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadLayout)
	}

	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("%w: empty first row", ErrBadLayout)
	}

	cells := make([][]Cell, len(rows))
	for r, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrBadLayout, r, len(runes), width)
		}
		cells[r] = make([]Cell, width)
		for c, ch := range runes {
			switch ch {
			case RuneWall:
				cells[r][c] = CellWall
			case RuneDot:
				cells[r][c] = CellDot
			case RuneOpen, RuneOpenAlt:
				cells[r][c] = CellOpen
			default:
				return nil, fmt.Errorf("%w: unknown rune %q at %v", ErrBadLayout, ch, P(r, c))
			}
		}
	}
	return cells, nil
}

// Grid is the maze. Cells are stored row-major: index = row*cols + col.
// The authored layout is kept so Reset can restore every dot.
type Grid struct {
	rows     int
	cols     int
	cells    []Cell
	authored []Cell
}

// NewGrid builds a grid from parsed cells.
func NewGrid(layout [][]Cell) (*Grid, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, fmt.Errorf("%w: no cells", ErrBadLayout)
	}

	g := &Grid{
		rows: len(layout),
		cols: len(layout[0]),
	}
	g.authored = make([]Cell, 0, g.rows*g.cols)
	for r, row := range layout {
		if len(row) != g.cols {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrBadLayout, r, len(row), g.cols)
		}
		g.authored = append(g.authored, row...)
	}
	g.cells = make([]Cell, len(g.authored))
	g.Reset()
	return g, nil
}

// Rows returns the maze height in cells.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the maze width in cells.
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) index(p Pos) int {
	return p.Row*g.cols + p.Col
}

// InBounds reports whether p lies inside the maze.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// CellKind returns the cell at p. Out-of-bounds positions read as walls.
func (g *Grid) CellKind(p Pos) Cell {
	if !g.InBounds(p) {
		return CellWall
	}
	return g.cells[g.index(p)]
}

// IsWall reports whether p blocks movement. Out of bounds counts as wall.
func (g *Grid) IsWall(p Pos) bool {
	return g.CellKind(p) == CellWall
}

// Walkable is the negation of IsWall.
func (g *Grid) Walkable(p Pos) bool {
	return !g.IsWall(p)
}

// Consume collects the dot at p. It returns false when there was no dot,
// including when it was already collected.
func (g *Grid) Consume(p Pos) bool {
	if g.CellKind(p) != CellDot {
		return false
	}
	g.cells[g.index(p)] = CellEaten
	return true
}

// Remaining counts the dots still on the maze.
func (g *Grid) Remaining() int {
	n := 0
	for _, c := range g.cells {
		if c == CellDot {
			n++
		}
	}
	return n
}

// Reset restores the authored layout.
func (g *Grid) Reset() {
	copy(g.cells, g.authored)
}

// Cells returns a row-major copy of the current cells.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := range out {
		out[r] = make([]Cell, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}
