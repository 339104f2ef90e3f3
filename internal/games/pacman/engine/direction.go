// Package engine contains the maze movement and collision rules for Pac-Man.
// It has no terminal or platform dependencies; the pacman package adapts it
// to the arcade platform and draws its snapshots.
package engine

import "fmt"

// Direction is a movement heading on the maze.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Cardinals lists the four movable directions in the order ghosts consider them.
var Cardinals = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Vector returns the unit delta for the direction in pixel space.
// X grows to the right, Y grows downward.
func (d Direction) Vector() (dx, dy int) {
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

// Opposite returns the reverse heading. DirNone has no opposite and maps to itself.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Pos is a cell coordinate on the maze.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// Step returns the neighbouring cell in the given direction.
func (p Pos) Step(d Direction) Pos {
	dx, dy := d.Vector()
	return Pos{Row: p.Row + dy, Col: p.Col + dx}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
