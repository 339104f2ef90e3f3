package engine

// Motion moves an actor through the maze in pixel space while keeping turns
// aligned to cell centers.
//
// Pixel coordinates are integers; a unit starts on a cell center and moves
// speed pixels per tick, so it lands exactly on every later center as long
// as speed divides the cell size.
type Motion struct {
	x, y    int
	pos     Pos
	dir     Direction
	pending Direction
	speed   int
	cell    int
}

// NewMotion places a unit at rest on the center of start.
func NewMotion(start Pos, speed, cellSize int) *Motion {
	m := &Motion{speed: speed, cell: cellSize}
	m.Place(start)
	return m
}

// Place teleports the unit to the center of p and stops it.
func (m *Motion) Place(p Pos) {
	m.pos = p
	m.x = p.Col*m.cell + m.cell/2
	m.y = p.Row*m.cell + m.cell/2
	m.dir = DirNone
	m.pending = DirNone
}

// Pixel returns the unit's pixel position.
func (m *Motion) Pixel() (x, y int) { return m.x, m.y }

// Pos returns the last cell the unit was centered on.
func (m *Motion) Pos() Pos { return m.pos }

// Direction returns the current heading.
func (m *Motion) Direction() Direction { return m.dir }

// Pending returns the buffered heading, DirNone when empty.
func (m *Motion) Pending() Direction { return m.pending }

// Speed returns pixels travelled per tick.
func (m *Motion) Speed() int { return m.speed }

// SetPending buffers a heading to try at the next cell center.
func (m *Motion) SetPending(d Direction) { m.pending = d }

// SetDirection overrides the heading. Callers must only set headings toward
// a walkable neighbour while centered.
func (m *Motion) SetDirection(d Direction) { m.dir = d }

// Centered reports whether both coordinates sit exactly on a cell midpoint.
func (m *Motion) Centered() bool {
	half := m.cell / 2
	return m.x%m.cell == half && m.y%m.cell == half
}

// CanMove reports whether the neighbour in direction d is walkable from the
// current cell.
func (m *Motion) CanMove(g *Grid, d Direction) bool {
	if d == DirNone {
		return false
	}
	return g.Walkable(m.pos.Step(d))
}

// Tick advances the unit one frame. When centered, the grid position is
// refreshed, arrive runs for caller side effects, and then the pending and
// forward headings are resolved against the maze before moving.
func (m *Motion) Tick(g *Grid, arrive func(Pos)) {
	if m.Centered() {
		m.pos = Pos{Row: m.y / m.cell, Col: m.x / m.cell}

		if arrive != nil {
			arrive(m.pos)
		}

		if m.pending != DirNone && m.CanMove(g, m.pending) {
			m.dir = m.pending
			m.pending = DirNone
		}

		if m.dir != DirNone && !m.CanMove(g, m.dir) {
			m.dir = DirNone
		}
	}

	if m.dir != DirNone {
		dx, dy := m.dir.Vector()
		m.x += dx * m.speed
		m.y += dy * m.speed
	}
}
