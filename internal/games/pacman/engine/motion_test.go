package engine

import "testing"

func TestMotionStartsCentered(t *testing.T) {
	m := NewMotion(P(10, 10), 2, 30)

	x, y := m.Pixel()
	if x != 315 || y != 315 {
		t.Errorf("Pixel() = (%d,%d), expected (315,315)", x, y)
	}
	if !m.Centered() {
		t.Error("new unit should be centered")
	}
	if m.Direction() != DirNone || m.Pending() != DirNone {
		t.Error("new unit should be at rest with no pending turn")
	}
}

func TestMotionTurnAtCenter(t *testing.T) {
	tests := []struct {
		name        string
		layout      []string
		start       Pos
		wantDir     Direction
		wantPending Direction
		wantDX      int
		wantDY      int
	}{
		{
			name: "pending turn taken when open",
			layout: []string{
				"#####",
				"## ##",
				"#   #",
				"#####",
			},
			start:       P(2, 2),
			wantDir:     DirUp,
			wantPending: DirNone,
			wantDY:      -2,
		},
		{
			name: "blocked turn keeps heading and stays buffered",
			layout: []string{
				"#####",
				"#####",
				"#   #",
				"#####",
			},
			start:       P(2, 2),
			wantDir:     DirRight,
			wantPending: DirUp,
			wantDX:      2,
		},
		{
			name: "blocked turn and blocked forward stops",
			layout: []string{
				"#####",
				"#####",
				"#   #",
				"#####",
			},
			start:       P(2, 3),
			wantDir:     DirNone,
			wantPending: DirUp,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGrid(t, tc.layout...)
			m := NewMotion(tc.start, 2, 30)
			m.SetDirection(DirRight)
			m.SetPending(DirUp)
			x0, y0 := m.Pixel()

			m.Tick(g, nil)

			if m.Direction() != tc.wantDir {
				t.Errorf("Direction() = %v, expected %v", m.Direction(), tc.wantDir)
			}
			if m.Pending() != tc.wantPending {
				t.Errorf("Pending() = %v, expected %v", m.Pending(), tc.wantPending)
			}
			x, y := m.Pixel()
			if x-x0 != tc.wantDX || y-y0 != tc.wantDY {
				t.Errorf("moved by (%d,%d), expected (%d,%d)", x-x0, y-y0, tc.wantDX, tc.wantDY)
			}
		})
	}
}

func TestMotionNoTurnBetweenCenters(t *testing.T) {
	g := newTestGrid(t,
		"#####",
		"#   #",
		"#   #",
		"#####",
	)
	m := NewMotion(P(1, 1), 2, 30)
	m.SetDirection(DirRight)
	m.Tick(g, nil)

	m.SetPending(DirDown)
	for range 5 {
		m.Tick(g, nil)
		if m.Direction() != DirRight {
			t.Fatalf("turned to %v before reaching a center", m.Direction())
		}
	}
}

func TestMotionArrivesExactly(t *testing.T) {
	g := newTestGrid(t, "#    #")
	m := NewMotion(P(0, 1), 2, 30)
	m.SetDirection(DirRight)

	arrivals := 0
	for range 15 {
		m.Tick(g, func(Pos) { arrivals++ })
	}
	if !m.Centered() {
		x, y := m.Pixel()
		t.Fatalf("expected unit centered after 15 ticks, at (%d,%d)", x, y)
	}
	if m.Pos() != P(0, 1) {
		t.Errorf("Pos() = %v before arrival tick, expected (0,1)", m.Pos())
	}

	m.Tick(g, func(p Pos) {
		arrivals++
		if p != P(0, 2) {
			t.Errorf("arrive hook got %v, expected (0,2)", p)
		}
	})
	if m.Pos() != P(0, 2) {
		t.Errorf("Pos() = %v after arrival, expected (0,2)", m.Pos())
	}
	if arrivals != 2 {
		t.Errorf("arrive hook ran %d times, expected 2", arrivals)
	}
}

func TestMotionStopsAtWall(t *testing.T) {
	g := newTestGrid(t, "#   #")
	m := NewMotion(P(0, 1), 3, 30)
	m.SetDirection(DirRight)

	for range 100 {
		m.Tick(g, nil)
	}
	if m.Direction() != DirNone {
		t.Errorf("Direction() = %v, expected none at the wall", m.Direction())
	}
	if m.Pos() != P(0, 3) {
		t.Errorf("Pos() = %v, expected (0,3)", m.Pos())
	}
	x, _ := m.Pixel()
	if x != 3*30+15 {
		t.Errorf("x = %d, expected %d", x, 3*30+15)
	}
}

func TestMotionCanMoveOutOfBounds(t *testing.T) {
	g := newTestGrid(t, "   ")
	m := NewMotion(P(0, 0), 1, 10)

	if m.CanMove(g, DirLeft) || m.CanMove(g, DirUp) || m.CanMove(g, DirDown) {
		t.Error("edges of the maze should block movement")
	}
	if !m.CanMove(g, DirRight) {
		t.Error("open neighbour should be walkable")
	}
	if m.CanMove(g, DirNone) {
		t.Error("DirNone never moves")
	}
}
