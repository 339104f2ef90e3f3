package engine

import (
	"math/rand"
	"testing"
)

func newTestGhost(spawn Pos, dir Direction, straight float64) *Ghost {
	gh := NewGhost(GhostSpec{Name: "test", Color: "red", Spawn: spawn}, 1, 30, straight)
	gh.Motion().SetDirection(dir)
	return gh
}

func TestGhostNeverReversesAtJunction(t *testing.T) {
	tests := []struct {
		name    string
		layout  []string
		start   Pos
		heading Direction
		allowed []Direction
	}{
		{
			name: "heading up into a T",
			layout: []string{
				"#####",
				"#####",
				"#   #",
				"## ##",
				"#####",
			},
			start:   P(2, 2),
			heading: DirUp,
			allowed: []Direction{DirLeft, DirRight},
		},
		{
			name: "heading right into a wall",
			layout: []string{
				"#####",
				"## ##",
				"#  ##",
				"## ##",
				"#####",
			},
			start:   P(2, 2),
			heading: DirRight,
			allowed: []Direction{DirUp, DirDown},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGrid(t, tc.layout...)
			rng := rand.New(rand.NewSource(7))
			seen := make(map[Direction]int)

			for range 500 {
				gh := newTestGhost(tc.start, tc.heading, 0.7)
				seen[gh.choose(g, rng)]++
			}

			for d, n := range seen {
				ok := false
				for _, a := range tc.allowed {
					if d == a {
						ok = true
					}
				}
				if !ok {
					t.Errorf("chose %v %d times, allowed only %v", d, n, tc.allowed)
				}
			}
			for _, a := range tc.allowed {
				if seen[a] == 0 {
					t.Errorf("never chose %v in 500 draws", a)
				}
			}
		})
	}
}

func TestGhostDeadEndReverses(t *testing.T) {
	g := newTestGrid(t,
		"#####",
		"#  ##",
		"#####",
	)
	gh := newTestGhost(P(1, 2), DirRight, 0.7)

	if got := gh.choose(g, rand.New(rand.NewSource(1))); got != DirLeft {
		t.Errorf("choose() = %v at a dead end, expected left", got)
	}
}

func TestGhostBoxedInStops(t *testing.T) {
	g := newTestGrid(t,
		"###",
		"# #",
		"###",
	)

	for _, heading := range []Direction{DirNone, DirRight, DirUp} {
		gh := newTestGhost(P(1, 1), heading, 0.7)
		if got := gh.choose(g, rand.New(rand.NewSource(1))); got != DirNone {
			t.Errorf("heading %v: choose() = %v, expected none", heading, got)
		}
	}
}

func TestGhostStraightChance(t *testing.T) {
	// Crossroads: heading right, candidates are up, down and right.
	g := newTestGrid(t,
		"#####",
		"## ##",
		"#   #",
		"## ##",
		"#####",
	)
	rng := rand.New(rand.NewSource(42))

	const trials = 10000
	straight := 0
	for range trials {
		gh := newTestGhost(P(2, 2), DirRight, 0.7)
		if gh.choose(g, rng) == DirRight {
			straight++
		}
	}

	// 0.7 to keep going plus a third of the remaining 0.3
	ratio := float64(straight) / trials
	if ratio < 0.77 || ratio > 0.83 {
		t.Errorf("kept heading %.3f of the time, expected about 0.8", ratio)
	}
}

func TestGhostAlwaysStraightWhenChanceIsOne(t *testing.T) {
	g := newTestGrid(t,
		"#####",
		"## ##",
		"#   #",
		"## ##",
		"#####",
	)
	rng := rand.New(rand.NewSource(3))

	for range 200 {
		gh := newTestGhost(P(2, 2), DirRight, 1)
		if got := gh.choose(g, rng); got != DirRight {
			t.Fatalf("choose() = %v, expected right with straight chance 1", got)
		}
	}
}

func TestGhostWanderInvariants(t *testing.T) {
	cells, err := ParseLayout(DefaultLayout)
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewGrid(cells)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(2024))

	for _, spec := range DefaultSettings().Ghosts {
		gh := NewGhost(spec, 1, 30, 0.7)
		for tick := range 20000 {
			m := gh.Motion()
			prev := m.Direction()

			gh.Tick(g, rng)

			if prev != DirNone && m.Direction() == prev.Opposite() {
				at := m.Pos()
				for _, d := range Cardinals {
					if d != prev.Opposite() && g.Walkable(at.Step(d)) {
						t.Fatalf("%s reversed at %v tick %d while %v was open", spec.Name, at, tick, d)
					}
				}
			}

			x, y := m.Pixel()
			if g.IsWall(P(y/30, x/30)) {
				t.Fatalf("%s entered wall at pixel (%d,%d) tick %d", spec.Name, x, y, tick)
			}
		}
	}
}
