package pacman

import (
	"strings"
	"testing"

	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/engine"
)

func TestRenderDefaultMaze(t *testing.T) {
	defaults := engine.DefaultSettings()
	g := newTestGame(t, Options{Settings: &defaults})
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") || !strings.Contains(screen.Row(0), "Dots: ") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}

	// 20x20 maze, two columns per cell, centered below the HUD.
	ox, oy := (80-40)/2, hudHeight+(24-hudHeight-20)/2
	if g.view.originX != ox || g.view.originY != oy {
		t.Fatalf("origin = (%d,%d), expected (%d,%d)", g.view.originX, g.view.originY, ox, oy)
	}

	if c := screen.GetCell(ox, oy); c.Rune != '█' || c.Color != core.ColorBlue {
		t.Errorf("top-left wall cell = %+v", c)
	}
	if c := screen.GetCell(ox+2, oy+1); c.Rune != '·' {
		t.Errorf("first dot cell = %+v", c)
	}

	// Player rests at (10,10), mouth open, facing left until it moves.
	px := ox + 10*cellColumns
	if got := string([]rune{screen.Get(px, oy+10), screen.Get(px+1, oy+10)}); got != ">)" {
		t.Errorf("player glyph = %q, expected \">)\"", got)
	}
	if c := screen.GetCell(px, oy+10); c.Color != core.ColorBrightYellow {
		t.Errorf("player color = %v", c.Color)
	}

	// Blinky starts at (4,3) in red.
	gx := ox + 3*cellColumns
	if c := screen.GetCell(gx, oy+4); c.Rune != 'M' || c.Color != core.ColorRed {
		t.Errorf("ghost cell = %+v", c)
	}
}

func TestActorOriginHalfSteps(t *testing.T) {
	g := &Game{}
	tests := []struct {
		x, y   int
		wx, wy int
	}{
		{15, 15, 0, 0}, // Center of (0,0)
		{29, 15, 0, 0},
		{30, 15, 1, 0}, // Half way to (0,1)
		{45, 15, 2, 0}, // Center of (0,1)
		{15, 44, 0, 1},
	}
	for _, tc := range tests {
		x, y := g.actorOrigin(30, engine.ActorView{X: tc.x, Y: tc.y})
		if x != tc.wx || y != tc.wy {
			t.Errorf("actorOrigin(%d,%d) = (%d,%d), expected (%d,%d)", tc.x, tc.y, x, y, tc.wx, tc.wy)
		}
	}
}

func TestGlyphs(t *testing.T) {
	if playerGlyph(engine.DirRight, true) != "(<" || playerGlyph(engine.DirUp, false) != "()" {
		t.Error("unexpected player glyphs")
	}
	for _, d := range append(engine.Cardinals[:], engine.DirNone) {
		if len([]rune(ghostGlyph(d))) != cellColumns {
			t.Errorf("ghost glyph for %v is not %d columns", d, cellColumns)
		}
		if len([]rune(playerGlyph(d, true))) != cellColumns {
			t.Errorf("player glyph for %v is not %d columns", d, cellColumns)
		}
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g := newTestGame(t, Options{Settings: corridor()})
	g.Step(press(core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("expected the pause box")
	}
}
