package pacman

import (
	"fmt"

	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/engine"
)

const (
	hudHeight   = 2 // Status line and separator
	cellColumns = 2 // Terminal columns per maze cell, keeps cells roughly square

	restartLabel = "[ Play Again ]"
)

// view is where the maze landed on the last rendered screen.
type view struct {
	originX, originY int
	tooSmall         bool
	restart          core.Rect // Empty unless the game-over box is showing
}

func (g *Game) layout(dst *core.Screen) view {
	grid := g.round.Grid()
	w, h := grid.Cols()*cellColumns, grid.Rows()
	if dst.Width() < w || dst.Height() < h+hudHeight {
		return view{tooSmall: true}
	}
	return view{
		originX: (dst.Width() - w) / 2,
		originY: hudHeight + (dst.Height()-hudHeight-h)/2,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.round == nil {
		return
	}

	snap := g.round.Snapshot()
	g.view = g.layout(dst)

	g.renderHUD(dst, snap)

	if g.view.tooSmall {
		grid := g.round.Grid()
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", grid.Cols()*cellColumns, grid.Rows()+hudHeight))
		return
	}

	g.renderMaze(dst, snap)
	for _, gh := range snap.Ghosts {
		g.renderGhost(dst, snap.CellSize, gh)
	}
	g.renderPlayer(dst, snap.CellSize, snap.Player)

	switch {
	case snap.GameOver:
		g.renderGameOver(dst, snap)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot) {
	dst.DrawTextColor(1, 0, "PAC-MAN", core.ColorBrightYellow)
	dst.DrawText(10, 0, fmt.Sprintf("Score: %d  High: %d  Dots: %d", snap.Score, snap.High, snap.DotsLeft))

	for x := range dst.Width() {
		dst.SetWithColor(x, 1, '─', core.ColorGray)
	}
}

func (g *Game) renderMaze(dst *core.Screen, snap engine.Snapshot) {
	for r, row := range snap.Cells {
		y := g.view.originY + r
		for c, cell := range row {
			x := g.view.originX + c*cellColumns
			switch cell {
			case engine.CellWall:
				dst.SetWithColor(x, y, '█', core.ColorBlue)
				dst.SetWithColor(x+1, y, '█', core.ColorBlue)
			case engine.CellDot:
				dst.SetWithColor(x, y, '·', core.ColorWhite)
			}
		}
	}
}

// actorOrigin maps an actor's pixel center to the left column and row of
// its two-column glyph. Columns move in half-cell steps, rows in whole cells.
func (g *Game) actorOrigin(cellSize int, a engine.ActorView) (x, y int) {
	x = g.view.originX + (cellColumns*a.X-cellSize)/cellSize
	y = g.view.originY + a.Y/cellSize
	return x, y
}

// playerGlyph returns the two-column sprite; the open mouth faces the heading.
func playerGlyph(facing engine.Direction, open bool) string {
	if !open {
		return "()"
	}
	switch facing {
	case engine.DirRight:
		return "(<"
	case engine.DirUp:
		return "\\/"
	case engine.DirDown:
		return "/\\"
	default:
		return ">)"
	}
}

// ghostGlyph returns the two-column sprite with eyes toward the heading.
func ghostGlyph(d engine.Direction) string {
	switch d {
	case engine.DirRight:
		return "M>"
	case engine.DirLeft:
		return "<M"
	case engine.DirUp:
		return "M^"
	case engine.DirDown:
		return "Mv"
	default:
		return "MM"
	}
}

func (g *Game) renderPlayer(dst *core.Screen, cellSize int, p engine.ActorView) {
	facing := p.Dir
	if facing == engine.DirNone {
		facing = g.facing
	}
	x, y := g.actorOrigin(cellSize, p)
	dst.DrawTextColor(x, y, playerGlyph(facing, p.MouthOpen), core.ColorBrightYellow)
}

func (g *Game) renderGhost(dst *core.Screen, cellSize int, gh engine.ActorView) {
	x, y := g.actorOrigin(cellSize, gh)
	dst.DrawTextColor(x, y, ghostGlyph(gh.Dir), core.ParseColor(gh.Color))
}

func (g *Game) renderGameOver(dst *core.Screen, snap engine.Snapshot) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("High:  %d", snap.High),
		"",
		restartLabel,
		"",
		"R restart  Q quit",
	}
	box := g.drawBox(dst, lines)

	// The button row is the sixth text line inside the box.
	row := box.Y + 1 + 5
	col := box.X + (box.W-len(restartLabel))/2
	dst.DrawTextColor(col, row, restartLabel, core.ColorBrightGreen)
	g.view.restart = core.NewRect(col, row, len(restartLabel), 1)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	g.drawBox(dst, []string{line1, "", line2})
}

// drawBox clears a framed box in the middle of dst and writes lines centered
// inside it, one per row. It returns the frame.
func (g *Game) drawBox(dst *core.Screen, lines []string) core.Rect {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.CenteredIn(dst.Bounds(), width+4, len(lines)+2)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawText(x, box.Y+1+i, l)
	}
	return box
}
