package mazerun

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Layout constants
const (
	cellWidth   = 2  // Screen columns per maze cell
	hudRows     = 2  // Status line + gap
	footerRows  = 1  // Key help
	minHUDWidth = 44 // Room for the status line
)

// Glyphs
const (
	glyphWall    = '█'
	glyphPlayer  = '@'
	glyphGoal    = '◎'
	glyphVisited = '·'
)

// Render draws the HUD, the maze and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)

	if g.snap.Grid != nil {
		g.renderBoard(dst)
	}

	switch {
	case g.genErr != nil:
		g.renderOverlay(dst, core.ColorRed,
			"GENERATION FAILED",
			fmt.Sprintf("No solvable maze after %d attempts.", g.session.LastGeneration().Attempts),
			"Press R to try again",
		)
	case g.snap.Status == maze.StatusWon:
		g.renderOverlay(dst, core.ColorBrightGreen,
			"TRANSFER COMPLETE!",
			fmt.Sprintf("Portal reached in %d moves.", g.snap.Moves),
			fmt.Sprintf("Press Enter to start level %d", g.snap.Level),
		)
	case g.paused:
		g.renderOverlay(dst, core.ColorYellow, "PAUSED", "Press P to resume")
	}

	dst.DrawTextCentered(dst.Height()-1, "arrows/wasd/hjkl move  r new maze  p pause  q quit", core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen) {
	status := fmt.Sprintf(" LEVEL %d   MOVES %d   WALLS %.0f%%", g.snap.Level, g.snap.Moves, g.snap.Density*100)
	dst.DrawText(0, 0, status, core.ColorWhite)

	title := g.Title() + " "
	dst.DrawText(dst.Width()-len([]rune(title)), 0, title, core.ColorCyan)
}

// boardOrigin returns the top-left screen position of the maze.
func (g *Game) boardOrigin(dst *core.Screen) (int, int) {
	w, h := g.boardSize()
	area := core.CenterIn(dst.Width(), dst.Height()-hudRows-footerRows, w, h)
	return area.X, area.Y + hudRows
}

func (g *Game) renderBoard(dst *core.Screen) {
	grid := g.snap.Grid
	ox, oy := g.boardOrigin(dst)

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			p := maze.Point{X: x, Y: y}
			sx, sy := ox+x*cellWidth, oy+y

			switch {
			case p == g.snap.Position:
				dst.SetCell(sx, sy, glyphPlayer, core.ColorBrightCyan)
			case p == g.snap.Goal:
				dst.SetCell(sx, sy, glyphGoal, core.ColorBrightGreen)
			case grid.At(p) == maze.Wall:
				dst.SetCell(sx, sy, glyphWall, core.ColorDarkGray)
				dst.SetCell(sx+1, sy, glyphWall, core.ColorDarkGray)
			case g.session.Visited(p):
				dst.SetCell(sx, sy, glyphVisited, core.ColorBlue)
			}
		}
	}
}

// renderOverlay draws a boxed message over the centre of the board.
func (g *Game) renderOverlay(dst *core.Screen, c core.Color, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 4

	box := core.CenterIn(dst.Width(), dst.Height(), width, height)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, title, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorWhite)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.boardSize()
	needW := core.Max(w, minHUDWidth)
	needH := h + hudRows + footerRows

	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(mid, fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()), core.ColorWhite)
}
