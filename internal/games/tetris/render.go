package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// Each board cell is drawn two columns wide so blocks look square.
const (
	cellW     = 2
	panelGap  = 2
	panelW    = 18
	blockRune = '█'
	emptyRune = '·'
)

var palette = map[engine.ColorID]core.Color{
	engine.ColorCyan:    core.ColorCyan,
	engine.ColorYellow:  core.ColorYellow,
	engine.ColorPurple:  core.ColorPurple,
	engine.ColorRed:     core.ColorRed,
	engine.ColorGreen:   core.ColorGreen,
	engine.ColorMagenta: core.ColorMagenta,
	engine.ColorOrange:  core.ColorOrange,
}

// ScreenColor maps a piece color to the platform palette.
func ScreenColor(c engine.ColorID) core.Color {
	if col, ok := palette[c]; ok {
		return col
	}
	return core.ColorDefault
}

// layout positions the well and the side panel on the screen.
type layout struct {
	well  core.Rect // including the border
	panel core.Rect
}

// MinScreenSize returns the smallest screen that fits a w x h board.
func MinScreenSize(w, h int) (int, int) {
	return w*cellW + 2 + panelGap + panelW, h + 2
}

func computeLayout(screen core.Rect, w, h int) (layout, bool) {
	minW, minH := MinScreenSize(w, h)
	if screen.W < minW || screen.H < minH {
		return layout{}, false
	}
	area := screen.Centered(minW, minH)
	well := core.NewRect(area.X, area.Y, w*cellW+2, h+2)
	panel := core.NewRect(well.Right()+panelGap, area.Y, panelW, minH)
	return layout{well: well, panel: panel}, true
}

// Render draws the board, the side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	lay, ok := computeLayout(dst.Bounds(), snap.Width, snap.Height)
	if !ok {
		minW, minH := MinScreenSize(snap.Width, snap.Height)
		mid := dst.Height() / 2
		dst.DrawTextCentered(dst.Bounds(), mid-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Bounds(), mid+1, fmt.Sprintf("Need %dx%d", minW, minH), core.ColorGray)
		return
	}

	g.renderWell(dst, lay.well, snap)
	g.renderPanel(dst, lay.panel, snap)
	if snap.Phase == engine.PhaseGameOver {
		renderGameOver(dst, lay.well, snap.Score)
	}
}

func (g *Game) renderWell(dst *core.Screen, well core.Rect, snap engine.Snapshot) {
	dst.DrawBox(well, core.ColorGray)

	grid := snap.Composite()
	for y, row := range grid {
		for x, c := range row {
			sx := well.X + 1 + x*cellW
			sy := well.Y + 1 + y
			if c == engine.ColorEmpty {
				dst.SetCell(sx+1, sy, core.Cell{Rune: emptyRune, Color: core.ColorGray})
				continue
			}
			cell := core.Cell{Rune: blockRune, Color: ScreenColor(c)}
			dst.SetCell(sx, sy, cell)
			dst.SetCell(sx+1, sy, cell)
		}
	}
}

func (g *Game) renderPanel(dst *core.Screen, panel core.Rect, snap engine.Snapshot) {
	y := panel.Y
	line := func(text string, c core.Color) {
		dst.DrawTextColor(panel.X, y, text, c)
		y++
	}

	line(g.Title(), core.ColorBrightWhite)
	line(fmt.Sprintf("Mode   %s", g.Mode()), core.ColorGray)
	line(fmt.Sprintf("Level  %s", g.preset), core.ColorGray)
	y++
	line(fmt.Sprintf("Score  %d", snap.Score), core.ColorYellow)
	line(fmt.Sprintf("Lines  %d", snap.Lines), core.ColorWhite)
	line(fmt.Sprintf("Pieces %d", snap.Pieces), core.ColorWhite)
	line(fmt.Sprintf("Speed  %dms", snap.TickIntervalMs), core.ColorWhite)
}

// renderGameOver draws a framed message over the middle of the well.
func renderGameOver(dst *core.Screen, well core.Rect, score int) {
	box := well.Centered(well.W-2, 5)
	dst.DrawRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorRed)
	dst.DrawTextCentered(box, box.Y+1, "GAME OVER", core.ColorRed)
	dst.DrawTextCentered(box, box.Y+2, fmt.Sprintf("Score %d", score), core.ColorYellow)
	dst.DrawTextCentered(box, box.Y+3, "r restart", core.ColorGray)
}
