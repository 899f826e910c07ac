package plinko

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-plinko/internal/core"
)

// Visual characters for rendering
const (
	PegChar     = '•'
	CoinChar    = '●'
	GateChar    = '▒'
	DividerChar = '│'
	WallChar    = '┃'
)

// Minimum board area in cells.
const (
	minBoardCols = 16
	minBoardRows = 12
)

// viewport maps board units to screen cells. Terminal cells are roughly
// twice as tall as they are wide, so the board gets two columns per row of
// equal board length.
type viewport struct {
	originX, originY int     // Screen cell of board (0, 0)
	cols, rows       int     // Board size in cells
	scaleX, scaleY   float64 // Board units per cell
	tooSmall         bool
}

// fitViewport reserves the top row for the HUD and the bottom row for hints.
func fitViewport(boardW, boardH float64, screenW, screenH int) viewport {
	rows := screenH - 2
	cols := int(math.Round(float64(rows) * 2 * boardW / boardH))
	if maxCols := screenW - 2; cols > maxCols {
		// Too narrow: shrink rows to keep the aspect ratio.
		cols = maxCols
		rows = int(math.Round(float64(cols) * boardH / (2 * boardW)))
	}

	v := viewport{cols: cols, rows: rows}
	if cols < minBoardCols || rows < minBoardRows {
		v.tooSmall = true
		return v
	}

	v.originX = (screenW - cols) / 2
	v.originY = 1 + (screenH-2-rows)/2
	v.scaleX = boardW / float64(cols)
	v.scaleY = boardH / float64(rows)
	return v
}

func (v viewport) col(x float64) int {
	return v.originX + core.Clamp(int(x/v.scaleX), 0, v.cols-1)
}

func (v viewport) row(y float64) int {
	return v.originY + int(math.Floor(y/v.scaleY))
}

// boardX converts a screen column to the board x at the cell's center.
func (v viewport) boardX(col int) float64 {
	if v.scaleX == 0 {
		return 0
	}
	return (float64(col-v.originX) + 0.5) * v.scaleX
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	v := g.view
	if v.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need about %dx%d", minBoardCols+2, minBoardRows+2))
		return
	}

	ds := g.session.DrawState()
	tally := g.session.Tally()

	g.renderHUD(dst, ds, tally)
	g.renderWalls(dst)
	g.renderGates(dst, ds)
	g.renderPegs(dst, ds)
	if ds.CoinVisible {
		dst.SetColored(v.col(ds.Coin.X), v.row(ds.Coin.Y), CoinChar, ds.Coin.Color)
	}
	g.renderOverlay(dst, ds, tally)
}

func (g *Game) renderHUD(dst *core.Screen, ds DrawState, t Tally) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", t.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Coins: %d", t.CoinsLeft))
	style := ds.Style.Preset().Title
	dst.DrawText(dst.Width()-len(style)-1, 0, style)
}

func (g *Game) renderWalls(dst *core.Screen) {
	v := g.view
	dst.DrawVLine(v.originX-1, v.originY, v.rows, WallChar, core.ColorGray)
	dst.DrawVLine(v.originX+v.cols, v.originY, v.rows, WallChar, core.ColorGray)
}

func (g *Game) renderPegs(dst *core.Screen, ds DrawState) {
	v := g.view
	for _, p := range ds.Pegs {
		dst.SetColored(v.col(p.X), v.row(p.Y), PegChar, p.Color)
	}
}

// renderGates fills each gate band, labels it with its value and draws
// dividers that reach one gate height above the band.
func (g *Game) renderGates(dst *core.Screen, ds DrawState) {
	v := g.view
	bottom := v.originY + v.rows

	for _, gate := range ds.Gates {
		left := v.col(gate.X)
		right := v.col(gate.X + gate.Width - v.scaleX/2)
		top := v.row(gate.Y)
		dst.DrawRect(core.NewRect(left, top, right-left+1, bottom-top), GateChar, gate.Color)

		label := fmt.Sprint(gate.Value)
		labelX := left + (right-left+1-len(label))/2
		dst.DrawTextColored(labelX, top+(bottom-top)/2, label, gate.Color)
	}

	dividerTop := v.row(ds.BoardHeight - 2*ds.GateHeight)
	for i := 1; i < len(ds.Gates); i++ {
		x := v.col(ds.Gates[i].X)
		dst.DrawVLine(x, dividerTop, bottom-dividerTop, DividerChar, core.ColorWhite)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, ds DrawState, t Tally) {
	switch {
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case ds.State == StateGameOver:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Final Score: %d  |  R restart  T switch style", t.Score))
	case ds.State == StateReady:
		dst.DrawTextCentered(dst.Height()-1, "←/→ or mouse to aim  ·  SPACE or click to drop")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
