package tetris

import (
	"fmt"

	"github.com/akarpov/termtris/internal/core"
)

// Rendering layout constants. Every grid cell is two terminal columns wide
// so the well looks roughly square.
const (
	cellW    = 2
	wellW    = Width*cellW + 2 // playfield plus border
	wellH    = Height + 2
	sidebarW = 14
	layoutW  = wellW + 1 + sidebarW
)

// Cell glyphs, swappable for terminals without block-glyph support.
var (
	fillRune  = '█'
	ghostRune = '░'
)

// SetASCIIStyle switches the renderer between unicode block cells and a
// plain ASCII fallback.
func SetASCIIStyle(enabled bool) {
	if enabled {
		fillRune, ghostRune = '#', '.'
	} else {
		fillRune, ghostRune = '█', '░'
	}
}

// Render draws the current frame into the screen buffer: bordered well,
// locked cells, ghost, active piece, sidebar (score, level, hold, next) and
// a state overlay when not playing. The buffer is pre-cleared by the caller.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < layoutW || dst.Height() < wellH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need at least %dx%d", layoutW, wellH))
		return
	}

	wellX := (dst.Width() - layoutW) / 2
	wellY := (dst.Height() - wellH) / 2

	g.renderWell(dst, wellX, wellY)
	if g.state == StatePlay || g.state == StatePause {
		g.renderGhost(dst, wellX, wellY)
		g.renderActivePiece(dst, wellX, wellY)
	}
	g.renderSidebar(dst, wellX+wellW+1, wellY)

	if g.state != StatePlay {
		g.renderOverlay(dst)
	}
}

// renderWell draws the border and the locked cells.
func (g *Game) renderWell(dst *core.Screen, ox, oy int) {
	dst.DrawBox(ox, oy, wellW, wellH)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			cell := g.grid.At(x, y)
			if cell == PieceNone {
				continue
			}
			g.drawCell(dst, ox, oy, x, y, fillRune, cell.Color())
		}
	}
}

// renderGhost previews the hard-drop landing position.
func (g *Game) renderGhost(dst *core.Screen, ox, oy int) {
	off := g.GhostOffset()
	if off == 0 {
		return
	}
	for _, b := range g.piece.Blocks(g.rot) {
		g.drawCell(dst, ox, oy, g.anchor.X+b.DX, g.anchor.Y+b.DY+off, ghostRune, g.piece.GhostColor())
	}
}

func (g *Game) renderActivePiece(dst *core.Screen, ox, oy int) {
	for _, b := range g.piece.Blocks(g.rot) {
		g.drawCell(dst, ox, oy, g.anchor.X+b.DX, g.anchor.Y+b.DY, fillRune, g.piece.Color())
	}
}

// drawCell paints one grid cell (two columns) inside the well border.
func (g *Game) drawCell(dst *core.Screen, ox, oy, x, y int, r rune, c core.Color) {
	sx := ox + 1 + x*cellW
	sy := oy + 1 + y
	dst.SetColored(sx, sy, r, c)
	dst.SetColored(sx+1, sy, r, c)
}

// renderSidebar draws score, level and the hold/next preview boxes.
func (g *Game) renderSidebar(dst *core.Screen, ox, oy int) {
	dst.DrawTextColored(ox, oy+1, "Score", core.ColorGray)
	dst.DrawText(ox, oy+2, fmt.Sprintf("%d", g.score))

	dst.DrawTextColored(ox, oy+4, "Level", core.ColorGray)
	dst.DrawText(ox, oy+5, fmt.Sprintf("%d pcs / %dt", g.level.PieceCount(), g.level.TickInterval()))

	dst.DrawTextColored(ox, oy+7, "Hold", core.ColorGray)
	g.renderPieceBox(dst, ox, oy+8, g.hold)

	dst.DrawTextColored(ox, oy+14, "Next", core.ColorGray)
	g.renderPieceBox(dst, ox, oy+15, g.next)
}

// renderPieceBox draws a piece in its spawn orientation inside a small box.
// The box fits the offset range of every shape at rotation 0.
func (g *Game) renderPieceBox(dst *core.Screen, ox, oy int, p Piece) {
	const boxW = 4*cellW + 2
	const boxH = 5
	dst.DrawBox(ox, oy, boxW, boxH)

	if p == PieceNone {
		return
	}
	for _, b := range p.Blocks(Deg0) {
		sx := ox + 1 + (b.DX+1)*cellW
		sy := oy + 2 + b.DY
		dst.SetColored(sx, sy, fillRune, p.Color())
		dst.SetColored(sx+1, sy, fillRune, p.Color())
	}
}

// renderOverlay draws the centered state box for Start, Pause and Over.
func (g *Game) renderOverlay(dst *core.Screen) {
	var title, hint string
	switch g.state {
	case StateStart:
		title = "TERMTRIS"
		hint = "Press Enter to start, Q to quit"
	case StatePause:
		title = "PAUSED"
		hint = "Press Enter to unpause"
	case StateOver:
		title = "GAME OVER"
		hint = fmt.Sprintf("Score %d - Enter restarts, Q quits", g.score)
	default:
		return
	}

	boxW := len(hint) + 4
	if len(title)+4 > boxW {
		boxW = len(title) + 4
	}
	const boxH = 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, hint)
}
