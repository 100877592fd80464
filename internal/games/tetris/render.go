package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Terminal layout. Each board cell is two characters wide so cells look square.
const (
	cellW      = 2
	panelW     = 20
	panelGap   = 2
	hudHeight  = 1
	blockRunes = "██"
	ghostRunes = "░░"
	emptyRunes = " ·"
)

var controlsHelp = []string{
	"←/→  move",
	"↑/x  rotate",
	"↓    soft drop",
	"spc  hard drop",
	"p    pause",
	"q    quit",
}

// Render draws the well, side panel and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		msg := "Cannot start game"
		if g.err != nil {
			msg = g.err.Error()
		}
		dst.DrawTextCentered(dst.Height()/2, msg)
		return
	}

	snap := g.session.Snapshot()
	wellW := snap.Width*cellW + 2
	wellH := snap.Height + 2
	totalW := wellW + panelGap + panelW
	if dst.Width() < totalW || dst.Height() < wellH+hudHeight {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", totalW, wellH+hudHeight))
		return
	}

	ox := (dst.Width() - totalW) / 2
	oy := hudHeight

	hud := fmt.Sprintf(" Tetris | Score: %d  Level: %d  Lines: %d", snap.Score, snap.Level, snap.Lines)
	dst.DrawText(0, 0, hud)

	g.renderWell(dst, snap, ox, oy)
	renderPanel(dst, snap, ox+wellW+panelGap, oy)

	switch {
	case snap.GameOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d - press R to restart", snap.Score))
	case snap.Paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderWell(dst *core.Screen, snap Snapshot, ox, oy int) {
	dst.DrawBoxColored(core.NewRect(ox, oy, snap.Width*cellW+2, snap.Height+2), core.ColorGray)

	ghost := make(map[core.Point]bool, 4)
	if g.cfg.Ghost && snap.Ghost != nil {
		for _, c := range snap.Ghost.Cells {
			ghost[c] = true
		}
	}

	for y := range snap.Grid {
		for x, c := range snap.Grid[y] {
			sx, sy := ox+1+x*cellW, oy+1+y
			switch {
			case c != core.ColorEmpty:
				dst.DrawTextColored(sx, sy, blockRunes, c)
			case ghost[core.Point{X: x, Y: y}]:
				dst.DrawTextColored(sx, sy, ghostRunes, snap.Current.Color)
			default:
				dst.DrawTextColored(sx, sy, emptyRunes, core.ColorGray)
			}
		}
	}
}

func renderPanel(dst *core.Screen, snap Snapshot, px, py int) {
	dst.DrawBoxColored(core.NewRect(px, py, MaskSize*cellW+4, MaskSize+2), core.ColorGray)
	dst.DrawText(px+2, py, " Next ")
	for r := range snap.NextMask {
		for c, filled := range snap.NextMask[r] {
			if filled {
				dst.DrawTextColored(px+2+c*cellW, py+1+r, blockRunes, snap.NextColor)
			}
		}
	}

	y := py + MaskSize + 3
	stats := []string{
		fmt.Sprintf("Score  %d", snap.Score),
		fmt.Sprintf("Level  %d", snap.Level),
		fmt.Sprintf("Lines  %d", snap.Lines),
		fmt.Sprintf("Speed  %.2fs", snap.FallInterval.Seconds()),
	}
	for _, line := range stats {
		dst.DrawText(px, y, line)
		y++
	}

	y++
	for _, line := range controlsHelp {
		dst.DrawTextColored(px, y, line, core.ColorGray)
		y++
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	cx, cy := core.NewRect(0, 0, dst.Width(), dst.Height()).Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBoxColored(box, core.ColorBrightWhite)
	drawCentered(dst, box, box.Y+1, line1)
	drawCentered(dst, box, box.Y+3, line2)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string) {
	x := box.X + (box.W-len([]rune(text)))/2
	dst.DrawText(x, y, text)
}
