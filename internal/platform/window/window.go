// Package window runs a game in a desktop window with Ebitengine.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Pixel layout.
const (
	CellSize   = 32
	PanelWidth = 6 * CellSize
	margin     = CellSize / 2
	lineHeight = 18 // ebitenutil debug font row spacing
)

var (
	background = color.RGBA{16, 16, 24, 255}
	wellColor  = color.RGBA{28, 28, 40, 255}
	gridColor  = color.RGBA{40, 40, 56, 255}
	textShadow = color.RGBA{0, 0, 0, 160}
)

// binding pairs a key with the action it triggers on press.
type binding struct {
	key    ebiten.Key
	action core.Action
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyArrowUp, core.ActionRotate},
	{ebiten.KeyX, core.ActionRotate},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeySpace, core.ActionDrop},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

// collectInput builds the frame for one tick. justPressed reports whether a
// key went down since the previous tick.
func collectInput(justPressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		if justPressed(b.key) {
			frame.Set(b.action)
		}
	}
	return frame
}

// Game is the ebiten.Game that drives a tetris.Game.
type Game struct {
	game   *tetris.Game
	logger *log.Logger
}

// New wraps game. A nil logger discards output.
func New(game *tetris.Game, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{game: game, logger: logger}
}

// Update runs one tick.
func (g *Game) Update() error {
	frame := collectInput(inpututil.IsKeyJustPressed)
	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if !frame.Empty() {
		g.logger.Debug("input", "actions", frame.Actions())
	}

	res := g.game.Step(frame)
	if res.Cleared > 0 {
		g.logger.Debug("rows cleared", "rows", res.Cleared, "score", res.State.Score)
	}
	return nil
}

// Draw paints the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	snap, ok := g.game.Snapshot()
	if !ok {
		msg := "cannot start game"
		if err := g.game.Err(); err != nil {
			msg = err.Error()
		}
		ebitenutil.DebugPrintAt(screen, msg, margin, margin)
		return
	}

	drawWell(screen, snap, g.game.Config().Ghost)
	drawPanel(screen, snap)

	switch {
	case snap.GameOver:
		drawBanner(screen, snap, "GAME OVER", "press R to restart")
	case snap.Paused:
		drawBanner(screen, snap, "PAUSED", "press P to continue")
	}
}

// Layout keeps a fixed logical size derived from the board.
func (g *Game) Layout(_, _ int) (int, int) {
	s := g.game.Session()
	if s == nil {
		return WindowSize(tetris.DefaultOptions())
	}
	return WindowSize(s.Options())
}

// WindowSize returns the logical window size for a board.
func WindowSize(opts tetris.Options) (int, int) {
	w := margin*3 + opts.Width*CellSize + PanelWidth
	h := margin*2 + opts.Height*CellSize
	return w, h
}

// cellOrigin returns the top-left pixel of board cell (x, y).
func cellOrigin(x, y int) (float32, float32) {
	return float32(margin + x*CellSize), float32(margin + y*CellSize)
}

func drawWell(dst *ebiten.Image, snap tetris.Snapshot, ghost bool) {
	x0, y0 := cellOrigin(0, 0)
	vector.DrawFilledRect(dst, x0, y0, float32(snap.Width*CellSize), float32(snap.Height*CellSize), wellColor, false)

	for y, row := range snap.Grid {
		for x, c := range row {
			px, py := cellOrigin(x, y)
			if c == core.ColorEmpty {
				vector.StrokeRect(dst, px, py, CellSize, CellSize, 1, gridColor, false)
				continue
			}
			drawBlock(dst, px, py, c.Pixel())
		}
	}

	if ghost && snap.Ghost != nil {
		outline := snap.Ghost.Color.Pixel()
		for _, c := range snap.Ghost.Cells {
			if c.Y < 0 || snap.Grid[c.Y][c.X] != core.ColorEmpty {
				continue
			}
			px, py := cellOrigin(c.X, c.Y)
			vector.StrokeRect(dst, px+2, py+2, CellSize-4, CellSize-4, 2, outline, false)
		}
	}
}

// drawBlock fills one cell with a darker border so adjacent blocks stay distinct.
func drawBlock(dst *ebiten.Image, px, py float32, fill color.RGBA) {
	border := color.RGBA{fill.R / 2, fill.G / 2, fill.B / 2, 255}
	vector.DrawFilledRect(dst, px, py, CellSize, CellSize, border, false)
	vector.DrawFilledRect(dst, px+2, py+2, CellSize-4, CellSize-4, fill, false)
}

func drawPanel(dst *ebiten.Image, snap tetris.Snapshot) {
	px := margin*2 + snap.Width*CellSize
	py := margin

	ebitenutil.DebugPrintAt(dst, "NEXT", px, py)
	fill := snap.NextColor.Pixel()
	for r := range snap.NextMask {
		for c, filled := range snap.NextMask[r] {
			if filled {
				drawBlock(dst, float32(px+c*CellSize), float32(py+lineHeight+r*CellSize), fill)
			}
		}
	}

	y := py + lineHeight + tetris.MaskSize*CellSize
	lines := []string{
		fmt.Sprintf("SCORE  %d", snap.Score),
		fmt.Sprintf("LEVEL  %d", snap.Level),
		fmt.Sprintf("LINES  %d", snap.Lines),
		fmt.Sprintf("SPEED  %.2fs", snap.FallInterval.Seconds()),
		"",
		"arrows  move",
		"up/x    rotate",
		"space   drop",
		"p       pause",
		"esc     quit",
	}
	for _, line := range lines {
		ebitenutil.DebugPrintAt(dst, line, px, y)
		y += lineHeight
	}
}

func drawBanner(dst *ebiten.Image, snap tetris.Snapshot, title, hint string) {
	w := float32(snap.Width * CellSize)
	x0, _ := cellOrigin(0, 0)
	_, y0 := cellOrigin(0, snap.Height/2-2)
	vector.DrawFilledRect(dst, x0, y0, w, 3*CellSize, textShadow, false)

	ebitenutil.DebugPrintAt(dst, title, int(x0)+margin, int(y0)+margin)
	ebitenutil.DebugPrintAt(dst, hint, int(x0)+margin, int(y0)+margin+lineHeight)
}

// Run opens the window and blocks until it is closed.
func Run(game *tetris.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	g := New(game, logger)
	game.Reset(cfg)

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	g.logger.Info("window opened", "width", w, "height", h, "tps", ebiten.TPS())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
