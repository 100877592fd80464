package tetris

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// GameID is the registry identifier.
const GameID = "tetris"

func init() {
	registry.Register(registry.GameInfo{
		ID:          GameID,
		Title:       "Tetris",
		Description: "Stack falling tetrominoes and clear full rows",
	}, func() registry.Game {
		return New()
	})
}

// Game adapts a Session to the platform's fixed-tick registry.Game interface.
// It owns restarts: after game over a Restart action builds a new Session.
type Game struct {
	cfg    config.TetrisConfig
	logger *log.Logger

	session *Session
	err     error // last session construction failure
	rng     *rand.Rand
	runtime core.RuntimeConfig
	tick    uint64
}

// New creates a game with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultTetrisConfig(), nil)
}

// NewWithConfig creates a game using cfg. A nil logger discards output.
func NewWithConfig(cfg config.TetrisConfig, logger *log.Logger) *Game {
	g := &Game{}
	g.Configure(cfg, logger)
	return g
}

// Configure replaces the configuration and logger. It takes effect on the
// next Reset. A nil logger discards output.
func (g *Game) Configure(cfg config.TetrisConfig, logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g.cfg = cfg
	g.logger = logger
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.TetrisConfig {
	return g.cfg
}

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0

	gen := NewGenerator(Randomizer(g.cfg.Randomizer), g.rng.Int63())
	g.session, g.err = NewSession(OptionsFrom(g.cfg), gen, g.logger)
	if g.err != nil {
		g.logger.Error("cannot start session", "error", g.err)
	}
}

// Session returns the running session, or nil if construction failed.
func (g *Game) Session() *Session {
	return g.session
}

// Err returns the last session construction error.
func (g *Game) Err() error {
	return g.err
}

// Step applies this tick's actions in press order, then advances the fall
// timer by one tick's worth of time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.session.State() == StateGameOver {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
			Seed:     g.rng.Int63(),
		})
		return core.StepResult{State: g.State()}
	}

	s := g.session
	lockedBefore, linesBefore := s.PiecesLocked(), s.Lines()

	for _, a := range in.Actions() {
		switch a {
		case core.ActionLeft:
			s.MoveLeft()
		case core.ActionRight:
			s.MoveRight()
		case core.ActionDown:
			s.SoftDrop()
		case core.ActionRotate, core.ActionUp:
			s.Rotate()
		case core.ActionDrop:
			s.HardDrop()
		case core.ActionPause:
			s.TogglePause()
		}
	}

	s.AdvanceTime(time.Second / time.Duration(g.runtime.TickRate))

	return core.StepResult{
		State:   g.State(),
		Locked:  s.PiecesLocked() != lockedBefore,
		Cleared: s.Lines() - linesBefore,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == StateGameOver,
		Paused:   g.session.State() == StatePaused,
	}
}

// Snapshot returns the render state of the running session.
func (g *Game) Snapshot() (Snapshot, bool) {
	if g.session == nil {
		return Snapshot{}, false
	}
	return g.session.Snapshot(), true
}
