package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// PieceView describes a piece for renderers.
type PieceView struct {
	Shape ShapeID
	Color core.Color
	Cells [4]core.Point
}

func viewOf(p Piece) *PieceView {
	return &PieceView{Shape: p.Shape, Color: p.Color(), Cells: p.Cells()}
}

// Snapshot is a render-ready copy of the session. Nothing in it aliases
// session state, so it can be handed to another goroutine.
type Snapshot struct {
	Width  int
	Height int
	// Grid holds locked cells with the active piece painted on top.
	Grid Grid
	// Current and Ghost are nil once the game is over.
	Current *PieceView
	Ghost   *PieceView

	Next      ShapeID
	NextColor core.Color
	NextMask  Mask

	Score        int
	Level        int
	Lines        int
	Pieces       int
	FallInterval time.Duration

	State    State
	Paused   bool
	GameOver bool
}

// Snapshot returns the current render state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Width:        s.opts.Width,
		Height:       s.opts.Height,
		Next:         s.next.Shape,
		NextColor:    s.next.Color(),
		NextMask:     RotationMask(s.next.Shape, 0),
		Score:        s.score,
		Level:        s.level,
		Lines:        s.lines,
		Pieces:       s.locked,
		FallInterval: s.fallInterval,
		State:        s.state,
		Paused:       s.state == StatePaused,
		GameOver:     s.state == StateGameOver,
	}

	if snap.GameOver {
		snap.Grid = s.board.Snapshot(nil)
		return snap
	}

	current := s.current
	snap.Grid = s.board.Snapshot(&current)
	snap.Current = viewOf(current)
	snap.Ghost = viewOf(s.board.Ghost(current))
	return snap
}
