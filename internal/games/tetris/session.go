package tetris

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// State is the session's top-level mode.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session owns one game: board, active and next piece, counters and timers.
// It is not safe for concurrent use; a single caller drives it with
// commands and AdvanceTime.
type Session struct {
	opts   Options
	board  *Board
	gen    Generator
	logger *log.Logger

	current Piece
	next    Piece

	state        State
	lockPending  bool
	fallTimer    time.Duration
	fallInterval time.Duration

	score  int
	level  int
	lines  int
	locked int // pieces committed so far
}

// NewSession validates opts and deals the first two pieces from gen.
// A nil logger discards output.
func NewSession(opts Options, gen Generator, logger *log.Logger) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, fmt.Errorf("%w: nil generator", ErrInvalidOptions)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		opts:   opts,
		board:  NewBoard(opts.Width, opts.Height),
		gen:    gen,
		logger: logger,
		level:  opts.StartLevel,
	}
	s.fallInterval = opts.FallIntervalFor(s.level)
	s.current = s.spawn()
	s.next = s.spawn()

	s.logger.Debug("session started",
		"width", opts.Width, "height", opts.Height,
		"level", s.level, "interval", s.fallInterval)
	return s, nil
}

// spawn deals a new piece at the top-center anchor.
func (s *Session) spawn() Piece {
	return NewPiece(s.gen.Next(), s.opts.Width/2, 0)
}

// State returns the current mode.
func (s *Session) State() State { return s.state }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// Lines returns the total number of cleared rows.
func (s *Session) Lines() int { return s.lines }

// PiecesLocked returns how many pieces have been committed to the board.
func (s *Session) PiecesLocked() int { return s.locked }

// FallInterval returns the current automatic descent interval.
func (s *Session) FallInterval() time.Duration { return s.fallInterval }

// Current returns the active piece.
func (s *Session) Current() Piece { return s.current }

// Next returns the preview piece.
func (s *Session) Next() Piece { return s.next }

// Board exposes the board for read-only queries.
func (s *Session) Board() *Board { return s.board }

// Options returns the construction options.
func (s *Session) Options() Options { return s.opts }

// TogglePause switches between running and paused. It is a no-op after game over.
func (s *Session) TogglePause() bool {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
	case StatePaused:
		s.state = StateRunning
	default:
		return false
	}
	s.logger.Debug("pause toggled", "state", s.state)
	return true
}

// try keeps candidate as the active piece if it is valid.
func (s *Session) try(candidate Piece) bool {
	if !s.board.IsValid(candidate) {
		return false
	}
	s.current = candidate
	return true
}

// MoveLeft shifts the active piece one column left if possible.
func (s *Session) MoveLeft() bool {
	return s.move(-1)
}

// MoveRight shifts the active piece one column right if possible.
func (s *Session) MoveRight() bool {
	return s.move(1)
}

func (s *Session) move(dx int) bool {
	if s.state != StateRunning {
		return false
	}
	return s.try(s.current.Translate(dx, 0))
}

// SoftDrop moves the active piece down one row if possible. A blocked soft
// drop leaves the piece in place; locking is left to the fall timer.
func (s *Session) SoftDrop() bool {
	if s.state != StateRunning {
		return false
	}
	return s.try(s.current.Translate(0, 1))
}

// Rotate turns the active piece clockwise. If the rotated piece collides it
// is nudged one column right, then one column left of the original column.
// If every placement fails the piece is unchanged.
func (s *Session) Rotate() bool {
	if s.state != StateRunning {
		return false
	}
	rotated := s.current.Rotate(Clockwise)
	for _, dx := range [...]int{0, 1, -1} {
		if s.try(rotated.Translate(dx, 0)) {
			return true
		}
	}
	return false
}

// HardDrop drops the active piece as far as it goes and locks it at once.
func (s *Session) HardDrop() bool {
	if s.state != StateRunning {
		return false
	}
	s.current = s.board.Ghost(s.current)
	s.resolveLock()
	return true
}

// AdvanceTime feeds elapsed time to the fall timer. When the timer reaches
// the fall interval the piece descends one row; if it cannot, it is locked
// in the same call. Time does not accumulate while paused.
func (s *Session) AdvanceTime(dt time.Duration) bool {
	if s.state != StateRunning || dt <= 0 {
		return false
	}

	changed := false
	s.fallTimer += dt
	if s.fallTimer >= s.fallInterval {
		s.fallTimer = 0
		if s.try(s.current.Translate(0, 1)) {
			changed = true
		} else {
			s.lockPending = true
		}
	}

	if s.lockPending {
		s.resolveLock()
		changed = true
	}
	return changed
}

// resolveLock commits the active piece, clears rows, updates counters,
// promotes the next piece and checks for loss.
func (s *Session) resolveLock() {
	s.lockPending = false
	s.board.Lock(s.current)
	s.locked++

	if cleared := s.board.ClearFullRows(); cleared > 0 {
		s.applyClear(cleared)
	}

	s.current = s.next
	s.next = s.spawn()

	if s.board.IsLost() {
		s.state = StateGameOver
		s.logger.Info("game over",
			"score", s.score, "level", s.level,
			"lines", s.lines, "pieces", s.locked)
	}
}

// applyClear scores rows cleared at the current level and recomputes the
// level and fall interval.
func (s *Session) applyClear(rows int) {
	gained := s.opts.LineScore(rows) * max(1, s.level)
	s.score += gained
	s.lines += rows

	prev := s.level
	s.level = s.opts.LevelFor(s.lines)
	s.fallInterval = s.opts.FallIntervalFor(s.level)

	s.logger.Debug("rows cleared", "rows", rows, "points", gained, "score", s.score)
	if s.level != prev {
		s.logger.Info("level up", "level", s.level, "interval", s.fallInterval)
	}
}
