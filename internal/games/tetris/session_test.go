package tetris

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func newTestSession(t *testing.T, opts Options, ids ...ShapeID) *Session {
	t.Helper()
	s, err := NewSession(opts, NewSequenceGenerator(ids...), nil)
	require.NoError(t, err)
	return s
}

func TestNewSessionDealsFirstPieces(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeT, ShapeI)

	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, Piece{X: 5, Y: 0, Shape: ShapeT}, s.Current())
	assert.Equal(t, ShapeI, s.Next().Shape)
	assert.Zero(t, s.Score())
	assert.Zero(t, s.Lines())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 600*time.Millisecond, s.FallInterval())
}

func TestNewSessionRejectsBadInput(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 2
	_, err := NewSession(opts, NewSequenceGenerator(), nil)
	assert.ErrorIs(t, err, ErrInvalidOptions)

	_, err = NewSession(DefaultOptions(), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestStartLevelSetsInterval(t *testing.T) {
	opts := DefaultOptions()
	opts.StartLevel = 5
	s := newTestSession(t, opts)

	assert.Equal(t, 5, s.Level())
	assert.Equal(t, 400*time.Millisecond, s.FallInterval())
}

func TestMoveAgainstWalls(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeO)

	moves := 0
	for s.MoveLeft() {
		moves++
	}
	// O occupies columns X and X+1, so the anchor stops at 0.
	assert.Equal(t, 5, moves)
	assert.Equal(t, 0, s.Current().X)

	moves = 0
	for s.MoveRight() {
		moves++
	}
	assert.Equal(t, 8, moves)
	assert.Equal(t, 8, s.Current().X)
}

func TestMoveBlockedByLockedCell(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeO)
	s.current = Piece{X: 5, Y: 10, Shape: ShapeO}
	s.board.Fill(4, 9, core.ColorRed)

	assert.False(t, s.MoveLeft())
	assert.Equal(t, 5, s.Current().X)
}

func TestRotateInPlace(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeT)
	s.current = Piece{X: 5, Y: 10, Shape: ShapeT}

	for want := 1; want <= 4; want++ {
		require.True(t, s.Rotate())
		assert.Equal(t, want%4, s.Current().Rotation)
		assert.Equal(t, 5, s.Current().X)
	}
}

func TestRotateNudgesLeftAtRightWall(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeI)
	s.current = Piece{X: 8, Y: 10, Rotation: 1, Shape: ShapeI}

	require.True(t, s.Rotate())
	assert.Equal(t, Piece{X: 7, Y: 10, Rotation: 0, Shape: ShapeI}, s.Current())
}

func TestRotateNudgesRightAtLeftWall(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeT)
	s.current = Piece{X: 0, Y: 10, Rotation: 1, Shape: ShapeT}

	require.True(t, s.Rotate())
	assert.Equal(t, Piece{X: 1, Y: 10, Rotation: 2, Shape: ShapeT}, s.Current())
}

func TestRotateBlockedLeavesPiece(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeI)
	before := Piece{X: 8, Y: 10, Rotation: 1, Shape: ShapeI}
	s.current = before
	s.board.Fill(6, 9, core.ColorRed)

	assert.False(t, s.Rotate())
	assert.Equal(t, before, s.Current())
}

func TestSoftDropDoesNotLock(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeO)

	for s.SoftDrop() {
	}
	assert.Equal(t, 20, s.Current().Y)
	assert.False(t, s.SoftDrop())
	assert.Zero(t, s.PiecesLocked())
	assert.Zero(t, s.Board().LockedCount())
}

func TestHardDropLocksImmediately(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeO)

	require.True(t, s.HardDrop())

	assert.Equal(t, 1, s.PiecesLocked())
	for _, p := range []core.Point{{X: 5, Y: 18}, {X: 6, Y: 18}, {X: 5, Y: 19}, {X: 6, Y: 19}} {
		c, ok := s.Board().Cell(p.X, p.Y)
		assert.True(t, ok, "cell %v", p)
		assert.Equal(t, core.ColorYellow, c)
	}
	assert.Zero(t, s.Score())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, Piece{X: 5, Y: 0, Shape: ShapeO}, s.Current())
}

func TestAdvanceTimeDescendsOnInterval(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeT)

	assert.False(t, s.AdvanceTime(599*time.Millisecond))
	assert.Equal(t, 0, s.Current().Y)

	assert.True(t, s.AdvanceTime(time.Millisecond))
	assert.Equal(t, 1, s.Current().Y)

	// The timer restarts after each descent.
	assert.False(t, s.AdvanceTime(599*time.Millisecond))
	assert.Equal(t, 1, s.Current().Y)
}

func TestAdvanceTimeDescendsOncePerCall(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeT)

	assert.True(t, s.AdvanceTime(5*time.Second))
	assert.Equal(t, 1, s.Current().Y)
}

func TestAdvanceTimeIgnoresNonPositive(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeT)
	assert.False(t, s.AdvanceTime(0))
	assert.False(t, s.AdvanceTime(-time.Second))
}

func TestAdvanceTimeLocksOnFloor(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeO, ShapeT)
	for s.SoftDrop() {
	}

	assert.True(t, s.AdvanceTime(600*time.Millisecond))

	assert.Equal(t, 1, s.PiecesLocked())
	assert.Equal(t, 4, s.Board().LockedCount())
	assert.Equal(t, ShapeT, s.Current().Shape)
	assert.Equal(t, 0, s.Current().Y)
}

func TestPauseFreezesSession(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeT)

	require.True(t, s.TogglePause())
	assert.Equal(t, StatePaused, s.State())

	before := s.Current()
	assert.False(t, s.MoveLeft())
	assert.False(t, s.MoveRight())
	assert.False(t, s.SoftDrop())
	assert.False(t, s.Rotate())
	assert.False(t, s.HardDrop())
	assert.False(t, s.AdvanceTime(10*time.Second))
	assert.Equal(t, before, s.Current())
	assert.Zero(t, s.PiecesLocked())

	require.True(t, s.TogglePause())
	assert.Equal(t, StateRunning, s.State())

	// Paused time was not accumulated.
	assert.False(t, s.AdvanceTime(599*time.Millisecond))
}

func TestSingleRowClear(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeO)
	fillRow(s.board, 19, 5, 6)

	require.True(t, s.HardDrop())

	assert.Equal(t, 40, s.Score())
	assert.Equal(t, 1, s.Lines())
	// The top half of the O dropped into the bottom row.
	assert.Equal(t, 2, s.Board().LockedCount())
	_, ok := s.Board().Cell(5, 19)
	assert.True(t, ok)
}

func TestTwoRowClearScoresAtCurrentLevel(t *testing.T) {
	opts := DefaultOptions()
	opts.StartLevel = 3
	s := newTestSession(t, opts, ShapeO)
	fillRow(s.board, 18, 5, 6)
	fillRow(s.board, 19, 5, 6)

	require.True(t, s.HardDrop())

	assert.Equal(t, 300, s.Score())
	assert.Equal(t, 2, s.Lines())
	assert.Equal(t, 3, s.Level())
	assert.Zero(t, s.Board().LockedCount())
}

func TestTetrisClearsLevelUp(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeI)

	wantScore := []int{1200, 2400, 3600}
	wantLevel := []int{1, 1, 2}
	for i := range wantScore {
		for y := 16; y < 20; y++ {
			fillRow(s.board, y, 0)
		}
		s.current = Piece{X: -1, Y: 0, Rotation: 1, Shape: ShapeI}
		require.True(t, s.HardDrop())

		assert.Equal(t, wantScore[i], s.Score(), "drop %d", i)
		assert.Equal(t, 4*(i+1), s.Lines(), "drop %d", i)
		assert.Equal(t, wantLevel[i], s.Level(), "drop %d", i)
		assert.Zero(t, s.Board().LockedCount(), "drop %d", i)
	}
	assert.Equal(t, 550*time.Millisecond, s.FallInterval())
}

func TestStartLevelHoldsUntilLinesCatchUp(t *testing.T) {
	opts := DefaultOptions()
	opts.StartLevel = 5
	s := newTestSession(t, opts, ShapeI)
	require.Equal(t, 400*time.Millisecond, s.FallInterval())

	score := 0
	for i := 1; i <= 13; i++ {
		level := s.Level()
		for y := 16; y < 20; y++ {
			fillRow(s.board, y, 0)
		}
		s.current = Piece{X: -1, Y: 0, Rotation: 1, Shape: ShapeI}
		require.True(t, s.HardDrop())
		score += 1200 * level

		want := 5
		if 4*i >= 50 {
			want = 6
		}
		assert.Equal(t, want, s.Level(), "after %d lines", 4*i)
		assert.Equal(t, score, s.Score(), "after %d lines", 4*i)
	}
	assert.Equal(t, 52, s.Lines())
	assert.Equal(t, 350*time.Millisecond, s.FallInterval())
}

func TestLevelMultiplierUsesLevelBeforeClear(t *testing.T) {
	opts := DefaultOptions()
	opts.LinesPerLevel = 1
	s := newTestSession(t, opts, ShapeO)

	fillRow(s.board, 19, 5, 6)
	require.True(t, s.HardDrop())
	assert.Equal(t, 40, s.Score())
	assert.Equal(t, 2, s.Level())
	assert.Equal(t, 550*time.Millisecond, s.FallInterval())

	// Second single clear is scored at level 2.
	// The O lands on its own leftovers in row 19 and completes row 18.
	fillRow(s.board, 18, 5, 6)
	require.True(t, s.HardDrop())
	assert.Equal(t, 40+80, s.Score())
	assert.Equal(t, 3, s.Level())
}

func TestLockInTopRowEndsGame(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeO)
	s.board.Fill(5, 1, core.ColorRed)
	s.board.Fill(6, 1, core.ColorRed)

	require.True(t, s.HardDrop())

	assert.Equal(t, StateGameOver, s.State())
	assert.True(t, s.Board().IsLost())

	assert.False(t, s.MoveLeft())
	assert.False(t, s.Rotate())
	assert.False(t, s.HardDrop())
	assert.False(t, s.TogglePause())
	assert.False(t, s.AdvanceTime(time.Minute))
	assert.Equal(t, StateGameOver, s.State())
}

func TestSnapshotWhileRunning(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeO, ShapeI)
	s.current = Piece{X: 5, Y: 5, Shape: ShapeO}

	snap := s.Snapshot()

	assert.Equal(t, 10, snap.Width)
	assert.Equal(t, 20, snap.Height)
	require.NotNil(t, snap.Current)
	require.NotNil(t, snap.Ghost)
	assert.Equal(t, core.ColorYellow, snap.Grid[3][5])
	assert.Equal(t, core.ColorYellow, snap.Grid[4][6])
	assert.Equal(t, core.ColorEmpty, snap.Grid[19][5], "ghost is not painted into the grid")
	assert.ElementsMatch(t,
		[]core.Point{{X: 5, Y: 18}, {X: 6, Y: 18}, {X: 5, Y: 19}, {X: 6, Y: 19}},
		snap.Ghost.Cells)
	assert.Equal(t, ShapeI, snap.Next)
	assert.Equal(t, core.ColorCyan, snap.NextColor)
	assert.Equal(t, RotationMask(ShapeI, 0), snap.NextMask)
	assert.False(t, snap.Paused)
	assert.False(t, snap.GameOver)

	// Mutating the snapshot leaves the session alone.
	snap.Grid[3][5] = core.ColorRed
	assert.Equal(t, core.ColorYellow, s.Snapshot().Grid[3][5])
}

func TestSnapshotAfterGameOver(t *testing.T) {
	s := newTestSession(t, DefaultOptions(), ShapeO)
	s.board.Fill(5, 1, core.ColorRed)
	s.board.Fill(6, 1, core.ColorRed)
	require.True(t, s.HardDrop())

	snap := s.Snapshot()

	assert.True(t, snap.GameOver)
	assert.Equal(t, StateGameOver, snap.State)
	assert.Nil(t, snap.Current)
	assert.Nil(t, snap.Ghost)
	assert.Equal(t, core.ColorYellow, snap.Grid[0][5])
	assert.Equal(t, 1, snap.Pieces)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "paused", StatePaused.String())
	assert.Equal(t, "game_over", StateGameOver.String())
	assert.Equal(t, "unknown", State(9).String())
}

func TestLevelAndIntervalAreMonotonic(t *testing.T) {
	opts := DefaultOptions()
	opts.LinesPerLevel = 2
	rng := rand.New(rand.NewSource(11))

	for game := 0; game < 20; game++ {
		s, err := NewSession(opts, NewBagGenerator(int64(game)), nil)
		require.NoError(t, err)

		level, interval := s.Level(), s.FallInterval()
		for step := 0; step < 2000 && s.State() != StateGameOver; step++ {
			switch rng.Intn(6) {
			case 0:
				s.MoveLeft()
			case 1:
				s.MoveRight()
			case 2:
				s.Rotate()
			case 3:
				s.SoftDrop()
			case 4:
				s.HardDrop()
			default:
				s.AdvanceTime(time.Duration(rng.Intn(700)) * time.Millisecond)
			}

			require.GreaterOrEqual(t, s.Level(), level)
			require.LessOrEqual(t, s.FallInterval(), interval)
			require.GreaterOrEqual(t, s.FallInterval(), opts.MinFallInterval)
			level, interval = s.Level(), s.FallInterval()
		}
	}
}
