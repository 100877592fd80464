package tetris

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// ErrInvalidOptions is wrapped by every Options validation failure.
var ErrInvalidOptions = errors.New("tetris: invalid options")

// Minimum grid size that fits every shape at the spawn anchor.
const (
	MinWidth  = config.MinGridWidth
	MinHeight = config.MinGridHeight
)

// Options are the session constants fixed at construction.
type Options struct {
	Width  int
	Height int

	BaseFallInterval time.Duration // level 1 descent interval
	SpeedupPerLevel  time.Duration // subtracted per level above 1
	MinFallInterval  time.Duration // floor

	LineScores    map[int]int // rows cleared -> base points
	LinesPerLevel int
	StartLevel    int
}

// DefaultOptions returns the classic 10x20 rules.
func DefaultOptions() Options {
	return OptionsFrom(config.DefaultTetrisConfig())
}

// OptionsFrom converts a loaded configuration into session options.
func OptionsFrom(cfg config.TetrisConfig) Options {
	scores := make(map[int]int, len(cfg.Scoring.LineScores))
	for rows, pts := range cfg.Scoring.LineScores {
		scores[rows] = pts
	}
	return Options{
		Width:            cfg.Grid.Width,
		Height:           cfg.Grid.Height,
		BaseFallInterval: seconds(cfg.Timing.BaseFallInterval),
		SpeedupPerLevel:  seconds(cfg.Timing.SpeedupPerLevel),
		MinFallInterval:  seconds(cfg.Timing.MinFallInterval),
		LineScores:       scores,
		LinesPerLevel:    cfg.Scoring.LinesPerLevel,
		StartLevel:       cfg.StartLevel,
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second)).Round(time.Millisecond)
}

// Validate reports the first malformed option.
func (o Options) Validate() error {
	switch {
	case o.Width < MinWidth:
		return fmt.Errorf("%w: width %d is below %d", ErrInvalidOptions, o.Width, MinWidth)
	case o.Height < MinHeight:
		return fmt.Errorf("%w: height %d is below %d", ErrInvalidOptions, o.Height, MinHeight)
	case o.BaseFallInterval <= 0:
		return fmt.Errorf("%w: base fall interval must be positive", ErrInvalidOptions)
	case o.MinFallInterval <= 0:
		return fmt.Errorf("%w: min fall interval must be positive", ErrInvalidOptions)
	case o.MinFallInterval > o.BaseFallInterval:
		return fmt.Errorf("%w: min fall interval %v exceeds base %v", ErrInvalidOptions, o.MinFallInterval, o.BaseFallInterval)
	case o.SpeedupPerLevel < 0:
		return fmt.Errorf("%w: speedup per level must not be negative", ErrInvalidOptions)
	case len(o.LineScores) == 0:
		return fmt.Errorf("%w: line score table is empty", ErrInvalidOptions)
	case o.LinesPerLevel <= 0:
		return fmt.Errorf("%w: lines per level must be positive", ErrInvalidOptions)
	case o.StartLevel < 1:
		return fmt.Errorf("%w: start level %d is below 1", ErrInvalidOptions, o.StartLevel)
	}
	for rows, pts := range o.LineScores {
		if rows < 1 || pts < 0 {
			return fmt.Errorf("%w: line score %d -> %d", ErrInvalidOptions, rows, pts)
		}
	}
	return nil
}

// LineScore returns the base points for clearing rows at once; 0 if unlisted.
func (o Options) LineScore(rows int) int {
	return o.LineScores[rows]
}

// LevelFor returns the level reached after lines total cleared lines.
func (o Options) LevelFor(lines int) int {
	return max(o.StartLevel, 1+lines/o.LinesPerLevel)
}

// FallIntervalFor returns the descent interval at level, floored at the minimum.
func (o Options) FallIntervalFor(level int) time.Duration {
	interval := o.BaseFallInterval - time.Duration(level-1)*o.SpeedupPerLevel
	return max(o.MinFallInterval, interval)
}
