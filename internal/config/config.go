// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid tetris config")

// Smallest well that fits every shape at the spawn anchor.
const (
	MinGridWidth  = 5
	MinGridHeight = 4
)

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Grid       TetrisGrid    `yaml:"grid"`
	Timing     TetrisTiming  `yaml:"timing"`
	Scoring    TetrisScoring `yaml:"scoring"`
	StartLevel int           `yaml:"start_level"`
	Randomizer string        `yaml:"randomizer"` // "random" or "bag"
	Ghost      bool          `yaml:"ghost"`
}

// TetrisGrid defines the well size in cells.
type TetrisGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisTiming defines the automatic fall speed, in seconds.
type TetrisTiming struct {
	BaseFallInterval float64 `yaml:"base_fall_interval"`
	SpeedupPerLevel  float64 `yaml:"speedup_per_level"`
	MinFallInterval  float64 `yaml:"min_fall_interval"`
}

// TetrisScoring defines points and level progression.
type TetrisScoring struct {
	LineScores    map[int]int `yaml:"line_scores"`
	LinesPerLevel int         `yaml:"lines_per_level"`
}

// Validate rejects configurations that cannot produce a playable session.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Grid.Width < MinGridWidth || c.Grid.Height < MinGridHeight:
		return fmt.Errorf("%w: grid %dx%d is below %dx%d", ErrInvalidConfig,
			c.Grid.Width, c.Grid.Height, MinGridWidth, MinGridHeight)
	case c.Timing.BaseFallInterval <= 0:
		return fmt.Errorf("%w: timing.base_fall_interval must be positive", ErrInvalidConfig)
	case c.Timing.MinFallInterval <= 0:
		return fmt.Errorf("%w: timing.min_fall_interval must be positive", ErrInvalidConfig)
	case c.Timing.MinFallInterval > c.Timing.BaseFallInterval:
		return fmt.Errorf("%w: timing.min_fall_interval %gs exceeds base_fall_interval %gs",
			ErrInvalidConfig, c.Timing.MinFallInterval, c.Timing.BaseFallInterval)
	case c.Timing.SpeedupPerLevel < 0:
		return fmt.Errorf("%w: timing.speedup_per_level must not be negative", ErrInvalidConfig)
	case len(c.Scoring.LineScores) == 0:
		return fmt.Errorf("%w: scoring.line_scores is empty", ErrInvalidConfig)
	case c.Scoring.LinesPerLevel <= 0:
		return fmt.Errorf("%w: scoring.lines_per_level must be positive", ErrInvalidConfig)
	case c.StartLevel < 1:
		return fmt.Errorf("%w: start_level must be at least 1", ErrInvalidConfig)
	}
	for rows, pts := range c.Scoring.LineScores {
		if rows < 1 || pts < 0 {
			return fmt.Errorf("%w: scoring.line_scores %d: %d", ErrInvalidConfig, rows, pts)
		}
	}
	switch c.Randomizer {
	case "", "random", "bag":
	default:
		return fmt.Errorf("%w: unknown randomizer %q", ErrInvalidConfig, c.Randomizer)
	}
	return nil
}
