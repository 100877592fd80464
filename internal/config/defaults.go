package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Grid: TetrisGrid{
			Width:  10,
			Height: 20,
		},
		Timing: TetrisTiming{
			BaseFallInterval: 0.6,
			SpeedupPerLevel:  0.05,
			MinFallInterval:  0.1,
		},
		Scoring: TetrisScoring{
			LineScores: map[int]int{
				1: 40,
				2: 100,
				3: 300,
				4: 1200,
			},
			LinesPerLevel: 10,
		},
		StartLevel: 1,
		Randomizer: "random",
		Ghost:      true,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}
