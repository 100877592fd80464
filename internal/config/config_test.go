package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg := DefaultTetrisConfig()
	require.NoError(t, decode(GetDefaultYAML("tetris"), &cfg))
	assert.Equal(t, DefaultTetrisConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadTetrisCustomPathPartialOverride(t *testing.T) {
	path := writeConfig(t, `
grid:
  width: 12
start_level: 3
`)

	cfg, err := LoadTetris(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Grid.Width)
	assert.Equal(t, 20, cfg.Grid.Height, "unset fields keep defaults")
	assert.Equal(t, 3, cfg.StartLevel)
	assert.Equal(t, 1200, cfg.Scoring.LineScores[4])
}

func TestLoadTetrisReplacesScoreTable(t *testing.T) {
	path := writeConfig(t, `
scoring:
  line_scores:
    1: 10
    2: 20
`)

	cfg, err := LoadTetris(path)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 10, 2: 20}, cfg.Scoring.LineScores)
}

func TestLoadTetrisErrors(t *testing.T) {
	_, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadTetris(writeConfig(t, "grid: [not, a, map]"))
	assert.Error(t, err)

	_, err = LoadTetris(writeConfig(t, "grid:\n  width: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
	}{
		{"zero width", func(c *TetrisConfig) { c.Grid.Width = 0 }},
		{"negative height", func(c *TetrisConfig) { c.Grid.Height = -1 }},
		{"narrower than a shape", func(c *TetrisConfig) { c.Grid.Width = 3 }},
		{"shorter than a shape", func(c *TetrisConfig) { c.Grid.Height = 2 }},
		{"min above base", func(c *TetrisConfig) { c.Timing.MinFallInterval = 2 }},
		{"zero row score", func(c *TetrisConfig) { c.Scoring.LineScores = map[int]int{0: 10} }},
		{"negative points", func(c *TetrisConfig) { c.Scoring.LineScores = map[int]int{1: -5} }},
		{"zero base interval", func(c *TetrisConfig) { c.Timing.BaseFallInterval = 0 }},
		{"zero min interval", func(c *TetrisConfig) { c.Timing.MinFallInterval = 0 }},
		{"negative speedup", func(c *TetrisConfig) { c.Timing.SpeedupPerLevel = -0.1 }},
		{"empty score table", func(c *TetrisConfig) { c.Scoring.LineScores = map[int]int{} }},
		{"zero lines per level", func(c *TetrisConfig) { c.Scoring.LinesPerLevel = 0 }},
		{"start level zero", func(c *TetrisConfig) { c.StartLevel = 0 }},
		{"unknown randomizer", func(c *TetrisConfig) { c.Randomizer = "sequence" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidateAcceptsSmallestGrid(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Grid.Width, cfg.Grid.Height = MinGridWidth, MinGridHeight
	cfg.Timing.MinFallInterval = cfg.Timing.BaseFallInterval
	assert.NoError(t, cfg.Validate())
}

func TestPresets(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, "")
	assert.Equal(t, 1, cfg.StartLevel)

	ApplyTetrisPreset(&cfg, DifficultyHard)
	assert.Equal(t, 10, cfg.StartLevel)

	p, err := ParsePreset("normal")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}
