package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()

	require.NoError(t, o.Validate())
	assert.Equal(t, 10, o.Width)
	assert.Equal(t, 20, o.Height)
	assert.Equal(t, 600*time.Millisecond, o.BaseFallInterval)
	assert.Equal(t, 50*time.Millisecond, o.SpeedupPerLevel)
	assert.Equal(t, 100*time.Millisecond, o.MinFallInterval)
	assert.Equal(t, map[int]int{1: 40, 2: 100, 3: 300, 4: 1200}, o.LineScores)
	assert.Equal(t, 10, o.LinesPerLevel)
	assert.Equal(t, 1, o.StartLevel)
}

func TestOptionsFromCopiesScoreTable(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	o := OptionsFrom(cfg)
	o.LineScores[1] = 999

	assert.Equal(t, 40, cfg.Scoring.LineScores[1])
}

func TestLevelFor(t *testing.T) {
	o := DefaultOptions()

	tests := []struct {
		lines, level int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{19, 2},
		{45, 5},
		{100, 11},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, o.LevelFor(tt.lines), "lines=%d", tt.lines)
	}

	o.StartLevel = 5
	assert.Equal(t, 5, o.LevelFor(0))
	assert.Equal(t, 5, o.LevelFor(39))
	assert.Equal(t, 6, o.LevelFor(50))
}

func TestFallIntervalFor(t *testing.T) {
	o := DefaultOptions()

	tests := []struct {
		level    int
		interval time.Duration
	}{
		{1, 600 * time.Millisecond},
		{2, 550 * time.Millisecond},
		{10, 150 * time.Millisecond},
		{11, 100 * time.Millisecond},
		{30, 100 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.interval, o.FallIntervalFor(tt.level), "level=%d", tt.level)
	}
}

func TestLineScore(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, 1200, o.LineScore(4))
	assert.Zero(t, o.LineScore(5))
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"narrow", func(o *Options) { o.Width = MinWidth - 1 }},
		{"short", func(o *Options) { o.Height = MinHeight - 1 }},
		{"zero width", func(o *Options) { o.Width = 0 }},
		{"zero base interval", func(o *Options) { o.BaseFallInterval = 0 }},
		{"zero min interval", func(o *Options) { o.MinFallInterval = 0 }},
		{"min above base", func(o *Options) { o.MinFallInterval = time.Second }},
		{"negative speedup", func(o *Options) { o.SpeedupPerLevel = -time.Millisecond }},
		{"empty scores", func(o *Options) { o.LineScores = nil }},
		{"bad score row", func(o *Options) { o.LineScores = map[int]int{0: 10} }},
		{"negative points", func(o *Options) { o.LineScores = map[int]int{1: -1} }},
		{"zero lines per level", func(o *Options) { o.LinesPerLevel = 0 }},
		{"start level zero", func(o *Options) { o.StartLevel = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.modify(&o)
			assert.ErrorIs(t, o.Validate(), ErrInvalidOptions)
		})
	}

	small := DefaultOptions()
	small.Width, small.Height = MinWidth, MinHeight
	assert.NoError(t, small.Validate())
}
