package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// newLogger builds the application logger. Logs go to path when set and to
// fallback otherwise. The returned close func releases the file.
func newLogger(path, level string, fallback io.Writer) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	w, closeFn := fallback, func() error { return nil }
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "tetris",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

// loadConfig loads the configuration and applies the difficulty preset.
func loadConfig(path, difficulty string) (config.TetrisConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.TetrisConfig{}, err
	}

	cfg, err := config.LoadTetris(path)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	config.ApplyTetrisPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.TetrisConfig{}, err
	}
	return cfg, nil
}

// runtimeConfig builds the per-run settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// checkGame fails early for IDs that no package registered.
func checkGame(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("%w %q (see 'tetris list')", registry.ErrUnknownGame, id)
	}
	return nil
}

// newGame creates the registered game id and applies cfg to it.
func newGame(id string, cfg config.TetrisConfig, logger *log.Logger) (*tetris.Game, error) {
	g, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	tg, ok := g.(*tetris.Game)
	if !ok {
		return nil, fmt.Errorf("game %q does not accept a tetris config", id)
	}
	tg.Configure(cfg, logger)
	return tg, nil
}
