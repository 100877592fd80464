package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with the keyboard.

Controls:
  Arrows, A/D/S    - Move and soft drop
  Up, X            - Rotate
  Space            - Hard drop
  P                - Pause
  R                - Restart (after game over)
  Esc/Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := checkGame(flagGame); err != nil {
		return err
	}

	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	game, err := newGame(flagGame, cfg, logger)
	if err != nil {
		return err
	}
	rc := runtimeConfig(0, 0)
	logger.Info("starting", "frontend", "window", "seed", rc.Seed, "start_level", cfg.StartLevel)
	return window.Run(game, rc, logger)
}
