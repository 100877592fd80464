package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var flagNoMenu bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/Right, A/D  - Move
  Up, W, X         - Rotate
  Down, S          - Soft drop
  Space            - Hard drop
  P                - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 5
  hard   - Start at level 10

Without --difficulty or --no-menu a difficulty picker is shown first.

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --no-menu --seed 42
  tetris play --log-file tetris.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The terminal belongs to the game, so logs only go to --log-file.
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := checkGame(flagGame); err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rc := runtimeConfig(width, height)

	difficulty := flagDifficulty
	if difficulty == "" && !flagNoMenu {
		preset, ok, menuErr := tui.RunStartMenu(rc, config.DifficultyEasy)
		if menuErr != nil {
			return menuErr
		}
		if !ok {
			return nil
		}
		difficulty = string(preset)
	}

	cfg, err := loadConfig(flagConfig, difficulty)
	if err != nil {
		return err
	}
	logger.Info("starting", "frontend", "terminal", "difficulty", difficulty, "start_level", cfg.StartLevel)

	game, err := newGame(flagGame, cfg, logger)
	if err != nil {
		return err
	}
	if err := tui.Run(game, rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
