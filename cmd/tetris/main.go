// tetris is a falling-block puzzle for the terminal and the desktop.
//
// Usage:
//
//	tetris                   - Play in the terminal (same as "tetris play")
//	tetris play              - Play in the terminal
//	tetris window            - Play in a desktop window
//	tetris config            - Print the effective configuration
//	tetris shapes            - Print the shape catalog
//	tetris list              - List registered games
//
// Global flags:
//
//	--game <id>           - Registered game to run (default: tetris)
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	flagGame       string
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - stack falling blocks in your terminal",
	Long: `Tetris is a falling-block puzzle. Move and rotate the falling piece,
complete rows to clear them and keep the stack below the top.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  config   - Print the effective configuration
  shapes   - Print the shape catalog
  list     - List registered games

Examples:
  tetris
  tetris play --difficulty hard
  tetris window --seed 42
  tetris config --config ./my-tetris.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagGame, "game", tetris.GameID, "Registered game to run (see 'tetris list')")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// play is the default command, so its flags also work on the root.
	playCmd.Flags().BoolVar(&flagNoMenu, "no-menu", false, "Skip the difficulty picker")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(listCmd)
}
