// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Start the game picker menu
//	tetris play [game]       - Play a game directly (default: tetris)
//	tetris list              - List available games
//	tetris scores [game]     - Show high scores
//	tetris serve             - Start SSH server for remote play
//	tetris demo              - Run a scripted game headlessly
//
// Global flags:
//
//	--fps <rate>            - Host tick rate (default: 60)
//	--seed <value>          - RNG seed for reproducible games
//	--db <path>             - Scores database (default: ~/.tetris/scores.db)
//	--config <path>         - Tuning YAML (board size, speed, scoring)
//	--difficulty <preset>   - easy, normal, hard or fixed
//
// Every flag also reads a TETRIS_* environment variable; flags win.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool

	// host is the environment merged with explicit flags, filled before any subcommand runs.
	host config.HostConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A falling-block puzzle game for the terminal.

Move and rotate the falling piece to complete rows. Each cleared row
scores points, and gravity speeds up with every piece you lock.

Available commands:
  menu     - Interactive game picker (default)
  play     - Play a game directly
  list     - Show all available games
  scores   - View high scores
  serve    - Start SSH server for remote play
  demo     - Run a scripted game without a terminal UI

Examples:
  tetris
  tetris play --difficulty hard
  tetris play tetris_fixed
  tetris serve --ssh :2222
  tetris demo --script RRUDDD`,
	SilenceUsage:      true,
	PersistentPreRunE: loadHost,
	Run:               runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Host tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.tetris/scores.db)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(demoCmd)
}

// loadHost reads TETRIS_* variables, then lets explicitly set flags override them.
func loadHost(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadHost()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		if flagFPS <= 0 {
			return fmt.Errorf("%w: --fps must be positive, got %d", config.ErrInvalidConfig, flagFPS)
		}
		cfg.FPS = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("config") {
		cfg.ConfigPath = flagConfig
	}
	if flags.Changed("difficulty") {
		cfg.Difficulty = flagDifficulty
	}
	if cfg.DBPath == "" {
		cfg.DBPath = storage.DefaultPath
	}

	host = cfg
	return nil
}
