package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: tetris).

Controls:
  Left/Right, A/D  - Move the piece
  Down, S          - Soft drop
  Up, W, Space     - Rotate clockwise
  R, X             - Restart
  Esc              - Leave the game
  Ctrl+S           - Save a text screenshot
  Q, Ctrl+C        - Quit

Difficulty options:
  easy   - Slower start, gentler speed-up
  normal - Tuning file as written
  hard   - Faster start, steeper speed-up
  fixed  - Gravity never speeds up

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play tetris_fixed
  tetris play --config ./wide-board.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "tetris"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available games.")
		os.Exit(1)
	}

	tuning, preset, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.CreateTuned(gameID, tuning, preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newFileLogger()
	store := openStore(logger)

	logger.Info("game started", "game", gameID, "preset", preset, "seed", host.Seed)
	runErr := tui.Run(game, store, runtimeConfig(), playerName(), logger)

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
