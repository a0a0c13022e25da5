package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a game, left/right to pick a difficulty,
and Enter to play. Esc in a game returns to the menu.

Controls:
  Up/Down/j/k   - Navigate menu
  Left/Right    - Change difficulty
  Enter/Space   - Play
  Tab           - High scores
  Q             - Quit

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	tuning, preset, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newFileLogger()
	defer closeLog()
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	player := playerName()

	for {
		menuResult, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config
		preset = menuResult.Preset

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.CreateTuned(menuResult.GameID, tuning, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if host.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		logger.Info("game started", "game", menuResult.GameID, "preset", preset)

		backToMenu, err := tui.PlayFromMenu(game, store, cfg, player, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !backToMenu {
			return
		}
	}
}
