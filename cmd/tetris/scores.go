package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the best scores for a game, or a summary of every game
when no game is given.

Examples:
  tetris scores
  tetris scores tetris
  tetris scores tetris_fixed --limit 20
  tetris scores tetris --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored score for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(host.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	if len(args) == 0 {
		err = printSummary(cmd.OutOrStdout(), store)
	} else {
		err = printGameScores(cmd.OutOrStdout(), store, args[0])
	}
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printSummary lists aggregate stats for every game with stored scores.
func printSummary(out io.Writer, store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "  %-14s  %6s  %9s  %9s  %7s  %s\n", "Game", "Games", "Best", "Average", "Lines", "Last played")
	fmt.Fprintf(out, "  %-14s  %6s  %9s  %9s  %7s  %s\n", "----", "-----", "----", "-------", "-----", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Fprintf(out, "  %-14s  %6s  %9s  %9s  %7s  %s\n",
			id,
			humanize.Comma(int64(s.GamesCount)),
			humanize.Comma(int64(s.HighScore)),
			humanize.CommafWithDigits(s.AvgScore, 1),
			humanize.Comma(s.TotalLines),
			humanize.Time(s.LastPlayed),
		)
	}
	return nil
}

// printGameScores shows one game's leaderboard, or clears it with --clear.
func printGameScores(out io.Writer, store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'tetris list' to see available games)", err)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", game.Title())
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'tetris play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %9s  %6s  %s\n", "Rank", "Player", "Score", "Lines", "When")
	fmt.Fprintf(out, "  %-4s  %-12s  %9s  %6s  %s\n", "----", "------", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-12s  %9s  %6s  %s\n",
			i+1,
			entry.Player,
			humanize.Comma(int64(entry.Score)),
			humanize.Comma(int64(entry.Lines)),
			humanize.Time(entry.CreatedAt),
		)
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %s over %s games\n",
			humanize.Comma(int64(stats.HighScore)),
			humanize.Comma(int64(stats.GamesCount)),
		)
	}
	return nil
}
