package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/games/mazerun"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show the best cleared levels for a board",
	Long: `Display the best clears for the specified board (default: maze),
highest level first and fewest moves breaking ties.

Examples:
  maze scores
  maze scores maze_large --limit 20
  maze scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of clears to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history for the board")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := mazerun.Classic.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown board %q, run 'maze list' to see available boards", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating board: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "History cleared for %s.\n", game.Title())
		return nil
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Best Clears - %s\n\n", game.Title())

	if len(runs) == 0 {
		fmt.Fprintln(out, "No levels cleared yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'maze play %s' and reach the portal!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-5s  %-5s  %-8s  %s\n", "Rank", "Level", "Moves", "Run", "Date")
	fmt.Fprintf(out, "  %-4s  %-5s  %-5s  %-8s  %s\n", "----", "-----", "-----", "---", "----")
	for i, r := range runs {
		runID := r.RunID
		if len(runID) > 8 {
			runID = runID[:8]
		}
		fmt.Fprintf(out, "  %-4d  %-5d  %-5d  %-8s  %s\n",
			i+1, r.Level, r.Moves, runID, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GameStats(gameID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best level: %d   Clears: %d   Avg moves: %.1f\n",
			stats.BestLevel, stats.Clears, stats.AvgMoves)
	}
	return nil
}
