package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/platform/tui"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

var (
	flagScoresMode  string
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresStats bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best runs for a difficulty mode.

Examples:
  arena scores
  arena scores --mode hard --limit 20
  arena scores --stats
  arena scores --tui
  arena scores --mode easy --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "normal", "Difficulty mode: easy, normal, hard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the leaderboard interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs for the mode")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-mode statistics")
}

func runScores(_ *cobra.Command, _ []string) error {
	preset, ok := config.ParsePreset(flagScoresMode)
	if !ok {
		return fmt.Errorf("unknown mode %q (want easy, normal or hard)", flagScoresMode)
	}
	mode := string(preset)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearRuns(mode); err != nil {
			return err
		}
		fmt.Printf("Cleared all %s runs.\n", mode)
		return nil

	case flagScoresStats:
		return printStats(store)

	case flagScoresTUI:
		width, height := terminalSize()
		_, err := tui.RunScoreboard(store, mode, width, height)
		return err
	}

	runs, err := store.TopRuns(mode, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arena play --difficulty %s' to set the first score!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-6s  %s\n", "Rank", "Score", "Ticks", "Kills", "From", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "-----", "-----", "----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10s  %-6d  %-6d  %-6s  %s\n",
			i+1, tui.FormatScore(r.Score), r.Ticks, r.Kills, r.Source, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(mode); err == nil {
		fmt.Printf("Best: %s\n", tui.FormatScore(best))
	}
	return nil
}

// printStats prints one line per difficulty mode.
func printStats(store *storage.Store) error {
	stats, err := store.AllModesStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-7s  %-5s  %-8s  %-8s  %-6s  %-7s  %s\n",
		"Mode", "Runs", "Best", "Average", "Kills", "Longest", "Last played")
	for _, p := range config.Presets {
		s, ok := stats[string(p)]
		if !ok {
			fmt.Fprintf(os.Stdout, "  %-7s  %-5d\n", p, 0)
			continue
		}
		fmt.Printf("  %-7s  %-5d  %-8s  %-8.1f  %-6d  %-7d  %s\n",
			p, s.RunsCount, tui.FormatScore(s.HighScore), s.AvgScore,
			s.TotalKills, s.LongestRun, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
