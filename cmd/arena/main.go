// arena is a top-down survival arena played in the terminal.
//
// Usage:
//
//	arena play              - Play a run locally
//	arena scores            - Show the leaderboard
//	arena serve             - Start SSH server for remote play
//	arena config            - Print the effective arena configuration
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible spawns
//	--db <path>     - Set database path (default: ~/.arena/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "TUI Arena - Survive the horde in your terminal",
	Long: `TUI Arena is a top-down survival game for the terminal.

Steer through waves of pursuing enemies, grab health pickups, and use
power-ups to turn the tables. Health drains every second; score grows
for every second you stay alive.

Available commands:
  play     - Play a run locally
  scores   - View the leaderboard
  serve    - Start SSH server for remote play
  config   - Print the effective arena configuration

Examples:
  arena play
  arena play --difficulty hard --sound
  arena scores --mode easy
  arena serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arena/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
