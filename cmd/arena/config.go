package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective arena configuration",
	Long: `Print the arena configuration as YAML after the config file and
difficulty preset are applied. The output can be saved and passed back
with --config.

Examples:
  arena config > my-arena.yaml
  arena config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadArenaConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
