package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arena/internal/arena"
	"github.com/vovakirdan/tui-arena/internal/audio"
	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/platform/tui"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
	flagLogFile    string
	flagLogLevel   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start the arena on the title screen.

Controls:
  W/Up         - Thrust
  A/D, Arrows  - Turn
  Space/Enter  - Start, resume, restart
  P/Esc        - Pause
  M/B          - Back to title
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Smaller waves, more health pickups
  normal - Configured values
  hard   - Larger waves, fewer health pickups

Examples:
  arena play
  arena play --difficulty hard
  arena play --sound --volume 0.3
  arena play --config ./my-arena.yaml --log arena.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Master volume for sound cues (0-1)")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write logs to this file")
	playCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// loadArenaConfig loads the config file and applies the difficulty flag.
func loadArenaConfig() (config.ArenaConfig, config.DifficultyPreset, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.ArenaConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	cfg, err := config.LoadArena(flagConfig)
	if err != nil {
		return config.ArenaConfig{}, "", err
	}
	config.ApplyArenaPreset(&cfg, preset)
	return cfg, preset, nil
}

// openLogger returns a file logger, or a discard logger when no file is set.
// The returned closer is never nil.
func openLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arena",
		Level:           level,
	})
	return logger, f, nil
}

// terminalSize returns the current terminal size, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runPlay(_ *cobra.Command, _ []string) error {
	arenaCfg, preset, err := loadArenaConfig()
	if err != nil {
		return err
	}

	logger, logFile, err := openLogger()
	if err != nil {
		return err
	}
	defer logFile.Close()

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: flagFPS,
		Seed:      flagSeed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	opts := tui.Options{
		Logger: logger,
		Mode:   string(preset),
		Source: "local",
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the run still plays
	} else {
		defer store.Close()
		opts.Store = store
	}

	if flagSound {
		player, soundErr := audio.New(flagVolume)
		if soundErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", soundErr)
		} else {
			defer player.Close()
			opts.Sound = player
		}
	}

	logger.Info("starting arena", "mode", preset, "seed", cfg.Seed, "fps", cfg.FrameRate)
	sim := arena.New(arenaCfg, arena.Options{Seed: cfg.Seed, Logger: logger})

	if err := tui.Run(sim, cfg, opts); err != nil {
		return fmt.Errorf("running arena: %w", err)
	}
	return nil
}
