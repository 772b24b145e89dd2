package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breach/internal/config"
	"github.com/vovakirdan/tui-breach/internal/core"
	"github.com/vovakirdan/tui-breach/internal/games/breach"
	"github.com/vovakirdan/tui-breach/internal/platform/tui"
	"github.com/vovakirdan/tui-breach/internal/registry"
	"github.com/vovakirdan/tui-breach/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Pick a difficulty and play",
	Long: `Start a breach puzzle.

Without --difficulty a picker is shown first; after each puzzle you return
to the picker. Tab in the picker opens the results history.

Controls:
  Arrows/WASD/hjkl  - Move cursor
  Enter/Space/Click - Select code
  P                 - Pause
  Esc               - Abort the breach (counts as a failure)
  R                 - New puzzle (after the result)
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a text screenshot

Difficulty options:
  easy   (1) - 60s, buffer 15
  normal (2) - 45s, buffer 12
  hard   (3) - 30s, buffer 10
  custom     - Values from the config file (default 30s, buffer 8)

Examples:
  breach play
  breach play --difficulty hard
  breach play --difficulty 1 --grid-size 7
  breach play --config ./my-breach.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// loadConfig loads the breach config and collects the override flags.
func loadConfig() (config.BreachConfig, config.Overrides, error) {
	cfg, err := config.LoadBreach(flagConfig)
	if err != nil {
		return cfg, config.Overrides{}, err
	}
	o := config.Overrides{
		GridSize:  flagGridSize,
		TimeLimit: flagTimeLimit,
		Buffer:    flagBuffer,
	}
	return cfg, o, nil
}

// openStore opens the results database. Play continues without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("results database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, overrides, err := loadConfig()
	if err != nil {
		return err
	}
	breach.SetConfig(cfg, overrides)
	breach.SetLogger(logger)

	store := openStore()
	if store != nil {
		defer store.Close()
		breach.SetOutcomeSink(storage.NewSink(store, logger))
	}

	// Get terminal size early for the picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// A preset on the command line plays exactly one puzzle session
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		return playOnce(store, preset, rcfg)
	}

	// Picker loop
	for {
		menuResult, err := tui.RunMenu(store, rcfg)
		if err != nil {
			return err
		}
		rcfg = menuResult.Config

		switch {
		case menuResult.Quit:
			return nil

		case menuResult.WantsHistory:
			goBack, err := tui.RunHistory(store, rcfg.ScreenW, rcfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			if err := playOnce(store, menuResult.Preset, rcfg); err != nil {
				return err
			}
			// Only the first puzzle uses --seed
			rcfg.Seed = 0
		}
	}
}

// playOnce validates the effective config for preset and runs the game screen.
func playOnce(store *storage.Store, preset config.DifficultyPreset, rcfg core.RuntimeConfig) error {
	breach.SetDifficulty(preset)
	if err := breach.EffectiveConfig().Validate(); err != nil {
		return err
	}

	game, err := registry.Create("breach")
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting puzzle", "difficulty", preset, "seed", rcfg.Seed, "screen", fmt.Sprintf("%dx%d", rcfg.ScreenW, rcfg.ScreenH))
	if err := tui.Run(game, store, logger, rcfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
