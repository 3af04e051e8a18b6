package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/games/lander"
	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var flagShowFPS bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: lander).

Controls:
  Up/W         - Main engine
  Down/S       - Retro engine
  Left/A       - Side thruster, push left
  Right/D      - Side thruster, push right
  Space/Q      - Rotate left
  E            - Rotate right
  P            - Pause
  R            - Restart (after a crash)
  Esc/B        - Leave (while paused or after a crash)
  Ctrl+S       - Save a text screenshot
  ?            - Show all keys
  Ctrl+C       - Quit

Land with the ship upright, slow horizontally and slow vertically. Narrow
pads pay more (x5, x3, x2) and leftover fuel adds a bonus.

Difficulty options:
  easy   - More fuel, softer landing limits, gravity grows slowly
  normal - Default limits, gravity grows with your score
  hard   - Less fuel, strict landing limits, starts at high gravity
  fixed  - No progression, stays at config's initial level

Examples:
  lander play
  lander play drift
  lander play --difficulty hard
  lander play --seed 42
  lander play --config ./my-lander.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagShowFPS, "show-fps", true, "Show the frame rate in the top-right corner")
}

// applyGameFlags validates --config/--difficulty and hands them to the games.
// It returns the key hold window from the resolved configuration.
func applyGameFlags() (holdTicks int, err error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return 0, err
	}
	cfg, err := config.LoadLander(flagConfig)
	if err != nil {
		return 0, err
	}

	lander.SetConfigPath(flagConfig)
	lander.SetDifficultyPreset(string(preset))
	return cfg.Input.HoldTicks, nil
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database; failures leave scores unsaved.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "lander"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'lander list' to see available games)", gameID)
	}

	holdTicks, err := applyGameFlags()
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, terminalConfig(), tui.Options{
		Store:     store,
		HoldTicks: holdTicks,
		ShowFPS:   flagShowFPS,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
