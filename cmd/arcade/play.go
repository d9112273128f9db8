package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini-arcade/internal/platform/tui"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space/Enter  - Start, act, restart after game over
  Arrows/WASD  - Steer (snake)
  +/-          - Change speed (reflex)
  Ctrl+S       - Save a screenshot
  ?            - Show all keys
  Esc/Q        - Quit

Difficulty options:
  easy   - Gentle start
  normal - The default tuning
  hard   - Fast from the first tick
  fixed  - No automatic speed-ups

Examples:
  arcade play reflex
  arcade play flappy --difficulty easy
  arcade play snake --difficulty fixed
  arcade play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

var flagConfig string

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML for this game")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	h, err := newHost(nil, gameID, flagConfig)
	if err != nil {
		return err
	}
	defer h.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	h.deps.Logger.Info("playing", "game", gameID, "difficulty", flagDifficulty, "seed", flagSeed)
	if err := tui.Run(game, h.deps); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
