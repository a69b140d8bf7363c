package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start playing immediately, skipping the title menu.

Controls:
  A/D, Left/Right  - Move
  Space/W/Up       - Fire
  N                - Next level (after clearing the formation)
  R                - Restart (after game over)
  P                - Pause
  Esc/B            - Back to menu
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, slower enemy fire
  normal - 3 lives, standard fire rate
  hard   - 2 lives, rapid enemy fire
  fixed  - enemy fire never speeds up over time

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := playOnce(store, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// playOnce runs a single session and reports whether the player asked for the menu.
func playOnce(store *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	game, err := registry.Create(invaders.ID)
	if err != nil {
		return false, err
	}
	return tui.Run(game, store, cfg, logger)
}

// openStore opens the scores database. The game still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "error", err)
		return nil
	}
	return store
}
