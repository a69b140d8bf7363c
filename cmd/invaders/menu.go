package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends with Esc, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	title := invaders.New().Title()

	for {
		result, err := tui.RunMenu(store, invaders.ID, invaders.DifficultyPreset(), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config

		switch result.Choice {
		case tui.ChoicePlay:
			back, err := playOnce(store, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}
			if !back {
				return
			}

		case tui.ChoiceDifficulty:
			preset, err := tui.RunDifficultySelector(invaders.DifficultyPreset(), cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if preset != "" {
				invaders.SetDifficultyPreset(string(preset))
				logger.Info("difficulty changed", "preset", preset)
			}

		case tui.ChoiceScores:
			back, err := tui.RunScoreboard(store, invaders.ID, title, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if !back {
				return
			}

		default:
			return
		}
	}
}
