package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate and summarize the game configuration",
	Long: `Load the configuration the game would use, apply the difficulty preset,
and print a summary. With --defaults, print the embedded default YAML,
which is a good starting point for a custom file.

Config search order:
  --config <path>
  ~/.arcade/configs/invaders.yaml
  ./configs/invaders.yaml
  embedded defaults

Examples:
  invaders config
  invaders config --config ./my-invaders.yaml --difficulty hard
  invaders config --defaults > ~/.arcade/configs/invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default YAML")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		_, _ = os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	preset := invaders.DifficultyPreset()
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Difficulty: %s\n", presetName(preset))
	fmt.Println()
	fmt.Printf("  %-12s %.0fx%.0f\n", "Playfield", cfg.Playfield.Width, cfg.Playfield.Height)
	fmt.Printf("  %-12s %d lives, speed %.1f, cooldown %s\n", "Player",
		cfg.Player.Lives, cfg.Player.Speed, cfg.Player.ShootCooldown)
	fmt.Printf("  %-12s %dx%d, speed %.1f (+%.0f%%/level), descent %.0f\n", "Formation",
		cfg.Enemies.Rows, cfg.Enemies.Cols, cfg.Enemies.BaseSpeed, cfg.Enemies.LevelSpeedBonus*100, cfg.Enemies.Descent)
	fmt.Printf("  %-12s base %s, floor %s, -%s per level\n", "Enemy fire",
		cfg.Cadence.BaseDelay, cfg.Cadence.Floor, cfg.Cadence.LevelStep)
	if cfg.Cadence.EscalationInterval > 0 {
		fmt.Printf("  %-12s -%s every %s\n", "Escalation", cfg.Cadence.EscalationStep, cfg.Cadence.EscalationInterval)
	} else {
		fmt.Printf("  %-12s off\n", "Escalation")
	}
	for _, b := range cfg.Cadence.Bands {
		fmt.Printf("  %-12s x%.2f below %d enemies\n", "Band", b.Factor, b.Below)
	}
}

// presetName is the preset shown to the player; an unset preset plays as normal.
func presetName(p config.DifficultyPreset) string {
	if p == "" {
		return string(config.DifficultyNormal)
	}
	return string(p)
}
