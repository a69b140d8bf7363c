package config

import "time"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	for _, p := range Presets {
		if string(p) == s {
			return p
		}
	}
	return ""
}

// Describe returns a one-line summary for menus and help text.
func (p DifficultyPreset) Describe() string {
	switch p {
	case DifficultyEasy:
		return "5 lives, slower enemy fire"
	case DifficultyNormal:
		return "3 lives, standard fire rate"
	case DifficultyHard:
		return "2 lives, rapid enemy fire"
	case DifficultyFixed:
		return "fire rate never escalates over time"
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the loaded config untouched, so the
// three-life cap only holds there; easy starts with five and hard with two.
func ApplyPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Cadence.BaseDelay = 1400 * time.Millisecond
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Cadence.BaseDelay = 700 * time.Millisecond
	case DifficultyFixed:
		cfg.Cadence.EscalationInterval = 0
	}

	if cfg.Cadence.BaseDelay < cfg.Cadence.Floor {
		cfg.Cadence.BaseDelay = cfg.Cadence.Floor
	}
}
