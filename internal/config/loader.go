package config

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "invaders.yaml"

// LoadInvaders loads the invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default.
// Files are layered over the defaults, so a file only needs the keys it changes.
// Only an explicit customPath can fail; unreadable optional files are skipped.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(ConfigFileName),
		filepath.Join("configs", ConfigFileName),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := Parse(defaultInvadersYAML); err == nil {
		return cfg, nil
	}
	return DefaultInvadersConfig(), nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return InvadersConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return InvadersConfig{}, err
	}
	return cfg, nil
}

// normalize orders cadence bands so the tightest threshold is checked first.
func (c *InvadersConfig) normalize() {
	slices.SortStableFunc(c.Cadence.Bands, byThreshold)
}

func byThreshold(a, b CadenceBand) int {
	return cmp.Compare(a.Below, b.Below)
}

// Validate reports every invalid field at once.
func (c InvadersConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0, "playfield: size must be positive")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player: size must be positive")
	check(c.Player.Width < c.Playfield.Width, "player: wider than the playfield")
	check(c.Player.Lives > 0, "player: lives must be positive, got %d", c.Player.Lives)
	check(c.Player.Speed >= 0, "player: speed must not be negative")
	check(c.Player.ShootCooldown >= 0, "player: shoot_cooldown must not be negative")
	check(c.Player.InvulnerableTicks >= 0, "player: invulnerable_ticks must not be negative")
	check(c.Player.BlinkPeriod > 0, "player: blink_period must be positive")
	check(c.Enemies.Rows > 0 && c.Enemies.Cols > 0, "enemies: grid must have at least one row and column")
	check(c.Enemies.Width > 0 && c.Enemies.Height > 0, "enemies: size must be positive")
	check(c.Enemies.BaseSpeed >= 0, "enemies: base_speed must not be negative")
	check(c.Enemies.Descent >= 0, "enemies: descent must not be negative")
	check(c.Projectiles.Width > 0 && c.Projectiles.Height > 0, "projectiles: size must be positive")
	check(c.Projectiles.BulletSpeed > 0, "projectiles: bullet_speed must be positive")
	check(c.Projectiles.EnemyBulletSpeed > 0, "projectiles: enemy_bullet_speed must be positive")
	check(c.Cadence.Floor > 0, "cadence: floor must be positive")
	check(c.Cadence.BaseDelay >= c.Cadence.Floor, "cadence: base_delay %s is below floor %s", c.Cadence.BaseDelay, c.Cadence.Floor)
	check(c.Cadence.LevelStep >= 0, "cadence: level_step must not be negative")
	check(c.Cadence.EscalationInterval >= 0, "cadence: escalation_interval must not be negative")
	check(c.Cadence.EscalationStep >= 0, "cadence: escalation_step must not be negative")
	for i, b := range c.Cadence.Bands {
		check(b.Below > 0, "cadence: band %d: below must be positive", i)
		check(b.Factor > 0 && b.Factor <= 1, "cadence: band %d: factor must be in (0, 1], got %v", i, b.Factor)
	}
	bands := slices.SortedStableFunc(slices.Values(c.Cadence.Bands), byThreshold)
	for i := 1; i < len(bands); i++ {
		tight, loose := bands[i-1], bands[i]
		check(tight.Factor <= loose.Factor,
			"cadence: band below %d has factor %v, looser than %v for below %d",
			tight.Below, tight.Factor, loose.Factor, loose.Below)
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
