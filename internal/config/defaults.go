package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration.
// It mirrors defaults/invaders.yaml and is used when the embedded file cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:             50,
			Height:            30,
			Speed:             8,
			BottomMargin:      10,
			Lives:             3,
			ShootCooldown:     500 * time.Millisecond,
			InvulnerableTicks: 120, // 2 seconds at 60 ticks/s
			BlinkPeriod:       10,
		},
		Enemies: EnemiesConfig{
			Rows:            5,
			Cols:            10,
			Width:           40,
			Height:          40,
			OriginX:         50,
			OriginY:         50,
			SpacingX:        70,
			SpacingY:        50,
			BaseSpeed:       2,
			LevelSpeedBonus: 0.1,
			Descent:         20,
			PointsPerRow:    10,
		},
		Projectiles: ProjectilesConfig{
			Width:            5,
			Height:           15,
			BulletSpeed:      10,
			EnemyBulletSpeed: 5,
		},
		Cadence: CadenceConfig{
			BaseDelay:          1000 * time.Millisecond,
			Floor:              200 * time.Millisecond,
			LevelStep:          100 * time.Millisecond,
			EscalationInterval: 30 * time.Second,
			EscalationStep:     50 * time.Millisecond,
			Bands: []CadenceBand{
				{Below: 10, Factor: 0.6},
				{Below: 20, Factor: 0.8},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
