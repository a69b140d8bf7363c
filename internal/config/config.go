// Package config provides YAML-based game configuration loading and
// difficulty presets for the invaders game.
package config

import "time"

// InvadersConfig contains all tunables of the invaders simulation.
// Distances are logical playfield units; speeds are units per reference tick (1/60 s).
type InvadersConfig struct {
	Playfield   PlayfieldConfig   `yaml:"playfield"`
	Player      PlayerConfig      `yaml:"player"`
	Enemies     EnemiesConfig     `yaml:"enemies"`
	Projectiles ProjectilesConfig `yaml:"projectiles"`
	Cadence     CadenceConfig     `yaml:"cadence"`
}

// PlayfieldConfig defines the logical size of the simulated area.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width             float64       `yaml:"width"`
	Height            float64       `yaml:"height"`
	Speed             float64       `yaml:"speed"`
	BottomMargin      float64       `yaml:"bottom_margin"` // gap between ship bottom and playfield bottom
	Lives             int           `yaml:"lives"`
	ShootCooldown     time.Duration `yaml:"shoot_cooldown"`
	InvulnerableTicks int           `yaml:"invulnerable_ticks"`
	BlinkPeriod       int           `yaml:"blink_period"` // ticks per blink cycle while invulnerable
}

// EnemiesConfig defines the formation grid and its movement.
type EnemiesConfig struct {
	Rows            int     `yaml:"rows"`
	Cols            int     `yaml:"cols"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	OriginX         float64 `yaml:"origin_x"`
	OriginY         float64 `yaml:"origin_y"`
	SpacingX        float64 `yaml:"spacing_x"`
	SpacingY        float64 `yaml:"spacing_y"`
	BaseSpeed       float64 `yaml:"base_speed"`
	LevelSpeedBonus float64 `yaml:"level_speed_bonus"` // speed multiplier is 1 + level*bonus
	Descent         float64 `yaml:"descent"`
	PointsPerRow    int     `yaml:"points_per_row"` // row r is worth PointsPerRow*(r+1)
}

// ProjectilesConfig defines bullet geometry and speeds.
type ProjectilesConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	BulletSpeed      float64 `yaml:"bullet_speed"`       // upward
	EnemyBulletSpeed float64 `yaml:"enemy_bullet_speed"` // downward
}

// CadenceConfig defines how often the formation fires and how that escalates.
type CadenceConfig struct {
	BaseDelay          time.Duration `yaml:"base_delay"`
	Floor              time.Duration `yaml:"floor"`
	LevelStep          time.Duration `yaml:"level_step"`
	EscalationInterval time.Duration `yaml:"escalation_interval"` // 0 disables time escalation
	EscalationStep     time.Duration `yaml:"escalation_step"`
	Bands              []CadenceBand `yaml:"bands"`
}

// CadenceBand scales the fire delay while fewer than Below enemies remain.
type CadenceBand struct {
	Below  int     `yaml:"below"`
	Factor float64 `yaml:"factor"`
}
