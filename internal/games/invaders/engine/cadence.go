package engine

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Cadence decides when the formation fires and owns the base fire delay.
// The base delay only moves toward the floor until the next reset.
type Cadence struct {
	cfg config.CadenceConfig

	base           time.Duration
	lastShot       time.Duration
	lastEscalation time.Duration
}

func newCadence(cfg config.CadenceConfig, now time.Duration) Cadence {
	c := Cadence{cfg: cfg}
	c.reset(now)
	return c
}

// Base returns the current base delay before remaining-count scaling.
func (c *Cadence) Base() time.Duration {
	return c.base
}

// reset restores the configured base delay and restarts both timers.
func (c *Cadence) reset(now time.Duration) {
	c.base = c.cfg.BaseDelay
	c.restartTimers(now)
}

func (c *Cadence) restartTimers(now time.Duration) {
	c.lastShot = now
	c.lastEscalation = now
}

// EffectiveDelay scales base by the first band whose threshold is above the
// live enemy count. Bands are mutually exclusive, so the tightest match wins.
func EffectiveDelay(base time.Duration, live int, bands []config.CadenceBand) time.Duration {
	for _, b := range bands {
		if live < b.Below {
			return time.Duration(float64(base) * b.Factor)
		}
	}
	return base
}

// Effective returns the delay that applies with live enemies remaining.
func (c *Cadence) Effective(live int) time.Duration {
	return EffectiveDelay(c.base, live, c.cfg.Bands)
}

// TryFire picks a shooter uniformly at random when the effective delay has
// elapsed. It returns nil when nothing fires.
func (c *Cadence) TryFire(now time.Duration, f *Formation, rng *rand.Rand) *Entity {
	members := f.Members()
	if len(members) == 0 {
		return nil
	}
	if now-c.lastShot <= c.Effective(len(members)) {
		return nil
	}

	c.lastShot = now
	return members[rng.Intn(len(members))]
}

// Escalate lowers the base delay by one step per elapsed interval.
// It reports whether an interval boundary was crossed.
func (c *Cadence) Escalate(now time.Duration) bool {
	if c.cfg.EscalationInterval <= 0 {
		return false
	}
	if now-c.lastEscalation <= c.cfg.EscalationInterval {
		return false
	}

	c.lastEscalation = now
	c.lower(c.cfg.EscalationStep)
	return true
}

// stepLevel applies the per-level reduction.
func (c *Cadence) stepLevel() {
	c.lower(c.cfg.LevelStep)
}

func (c *Cadence) lower(step time.Duration) {
	c.base = max(c.cfg.Floor, c.base-step)
}

// enemyBullet spawns a projectile whose top-center sits on the shooter's bottom-center.
func enemyBullet(id uint64, shooter *Entity, cfg config.ProjectilesConfig) *Entity {
	box := shooter.Box()
	return &Entity{
		ID:   id,
		Kind: KindEnemyBullet,
		Body: Body{
			Pos:  core.Vec2{X: box.CenterX() - cfg.Width/2, Y: box.Bottom()},
			Size: core.Vec2{X: cfg.Width, Y: cfg.Height},
			Vel:  core.Vec2{Y: cfg.EnemyBulletSpeed},
		},
	}
}

// playerBullet spawns a projectile whose bottom-center sits on the ship's top-center.
func playerBullet(id uint64, ship *Entity, cfg config.ProjectilesConfig) *Entity {
	box := ship.Box()
	return &Entity{
		ID:   id,
		Kind: KindBullet,
		Body: Body{
			Pos:  core.Vec2{X: box.CenterX() - cfg.Width/2, Y: box.Y - cfg.Height},
			Size: core.Vec2{X: cfg.Width, Y: cfg.Height},
			Vel:  core.Vec2{Y: -cfg.BulletSpeed},
		},
	}
}
