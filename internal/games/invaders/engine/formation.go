package engine

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Formation is the set of live enemies. Direction changes and descents are
// applied to every member in one call, so members never disagree on direction.
type Formation struct {
	enemies []*Entity
}

// spawnFormation builds the full grid for a level. Higher levels move faster.
func spawnFormation(cfg config.EnemiesConfig, level int, nextID func() uint64) Formation {
	speed := cfg.BaseSpeed * (1 + float64(level)*cfg.LevelSpeedBonus)
	enemies := make([]*Entity, 0, cfg.Rows*cfg.Cols)

	for row := range cfg.Rows {
		for col := range cfg.Cols {
			enemies = append(enemies, &Entity{
				ID:   nextID(),
				Kind: KindEnemy,
				Body: Body{
					Pos: core.Vec2{
						X: cfg.OriginX + float64(col)*cfg.SpacingX,
						Y: cfg.OriginY + float64(row)*cfg.SpacingY,
					},
					Size: core.Vec2{X: cfg.Width, Y: cfg.Height},
					Vel:  core.Vec2{X: speed},
				},
				Enemy: &EnemyState{Row: row, Dir: 1, Speed: speed},
			})
		}
	}

	return Formation{enemies: enemies}
}

// Len returns the number of live enemies.
func (f *Formation) Len() int {
	n := 0
	for _, e := range f.enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Empty reports whether every enemy has been destroyed.
func (f *Formation) Empty() bool {
	return f.Len() == 0
}

// Members returns the live enemies in spawn order.
// The slice is owned by the formation and is valid until the next tick.
func (f *Formation) Members() []*Entity {
	f.compact()
	return f.enemies
}

// Direction returns the shared horizontal direction, or 0 for an empty formation.
func (f *Formation) Direction() float64 {
	for _, e := range f.enemies {
		if e.Alive() {
			return e.Enemy.Dir
		}
	}
	return 0
}

// move advances every live enemy.
func (f *Formation) move(scale float64) {
	for _, e := range f.enemies {
		if e.Alive() {
			e.advance(scale)
		}
	}
}

// Bounce flips the formation and drops it by descent if any member touches
// or crosses a side bound. It reports whether the formation turned.
func (f *Formation) Bounce(left, right, descent float64) bool {
	hit := false
	for _, e := range f.enemies {
		if !e.Alive() {
			continue
		}
		box := e.Box()
		if box.Right() >= right || box.X <= left {
			hit = true
			break
		}
	}
	if !hit {
		return false
	}

	for _, e := range f.enemies {
		if !e.Alive() {
			continue
		}
		e.Enemy.Dir = -e.Enemy.Dir
		e.Vel.X = e.Enemy.Dir * e.Enemy.Speed
		e.Pos.Y += descent
	}
	return true
}

// lowestEdge returns the largest bottom edge among live enemies.
func (f *Formation) lowestEdge() (float64, bool) {
	found := false
	lowest := 0.0
	for _, e := range f.enemies {
		if !e.Alive() {
			continue
		}
		if b := e.Box().Bottom(); !found || b > lowest {
			lowest = b
			found = true
		}
	}
	return lowest, found
}

func (f *Formation) compact() {
	f.enemies = compact(f.enemies)
}
