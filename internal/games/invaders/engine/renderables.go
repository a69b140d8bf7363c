package engine

import (
	"iter"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Renderable is one drawable entity.
type Renderable struct {
	ID     uint64
	Kind   Kind
	Box    core.RectF
	Row    int  // enemy row, 0 otherwise
	Dimmed bool // ship blink phase
}

// Renderables yields the live entities in draw order: ship, enemies, bullets,
// enemy bullets. The sequence reads the world when ranged over, so it can be
// ranged again after the next tick.
func (w *World) Renderables() iter.Seq[Renderable] {
	return func(yield func(Renderable) bool) {
		p := w.player
		if !yield(Renderable{
			ID:     p.ID,
			Kind:   KindPlayer,
			Box:    p.Box(),
			Dimmed: p.Player.Dimmed(w.cfg.Player.BlinkPeriod),
		}) {
			return
		}

		for _, e := range w.formation.enemies {
			if !e.Alive() {
				continue
			}
			if !yield(Renderable{ID: e.ID, Kind: KindEnemy, Box: e.Box(), Row: e.Enemy.Row}) {
				return
			}
		}

		for _, list := range [][]*Entity{w.bullets, w.enemyBullets} {
			for _, b := range list {
				if !b.Alive() {
					continue
				}
				if !yield(Renderable{ID: b.ID, Kind: b.Kind, Box: b.Box()}) {
					return
				}
			}
		}
	}
}
