package engine

import (
	"fmt"
	"hash/fnv"
	"time"
)

// Snapshot is a flat copy of the world used for replay checks.
type Snapshot struct {
	Tick      uint64
	Now       time.Duration
	Score     int
	Level     int
	Lives     int
	Phase     Phase
	BaseDelay time.Duration

	// Each entity contributes Kind, X, Y in draw order.
	Entities []EntityState
}

// EntityState is the positional part of an entity.
type EntityState struct {
	Kind Kind
	X, Y float64
}

// Snapshot captures the current world.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      w.tick,
		Now:       w.now,
		Score:     w.score,
		Level:     w.level,
		Lives:     w.player.Player.Lives,
		Phase:     w.phase,
		BaseDelay: w.cadence.Base(),
	}
	for r := range w.Renderables() {
		s.Entities = append(s.Entities, EntityState{Kind: r.Kind, X: r.Box.X, Y: r.Box.Y})
	}
	return s
}

// Hash returns a digest of the snapshot. Equal worlds hash equally.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "T:%d;N:%d;S:%d;L:%d;V:%d;P:%d;D:%d;E:", s.Tick, s.Now, s.Score, s.Level, s.Lives, s.Phase, s.BaseDelay)
	for _, e := range s.Entities {
		fmt.Fprintf(h, "%d:%g:%g,", e.Kind, e.X, e.Y)
	}
	return h.Sum64()
}
