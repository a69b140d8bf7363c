package engine

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ReferenceTick is the step length velocities are expressed against.
// Advancing by exactly one ReferenceTick moves an entity by exactly its velocity.
const ReferenceTick = time.Second / 60

// Kind tags the variant of an Entity.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBullet
	KindEnemyBullet
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindEnemyBullet:
		return "enemy-bullet"
	default:
		return "unknown"
	}
}

// Body holds the fields every entity shares.
type Body struct {
	Pos  core.Vec2 // top-left corner
	Size core.Vec2
	Vel  core.Vec2 // units per ReferenceTick
}

// Box returns the bounding box of the body.
func (b Body) Box() core.RectF {
	return core.NewRectF(b.Pos.X, b.Pos.Y, b.Size.X, b.Size.Y)
}

// PlayerState is the payload of a KindPlayer entity.
type PlayerState struct {
	Lives             int           // within [0, config lives]; 3 on normal, 5 on easy
	LastShot          time.Duration // simulation time of the last successful shot
	HasShot           bool          // false until the first shot of this ship
	Invulnerable      bool
	InvulnerableTicks int
}

// EnemyState is the payload of a KindEnemy entity.
type EnemyState struct {
	Row   int     // 0 is the top row
	Dir   float64 // +1 moves right, -1 moves left
	Speed float64 // magnitude, units per ReferenceTick
}

// Entity is a tagged variant: Body is common, Player or Enemy is set according to Kind.
type Entity struct {
	ID   uint64
	Kind Kind
	Body

	Player *PlayerState
	Enemy  *EnemyState

	removed bool
}

// Alive reports whether the entity is still part of the simulation.
func (e *Entity) Alive() bool {
	return !e.removed
}

// Remove marks the entity as gone. It returns false if it was already removed,
// which lets collision rules claim an entity at most once per tick.
func (e *Entity) Remove() bool {
	if e.removed {
		return false
	}
	e.removed = true
	return true
}

// advance moves the body by its velocity scaled to the elapsed step.
func (e *Entity) advance(scale float64) {
	e.Pos = e.Pos.Add(e.Vel.Scale(scale))
}

// compact drops removed entities, reusing the backing array.
func compact(list []*Entity) []*Entity {
	kept := list[:0]
	for _, e := range list {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	clear(list[len(kept):])
	return kept
}
