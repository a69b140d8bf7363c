package engine

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// HitResult describes the outcome of damaging the player.
type HitResult struct {
	Applied bool // false when the ship was invulnerable
	Lethal  bool // lives reached zero
}

// newPlayer creates a ship centered horizontally at the bottom of the field.
func newPlayer(id uint64, cfg config.InvadersConfig) *Entity {
	p := &Entity{
		ID:   id,
		Kind: KindPlayer,
		Body: Body{Size: core.Vec2{X: cfg.Player.Width, Y: cfg.Player.Height}},
		Player: &PlayerState{
			Lives: cfg.Player.Lives,
		},
	}
	recenter(p, cfg)
	return p
}

// recenter puts the ship back at its starting spot without touching its state.
func recenter(p *Entity, cfg config.InvadersConfig) {
	p.Pos = core.Vec2{
		X: (cfg.Playfield.Width - p.Size.X) / 2,
		Y: cfg.Playfield.Height - cfg.Player.BottomMargin - p.Size.Y,
	}
	p.Vel = core.Vec2{}
}

// steer sets the ship's velocity from the held direction keys and moves it,
// keeping the whole box inside the playfield.
func steer(p *Entity, in Input, speed, fieldWidth, scale float64) {
	p.Vel.X = 0
	if in.Left {
		p.Vel.X -= speed
	}
	if in.Right {
		p.Vel.X += speed
	}

	p.advance(scale)
	p.Pos.X = core.ClampF(p.Pos.X, 0, fieldWidth-p.Size.X)
}

// CanShoot reports whether the cooldown allows a shot at time now.
func (s *PlayerState) CanShoot(now, cooldown time.Duration) bool {
	return !s.HasShot || now-s.LastShot > cooldown
}

// Hit applies one point of damage unless the ship is invulnerable.
// A successful hit starts an invulnerability window of the given length.
func (s *PlayerState) Hit(invulnerableTicks int) HitResult {
	if s.Invulnerable {
		return HitResult{}
	}

	if s.Lives > 0 {
		s.Lives--
	}
	s.Invulnerable = true
	s.InvulnerableTicks = invulnerableTicks

	return HitResult{Applied: true, Lethal: s.Lives <= 0}
}

// tickInvulnerability counts the window down and clears it at zero.
func (s *PlayerState) tickInvulnerability() {
	if !s.Invulnerable {
		return
	}
	s.InvulnerableTicks--
	if s.InvulnerableTicks <= 0 {
		s.InvulnerableTicks = 0
		s.Invulnerable = false
	}
}

// Dimmed reports the cosmetic blink phase while invulnerable.
func (s *PlayerState) Dimmed(period int) bool {
	if !s.Invulnerable || period <= 0 {
		return false
	}
	return s.InvulnerableTicks%period < period/2
}
