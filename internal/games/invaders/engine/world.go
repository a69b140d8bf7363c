package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// Input is the directional intent held during a tick.
type Input struct {
	Left  bool
	Right bool
	Fire  bool // attempt a shot at the start of the tick
}

// HUD is the overlay state a renderer needs.
type HUD struct {
	Score        int
	Level        int
	Lives        int
	Phase        Phase
	ShootDelay   time.Duration // current base enemy fire delay
	Enemies      int
	Invulnerable bool
}

// World is the whole simulation state. It is not safe for concurrent use.
type World struct {
	cfg  config.InvadersConfig
	rng  *rand.Rand
	seed int64
	log  *log.Logger

	now    time.Duration
	tick   uint64
	nextID uint64

	player       *Entity
	formation    Formation
	bullets      []*Entity
	enemyBullets []*Entity
	cadence      Cadence

	score int
	level int
	phase Phase
	quit  bool

	last Resolution
}

// New creates a world ready to play level 1. A nil logger discards output.
func New(cfg config.InvadersConfig, seed int64, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &World{
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
		log:  logger.WithPrefix("engine"),
	}
	w.Restart()
	return w
}

// Restart rebuilds everything from scratch: score, level, fire delay,
// timers and a fresh ship. The clock keeps running.
func (w *World) Restart() {
	w.score = 0
	w.level = 1
	w.phase = PhasePlaying
	w.last = Resolution{}

	w.player = newPlayer(w.id(), w.cfg)
	w.bullets = nil
	w.enemyBullets = nil
	w.formation = spawnFormation(w.cfg.Enemies, w.level, w.id)
	w.cadence = newCadence(w.cfg.Cadence, w.now)

	w.log.Info("game started", "seed", w.seed, "delay", w.cadence.Base())
}

// advanceLevel keeps the ship and its lives, spawns a faster formation and
// lowers the fire delay by one level step.
func (w *World) advanceLevel() {
	w.level++
	w.phase = PhasePlaying
	w.last = Resolution{}

	recenter(w.player, w.cfg)
	w.bullets = nil
	w.enemyBullets = nil
	w.formation = spawnFormation(w.cfg.Enemies, w.level, w.id)
	w.cadence.stepLevel()
	w.cadence.restartTimers(w.now)

	w.log.Info("level advanced", "level", w.level, "delay", w.cadence.Base())
}

// AdvanceTick runs one tick. The clock always moves; gameplay only runs while Playing.
// Long ticks are split into steps close to ReferenceTick, so fast bullets
// cannot skip over an enemy and tick-counted timers keep their real length.
func (w *World) AdvanceTick(in Input, elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	w.tick++

	if w.phase != PhasePlaying {
		w.now += elapsed
		return
	}

	start, prev := w.now, w.now
	n := substeps(elapsed)
	var total Resolution
	for i := range n {
		w.now = start + elapsed*time.Duration(i+1)/time.Duration(n)
		d := w.now - prev
		prev = w.now

		if i == 0 && in.Fire {
			w.shoot()
		}
		total.add(w.step(in, d))
		if w.phase != PhasePlaying {
			break
		}
	}
	w.now = start + elapsed
	w.last = total
}

// substeps is the number of steps elapsed is divided into. Each step is
// at most one and a half reference ticks long.
func substeps(elapsed time.Duration) int {
	n := int((elapsed + ReferenceTick/2) / ReferenceTick)
	return max(n, 1)
}

// step runs motion, cadence, collisions and the phase decision once.
func (w *World) step(in Input, elapsed time.Duration) Resolution {
	scale := float64(elapsed) / float64(ReferenceTick)
	w.move(in, scale)
	if w.formation.Bounce(0, w.cfg.Playfield.Width, w.cfg.Enemies.Descent) {
		w.log.Debug("formation bounced", "dir", w.formation.Direction(), "tick", w.tick)
	}

	if shooter := w.cadence.TryFire(w.now, &w.formation, w.rng); shooter != nil {
		w.enemyBullets = append(w.enemyBullets, enemyBullet(w.id(), shooter, w.cfg.Projectiles))
	}

	r := w.resolveCollisions()
	w.phase = decidePhase(r)

	switch w.phase {
	case PhasePlaying:
		if w.cadence.Escalate(w.now) {
			w.log.Debug("fire delay escalated", "delay", w.cadence.Base())
		}
	case PhaseGameOver:
		w.log.Info("game over", "score", w.score, "level", w.level)
	case PhaseLevelComplete:
		w.log.Info("level complete", "score", w.score, "level", w.level)
	}
	return r
}

// move advances every entity and drops projectiles that left the playfield.
func (w *World) move(in Input, scale float64) {
	steer(w.player, in, w.cfg.Player.Speed, w.cfg.Playfield.Width, scale)
	w.player.Player.tickInvulnerability()

	w.formation.move(scale)

	for _, b := range w.bullets {
		b.advance(scale)
		if b.Box().Bottom() < 0 {
			b.Remove()
		}
	}
	for _, b := range w.enemyBullets {
		b.advance(scale)
		if b.Pos.Y > w.cfg.Playfield.Height {
			b.Remove()
		}
	}
	w.bullets = compact(w.bullets)
	w.enemyBullets = compact(w.enemyBullets)
}

// HandleCommand applies an external command and reports whether it was accepted.
// Commands outside their phase and unknown commands are ignored.
func (w *World) HandleCommand(cmd Command) bool {
	switch cmd {
	case CmdShoot:
		if w.phase != PhasePlaying {
			return false
		}
		return w.shoot()
	case CmdRestart:
		if w.phase != PhaseGameOver {
			return false
		}
		w.Restart()
		return true
	case CmdAdvanceLevel:
		if w.phase != PhaseLevelComplete {
			return false
		}
		w.advanceLevel()
		return true
	case CmdQuit:
		w.quit = true
		return true
	default:
		return false
	}
}

// shoot fires one bullet if the ship's cooldown allows it.
func (w *World) shoot() bool {
	ps := w.player.Player
	if !ps.CanShoot(w.now, w.cfg.Player.ShootCooldown) {
		return false
	}
	ps.LastShot = w.now
	ps.HasShot = true
	w.bullets = append(w.bullets, playerBullet(w.id(), w.player, w.cfg.Projectiles))
	return true
}

// HUD returns the overlay state.
func (w *World) HUD() HUD {
	return HUD{
		Score:        w.score,
		Level:        w.level,
		Lives:        w.player.Player.Lives,
		Phase:        w.phase,
		ShootDelay:   w.cadence.Base(),
		Enemies:      w.formation.Len(),
		Invulnerable: w.player.Player.Invulnerable,
	}
}

// Phase returns the current phase.
func (w *World) Phase() Phase { return w.phase }

// Quitting reports whether a Quit command was received.
func (w *World) Quitting() bool { return w.quit }

// Now returns the simulation clock.
func (w *World) Now() time.Duration { return w.now }

// LastResolution returns the collision outcome of the most recent gameplay tick.
func (w *World) LastResolution() Resolution { return w.last }

// Config returns the configuration the world was built with.
func (w *World) Config() config.InvadersConfig { return w.cfg }

func (w *World) id() uint64 {
	w.nextID++
	return w.nextID
}
