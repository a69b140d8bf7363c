package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return New(config.DefaultInvadersConfig(), 1, nil)
}

// settle resolves one tick without moving anything or firing.
func settle(w *World) {
	w.AdvanceTick(Input{}, 0)
}

func bulletAt(w *World, kind Kind, x, y float64) *Entity {
	b := &Entity{
		ID:   w.id(),
		Kind: kind,
		Body: Body{
			Pos:  core.Vec2{X: x, Y: y},
			Size: core.Vec2{X: w.cfg.Projectiles.Width, Y: w.cfg.Projectiles.Height},
		},
	}
	if kind == KindBullet {
		w.bullets = append(w.bullets, b)
	} else {
		w.enemyBullets = append(w.enemyBullets, b)
	}
	return b
}

// keepOnly removes every enemy except the one at index i.
func keepOnly(w *World, i int) *Entity {
	keep := w.formation.enemies[i]
	for _, e := range w.formation.enemies {
		if e != keep {
			e.Remove()
		}
	}
	w.formation.compact()
	return keep
}

func TestFreshGame(t *testing.T) {
	w := newTestWorld(t)
	hud := w.HUD()

	if hud.Enemies != 50 {
		t.Errorf("enemies = %d, want 50", hud.Enemies)
	}
	if hud.Phase != PhasePlaying {
		t.Errorf("phase = %s, want playing", hud.Phase)
	}
	if hud.Level != 1 || hud.Score != 0 || hud.Lives != 3 {
		t.Errorf("hud = %+v", hud)
	}
	if hud.ShootDelay != time.Second {
		t.Errorf("delay = %s, want 1s", hud.ShootDelay)
	}
}

func TestBulletScoresByRow(t *testing.T) {
	w := newTestWorld(t)
	// Row 2, column 0 sits at (50, 150).
	bulletAt(w, KindBullet, 60, 160)
	settle(w)

	if got := w.HUD().Score; got != 30 {
		t.Errorf("score = %d, want 30", got)
	}
	if w.HUD().Enemies != 49 {
		t.Errorf("enemies = %d, want 49", w.HUD().Enemies)
	}
	if len(w.bullets) != 0 {
		t.Errorf("bullets = %d, want 0", len(w.bullets))
	}
}

func TestEnemyCountedOncePerTick(t *testing.T) {
	w := newTestWorld(t)
	// Two bullets on row 0, column 0 at (50, 50).
	bulletAt(w, KindBullet, 55, 60)
	second := bulletAt(w, KindBullet, 70, 60)
	settle(w)

	if got := w.HUD().Score; got != 10 {
		t.Errorf("score = %d, want 10", got)
	}
	if w.LastResolution().Destroyed != 1 {
		t.Errorf("destroyed = %d, want 1", w.LastResolution().Destroyed)
	}
	if !second.Alive() || len(w.bullets) != 1 {
		t.Error("second bullet should survive")
	}
}

func TestOneBulletTwoEnemies(t *testing.T) {
	w := newTestWorld(t)
	a, b := w.formation.enemies[0], w.formation.enemies[1]
	b.Pos.X = a.Pos.X + 10
	bulletAt(w, KindBullet, a.Pos.X+15, a.Pos.Y+5)
	settle(w)

	if w.LastResolution().Destroyed != 1 {
		t.Errorf("destroyed = %d, want 1", w.LastResolution().Destroyed)
	}
	if a.Alive() == b.Alive() {
		t.Error("exactly one of the overlapped enemies should remain")
	}
}

func TestLastEnemyCompletesLevel(t *testing.T) {
	w := newTestWorld(t)
	last := keepOnly(w, 42) // row 4
	bulletAt(w, KindBullet, last.Pos.X+5, last.Pos.Y+5)
	settle(w)

	hud := w.HUD()
	if hud.Score != 50 {
		t.Errorf("score = %d, want 50", hud.Score)
	}
	if hud.Enemies != 0 {
		t.Errorf("enemies = %d, want 0", hud.Enemies)
	}
	if hud.Phase != PhaseLevelComplete {
		t.Errorf("phase = %s, want level complete", hud.Phase)
	}
}

func TestRammingIsLethalOnLastLife(t *testing.T) {
	w := newTestWorld(t)
	w.player.Player.Lives = 1
	e := keepOnly(w, 0)
	e.Pos = w.player.Pos

	settle(w)

	if w.HUD().Lives != 0 {
		t.Errorf("lives = %d, want 0", w.HUD().Lives)
	}
	if w.Phase() != PhaseGameOver {
		t.Errorf("phase = %s, want game over", w.Phase())
	}
}

func TestRammingHitsOnce(t *testing.T) {
	w := newTestWorld(t)
	a, b := w.formation.enemies[0], w.formation.enemies[1]
	a.Pos = w.player.Pos
	b.Pos = w.player.Pos.Add(core.Vec2{X: 5})

	settle(w)

	if w.HUD().Lives != 2 {
		t.Errorf("lives = %d, want 2", w.HUD().Lives)
	}
	// An enemy on the ship is also past its line.
	if !w.LastResolution().Breached || w.Phase() != PhaseGameOver {
		t.Errorf("resolution = %+v, phase = %s", w.LastResolution(), w.Phase())
	}
}

func TestEnemyBulletsHitOncePerTick(t *testing.T) {
	w := newTestWorld(t)
	p := w.player.Pos
	bulletAt(w, KindEnemyBullet, p.X+5, p.Y+5)
	bulletAt(w, KindEnemyBullet, p.X+20, p.Y+5)
	settle(w)

	if w.HUD().Lives != 2 {
		t.Errorf("lives = %d, want 2", w.HUD().Lives)
	}
	if len(w.enemyBullets) != 0 {
		t.Errorf("enemy bullets = %d, want 0", len(w.enemyBullets))
	}
	if !w.HUD().Invulnerable {
		t.Error("player should be invulnerable")
	}
}

func TestInvulnerableAbsorbsWithoutDamage(t *testing.T) {
	w := newTestWorld(t)
	w.player.Player.Hit(w.cfg.Player.InvulnerableTicks)
	p := w.player.Pos
	bulletAt(w, KindEnemyBullet, p.X+5, p.Y+5)
	settle(w)

	if w.HUD().Lives != 2 {
		t.Errorf("lives = %d, want 2", w.HUD().Lives)
	}
	if len(w.enemyBullets) != 0 {
		t.Error("enemy bullet should be absorbed")
	}
}

func TestFloorBreach(t *testing.T) {
	w := newTestWorld(t)
	e := keepOnly(w, 0)
	e.Pos = core.Vec2{X: 0, Y: w.player.Pos.Y - e.Size.Y}

	settle(w)

	if w.Phase() != PhaseGameOver {
		t.Errorf("phase = %s, want game over", w.Phase())
	}
	if !w.LastResolution().Breached {
		t.Error("breach not reported")
	}
	if w.HUD().Lives != 3 {
		t.Errorf("lives = %d, want 3", w.HUD().Lives)
	}
}

func TestGameOverBeatsLevelComplete(t *testing.T) {
	w := newTestWorld(t)
	w.player.Player.Lives = 1
	last := keepOnly(w, 0)
	bulletAt(w, KindBullet, last.Pos.X+5, last.Pos.Y+5)
	p := w.player.Pos
	bulletAt(w, KindEnemyBullet, p.X+5, p.Y+5)

	settle(w)

	r := w.LastResolution()
	if !r.Cleared || !r.GameOver {
		t.Fatalf("resolution = %+v, want cleared and game over", r)
	}
	if w.Phase() != PhaseGameOver {
		t.Errorf("phase = %s, want game over", w.Phase())
	}
}

func TestDecidePhase(t *testing.T) {
	tests := []struct {
		name string
		r    Resolution
		want Phase
	}{
		{"nothing", Resolution{}, PhasePlaying},
		{"cleared", Resolution{Cleared: true}, PhaseLevelComplete},
		{"game over", Resolution{GameOver: true}, PhaseGameOver},
		{"both", Resolution{GameOver: true, Cleared: true}, PhaseGameOver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decidePhase(tt.r); got != tt.want {
				t.Errorf("decidePhase = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCommandsGatedByPhase(t *testing.T) {
	w := newTestWorld(t)

	if w.HandleCommand(CmdRestart) {
		t.Error("restart accepted while playing")
	}
	if w.HandleCommand(CmdAdvanceLevel) {
		t.Error("advance accepted while playing")
	}
	if w.HandleCommand(Command(99)) {
		t.Error("unknown command accepted")
	}
	if !w.HandleCommand(CmdShoot) {
		t.Error("first shot refused")
	}
	if w.HandleCommand(CmdShoot) {
		t.Error("shot accepted during cooldown")
	}

	w.phase = PhaseGameOver
	if w.HandleCommand(CmdShoot) {
		t.Error("shoot accepted after game over")
	}
	if w.HandleCommand(CmdAdvanceLevel) {
		t.Error("advance accepted after game over")
	}
	if !w.HandleCommand(CmdQuit) || !w.Quitting() {
		t.Error("quit not accepted")
	}
}

func TestShootSpawnsAboveShip(t *testing.T) {
	w := newTestWorld(t)
	w.HandleCommand(CmdShoot)
	if len(w.bullets) != 1 {
		t.Fatalf("bullets = %d, want 1", len(w.bullets))
	}
	b := w.bullets[0].Box()
	ship := w.player.Box()
	if b.Bottom() != ship.Y || b.CenterX() != ship.CenterX() {
		t.Errorf("bullet at %+v, ship at %+v", b, ship)
	}

	w.AdvanceTick(Input{}, ReferenceTick)
	if got := w.bullets[0].Box().Bottom(); got != ship.Y-w.cfg.Projectiles.BulletSpeed {
		t.Errorf("bullet bottom = %g, want %g", got, ship.Y-w.cfg.Projectiles.BulletSpeed)
	}
}

func TestBulletLeavesPlayfield(t *testing.T) {
	w := newTestWorld(t)
	// Clear of the formation columns and above the top edge after one tick.
	bulletAt(w, KindBullet, 5, -10)
	bulletAt(w, KindEnemyBullet, 5, w.cfg.Playfield.Height-2)
	w.AdvanceTick(Input{}, ReferenceTick)

	if len(w.bullets) != 0 || len(w.enemyBullets) != 0 {
		t.Errorf("bullets = %d, enemy bullets = %d, want 0 and 0", len(w.bullets), len(w.enemyBullets))
	}
}

func TestLongTicksDoNotTunnel(t *testing.T) {
	for _, elapsed := range []time.Duration{time.Second / 60, time.Second / 30, time.Second / 10, time.Second / 4} {
		t.Run(elapsed.String(), func(t *testing.T) {
			w := newTestWorld(t)
			target := keepOnly(w, 42) // row 4, box y 250..290
			target.Vel = core.Vec2{}
			bulletAt(w, KindBullet, target.Pos.X+17, target.Box().Bottom()+62)

			for range 10 {
				w.AdvanceTick(Input{}, elapsed)
				if w.Phase() != PhasePlaying {
					break
				}
			}

			if got := w.HUD().Score; got != 50 {
				t.Errorf("score = %d, want 50", got)
			}
			if w.Phase() != PhaseLevelComplete {
				t.Errorf("phase = %s, want level complete", w.Phase())
			}
		})
	}
}

func TestLongTicksKeepInvulnerabilityLength(t *testing.T) {
	w := newTestWorld(t)
	w.player.Player.Hit(w.cfg.Player.InvulnerableTicks)

	window := time.Duration(w.cfg.Player.InvulnerableTicks) * ReferenceTick
	elapsed := time.Second / 10
	ticks := 0
	for w.HUD().Invulnerable && w.Phase() == PhasePlaying {
		w.AdvanceTick(Input{}, elapsed)
		ticks++
	}

	if got := time.Duration(ticks) * elapsed; got < window || got > window+elapsed {
		t.Errorf("invulnerable for %s, want about %s", got, window)
	}
}

func TestLongTickKeepsScoreInResolution(t *testing.T) {
	w := newTestWorld(t)
	// Just below row 4, column 0 at (50, 250); hit on the first step.
	bulletAt(w, KindBullet, 60, 295)
	w.AdvanceTick(Input{}, time.Second/10)

	if r := w.LastResolution(); r.Destroyed != 1 || r.ScoreGained != 50 {
		t.Errorf("resolution = %+v, want one enemy for 50 points", r)
	}
	if w.Now() != time.Second/10 {
		t.Errorf("clock = %s, want 100ms", w.Now())
	}
}

func TestPlayerClampedToPlayfield(t *testing.T) {
	w := newTestWorld(t)
	for range 200 {
		w.AdvanceTick(Input{Left: true}, ReferenceTick)
	}
	if w.player.Pos.X != 0 {
		t.Errorf("x = %g, want 0", w.player.Pos.X)
	}

	w = newTestWorld(t)
	for range 200 {
		w.AdvanceTick(Input{Right: true}, ReferenceTick)
	}
	if got, want := w.player.Box().Right(), w.cfg.Playfield.Width; got != want {
		t.Errorf("right = %g, want %g", got, want)
	}
}

func TestAdvanceLevelKeepsShip(t *testing.T) {
	w := newTestWorld(t)
	w.player.Player.Lives = 2
	w.player.Pos.X = 10
	w.score = 120
	for _, e := range w.formation.enemies {
		e.Remove()
	}
	settle(w)
	if w.Phase() != PhaseLevelComplete {
		t.Fatalf("phase = %s, want level complete", w.Phase())
	}

	if !w.HandleCommand(CmdAdvanceLevel) {
		t.Fatal("advance refused")
	}
	hud := w.HUD()
	if hud.Level != 2 || hud.Lives != 2 || hud.Score != 120 {
		t.Errorf("hud = %+v", hud)
	}
	if hud.Enemies != 50 || hud.Phase != PhasePlaying {
		t.Errorf("hud = %+v", hud)
	}
	if hud.ShootDelay != 900*time.Millisecond {
		t.Errorf("delay = %s, want 900ms", hud.ShootDelay)
	}
	if got := w.formation.enemies[0].Enemy.Speed; got < 2.39 || got > 2.41 {
		t.Errorf("speed = %g, want 2.4", got)
	}
	if w.player.Pos.X != (w.cfg.Playfield.Width-w.player.Size.X)/2 {
		t.Errorf("ship not re-centered: x = %g", w.player.Pos.X)
	}
}

func TestAdvanceLevelRespectsFloor(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.Cadence.BaseDelay = 250 * time.Millisecond
	w := New(cfg, 1, nil)
	w.phase = PhaseLevelComplete
	w.HandleCommand(CmdAdvanceLevel)

	if w.HUD().ShootDelay != 200*time.Millisecond {
		t.Errorf("delay = %s, want 200ms", w.HUD().ShootDelay)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	w := newTestWorld(t)
	w.score = 500
	w.level = 3
	w.player.Player.Lives = 0
	w.cadence.base = 400 * time.Millisecond
	w.phase = PhaseGameOver

	if !w.HandleCommand(CmdRestart) {
		t.Fatal("restart refused")
	}
	hud := w.HUD()
	want := HUD{Score: 0, Level: 1, Lives: 3, Phase: PhasePlaying, ShootDelay: time.Second, Enemies: 50}
	if hud != want {
		t.Errorf("hud = %+v, want %+v", hud, want)
	}
}

func TestFrozenOutsidePlaying(t *testing.T) {
	w := newTestWorld(t)
	w.phase = PhaseGameOver
	before := w.Snapshot()

	w.AdvanceTick(Input{Left: true, Fire: true}, ReferenceTick)

	after := w.Snapshot()
	if after.Now != before.Now+ReferenceTick {
		t.Errorf("clock = %s, want %s", after.Now, before.Now+ReferenceTick)
	}
	if len(after.Entities) != len(before.Entities) || after.Entities[0] != before.Entities[0] {
		t.Error("entities moved while frozen")
	}
}

func TestRenderables(t *testing.T) {
	w := newTestWorld(t)
	w.HandleCommand(CmdShoot)

	counts := map[Kind]int{}
	for r := range w.Renderables() {
		counts[r.Kind]++
	}
	if counts[KindPlayer] != 1 || counts[KindEnemy] != 50 || counts[KindBullet] != 1 {
		t.Errorf("counts = %v", counts)
	}

	n := 0
	for range w.Renderables() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("early stop visited %d", n)
	}

	total := 0
	for range w.Renderables() {
		total++
	}
	if total != 52 {
		t.Errorf("second pass = %d, want 52", total)
	}
}

func TestSameSeedSameGame(t *testing.T) {
	run := func(seed int64) uint64 {
		w := New(config.DefaultInvadersConfig(), seed, nil)
		inputs := rand.New(rand.NewSource(7))
		for range 900 {
			in := Input{
				Left:  inputs.Intn(3) == 0,
				Right: inputs.Intn(3) == 0,
				Fire:  inputs.Intn(4) == 0,
			}
			w.AdvanceTick(in, ReferenceTick)
		}
		return w.Snapshot().Hash()
	}

	if run(42) != run(42) {
		t.Error("same seed produced different games")
	}
}

func TestLivesInvariant(t *testing.T) {
	w := New(config.DefaultInvadersConfig(), 3, nil)
	inputs := rand.New(rand.NewSource(11))

	for tick := range 20000 {
		prev := w.HUD().Lives
		w.AdvanceTick(Input{
			Left:  inputs.Intn(2) == 0,
			Right: inputs.Intn(2) == 0,
			Fire:  true,
		}, ReferenceTick)

		hud := w.HUD()
		if hud.Lives < 0 || hud.Lives > 3 {
			t.Fatalf("tick %d: lives = %d", tick, hud.Lives)
		}
		if hud.Lives == 0 && prev > 0 && hud.Phase != PhaseGameOver {
			t.Fatalf("tick %d: lives hit zero in phase %s", tick, hud.Phase)
		}

		switch hud.Phase {
		case PhaseGameOver:
			w.HandleCommand(CmdRestart)
		case PhaseLevelComplete:
			w.HandleCommand(CmdAdvanceLevel)
		}
	}
}
