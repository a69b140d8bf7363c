package engine

// Resolution summarizes what collision resolution did in one tick.
type Resolution struct {
	Destroyed   int  // enemies removed by bullets
	ScoreGained int
	PlayerHit   bool // damage was applied this tick
	Absorbed    int  // enemy bullets removed by touching the ship
	Breached    bool // an enemy reached the ship's line
	GameOver    bool
	Cleared     bool
}

// add folds the outcome of a later step of the same tick into r.
func (r *Resolution) add(o Resolution) {
	r.Destroyed += o.Destroyed
	r.ScoreGained += o.ScoreGained
	r.PlayerHit = r.PlayerHit || o.PlayerHit
	r.Absorbed += o.Absorbed
	r.Breached = r.Breached || o.Breached
	r.GameOver = r.GameOver || o.GameOver
	r.Cleared = o.Cleared
}

// resolveCollisions runs the ordered collision rules against the world.
// Every removal goes through Entity.Remove, so a claimed entity is skipped by later rules.
func (w *World) resolveCollisions() Resolution {
	var r Resolution

	w.resolveBulletHits(&r)
	w.resolveRamming(&r)
	w.resolveEnemyFire(&r)

	if w.formation.Empty() {
		r.Cleared = true
	}

	shipTop := w.player.Box().Y
	if lowest, ok := w.formation.lowestEdge(); ok && lowest >= shipTop {
		r.Breached = true
		r.GameOver = true
	}

	w.formation.compact()
	w.bullets = compact(w.bullets)
	w.enemyBullets = compact(w.enemyBullets)

	return r
}

// resolveBulletHits pairs each enemy with the first live bullet overlapping it.
func (w *World) resolveBulletHits(r *Resolution) {
	for _, enemy := range w.formation.enemies {
		if !enemy.Alive() {
			continue
		}
		box := enemy.Box()
		for _, b := range w.bullets {
			if !b.Alive() || !b.Box().Intersects(box) {
				continue
			}
			b.Remove()
			enemy.Remove()
			r.Destroyed++
			r.ScoreGained += w.cfg.Enemies.PointsPerRow * (enemy.Enemy.Row + 1)
			break
		}
	}
	w.score += r.ScoreGained
}

// resolveRamming applies at most one hit when any enemy overlaps the ship.
func (w *World) resolveRamming(r *Resolution) {
	ps := w.player.Player
	if ps.Invulnerable {
		return
	}
	ship := w.player.Box()
	for _, enemy := range w.formation.enemies {
		if enemy.Alive() && enemy.Box().Intersects(ship) {
			w.applyHit(r)
			return
		}
	}
}

// resolveEnemyFire absorbs every enemy bullet touching the ship and applies
// at most one hit for the whole tick.
func (w *World) resolveEnemyFire(r *Resolution) {
	ship := w.player.Box()
	touched := false
	for _, b := range w.enemyBullets {
		if b.Alive() && b.Box().Intersects(ship) {
			b.Remove()
			r.Absorbed++
			touched = true
		}
	}
	if touched && !w.player.Player.Invulnerable {
		w.applyHit(r)
	}
}

func (w *World) applyHit(r *Resolution) {
	res := w.player.Player.Hit(w.cfg.Player.InvulnerableTicks)
	if !res.Applied {
		return
	}
	r.PlayerHit = true
	if res.Lethal {
		r.GameOver = true
	}
	w.log.Debug("player hit", "lives", w.player.Player.Lives, "tick", w.tick)
}
