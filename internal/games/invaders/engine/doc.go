// Package engine is the simulation core of the invaders game.
//
// A World owns every entity and advances them one tick at a time:
// motion, formation bounce, enemy fire cadence, collision resolution and
// finally the phase decision. Each AdvanceTick call applies a whole tick, so
// callers never observe a partially updated world.
//
// The package has no knowledge of terminals or timing sources. The host passes
// elapsed time into AdvanceTick and reads state back through HUD and
// Renderables.
package engine
