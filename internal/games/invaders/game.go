// Package invaders adapts the invaders simulation to the arcade platform:
// it maps platform actions to engine commands, owns pause, and draws the
// world into a terminal cell buffer.
package invaders

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/engine"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// ID is the registry and score-table identifier.
const ID = "invaders"

// steerHold is how long one key press keeps the ship moving.
// Terminals report presses and auto-repeat, never releases.
const steerHold = 6 * engine.ReferenceTick

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI or menu
var difficultyPreset config.DifficultyPreset

// logger receives engine and adapter diagnostics
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// DifficultyPreset returns the preset applied on the next Reset.
func DifficultyPreset() config.DifficultyPreset {
	return difficultyPreset
}

// SetLogger routes diagnostics to l. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game on top of engine.World.
type Game struct {
	world   *engine.World
	cfg     config.InvadersConfig
	runtime core.RuntimeConfig
	elapsed time.Duration // simulated time per Step

	paused     bool
	steerDir   int // -1 left, +1 right
	steerTicks int
	holdTicks  int // steerHold in Steps at the current tick rate

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates an invaders game. Reset must be called before Step.
func New() *Game {
	return &Game{minScreenW: 40, minScreenH: 16}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Invaders" }

// Reset loads the configuration and starts a fresh world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if runtime.TickRate <= 0 {
		g.runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.elapsed = time.Second / time.Duration(g.runtime.TickRate)
	g.holdTicks = max(1, int((steerHold+g.elapsed/2)/g.elapsed))

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		logger.Warn("using built-in config", "error", err)
		cfg = config.DefaultInvadersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.world = engine.New(cfg, runtime.Seed, logger)
	g.paused = false
	g.steerDir, g.steerTicks = 0, 0
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize adapts the layout to a new terminal size without touching the world.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// Step applies the frame's actions and advances the world by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		g.world.HandleCommand(engine.CmdQuit)
		return core.StepResult{State: g.State(), Quit: true}
	}

	phase := g.world.Phase()
	if in.Has(core.ActionPause) && phase == engine.PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.world.HandleCommand(engine.CmdRestart)
	}
	if in.Has(core.ActionNextLevel) {
		g.world.HandleCommand(engine.CmdAdvanceLevel)
	}
	if in.Has(core.ActionFire) {
		g.world.HandleCommand(engine.CmdShoot)
	}

	g.world.AdvanceTick(g.steer(in), g.elapsed)

	return core.StepResult{State: g.State()}
}

// steer converts discrete key presses into a held direction.
func (g *Game) steer(in core.InputFrame) engine.Input {
	switch {
	case in.Has(core.ActionLeft) && !in.Has(core.ActionRight):
		g.steerDir, g.steerTicks = -1, g.holdTicks
	case in.Has(core.ActionRight) && !in.Has(core.ActionLeft):
		g.steerDir, g.steerTicks = 1, g.holdTicks
	}

	if g.steerTicks <= 0 {
		g.steerDir = 0
		return engine.Input{}
	}
	g.steerTicks--
	return engine.Input{Left: g.steerDir < 0, Right: g.steerDir > 0}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	hud := g.world.HUD()
	return core.GameState{
		Score:    hud.Score,
		Level:    hud.Level,
		GameOver: hud.Phase == engine.PhaseGameOver,
		Paused:   g.paused,
	}
}

// World exposes the simulation for inspection.
func (g *Game) World() *engine.World {
	return g.world
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
