package invaders

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/engine"
)

// Visual characters for rendering
const (
	ShipChar        = '▲'
	BulletChar      = '│'
	EnemyBulletChar = '¦'
	LifeChar        = '♥'
	SeparatorChar   = '─'
)

// hudRows is the number of rows above the playfield.
const hudRows = 2

// enemyGlyphs and enemyColors are indexed by formation row.
var (
	enemyGlyphs = []rune{'▓', '▒', '#', '%', '@'}
	enemyColors = []core.Color{
		core.ColorMagenta,
		core.ColorRed,
		core.ColorYellow,
		core.ColorCyan,
		core.ColorGreen,
	}
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderWorld(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, lives and level on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := g.world.HUD()

	dst.SetPen(core.ColorBrightWhite)
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", hud.Score))

	levelText := fmt.Sprintf("Level: %d", hud.Level)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	lives := "Lives: " + strings.Repeat(string(LifeChar), hud.Lives)
	x := (dst.Width() - len([]rune(lives))) / 2
	dst.DrawText(x, 0, "Lives: ")
	dst.SetPen(core.ColorBrightRed)
	dst.DrawText(x+len("Lives: "), 0, strings.Repeat(string(LifeChar), hud.Lives))

	dst.SetPen(core.ColorGray)
	dst.DrawHLine(0, 1, dst.Width(), SeparatorChar)
	dst.SetPen(core.ColorDefault)
}

// renderWorld projects every renderable from playfield units onto the cell grid.
func (g *Game) renderWorld(dst *core.Screen) {
	sx := float64(dst.Width()) / g.cfg.Playfield.Width
	sy := float64(dst.Height()-hudRows) / g.cfg.Playfield.Height

	for r := range g.world.Renderables() {
		cell := r.Box.Project(sx, sy)
		cell.Y += hudRows

		glyph, color := appearance(r)
		dst.SetPen(color)
		dst.DrawRect(cell, glyph)
	}
	dst.SetPen(core.ColorDefault)
}

// appearance picks the glyph and color for one renderable.
func appearance(r engine.Renderable) (rune, core.Color) {
	switch r.Kind {
	case engine.KindPlayer:
		if r.Dimmed {
			return ShipChar, core.ColorGray
		}
		return ShipChar, core.ColorBrightGreen
	case engine.KindEnemy:
		i := r.Row % len(enemyGlyphs)
		return enemyGlyphs[i], enemyColors[i]
	case engine.KindBullet:
		return BulletChar, core.ColorBrightYellow
	case engine.KindEnemyBullet:
		return EnemyBulletChar, core.ColorOrange
	default:
		return '?', core.ColorDefault
	}
}

// renderOverlay draws phase banners.
func (g *Game) renderOverlay(dst *core.Screen) {
	hud := g.world.HUD()

	switch {
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case hud.Phase == engine.PhaseGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", hud.Score)
		drawCenteredBox(dst, "GAME OVER", subtitle)
	case hud.Phase == engine.PhaseLevelComplete:
		subtitle := fmt.Sprintf("Press N for level %d", hud.Level+1)
		drawCenteredBox(dst, "LEVEL COMPLETE", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.SetPen(core.ColorBrightWhite)
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
	dst.SetPen(core.ColorDefault)
}
