package journey

import (
	"fmt"

	"github.com/journey-arcade/journey/internal/core"
)

// Entity glyphs. World rectangles are scaled down to the terminal grid, so a
// single glyph can stand in for a whole sprite.
const (
	platformChar = '▄'
	obstacleChar = '▓'
	playerChar   = '█'
	goalChar     = '♛'
	floorChar    = '═'
	shieldChar   = '◆'
	healthChar   = '♥'
	boostChar    = '★'
)

// Render draws the current session to the terminal grid. Row 0 is the HUD,
// the last row is the floor, and the world band in between is scaled from
// viewport coordinates to cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	floorRow := dst.Height() - 1
	dst.DrawHLine(0, floorRow, dst.Width(), floorChar)

	for _, plat := range g.world.Platforms {
		g.drawEntity(dst, plat, platformChar, core.ColorYellow)
	}
	for _, obs := range g.world.Obstacles {
		g.drawEntity(dst, obs, obstacleChar, core.ColorRed)
	}
	for _, pu := range g.world.PowerUps {
		g.drawEntity(dst, pu.Rect, powerUpGlyph(pu.Kind), powerUpColor(pu.Kind))
	}
	if g.world.Goal != nil {
		g.drawEntity(dst, *g.world.Goal, goalChar, core.ColorMagenta)
	}

	playerColor := core.ColorBrightBlue
	if g.shieldTicks > 0 {
		playerColor = core.ColorBrightCyan
	}
	g.drawEntity(dst, g.playerRect(), playerChar, playerColor)

	g.drawHUD(dst)

	switch {
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.state == StateStart:
		g.drawCenteredMessage(dst, "JOURNEY TO JOY", "Press SPACE to begin")
	case g.state == StateGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.state == StateWin:
		g.drawCenteredMessage(dst, "YOU FOUND THE QUEEN!", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawEntity maps a world rectangle through the camera and viewport scale
// and fills the covered cells. Anything at least partly inside the viewport
// occupies at least one cell so small pickups stay visible.
func (g *Game) drawEntity(dst *core.Screen, r core.Rect, glyph rune, c core.Color) {
	viewW := g.cfg.World.ViewportW
	viewH := g.cfg.World.ViewportH

	if r.Right() < g.cameraX || r.X > g.cameraX+viewW {
		return
	}

	x0 := (r.X - g.cameraX) * dst.Width() / viewW
	x1 := (r.Right() - g.cameraX) * dst.Width() / viewW
	// Rows 1..height-2 are the world band.
	band := dst.Height() - 2
	y0 := 1 + r.Y*band/viewH
	y1 := 1 + r.Bottom()*band/viewH

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, glyph, c)
		}
	}
}

func powerUpGlyph(k PowerUpKind) rune {
	switch k {
	case KindShield:
		return shieldChar
	case KindHealth:
		return healthChar
	default:
		return boostChar
	}
}

func powerUpColor(k PowerUpKind) core.Color {
	switch k {
	case KindShield:
		return core.ColorCyan
	case KindHealth:
		return core.ColorBrightGreen
	default:
		return core.ColorBrightYellow
	}
}

// drawHUD renders score, level, health bar and shield timer on row 0.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Level: %d/%d ", g.score, g.level, len(g.cfg.World.LevelLengths)))

	const barLen = 10
	filled := g.health * barLen / maxHealth
	bar := make([]rune, barLen)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	hpColor := core.ColorGreen
	if g.health <= 30 {
		hpColor = core.ColorRed
	}
	hpX := dst.Width() - barLen - 16
	dst.DrawText(hpX, 0, " HP ")
	dst.DrawTextColored(hpX+4, 0, string(bar), hpColor)

	if g.shieldTicks > 0 {
		tickRate := core.Max(1, g.runtime.TickRate)
		secs := g.shieldTicks / tickRate
		dst.DrawTextColored(hpX+4+barLen, 0, fmt.Sprintf(" ◆%ds ", secs+1), core.ColorCyan)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
