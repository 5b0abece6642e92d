package journey

import "github.com/journey-arcade/journey/internal/core"

// playerRect returns the player's collision box in world coordinates.
func (g *Game) playerRect() core.Rect {
	return core.NewRect(g.playerX, g.playerY, g.cfg.Player.Width, g.cfg.Player.Height)
}

// advance moves the player forward at the fixed run speed and tracks the
// camera at the viewport midpoint, clamped to the world bounds.
func (g *Game) advance() {
	g.playerX += g.cfg.Physics.RunSpeed

	half := g.cfg.World.ViewportW / 2
	maxCam := core.Max(0, g.world.Length-g.cfg.World.ViewportW)
	if g.playerX > g.cameraX+half {
		g.cameraX = core.Clamp(g.playerX-half, 0, maxCam)
	}
}

// applyGravity integrates vertical motion, clamps to the floor, and lands on
// platforms. Landing only happens while falling; rising through a platform
// from below passes clean through it.
func (g *Game) applyGravity() {
	g.velY += g.cfg.Physics.Gravity
	g.playerY += g.velY

	floor := g.cfg.World.ViewportH
	if g.playerY+g.cfg.Player.Height > floor {
		g.playerY = floor - g.cfg.Player.Height
		g.land()
	}

	for _, plat := range g.world.Platforms {
		if g.velY >= 0 && g.playerRect().Intersects(plat) {
			g.playerY = plat.Y - g.cfg.Player.Height
			g.land()
		}
	}
}

// land settles the player on a surface and restores the jump charges.
func (g *Game) land() {
	g.velY = 0
	g.jumping = false
	g.jumpsLeft = g.cfg.Physics.MaxJumps
}

// resolveObstacles applies damage for the first obstacle overlapping the
// player and removes it; at most one obstacle takes effect per tick. An
// active shield suppresses the hit entirely and leaves the obstacle in place.
func (g *Game) resolveObstacles() {
	if g.shieldTicks > 0 {
		return
	}
	pr := g.playerRect()
	for i, obs := range g.world.Obstacles {
		if pr.Intersects(obs) {
			g.health -= g.cfg.PowerUps.ObstacleHit
			g.world.Obstacles = append(g.world.Obstacles[:i], g.world.Obstacles[i+1:]...)
			if g.health <= 0 {
				g.health = 0
				g.state = StateGameOver
			}
			return
		}
	}
}
