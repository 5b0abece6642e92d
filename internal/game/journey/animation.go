package journey

// AnimState classifies the player sprite purely from kinematics: airborne
// wins over moving, moving wins over standing still.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimRunning
	AnimJumping
)

// String returns the display name of the animation state.
func (a AnimState) String() string {
	switch a {
	case AnimRunning:
		return "Running"
	case AnimJumping:
		return "Jumping"
	default:
		return "Idle"
	}
}

// Running alternates between two sprite frames, each held for a fixed number
// of ticks.
const (
	runFrameCount   = 2
	runFrameCadence = 6
)

// selectAnimation derives the animation state for the tick that just ran and
// steps the running frame counter.
func (g *Game) selectAnimation() {
	switch {
	case g.jumping || g.velY != 0:
		g.anim = AnimJumping
	case g.playerX != g.lastX:
		g.anim = AnimRunning
		g.frameTick++
		if g.frameTick%runFrameCadence == 0 {
			g.runFrame = (g.runFrame + 1) % runFrameCount
		}
	default:
		g.anim = AnimIdle
	}
}
