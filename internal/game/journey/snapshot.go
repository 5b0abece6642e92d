package journey

import "github.com/journey-arcade/journey/internal/core"

// Snapshot is a read-only view of the full session state, for HUDs, tests
// and debugging. Entity slices are copies; mutating them does not touch the
// live session.
type Snapshot struct {
	Tick  int
	State string
	Level int
	Score int

	Health       int
	ShieldActive bool
	ShieldTicks  int
	JumpsLeft    int

	Player  core.Rect
	VelY    int
	CameraX int

	WorldLength int
	Platforms   []core.Rect
	Obstacles   []core.Rect
	PowerUps    []PowerUp
	Goal        *core.Rect

	Anim     AnimState
	RunFrame int
}

// Snapshot captures the current session state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:  g.tick,
		State: g.state,
		Level: g.level,
		Score: g.score,

		Health:       g.health,
		ShieldActive: g.shieldTicks > 0,
		ShieldTicks:  g.shieldTicks,
		JumpsLeft:    g.jumpsLeft,

		Player:  g.playerRect(),
		VelY:    g.velY,
		CameraX: g.cameraX,

		WorldLength: g.world.Length,
		Platforms:   append([]core.Rect(nil), g.world.Platforms...),
		Obstacles:   append([]core.Rect(nil), g.world.Obstacles...),
		PowerUps:    append([]PowerUp(nil), g.world.PowerUps...),

		Anim:     g.anim,
		RunFrame: g.runFrame,
	}
	if g.world.Goal != nil {
		goal := *g.world.Goal
		s.Goal = &goal
	}
	return s
}
