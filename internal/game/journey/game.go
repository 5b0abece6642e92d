package journey

import (
	"math/rand"

	"github.com/journey-arcade/journey/internal/config"
	"github.com/journey-arcade/journey/internal/core"
	"github.com/journey-arcade/journey/internal/registry"
)

// Session states. Start waits for the first jump, GameOver and Win are
// terminal until a restart.
const (
	StateStart    = "start"
	StatePlaying  = "playing"
	StateGameOver = "gameover"
	StateWin      = "win"
)

// Package-level variables for config and power-up policy, set from CLI flags
// before the game is created (like the other game packages).
var (
	configPath          string
	powerUpVariant      string
	powerUpDistribution string
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetPowerUpPolicy overrides the generation variant ("baseline"/"enriched")
// and kind distribution ("uniform"/"weighted"). Empty strings keep the
// config file values.
func SetPowerUpPolicy(variant, distribution string) {
	powerUpVariant = variant
	powerUpDistribution = distribution
}

// Game implements the Journey To Joy game logic. All coordinates are in
// world units; Render scales them down to the terminal grid.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.JourneyConfig
	rng     *rand.Rand

	state  string
	paused bool
	tick   int

	// Player kinematics
	playerX   int
	playerY   int
	velY      int
	jumping   bool
	jumpsLeft int
	lastX     int // playerX before the current tick, for animation

	health      int
	shieldTicks int
	score       int

	level   int
	world   World
	cameraX int

	anim      AnimState
	runFrame  int
	frameTick int
}

// New creates a new Journey To Joy game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "journey"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Journey To Joy"
}

// Reset initializes or restarts the session: level 1, full health, fresh
// RNG from the runtime seed. The session waits in the start state until the
// first jump.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt

	cfg, err := config.LoadJourney(configPath)
	if err != nil {
		cfg = config.DefaultJourneyConfig()
	}
	config.ApplyPowerUpPolicy(&cfg, powerUpVariant, powerUpDistribution)
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.state = StateStart
	g.paused = false
	g.tick = 0

	g.health = maxHealth
	g.shieldTicks = 0
	g.score = 0

	g.level = 1
	g.world = GenerateWorld(g.level, g.rng, g.cfg)
	g.respawn()

	g.anim = AnimIdle
	g.runFrame = 0
	g.frameTick = 0
}

// respawn places the player at the level spawn point and rewinds the camera.
func (g *Game) respawn() {
	g.playerX = g.cfg.Player.SpawnX
	g.playerY = g.cfg.World.ViewportH - g.cfg.Player.Height - 50
	g.lastX = g.playerX
	g.velY = 0
	g.jumping = false
	g.jumpsLeft = g.cfg.Physics.MaxJumps
	g.cameraX = 0
}

// Step advances the session by one tick. Terminal states ignore everything
// except a restart, so extra ticks after the end are no-ops.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.state {
	case StateStart:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	case StateGameOver, StateWin:
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.lastX = g.playerX

	// A queued jump is consumed at the start of the tick. With no charges
	// left it is silently dropped.
	if in.Has(core.ActionJump) && g.jumpsLeft > 0 {
		g.velY = -g.cfg.Physics.JumpStrength
		g.jumping = true
		g.jumpsLeft--
	}

	g.advance()
	g.applyGravity()
	g.resolveObstacles()
	if g.state != StatePlaying {
		g.selectAnimation()
		return core.StepResult{State: g.State()}
	}
	g.resolvePowerUps()
	g.decayShield()
	g.checkGoal()
	if g.state == StatePlaying {
		g.checkLevelComplete()
		g.score++
	}
	g.selectAnimation()

	return core.StepResult{State: g.State()}
}

// checkGoal wins the session when the player has run past the Queen.
func (g *Game) checkGoal() {
	if g.world.Goal != nil && g.playerX > g.world.Goal.Right() {
		g.state = StateWin
	}
}

// checkLevelComplete advances to the next level when the player crosses the
// world length. The final level has no next level; reaching its end without
// passing the Queen simply holds, and the goal check decides the outcome.
func (g *Game) checkLevelComplete() {
	if g.playerX <= g.world.Length {
		return
	}
	if g.level < len(g.cfg.World.LevelLengths) {
		g.level++
		g.world = GenerateWorld(g.level, g.rng, g.cfg)
		g.respawn()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Won:      g.state == StateWin,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("journey", func() registry.Game {
		return New()
	})
}
