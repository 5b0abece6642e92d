// Package journey implements the Journey To Joy auto-runner platformer.
// The player advances automatically through three levels of scattered
// platforms, obstacles and power-ups, and wins by reaching the Queen at the
// end of the final level.
package journey

import (
	"github.com/journey-arcade/journey/internal/core"
)

// PowerUpKind enumerates the collectible power-up types.
type PowerUpKind int

const (
	KindShield     PowerUpKind = iota // Temporary damage immunity
	KindHealth                        // Restores health, clamped at 100
	KindScoreBoost                    // Immediate score bonus

	kindCount // Sentinel for uniform draws
)

// String returns the display name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case KindShield:
		return "Shield"
	case KindHealth:
		return "Health"
	case KindScoreBoost:
		return "ScoreBoost"
	default:
		return "Unknown"
	}
}

// PowerUp is a collectible pickup placed by the world generator.
type PowerUp struct {
	Rect core.Rect
	Kind PowerUpKind
}

// World holds one level's generated entity collections. Platforms are
// immutable for the lifetime of the level; obstacles and power-ups shrink as
// they are consumed. A level transition replaces the whole World.
type World struct {
	Level     int
	Length    int // Horizontal extent; crossing it completes the level
	Platforms []core.Rect
	Obstacles []core.Rect
	PowerUps  []PowerUp
	Goal      *core.Rect // The Queen; present only in the final level
}
