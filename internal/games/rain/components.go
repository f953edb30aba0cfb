package rain

import (
	"time"

	"github.com/vovakirdan/rainshield/internal/core"
	"github.com/vovakirdan/rainshield/internal/ecs"
)

// Paint order of scene layers. Higher is drawn above lower.
const (
	DepthBackground = -10.0
	DepthGround     = -9.0
	DepthRain       = -1.0
	DepthShelter    = 0.0
	DepthPlayer     = 1.0
	DepthNpcBody    = 1.0
	DepthNpcEye     = 2.0
)

// Position places an entity in the logical world.
// For a child entity Pos is an offset from its parent.
type Position struct {
	Pos        core.WorldVec2
	Scale      core.WorldUnit // on-screen logical width
	ImageWidth uint32         // native sprite width in pixels
	Rotation   float64        // radians
	Depth      float64
}

// Velocity is the per-second displacement of an entity.
type Velocity struct {
	Delta core.WorldVec2
}

// Gravity marks entities pulled down by constant acceleration.
type Gravity struct{}

// Drop marks a rain particle.
type Drop struct{}

// Player marks the umbrella.
type Player struct{}

// Shelter is the static obstacle.
type Shelter struct {
	Bounds core.WorldRect
}

// Npc is an autonomous character. Body and Eye are its drawable children.
type Npc struct {
	State     NpcState
	Wetness   Wetness
	SoakedFor time.Duration
	Bounds    core.WorldRect
	Body      ecs.Entity
	Eye       ecs.Entity
}

// Sprite is the drawable look of an entity, resolved from a SpriteSource at spawn.
type Sprite struct {
	Kind   SpriteKind
	Shape  Shape
	Color  core.Color
	Width  uint32 // native pixels
	Height uint32 // native pixels
}

// Transform is the absolute screen placement written by render sync.
// X and Y are window pixels of the entity center (top-left origin, y down).
// ScaleX and ScaleY convert native sprite pixels to window pixels.
type Transform struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
	Depth          float64
}
