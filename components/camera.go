package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the top-down debug view. Position is the arena XZ point at
// the centre of the screen, in metres.
type CameraData struct {
	Position math.Vec2
	// Shake offset applied on top of Position when drawing
	Offset math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
