// Package leveldata parses arena TMX files into metre-space geometry and
// spawn data. It has no dependencies on ebitengine or donburi.
package leveldata

import (
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/physics"
)

// Arena is everything the simulation needs from a level file. Tiled's
// X axis maps to world X and its Y axis to world Z; heights come from
// object properties.
type Arena struct {
	Name           string
	PixelsPerMeter float64
	// Horizontal extent in metres, starting at the origin
	Width float64
	Depth float64

	Ground []Block
	Walls  []Block
	Ramps  []Ramp

	PlayerSpawn   Spawn
	GroundSpawns  []gamemath.Vec3
	FlyingSpawns  []gamemath.Vec3
	UpgradeSpawns []gamemath.Vec3

	Props     []Prop
	PropZones []PropZone
}

// Block is a solid axis aligned box.
type Block struct {
	Center gamemath.Vec3
	Half   gamemath.Vec3
}

type Ramp struct {
	Block
	Rise physics.RampRise
}

type Spawn struct {
	Position gamemath.Vec3
	Yaw      float64
}

// Prop is a single vacuumable body placed by hand.
type Prop struct {
	Position gamemath.Vec3
	Size     float64
	Mass     float64
}

// PropZone scatters Count props inside a horizontal circle.
type PropZone struct {
	Center     gamemath.Vec3
	Radius     float64
	Count      int
	MinSpacing float64
	Size       float64
	Mass       float64
}

// Bounds returns the corners of the arena footprint with some headroom.
func (a *Arena) Bounds() (min, max gamemath.Vec3) {
	return gamemath.V3(-2, 0, -2), gamemath.V3(a.Width+2, 0, a.Depth+2)
}
