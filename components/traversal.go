package components

import (
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/physics"
	"github.com/yohamta/donburi"
)

// ClimbingData drives climbing up the wall in front of the body.
type ClimbingData struct {
	Climbing    bool
	ExitingWall bool

	Timer     float64
	ExitTimer float64
	JumpsLeft int

	WallFront bool
	WallHit   physics.Hit
	LookAngle float64

	LastWall       *physics.Collider
	LastWallNormal gamemath.Vec3
}

// WallRunData drives running along a wall to the left or right.
type WallRunData struct {
	ExitingWall bool
	Timer       float64
	ExitTimer   float64

	WallLeft  bool
	WallRight bool
	LeftHit   physics.Hit
	RightHit  physics.Hit
}

// WallNormal is the normal of the wall being run on, right side first.
func (w *WallRunData) WallNormal() gamemath.Vec3 {
	if w.WallRight {
		return w.RightHit.Normal
	}
	return w.LeftHit.Normal
}

type SlideData struct {
	Timer float64
}

var (
	Climbing = donburi.NewComponentType[ClimbingData]()
	WallRun  = donburi.NewComponentType[WallRunData]()
	Slide    = donburi.NewComponentType[SlideData]()
)
