package components

import (
	"github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SpeedRamp eases MoveSpeed toward Target. Elapsed advances in speed units
// per second, so a bigger change takes proportionally longer.
type SpeedRamp struct {
	Active     bool
	Start      float64
	Target     float64
	Difference float64
	Elapsed    float64
}

// MovementData is the locomotion state of a body. The boolean flags are
// requests written by climbing, wall running, sliding and scripted
// sequences; State is resolved from them once per tick.
type MovementData struct {
	State config.MovementState

	MoveSpeed            float64
	DesiredMoveSpeed     float64
	LastDesiredMoveSpeed float64
	KeepMomentum         bool
	Ramp                 SpeedRamp

	Grounded     bool
	OnSlope      bool
	SlopeNormal  gamemath.Vec3
	ExitingSlope bool

	CanJump      bool
	JumpCooldown float64

	StartYScale float64

	Sliding     bool
	Crouching   bool
	WallRunning bool
	Climbing    bool
	Vaulting    bool
	Freeze      bool
	Unlimited   bool
	Restricted  bool
}

// SlopeAngle is the angle of the surface under the body, 0 off slopes.
func (m *MovementData) SlopeAngle() float64 {
	if !m.OnSlope {
		return 0
	}
	return gamemath.SlopeAngle(m.SlopeNormal)
}

var Movement = donburi.NewComponentType[MovementData]()
