package systems

import (
	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWallRunning lets an airborne body run along a wall at its side.
func UpdateWallRunning(ecs *ecs.ECS) {
	space := GetSpace(ecs.World)
	if space == nil {
		return
	}
	dt := DeltaTime(ecs.World)
	components.WallRun.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) || !e.HasComponent(components.Input) {
			return
		}
		wr := components.WallRun.Get(e)
		m := components.Movement.Get(e)
		rb := components.RigidBody.Get(e)
		tr := components.Transform.Get(e)
		input := components.Input.Get(e)

		checkSideWalls(space, tr, wr)
		above := aboveGround(space, tr.Position)
		StepWallRun(wr, m, rb, input, above, dt)
		if m.WallRunning {
			forward, _ := tr.FlatBasis()
			WallRunForces(wr, rb, input, forward)
		}
	})
}

func checkSideWalls(q physics.Query, tr *components.TransformData, wr *components.WallRunData) {
	dist := cfg.WallRun.WallCheckDistance
	_, right := tr.FlatBasis()
	wr.RightHit, wr.WallRight = q.Raycast(tr.Position, right, dist, physics.LayerWall)
	wr.LeftHit, wr.WallLeft = q.Raycast(tr.Position, right.Neg(), dist, physics.LayerWall)
}

// aboveGround reports whether there is no ground within the minimum wall
// run height under pos.
func aboveGround(q physics.Query, pos gamemath.Vec3) bool {
	_, hit := q.Raycast(pos, gamemath.Down, cfg.WallRun.MinJumpHeight, physics.LayerGround)
	return !hit
}

// StepWallRun advances the wall run state after the side probes.
func StepWallRun(wr *components.WallRunData, m *components.MovementData, rb *components.RigidBodyData, input *components.InputData, above bool, dt float64) {
	if m.Freeze {
		return
	}
	wc := cfg.WallRun
	switch {
	case (wr.WallLeft || wr.WallRight) && input.Move.Y > 0 && above && !wr.ExitingWall:
		if !m.WallRunning {
			m.WallRunning = true
			wr.Timer = wc.MaxWallRunTime
			rb.Velocity.Y = 0
		}
		if wr.Timer > 0 {
			wr.Timer -= dt
		}
		if wr.Timer <= 0 && m.WallRunning {
			wr.ExitingWall = true
			wr.ExitTimer = wc.ExitWallTime
		}
		if input.Action(cfg.ActionJump).JustPressed {
			wallJump(wr, rb)
		}
	case wr.ExitingWall:
		m.WallRunning = false
		if wr.ExitTimer > 0 {
			wr.ExitTimer -= dt
		}
		if wr.ExitTimer <= 0 {
			wr.ExitingWall = false
		}
	default:
		m.WallRunning = false
	}
}

// WallRunForces drives the body along the wall and keeps it pressed
// against it.
func WallRunForces(wr *components.WallRunData, rb *components.RigidBodyData, input *components.InputData, forward gamemath.Vec3) {
	wc := cfg.WallRun
	rb.UseGravity = wc.UseGravity

	normal := wr.WallNormal()
	wallForward := normal.Cross(gamemath.Up)
	if forward.Sub(wallForward).Len() > forward.Sub(wallForward.Neg()).Len() {
		wallForward = wallForward.Neg()
	}
	rb.AddForce(wallForward.Scale(wc.WallRunForce * rb.Mass))

	if input.Action(cfg.ActionSprint).Pressed {
		rb.Velocity.Y = wc.WallClimbSpeed
	}
	if input.Action(cfg.ActionCrouch).Pressed {
		rb.Velocity.Y = -wc.WallClimbSpeed
	}

	steeringAway := (wr.WallLeft && input.Move.X > 0) || (wr.WallRight && input.Move.X < 0)
	if !steeringAway {
		rb.AddForce(normal.Neg().Scale(wc.WallPushForce * rb.Mass))
	}

	if wc.UseGravity {
		rb.AddForce(gamemath.Up.Scale(wc.GravityCounterForce * rb.Mass))
	}
}

func wallJump(wr *components.WallRunData, rb *components.RigidBodyData) {
	wc := cfg.WallRun
	wr.ExitingWall = true
	wr.ExitTimer = wc.ExitWallTime

	force := gamemath.Up.Scale(wc.WallJumpUpForce).Add(wr.WallNormal().Scale(wc.WallJumpSideForce))
	rb.Velocity.Y = 0
	rb.AddImpulse(force.Scale(rb.Mass))
}
