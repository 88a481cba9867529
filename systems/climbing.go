package systems

import (
	"math"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClimbing lets a body run up the wall in front of it for a short
// time, with one jump off the wall per climb.
func UpdateClimbing(ecs *ecs.ECS) {
	space := GetSpace(ecs.World)
	if space == nil {
		return
	}
	dt := DeltaTime(ecs.World)
	components.Climbing.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) || !e.HasComponent(components.Input) {
			return
		}
		c := components.Climbing.Get(e)
		m := components.Movement.Get(e)
		rb := components.RigidBody.Get(e)
		tr := components.Transform.Get(e)
		input := components.Input.Get(e)

		checkFrontWall(space, tr, c, m)
		StepClimbing(c, m, rb, input, dt)
	})
}

func checkFrontWall(q physics.Query, tr *components.TransformData, c *components.ClimbingData, m *components.MovementData) {
	cc := cfg.Climb
	forward, _ := tr.FlatBasis()
	c.WallHit, c.WallFront = q.SphereCast(tr.Position, cc.SphereCastRadius, forward, cc.DetectionLength, physics.LayerWall)
	c.LookAngle = gamemath.AngleDeg(forward, c.WallHit.Normal.Neg())

	newWall := c.WallHit.Collider != c.LastWall ||
		math.Abs(gamemath.AngleDeg(c.LastWallNormal, c.WallHit.Normal)) > cc.MinWallNormalDiff
	if (c.WallFront && newWall) || m.Grounded {
		c.Timer = cc.MaxClimbTime
		c.JumpsLeft = cc.ClimbJumps
	}
}

// StepClimbing advances the climb state after the wall probe.
func StepClimbing(c *components.ClimbingData, m *components.MovementData, rb *components.RigidBodyData, input *components.InputData, dt float64) {
	cc := cfg.Climb
	switch {
	case c.WallFront && input.Move.Y > 0 && c.LookAngle < cc.MaxWallLookAngle && !c.ExitingWall:
		if !c.Climbing && c.Timer > 0 {
			startClimbing(c, m)
		}
		if c.Timer > 0 {
			c.Timer -= dt
		}
		if c.Timer <= 0 {
			stopClimbing(c, m)
		}
	case c.ExitingWall:
		stopClimbing(c, m)
		if c.ExitTimer > 0 {
			c.ExitTimer -= dt
		}
		if c.ExitTimer <= 0 {
			c.ExitingWall = false
		}
	default:
		stopClimbing(c, m)
	}

	if c.WallFront && input.Action(cfg.ActionJump).JustPressed && c.JumpsLeft > 0 && !m.Grounded {
		climbJump(c, rb)
	}

	if c.Climbing && !c.ExitingWall {
		rb.Velocity.Y = cc.ClimbSpeed
	}
}

func startClimbing(c *components.ClimbingData, m *components.MovementData) {
	c.Climbing = true
	m.Climbing = true
	c.LastWall = c.WallHit.Collider
	c.LastWallNormal = c.WallHit.Normal
}

func stopClimbing(c *components.ClimbingData, m *components.MovementData) {
	c.Climbing = false
	m.Climbing = false
}

func climbJump(c *components.ClimbingData, rb *components.RigidBodyData) {
	cc := cfg.Climb
	c.ExitingWall = true
	c.ExitTimer = cc.ExitWallTime

	force := gamemath.Up.Scale(cc.JumpUpForce).Add(c.WallHit.Normal.Scale(cc.JumpBackForce))
	rb.Velocity.Y = 0
	rb.AddImpulse(force.Scale(rb.Mass))
	c.JumpsLeft--
}
