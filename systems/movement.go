package systems

import (
	"math"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/messages"
	"github.com/automoto/vacuumarena/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGroundProbe refreshes the grounded and slope flags of every moving
// body from a short ray cast straight down.
func UpdateGroundProbe(ecs *ecs.ECS) {
	space := GetSpace(ecs.World)
	if space == nil {
		return
	}
	components.Movement.Each(ecs.World, func(e *donburi.Entry) {
		ProbeGround(space, components.Transform.Get(e).Position, components.Movement.Get(e))
	})
}

// ProbeGround casts from the body centre down to just below the feet.
func ProbeGround(q physics.Query, pos gamemath.Vec3, m *components.MovementData) {
	length := cfg.Player.Height*0.5 + cfg.Movement.GroundProbeExtra
	hit, ok := q.Raycast(pos, gamemath.Down, length, physics.LayerGround)
	m.Grounded = ok
	m.SlopeNormal = gamemath.Up
	m.OnSlope = false
	if ok {
		m.SlopeNormal = hit.Normal
		m.OnSlope = gamemath.IsWalkableSlope(hit.Normal, cfg.Movement.MaxSlopeAngle)
	}
}

// UpdateMovement runs the locomotion state machine for every body with
// Movement. The satellites (climbing, wall running, sliding) run before it
// and only set request flags and their own forces.
func UpdateMovement(ecs *ecs.ECS) {
	w := ecs.World
	dt := DeltaTime(w)
	components.Movement.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		m := components.Movement.Get(e)
		rb := components.RigidBody.Get(e)
		tr := components.Transform.Get(e)

		var input *components.InputData
		if e.HasComponent(components.Input) {
			input = components.Input.Get(e)
		}

		tickJumpCooldown(m, dt)
		if input != nil {
			handleJump(w, m, rb, input)
			handleCrouch(m, rb, tr, input)
		}

		SpeedControl(m, rb)
		ResolveState(m, rb, GetAction(input, cfg.ActionSprint).Pressed)
		UpdateMoveSpeed(m, dt)

		rb.Drag = 0
		if m.Grounded {
			rb.Drag = cfg.Movement.GroundDrag
		}

		if m.Restricted || m.Freeze {
			return
		}
		if e.HasComponent(components.Climbing) && components.Climbing.Get(e).ExitingWall {
			return
		}

		var dir gamemath.Vec3
		if input != nil {
			dir = MoveDirection(tr, input)
		}
		rb.AddForce(MoveForce(m, rb.Mass, rb.Velocity, dir))
		if !m.WallRunning {
			rb.UseGravity = !m.OnSlope
		}
	})
}

// MoveDirection is the unnormalised input direction on the yaw plane.
func MoveDirection(tr *components.TransformData, input *components.InputData) gamemath.Vec3 {
	forward, right := tr.FlatBasis()
	return forward.Scale(input.Move.Y).Add(right.Scale(input.Move.X))
}

func tickJumpCooldown(m *components.MovementData, dt float64) {
	if m.CanJump || m.JumpCooldown <= 0 {
		return
	}
	m.JumpCooldown -= dt
	if m.JumpCooldown <= 0 {
		m.JumpCooldown = 0
		m.CanJump = true
		m.ExitingSlope = false
	}
}

func handleJump(w donburi.World, m *components.MovementData, rb *components.RigidBodyData, input *components.InputData) {
	if !input.Action(cfg.ActionJump).JustPressed || !m.CanJump || !m.Grounded {
		return
	}
	m.CanJump = false
	m.JumpCooldown = cfg.Movement.JumpCooldown
	m.ExitingSlope = true

	messages.PlayerJumped.Publish(w, messages.PlayerJumpedEvent{})

	rb.Velocity.Y = 0
	rb.AddImpulse(gamemath.Up.Scale(cfg.Movement.JumpForce * rb.Mass))
}

// handleCrouch starts a crouch on press without move input; with move
// input the press belongs to the slide.
func handleCrouch(m *components.MovementData, rb *components.RigidBodyData, tr *components.TransformData, input *components.InputData) {
	crouch := input.Action(cfg.ActionCrouch)
	if crouch.JustPressed && !input.HasMoveInput() {
		tr.Scale.Y = cfg.Movement.CrouchYScale
		rb.AddImpulse(gamemath.Down.Scale(cfg.Movement.CrouchImpulse * rb.Mass))
		m.Crouching = true
	}
	if crouch.JustReleased && m.Crouching {
		tr.Scale.Y = m.StartYScale
		m.Crouching = false
	}
}

// SpeedControl caps the body's speed at MoveSpeed. On a slope the whole
// velocity is capped; everywhere else only the horizontal part is, so jumps
// and falls keep their vertical speed.
func SpeedControl(m *components.MovementData, rb *components.RigidBodyData) {
	full := m.OnSlope && !m.ExitingSlope
	rb.Velocity = gamemath.ClampPlanarSpeed(rb.Velocity, m.MoveSpeed, full)
}

// ResolveState picks exactly one movement state from the request flags,
// first match wins, and sets the desired speed for it.
func ResolveState(m *components.MovementData, rb *components.RigidBodyData, sprint bool) {
	mc := cfg.Movement
	switch {
	case m.Freeze:
		m.State = cfg.Freeze
		rb.Velocity = gamemath.Zero
		m.DesiredMoveSpeed = 0
	case m.Unlimited:
		m.State = cfg.Unlimited
		m.DesiredMoveSpeed = mc.UnlimitedSpeed
	case m.Vaulting:
		m.State = cfg.Vaulting
		m.DesiredMoveSpeed = mc.VaultSpeed
	case m.Climbing:
		m.State = cfg.Climbing
		m.DesiredMoveSpeed = mc.ClimbSpeed
	case m.WallRunning:
		m.State = cfg.WallRunning
		m.DesiredMoveSpeed = mc.WallRunSpeed
	case m.Sliding:
		m.State = cfg.Sliding
		if m.OnSlope && rb.Velocity.Y < mc.SlopeUpVelocityEp {
			m.DesiredMoveSpeed = mc.SlideSpeed
			m.KeepMomentum = true
		} else {
			m.DesiredMoveSpeed = mc.SprintSpeed
		}
	case m.Crouching:
		m.State = cfg.Crouching
		m.DesiredMoveSpeed = mc.CrouchSpeed
	case m.Grounded && sprint:
		m.State = cfg.Sprinting
		m.DesiredMoveSpeed = mc.SprintSpeed
	case m.Grounded:
		m.State = cfg.Walking
		m.DesiredMoveSpeed = mc.WalkSpeed
	default:
		m.State = cfg.Air
		if m.MoveSpeed < mc.AirMinSpeed {
			m.DesiredMoveSpeed = mc.AirMinSpeed
		}
	}
}

// UpdateMoveSpeed follows DesiredMoveSpeed. A change snaps MoveSpeed,
// unless momentum is kept, in which case the speed ramps there.
func UpdateMoveSpeed(m *components.MovementData, dt float64) {
	mc := cfg.Movement
	started := false
	if math.Abs(m.DesiredMoveSpeed-m.LastDesiredMoveSpeed) > mc.SpeedChangeEpsilon {
		if m.KeepMomentum {
			startSpeedRamp(m)
			stepSpeedRamp(m, dt)
			started = true
		} else {
			m.Ramp.Active = false
			m.MoveSpeed = m.DesiredMoveSpeed
		}
	}
	m.LastDesiredMoveSpeed = m.DesiredMoveSpeed

	if math.Abs(m.DesiredMoveSpeed-m.MoveSpeed) < mc.MomentumEpsilon {
		m.KeepMomentum = false
	}
	if !started {
		stepSpeedRamp(m, dt)
	}
}

func startSpeedRamp(m *components.MovementData) {
	m.Ramp = components.SpeedRamp{
		Active:     true,
		Start:      m.MoveSpeed,
		Target:     m.DesiredMoveSpeed,
		Difference: math.Abs(m.DesiredMoveSpeed - m.MoveSpeed),
	}
}

// stepSpeedRamp advances a running ramp by one tick. Slopes speed it up in
// proportion to their angle.
func stepSpeedRamp(m *components.MovementData, dt float64) {
	r := &m.Ramp
	if !r.Active {
		return
	}
	if r.Elapsed >= r.Difference {
		m.MoveSpeed = r.Target
		r.Active = false
		return
	}
	m.MoveSpeed = gamemath.Lerp(r.Start, r.Target, r.Elapsed/r.Difference)

	mc := cfg.Movement
	if m.OnSlope {
		angleIncrease := 1 + m.SlopeAngle()/90
		r.Elapsed += dt * mc.SpeedIncreaseMultiplier * mc.SlopeIncreaseMultiplier * angleIncrease
	} else {
		r.Elapsed += dt * mc.SpeedIncreaseMultiplier
	}
}

// MoveForce is the drive force for one step along dir.
func MoveForce(m *components.MovementData, mass float64, vel, dir gamemath.Vec3) gamemath.Vec3 {
	mc := cfg.Movement
	switch {
	case m.OnSlope && !m.ExitingSlope:
		f := gamemath.SlopeMoveDirection(dir, m.SlopeNormal).Scale(m.MoveSpeed * mc.SlopeForce * mass)
		if vel.Y > 0 {
			f = f.Add(gamemath.Down.Scale(mc.SlopeDownForce * mass))
		}
		return f
	case m.Grounded:
		return dir.Normalized().Scale(m.MoveSpeed * mc.GroundForce * mass)
	default:
		return dir.Normalized().Scale(m.MoveSpeed * mc.GroundForce * mass * mc.AirMultiplier)
	}
}
