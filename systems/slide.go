package systems

import (
	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSliding starts, drives and ends slides.
func UpdateSliding(ecs *ecs.ECS) {
	w := ecs.World
	dt := DeltaTime(w)
	components.Slide.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) || !e.HasComponent(components.Input) {
			return
		}
		s := components.Slide.Get(e)
		m := components.Movement.Get(e)
		rb := components.RigidBody.Get(e)
		tr := components.Transform.Get(e)
		input := components.Input.Get(e)

		crouch := input.Action(cfg.ActionCrouch)
		if crouch.JustPressed && input.HasMoveInput() {
			startSlide(s, m, rb, tr)
			messages.SlidePerformed.Publish(w, messages.SlidePerformedEvent{})
		}
		if crouch.JustReleased && m.Sliding {
			stopSlide(m, tr)
		}

		if m.Sliding {
			StepSlide(s, m, rb, MoveDirection(tr, input), dt)
			if !m.Sliding {
				tr.Scale.Y = m.StartYScale
			}
		}
	})
}

func startSlide(s *components.SlideData, m *components.MovementData, rb *components.RigidBodyData, tr *components.TransformData) {
	sc := cfg.Slide
	m.Sliding = true
	tr.Scale.Y = sc.SlideYScale
	rb.AddImpulse(gamemath.Down.Scale(sc.SlideImpulse * rb.Mass))
	s.Timer = sc.MaxSlideTime
}

func stopSlide(m *components.MovementData, tr *components.TransformData) {
	m.Sliding = false
	tr.Scale.Y = m.StartYScale
}

// StepSlide applies one step of slide force. Sliding down a slope keeps
// the timer, anything else runs it down; the slide ends at zero.
func StepSlide(s *components.SlideData, m *components.MovementData, rb *components.RigidBodyData, dir gamemath.Vec3, dt float64) {
	sc := cfg.Slide
	if !m.OnSlope || rb.Velocity.Y > sc.DownhillSpeed {
		rb.AddForce(dir.Normalized().Scale(sc.SlideForce * rb.Mass))
		s.Timer -= dt
	} else {
		rb.AddForce(gamemath.SlopeMoveDirection(dir, m.SlopeNormal).Scale(sc.SlideForce * rb.Mass))
	}
	if s.Timer <= 0 {
		m.Sliding = false
	}
}
