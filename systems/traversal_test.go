package systems

import (
	"testing"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/physics"
)

func TestSlideTimer(t *testing.T) {
	tests := []struct {
		name      string
		onSlope   bool
		velY      float64
		wantTimer bool
	}{
		{"flat ground runs the timer", false, 0, true},
		{"uphill runs the timer", true, 1, true},
		{"downhill keeps the timer", true, -2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := components.SlideData{Timer: cfg.Slide.MaxSlideTime}
			m := components.MovementData{Sliding: true, OnSlope: tt.onSlope, SlopeNormal: gamemath.V3(0.3, 1, 0).Normalized()}
			rb := components.RigidBodyData{Mass: 1, Velocity: gamemath.V3(5, tt.velY, 0)}

			StepSlide(&s, &m, &rb, gamemath.V3(1, 0, 0), 0.1)
			ran := s.Timer < cfg.Slide.MaxSlideTime
			if ran != tt.wantTimer {
				t.Errorf("timer ran = %v, want %v", ran, tt.wantTimer)
			}
			if rb.Force.IsZero() {
				t.Error("no slide force applied")
			}
		})
	}
}

func TestSlideEndsWhenTimerRunsOut(t *testing.T) {
	s := components.SlideData{Timer: cfg.Slide.MaxSlideTime}
	m := components.MovementData{Sliding: true}
	rb := components.RigidBodyData{Mass: 1}

	steps := 0
	for m.Sliding && steps < 1000 {
		StepSlide(&s, &m, &rb, gamemath.V3(0, 0, 1), tick)
		steps++
	}
	want := int(cfg.Slide.MaxSlideTime/tick + 0.5)
	if steps < want-1 || steps > want+1 {
		t.Errorf("slide lasted %d ticks, want about %d", steps, want)
	}
}

func wallRunInput(forward float64) *components.InputData {
	in := &components.InputData{}
	in.Move.Y = forward
	return in
}

func TestWallRunLifecycle(t *testing.T) {
	wr := components.WallRunData{WallRight: true, RightHit: physics.Hit{Normal: gamemath.V3(-1, 0, 0)}}
	m := components.MovementData{}
	rb := components.RigidBodyData{Mass: 1, Velocity: gamemath.V3(0, -3, 5)}
	in := wallRunInput(1)

	StepWallRun(&wr, &m, &rb, in, true, tick)
	if !m.WallRunning {
		t.Fatal("wall run did not start")
	}
	if rb.Velocity.Y != 0 {
		t.Errorf("vertical speed = %v on entry, want 0", rb.Velocity.Y)
	}

	for i := 0; i < 1000 && !wr.ExitingWall; i++ {
		StepWallRun(&wr, &m, &rb, in, true, tick)
	}
	if !wr.ExitingWall {
		t.Fatal("wall run never timed out")
	}

	StepWallRun(&wr, &m, &rb, in, true, tick)
	if m.WallRunning {
		t.Error("still wall running while exiting the wall")
	}
	for i := 0; i < 1000 && wr.ExitingWall; i++ {
		StepWallRun(&wr, &m, &rb, in, true, tick)
	}
	if wr.ExitingWall {
		t.Error("exit timer never cleared")
	}
}

func TestWallRunNeedsHeightAndForwardInput(t *testing.T) {
	tests := []struct {
		name    string
		forward float64
		above   bool
	}{
		{"too close to the ground", 1, false},
		{"no forward input", 0, true},
		{"moving backwards", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wr := components.WallRunData{WallLeft: true, LeftHit: physics.Hit{Normal: gamemath.V3(1, 0, 0)}}
			m := components.MovementData{}
			rb := components.RigidBodyData{Mass: 1}
			StepWallRun(&wr, &m, &rb, wallRunInput(tt.forward), tt.above, tick)
			if m.WallRunning {
				t.Error("wall run started")
			}
		})
	}
}

func TestWallJumpPushesOffTheWall(t *testing.T) {
	wr := components.WallRunData{WallLeft: true, LeftHit: physics.Hit{Normal: gamemath.V3(1, 0, 0)}}
	m := components.MovementData{}
	rb := components.RigidBodyData{Mass: 1}
	in := wallRunInput(1)

	StepWallRun(&wr, &m, &rb, in, true, tick)
	in.Current[cfg.ActionJump] = true
	StepWallRun(&wr, &m, &rb, in, true, tick)

	if !wr.ExitingWall {
		t.Error("wall jump did not start the exit")
	}
	if rb.Velocity.Y <= 0 || rb.Velocity.X <= 0 {
		t.Errorf("velocity after wall jump = %v, want up and away from the wall", rb.Velocity)
	}
}

func climbInput() *components.InputData {
	in := &components.InputData{}
	in.Move.Y = 1
	return in
}

func TestClimbing(t *testing.T) {
	t.Run("climbs while facing the wall", func(t *testing.T) {
		c := components.ClimbingData{WallFront: true, Timer: cfg.Climb.MaxClimbTime, JumpsLeft: 1}
		m := components.MovementData{}
		rb := components.RigidBodyData{Mass: 1}
		StepClimbing(&c, &m, &rb, climbInput(), tick)
		if !c.Climbing || !m.Climbing {
			t.Fatal("climb did not start")
		}
		if rb.Velocity.Y != cfg.Climb.ClimbSpeed {
			t.Errorf("climb speed = %v, want %v", rb.Velocity.Y, cfg.Climb.ClimbSpeed)
		}
	})

	t.Run("looking away prevents the climb", func(t *testing.T) {
		c := components.ClimbingData{WallFront: true, Timer: cfg.Climb.MaxClimbTime, LookAngle: cfg.Climb.MaxWallLookAngle + 1}
		m := components.MovementData{}
		rb := components.RigidBodyData{Mass: 1}
		StepClimbing(&c, &m, &rb, climbInput(), tick)
		if c.Climbing {
			t.Error("climbed at a steep look angle")
		}
	})

	t.Run("timer ends the climb", func(t *testing.T) {
		c := components.ClimbingData{WallFront: true, Timer: cfg.Climb.MaxClimbTime}
		m := components.MovementData{}
		rb := components.RigidBodyData{Mass: 1}
		for i := 0; i < 1000 && (c.Timer > 0 || c.Climbing); i++ {
			StepClimbing(&c, &m, &rb, climbInput(), tick)
		}
		if c.Climbing || m.Climbing {
			t.Error("still climbing after the timer ran out")
		}
	})

	t.Run("one jump per climb", func(t *testing.T) {
		c := components.ClimbingData{WallFront: true, Timer: cfg.Climb.MaxClimbTime, JumpsLeft: 1, WallHit: physics.Hit{Normal: gamemath.V3(0, 0, -1)}}
		m := components.MovementData{}
		rb := components.RigidBodyData{Mass: 1}
		in := climbInput()
		in.Current[cfg.ActionJump] = true
		StepClimbing(&c, &m, &rb, in, tick)
		if c.JumpsLeft != 0 || !c.ExitingWall {
			t.Fatalf("jumps left %d exiting %v, want 0 and true", c.JumpsLeft, c.ExitingWall)
		}
		if rb.Velocity.Z >= 0 {
			t.Errorf("climb jump velocity %v does not push off the wall", rb.Velocity)
		}

		before := rb.Velocity
		in.Roll()
		in.Roll()
		in.Move.Y = 1
		in.Current[cfg.ActionJump] = true
		StepClimbing(&c, &m, &rb, in, tick)
		if rb.Velocity != before {
			t.Error("second climb jump was allowed")
		}
	})
}

func TestClimbResetOnNewWallOrGround(t *testing.T) {
	space := physics.NewSpace(gamemath.V3(-20, 0, -20), gamemath.V3(20, 0, 20), 4)
	wall := &physics.Collider{Shape: physics.Box(gamemath.V3(2, 3, 0.25)), Layer: physics.LayerWall, Center: gamemath.V3(0, 3, 0.8), Enabled: true}
	space.Add(wall)
	tr := &components.TransformData{Position: gamemath.V3(0, 2, 0), Scale: gamemath.V3(1, 1, 1)}

	tests := []struct {
		name      string
		lastWall  *physics.Collider
		grounded  bool
		wantReset bool
	}{
		{"same wall in the air", wall, false, false},
		{"new wall in the air", nil, false, true},
		{"same wall on the ground", wall, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := components.ClimbingData{LastWall: tt.lastWall, LastWallNormal: gamemath.V3(0, 0, -1)}
			m := components.MovementData{Grounded: tt.grounded}
			checkFrontWall(space, tr, &c, &m)
			if !c.WallFront {
				t.Fatal("wall in front was not found")
			}
			if reset := c.Timer == cfg.Climb.MaxClimbTime; reset != tt.wantReset {
				t.Errorf("timer reset = %v, want %v", reset, tt.wantReset)
			}
		})
	}
}
