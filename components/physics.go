package components

import (
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/physics"
	"github.com/yohamta/donburi"
)

// TransformData places an entity in the arena. Position is the body centre;
// Yaw and Pitch are in degrees and only matter for the player camera.
type TransformData struct {
	Position gamemath.Vec3
	Scale    gamemath.Vec3
	Yaw      float64
	Pitch    float64
}

// Basis returns the camera forward, right and up vectors.
func (t *TransformData) Basis() (forward, right, up gamemath.Vec3) {
	return gamemath.Basis(t.Yaw, t.Pitch)
}

// FlatBasis returns the yaw-only orientation used for movement input.
func (t *TransformData) FlatBasis() (forward, right gamemath.Vec3) {
	return gamemath.FlatBasis(t.Yaw)
}

// RigidBodyData is a dynamic body advanced by the physics step. Forces are
// accumulated for one step and cleared afterwards.
type RigidBodyData struct {
	Mass            float64
	Velocity        gamemath.Vec3
	AngularVelocity gamemath.Vec3
	Force           gamemath.Vec3
	Drag            float64
	UseGravity      bool
	Kinematic       bool

	// Written by the integrator
	Grounded     bool
	PrevPosition gamemath.Vec3
	Contacts     []physics.Contact
}

// AddForce accumulates a continuous force for the current step.
func (rb *RigidBodyData) AddForce(f gamemath.Vec3) {
	rb.Force = rb.Force.Add(f)
}

// AddImpulse changes the velocity by impulse/mass. Kinematic bodies ignore it.
func (rb *RigidBodyData) AddImpulse(j gamemath.Vec3) {
	if rb.Kinematic || rb.Mass <= 0 {
		return
	}
	rb.Velocity = rb.Velocity.Add(j.Scale(1 / rb.Mass))
}

// Stop zeroes both velocities.
func (rb *RigidBodyData) Stop() {
	rb.Velocity = gamemath.Zero
	rb.AngularVelocity = gamemath.Zero
}

// SetKinematic toggles kinematic mode. Becoming kinematic drops any motion.
func (rb *RigidBodyData) SetKinematic(kinematic bool) {
	rb.Kinematic = kinematic
	if kinematic {
		rb.Stop()
		rb.Force = gamemath.Zero
	}
}

// ColliderData ties an entity to its collider in the arena space. Base is
// the unscaled shape; the physics step rescales it from the transform.
type ColliderData struct {
	Collider *physics.Collider
	Base     physics.Shape
}

var (
	Transform = donburi.NewComponentType[TransformData]()
	RigidBody = donburi.NewComponentType[RigidBodyData]()
	Collider  = donburi.NewComponentType[ColliderData]()
	Space     = donburi.NewComponentType[physics.Space]()
)
