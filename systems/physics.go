package systems

import (
	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/physics"
	"github.com/automoto/vacuumarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// groundedNormalY is the minimum contact normal Y that counts as standing.
const groundedNormalY = 0.5

// UpdatePhysics advances every rigid body by one step and resolves it
// against the static arena. Kinematic bodies are only synced to their
// collider.
func UpdatePhysics(ecs *ecs.ECS) {
	w := ecs.World
	dt := DeltaTime(w)
	space := GetSpace(w)
	if space == nil || dt <= 0 {
		return
	}

	var fallen []*donburi.Entry
	components.RigidBody.Each(w, func(e *donburi.Entry) {
		// Dying player stays where it fell
		if e.HasComponent(components.Player) && e.HasComponent(components.Death) {
			return
		}
		rb := components.RigidBody.Get(e)
		tr := components.Transform.Get(e)
		var col *components.ColliderData
		if e.HasComponent(components.Collider) {
			col = components.Collider.Get(e)
		}

		if rb.Kinematic {
			if col != nil && col.Collider != nil {
				space.Reshape(col.Collider, col.Base.Scaled(tr.Scale))
				space.Move(col.Collider, tr.Position)
			}
			rb.Force = gamemath.Zero
			return
		}

		Integrate(rb, dt)
		rb.PrevPosition = tr.Position
		tr.Position = tr.Position.Add(rb.Velocity.Scale(dt))
		rb.Grounded = false
		rb.Contacts = rb.Contacts[:0]

		if col != nil && col.Collider != nil && col.Collider.Enabled {
			c := col.Collider
			space.Reshape(c, col.Base.Scaled(tr.Scale))
			space.Move(c, tr.Position)
			tr.Position = resolveBody(space, c, rb)
		}
		rb.Force = gamemath.Zero

		if tr.Position.Y < cfg.Physics.KillPlaneY {
			fallen = append(fallen, e)
		}
	})

	for _, e := range fallen {
		handleFallOut(w, e)
	}
}

// Integrate applies the accumulated force, gravity and drag to the
// velocity (semi-implicit Euler) and caps the fall speed.
func Integrate(rb *components.RigidBodyData, dt float64) {
	var accel gamemath.Vec3
	if rb.Mass > 0 {
		accel = rb.Force.Scale(1 / rb.Mass)
	}
	if rb.UseGravity {
		accel.Y += cfg.Physics.Gravity
	}
	rb.Velocity = rb.Velocity.Add(accel.Scale(dt))
	rb.Velocity = gamemath.ApplyDrag(rb.Velocity, rb.Drag, dt)
	if rb.Velocity.Y < -cfg.Physics.MaxFallSpeed {
		rb.Velocity.Y = -cfg.Physics.MaxFallSpeed
	}
}

// resolveBody pushes c out of the static geometry and removes the velocity
// going into each contact. Loose props also collide with the player.
func resolveBody(space *physics.Space, c *physics.Collider, rb *components.RigidBodyData) gamemath.Vec3 {
	mask := physics.LayerStatic
	if c.Layer == physics.LayerVacuumable {
		mask |= physics.LayerPlayer
	}
	pos, contacts := space.Resolve(c, rb.PrevPosition, mask)
	for _, ct := range contacts {
		if into := rb.Velocity.Dot(ct.Normal); into < 0 {
			rb.Velocity = rb.Velocity.Sub(ct.Normal.Scale(into))
		}
		if ct.Normal.Y > groundedNormalY {
			rb.Grounded = true
		}
	}
	rb.Contacts = append(rb.Contacts, contacts...)
	return pos
}

// handleFallOut deals with a body that left the arena: the player goes
// back to its spawn, enemies die and props are discarded.
func handleFallOut(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	switch {
	case e.HasComponent(components.Player):
		player := components.Player.Get(e)
		components.RigidBody.Get(e).Stop()
		moveEntry(w, e, player.Spawn)
	case e.HasComponent(tags.Enemy):
		if e.HasComponent(components.Death) {
			removeEnemy(w, e)
			return
		}
		ApplyDamage(w, e.Entity(), components.Health.Get(e).Current)
	case e.HasComponent(components.VacuumedObject):
		// Pulled and held props belong to a gun
		if st := components.VacuumedObject.Get(e).State; st == cfg.VacuumedFree || st == cfg.VacuumedLaunched {
			removeEntry(w, e)
		}
	}
}
