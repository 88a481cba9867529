package systems

import (
	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartVacuum hands obj to owner's gun: it stops colliding with the owner,
// floats, and gets pulled toward the hold point from the next step on.
func StartVacuum(w donburi.World, obj, owner *donburi.Entry) {
	vo := components.VacuumedObject.Get(obj)
	tr := components.Transform.Get(obj)
	rb := components.RigidBody.Get(obj)

	vo.State = cfg.VacuumedPulling
	vo.Owner = owner.Entity()
	vo.IsVacuumed = true
	vo.HasReachedTarget = false
	vo.CanDealDamage = false
	vo.AttractionDistance = components.VacuumGun.Get(owner).AttractionDistance
	vo.StartDistance = tr.Position.Dist(HoldPoint(owner))
	vo.PullTime = 0
	vo.ReenableTimer = 0

	if obj.HasComponent(components.Tween) {
		components.Tween.Get(obj).Stop()
	}

	rb.SetKinematic(false)
	rb.UseGravity = false
	rb.Drag = cfg.VacuumedObject.PullDrag
	setOwnerCollision(w, obj, owner, false)
}

// CancelVacuum drops a pulled object where it is and restores its physics.
func CancelVacuum(w donburi.World, obj *donburi.Entry) {
	vo := components.VacuumedObject.Get(obj)
	if !vo.IsVacuumed {
		return
	}
	owner, _ := entryOf(w, vo.Owner)

	vo.State = cfg.VacuumedFree
	vo.IsVacuumed = false
	vo.HasReachedTarget = false
	vo.CanDealDamage = false
	vo.Owner = donburi.Null

	rb := components.RigidBody.Get(obj)
	rb.SetKinematic(false)
	rb.UseGravity = true
	rb.Drag = vo.BaseDrag
	if c := colliderOf(obj); c != nil {
		c.Enabled = true
	}
	if owner != nil {
		setOwnerCollision(w, obj, owner, true)
	}
	scaleBack(obj)
}

// SuckIntoPoint parks obj at point, shrunk, frozen and out of every query.
func SuckIntoPoint(w donburi.World, obj *donburi.Entry, point gamemath.Vec3) {
	vo := components.VacuumedObject.Get(obj)
	tr := components.Transform.Get(obj)
	rb := components.RigidBody.Get(obj)

	moveEntry(w, obj, point)
	tr.Scale = vo.BaseScale.Scale(cfg.VacuumedObject.MinScale)
	rb.SetKinematic(true)
	if c := colliderOf(obj); c != nil {
		c.Enabled = false
	}
	vo.State = cfg.VacuumedHeld
}

// Launch throws a held object from point with impulse. Collision with the
// owner comes back after the gun's re-enable delay.
func Launch(w donburi.World, obj *donburi.Entry, gun *components.VacuumGunData, point, impulse gamemath.Vec3) {
	vo := components.VacuumedObject.Get(obj)
	tr := components.Transform.Get(obj)
	rb := components.RigidBody.Get(obj)

	if c := colliderOf(obj); c != nil {
		c.Enabled = true
	}
	tr.Scale = vo.BaseScale.Scale(cfg.VacuumedObject.MinScale)
	moveEntry(w, obj, point)

	vo.IsVacuumed = false
	vo.HasReachedTarget = false
	vo.CanDealDamage = true
	vo.Damage = gun.Damage
	scaleBack(obj)

	rb.SetKinematic(false)
	rb.UseGravity = true
	rb.Drag = vo.BaseDrag
	rb.Stop()
	rb.AddImpulse(impulse)

	vo.ReenableTimer = gun.CollisionReenableDelay
	vo.State = cfg.VacuumedLaunched
}

// scaleBack tweens the object from its current size back to its base size.
func scaleBack(obj *donburi.Entry) {
	if !obj.HasComponent(components.Tween) {
		components.Transform.Get(obj).Scale = components.VacuumedObject.Get(obj).BaseScale
		return
	}
	vo := components.VacuumedObject.Get(obj)
	tr := components.Transform.Get(obj)
	from := 1.0
	if vo.BaseScale.X != 0 {
		from = tr.Scale.X / vo.BaseScale.X
	}
	components.Tween.Get(obj).StartScale(vo.BaseScale, from, 1, cfg.VacuumedObject.ScaleReturnDuration)
}

func setOwnerCollision(w donburi.World, obj, owner *donburi.Entry, enable bool) {
	space := GetSpace(w)
	if space == nil {
		return
	}
	oc, pc := colliderOf(obj), colliderOf(owner)
	if oc == nil || pc == nil {
		return
	}
	space.IgnoreCollision(oc, pc, !enable)
}

// UpdateVacuumedObjects advances every vacuumable body through its
// lifecycle: pulling, holding and coming to rest after a launch.
func UpdateVacuumedObjects(ecs *ecs.ECS) {
	w := ecs.World
	dt := DeltaTime(w)

	var cancelled []*donburi.Entry
	components.VacuumedObject.Each(w, func(e *donburi.Entry) {
		vo := components.VacuumedObject.Get(e)

		if vo.ReenableTimer > 0 {
			vo.ReenableTimer -= dt
			if vo.ReenableTimer <= 0 {
				vo.ReenableTimer = 0
				if owner, ok := entryOf(w, vo.Owner); ok {
					setOwnerCollision(w, e, owner, true)
				}
				if vo.State != cfg.VacuumedHeld && vo.State != cfg.VacuumedPulling {
					vo.Owner = donburi.Null
				}
			}
		}

		switch vo.State {
		case cfg.VacuumedPulling:
			owner, ok := entryOf(w, vo.Owner)
			if !ok {
				cancelled = append(cancelled, e)
				return
			}
			vo.PullTime += dt
			if !stepPull(e, vo, HoldPoint(owner)) {
				cancelled = append(cancelled, e)
			}
		case cfg.VacuumedHeld:
			if owner, ok := entryOf(w, vo.Owner); ok {
				moveEntry(w, e, HoldPoint(owner))
			}
		case cfg.VacuumedLaunched:
			rb := components.RigidBody.Get(e)
			if !vo.CanDealDamage || rb.Velocity.Len() < cfg.Physics.RestSpeed {
				vo.CanDealDamage = false
				vo.State = cfg.VacuumedFree
			}
		}
	})

	for _, e := range cancelled {
		CancelVacuum(w, e)
	}
}

// stepPull applies one step of pull toward target. It reports false when
// the pull has run too long and should be abandoned.
func stepPull(e *donburi.Entry, vo *components.VacuumedObjectData, target gamemath.Vec3) bool {
	if vo.HasReachedTarget {
		return true
	}
	tr := components.Transform.Get(e)
	rb := components.RigidBody.Get(e)

	d := tr.Position.Dist(target)
	if d <= vo.AttractionDistance {
		vo.HasReachedTarget = true
		return true
	}
	if cfg.VacuumedObject.MaxPullTime > 0 && vo.PullTime >= cfg.VacuumedObject.MaxPullTime {
		return false
	}

	dir := target.Sub(tr.Position).Normalized()
	rb.AddForce(dir.Scale(rb.Mass * cfg.VacuumedObject.PullForce))

	tw := e.HasComponent(components.Tween) && components.Tween.Get(e).Running()
	if !tw && vo.StartDistance > 0 {
		factor := gamemath.Lerp(cfg.VacuumedObject.MinScale, 1, gamemath.Clamp01(d/vo.StartDistance))
		tr.Scale = vo.BaseScale.Scale(factor)
	}
	return true
}
