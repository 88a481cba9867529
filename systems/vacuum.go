package systems

import (
	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/messages"
	"github.com/automoto/vacuumarena/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVacuumGun runs the vacuum and trigger loops of every gun.
func UpdateVacuumGun(ecs *ecs.ECS) {
	w := ecs.World
	dt := DeltaTime(w)

	var owners []*donburi.Entry
	components.VacuumGun.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Input) && !e.HasComponent(components.Death) {
			owners = append(owners, e)
		}
	})
	for _, owner := range owners {
		StepVacuumGun(w, owner, components.Input.Get(owner), dt)
	}
}

// StepVacuumGun advances one gun by one tick of input.
func StepVacuumGun(w donburi.World, owner *donburi.Entry, input *components.InputData, dt float64) {
	gun := components.VacuumGun.Get(owner)

	if input.Action(cfg.ActionNextMode).JustPressed {
		SetShootMode(w, gun, gun.Mode.Next())
	}
	if input.Action(cfg.ActionPrevMode).JustPressed {
		SetShootMode(w, gun, gun.Mode.Prev())
	}

	vacuum := input.Action(cfg.ActionVacuum)
	if vacuum.JustPressed {
		StartVacuumLoop(w, gun)
	}
	promotePulled(w, owner, gun)
	if vacuum.JustReleased && gun.Vacuuming {
		CancelVacuumLoop(w, gun)
	}
	if gun.Vacuuming {
		gatherObjects(w, owner, gun)
	}

	stepTrigger(w, owner, gun, input.Action(cfg.ActionShoot), dt)
}

// SetShootMode switches the fire mode, publishing only on a change.
func SetShootMode(w donburi.World, gun *components.VacuumGunData, mode cfg.ShootMode) {
	if gun.Mode == mode {
		return
	}
	gun.Mode = mode
	messages.ShootModeChanged.Publish(w, messages.ShootModeChangedEvent{Mode: mode})
}

// StartVacuumLoop turns the vacuum on.
func StartVacuumLoop(w donburi.World, gun *components.VacuumGunData) {
	gun.Vacuuming = true
	messages.VacuumStarted.Publish(w, messages.VacuumStartedEvent{})
}

// CancelVacuumLoop turns the vacuum off and drops everything mid-pull.
func CancelVacuumLoop(w donburi.World, gun *components.VacuumGunData) {
	gun.Vacuuming = false
	messages.VacuumStopped.Publish(w, messages.VacuumStoppedEvent{})
	for _, p := range gun.Pulling {
		if e, ok := entryOf(w, p); ok && e.HasComponent(components.VacuumedObject) {
			CancelVacuum(w, e)
		}
	}
	gun.Pulling = gun.Pulling[:0]
}

// gatherObjects starts pulling every eligible object along the look
// direction, nearest first, until the gun would be full.
func gatherObjects(w donburi.World, owner *donburi.Entry, gun *components.VacuumGunData) {
	space := GetSpace(w)
	if space == nil || len(gun.Magazine)+len(gun.Pulling) >= gun.MaxObjects {
		return
	}
	forward, _, _ := components.Transform.Get(owner).Basis()
	hits := space.SphereCastAll(EyePosition(owner), gun.Radius, forward, gun.Range, physics.LayerVacuumable)

	for _, hit := range hits {
		if len(gun.Magazine)+len(gun.Pulling) >= gun.MaxObjects {
			return
		}
		obj, ok := entryOf(w, hit.Collider.Owner)
		if !ok || !isVacuumable(obj) || gun.Owns(obj.Entity()) {
			continue
		}
		gun.Pulling = append(gun.Pulling, obj.Entity())
		StartVacuum(w, obj, owner)
	}
}

// isVacuumable reports whether obj is lying around or in flight, owned by
// no gun.
func isVacuumable(obj *donburi.Entry) bool {
	if !obj.HasComponent(components.VacuumedObject) {
		return false
	}
	st := components.VacuumedObject.Get(obj).State
	return st == cfg.VacuumedFree || st == cfg.VacuumedLaunched
}

// promotePulled moves objects that reached the hold point into the
// magazine, oldest pull first. Once the magazine is full the remaining
// pulls are cancelled.
func promotePulled(w donburi.World, owner *donburi.Entry, gun *components.VacuumGunData) {
	kept := gun.Pulling[:0]
	for _, p := range gun.Pulling {
		obj, ok := entryOf(w, p)
		if !ok || !obj.HasComponent(components.VacuumedObject) {
			continue
		}
		vo := components.VacuumedObject.Get(obj)
		if vo.State != cfg.VacuumedPulling {
			continue
		}
		if vo.HasReachedTarget && !gun.IsFull() {
			SuckIntoPoint(w, obj, HoldPoint(owner))
			gun.Magazine = append(gun.Magazine, p)
			messages.VacuumSuccess.Publish(w, messages.VacuumSuccessEvent{Object: p})
			publishMagazine(w, gun)
			continue
		}
		kept = append(kept, p)
	}
	gun.Pulling = kept

	if !gun.IsFull() {
		return
	}
	for _, p := range gun.Pulling {
		if obj, ok := entryOf(w, p); ok && obj.HasComponent(components.VacuumedObject) {
			CancelVacuum(w, obj)
		}
	}
	gun.Pulling = gun.Pulling[:0]
}

func publishMagazine(w donburi.World, gun *components.VacuumGunData) {
	messages.VacuumedObjectsChanged.Publish(w, messages.VacuumedObjectsChangedEvent{
		Count: gun.HeldCount(),
		Max:   gun.MaxObjects,
	})
}

// stepTrigger runs the shoot loop for the current mode.
func stepTrigger(w donburi.World, owner *donburi.Entry, gun *components.VacuumGunData, shoot components.ActionState, dt float64) {
	switch gun.Shoot {
	case components.ShootIdle:
		if !shoot.JustPressed {
			return
		}
		if gun.HeldCount() == 0 {
			messages.EmptyMagazine.Publish(w, messages.EmptyMagazineEvent{})
			return
		}
		if gun.Mode == cfg.ShootSpread {
			fireSpread(w, owner, gun)
			gun.Shoot = components.ShootCooldown
		} else {
			fireSingle(w, owner, gun)
			gun.Shoot = components.ShootFiring
		}
		gun.ShootTimer = gun.ShootInterval

	case components.ShootFiring:
		if !shoot.Pressed {
			gun.Shoot = components.ShootIdle
			return
		}
		gun.ShootTimer -= dt
		if gun.ShootTimer > 0 {
			return
		}
		if gun.HeldCount() == 0 {
			gun.Shoot = components.ShootIdle
			return
		}
		fireSingle(w, owner, gun)
		gun.ShootTimer += gun.ShootInterval

	case components.ShootCooldown:
		gun.ShootTimer -= dt
		if gun.ShootTimer <= 0 {
			gun.Shoot = components.ShootIdle
		}
	}
}

// popHeld returns the oldest loaded object that still exists.
func popHeld(w donburi.World, gun *components.VacuumGunData) (*donburi.Entry, bool) {
	for {
		e, ok := gun.PopOldest()
		if !ok {
			return nil, false
		}
		if obj, ok := entryOf(w, e); ok && obj.HasComponent(components.VacuumedObject) {
			return obj, true
		}
	}
}

func fireSingle(w donburi.World, owner *donburi.Entry, gun *components.VacuumGunData) {
	obj, ok := popHeld(w, gun)
	if !ok {
		return
	}
	forward, _, _ := components.Transform.Get(owner).Basis()
	launchObject(w, owner, gun, obj, forward)
	messages.Shoot.Publish(w, messages.ShootEvent{Mode: cfg.ShootSingle, Count: 1})
	publishMagazine(w, gun)
}

func fireSpread(w donburi.World, owner *donburi.Entry, gun *components.VacuumGunData) {
	n := min(gun.SpreadCount, gun.HeldCount())
	forward, _, up := components.Transform.Get(owner).Basis()
	fired := 0
	for i := 0; i < n; i++ {
		obj, ok := popHeld(w, gun)
		if !ok {
			break
		}
		launchObject(w, owner, gun, obj, gun.SpreadDirection(i, n, forward, up))
		fired++
	}
	messages.Shoot.Publish(w, messages.ShootEvent{Mode: cfg.ShootSpread, Count: fired})
	publishMagazine(w, gun)
}

func launchObject(w donburi.World, owner *donburi.Entry, gun *components.VacuumGunData, obj *donburi.Entry, dir gamemath.Vec3) {
	mass := components.RigidBody.Get(obj).Mass
	impulse := dir.Normalized().Scale(gun.ShotImpulse(mass))
	Launch(w, obj, gun, HoldPoint(owner), impulse)
}
