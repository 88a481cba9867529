package components

import (
	"github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ShootPhase is the progress of the trigger loop.
type ShootPhase int

const (
	ShootIdle ShootPhase = iota
	// Single mode: firing one object per interval while the trigger is held
	ShootFiring
	// Spread mode: volley fired, further presses ignored until the timer ends
	ShootCooldown
)

// VacuumGunData is the magazine and tuning of one vacuum gun. Each
// vacuumable entity is in at most one of Magazine and Pulling; anything in
// neither is owned by the world.
type VacuumGunData struct {
	MaxObjects             int
	Range                  float64
	Radius                 float64
	AttractionDistance     float64
	ShootForce             float64
	ShootInterval          float64
	MinShootInterval       float64
	CollisionReenableDelay float64
	ReferenceMass          float64
	SpreadCount            int
	SpreadAngle            float64
	Damage                 float64

	Mode      config.ShootMode
	Vacuuming bool

	// Oldest first
	Magazine []donburi.Entity
	Pulling  []donburi.Entity

	Shoot      ShootPhase
	ShootTimer float64
}

// NewVacuumGun copies the tuning into a fresh gun.
func NewVacuumGun(c config.VacuumConfig) VacuumGunData {
	return VacuumGunData{
		MaxObjects:             c.MaxObjects,
		Range:                  c.Range,
		Radius:                 c.Radius,
		AttractionDistance:     c.AttractionDistance,
		ShootForce:             c.ShootForce,
		ShootInterval:          c.ShootInterval,
		MinShootInterval:       c.MinShootInterval,
		CollisionReenableDelay: c.CollisionReenableDelay,
		ReferenceMass:          c.ReferenceMass,
		SpreadCount:            c.SpreadCount,
		SpreadAngle:            c.SpreadAngle,
		Damage:                 c.Damage,
	}
}

func (g *VacuumGunData) HeldCount() int {
	return len(g.Magazine)
}

func (g *VacuumGunData) IsFull() bool {
	return len(g.Magazine) >= g.MaxObjects
}

// Owns reports whether e is held or being pulled by this gun.
func (g *VacuumGunData) Owns(e donburi.Entity) bool {
	for _, m := range g.Magazine {
		if m == e {
			return true
		}
	}
	for _, p := range g.Pulling {
		if p == e {
			return true
		}
	}
	return false
}

// PopOldest removes and returns the first loaded object.
func (g *VacuumGunData) PopOldest() (donburi.Entity, bool) {
	if len(g.Magazine) == 0 {
		return donburi.Null, false
	}
	e := g.Magazine[0]
	g.Magazine = g.Magazine[1:]
	return e, true
}

// ShotImpulse is the launch impulse for a body of the given mass.
func (g *VacuumGunData) ShotImpulse(mass float64) float64 {
	ref := g.ReferenceMass
	if ref <= 0 {
		ref = 1
	}
	return mass / ref * g.ShootForce
}

// SpreadDirection fans shot index of total across SpreadAngle, rotating
// forward around the camera up axis. The fan is centred on forward, so a
// lone shot flies straight.
func (g *VacuumGunData) SpreadDirection(index, total int, forward, up gamemath.Vec3) gamemath.Vec3 {
	if total <= 1 {
		return forward
	}
	step := g.SpreadAngle / float64(total-1)
	angle := -g.SpreadAngle/2 + step*float64(index)
	return gamemath.RotateAround(forward, up, angle)
}

func (g *VacuumGunData) UpgradeClipCapacity(n int) {
	g.MaxObjects += n
}

func (g *VacuumGunData) UpgradeShootForce(v float64) {
	g.ShootForce += v
}

func (g *VacuumGunData) UpgradeDamage(v float64) {
	g.Damage += v
}

// UpgradeShootInterval shortens the single-mode interval by v, never below
// MinShootInterval.
func (g *VacuumGunData) UpgradeShootInterval(v float64) {
	g.ShootInterval = max(g.ShootInterval-v, g.MinShootInterval)
}

func (g *VacuumGunData) UpgradeRange(v float64) {
	g.Range += v
}

func (g *VacuumGunData) UpgradeRadius(v float64) {
	g.Radius += v
}

// Retune moves the gun from the old base tuning to cur. Upgrades bought
// since spawn stay on top of the new base values. A magazine above the new
// capacity keeps its objects and stops gathering until it drains.
func (g *VacuumGunData) Retune(old, cur config.VacuumConfig) {
	g.MaxObjects = max(g.MaxObjects+cur.MaxObjects-old.MaxObjects, 0)
	g.Range += cur.Range - old.Range
	g.Radius += cur.Radius - old.Radius
	g.ShootForce += cur.ShootForce - old.ShootForce
	g.Damage += cur.Damage - old.Damage
	g.MinShootInterval = cur.MinShootInterval
	g.ShootInterval = max(g.ShootInterval+cur.ShootInterval-old.ShootInterval, g.MinShootInterval)

	g.AttractionDistance = cur.AttractionDistance
	g.CollisionReenableDelay = cur.CollisionReenableDelay
	g.ReferenceMass = cur.ReferenceMass
	g.SpreadCount = cur.SpreadCount
	g.SpreadAngle = cur.SpreadAngle
}

// VacuumedObjectData is the per-body side of the vacuum lifecycle.
type VacuumedObjectData struct {
	State config.VacuumedState
	Owner donburi.Entity

	IsVacuumed       bool
	HasReachedTarget bool
	CanDealDamage    bool
	Damage           float64

	AttractionDistance float64
	StartDistance      float64
	PullTime           float64

	BaseScale gamemath.Vec3
	BaseDrag  float64

	// Seconds until collision with the owner is restored after a launch
	ReenableTimer float64
}

var (
	VacuumGun      = donburi.NewComponentType[VacuumGunData]()
	VacuumedObject = donburi.NewComponentType[VacuumedObjectData]()
)
