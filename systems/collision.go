package systems

import (
	"math"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const projectileMask = physics.LayerEnemy | physics.LayerDamageable

type projectileStrike struct {
	projectile *donburi.Entry
	target     donburi.Entity
	damage     float64
}

// UpdateProjectileHits lets every launched object damage the first enemy
// or hit zone it touched during the last physics step. Each launch deals
// damage at most once.
func UpdateProjectileHits(ecs *ecs.ECS) {
	w := ecs.World
	space := GetSpace(w)
	if space == nil {
		return
	}

	var strikes []projectileStrike
	components.VacuumedObject.Each(w, func(e *donburi.Entry) {
		vo := components.VacuumedObject.Get(e)
		if vo.State != cfg.VacuumedLaunched || !vo.CanDealDamage {
			return
		}
		c := colliderOf(e)
		if c == nil || !c.Enabled {
			return
		}
		if target, ok := firstProjectileHit(space, e, c); ok {
			strikes = append(strikes, projectileStrike{projectile: e, target: target, damage: vo.Damage})
		}
	})

	for _, s := range strikes {
		ApplyDamage(w, s.target, s.damage)
		vo := components.VacuumedObject.Get(s.projectile)
		vo.CanDealDamage = false
		vo.State = cfg.VacuumedFree
	}
}

// firstProjectileHit sweeps the collider from its previous position to
// its current one and returns the owner of the nearest damageable hit.
func firstProjectileHit(space *physics.Space, e *donburi.Entry, c *physics.Collider) (donburi.Entity, bool) {
	rb := components.RigidBody.Get(e)
	tr := components.Transform.Get(e)
	radius := sweepRadius(c.Shape)

	move := tr.Position.Sub(rb.PrevPosition)
	var hits []physics.Hit
	if move.IsZero() {
		hits = space.OverlapSphere(tr.Position, radius, projectileMask)
	} else {
		hits = space.SphereCastAll(rb.PrevPosition, radius, move.Normalized(), move.Len()+cfg.Physics.ContactSkin, projectileMask)
	}

	for _, h := range hits {
		if h.Collider == nil || h.Collider == c || h.Collider.Owner == e.Entity() {
			continue
		}
		if space.Ignoring(c, h.Collider) {
			continue
		}
		return h.Collider.Owner, true
	}
	return donburi.Null, false
}

func sweepRadius(s physics.Shape) float64 {
	if s.Kind == physics.ShapeSphere {
		return s.Radius
	}
	return math.Max(s.Half.X, math.Max(s.Half.Y, s.Half.Z))
}
