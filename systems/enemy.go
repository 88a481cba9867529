package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// livingEnemies matches enemies that have not started dying.
var livingEnemies = query.NewQuery(filter.And(
	filter.Contains(tags.Enemy, components.Enemy),
	filter.Not(filter.Contains(components.Death)),
))

// UpdateEnemies runs the enemy AI: ground enemies chase the player,
// flying ones wander around it, and both hit the player in melee range.
func UpdateEnemies(ecs *ecs.ECS) {
	w := ecs.World
	dt := DeltaTime(w)
	if dt <= 0 {
		return
	}

	var target *donburi.Entry
	if p, ok := PlayerEntry(w); ok && !p.HasComponent(components.Death) {
		target = p
	}
	rng := worldRand(w)

	livingEnemies.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.TypeConfig == nil {
			return
		}
		if enemy.AttackCooldown > 0 {
			enemy.AttackCooldown -= dt
		}

		if enemy.StunTimer > 0 {
			enemy.StunTimer -= dt
		} else if enemy.TypeConfig.Kind == cfg.EnemyFlying {
			updateFlyingEnemy(w, e, enemy, target, rng, dt)
		} else {
			updateGroundEnemy(e, enemy, target)
		}

		if target != nil {
			tryMelee(e, enemy, target)
		}
		syncHead(w, e, enemy)
	})
}

// updateGroundEnemy steers on XZ toward the target and stops at the
// stopping distance. Vertical speed is left to gravity.
func updateGroundEnemy(e *donburi.Entry, enemy *components.EnemyData, target *donburi.Entry) {
	rb := components.RigidBody.Get(e)
	tr := components.Transform.Get(e)
	if target == nil {
		rb.Velocity.X, rb.Velocity.Z = 0, 0
		return
	}

	to := components.Transform.Get(target).Position.Sub(tr.Position).Flat()
	faceTowards(tr, to)
	if to.Len() <= enemy.TypeConfig.StoppingDistance {
		rb.Velocity.X, rb.Velocity.Z = 0, 0
		return
	}
	v := to.Normalized().Scale(enemy.TypeConfig.Speed)
	rb.Velocity.X, rb.Velocity.Z = v.X, v.Z
}

// updateFlyingEnemy moves a kinematic flyer toward its wander goal and
// picks a new goal on arrival. Goals circle the target when there is one.
func updateFlyingEnemy(w donburi.World, e *donburi.Entry, enemy *components.EnemyData, target *donburi.Entry, rng *rand.Rand, dt float64) {
	tr := components.Transform.Get(e)
	tc := enemy.TypeConfig

	if !enemy.HasGoal || tr.Position.Dist(enemy.WanderGoal) <= cfg.Enemy.ArrivalMargin {
		center := enemy.Home
		if target != nil {
			center = components.Transform.Get(target).Position
		}
		enemy.WanderGoal = wanderPoint(rng, center, tc)
		enemy.HasGoal = true
	}

	faceTowards(tr, enemy.WanderGoal.Sub(tr.Position).Flat())
	moveEntry(w, e, gamemath.MoveTowards(tr.Position, enemy.WanderGoal, tc.Speed*dt))
}

func wanderPoint(rng *rand.Rand, center gamemath.Vec3, tc *cfg.EnemyTypeConfig) gamemath.Vec3 {
	angle := rng.Float64() * 2 * math.Pi
	r := math.Sqrt(rng.Float64()) * tc.WanderRadius
	y := tc.MinAltitude + rng.Float64()*(tc.MaxAltitude-tc.MinAltitude)
	return gamemath.V3(center.X+math.Cos(angle)*r, y, center.Z+math.Sin(angle)*r)
}

func faceTowards(tr *components.TransformData, dir gamemath.Vec3) {
	if dir.IsZero() {
		return
	}
	tr.Yaw = math.Atan2(dir.X, dir.Z) * 180 / math.Pi
}

// tryMelee queues a hit on the target once it is in range and the attack
// has cooled down.
func tryMelee(e *donburi.Entry, enemy *components.EnemyData, target *donburi.Entry) {
	tc := enemy.TypeConfig
	if enemy.AttackCooldown > 0 || enemy.StunTimer > 0 {
		return
	}
	pos := components.Transform.Get(e).Position
	tpos := components.Transform.Get(target).Position
	if pos.Dist(tpos) > tc.AttackRange {
		return
	}
	push := tpos.Sub(pos).Flat().Normalized().Scale(tc.Knockback)
	QueueDamage(target, tc.Damage, push, e.Entity())
	enemy.AttackCooldown = tc.AttackCooldown
}

func syncHead(w donburi.World, e *donburi.Entry, enemy *components.EnemyData) {
	head, ok := entryOf(w, enemy.Head)
	if !ok {
		return
	}
	moveEntry(w, head, components.Transform.Get(e).Position.Add(enemy.HeadOffset()))
}
