package components

import (
	"github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "Grunt", "Brute", "Drone"
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration

	// Head hit zone that redirects damage to this enemy
	Head donburi.Entity

	// Seconds left before the enemy may act again after spawning or a hit
	StunTimer      float64
	AttackCooldown float64

	// Flying enemies wander between points around Home
	Home       gamemath.Vec3
	WanderGoal gamemath.Vec3
	HasGoal    bool
}

var Enemy = donburi.NewComponentType[EnemyData]()

// HeadOffset places the head hit zone on top of the body.
func (e *EnemyData) HeadOffset() gamemath.Vec3 {
	if e.TypeConfig == nil {
		return gamemath.Zero
	}
	return gamemath.V3(0, e.TypeConfig.Height*0.5, 0)
}

// HeadRadius is the radius of the head hit zone.
func (e *EnemyData) HeadRadius() float64 {
	if e.TypeConfig == nil {
		return 0
	}
	return e.TypeConfig.Radius * 0.6
}
