package components

import (
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// DamageEventData is damage queued for the combat step. Knockback is an
// impulse per unit mass.
type DamageEventData struct {
	Amount    float64
	Knockback gamemath.Vec3
	Source    donburi.Entity
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
