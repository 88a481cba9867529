package factory

import (
	"github.com/automoto/vacuumarena/archetypes"
	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const pickupRadius = 0.35

// CreatePickup drops a bobbing upgrade pickup at pos.
func CreatePickup(ecs *ecs.ECS, pos gamemath.Vec3, u cfg.UpgradeWeight) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(ecs)

	components.Pickup.SetValue(pickup, components.PickupData{Type: u.Type, Amount: u.Amount})
	components.Transform.SetValue(pickup, components.TransformData{Position: pos, Scale: unitScale})
	attachCollider(ecs.World, pickup, physics.Sphere(pickupRadius), physics.LayerPickup)

	components.Tween.Get(pickup).StartBob(pos, cfg.Upgrades.BobHeight, cfg.Upgrades.BobPeriod)
	return pickup
}
