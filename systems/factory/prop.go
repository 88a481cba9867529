package factory

import (
	"math"
	"math/rand"

	"github.com/automoto/vacuumarena/archetypes"
	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/leveldata"
	"github.com/automoto/vacuumarena/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProp spawns a vacuumable crate. Zero size or mass falls back to
// the configured defaults.
func CreateProp(ecs *ecs.ECS, pos gamemath.Vec3, size, mass float64) *donburi.Entry {
	if size <= 0 {
		size = cfg.Prop.Size
	}
	if mass <= 0 {
		mass = cfg.Prop.Mass
	}
	prop := archetypes.Prop.Spawn(ecs)

	components.Transform.SetValue(prop, components.TransformData{Position: pos, Scale: unitScale})
	components.RigidBody.SetValue(prop, components.RigidBodyData{
		Mass:         mass,
		Drag:         cfg.Prop.Drag,
		UseGravity:   true,
		PrevPosition: pos,
	})
	components.VacuumedObject.SetValue(prop, components.VacuumedObjectData{
		State:     cfg.VacuumedFree,
		Owner:     donburi.Null,
		BaseScale: unitScale,
		BaseDrag:  cfg.Prop.Drag,
	})

	half := size / 2
	attachCollider(ecs.World, prop, physics.Box(gamemath.V3(half, half, half)), physics.LayerVacuumable)
	return prop
}

// ScatterProps fills a prop zone with up to zone.Count props placed at
// random inside its circle. Each prop gets a bounded number of tries to
// find a spot at least MinSpacing away from the others; props that find
// none are skipped.
func ScatterProps(ecs *ecs.ECS, zone leveldata.PropZone, rng *rand.Rand) []*donburi.Entry {
	var placed []gamemath.Vec3
	var props []*donburi.Entry

	for i := 0; i < zone.Count; i++ {
		for attempt := 0; attempt < cfg.Prop.MaxAttempts; attempt++ {
			angle := rng.Float64() * 2 * math.Pi
			r := math.Sqrt(rng.Float64()) * zone.Radius
			p := gamemath.V3(zone.Center.X+math.Cos(angle)*r, zone.Center.Y, zone.Center.Z+math.Sin(angle)*r)
			if !farEnough(p, placed, zone.MinSpacing) {
				continue
			}
			placed = append(placed, p)
			props = append(props, CreateProp(ecs, p, zone.Size, zone.Mass))
			break
		}
	}
	return props
}

func farEnough(p gamemath.Vec3, others []gamemath.Vec3, spacing float64) bool {
	for _, o := range others {
		if p.Dist(o) < spacing {
			return false
		}
	}
	return true
}
