package factory

import (
	"github.com/automoto/vacuumarena/archetypes"
	"github.com/automoto/vacuumarena/components"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/leveldata"
	"github.com/automoto/vacuumarena/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var unitScale = gamemath.V3(1, 1, 1)

func CreateGround(ecs *ecs.ECS, b leveldata.Block) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)
	components.Transform.SetValue(ground, components.TransformData{Position: b.Center, Scale: unitScale})
	attachCollider(ecs.World, ground, physics.Box(b.Half), physics.LayerGround)
	return ground
}

// CreateRamp adds a walkable ramp. Ramps count as ground for the probes.
func CreateRamp(ecs *ecs.ECS, r leveldata.Ramp) *donburi.Entry {
	ramp := archetypes.Ground.Spawn(ecs)
	components.Transform.SetValue(ramp, components.TransformData{Position: r.Center, Scale: unitScale})
	attachCollider(ecs.World, ramp, physics.Ramp(r.Half, r.Rise), physics.LayerGround)
	return ramp
}

func CreateWall(ecs *ecs.ECS, b leveldata.Block) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	components.Transform.SetValue(wall, components.TransformData{Position: b.Center, Scale: unitScale})
	attachCollider(ecs.World, wall, physics.Box(b.Half), physics.LayerWall)
	return wall
}
