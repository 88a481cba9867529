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

func CreateSpace(ecs *ecs.ECS, min, max gamemath.Vec3) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, physics.NewSpace(min, max, cfg.Physics.CellSize))
	return space
}

// getSpace returns the arena space, or nil before CreateSpace ran.
func getSpace(w donburi.World) *physics.Space {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// attachCollider registers a collider for entry at its current position.
func attachCollider(w donburi.World, entry *donburi.Entry, shape physics.Shape, layer physics.Layer) *physics.Collider {
	tr := components.Transform.Get(entry)
	c := &physics.Collider{
		Shape:   shape.Scaled(tr.Scale),
		Layer:   layer,
		Owner:   entry.Entity(),
		Center:  tr.Position,
		Enabled: true,
	}
	if space := getSpace(w); space != nil {
		space.Add(c)
	}
	components.Collider.SetValue(entry, components.ColliderData{Collider: c, Base: shape})
	return c
}
