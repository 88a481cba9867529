package archetypes

import (
	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ground = newArchetype(
		tags.Ground,
		components.Transform,
		components.Collider,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Transform,
		components.Collider,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.RigidBody,
		components.Collider,
		components.Health,
		components.Movement,
		components.Climbing,
		components.WallRun,
		components.Slide,
		components.Input,
		components.VacuumGun,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.RigidBody,
		components.Collider,
		components.Health,
		components.Tween,
	)
	Hitzone = newArchetype(
		tags.Hitzone,
		components.Transform,
		components.Collider,
		components.HitRedirect,
	)
	Prop = newArchetype(
		tags.Prop,
		components.Transform,
		components.RigidBody,
		components.Collider,
		components.VacuumedObject,
		components.Tween,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Transform,
		components.Collider,
		components.Tween,
	)
	Space = newArchetype(
		components.Space,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Clock = newArchetype(
		components.Clock,
		components.Pause,
	)
	WaveManager = newArchetype(
		components.WaveManager,
	)
	Style = newArchetype(
		components.Style,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
