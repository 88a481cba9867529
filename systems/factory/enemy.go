package factory

import (
	"fmt"

	"github.com/automoto/vacuumarena/archetypes"
	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the named type together with its head
// hit zone. The enemy is stunned and grows in for the spawn-in time.
func CreateEnemy(ecs *ecs.ECS, typeName string, pos gamemath.Vec3) (*donburi.Entry, error) {
	enemyType, exists := cfg.Enemy.Types[typeName]
	if !exists {
		return nil, fmt.Errorf("create enemy: unknown type %q", typeName)
	}
	if getSpace(ecs.World) == nil {
		return nil, fmt.Errorf("create enemy %s: no arena space", typeName)
	}

	enemy := archetypes.Enemy.Spawn(ecs)
	flying := enemyType.Kind == cfg.EnemyFlying

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:   typeName,
		TypeConfig: &enemyType,
		StunTimer:  cfg.Enemy.SpawnInTime,
		Home:       pos,
	})
	components.Transform.SetValue(enemy, components.TransformData{
		Position: pos,
		Scale:    unitScale,
	})
	components.RigidBody.SetValue(enemy, components.RigidBodyData{
		Mass:         enemyType.Mass,
		UseGravity:   !flying,
		Kinematic:    flying,
		PrevPosition: pos,
	})
	components.Health.SetValue(enemy, components.NewHealth(enemyType.Health))

	half := gamemath.V3(enemyType.Radius, enemyType.Height/2, enemyType.Radius)
	attachCollider(ecs.World, enemy, physics.Box(half), physics.LayerEnemy)

	tw := components.Tween.Get(enemy)
	tw.StartScale(unitScale, cfg.VacuumedObject.MinScale, 1, cfg.Enemy.SpawnInTime)
	components.Transform.Get(enemy).Scale = unitScale.Scale(cfg.VacuumedObject.MinScale)

	head := createHead(ecs, enemy)
	components.Enemy.Get(enemy).Head = head.Entity()

	return enemy, nil
}

// createHead adds the hit zone that forwards damage to enemy.
func createHead(ecs *ecs.ECS, enemy *donburi.Entry) *donburi.Entry {
	data := components.Enemy.Get(enemy)
	head := archetypes.Hitzone.Spawn(ecs)
	components.Transform.SetValue(head, components.TransformData{
		Position: components.Transform.Get(enemy).Position.Add(data.HeadOffset()),
		Scale:    unitScale,
	})
	components.HitRedirect.SetValue(head, components.HitRedirectData{Target: enemy.Entity()})
	attachCollider(ecs.World, head, physics.Sphere(data.HeadRadius()), physics.LayerDamageable)
	return head
}
