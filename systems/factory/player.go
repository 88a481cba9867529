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

func CreatePlayer(ecs *ecs.ECS, pos gamemath.Vec3, yaw float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{Spawn: pos})
	components.Transform.SetValue(player, components.TransformData{
		Position: pos,
		Scale:    unitScale,
		Yaw:      yaw,
	})
	components.RigidBody.SetValue(player, components.RigidBodyData{
		Mass:         cfg.Player.Mass,
		UseGravity:   true,
		PrevPosition: pos,
	})
	components.Health.SetValue(player, components.NewHealth(cfg.Player.Health))
	components.Movement.SetValue(player, components.MovementData{
		State:       cfg.Walking,
		MoveSpeed:   cfg.Movement.WalkSpeed,
		SlopeNormal: gamemath.Up,
		CanJump:     true,
		StartYScale: 1,
	})
	components.Climbing.SetValue(player, components.ClimbingData{JumpsLeft: cfg.Climb.ClimbJumps})
	components.VacuumGun.SetValue(player, components.NewVacuumGun(cfg.Vacuum))

	half := gamemath.V3(cfg.Player.Radius, cfg.Player.Height/2, cfg.Player.Radius)
	attachCollider(ecs.World, player, physics.Box(half), physics.LayerPlayer)

	return player
}

// CreateBot spawns a player driven by the scripted bot instead of a device.
func CreateBot(ecs *ecs.ECS, pos gamemath.Vec3, yaw float64, difficulty cfg.BotDifficulty) *donburi.Entry {
	player := CreatePlayer(ecs, pos, yaw)
	donburi.Add(player, components.Bot, &components.BotData{Difficulty: difficulty})
	return player
}
