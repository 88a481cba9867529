package factory

import (
	"log"

	"github.com/automoto/vacuumarena/archetypes"
	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// ArenaOptions selects who plays the arena.
type ArenaOptions struct {
	Seed int64
	// Spawn a scripted player instead of a device-driven one
	Bot           bool
	BotDifficulty cfg.BotDifficulty
}

// CreateArena builds the whole world for an arena: the singletons, the
// static geometry, the props and the player. It returns the player.
func CreateArena(ecs *ecs.ECS, arena *leveldata.Arena, opts ArenaOptions) *donburi.Entry {
	entry := archetypes.Arena.Spawn(ecs)
	components.Arena.Set(entry, &components.ArenaData{Arena: arena})

	CreateClock(ecs)
	min, max := arena.Bounds()
	CreateSpace(ecs, min, max)

	for _, b := range arena.Ground {
		CreateGround(ecs, b)
	}
	for _, r := range arena.Ramps {
		CreateRamp(ecs, r)
	}
	for _, b := range arena.Walls {
		CreateWall(ecs, b)
	}

	wm := CreateWaveManager(ecs, arena, opts.Seed)
	CreateStyle(ecs)

	for _, p := range arena.Props {
		CreateProp(ecs, p.Position, p.Size, p.Mass)
	}
	rng := components.WaveManager.Get(wm).Rand
	for _, z := range arena.PropZones {
		if n := len(ScatterProps(ecs, z, rng)); n < z.Count {
			log.Printf("Warning: prop zone at %.1f,%.1f placed %d of %d props", z.Center.X, z.Center.Z, n, z.Count)
		}
	}

	spawn := arena.PlayerSpawn
	var player *donburi.Entry
	if opts.Bot {
		player = CreateBot(ecs, spawn.Position, spawn.Yaw, opts.BotDifficulty)
	} else {
		player = CreatePlayer(ecs, spawn.Position, spawn.Yaw)
	}
	CreateCamera(ecs, math.Vec2{X: spawn.Position.X, Y: spawn.Position.Z})
	return player
}

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	if entry, ok := components.Clock.First(ecs.World); ok {
		return entry
	}
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{
		FixedDelta: cfg.Time.FixedDelta,
		TimeScale:  cfg.Time.TimeScale,
	})
	return clock
}

// CreateWaveManager sets up the wave sequence over the arena's spawn
// points. The sequence stays idle until it is started.
func CreateWaveManager(ecs *ecs.ECS, arena *leveldata.Arena, seed int64) *donburi.Entry {
	entry := archetypes.WaveManager.Spawn(ecs)
	wm := components.NewWaveManager(cfg.Waves, arena.GroundSpawns, arena.FlyingSpawns, seed)
	components.WaveManager.Set(entry, &wm)
	return entry
}

func CreateStyle(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Style.Spawn(ecs)
	s := components.NewStyle(cfg.Style)
	components.Style.Set(entry, &s)
	return entry
}
