package systems

import (
	"log"

	"github.com/automoto/vacuumarena/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ProcessEvents delivers everything published this tick. It must run
// after every other system.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}

// Gameplay lists the simulation systems in tick order. Hosts add their
// input source and UpdatePause before these, and ProcessEvents after.
func Gameplay() []ecs.System {
	return []ecs.System{
		UpdateClock,
		UpdateCamera,
		UpdateGroundProbe,
		UpdateClimbing,
		UpdateWallRunning,
		UpdateSliding,
		UpdateMovement,
		UpdateVacuumGun,
		UpdateVacuumedObjects,
		UpdateEnemies,
		UpdateCombat,
		UpdatePhysics,
		UpdateProjectileHits,
		UpdatePickups,
		UpdateEffects,
		UpdateDeaths,
		UpdateWaves,
		UpdateStyle,
	}
}

// SubscribeGameplay registers the subscribers every host needs: style
// awards, upgrade drops, hit feedback and wave logging.
func SubscribeGameplay(e *ecs.ECS) {
	w := e.World
	SubscribeStyle(w)
	messages.WaveStarted.Subscribe(w, SpawnUpgradesOnWave(e))
	messages.EnemyDamaged.Subscribe(w, OnEnemyDamagedFlash)
	messages.PlayerDamaged.Subscribe(w, OnPlayerDamagedShake)
	messages.WaveStarted.Subscribe(w, func(_ donburi.World, ev messages.WaveStartedEvent) {
		log.Printf("Wave %d/%d started", ev.Wave, ev.Total)
	})
	messages.WaveCompleted.Subscribe(w, func(_ donburi.World, ev messages.WaveCompletedEvent) {
		log.Printf("Wave %d cleared", ev.Wave)
	})
}
