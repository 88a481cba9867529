package systems

import (
	"log"
	"math"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/messages"
	"github.com/automoto/vacuumarena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartWaves arms the wave sequence. The first countdown begins on the
// following tick.
func StartWaves(w donburi.World) {
	entry, ok := components.WaveManager.First(w)
	if !ok {
		return
	}
	wm := components.WaveManager.Get(entry)
	if wm.Phase == cfg.WavePhaseIdle && wm.IsGameActive() {
		wm.Phase = cfg.WavePhaseStarting
	}
}

// CancelWaves stops the sequence for good. Nothing is spawned or
// announced afterwards and no result is published.
func CancelWaves(w donburi.World) {
	entry, ok := components.WaveManager.First(w)
	if !ok {
		return
	}
	wm := components.WaveManager.Get(entry)
	wm.Cancelled = true
	wm.Phase = cfg.WavePhaseFinished
}

// EndGame finishes the run with result. Only the first call has any
// effect.
func EndGame(w donburi.World, result cfg.GameResult) {
	entry, ok := components.WaveManager.First(w)
	if !ok {
		return
	}
	wm := components.WaveManager.Get(entry)
	if !wm.IsGameActive() {
		return
	}
	wm.Result = result
	wm.Phase = cfg.WavePhaseFinished

	var score float64
	if s, ok := components.Style.First(w); ok {
		score = components.Style.Get(s).TotalScore
	}
	log.Printf("Game ended: %s at wave %d/%d, score %.0f", result, wm.WaveNumber(), wm.TotalWaves(), score)
	messages.GameEnded.Publish(w, messages.GameEndedEvent{Result: result, Wave: wm.WaveNumber(), Score: score})
}

// UpdateWaves advances the wave sequence by one tick.
func UpdateWaves(ecs *ecs.ECS) {
	w := ecs.World
	entry, ok := components.WaveManager.First(w)
	if !ok {
		return
	}
	wm := components.WaveManager.Get(entry)
	if !wm.IsGameActive() {
		return
	}
	pruneEnemies(w, wm)
	dt := DeltaTime(w)

	switch wm.Phase {
	case cfg.WavePhaseStarting:
		if wm.TotalWaves() == 0 {
			log.Printf("Warning: wave list is empty, nothing to run")
			wm.Phase = cfg.WavePhaseFinished
			return
		}
		wm.Index = 0
		beginCountdown(w, wm, wm.CountdownDuration, cfg.WavePhaseCountdownBefore)

	case cfg.WavePhaseCountdownBefore:
		if stepCountdown(w, wm, dt) {
			messages.WaveStarted.Publish(w, messages.WaveStartedEvent{Wave: wm.WaveNumber(), Total: wm.TotalWaves()})
			beginSpawning(w, wm)
		}

	case cfg.WavePhaseSpawning:
		wm.Timer -= dt
		if wm.Timer > 0 {
			return
		}
		spawnBurst(ecs, wm)

	case cfg.WavePhaseWaitingForClear:
		if wm.ActiveCount() > 0 {
			return
		}
		messages.WaveCompleted.Publish(w, messages.WaveCompletedEvent{Wave: wm.WaveNumber()})
		if wm.Index >= wm.TotalWaves()-1 {
			EndGame(w, cfg.ResultWin)
			return
		}
		beginCountdown(w, wm, wm.BetweenWavesDelay, cfg.WavePhaseCountdownBetween)

	case cfg.WavePhaseCountdownBetween:
		if stepCountdown(w, wm, dt) {
			wm.Index++
			beginCountdown(w, wm, wm.CountdownDuration, cfg.WavePhaseCountdownBefore)
		}
	}
}

// pruneEnemies drops entries that were removed without a death.
func pruneEnemies(w donburi.World, wm *components.WaveManagerData) {
	for i := len(wm.ActiveEnemies) - 1; i >= 0; i-- {
		if !w.Valid(wm.ActiveEnemies[i]) {
			wm.ActiveEnemies = append(wm.ActiveEnemies[:i], wm.ActiveEnemies[i+1:]...)
		}
	}
}

// beginCountdown announces the first of ceil(d) one second ticks.
func beginCountdown(w donburi.World, wm *components.WaveManagerData, d float64, phase cfg.WavePhase) {
	messages.MusicStateChanged.Publish(w, messages.MusicStateChangedEvent{State: cfg.MusicCalm})
	wm.Phase = phase
	wm.CountdownLeft = int(math.Ceil(d))
	wm.Timer = 1
	if wm.CountdownLeft > 0 {
		messages.Countdown.Publish(w, messages.CountdownEvent{Remaining: wm.CountdownLeft})
	}
}

// stepCountdown reports true once the countdown has run out.
func stepCountdown(w donburi.World, wm *components.WaveManagerData, dt float64) bool {
	if wm.CountdownLeft <= 0 {
		return true
	}
	wm.Timer -= dt
	if wm.Timer > 0 {
		return false
	}
	wm.CountdownLeft--
	if wm.CountdownLeft <= 0 {
		return true
	}
	wm.Timer += 1
	messages.Countdown.Publish(w, messages.CountdownEvent{Remaining: wm.CountdownLeft})
	return false
}

func beginSpawning(w donburi.World, wm *components.WaveManagerData) {
	wave, _ := wm.Current()
	wm.Attempts = 0
	wm.Spawned = 0
	wm.Timer = 0
	if len(wave.Pool) == 0 {
		log.Printf("Warning: wave %d has no enemy types", wm.WaveNumber())
		wm.Phase = cfg.WavePhaseWaitingForClear
		return
	}
	messages.MusicStateChanged.Publish(w, messages.MusicStateChangedEvent{State: cfg.MusicBattle})
	wm.PickSpawnPoints()
	wm.Phase = cfg.WavePhaseSpawning
}

// spawnBurst makes up to MaxSpawnsPerFrame spawn attempts. Failed attempts
// count toward the wave's quota, so the wave always ends.
func spawnBurst(e *ecs.ECS, wm *components.WaveManagerData) {
	wave, _ := wm.Current()
	burst := max(1, wave.MaxSpawnsPerFrame)

	for i := 0; i < burst && wm.Attempts < wave.MaxEnemies; i++ {
		wm.Attempts++
		name := wave.Pool[wm.Rand.Intn(len(wave.Pool))]
		tc, ok := cfg.Enemy.Types[name]
		if !ok {
			log.Printf("Warning: wave %d: unknown enemy type %q", wm.WaveNumber(), name)
			continue
		}
		pos, ok := wm.SpawnPoint(tc.Kind)
		if !ok {
			log.Printf("Warning: wave %d: no %s spawn points", wm.WaveNumber(), tc.Kind)
			continue
		}
		enemy, err := factory.CreateEnemy(e, name, pos)
		if err != nil {
			log.Printf("Warning: wave %d: %v", wm.WaveNumber(), err)
			continue
		}
		wm.Register(enemy.Entity())
		wm.Spawned++
		messages.EnemySpawned.Publish(e.World, messages.EnemySpawnedEvent{Enemy: enemy.Entity(), TypeName: name, Position: pos})
	}

	if wm.Attempts >= wave.MaxEnemies {
		wm.Phase = cfg.WavePhaseWaitingForClear
		return
	}
	wm.Timer = wave.SpawnInterval
}
