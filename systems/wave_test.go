package systems

import (
	"testing"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/leveldata"
	"github.com/automoto/vacuumarena/shared/messages"
	"github.com/automoto/vacuumarena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type waveLog struct {
	countdowns []int
	started    []int
	completed  []int
	ended      []messages.GameEndedEvent
}

// newWaveECS builds a test arena with a wave manager running waves and
// records every wave event.
func newWaveECS(t *testing.T, waves []cfg.WaveConfig) (*ecs.ECS, *components.WaveManagerData, *waveLog) {
	t.Helper()
	e := newTestECS(t)
	e.AddSystem(UpdateClock)
	e.AddSystem(UpdateWaves)
	e.AddSystem(ProcessEvents)

	arena := &leveldata.Arena{
		GroundSpawns: []gamemath.Vec3{gamemath.V3(-5, 1, 5), gamemath.V3(5, 1, 5)},
		FlyingSpawns: []gamemath.Vec3{gamemath.V3(0, 4, 8)},
	}
	entry := factory.CreateWaveManager(e, arena, 1)
	wm := components.WaveManager.Get(entry)
	wm.Waves = waves
	wm.CountdownDuration = 3
	wm.BetweenWavesDelay = 1

	log := &waveLog{}
	w := e.World
	messages.Countdown.Subscribe(w, func(_ donburi.World, ev messages.CountdownEvent) {
		log.countdowns = append(log.countdowns, ev.Remaining)
	})
	messages.WaveStarted.Subscribe(w, func(_ donburi.World, ev messages.WaveStartedEvent) {
		log.started = append(log.started, ev.Wave)
	})
	messages.WaveCompleted.Subscribe(w, func(_ donburi.World, ev messages.WaveCompletedEvent) {
		log.completed = append(log.completed, ev.Wave)
	})
	messages.GameEnded.Subscribe(w, func(_ donburi.World, ev messages.GameEndedEvent) {
		log.ended = append(log.ended, ev)
	})
	return e, wm, log
}

// runUntil updates e until done reports true, failing after limit ticks.
func runUntil(t *testing.T, e *ecs.ECS, limit int, done func() bool) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if done() {
			return
		}
		e.Update()
	}
	if !done() {
		t.Fatalf("condition not met after %d ticks", limit)
	}
}

func killActive(w donburi.World, wm *components.WaveManagerData) {
	for _, enemy := range append([]donburi.Entity(nil), wm.ActiveEnemies...) {
		ApplyDamage(w, enemy, 1e6)
	}
}

func gruntWave(n int) cfg.WaveConfig {
	return cfg.WaveConfig{Pool: []string{"Grunt"}, MaxEnemies: n, MaxSpawnsPerFrame: 2, SpawnInterval: 0.1}
}

func TestWaveSequenceWin(t *testing.T) {
	e, wm, log := newWaveECS(t, []cfg.WaveConfig{gruntWave(2), gruntWave(3)})
	StartWaves(e.World)

	for wave := 1; wave <= 2; wave++ {
		runUntil(t, e, 600, func() bool { return wm.Phase == cfg.WavePhaseWaitingForClear })
		if wm.WaveNumber() != wave {
			t.Fatalf("WaveNumber = %d, want %d", wm.WaveNumber(), wave)
		}
		if want := wm.Waves[wave-1].MaxEnemies; wm.ActiveCount() != want || wm.Spawned != want {
			t.Fatalf("wave %d: active %d spawned %d, want %d", wave, wm.ActiveCount(), wm.Spawned, want)
		}
		killActive(e.World, wm)
		// The clear is only noticed on the next tick.
		e.Update()
	}
	runUntil(t, e, 10, func() bool { return len(log.ended) > 0 })

	if got := log.countdowns[:3]; got[0] != 3 || got[1] != 2 || got[2] != 1 {
		t.Errorf("first countdown = %v, want [3 2 1]", got)
	}
	if len(log.started) != 2 || log.started[0] != 1 || log.started[1] != 2 {
		t.Errorf("started = %v, want [1 2]", log.started)
	}
	if len(log.completed) != 2 {
		t.Errorf("completed = %v, want two waves", log.completed)
	}
	if ev := log.ended[0]; ev.Result != cfg.ResultWin || ev.Wave != 2 {
		t.Errorf("GameEnded = %+v, want a win at wave 2", ev)
	}
	if wm.Phase != cfg.WavePhaseFinished || wm.IsGameActive() {
		t.Errorf("phase %s active %v after the win", wm.Phase, wm.IsGameActive())
	}

	for i := 0; i < 120; i++ {
		e.Update()
	}
	if len(log.ended) != 1 {
		t.Errorf("GameEnded published %d times", len(log.ended))
	}
}

func TestPlayerDeathEndsInDefeat(t *testing.T) {
	e, wm, log := newWaveECS(t, []cfg.WaveConfig{gruntWave(2)})
	player := standingPlayer(e, 0, 0)
	StartWaves(e.World)
	runUntil(t, e, 600, func() bool { return wm.Phase == cfg.WavePhaseWaitingForClear })

	if !ApplyDamage(e.World, player.Entity(), 1e6) {
		t.Fatal("player took no damage")
	}
	EndGame(e.World, cfg.ResultWin)
	e.Update()

	if len(log.ended) != 1 || log.ended[0].Result != cfg.ResultDefeat {
		t.Fatalf("GameEnded = %+v, want one defeat", log.ended)
	}
	if !player.Valid() || !player.HasComponent(components.Death) {
		t.Error("dead player should stay in the world with a death marker")
	}

	killActive(e.World, wm)
	for i := 0; i < 120; i++ {
		e.Update()
	}
	if len(log.completed) != 0 {
		t.Errorf("wave completed after the run ended: %v", log.completed)
	}
}

func TestCancelWavesStopsEverything(t *testing.T) {
	e, wm, log := newWaveECS(t, []cfg.WaveConfig{gruntWave(2)})
	StartWaves(e.World)
	for i := 0; i < 10; i++ {
		e.Update()
	}
	CancelWaves(e.World)
	for i := 0; i < 600; i++ {
		e.Update()
	}

	if len(log.started) != 0 || len(log.ended) != 0 {
		t.Errorf("started %v ended %v after cancel, want nothing", log.started, log.ended)
	}
	if wm.Result != cfg.ResultNone || wm.Phase != cfg.WavePhaseFinished {
		t.Errorf("result %s phase %s, want none and finished", wm.Result, wm.Phase)
	}
	StartWaves(e.World)
	e.Update()
	if wm.Phase != cfg.WavePhaseFinished {
		t.Error("a cancelled sequence restarted")
	}
}

func TestEmptyWaveListFinishesWithoutResult(t *testing.T) {
	e, wm, log := newWaveECS(t, nil)
	StartWaves(e.World)
	e.Update()
	e.Update()

	if wm.Phase != cfg.WavePhaseFinished {
		t.Errorf("phase = %s, want finished", wm.Phase)
	}
	if len(log.ended) != 0 || wm.Result != cfg.ResultNone {
		t.Errorf("empty wave list produced a result: %+v", log.ended)
	}
}

func TestFailedSpawnsStillFinishTheWave(t *testing.T) {
	tests := []struct {
		name string
		wave cfg.WaveConfig
	}{
		{"unknown enemy type", cfg.WaveConfig{Pool: []string{"Nobody"}, MaxEnemies: 3, MaxSpawnsPerFrame: 1}},
		{"empty pool", cfg.WaveConfig{MaxEnemies: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, wm, log := newWaveECS(t, []cfg.WaveConfig{tt.wave})
			StartWaves(e.World)
			runUntil(t, e, 600, func() bool { return len(log.ended) > 0 })

			if wm.Spawned != 0 {
				t.Errorf("Spawned = %d, want 0", wm.Spawned)
			}
			if log.ended[0].Result != cfg.ResultWin {
				t.Errorf("result = %s, want win", log.ended[0].Result)
			}
		})
	}
}

func TestRemovedEnemiesArePruned(t *testing.T) {
	e, wm, _ := newWaveECS(t, []cfg.WaveConfig{gruntWave(2)})
	StartWaves(e.World)
	runUntil(t, e, 600, func() bool { return wm.Phase == cfg.WavePhaseWaitingForClear })

	for _, enemy := range append([]donburi.Entity(nil), wm.ActiveEnemies...) {
		e.World.Remove(enemy)
	}
	e.Update()
	if wm.ActiveCount() != 0 {
		t.Errorf("ActiveCount = %d after removal, want 0", wm.ActiveCount())
	}
}
