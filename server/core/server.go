package core

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/vacuumarena/assets"
	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/leveldata"
	"github.com/automoto/vacuumarena/shared/messages"
	"github.com/automoto/vacuumarena/systems"
	"github.com/automoto/vacuumarena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a headless arena run.
type Options struct {
	TickRate   int
	Seed       int64
	Difficulty cfg.BotDifficulty
	// Loaded from the embedded assets when nil
	Arena *leveldata.Arena
}

// Stats is a snapshot of a running arena.
type Stats struct {
	Tick    int64
	Phase   cfg.WavePhase
	Wave    int
	Total   int
	Enemies int
	Health  float64
	Held    int
	Score   float64
	Rank    string
}

// Server runs one arena with a scripted player and no window.
type Server struct {
	ecs  *ecs.ECS
	loop *GameLoop

	mu     sync.Mutex
	done   chan struct{}
	ended  bool
	result messages.GameEndedEvent
}

// NewServer builds the world for opts. The waves are armed but nothing
// advances until Step or Start is called.
func NewServer(opts Options) (*Server, error) {
	arena := opts.Arena
	if arena == nil {
		a, err := assets.NewLevelLoader().LoadArena(cfg.C.ArenaPath)
		if err != nil {
			return nil, fmt.Errorf("load arena: %w", err)
		}
		arena = a
	}

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(systems.UpdateBots)
	e.AddSystem(systems.UpdatePause)
	for _, s := range systems.Gameplay() {
		e.AddSystem(systems.WithGameplayChecks(s))
	}
	e.AddSystem(systems.ProcessEvents)

	s := &Server{
		ecs:  e,
		done: make(chan struct{}),
	}
	s.loop = NewGameLoop(s, opts.TickRate)

	factory.CreateArena(e, arena, factory.ArenaOptions{
		Seed:          opts.Seed,
		Bot:           true,
		BotDifficulty: opts.Difficulty,
	})
	systems.SubscribeGameplay(e)
	messages.GameEnded.Subscribe(e.World, s.onGameEnded)
	messages.EnemyDied.Subscribe(e.World, func(_ donburi.World, ev messages.EnemyDiedEvent) {
		log.Printf("%s down", ev.TypeName)
	})

	systems.StartWaves(e.World)
	return s, nil
}

func (s *Server) onGameEnded(_ donburi.World, ev messages.GameEndedEvent) {
	if s.ended {
		return
	}
	s.ended = true
	s.result = ev
	close(s.done)
}

// Start runs the loop in the background at the configured tick rate.
func (s *Server) Start() {
	go s.loop.Run()
}

// Stop halts the loop and cancels the remaining waves.
func (s *Server) Stop() {
	s.loop.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	systems.CancelWaves(s.ecs.World)
}

// Step advances the world by one tick.
func (s *Server) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ecs.Update()
}

// RunTicks steps as fast as possible until the run ends or n ticks have
// passed. It reports whether the run ended.
func (s *Server) RunTicks(n int) bool {
	for i := 0; i < n; i++ {
		s.Step()
		if s.Ended() {
			return true
		}
	}
	return s.Ended()
}

// Done is closed once the run has a result.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) Ended() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Result is valid once Done is closed.
func (s *Server) Result() messages.GameEndedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Stats snapshots the run.
func (s *Server) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.ecs.World

	var st Stats
	if clock, ok := components.Clock.First(w); ok {
		st.Tick = components.Clock.Get(clock).Tick
	}
	if entry, ok := components.WaveManager.First(w); ok {
		wm := components.WaveManager.Get(entry)
		st.Phase = wm.Phase
		st.Wave = wm.WaveNumber()
		st.Total = wm.TotalWaves()
		st.Enemies = wm.ActiveCount()
	}
	if player, ok := systems.PlayerEntry(w); ok {
		st.Health = components.Health.Get(player).Current
		st.Held = components.VacuumGun.Get(player).HeldCount()
	}
	if entry, ok := components.Style.First(w); ok {
		style := components.Style.Get(entry)
		st.Score = style.TotalScore
		st.Rank = style.CurrentRank().Name
	}
	return st
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.ecs.World
}
