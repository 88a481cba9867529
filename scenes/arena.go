package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/vacuumarena/assets"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/messages"
	"github.com/automoto/vacuumarena/systems"
	"github.com/automoto/vacuumarena/systems/factory"
	"github.com/automoto/vacuumarena/systems/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ArenaScene runs one wave fight in the loaded arena.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	watcher      *cfg.Watcher
	once         sync.Once

	ended  bool
	result messages.GameEndedEvent
	// Ticks left before switching to the result scene
	linger int
}

// NewArenaScene creates the arena scene. watcher may be nil; when set,
// tuning file edits are applied while the scene runs.
func NewArenaScene(sc SceneChanger, watcher *cfg.Watcher) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, watcher: watcher}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.pollTuning()
	as.ecs.Update()

	if !as.ended {
		return
	}
	as.linger--
	if as.linger <= 0 {
		as.sceneChanger.ChangeScene(NewResultScene(as.sceneChanger, as.watcher, as.result))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) pollTuning() {
	if as.watcher == nil {
		return
	}
	for {
		path, ok := as.watcher.Poll()
		if !ok {
			return
		}
		old := cfg.CurrentTuning()
		if err := cfg.LoadTuning(path); err != nil {
			log.Printf("Warning: %v", err)
			continue
		}
		systems.ApplyTuning(as.ecs.World, old)
		log.Printf("Reloaded tuning from %s", path)
	}
}

func (as *ArenaScene) configure() {
	arena := assets.NewLevelLoader().MustLoadArena(cfg.C.ArenaPath)

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(view.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Gameplay systems, skipped while paused
	for _, s := range systems.Gameplay() {
		ecs.AddSystem(systems.WithGameplayChecks(s))
	}

	// Events are delivered last, after every system published
	ecs.AddSystem(systems.ProcessEvents)

	ecs.AddRenderer(cfg.Default, view.DrawArena)
	ecs.AddRenderer(cfg.Default, view.DrawHUD)

	as.ecs = ecs

	factory.CreateArena(ecs, arena, factory.ArenaOptions{Seed: cfg.C.Seed})
	systems.SubscribeGameplay(ecs)
	messages.GameEnded.Subscribe(ecs.World, systems.OnGameEndedRecord)
	messages.GameEnded.Subscribe(ecs.World, func(_ donburi.World, ev messages.GameEndedEvent) {
		as.ended = true
		as.result = ev
		as.linger = cfg.C.TickRate * 2
	})

	if cfg.Waves.StartOnLoad {
		systems.StartWaves(ecs.World)
	}
}
