package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/messages"
	"github.com/automoto/vacuumarena/systems"
	"github.com/automoto/vacuumarena/systems/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResultScene shows how the run ended next to the stored best record.
type ResultScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	watcher      *cfg.Watcher
	result       messages.GameEndedEvent
	once         sync.Once
}

func NewResultScene(sc SceneChanger, watcher *cfg.Watcher, result messages.GameEndedEvent) *ResultScene {
	return &ResultScene{sceneChanger: sc, watcher: watcher, result: result}
}

func (rs *ResultScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
}

func (rs *ResultScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *ResultScene) configure() {
	rs.ecs = ecs.NewECS(donburi.NewWorld())

	restart := func() {
		rs.sceneChanger.ChangeScene(NewArenaScene(rs.sceneChanger, rs.watcher))
	}

	rs.ecs.AddSystem(view.UpdateInput)
	rs.ecs.AddSystem(systems.NewUpdateResult(restart))

	rs.ecs.AddRenderer(cfg.Default, view.DrawResult)

	systems.CreateRunResult(rs.ecs.World, rs.result, systems.LoadRecord())
}
