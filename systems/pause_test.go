package systems

import (
	"testing"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/messages"
	"github.com/yohamta/donburi"
)

func TestPauseFreezesTime(t *testing.T) {
	e := newTestECS(t)
	w := e.World

	var paused, resumed int
	messages.Paused.Subscribe(w, func(donburi.World, messages.PausedEvent) { paused++ })
	messages.Resumed.Subscribe(w, func(donburi.World, messages.ResumedEvent) { resumed++ })

	Pause(w, PauseSourceMenu, cfg.PauseMenu)
	Pause(w, PauseSourceMenu, cfg.PauseMenu)
	Pause(w, "upgrade", cfg.PauseUpgrade)
	if DeltaTime(w) != 0 {
		t.Error("time moves while paused")
	}

	Resume(w, PauseSourceMenu)
	if !IsPaused(w) {
		t.Error("resumed while another source is still registered")
	}
	Resume(w, "upgrade")
	Resume(w, "upgrade")
	ProcessEvents(e)

	if paused != 3 || resumed != 1 {
		t.Errorf("paused %d resumed %d, want 3 and 1", paused, resumed)
	}
	if DeltaTime(w) != cfg.Time.FixedDelta*cfg.Time.TimeScale {
		t.Errorf("DeltaTime = %v after resume", DeltaTime(w))
	}
}

func TestPauseActionToggles(t *testing.T) {
	e := newTestECS(t)
	player := standingPlayer(e, 0, 0)
	e.AddSystem(UpdatePause)
	in := components.Input.Get(player)

	press(in, cfg.ActionPause)
	e.Update()
	if !IsPaused(e.World) {
		t.Fatal("pause action did not pause")
	}
	press(in)
	e.Update()
	if !IsPaused(e.World) {
		t.Fatal("releasing the action resumed")
	}
	press(in, cfg.ActionPause)
	e.Update()
	if IsPaused(e.World) {
		t.Error("second press did not resume")
	}
}

func TestSetTimeScale(t *testing.T) {
	e := newTestECS(t)
	SetTimeScale(e.World, -2)
	if DeltaTime(e.World) != 0 {
		t.Errorf("negative scale gave DeltaTime %v, want 0", DeltaTime(e.World))
	}
	SetTimeScale(e.World, 2)
	if DeltaTime(e.World) != 2*cfg.Time.FixedDelta {
		t.Errorf("DeltaTime = %v, want %v", DeltaTime(e.World), 2*cfg.Time.FixedDelta)
	}
}
