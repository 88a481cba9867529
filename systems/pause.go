package systems

import (
	"log"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PauseSourceMenu is the pause source toggled by the pause action.
const PauseSourceMenu = "menu"

// GetOrCreateClock returns the singleton clock, creating it with the
// configured step if needed. Pause sources live on the same entity.
func GetOrCreateClock(w donburi.World) (*components.ClockData, *components.PauseData) {
	entry, ok := components.Clock.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Clock, components.Pause))
		components.Clock.SetValue(entry, components.ClockData{
			FixedDelta: cfg.Time.FixedDelta,
			TimeScale:  cfg.Time.TimeScale,
		})
	}
	return components.Clock.Get(entry), components.Pause.Get(entry)
}

// DeltaTime is the scaled step of the current tick, 0 while paused.
func DeltaTime(w donburi.World) float64 {
	clock, pause := GetOrCreateClock(w)
	if pause.IsPaused() {
		return 0
	}
	return clock.Delta()
}

// SetTimeScale changes the simulation speed. Negative scales are clamped to 0.
func SetTimeScale(w donburi.World, scale float64) {
	clock, _ := GetOrCreateClock(w)
	if scale < 0 {
		scale = 0
	}
	clock.TimeScale = scale
}

// IsPaused reports whether any pause source is registered.
func IsPaused(w donburi.World) bool {
	_, pause := GetOrCreateClock(w)
	return pause.IsPaused()
}

// Pause registers a pause source. Registering a source twice is logged
// and changes nothing.
func Pause(w donburi.World, source string, t cfg.PauseType) {
	_, pause := GetOrCreateClock(w)
	if err := pause.Pause(source, t); err != nil {
		log.Printf("Error: pause: %v", err)
		return
	}
	messages.Paused.Publish(w, messages.PausedEvent{Type: pause.Type()})
}

// Resume unregisters a pause source. Unknown sources are logged.
func Resume(w donburi.World, source string) {
	_, pause := GetOrCreateClock(w)
	if err := pause.Resume(source); err != nil {
		log.Printf("Error: resume: %v", err)
		return
	}
	if pause.IsPaused() {
		messages.Paused.Publish(w, messages.PausedEvent{Type: pause.Type()})
		return
	}
	messages.Resumed.Publish(w, messages.ResumedEvent{})
}

// UpdatePause toggles the menu pause source on the pause action.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	entry, ok := PlayerEntry(ecs.World)
	if !ok || !entry.HasComponent(components.Input) {
		return
	}
	input := components.Input.Get(entry)
	if !GetAction(input, cfg.ActionPause).JustPressed {
		return
	}

	_, pause := GetOrCreateClock(ecs.World)
	if pause.Has(PauseSourceMenu) {
		Resume(ecs.World, PauseSourceMenu)
	} else {
		Pause(ecs.World, PauseSourceMenu, cfg.PauseMenu)
	}
}

// UpdateClock advances the simulation clock.
func UpdateClock(ecs *ecs.ECS) {
	clock, _ := GetOrCreateClock(ecs.World)
	clock.Tick++
	clock.Elapsed += clock.Delta()
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e.World) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}
