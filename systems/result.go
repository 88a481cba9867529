package systems

import (
	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ScreenInput returns the input buffer of a screen that has no player,
// creating it on first use.
func ScreenInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// CreateRunResult stores ev and the record for the result screen.
func CreateRunResult(w donburi.World, ev messages.GameEndedEvent, record RunRecord) *donburi.Entry {
	entry := w.Entry(w.Create(components.RunResult))
	components.RunResult.SetValue(entry, components.RunResultData{
		Result:    ev.Result,
		Wave:      ev.Wave,
		Score:     ev.Score,
		BestScore: record.BestScore,
		BestWave:  record.BestWave,
		Wins:      record.Wins,
		Losses:    record.Losses,
	})
	return entry
}

// NewUpdateResult creates the result screen system. restart runs once the
// player confirms.
func NewUpdateResult(restart func()) ecs.System {
	return func(e *ecs.ECS) {
		if GetAction(ScreenInput(e.World), cfg.ActionConfirm).JustPressed {
			restart()
		}
	}
}
