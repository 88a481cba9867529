package systems

import (
	"github.com/automoto/vacuumarena/components"
	"github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes tweens and hit flashes
func UpdateEffects(ecs *ecs.ECS) {
	dt := DeltaTime(ecs.World)
	updateTweens(ecs.World, dt)
	updateFlashEffects(ecs.World, dt)
}

// updateTweens writes every running tween's value into its transform.
func updateTweens(w donburi.World, dt float64) {
	if dt <= 0 {
		return
	}
	components.Tween.Each(w, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		if !tw.Running() {
			return
		}
		v, _ := tw.Step(dt)
		tr := components.Transform.Get(e)
		switch tw.Kind {
		case components.TweenScale:
			tr.Scale = tw.Origin.Scale(v)
		case components.TweenBob:
			pos := tr.Position
			pos.Y = tw.Origin.Y + v
			moveEntry(w, e, pos)
		}
	})
}

// updateFlashEffects counts flash timers down and removes expired flashes
func updateFlashEffects(w donburi.World, dt float64) {
	var expired []*donburi.Entry
	components.Flash.Each(w, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		flash.Timer -= dt
		if flash.Timer <= 0 {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		e.RemoveComponent(components.Flash)
	}
}

// TriggerFlash tints an entity for the configured flash duration.
func TriggerFlash(e *donburi.Entry, r, g, b float32) {
	if !e.Valid() {
		return
	}
	if !e.HasComponent(components.Flash) {
		e.AddComponent(components.Flash)
	}
	components.Flash.SetValue(e, components.FlashData{
		Timer: config.Camera.FlashDuration,
		R:     r,
		G:     g,
		B:     b,
	})
}

// OnEnemyDamagedFlash flashes the enemy that was hit.
func OnEnemyDamagedFlash(w donburi.World, ev messages.EnemyDamagedEvent) {
	if e, ok := entryOf(w, ev.Enemy); ok {
		TriggerFlash(e, 1, 1, 1)
	}
}

// OnPlayerDamagedShake shakes the debug camera when the player is hit.
func OnPlayerDamagedShake(w donburi.World, ev messages.PlayerDamagedEvent) {
	TriggerScreenShake(w, config.Camera.ShakeIntensity, config.Camera.ShakeDuration)
	if e, ok := PlayerEntry(w); ok {
		TriggerFlash(e, 1, 0.5, 0.5)
	}
}
