package systems

import (
	"math"

	"github.com/automoto/vacuumarena/components"
	"github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera turns the player's look input into yaw and pitch, then
// moves the debug view camera after the player.
func UpdateCamera(e *ecs.ECS) {
	playerEntry, ok := PlayerEntry(e.World)
	if !ok {
		return
	}
	if playerEntry.HasComponent(components.Input) {
		ApplyLook(components.Transform.Get(playerEntry), components.Input.Get(playerEntry))
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	pos := components.Transform.Get(playerEntry).Position

	camera.Position.X += (pos.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (pos.Z - camera.Position.Y) * config.Camera.FollowSmoothing

	updateScreenShake(cameraEntry, camera, DeltaTime(e.World))
}

// ApplyLook rotates a transform by one tick of look input. Pitch is clamped
// and yaw is kept in [0, 360).
func ApplyLook(tr *components.TransformData, input *components.InputData) {
	sens := config.Input.LookSensitivity
	tr.Yaw = math.Mod(tr.Yaw+input.Look.X*sens, 360)
	if tr.Yaw < 0 {
		tr.Yaw += 360
	}
	tr.Pitch = gamemath.Clamp(tr.Pitch-input.Look.Y*sens, -config.Input.MaxPitch, config.Input.MaxPitch)
}

// updateScreenShake applies screen shake offset to camera and advances it
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData, dt float64) {
	camera.Offset.X, camera.Offset.Y = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed += dt

	// Calculate decaying intensity
	progress := 0.0
	if shake.Duration > 0 {
		progress = gamemath.Clamp01((shake.Duration - shake.Elapsed) / shake.Duration)
	}
	current := shake.Intensity * progress

	// Oscillate on the elapsed time so the shake is frame rate independent
	camera.Offset.X = math.Sin(shake.Elapsed*66) * current
	camera.Offset.Y = math.Cos(shake.Elapsed*78) * current

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(w donburi.World, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
		})
	}
}
