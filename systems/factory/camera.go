package factory

import (
	"github.com/automoto/vacuumarena/archetypes"
	"github.com/automoto/vacuumarena/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera adds the debug view camera, starting over pos (XZ).
func CreateCamera(ecs *ecs.ECS, pos math.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: pos})
	return camera
}
