package systems

import (
	"github.com/automoto/vacuumarena/components"
	"github.com/automoto/vacuumarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts down the despawn timers and removes dead enemies
// once theirs runs out. A dead player stays in the world for the result
// screen.
func UpdateDeaths(ecs *ecs.ECS) {
	w := ecs.World
	dt := DeltaTime(w)

	var expired []*donburi.Entry
	components.Death.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Player) {
			return
		}
		death := components.Death.Get(e)
		death.Timer -= dt
		if death.Timer <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		if e.HasComponent(tags.Enemy) {
			removeEnemy(w, e)
			continue
		}
		removeEntry(w, e)
	}
}

// removeEnemy deletes an enemy together with its head hit zone.
func removeEnemy(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	deregisterEnemy(w, e.Entity())
	if head, ok := entryOf(w, components.Enemy.Get(e).Head); ok {
		removeEntry(w, head)
	}
	removeEntry(w, e)
}
