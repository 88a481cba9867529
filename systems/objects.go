package systems

import (
	"math/rand"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/physics"
	"github.com/automoto/vacuumarena/tags"
	"github.com/yohamta/donburi"
)

// GetSpace returns the arena collision space, or nil before the arena is built.
func GetSpace(w donburi.World) *physics.Space {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// PlayerEntry returns the player, if one exists and is still valid.
func PlayerEntry(w donburi.World) (*donburi.Entry, bool) {
	entry, ok := tags.Player.First(w)
	if !ok || !entry.Valid() {
		return nil, false
	}
	return entry, true
}

// entryOf resolves e, skipping entities that were removed.
func entryOf(w donburi.World, e donburi.Entity) (*donburi.Entry, bool) {
	if e == donburi.Null || !w.Valid(e) {
		return nil, false
	}
	return w.Entry(e), true
}

// colliderOf returns the registered collider of an entry, if any.
func colliderOf(e *donburi.Entry) *physics.Collider {
	if e == nil || !e.HasComponent(components.Collider) {
		return nil
	}
	return components.Collider.Get(e).Collider
}

// EyePosition is the camera origin of a body.
func EyePosition(e *donburi.Entry) gamemath.Vec3 {
	tr := components.Transform.Get(e)
	return tr.Position.Add(gamemath.V3(0, cfg.Player.CameraHeight, 0))
}

// HoldPoint is where an owner parks vacuumed objects.
func HoldPoint(e *donburi.Entry) gamemath.Vec3 {
	tr := components.Transform.Get(e)
	forward, _, up := tr.Basis()
	return EyePosition(e).
		Add(forward.Scale(cfg.Player.HoldDistance)).
		Sub(up.Scale(cfg.Player.HoldDrop))
}

// moveEntry teleports an entry and its collider.
func moveEntry(w donburi.World, e *donburi.Entry, pos gamemath.Vec3) {
	components.Transform.Get(e).Position = pos
	if c := colliderOf(e); c != nil {
		if space := GetSpace(w); space != nil {
			space.Move(c, pos)
		} else {
			c.Center = pos
		}
	}
}

// removeEntry unregisters the collider and deletes the entity.
func removeEntry(w donburi.World, e *donburi.Entry) {
	if c := colliderOf(e); c != nil {
		if space := GetSpace(w); space != nil {
			space.Remove(c)
		}
	}
	w.Remove(e.Entity())
}

// worldRand is the seeded generator of the wave manager, so a run is
// reproducible from its seed.
func worldRand(w donburi.World) *rand.Rand {
	if entry, ok := components.WaveManager.First(w); ok {
		if r := components.WaveManager.Get(entry).Rand; r != nil {
			return r
		}
	}
	return rand.New(rand.NewSource(1))
}
