package systems

import (
	"testing"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/leveldata"
	"github.com/automoto/vacuumarena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds a flat 60x60 metre arena with a clock and no
// systems registered.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e)
	factory.CreateSpace(e, gamemath.V3(-30, 0, -30), gamemath.V3(30, 0, 30))
	factory.CreateGround(e, leveldata.Block{Center: gamemath.V3(0, -0.5, 0), Half: gamemath.V3(30, 0.5, 30)})
	return e
}

// standingPlayer creates a player on the ground at x, z looking along +Z.
func standingPlayer(e *ecs.ECS, x, z float64) *donburi.Entry {
	return factory.CreatePlayer(e, gamemath.V3(x, 0.925, z), 0)
}

// propsAhead lines up n props at eye height in front of owner, one metre
// apart starting at dist.
func propsAhead(e *ecs.ECS, owner *donburi.Entry, n int, dist float64) []*donburi.Entry {
	eye := EyePosition(owner)
	props := make([]*donburi.Entry, n)
	for i := range props {
		props[i] = factory.CreateProp(e, eye.Add(gamemath.V3(0, 0, dist+float64(i))), 0.5, 1)
	}
	return props
}

// press starts a new input frame with the given actions held.
func press(in *components.InputData, actions ...cfg.ActionID) {
	in.Roll()
	for _, a := range actions {
		in.Current[a] = true
	}
}
