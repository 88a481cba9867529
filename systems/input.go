package systems

import (
	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
)

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	if input == nil {
		return components.ActionState{}
	}
	return input.Action(id)
}
