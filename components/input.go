package components

import (
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	// Move: X strafes right, Y walks forward, each in [-1, 1]
	Move math.Vec2
	// Look delta for this frame, in raw device units
	Look math.Vec2
}

// Roll starts a new frame: current becomes previous and everything is released.
func (in *InputData) Roll() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.Move = math.Vec2{}
	in.Look = math.Vec2{}
}

func (in *InputData) Action(action cfg.ActionID) ActionState {
	if action < 0 || action >= cfg.ActionCount {
		return ActionState{}
	}
	cur, prev := in.Current[action], in.Previous[action]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

// HasMoveInput reports whether either move axis is non-zero.
func (in *InputData) HasMoveInput() bool {
	return in.Move.X != 0 || in.Move.Y != 0
}

var Input = donburi.NewComponentType[InputData]()
