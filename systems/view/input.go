package view

import (
	"math"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// ActionBinding maps a logical action to physical inputs
type ActionBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings is the windowed host's control layout.
var Bindings = map[cfg.ActionID]ActionBinding{
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionCrouch: {
		Keys:                   []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyC},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
	cfg.ActionSprint: {
		Keys:                   []ebiten.Key{ebiten.KeyShiftLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftStick},
	},
	cfg.ActionVacuum: {
		Keys:                   []ebiten.Key{ebiten.KeyE},
		MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonRight},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomLeft},
	},
	cfg.ActionShoot: {
		Keys:                   []ebiten.Key{ebiten.KeyF},
		MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
	},
	cfg.ActionNextMode: {
		Keys:                   []ebiten.Key{ebiten.Key2},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
	},
	cfg.ActionPrevMode: {
		Keys:                   []ebiten.Key{ebiten.Key1},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
	},
	cfg.ActionPause: {
		Keys:                   []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionConfirm: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
}

// Degrees of look per unit of right stick deflection per tick
const stickLookScale = 20

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

var (
	lastCursorX, lastCursorY int
	cursorTracked            bool
)

// UpdateInput polls the keyboard, mouse and gamepads into the player's
// InputData, or into the screen's own buffer when there is no player.
// Scripted players (with a Bot component) are skipped.
// Must run BEFORE any gameplay system in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input, ok := deviceInput(ecs)
	if !ok {
		return
	}
	input.Roll()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Mouse wheel cycles shoot modes
	if _, dy := ebiten.Wheel(); dy > 0 {
		input.Current[cfg.ActionNextMode] = true
	} else if dy < 0 {
		input.Current[cfg.ActionPrevMode] = true
	}

	input.Move = keyboardMove()
	input.Look = mouseLook()

	stickMove, stickLook := analogSticks(gamepadIDs)
	if input.Move.X == 0 && input.Move.Y == 0 {
		input.Move = stickMove
	}
	input.Look = input.Look.Add(stickLook)
}

func keyboardMove() dmath.Vec2 {
	var v dmath.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.X--
	}
	return v
}

// mouseLook returns the cursor delta since the last tick. The first tick
// only records the position.
func mouseLook() dmath.Vec2 {
	x, y := ebiten.CursorPosition()
	if !cursorTracked {
		lastCursorX, lastCursorY, cursorTracked = x, y, true
		return dmath.Vec2{}
	}
	d := dmath.Vec2{X: float64(x - lastCursorX), Y: float64(y - lastCursorY)}
	lastCursorX, lastCursorY = x, y
	return d
}

// analogSticks reads the first gamepad whose sticks leave the deadzone.
func analogSticks(gamepads []ebiten.GamepadID) (move, look dmath.Vec2) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		lx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		rx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)

		if math.Hypot(lx, ly) > deadzone {
			// Stick up is negative
			move = dmath.Vec2{X: lx, Y: -ly}
		}
		if math.Hypot(rx, ry) > deadzone {
			look = dmath.Vec2{X: rx * stickLookScale, Y: ry * stickLookScale}
		}
		if move.X != 0 || move.Y != 0 || look.X != 0 || look.Y != 0 {
			return move, look
		}
	}
	return move, look
}

func deviceInput(ecs *ecs.ECS) (*components.InputData, bool) {
	entry, ok := systems.PlayerEntry(ecs.World)
	if !ok {
		return systems.ScreenInput(ecs.World), true
	}
	if !entry.HasComponent(components.Input) || entry.HasComponent(components.Bot) {
		return nil, false
	}
	return components.Input.Get(entry), true
}
