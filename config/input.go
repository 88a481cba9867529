package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionCrouch
	ActionSprint
	ActionVacuum
	ActionShoot
	ActionNextMode
	ActionPrevMode
	ActionPause
	ActionConfirm
	ActionCount // Must be last - used for array sizing
)

var actionNames = [...]string{
	ActionNone:     "none",
	ActionJump:     "jump",
	ActionCrouch:   "crouch",
	ActionSprint:   "sprint",
	ActionVacuum:   "vacuum",
	ActionShoot:    "shoot",
	ActionNextMode: "next_mode",
	ActionPrevMode: "prev_mode",
	ActionPause:    "pause",
	ActionConfirm:  "confirm",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputConfig holds device independent input tuning. Key bindings live with
// the windowed host since they need ebiten key codes.
type InputConfig struct {
	// Degrees of yaw/pitch per unit of look delta.
	LookSensitivity float64 `yaml:"lookSensitivity"`
	MaxPitch        float64 `yaml:"maxPitch"`
	// Deadzone for analog move input (0.0 to 1.0)
	AnalogDeadzone float64 `yaml:"analogDeadzone"`
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		LookSensitivity: 0.15,
		MaxPitch:        85,
		AnalogDeadzone:  0.25,
	}
}
