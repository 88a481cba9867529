package config

// MovementState is the locomotion mode resolved by the movement state machine.
// Exactly one is active per tick.
type MovementState int

const (
	Freeze MovementState = iota
	Unlimited
	Walking
	Sprinting
	WallRunning
	Climbing
	Vaulting
	Crouching
	Sliding
	Air
)

var movementStateNames = [...]string{
	Freeze:      "Freeze",
	Unlimited:   "Unlimited",
	Walking:     "Walking",
	Sprinting:   "Sprinting",
	WallRunning: "WallRunning",
	Climbing:    "Climbing",
	Vaulting:    "Vaulting",
	Crouching:   "Crouching",
	Sliding:     "Sliding",
	Air:         "Air",
}

func (s MovementState) String() string {
	if s < 0 || int(s) >= len(movementStateNames) {
		return "Unknown"
	}
	return movementStateNames[s]
}

// ShootMode selects how the vacuum gun empties its magazine.
type ShootMode int

const (
	ShootSingle ShootMode = iota
	ShootSpread
	shootModeCount
)

func (m ShootMode) String() string {
	switch m {
	case ShootSingle:
		return "Single"
	case ShootSpread:
		return "Spread"
	}
	return "Unknown"
}

// Next cycles forward through the shoot modes.
func (m ShootMode) Next() ShootMode {
	return (m + 1) % shootModeCount
}

// Prev cycles backward through the shoot modes.
func (m ShootMode) Prev() ShootMode {
	return (m - 1 + shootModeCount) % shootModeCount
}

// VacuumedState is the lifecycle of a single vacuumable body.
type VacuumedState int

const (
	VacuumedFree VacuumedState = iota
	VacuumedPulling
	VacuumedHeld
	VacuumedLaunched
)

func (s VacuumedState) String() string {
	switch s {
	case VacuumedFree:
		return "Free"
	case VacuumedPulling:
		return "Vacuuming"
	case VacuumedHeld:
		return "Held"
	case VacuumedLaunched:
		return "Launched"
	}
	return "Unknown"
}

// WavePhase is the current step of the wave sequence.
type WavePhase int

const (
	WavePhaseIdle WavePhase = iota
	WavePhaseStarting
	WavePhaseCountdownBefore
	WavePhaseSpawning
	WavePhaseWaitingForClear
	WavePhaseCountdownBetween
	WavePhaseFinished
)

var wavePhaseNames = [...]string{
	WavePhaseIdle:             "Idle",
	WavePhaseStarting:         "Starting",
	WavePhaseCountdownBefore:  "CountdownBefore",
	WavePhaseSpawning:         "Spawning",
	WavePhaseWaitingForClear:  "WaitingForClear",
	WavePhaseCountdownBetween: "CountdownBetween",
	WavePhaseFinished:         "Finished",
}

func (p WavePhase) String() string {
	if p < 0 || int(p) >= len(wavePhaseNames) {
		return "Unknown"
	}
	return wavePhaseNames[p]
}

// GameResult is reported when the wave sequence ends.
type GameResult int

const (
	ResultNone GameResult = iota
	ResultWin
	ResultDefeat
)

func (r GameResult) String() string {
	switch r {
	case ResultWin:
		return "Win"
	case ResultDefeat:
		return "Defeat"
	}
	return "None"
}

// MusicState drives calm vs battle music in whatever host listens for it.
type MusicState int

const (
	MusicCalm MusicState = iota
	MusicBattle
)

// PauseType orders pause sources. Higher wins when several are active.
type PauseType int

const (
	PauseUnknown PauseType = iota
	PauseMeta
	PauseUpgrade
	PauseMenu
)

func (p PauseType) String() string {
	switch p {
	case PauseMeta:
		return "Meta"
	case PauseUpgrade:
		return "Upgrade"
	case PauseMenu:
		return "Menu"
	}
	return "Unknown"
}

// EnemyKind selects which spawn point list an enemy archetype uses.
type EnemyKind int

const (
	EnemyGround EnemyKind = iota
	EnemyFlying
)

func (k EnemyKind) String() string {
	if k == EnemyFlying {
		return "Flying"
	}
	return "Ground"
}

// UpgradeType is the effect of an upgrade pickup.
type UpgradeType int

const (
	UpgradeHeal UpgradeType = iota
	UpgradeClipCapacity
	UpgradeDamage
	UpgradeShootForce
	UpgradeShootInterval
	UpgradeRange
	UpgradeRadius
)

func (u UpgradeType) String() string {
	switch u {
	case UpgradeHeal:
		return "Heal"
	case UpgradeClipCapacity:
		return "ClipCapacity"
	case UpgradeDamage:
		return "Damage"
	case UpgradeShootForce:
		return "ShootForce"
	case UpgradeShootInterval:
		return "ShootInterval"
	case UpgradeRange:
		return "Range"
	case UpgradeRadius:
		return "Radius"
	}
	return "Unknown"
}
