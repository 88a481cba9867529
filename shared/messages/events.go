// Package messages declares the gameplay notifications published on the
// per-world donburi event queues. Publishers never wait on subscribers;
// queues are flushed once per tick by systems.ProcessEvents.
package messages

import (
	"github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// WaveStartedEvent is published when a wave's spawn phase begins
type WaveStartedEvent struct {
	Wave  int // 1-based
	Total int
}

// WaveCompletedEvent is published once every enemy of a wave is gone
type WaveCompletedEvent struct {
	Wave int
}

// CountdownEvent carries the whole seconds left before the next phase
type CountdownEvent struct {
	Remaining int
}

type MusicStateChangedEvent struct {
	State config.MusicState
}

// GameEndedEvent is published exactly once per run
type GameEndedEvent struct {
	Result config.GameResult
	Wave   int
	Score  float64
}

type EnemySpawnedEvent struct {
	Enemy    donburi.Entity
	TypeName string
	Position gamemath.Vec3
}

type EnemyDamagedEvent struct {
	Enemy  donburi.Entity
	Amount float64
	Left   float64
}

type EnemyDiedEvent struct {
	Enemy    donburi.Entity
	TypeName string
}

type PlayerDamagedEvent struct {
	Amount float64
	Left   float64
}

type PlayerDiedEvent struct{}

type PlayerJumpedEvent struct{}

type SlidePerformedEvent struct{}

type VacuumStartedEvent struct{}

type VacuumStoppedEvent struct{}

// VacuumSuccessEvent is published when a pulled object enters the magazine
type VacuumSuccessEvent struct {
	Object donburi.Entity
}

// VacuumedObjectsChangedEvent reports the magazine fill level
type VacuumedObjectsChangedEvent struct {
	Count int
	Max   int
}

// ShootEvent is published once per shot or once per spread volley
type ShootEvent struct {
	Mode  config.ShootMode
	Count int
}

type EmptyMagazineEvent struct{}

type ShootModeChangedEvent struct {
	Mode config.ShootMode
}

type StylePointsAddedEvent struct {
	Points      float64
	TotalPoints float64
}

type StyleRankChangedEvent struct {
	Rank       int
	Name       string
	Multiplier float64
}

type StyleScoreChangedEvent struct {
	Score float64
}

type StyleMeterChangedEvent struct {
	Meter float64
	Rank  int
}

type UpgradePickedUpEvent struct {
	Type   config.UpgradeType
	Amount float64
}

type PausedEvent struct {
	Type config.PauseType
}

type ResumedEvent struct{}

var (
	WaveStarted       = events.NewEventType[WaveStartedEvent]()
	WaveCompleted     = events.NewEventType[WaveCompletedEvent]()
	Countdown         = events.NewEventType[CountdownEvent]()
	MusicStateChanged = events.NewEventType[MusicStateChangedEvent]()
	GameEnded         = events.NewEventType[GameEndedEvent]()

	EnemySpawned   = events.NewEventType[EnemySpawnedEvent]()
	EnemyDamaged   = events.NewEventType[EnemyDamagedEvent]()
	EnemyDied      = events.NewEventType[EnemyDiedEvent]()
	PlayerDamaged  = events.NewEventType[PlayerDamagedEvent]()
	PlayerDied     = events.NewEventType[PlayerDiedEvent]()
	PlayerJumped   = events.NewEventType[PlayerJumpedEvent]()
	SlidePerformed = events.NewEventType[SlidePerformedEvent]()

	VacuumStarted          = events.NewEventType[VacuumStartedEvent]()
	VacuumStopped          = events.NewEventType[VacuumStoppedEvent]()
	VacuumSuccess          = events.NewEventType[VacuumSuccessEvent]()
	VacuumedObjectsChanged = events.NewEventType[VacuumedObjectsChangedEvent]()

	Shoot            = events.NewEventType[ShootEvent]()
	EmptyMagazine    = events.NewEventType[EmptyMagazineEvent]()
	ShootModeChanged = events.NewEventType[ShootModeChangedEvent]()

	StylePointsAdded  = events.NewEventType[StylePointsAddedEvent]()
	StyleRankChanged  = events.NewEventType[StyleRankChangedEvent]()
	StyleScoreChanged = events.NewEventType[StyleScoreChangedEvent]()
	StyleMeterChanged = events.NewEventType[StyleMeterChangedEvent]()

	UpgradePickedUp = events.NewEventType[UpgradePickedUpEvent]()
	Paused          = events.NewEventType[PausedEvent]()
	Resumed         = events.NewEventType[ResumedEvent]()
)
