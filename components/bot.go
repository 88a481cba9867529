package components

import (
	"github.com/automoto/vacuumarena/config"
	"github.com/yohamta/donburi"
)

// BotGoal is what the scripted player is currently doing.
type BotGoal int

const (
	BotGoalLoad  BotGoal = iota // vacuum props until LoadTarget is held
	BotGoalFight                // close in on an enemy and shoot
)

// BotData drives the player entity from a script instead of a device.
type BotData struct {
	Difficulty config.BotDifficulty
	Goal       BotGoal
	Target     donburi.Entity

	TicksUntilDecision int
	Strafe             float64
	AimJitter          float64
}

var Bot = donburi.NewComponentType[BotData]()
