package components

import (
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Spawn gamemath.Vec3
	// Seconds of invulnerability left after being hit
	InvulnTimer float64
}

var Player = donburi.NewComponentType[PlayerData]()
