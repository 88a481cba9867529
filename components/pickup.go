package components

import (
	"github.com/automoto/vacuumarena/config"
	"github.com/yohamta/donburi"
)

// PickupData is an upgrade waiting to be collected. Taken guards against a
// second application before the entity is removed.
type PickupData struct {
	Type   config.UpgradeType
	Amount float64
	Taken  bool
}

var Pickup = donburi.NewComponentType[PickupData]()
