package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Ground  = donburi.NewTag().SetName("Ground")
	Wall    = donburi.NewTag().SetName("Wall")
	Enemy   = donburi.NewTag().SetName("Enemy")
	Hitzone = donburi.NewTag().SetName("Hitzone")
	Prop    = donburi.NewTag().SetName("Prop")
	Pickup  = donburi.NewTag().SetName("Pickup")
)
