package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in metres
	Duration  float64 // seconds
	Elapsed   float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tints an entity in the debug view after it was hit
type FlashData struct {
	Timer   float64 // seconds remaining
	R, G, B float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()
