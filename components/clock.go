package components

import "github.com/yohamta/donburi"

// ClockData is the simulation clock. Every gameplay tick advances the
// world by FixedDelta scaled by TimeScale.
type ClockData struct {
	FixedDelta float64
	TimeScale  float64
	Tick       int64
	Elapsed    float64
}

// Delta is the scaled step length.
func (c *ClockData) Delta() float64 {
	return c.FixedDelta * c.TimeScale
}

var Clock = donburi.NewComponentType[ClockData]()
