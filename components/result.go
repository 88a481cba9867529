package components

import (
	"github.com/automoto/vacuumarena/config"
	"github.com/yohamta/donburi"
)

// RunResultData is the finished run shown on the result screen, next to
// the stored record.
type RunResultData struct {
	Result config.GameResult
	Wave   int
	Score  float64

	BestScore float64
	BestWave  int
	Wins      int
	Losses    int
}

var RunResult = donburi.NewComponentType[RunResultData]()
