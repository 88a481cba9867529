package view

import (
	"fmt"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawResult renders the finished run and the stored record.
func DrawResult(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.RunResult.First(ecs.World)
	if !ok {
		return
	}
	r := components.RunResult.Get(entry)

	cx := float64(screen.Bounds().Dx()) / 2
	y := float64(screen.Bounds().Dy()) / 3

	title, c := "DEFEAT", cfg.LightRed
	if r.Result == cfg.ResultWin {
		title, c = "VICTORY", cfg.Orange
	}
	drawTitle(screen, title, cx, y, c)

	lines := []string{
		fmt.Sprintf("Wave %d", r.Wave),
		fmt.Sprintf("Score %.0f", r.Score),
		fmt.Sprintf("Best %.0f  (wave %d)", r.BestScore, r.BestWave),
		fmt.Sprintf("Wins %d  Losses %d", r.Wins, r.Losses),
		"",
		"Press Enter to play again",
	}
	for i, line := range lines {
		drawText(screen, line, cx, y+60+float64(i)*22, cfg.White, text.AlignCenter)
	}
}
