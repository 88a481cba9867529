package view

import (
	"fmt"
	"image/color"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/fonts"
	"github.com/automoto/vacuumarena/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
	hudLine      = 18
)

// DrawHUD renders the player's status in the top-left corner, the wave and
// style panels on the right and a countdown in the middle.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	w := e.World
	if player, ok := systems.PlayerEntry(w); ok {
		hp := components.Health.Get(player)
		drawBar(screen, hudMargin, hudMargin, hp.Percent(), color.RGBA{40, 220, 40, 255})

		gun := components.VacuumGun.Get(player)
		m := components.Movement.Get(player)
		y := float64(hudMargin + hudBarHeight + 6)
		drawText(screen, fmt.Sprintf("Ammo %d/%d  %s", gun.HeldCount(), gun.MaxObjects, gun.Mode), hudMargin, y, cfg.White, text.AlignStart)
		drawText(screen, m.State.String(), hudMargin, y+hudLine, cfg.White, text.AlignStart)
	}

	right := float64(screen.Bounds().Dx() - hudMargin)
	if entry, ok := components.WaveManager.First(w); ok {
		wm := components.WaveManager.Get(entry)
		drawText(screen, fmt.Sprintf("Wave %d/%d", wm.WaveNumber(), wm.TotalWaves()), right, hudMargin, cfg.White, text.AlignEnd)
		drawText(screen, fmt.Sprintf("Enemies %d", wm.ActiveCount()), right, hudMargin+hudLine, cfg.White, text.AlignEnd)
		if countingDown(wm.Phase) && wm.CountdownLeft > 0 {
			cx := float64(screen.Bounds().Dx()) / 2
			drawTitle(screen, fmt.Sprintf("%d", wm.CountdownLeft), cx, float64(screen.Bounds().Dy())/3, cfg.Orange)
		}
	}
	if entry, ok := components.Style.First(w); ok {
		s := components.Style.Get(entry)
		rank := s.CurrentRank()
		y := float64(hudMargin + hudLine*2 + 6)
		drawText(screen, fmt.Sprintf("%s x%.1f", rank.Name, rank.Multiplier), right, y, cfg.Purple, text.AlignEnd)
		drawBar(screen, float32(right-hudBarWidth), float32(y+hudLine), s.Meter, cfg.Purple)
		drawText(screen, fmt.Sprintf("Score %.0f", s.TotalScore), right, y+hudLine+hudBarHeight+4, cfg.White, text.AlignEnd)
	}

	if systems.IsPaused(w) {
		drawPauseOverlay(screen)
	}
}

func countingDown(p cfg.WavePhase) bool {
	return p == cfg.WavePhaseCountdownBefore || p == cfg.WavePhaseCountdownBetween
}

func drawBar(screen *ebiten.Image, x, y float32, ratio float64, fill color.RGBA) {
	vector.DrawFilledRect(screen, x, y, hudBarWidth, hudBarHeight, color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen, x, y, hudBarWidth*float32(ratio), hudBarHeight, fill, false)
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(screen, s, fonts.Regular.Get(), op)
}

func drawTitle(screen *ebiten.Image, s string, cx, cy float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, fonts.Title.Get(), op)
}

func drawPauseOverlay(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), cfg.BlackOverlay, false)
	drawTitle(screen, "PAUSED", float64(b.Dx())/2, float64(b.Dy())/2, cfg.White)
}
