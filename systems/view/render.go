package view

import (
	"image/color"
	"math"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/physics"
	"github.com/automoto/vacuumarena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// projector maps arena metres onto the screen. The view looks straight
// down with +Z pointing up the screen.
type projector struct {
	camX, camZ float64
	cx, cy     float64
	ppm        float64
}

func newProjector(w donburi.World, screen *ebiten.Image) (projector, bool) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return projector{}, false
	}
	cam := components.Camera.Get(entry)
	b := screen.Bounds()
	return projector{
		camX: cam.Position.X + cam.Offset.X,
		camZ: cam.Position.Y + cam.Offset.Y,
		cx:   float64(b.Dx()) / 2,
		cy:   float64(b.Dy()) / 2,
		ppm:  cfg.C.PixelsPerMeter,
	}, true
}

func (p projector) point(v gamemath.Vec3) (float32, float32) {
	x := (v.X-p.camX)*p.ppm + p.cx
	y := -(v.Z-p.camZ)*p.ppm + p.cy
	return float32(x), float32(y)
}

func (p projector) length(m float64) float32 {
	return float32(m * p.ppm)
}

// DrawArena renders every collider of the arena from above.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	w := e.World
	proj, ok := newProjector(w, screen)
	if !ok {
		return
	}
	screen.Fill(colornames.Darkslategray)

	tags.Ground.Each(w, func(entry *donburi.Entry) {
		c := colornames.Dimgray
		if col := collider(entry); col != nil && col.Shape.Kind == physics.ShapeRamp {
			c = colornames.Slategray
		}
		drawCollider(screen, proj, entry, c)
	})
	tags.Wall.Each(w, func(entry *donburi.Entry) {
		drawCollider(screen, proj, entry, colornames.Lightgray)
	})
	tags.Pickup.Each(w, func(entry *donburi.Entry) {
		drawCollider(screen, proj, entry, colornames.Gold)
	})
	tags.Prop.Each(w, func(entry *donburi.Entry) {
		drawCollider(screen, proj, entry, propColor(components.VacuumedObject.Get(entry).State))
	})
	tags.Enemy.Each(w, func(entry *donburi.Entry) {
		c := color.RGBA(cfg.LightRed)
		if enemy := components.Enemy.Get(entry); enemy.TypeConfig != nil && enemy.TypeConfig.TintColor.A > 0 {
			c = enemy.TypeConfig.TintColor
		}
		if entry.HasComponent(components.Death) {
			c = colornames.Dimgray
		}
		drawCollider(screen, proj, entry, tint(entry, c))
	})
	tags.Player.Each(w, func(entry *donburi.Entry) {
		drawCollider(screen, proj, entry, tint(entry, colornames.Deepskyblue))
		drawFacing(screen, proj, entry)
	})
}

func collider(entry *donburi.Entry) *physics.Collider {
	if !entry.HasComponent(components.Collider) {
		return nil
	}
	return components.Collider.Get(entry).Collider
}

func drawCollider(screen *ebiten.Image, proj projector, entry *donburi.Entry, c color.RGBA) {
	col := collider(entry)
	if col == nil {
		return
	}
	x, y := proj.point(col.Center)
	switch col.Shape.Kind {
	case physics.ShapeSphere:
		vector.DrawFilledCircle(screen, x, y, proj.length(col.Shape.Radius), c, true)
	default:
		hw, hd := proj.length(col.Shape.Half.X), proj.length(col.Shape.Half.Z)
		if !col.Enabled {
			vector.StrokeRect(screen, x-hw, y-hd, hw*2, hd*2, 1, c, false)
			return
		}
		vector.DrawFilledRect(screen, x-hw, y-hd, hw*2, hd*2, c, false)
	}
}

// drawFacing draws a short line along the player's yaw.
func drawFacing(screen *ebiten.Image, proj projector, entry *donburi.Entry) {
	tr := components.Transform.Get(entry)
	x, y := proj.point(tr.Position)
	rad := tr.Yaw * math.Pi / 180
	tip := tr.Position.Add(gamemath.V3(math.Sin(rad), 0, math.Cos(rad)).Scale(1.2))
	tx, ty := proj.point(tip)
	vector.StrokeLine(screen, x, y, tx, ty, 2, colornames.White, true)
}

func propColor(s cfg.VacuumedState) color.RGBA {
	switch s {
	case cfg.VacuumedPulling:
		return colornames.Khaki
	case cfg.VacuumedHeld:
		return colornames.Orange
	case cfg.VacuumedLaunched:
		return colornames.Orangered
	}
	return colornames.Peru
}

// tint applies a hit flash, if one is running.
func tint(entry *donburi.Entry, c color.RGBA) color.RGBA {
	if !entry.HasComponent(components.Flash) {
		return c
	}
	f := components.Flash.Get(entry)
	return color.RGBA{
		R: uint8(math.Min(255, float64(c.R)*float64(f.R)+80)),
		G: uint8(float64(c.G) * float64(f.G)),
		B: uint8(float64(c.B) * float64(f.B)),
		A: c.A,
	}
}
