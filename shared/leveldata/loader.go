package leveldata

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/physics"
	"github.com/lafriks/go-tiled"
)

// DefaultPixelsPerMeter applies when the map has no pixelsPerMeter property.
const DefaultPixelsPerMeter = 16

// Object group names read from the arena file.
const (
	GroupGround        = "Ground"
	GroupRamps         = "Ramps"
	GroupWalls         = "Walls"
	GroupPlayerSpawn   = "PlayerSpawn"
	GroupGroundSpawns  = "GroundSpawns"
	GroupFlyingSpawns  = "FlyingSpawns"
	GroupProps         = "Props"
	GroupPropZones     = "PropZones"
	GroupUpgradeSpawns = "UpgradeSpawns"
)

// LoadArena parses a TMX file into an Arena. It takes an fs.FS so callers
// can pass embed.FS (client) or os.DirFS (server).
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	ppm := float64(DefaultPixelsPerMeter)
	if levelMap.Properties != nil {
		if v := levelMap.Properties.GetFloat("pixelsPerMeter"); v > 0 {
			ppm = v
		}
	}

	a := &Arena{
		Name:           strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		PixelsPerMeter: ppm,
		Width:          float64(levelMap.Width*levelMap.TileWidth) / ppm,
		Depth:          float64(levelMap.Height*levelMap.TileHeight) / ppm,
	}
	p := parser{ppm: ppm}

	seen := make(map[string]bool)
	for _, og := range levelMap.ObjectGroups {
		seen[og.Name] = true
		for _, o := range og.Objects {
			switch og.Name {
			case GroupGround:
				top := p.float(o, "top", 0)
				thick := p.float(o, "thickness", 1)
				a.Ground = append(a.Ground, p.block(o, top-thick, top))
			case GroupWalls:
				bottom := p.float(o, "bottom", 0)
				a.Walls = append(a.Walls, p.block(o, bottom, bottom+p.float(o, "height", 4)))
			case GroupRamps:
				bottom := p.float(o, "bottom", 0)
				rise, ok := physics.ParseRampRise(p.str(o, "rise", "east"))
				if !ok {
					return nil, fmt.Errorf("%s: ramp %d has unknown rise %q", tmxPath, o.ID, p.str(o, "rise", ""))
				}
				a.Ramps = append(a.Ramps, Ramp{
					Block: p.block(o, bottom, bottom+p.float(o, "height", 1)),
					Rise:  rise,
				})
			case GroupPlayerSpawn:
				a.PlayerSpawn = Spawn{
					Position: p.point(o, p.float(o, "elevation", 1)),
					Yaw:      p.float(o, "yaw", 0),
				}
			case GroupGroundSpawns:
				a.GroundSpawns = append(a.GroundSpawns, p.point(o, p.float(o, "elevation", 1)))
			case GroupFlyingSpawns:
				a.FlyingSpawns = append(a.FlyingSpawns, p.point(o, p.float(o, "altitude", 3)))
			case GroupUpgradeSpawns:
				a.UpgradeSpawns = append(a.UpgradeSpawns, p.point(o, p.float(o, "elevation", 0.75)))
			case GroupProps:
				a.Props = append(a.Props, Prop{
					Position: p.point(o, p.float(o, "elevation", 0.5)),
					Size:     p.float(o, "size", 0),
					Mass:     p.float(o, "mass", 0),
				})
			case GroupPropZones:
				radius := p.float(o, "radius", 0)
				if radius <= 0 {
					radius = o.Width / 2 / ppm
				}
				a.PropZones = append(a.PropZones, PropZone{
					Center:     p.center(o, p.float(o, "elevation", 0.5)),
					Radius:     radius,
					Count:      int(p.float(o, "count", 5)),
					MinSpacing: p.float(o, "spacing", 0.5),
					Size:       p.float(o, "size", 0),
					Mass:       p.float(o, "mass", 0),
				})
			}
		}
	}

	for _, name := range []string{GroupGround, GroupPlayerSpawn} {
		if !seen[name] {
			log.Printf("Warning: arena %s has no %s object group", tmxPath, name)
		}
	}

	// Stable order regardless of editor object ids
	sortPoints(a.GroundSpawns)
	sortPoints(a.FlyingSpawns)
	sortPoints(a.UpgradeSpawns)

	return a, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name, plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		a, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[a.Name] = a
		names = append(names, a.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}

type parser struct {
	ppm float64
}

func (p parser) str(o *tiled.Object, name, def string) string {
	if v := o.Properties.GetString(name); v != "" {
		return v
	}
	return def
}

// float reads a numeric property in metres (or plain units), falling back
// to def when it is missing or malformed.
func (p parser) float(o *tiled.Object, name string, def float64) float64 {
	s := o.Properties.GetString(name)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("Warning: object %d property %s=%q is not a number", o.ID, name, s)
		return def
	}
	return v
}

// point maps a point object to world space at height y.
func (p parser) point(o *tiled.Object, y float64) gamemath.Vec3 {
	return gamemath.V3(o.X/p.ppm, y, o.Y/p.ppm)
}

// center maps the middle of a rectangle or ellipse object.
func (p parser) center(o *tiled.Object, y float64) gamemath.Vec3 {
	return gamemath.V3((o.X+o.Width/2)/p.ppm, y, (o.Y+o.Height/2)/p.ppm)
}

// block maps a rectangle object to a box spanning bottom..top.
func (p parser) block(o *tiled.Object, bottom, top float64) Block {
	if top < bottom {
		bottom, top = top, bottom
	}
	return Block{
		Center: p.center(o, (bottom+top)/2),
		Half:   gamemath.V3(o.Width/2/p.ppm, (top-bottom)/2, o.Height/2/p.ppm),
	}
}

func sortPoints(ps []gamemath.Vec3) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].X != ps[j].X {
			return ps[i].X < ps[j].X
		}
		return ps[i].Z < ps[j].Z
	})
}
