package leveldata

import (
	"math"
	"testing"
	"testing/fstest"

	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/physics"
)

const testArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="6" nextobjectid="20">
 <properties>
  <property name="pixelsPerMeter" type="float" value="16"/>
 </properties>
 <objectgroup id="1" name="Ground">
  <object id="1" x="0" y="0" width="160" height="160"/>
 </objectgroup>
 <objectgroup id="2" name="Walls">
  <object id="2" x="32" y="48" width="16" height="64">
   <properties>
    <property name="height" type="float" value="3"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Ramps">
  <object id="3" x="64" y="0" width="32" height="16">
   <properties>
    <property name="height" type="float" value="2"/>
    <property name="rise" value="north"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="PlayerSpawn">
  <object id="4" x="80" y="96">
   <properties>
    <property name="yaw" type="float" value="90"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="5" name="GroundSpawns">
  <object id="5" x="144" y="16"><point/></object>
  <object id="6" x="16" y="16"><point/></object>
 </objectgroup>
 <objectgroup id="6" name="FlyingSpawns">
  <object id="7" x="48" y="48">
   <properties>
    <property name="altitude" type="float" value="5"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="7" name="Props">
  <object id="8" x="32" y="32">
   <properties>
    <property name="mass" type="float" value="2"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="8" name="PropZones">
  <object id="9" x="96" y="96" width="32" height="32">
   <properties>
    <property name="count" type="int" value="3"/>
   </properties>
   <ellipse/>
  </object>
 </objectgroup>
</map>
`

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func vecApprox(a, b gamemath.Vec3) bool {
	return a.ApproxEqual(b, 1e-9)
}

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(testArena)},
	}

	a, err := LoadArena(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}

	if a.Name != "test" {
		t.Errorf("Name = %q, want test", a.Name)
	}
	if !approx(a.Width, 10) || !approx(a.Depth, 10) {
		t.Errorf("extent = %v x %v, want 10 x 10", a.Width, a.Depth)
	}

	if len(a.Ground) != 1 {
		t.Fatalf("ground blocks = %d, want 1", len(a.Ground))
	}
	if g := a.Ground[0]; !vecApprox(g.Center, gamemath.V3(5, -0.5, 5)) || !vecApprox(g.Half, gamemath.V3(5, 0.5, 5)) {
		t.Errorf("ground = %+v, want centre (5,-0.5,5) half (5,0.5,5)", g)
	}

	if len(a.Walls) != 1 {
		t.Fatalf("walls = %d, want 1", len(a.Walls))
	}
	if w := a.Walls[0]; !vecApprox(w.Center, gamemath.V3(2.5, 1.5, 5)) || !vecApprox(w.Half, gamemath.V3(0.5, 1.5, 2)) {
		t.Errorf("wall = %+v", w)
	}

	if len(a.Ramps) != 1 || a.Ramps[0].Rise != physics.RisePosZ {
		t.Fatalf("ramps = %+v, want one rising north", a.Ramps)
	}
	if r := a.Ramps[0]; !approx(r.Center.Y, 1) || !approx(r.Half.Y, 1) {
		t.Errorf("ramp spans y %v±%v, want 1±1", r.Center.Y, r.Half.Y)
	}

	if !vecApprox(a.PlayerSpawn.Position, gamemath.V3(5, 1, 6)) || a.PlayerSpawn.Yaw != 90 {
		t.Errorf("player spawn = %+v", a.PlayerSpawn)
	}

	wantGround := []gamemath.Vec3{gamemath.V3(1, 1, 1), gamemath.V3(9, 1, 1)}
	if len(a.GroundSpawns) != len(wantGround) {
		t.Fatalf("ground spawns = %v, want %v", a.GroundSpawns, wantGround)
	}
	for i, want := range wantGround {
		if !vecApprox(a.GroundSpawns[i], want) {
			t.Errorf("ground spawn %d = %v, want %v", i, a.GroundSpawns[i], want)
		}
	}

	if len(a.FlyingSpawns) != 1 || !vecApprox(a.FlyingSpawns[0], gamemath.V3(3, 5, 3)) {
		t.Errorf("flying spawns = %v", a.FlyingSpawns)
	}

	if len(a.Props) != 1 || a.Props[0].Mass != 2 || a.Props[0].Size != 0 {
		t.Errorf("props = %+v", a.Props)
	}

	if len(a.PropZones) != 1 {
		t.Fatalf("prop zones = %d, want 1", len(a.PropZones))
	}
	z := a.PropZones[0]
	if z.Count != 3 || !approx(z.Radius, 1) || !vecApprox(z.Center, gamemath.V3(7, 0.5, 7)) {
		t.Errorf("prop zone = %+v", z)
	}
}

func TestLoadArenaBadRamp(t *testing.T) {
	data := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="Ramps">
  <object id="1" x="0" y="0" width="16" height="16">
   <properties>
    <property name="rise" value="sideways"/>
   </properties>
  </object>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{"bad.tmx": &fstest.MapFile{Data: []byte(data)}}
	if _, err := LoadArena(fsys, "bad.tmx"); err == nil {
		t.Fatal("expected an error for an unknown ramp rise")
	}
}

func TestLoadAllArenas(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": &fstest.MapFile{Data: []byte(testArena)},
		"levels/a.tmx": &fstest.MapFile{Data: []byte(testArena)},
	}
	arenas, names, err := LoadAllArenas(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllArenas: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v, want [a b]", names)
	}
	if arenas["a"] == nil || arenas["b"] == nil {
		t.Errorf("missing arenas: %v", arenas)
	}

	if _, _, err := LoadAllArenas(fstest.MapFS{}, "levels"); err == nil {
		t.Error("expected an error for an empty directory")
	}
}
