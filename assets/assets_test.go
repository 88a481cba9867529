package assets

import "testing"

func TestEmbeddedArenaLoads(t *testing.T) {
	a, err := NewLevelLoader().LoadArena("levels/arena.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if len(a.Ground) == 0 || len(a.Walls) == 0 {
		t.Errorf("arena has %d ground and %d wall blocks", len(a.Ground), len(a.Walls))
	}
	if len(a.GroundSpawns) < 3 || len(a.FlyingSpawns) < 3 {
		t.Errorf("arena has %d ground and %d flying spawns, want at least 3 each", len(a.GroundSpawns), len(a.FlyingSpawns))
	}
	if len(a.UpgradeSpawns) == 0 {
		t.Error("arena has no upgrade spawns")
	}
	if a.Width != 40 || a.Depth != 40 {
		t.Errorf("extent = %v x %v, want 40 x 40", a.Width, a.Depth)
	}
}

func TestMustLoadArenasFindsEmbeddedLevels(t *testing.T) {
	arenas := NewLevelLoader().MustLoadArenas()
	if len(arenas) == 0 {
		t.Fatal("no embedded arenas")
	}
	for _, a := range arenas {
		if a.Name == "" {
			t.Error("arena without a name")
		}
	}
}
