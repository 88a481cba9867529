package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/systems/factory"
)

func TestPickUpgrade(t *testing.T) {
	heal := cfg.UpgradeWeight{Type: cfg.UpgradeHeal, Weight: 3, Amount: 10}
	clip := cfg.UpgradeWeight{Type: cfg.UpgradeClipCapacity, Weight: 1, Amount: 1}

	tests := []struct {
		name   string
		table  []cfg.UpgradeWeight
		wantOK bool
		only   cfg.UpgradeType
	}{
		{"empty table", nil, false, 0},
		{"all weights zero", []cfg.UpgradeWeight{{Type: cfg.UpgradeHeal}, {Type: cfg.UpgradeDamage, Weight: -2}}, false, 0},
		{"zero weight is never drawn", []cfg.UpgradeWeight{{Type: cfg.UpgradeDamage}, clip}, true, cfg.UpgradeClipCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			for i := 0; i < 50; i++ {
				got, ok := PickUpgrade(rng, tt.table)
				if ok != tt.wantOK {
					t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
				}
				if ok && got.Type != tt.only {
					t.Fatalf("picked %v, want only %v", got.Type, tt.only)
				}
			}
		})
	}

	t.Run("weights shape the draw", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		counts := map[cfg.UpgradeType]int{}
		for i := 0; i < 4000; i++ {
			got, _ := PickUpgrade(rng, []cfg.UpgradeWeight{heal, clip})
			counts[got.Type]++
		}
		if counts[cfg.UpgradeHeal] < 2*counts[cfg.UpgradeClipCapacity] {
			t.Errorf("heal %d clip %d, want heal about three times as often", counts[cfg.UpgradeHeal], counts[cfg.UpgradeClipCapacity])
		}
	})
}

func TestUpgradeAppliesOnce(t *testing.T) {
	e := newTestECS(t)
	player := standingPlayer(e, 0, 0)
	gun := components.VacuumGun.Get(player)
	start := gun.MaxObjects

	p := &components.PickupData{Type: cfg.UpgradeClipCapacity, Amount: 2}
	if !ApplyUpgrade(e.World, player, p) {
		t.Fatal("first pickup was refused")
	}
	if ApplyUpgrade(e.World, player, p) {
		t.Error("pickup applied twice")
	}
	if gun.MaxObjects != start+2 {
		t.Errorf("MaxObjects = %d, want %d", gun.MaxObjects, start+2)
	}
}

func TestGunUpgradePickups(t *testing.T) {
	tests := []struct {
		name   string
		typ    cfg.UpgradeType
		amount float64
		field  func(*components.VacuumGunData) float64
		delta  float64
	}{
		{"range", cfg.UpgradeRange, 2, func(g *components.VacuumGunData) float64 { return g.Range }, 2},
		{"radius", cfg.UpgradeRadius, 0.25, func(g *components.VacuumGunData) float64 { return g.Radius }, 0.25},
		{"shoot force", cfg.UpgradeShootForce, 5, func(g *components.VacuumGunData) float64 { return g.ShootForce }, 5},
		{"shoot interval", cfg.UpgradeShootInterval, 0.05, func(g *components.VacuumGunData) float64 { return g.ShootInterval }, -0.05},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			player := standingPlayer(e, 0, 0)
			gun := components.VacuumGun.Get(player)
			before := tt.field(gun)

			ApplyUpgrade(e.World, player, &components.PickupData{Type: tt.typ, Amount: tt.amount})
			if got := tt.field(gun) - before; math.Abs(got-tt.delta) > 1e-9 {
				t.Errorf("changed by %v, want %v", got, tt.delta)
			}
		})
	}
}

func TestHealUpgradeIsCapped(t *testing.T) {
	e := newTestECS(t)
	player := standingPlayer(e, 0, 0)
	hp := components.Health.Get(player)
	hp.Current = hp.Max - 5

	ApplyUpgrade(e.World, player, &components.PickupData{Type: cfg.UpgradeHeal, Amount: 50})
	if hp.Current != hp.Max {
		t.Errorf("health = %v, want the max %v", hp.Current, hp.Max)
	}
}

func TestPlayerCollectsTouchedPickups(t *testing.T) {
	e := newTestECS(t)
	e.AddSystem(UpdatePickups)
	player := standingPlayer(e, 0, 0)
	gun := components.VacuumGun.Get(player)
	start := gun.Damage

	near := factory.CreatePickup(e, gamemath.V3(0, 0.925, 0.5), cfg.UpgradeWeight{Type: cfg.UpgradeDamage, Weight: 1, Amount: 1})
	far := factory.CreatePickup(e, gamemath.V3(10, 0.925, 10), cfg.UpgradeWeight{Type: cfg.UpgradeDamage, Weight: 1, Amount: 1})
	e.Update()

	if near.Valid() {
		t.Error("touched pickup was not removed")
	}
	if !far.Valid() {
		t.Error("distant pickup was collected")
	}
	if gun.Damage != start+1 {
		t.Errorf("Damage = %v, want %v", gun.Damage, start+1)
	}
}
