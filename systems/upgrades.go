package systems

import (
	"log"
	"math/rand"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/messages"
	"github.com/automoto/vacuumarena/shared/physics"
	"github.com/automoto/vacuumarena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnUpgradesOnWave returns the WaveStarted subscriber that drops the
// configured number of pickups at random upgrade spawn points.
func SpawnUpgradesOnWave(e *ecs.ECS) func(w donburi.World, ev messages.WaveStartedEvent) {
	return func(w donburi.World, ev messages.WaveStartedEvent) {
		arenaEntry, ok := components.Arena.First(w)
		if !ok {
			return
		}
		points := components.Arena.Get(arenaEntry).Arena.UpgradeSpawns
		if len(points) == 0 {
			log.Printf("Warning: wave %d: arena has no upgrade spawn points", ev.Wave)
			return
		}
		rng := worldRand(w)
		for i := 0; i < cfg.Upgrades.PerWave; i++ {
			pick, ok := PickUpgrade(rng, cfg.Upgrades.Table)
			if !ok {
				return
			}
			factory.CreatePickup(e, points[rng.Intn(len(points))], pick)
		}
	}
}

// PickUpgrade draws one entry of table by weight.
func PickUpgrade(rng *rand.Rand, table []cfg.UpgradeWeight) (cfg.UpgradeWeight, bool) {
	total := 0
	for _, u := range table {
		if u.Weight > 0 {
			total += u.Weight
		}
	}
	if total == 0 {
		return cfg.UpgradeWeight{}, false
	}
	n := rng.Intn(total)
	for _, u := range table {
		if u.Weight <= 0 {
			continue
		}
		if n < u.Weight {
			return u, true
		}
		n -= u.Weight
	}
	return cfg.UpgradeWeight{}, false
}

// UpdatePickups collects every pickup the player touches.
func UpdatePickups(ecs *ecs.ECS) {
	w := ecs.World
	player, ok := PlayerEntry(w)
	space := GetSpace(w)
	if !ok || space == nil || player.HasComponent(components.Death) {
		return
	}

	pos := components.Transform.Get(player).Position
	hits := space.OverlapSphere(pos, cfg.Player.Radius+cfg.Upgrades.PickupRadius, physics.LayerPickup)

	var taken []*donburi.Entry
	for _, h := range hits {
		e, ok := entryOf(w, h.Collider.Owner)
		if !ok || !e.HasComponent(components.Pickup) {
			continue
		}
		if ApplyUpgrade(w, player, components.Pickup.Get(e)) {
			taken = append(taken, e)
		}
	}
	for _, e := range taken {
		removeEntry(w, e)
	}
}

// ApplyUpgrade gives the pickup's effect to player. A pickup applies at
// most once; later calls report false.
func ApplyUpgrade(w donburi.World, player *donburi.Entry, p *components.PickupData) bool {
	if p.Taken {
		return false
	}
	p.Taken = true

	switch p.Type {
	case cfg.UpgradeHeal:
		if player.HasComponent(components.Health) {
			components.Health.Get(player).Heal(p.Amount)
		}
	case cfg.UpgradeClipCapacity:
		if player.HasComponent(components.VacuumGun) {
			gun := components.VacuumGun.Get(player)
			gun.UpgradeClipCapacity(int(p.Amount))
			publishMagazine(w, gun)
		}
	case cfg.UpgradeDamage:
		if player.HasComponent(components.VacuumGun) {
			components.VacuumGun.Get(player).UpgradeDamage(p.Amount)
		}
	case cfg.UpgradeShootForce:
		if player.HasComponent(components.VacuumGun) {
			components.VacuumGun.Get(player).UpgradeShootForce(p.Amount)
		}
	case cfg.UpgradeShootInterval:
		if player.HasComponent(components.VacuumGun) {
			components.VacuumGun.Get(player).UpgradeShootInterval(p.Amount)
		}
	case cfg.UpgradeRange:
		if player.HasComponent(components.VacuumGun) {
			components.VacuumGun.Get(player).UpgradeRange(p.Amount)
		}
	case cfg.UpgradeRadius:
		if player.HasComponent(components.VacuumGun) {
			components.VacuumGun.Get(player).UpgradeRadius(p.Amount)
		}
	}

	messages.UpgradePickedUp.Publish(w, messages.UpgradePickedUpEvent{Type: p.Type, Amount: p.Amount})
	return true
}
