package systems

import (
	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/shared/messages"
	"github.com/automoto/vacuumarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// QueueDamage schedules damage for the next combat step. A second hit in
// the same tick adds up; the latest knockback wins.
func QueueDamage(target *donburi.Entry, amount float64, knockback gamemath.Vec3, source donburi.Entity) {
	if target.HasComponent(components.DamageEvent) {
		ev := components.DamageEvent.Get(target)
		ev.Amount += amount
		ev.Knockback = knockback
		ev.Source = source
		return
	}
	donburi.Add(target, components.DamageEvent, &components.DamageEventData{
		Amount:    amount,
		Knockback: knockback,
		Source:    source,
	})
}

// UpdateCombat applies queued damage and ticks the player's
// invulnerability window.
func UpdateCombat(ecs *ecs.ECS) {
	w := ecs.World
	dt := DeltaTime(w)

	var queued []*donburi.Entry
	for e := range components.DamageEvent.Iter(w) {
		queued = append(queued, e)
	}
	for _, e := range queued {
		dmg := *components.DamageEvent.Get(e)
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		if ApplyDamage(w, e.Entity(), dmg.Amount) && e.HasComponent(components.RigidBody) && !dmg.Knockback.IsZero() {
			rb := components.RigidBody.Get(e)
			rb.AddImpulse(dmg.Knockback.Scale(rb.Mass))
		}
	}

	components.Player.Each(w, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		if p.InvulnTimer > 0 {
			p.InvulnTimer -= dt
		}
	})
}

// ApplyDamage hurts target, following a hit redirect when target has no
// health of its own. It reports whether any damage landed.
func ApplyDamage(w donburi.World, target donburi.Entity, amount float64) bool {
	e, ok := entryOf(w, target)
	if !ok {
		return false
	}
	if !e.HasComponent(components.Health) {
		if !e.HasComponent(components.HitRedirect) {
			return false
		}
		e, ok = entryOf(w, components.HitRedirect.Get(e).Target)
		if !ok || !e.HasComponent(components.Health) {
			return false
		}
	}
	if e.HasComponent(components.Death) {
		return false
	}

	isPlayer := e.HasComponent(components.Player)
	if isPlayer && components.Player.Get(e).InvulnTimer > 0 {
		return false
	}

	hp := components.Health.Get(e)
	applied, died := hp.TakeDamage(amount)
	if !applied {
		return false
	}

	switch {
	case isPlayer:
		components.Player.Get(e).InvulnTimer = cfg.Player.InvulnTime
		messages.PlayerDamaged.Publish(w, messages.PlayerDamagedEvent{Amount: amount, Left: hp.Current})
	case e.HasComponent(tags.Enemy):
		enemy := components.Enemy.Get(e)
		if enemy.TypeConfig != nil {
			enemy.StunTimer = enemy.TypeConfig.StunDuration
		}
		messages.EnemyDamaged.Publish(w, messages.EnemyDamagedEvent{Enemy: e.Entity(), Amount: amount, Left: hp.Current})
	}

	if died {
		startDeath(w, e)
	}
	return true
}

// startDeath freezes the entity and starts its despawn timer. Enemies leave
// the wave right away; the player's death ends the run.
func startDeath(w donburi.World, e *donburi.Entry) {
	donburi.Add(e, components.Death, &components.DeathData{Timer: cfg.Enemy.DespawnDelay})

	if e.HasComponent(components.Flash) {
		e.RemoveComponent(components.Flash)
	}
	if c := colliderOf(e); c != nil {
		c.Enabled = false
	}
	if e.HasComponent(components.RigidBody) {
		components.RigidBody.Get(e).SetKinematic(true)
	}

	if e.HasComponent(tags.Enemy) {
		enemy := components.Enemy.Get(e)
		if head, ok := entryOf(w, enemy.Head); ok {
			if c := colliderOf(head); c != nil {
				c.Enabled = false
			}
		}
		deregisterEnemy(w, e.Entity())
		messages.EnemyDied.Publish(w, messages.EnemyDiedEvent{Enemy: e.Entity(), TypeName: enemy.TypeName})
		return
	}

	if e.HasComponent(components.Player) {
		messages.PlayerDied.Publish(w, messages.PlayerDiedEvent{})
		EndGame(w, cfg.ResultDefeat)
	}
}

func deregisterEnemy(w donburi.World, e donburi.Entity) {
	if entry, ok := components.WaveManager.First(w); ok {
		components.WaveManager.Get(entry).Deregister(e)
	}
}
