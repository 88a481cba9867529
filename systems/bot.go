package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// Degrees the bot may turn per tick
const botTurnRate = 12

// Aim error below which the bot pulls the trigger
const botAimTolerance = 6

// freeProps matches props lying around, ready to be vacuumed.
var freeProps = query.NewQuery(filter.Contains(tags.Prop, components.VacuumedObject))

// UpdateBots writes scripted input for every bot-controlled player. It
// takes the place of UpdateInput in the headless host.
// Must run BEFORE any gameplay system in the system order.
func UpdateBots(e *ecs.ECS) {
	w := e.World
	rng := worldRand(w)
	components.Bot.Each(w, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Input) {
			return
		}
		input := components.Input.Get(entry)
		input.Roll()
		if entry.HasComponent(components.Death) || IsPaused(w) {
			return
		}
		updateBot(w, entry, components.Bot.Get(entry), input, rng)
	})
}

func updateBot(w donburi.World, entry *donburi.Entry, bot *components.BotData, input *components.InputData, rng *rand.Rand) {
	diff := cfg.Bot.Difficulties[bot.Difficulty]
	gun := components.VacuumGun.Get(entry)

	bot.TicksUntilDecision--
	if _, ok := entryOf(w, bot.Target); !ok || bot.TicksUntilDecision <= 0 {
		decideBotGoal(w, entry, bot, gun, diff, rng)
		bot.TicksUntilDecision = max(1, diff.ReactionDelay)
	}

	target, ok := entryOf(w, bot.Target)
	if !ok {
		return
	}

	eye := EyePosition(entry)
	aim := components.Transform.Get(target).Position
	errDeg := steerLook(components.Transform.Get(entry), input, aim.Sub(eye), bot.AimJitter)
	dist := eye.Dist(aim)

	switch bot.Goal {
	case components.BotGoalLoad:
		if dist > gun.Range*0.8 {
			input.Move.Y = 1
		}
		input.Current[cfg.ActionVacuum] = errDeg < botAimTolerance*2 && dist <= gun.Range
	case components.BotGoalFight:
		if dist > diff.FireRange {
			input.Move.Y = 1
		}
		input.Move.X = bot.Strafe
		input.Current[cfg.ActionShoot] = errDeg < botAimTolerance && dist <= diff.FireRange && gun.HeldCount() > 0
	}
}

// decideBotGoal loads up until the magazine reaches the difficulty's load
// target, then fights the nearest enemy.
func decideBotGoal(w donburi.World, entry *donburi.Entry, bot *components.BotData, gun *components.VacuumGunData, diff cfg.BotDifficultyConfig, rng *rand.Rand) {
	pos := components.Transform.Get(entry).Position

	enemy, haveEnemy := nearestIn(w, livingEnemies, pos)
	prop, haveProp := nearestFreeProp(w, pos)

	target := donburi.Null
	switch {
	case haveEnemy && (gun.HeldCount() >= min(diff.LoadTarget, gun.MaxObjects) || !haveProp):
		bot.Goal = components.BotGoalFight
		target = enemy
	case haveProp:
		bot.Goal = components.BotGoalLoad
		target = prop
	}
	bot.Target = target

	bot.Strafe = 0
	if rng.Float64() < diff.StrafeChance {
		bot.Strafe = float64(rng.Intn(2)*2 - 1)
	}
	bot.AimJitter = (rng.Float64()*2 - 1) * diff.AimJitter
}

func nearestIn(w donburi.World, q *query.Query, pos gamemath.Vec3) (donburi.Entity, bool) {
	best, bestDist := donburi.Null, math.Inf(1)
	q.Each(w, func(e *donburi.Entry) {
		if d := components.Transform.Get(e).Position.Dist(pos); d < bestDist {
			best, bestDist = e.Entity(), d
		}
	})
	return best, best != donburi.Null
}

func nearestFreeProp(w donburi.World, pos gamemath.Vec3) (donburi.Entity, bool) {
	best, bestDist := donburi.Null, math.Inf(1)
	freeProps.Each(w, func(e *donburi.Entry) {
		if components.VacuumedObject.Get(e).State != cfg.VacuumedFree {
			return
		}
		if d := components.Transform.Get(e).Position.Dist(pos); d < bestDist {
			best, bestDist = e.Entity(), d
		}
	})
	return best, best != donburi.Null
}

// steerLook turns toward dir by at most botTurnRate degrees, writing the
// turn as look input. It returns the remaining aim error in degrees.
func steerLook(tr *components.TransformData, input *components.InputData, dir gamemath.Vec3, jitter float64) float64 {
	if dir.IsZero() {
		return 0
	}
	flat := dir.Flat()
	wantYaw := math.Atan2(flat.X, flat.Z)*180/math.Pi + jitter
	wantPitch := math.Atan2(dir.Y, flat.Len()) * 180 / math.Pi

	dYaw := math.Mod(wantYaw-tr.Yaw, 360)
	if dYaw > 180 {
		dYaw -= 360
	} else if dYaw < -180 {
		dYaw += 360
	}
	dPitch := wantPitch - tr.Pitch

	sens := cfg.Input.LookSensitivity
	if sens <= 0 {
		return math.Hypot(dYaw, dPitch)
	}
	input.Look.X = gamemath.Clamp(dYaw, -botTurnRate, botTurnRate) / sens
	input.Look.Y = -gamemath.Clamp(dPitch, -botTurnRate, botTurnRate) / sens
	return math.Hypot(dYaw, dPitch)
}
