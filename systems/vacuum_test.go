package systems

import (
	"math"
	"testing"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/automoto/vacuumarena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tick = 1.0 / 60

// pullHome moves every object the gun is pulling onto the hold point and
// lets the lifecycle notice.
func pullHome(e *ecs.ECS, owner *donburi.Entry) {
	gun := components.VacuumGun.Get(owner)
	for _, p := range gun.Pulling {
		moveEntry(e.World, e.World.Entry(p), HoldPoint(owner))
	}
	UpdateVacuumedObjects(e)
}

// checkOwnership fails when an object is owned twice or the gun holds
// more than it may.
func checkOwnership(t *testing.T, gun *components.VacuumGunData) {
	t.Helper()
	seen := make(map[donburi.Entity]bool)
	for _, list := range [][]donburi.Entity{gun.Magazine, gun.Pulling} {
		for _, e := range list {
			if seen[e] {
				t.Fatalf("entity %v is listed twice", e)
			}
			seen[e] = true
		}
	}
	if gun.HeldCount() > gun.MaxObjects {
		t.Fatalf("magazine holds %d, max %d", gun.HeldCount(), gun.MaxObjects)
	}
}

func state(e *donburi.Entry) cfg.VacuumedState {
	return components.VacuumedObject.Get(e).State
}

func TestVacuumStopsAtCapacity(t *testing.T) {
	e := newTestECS(t)
	player := standingPlayer(e, 0, 0)
	gun := components.VacuumGun.Get(player)
	gun.MaxObjects = 2
	input := components.Input.Get(player)
	props := propsAhead(e, player, 3, 3)

	press(input, cfg.ActionVacuum)
	StepVacuumGun(e.World, player, input, tick)
	if len(gun.Pulling) != 2 {
		t.Fatalf("pulling %d objects, want 2", len(gun.Pulling))
	}
	checkOwnership(t, gun)

	for i := 0; i < 3; i++ {
		pullHome(e, player)
		press(input, cfg.ActionVacuum)
		StepVacuumGun(e.World, player, input, tick)
		checkOwnership(t, gun)
	}

	if gun.HeldCount() != 2 {
		t.Errorf("HeldCount = %d, want 2", gun.HeldCount())
	}
	if len(gun.Pulling) != 0 {
		t.Errorf("still pulling %d objects with a full magazine", len(gun.Pulling))
	}
	if got := state(props[0]); got != cfg.VacuumedHeld {
		t.Errorf("nearest prop is %s, want Held", got)
	}
	if got := state(props[2]); got != cfg.VacuumedFree {
		t.Errorf("farthest prop is %s, want Free", got)
	}
}

func TestFullMagazineCancelsPulls(t *testing.T) {
	e := newTestECS(t)
	player := standingPlayer(e, 0, 0)
	gun := components.VacuumGun.Get(player)
	gun.MaxObjects = 3
	input := components.Input.Get(player)
	props := propsAhead(e, player, 3, 3)

	press(input, cfg.ActionVacuum)
	StepVacuumGun(e.World, player, input, tick)
	if len(gun.Pulling) != 3 {
		t.Fatalf("pulling %d objects, want 3", len(gun.Pulling))
	}

	// Only the first two arrive, then the gun shrinks to two slots.
	for _, p := range props[:2] {
		moveEntry(e.World, p, HoldPoint(player))
	}
	UpdateVacuumedObjects(e)
	gun.MaxObjects = 2
	press(input, cfg.ActionVacuum)
	StepVacuumGun(e.World, player, input, tick)
	checkOwnership(t, gun)

	if gun.HeldCount() != 2 || len(gun.Pulling) != 0 {
		t.Fatalf("held %d pulling %d, want 2 and 0", gun.HeldCount(), len(gun.Pulling))
	}
	vo := components.VacuumedObject.Get(props[2])
	if vo.State != cfg.VacuumedFree || vo.IsVacuumed || vo.Owner != donburi.Null {
		t.Errorf("overflow prop = %s vacuumed %v owner %v, want a free unowned prop", vo.State, vo.IsVacuumed, vo.Owner)
	}
}

func TestReleasingVacuumDropsPulls(t *testing.T) {
	e := newTestECS(t)
	player := standingPlayer(e, 0, 0)
	input := components.Input.Get(player)
	props := propsAhead(e, player, 2, 4)
	space := GetSpace(e.World)

	press(input, cfg.ActionVacuum)
	StepVacuumGun(e.World, player, input, tick)
	if !space.Ignoring(colliderOf(props[0]), colliderOf(player)) {
		t.Fatal("pulled prop still collides with its owner")
	}

	press(input)
	StepVacuumGun(e.World, player, input, tick)

	gun := components.VacuumGun.Get(player)
	if gun.Vacuuming || len(gun.Pulling) != 0 {
		t.Fatalf("vacuuming %v pulling %d after release", gun.Vacuuming, len(gun.Pulling))
	}
	for i, p := range props {
		vo := components.VacuumedObject.Get(p)
		if vo.State != cfg.VacuumedFree || vo.IsVacuumed {
			t.Errorf("prop %d is %s after release, want Free", i, vo.State)
		}
		if !components.RigidBody.Get(p).UseGravity {
			t.Errorf("prop %d has no gravity after release", i)
		}
		if space.Ignoring(colliderOf(p), colliderOf(player)) {
			t.Errorf("prop %d still ignores its old owner", i)
		}
	}
}

func TestPullIsAbandonedAfterMaxPullTime(t *testing.T) {
	e := newTestECS(t)
	player := standingPlayer(e, 0, 0)
	input := components.Input.Get(player)
	props := propsAhead(e, player, 1, 6)

	press(input, cfg.ActionVacuum)
	StepVacuumGun(e.World, player, input, tick)
	components.VacuumedObject.Get(props[0]).PullTime = cfg.VacuumedObject.MaxPullTime

	UpdateVacuumedObjects(e)
	if got := state(props[0]); got != cfg.VacuumedFree {
		t.Fatalf("stuck pull is %s, want Free", got)
	}

	press(input)
	StepVacuumGun(e.World, player, input, tick)
	gun := components.VacuumGun.Get(player)
	if gun.Owns(props[0].Entity()) {
		t.Error("gun still lists the abandoned prop")
	}
}

func TestAnotherGunCannotStealPulledObjects(t *testing.T) {
	e := newTestECS(t)
	first := standingPlayer(e, 0, 0)
	second := factory.CreateBot(e, gamemath.V3(0, 0.925, -1), 0, cfg.BotDifficultyNormal)
	props := propsAhead(e, first, 2, 3)

	in1 := components.Input.Get(first)
	press(in1, cfg.ActionVacuum)
	StepVacuumGun(e.World, first, in1, tick)

	in2 := components.Input.Get(second)
	press(in2, cfg.ActionVacuum)
	StepVacuumGun(e.World, second, in2, tick)

	if n := len(components.VacuumGun.Get(second).Pulling); n != 0 {
		t.Errorf("second gun pulls %d objects owned by the first", n)
	}
	for i, p := range props {
		if owner := components.VacuumedObject.Get(p).Owner; owner != first.Entity() {
			t.Errorf("prop %d owner = %v, want the first player", i, owner)
		}
	}
}

// loadMagazine parks n props straight into the gun.
func loadMagazine(e *ecs.ECS, owner *donburi.Entry, n int) []*donburi.Entry {
	gun := components.VacuumGun.Get(owner)
	props := propsAhead(e, owner, n, 3)
	for _, p := range props {
		StartVacuum(e.World, p, owner)
		SuckIntoPoint(e.World, p, HoldPoint(owner))
		gun.Magazine = append(gun.Magazine, p.Entity())
	}
	return props
}

func TestSpreadFiresSymmetricVolley(t *testing.T) {
	e := newTestECS(t)
	player := standingPlayer(e, 0, 0)
	gun := components.VacuumGun.Get(player)
	gun.Mode = cfg.ShootSpread
	input := components.Input.Get(player)
	props := loadMagazine(e, player, 5)

	press(input, cfg.ActionShoot)
	StepVacuumGun(e.World, player, input, tick)

	if gun.HeldCount() != 2 {
		t.Fatalf("HeldCount = %d after a volley, want 2", gun.HeldCount())
	}
	if gun.Magazine[0] != props[3].Entity() || gun.Magazine[1] != props[4].Entity() {
		t.Error("volley did not fire the oldest objects")
	}

	var vels [3]gamemath.Vec3
	for i := range vels {
		if got := state(props[i]); got != cfg.VacuumedLaunched {
			t.Fatalf("prop %d is %s, want Launched", i, got)
		}
		vels[i] = components.RigidBody.Get(props[i]).Velocity
	}
	speed := gun.ShotImpulse(1)
	for i, v := range vels {
		if math.Abs(v.Len()-speed) > 1e-6 {
			t.Errorf("prop %d speed = %v, want %v", i, v.Len(), speed)
		}
	}
	if math.Abs(vels[1].X) > 1e-6 {
		t.Errorf("middle shot X = %v, want straight ahead", vels[1].X)
	}
	if math.Abs(vels[0].X+vels[2].X) > 1e-6 || math.Abs(vels[0].Z-vels[2].Z) > 1e-6 {
		t.Errorf("outer shots %v and %v are not mirrored", vels[0], vels[2])
	}
	half := gamemath.AngleDeg(vels[1], vels[0])
	if math.Abs(half-gun.SpreadAngle/2) > 1e-4 {
		t.Errorf("outer shot angle = %v, want %v", half, gun.SpreadAngle/2)
	}

	// Presses during the cooldown are ignored.
	press(input)
	StepVacuumGun(e.World, player, input, tick)
	press(input, cfg.ActionShoot)
	StepVacuumGun(e.World, player, input, tick)
	if gun.HeldCount() != 2 {
		t.Errorf("HeldCount = %d after a press during cooldown, want 2", gun.HeldCount())
	}
}

func TestSpreadWithOneObjectFiresStraight(t *testing.T) {
	e := newTestECS(t)
	player := standingPlayer(e, 0, 0)
	gun := components.VacuumGun.Get(player)
	gun.Mode = cfg.ShootSpread
	input := components.Input.Get(player)
	props := loadMagazine(e, player, 1)

	press(input, cfg.ActionShoot)
	StepVacuumGun(e.World, player, input, tick)

	if got := state(props[0]); got != cfg.VacuumedLaunched {
		t.Fatalf("prop is %s, want Launched", got)
	}
	forward, _, _ := components.Transform.Get(player).Basis()
	v := components.RigidBody.Get(props[0]).Velocity
	if angle := gamemath.AngleDeg(forward, v); angle > 1e-4 {
		t.Errorf("lone spread shot is %v degrees off the look direction", angle)
	}
}

func TestSingleModeFiresOnInterval(t *testing.T) {
	e := newTestECS(t)
	player := standingPlayer(e, 0, 0)
	gun := components.VacuumGun.Get(player)
	input := components.Input.Get(player)
	loadMagazine(e, player, 3)

	press(input, cfg.ActionShoot)
	StepVacuumGun(e.World, player, input, tick)
	if gun.HeldCount() != 2 {
		t.Fatalf("HeldCount = %d after the first shot, want 2", gun.HeldCount())
	}

	ticks := int(math.Ceil(gun.ShootInterval/tick)) + 1
	for i := 0; i < ticks; i++ {
		press(input, cfg.ActionShoot)
		StepVacuumGun(e.World, player, input, tick)
	}
	if gun.HeldCount() != 1 {
		t.Errorf("HeldCount = %d after holding for one interval, want 1", gun.HeldCount())
	}

	press(input)
	StepVacuumGun(e.World, player, input, tick)
	if gun.Shoot != components.ShootIdle {
		t.Errorf("trigger phase = %v after release, want idle", gun.Shoot)
	}
}

func TestLaunchedObjectDamagesOnce(t *testing.T) {
	e := newTestECS(t)
	player := standingPlayer(e, 0, 0)
	enemy, err := factory.CreateEnemy(e, "Grunt", gamemath.V3(0, 0.9, 6))
	if err != nil {
		t.Fatal(err)
	}
	props := loadMagazine(e, player, 1)
	gun := components.VacuumGun.Get(player)
	input := components.Input.Get(player)

	press(input, cfg.ActionShoot)
	StepVacuumGun(e.World, player, input, tick)

	// Sweep the projectile straight through the enemy.
	p := props[0]
	rb := components.RigidBody.Get(p)
	rb.PrevPosition = gamemath.V3(0, 0.9, 3)
	moveEntry(e.World, p, gamemath.V3(0, 0.9, 8))

	hp := components.Health.Get(enemy)
	start := hp.Current
	UpdateProjectileHits(e)
	UpdateProjectileHits(e)

	if got := start - hp.Current; got != gun.Damage {
		t.Errorf("enemy lost %v health, want exactly %v", got, gun.Damage)
	}
	if vo := components.VacuumedObject.Get(p); vo.CanDealDamage || vo.State != cfg.VacuumedFree {
		t.Errorf("projectile after hit: can damage %v state %s", vo.CanDealDamage, vo.State)
	}
}

func TestShootModeCycles(t *testing.T) {
	e := newTestECS(t)
	player := standingPlayer(e, 0, 0)
	gun := components.VacuumGun.Get(player)
	input := components.Input.Get(player)

	press(input, cfg.ActionNextMode)
	StepVacuumGun(e.World, player, input, tick)
	if gun.Mode != cfg.ShootSpread {
		t.Fatalf("Mode = %s, want Spread", gun.Mode)
	}
	press(input)
	press(input, cfg.ActionNextMode)
	StepVacuumGun(e.World, player, input, tick)
	if gun.Mode != cfg.ShootSingle {
		t.Errorf("Mode = %s, want Single after wrapping", gun.Mode)
	}
}
