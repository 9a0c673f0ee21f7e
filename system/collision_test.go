package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paper-arena/component"
	"github.com/lixenwraith/paper-arena/physics"
	"github.com/lixenwraith/paper-arena/scene"
	"github.com/lixenwraith/paper-arena/vmath"
)

// TestBulletHitsWallScenario: exactly one particle at the impact point, bullet removed the same tick
func TestBulletHitsWallScenario(t *testing.T) {
	w := newWorld()
	w.player.Player().Position = mgl64.Vec3{0, 0, 238}
	w.player.Fire(epoch)
	id := w.player.Bullets()[0].ID

	w.resolver.CheckBullets(epoch)

	if w.particles.Len() != 1 {
		t.Fatalf("particles = %d, want 1", w.particles.Len())
	}
	want := mgl64.Vec3{0, w.env.Config.Player.MuzzleHeight, 240}
	if got := w.particles.Particles()[0].Position; !approxVec(got, want) {
		t.Errorf("particle at %v, want %v", got, want)
	}
	if len(w.player.Bullets()) != 0 {
		t.Errorf("bullets = %d after wall hit, want 0", len(w.player.Bullets()))
	}
	if w.graph.Has(id) {
		t.Error("bullet still in scene")
	}
	if w.player.Player().Score != 0 {
		t.Errorf("score = %v, a wall hit awards nothing", w.player.Player().Score)
	}
}

// TestBulletMissLeavesBullet keeps projectiles with nothing in reach
func TestBulletMissLeavesBullet(t *testing.T) {
	w := newWorld()
	w.player.Fire(epoch)

	w.resolver.CheckBullets(epoch)
	if len(w.player.Bullets()) != 1 || w.particles.Len() != 0 {
		t.Errorf("bullets=%d particles=%d after a miss", len(w.player.Bullets()), w.particles.Len())
	}
}

// TestBulletProbeCoversTickTravel finds the wall face a bullet crossed during a long tick
func TestBulletProbeCoversTickTravel(t *testing.T) {
	w := newWorld()
	w.player.Player().Position = mgl64.Vec3{0, 0, 232}
	w.player.Fire(epoch)

	// One tick carries the bullet from 232 to 242, past the wall face at 240
	w.player.advanceBullets(epoch, tick.Seconds())
	w.resolver.CheckBullets(epoch)

	if w.particles.Len() != 1 {
		t.Fatalf("particles = %d, want the crossed wall hit", w.particles.Len())
	}
	want := mgl64.Vec3{0, w.env.Config.Player.MuzzleHeight, 240}
	if got := w.particles.Particles()[0].Position; !approxVec(got, want) {
		t.Errorf("particle at %v, want the wall face %v", got, want)
	}
}

// TestBulletProbeCoversFiringTick hits a small target between the muzzle and the first advanced position
func TestBulletProbeCoversFiringTick(t *testing.T) {
	w := newWorld()
	muzzle := w.env.Config.Player.MuzzleHeight
	enemy := w.placeEnemy(mgl64.Vec3{0, muzzle, 4})
	w.graph.SetCollider(enemy, physics.Ball(1, mgl64.Vec3{}))

	w.player.Fire(epoch)
	w.player.advanceBullets(epoch, tick.Seconds())
	if got := w.player.Bullets()[0].Position[2]; !approx(got, 10) {
		t.Fatalf("bullet z = %v, want 10", got)
	}
	w.resolver.CheckBullets(epoch)

	if _, ok := w.enemies.Find(enemy); ok {
		t.Error("enemy passed over on the firing tick survived")
	}
	if w.particles.Len() != 1 {
		t.Fatalf("particles = %d, want 1", w.particles.Len())
	}
	if got := w.particles.Particles()[0].Position; !approxVec(got, mgl64.Vec3{0, muzzle, 3}) {
		t.Errorf("particle at %v, want the near side of the target", got)
	}
}

// TestBulletKillsEnemy awards the kill once even when two bullets hit the same enemy
func TestBulletKillsEnemy(t *testing.T) {
	w := newWorld()
	enemy := w.placeEnemy(mgl64.Vec3{0, -8, 30})

	w.player.Player().Position = mgl64.Vec3{0, 0, 22}
	w.player.Fire(epoch)
	second := *w.player.Bullets()[0]
	second.ID = "bullet-extra"
	w.player.bullets = append(w.player.bullets, &second)

	w.resolver.CheckBullets(epoch)

	if _, ok := w.enemies.Find(enemy); ok {
		t.Error("enemy survived")
	}
	if w.graph.Has(enemy) {
		t.Error("enemy still in scene")
	}
	if got := w.player.Player().Score; got != float64(w.env.Config.Collision.EnemyKillScore) {
		t.Errorf("score = %v, want a single kill award", got)
	}
	if len(w.kills) != 1 || w.kills[0] != string(enemy) {
		t.Errorf("kill hooks = %v", w.kills)
	}
	if len(w.player.Bullets()) != 0 {
		t.Errorf("bullets = %d, want both removed", len(w.player.Bullets()))
	}
	if w.particles.Len() != 2 {
		t.Errorf("particles = %d, want one per bullet", w.particles.Len())
	}
}

// TestPlayerProbeBumpsWall bleeds more speed moving forward than backward
func TestPlayerProbeBumpsWall(t *testing.T) {
	w := newWorld()
	p := w.player.Player()

	p.Position = mgl64.Vec3{0, 0, 232}
	p.Velocity = mgl64.Vec3{0, 0, 50}
	w.resolver.CheckPlayer()
	if !approx(p.Velocity[2], 10) {
		t.Errorf("forward bump: velocity.z = %v, want 10", p.Velocity[2])
	}

	// Reversing probes behind the player
	p.Position = mgl64.Vec3{0, 0, -232}
	p.Velocity = mgl64.Vec3{0, 0, -20}
	w.resolver.CheckPlayer()
	if !approx(p.Velocity[2], 10) {
		t.Errorf("backward bump: velocity.z = %v, want 10", p.Velocity[2])
	}

	// Facing away from the wall while moving forward finds nothing
	p.Position = mgl64.Vec3{0, 0, -232}
	p.Velocity = mgl64.Vec3{0, 0, 20}
	w.resolver.CheckPlayer()
	if p.Velocity[2] != 20 {
		t.Errorf("velocity.z = %v, no wall ahead", p.Velocity[2])
	}
}

// TestPlayerProbeCollectsPickup grants ammo and score once and removes the pickup
func TestPlayerProbeCollectsPickup(t *testing.T) {
	w := newWorld()
	w.spawner.spawn(epoch)
	id := w.pickups.IDs()[0]
	pk, _ := w.pickups.Find(id)
	pk.Position = mgl64.Vec3{0, 0, 8}
	w.graph.SetTransform(id, pk.Position, vmath.Identity())

	if w.resolver.CheckPlayer() {
		t.Fatal("pickup ended the game")
	}
	p := w.player.Player()
	if p.Ammo != 15 || p.Score != 100 {
		t.Errorf("ammo=%d score=%v, want 15/100", p.Ammo, p.Score)
	}
	if w.pickups.Len() != 0 || w.graph.Has(id) {
		t.Error("pickup not removed")
	}

	w.resolver.CheckPlayer()
	if p.Ammo != 15 || len(w.picked) != 1 {
		t.Errorf("second probe changed state: ammo=%d picked=%v", p.Ammo, w.picked)
	}
}

// duplicateScene reports every hit twice, as a mesh with several child surfaces would
type duplicateScene struct {
	*scene.Graph
}

func (d duplicateScene) CastRay(ray physics.Ray, candidates []component.EntityID) []scene.Hit {
	hits := d.Graph.CastRay(ray, candidates)
	return append(hits, hits...)
}

// TestPickupIntersectedTwiceCountsOnce matches by identity and consumes on first match
func TestPickupIntersectedTwiceCountsOnce(t *testing.T) {
	w := newWorld()
	w.env.Scene = duplicateScene{w.graph}
	w.spawner.spawn(epoch)
	id := w.pickups.IDs()[0]
	pk, _ := w.pickups.Find(id)
	pk.Position = mgl64.Vec3{0, 0, 8}
	w.graph.SetTransform(id, pk.Position, vmath.Identity())

	w.resolver.CheckPlayer()
	if p := w.player.Player(); p.Ammo != 15 || p.Score != 100 {
		t.Errorf("ammo=%d score=%v, want a single award", p.Ammo, p.Score)
	}
}

// TestPickupOnlyMatchingIdentityConsumed leaves pickups the ray did not touch
func TestPickupOnlyMatchingIdentityConsumed(t *testing.T) {
	w := newWorld()
	w.spawner.spawn(epoch)
	w.spawner.spawn(epoch)
	ids := w.pickups.IDs()

	near, _ := w.pickups.Find(ids[0])
	near.Position = mgl64.Vec3{0, 0, 8}
	w.graph.SetTransform(ids[0], near.Position, vmath.Identity())
	far, _ := w.pickups.Find(ids[1])
	far.Position = mgl64.Vec3{100, 0, 100}
	w.graph.SetTransform(ids[1], far.Position, vmath.Identity())

	w.resolver.CheckPlayer()
	if _, ok := w.pickups.Find(ids[1]); !ok {
		t.Error("untouched pickup was consumed")
	}
	if _, ok := w.pickups.Find(ids[0]); ok {
		t.Error("touched pickup was not consumed")
	}
}

// TestPlayerProbeEnemyEndsGame triggers the death hook
func TestPlayerProbeEnemyEndsGame(t *testing.T) {
	w := newWorld()
	enemy := w.placeEnemy(mgl64.Vec3{0, -8, 9})

	if !w.resolver.CheckPlayer() {
		t.Fatal("enemy ahead did not end the game")
	}
	if len(w.deaths) != 1 || w.deaths[0] != string(enemy) {
		t.Errorf("death hooks = %v", w.deaths)
	}
}

// TestEnemyContactEndsGame catches a stationary player from behind
func TestEnemyContactEndsGame(t *testing.T) {
	w := newWorld()
	w.placeEnemy(mgl64.Vec3{0, -8, -3})

	if !w.resolver.CheckPlayer() {
		t.Fatal("enemy touching the player did not end the game")
	}
}

// TestUnloadedEnemyIsNoIntersection tolerates the asset race
func TestUnloadedEnemyIsNoIntersection(t *testing.T) {
	w := newWorld()
	w.env.Assets = &pendingLoader{}
	w.enemies.spawn()
	e, _ := w.enemies.Find(w.enemies.IDs()[0])
	e.Position = mgl64.Vec3{0, -8, 5}

	if w.resolver.CheckPlayer() {
		t.Error("unloaded enemy ended the game")
	}
	w.player.Player().Position = mgl64.Vec3{0, 0, 3}
	w.player.Fire(epoch)
	w.resolver.CheckBullets(epoch)
	if len(w.player.Bullets()) != 1 {
		t.Error("bullet collided with an unloaded enemy")
	}
}
