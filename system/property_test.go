package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"pgregory.net/rapid"

	"github.com/lixenwraith/paper-arena/component"
	"github.com/lixenwraith/paper-arena/vmath"
)

// TestAmmoNeverNegative: for any fire/pickup sequence ammo stays >= 0 and empty fire spawns nothing
func TestAmmoNeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		env, _ := newTestEnv()
		env.Config.Player.StartAmmo = rapid.IntRange(0, 5).Draw(rt, "start_ammo")
		c := NewPlayerController(env)

		now := epoch
		steps := rapid.IntRange(1, 100).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			now = now.Add(time.Duration(rapid.IntRange(0, 1200).Draw(rt, "gap_ms")) * time.Millisecond)

			before := c.Player().Ammo
			bullets := len(c.Bullets())
			fired := c.Fire(now)

			if before == 0 && fired {
				rt.Fatalf("fired with zero ammo")
			}
			if before == 0 && len(c.Bullets()) != bullets {
				rt.Fatalf("projectile spawned with zero ammo")
			}
			if c.Player().Ammo < 0 {
				rt.Fatalf("ammo = %d", c.Player().Ammo)
			}
			if rapid.Bool().Draw(rt, "pickup") {
				c.AddAmmo(env.Config.Pickup.AmmoBonus)
			}
		}
	})
}

// TestSpawnIntervalMonotonic: for any decay and floor the interval never rises or drops below the floor
func TestSpawnIntervalMonotonic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		env, _ := newTestEnv()
		initial := time.Duration(rapid.IntRange(100, 10_000).Draw(rt, "interval_ms")) * time.Millisecond
		floor := time.Duration(rapid.IntRange(1, 100).Draw(rt, "floor_ms")) * time.Millisecond
		env.Config.Enemy.Interval = initial
		env.Config.Enemy.MinInterval = floor
		env.Config.Enemy.Decay = rapid.Float64Range(0.5, 1).Draw(rt, "decay")
		s := NewEnemySpawner(env)

		prev := s.Interval()
		for i := 0; i < rapid.IntRange(1, 200).Draw(rt, "spawns"); i++ {
			s.spawn()
			if s.Interval() > prev {
				rt.Fatalf("interval rose %v -> %v", prev, s.Interval())
			}
			if s.Interval() < floor {
				rt.Fatalf("interval %v below floor %v", s.Interval(), floor)
			}
			prev = s.Interval()
		}
	})
}

// TestWallHeightBounded: min <= y(t) <= max for every segment and time
func TestWallHeightBounded(t *testing.T) {
	env, _ := newTestEnv()
	f := NewWallField(env, epoch)
	segs := f.Segments()

	rapid.Check(t, func(rt *rapid.T) {
		seg := segs[rapid.IntRange(0, len(segs)-1).Draw(rt, "segment")]
		elapsed := time.Duration(rapid.Int64Range(0, int64(1000*time.Hour)).Draw(rt, "elapsed"))

		y := WallHeight(&seg, elapsed, env.Config.Wall.PhaseStep)
		if y < seg.MinHeight || y > seg.MaxHeight {
			rt.Fatalf("y(%v) = %v outside [%v, %v]", elapsed, y, seg.MinHeight, seg.MaxHeight)
		}
	})
}

// TestPickupNeverDoubleCounted: repeated probes over one pickup award it once
func TestPickupNeverDoubleCounted(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := newWorld()
		w.spawner.spawn(epoch)
		id := w.pickups.IDs()[0]
		var pk *component.Pickup
		pk, _ = w.pickups.Find(id)
		pk.Position = mgl64.Vec3{0, 0, rapid.Float64Range(1, 14).Draw(rt, "distance")}
		w.graph.SetTransform(id, pk.Position, vmath.Identity())

		probes := rapid.IntRange(1, 5).Draw(rt, "probes")
		for i := 0; i < probes; i++ {
			w.resolver.CheckPlayer()
		}
		if ammo := w.player.Player().Ammo; ammo != 10 && ammo != 15 {
			rt.Fatalf("ammo = %d, want 10 or 15", ammo)
		}
		if len(w.picked) > 1 {
			rt.Fatalf("picked %d times", len(w.picked))
		}
	})
}
