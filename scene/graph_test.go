package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paper-arena/component"
	"github.com/lixenwraith/paper-arena/physics"
	"github.com/lixenwraith/paper-arena/vmath"
)

func mustRay(t *testing.T, origin, dir mgl64.Vec3, max float64) physics.Ray {
	t.Helper()
	r, ok := physics.NewRay(origin, dir, max)
	if !ok {
		t.Fatal("invalid ray")
	}
	return r
}

func box(kind component.Kind) Body {
	return Body{Kind: kind, Collider: physics.Box(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{})}
}

// TestCastRayOrdersHits returns nearest first and only for candidates
func TestCastRayOrdersHits(t *testing.T) {
	g := NewGraph()
	g.Add("far", box(component.KindWall))
	g.Add("near", box(component.KindEnemy))
	g.Add("ignored", box(component.KindWall))
	g.SetTransform("far", mgl64.Vec3{0, 0, 8}, vmath.Identity())
	g.SetTransform("near", mgl64.Vec3{0, 0, 4}, vmath.Identity())
	g.SetTransform("ignored", mgl64.Vec3{0, 0, 2}, vmath.Identity())

	hits := g.CastRay(mustRay(t, mgl64.Vec3{}, vmath.Forward, 20), []component.EntityID{"far", "near"})
	if len(hits) != 2 {
		t.Fatalf("hits = %d, want 2", len(hits))
	}
	if hits[0].Key != "near" || hits[1].Key != "far" {
		t.Errorf("order = %s,%s, want near,far", hits[0].Key, hits[1].Key)
	}
	if hits[0].Distance != 3 {
		t.Errorf("near distance = %v, want 3", hits[0].Distance)
	}
	if hits[0].Point != (mgl64.Vec3{0, 0, 3}) {
		t.Errorf("near point = %v", hits[0].Point)
	}
}

// TestCastRaySkipsUnknown treats not-yet-added candidates as no intersection
func TestCastRaySkipsUnknown(t *testing.T) {
	g := NewGraph()
	hits := g.CastRay(mustRay(t, mgl64.Vec3{}, vmath.Forward, 20), []component.EntityID{"enemy-1"})
	if len(hits) != 0 {
		t.Errorf("hits = %d against unknown candidate, want 0", len(hits))
	}
}

// TestCastRayRespectsMaxDistance ignores bodies beyond the probe
func TestCastRayRespectsMaxDistance(t *testing.T) {
	g := NewGraph()
	g.Add("wall", box(component.KindWall))
	g.SetTransform("wall", mgl64.Vec3{0, 0, 15}, vmath.Identity())

	if hits := g.CastRay(mustRay(t, mgl64.Vec3{}, vmath.Forward, 10), []component.EntityID{"wall"}); len(hits) != 0 {
		t.Errorf("hit beyond max distance: %+v", hits)
	}
}

// TestGraphLifecycle covers add, transform, reshape, remove and clear
func TestGraphLifecycle(t *testing.T) {
	g := NewGraph()
	g.SetTransform("ghost", mgl64.Vec3{1, 2, 3}, vmath.Identity())
	if g.Has("ghost") {
		t.Fatal("SetTransform must not create nodes")
	}

	g.Add("p", Body{Kind: component.KindParticle, Collider: physics.Ball(1, mgl64.Vec3{})})
	g.SetTransform("p", mgl64.Vec3{1, 2, 3}, vmath.YawQuat(1))
	g.SetCollider("p", physics.Ball(4, mgl64.Vec3{}))

	n, ok := g.Get("p")
	if !ok {
		t.Fatal("node missing")
	}
	if n.Position != (mgl64.Vec3{1, 2, 3}) || n.Body.Collider.Radius != 4 {
		t.Errorf("node = %+v", n)
	}

	g.Remove("p")
	g.Remove("p")
	if g.Len() != 0 {
		t.Errorf("len = %d after remove", g.Len())
	}

	g.Add("a", box(component.KindWall))
	g.Clear()
	if g.Len() != 0 {
		t.Error("clear left nodes")
	}
}

// TestSnapshotStableOrder sorts by kind then ID
func TestSnapshotStableOrder(t *testing.T) {
	g := NewGraph()
	g.Add("enemy-2", box(component.KindEnemy))
	g.Add("wall-0", box(component.KindWall))
	g.Add("enemy-1", box(component.KindEnemy))

	snap := g.Snapshot()
	want := []component.EntityID{"enemy-1", "enemy-2", "wall-0"}
	for i, id := range want {
		if snap[i].ID != id {
			t.Errorf("snapshot[%d] = %s, want %s", i, snap[i].ID, id)
		}
	}
}
