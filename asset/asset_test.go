package asset

import (
	"errors"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paper-arena/parameter"
)

func TestHandlePendingIsNotAnError(t *testing.T) {
	h := NewHandle[Model]()
	if h.Ready() {
		t.Fatal("new handle should be pending")
	}
	if _, ok := h.Get(); ok {
		t.Error("Get on pending handle should report unavailable")
	}
	if err := h.Err(); err != nil {
		t.Errorf("pending handle should carry no error, got %v", err)
	}
}

func TestHandleNilSafe(t *testing.T) {
	var h *Handle[Clip]
	if h.Ready() {
		t.Error("nil handle reported ready")
	}
	if _, ok := h.Get(); ok {
		t.Error("nil handle returned a value")
	}
	if h.Err() != nil {
		t.Error("nil handle returned an error")
	}
}

func TestHandleFirstResolveWins(t *testing.T) {
	h := NewHandle[Clip]()
	if !h.Resolve(Clip{Name: "idle"}) {
		t.Fatal("first resolve rejected")
	}
	if h.Resolve(Clip{Name: "walk"}) {
		t.Error("second resolve accepted")
	}
	if h.Fail(errors.New("late")) {
		t.Error("fail after resolve accepted")
	}
	v, ok := h.Get()
	if !ok || v.Name != "idle" {
		t.Errorf("Get = (%v, %v), want idle", v, ok)
	}
}

func TestAllReady(t *testing.T) {
	a := Loaded(Clip{Name: "a"})
	b := NewHandle[Clip]()
	if AllReady(a, b) {
		t.Error("AllReady with a pending handle")
	}
	b.Resolve(Clip{Name: "b"})
	if !AllReady(a, b) {
		t.Error("AllReady false after resolving all")
	}
}

func TestCatalogImmediateAndUnknown(t *testing.T) {
	c := NewCatalog(0, nil)
	c.RegisterModel(Model{Path: "enemy.gltf", HalfExtents: mgl64.Vec3{0.3, 0.9, 0.3}})

	h := c.LoadModel("enemy.gltf")
	if !h.Ready() {
		t.Fatal("zero-latency catalog should resolve immediately")
	}

	missing := c.LoadAnimationClip("nope.gltf")
	if missing.Ready() {
		t.Fatal("unknown clip resolved")
	}
	if !errors.Is(missing.Err(), ErrUnknownAsset) {
		t.Errorf("Err = %v, want ErrUnknownAsset", missing.Err())
	}
}

func TestCatalogLatencyCompletesLater(t *testing.T) {
	c := NewCatalog(20*time.Millisecond, nil)
	c.RegisterClip(Clip{Name: "run", Path: "run.gltf", Duration: 700 * time.Millisecond})

	h := c.LoadAnimationClip("run.gltf")
	if h.Ready() {
		t.Fatal("handle resolved before latency elapsed")
	}

	deadline := time.Now().Add(time.Second)
	for !h.Ready() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if !h.Ready() {
		t.Fatal("handle never resolved")
	}
}

func TestModelColliderStandsOnOrigin(t *testing.T) {
	m := Model{HalfExtents: mgl64.Vec3{0.5, 1, 0.5}}
	col := m.Collider(10)
	if col.HalfExtents != (mgl64.Vec3{5, 10, 5}) {
		t.Errorf("HalfExtents = %v", col.HalfExtents)
	}
	if col.Offset != (mgl64.Vec3{0, 10, 0}) {
		t.Errorf("Offset = %v", col.Offset)
	}
}

// TestArenaCatalogResolvesGameAssets covers every path the simulation loads
func TestArenaCatalogResolvesGameAssets(t *testing.T) {
	c := NewArenaCatalog(0, nil)
	for _, path := range []string{parameter.PlayerModelPath, parameter.EnemyModelPath} {
		if !c.LoadModel(path).Ready() {
			t.Errorf("model %s not ready", path)
		}
	}
	for _, path := range []string{parameter.IdleClipPath, parameter.WalkClipPath, parameter.RunClipPath} {
		clip, ok := c.LoadAnimationClip(path).Get()
		if !ok || clip.Duration <= 0 {
			t.Errorf("clip %s = %+v, ready=%v", path, clip, ok)
		}
	}
}
