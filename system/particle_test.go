package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paper-arena/vmath"
)

// TestParticleGrowsThenExpires at TTL
func TestParticleGrowsThenExpires(t *testing.T) {
	env, g := newTestEnv()
	s := NewParticleSystem(env)
	p := s.Spawn(epoch, mgl64.Vec3{1, 2, 3})

	s.Update(epoch.Add(tick), tick)
	if !approx(p.Radius, 3) {
		t.Errorf("radius = %v, want 3", p.Radius)
	}
	n, _ := g.Get(p.ID)
	if !approx(n.Body.Collider.Radius, 3) {
		t.Errorf("scene radius = %v, want 3", n.Body.Collider.Radius)
	}

	s.Update(epoch.Add(env.Config.Particle.TTL), 0)
	if s.Len() != 0 || g.Has(p.ID) {
		t.Error("particle survived its TTL")
	}
}

// TestParticleExpiresPastMaxRadius before TTL
func TestParticleExpiresPastMaxRadius(t *testing.T) {
	env, _ := newTestEnv()
	s := NewParticleSystem(env)
	s.Spawn(epoch, mgl64.Vec3{})

	s.Update(epoch.Add(tick), 500*time.Millisecond)
	if s.Len() != 0 {
		t.Errorf("particles = %d, radius 11 should exceed max 10", s.Len())
	}
}

// TestCameraEasesTowardIdealOffset converges at 1 - 0.001^dt
func TestCameraEasesTowardIdealOffset(t *testing.T) {
	env, g := newTestEnv()
	c := NewThirdPersonCamera(env)

	c.Update(time.Second, mgl64.Vec3{}, vmath.Identity())
	want := env.Config.Camera.Offset.Mul(0.999)
	if !approxVec(c.View().Position, want) {
		t.Errorf("camera = %v, want %v", c.View().Position, want)
	}
	if g.Camera() != c.View() {
		t.Error("camera not published to the scene")
	}

	// Ideal offset turns with the player
	c.Init()
	for i := 0; i < 50; i++ {
		c.Update(time.Second, mgl64.Vec3{}, vmath.YawQuat(3.141592653589793))
	}
	if got := c.View().Position; !approxVec(got, mgl64.Vec3{15, 20, 30}) {
		t.Errorf("camera behind a turned player = %v, want (15,20,30)", got)
	}
}
