package system

import (
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paper-arena/component"
	"github.com/lixenwraith/paper-arena/physics"
	"github.com/lixenwraith/paper-arena/scene"
	"github.com/lixenwraith/paper-arena/status"
	"github.com/lixenwraith/paper-arena/vmath"
)

// ParticleSystem owns impact bursts: they grow each tick and vanish at TTL or max radius
type ParticleSystem struct {
	env       *Env
	particles []*component.Particle
	seq       uint64

	statLive *atomic.Int64
}

// NewParticleSystem creates an empty particle system
func NewParticleSystem(env *Env) *ParticleSystem {
	return &ParticleSystem{
		env:      env,
		statLive: env.Status.Int(status.Particles),
	}
}

func (s *ParticleSystem) Name() string {
	return "particle"
}

// Init removes every live burst
func (s *ParticleSystem) Init() {
	for _, p := range s.particles {
		s.env.Scene.Remove(p.ID)
	}
	s.particles = nil
	s.statLive.Store(0)
}

// Spawn starts a burst at position
func (s *ParticleSystem) Spawn(now time.Time, position mgl64.Vec3) *component.Particle {
	cfg := &s.env.Config.Particle
	s.seq++
	p := &component.Particle{
		ID:         component.EntityID(fmt.Sprintf("particle-%d", s.seq)),
		Position:   position,
		Radius:     cfg.StartRadius,
		GrowthRate: cfg.GrowthRate,
		MaxRadius:  cfg.MaxRadius,
		SpawnedAt:  now,
		ExpiresAt:  now.Add(cfg.TTL),
	}
	s.particles = append(s.particles, p)
	s.env.Scene.Add(p.ID, scene.Body{Kind: component.KindParticle, Collider: physics.Ball(p.Radius, mgl64.Vec3{})})
	s.env.Scene.SetTransform(p.ID, p.Position, vmath.Identity())
	s.statLive.Store(int64(len(s.particles)))
	return p
}

// Update grows bursts and drops expired ones
func (s *ParticleSystem) Update(now time.Time, dt time.Duration) {
	secs := dt.Seconds()
	s.particles = slices.DeleteFunc(s.particles, func(p *component.Particle) bool {
		p.Radius += p.GrowthRate * secs
		if p.Expired(now) {
			s.env.Scene.Remove(p.ID)
			return true
		}
		s.env.Scene.SetCollider(p.ID, physics.Ball(p.Radius, mgl64.Vec3{}))
		return false
	})
	s.statLive.Store(int64(len(s.particles)))
}

// Particles returns live bursts
func (s *ParticleSystem) Particles() []*component.Particle {
	return s.particles
}

// Len returns the number of live bursts
func (s *ParticleSystem) Len() int {
	return len(s.particles)
}
