package system

import (
	"slices"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/lixenwraith/paper-arena/component"
	"github.com/lixenwraith/paper-arena/physics"
	"github.com/lixenwraith/paper-arena/scene"
	"github.com/lixenwraith/paper-arena/status"
)

// PickupRegistry is the single list of live pickups
// Shared by reference between every spawner and the collision resolver; mutated only inside a tick
type PickupRegistry struct {
	items []*component.Pickup
}

// NewPickupRegistry creates an empty registry
func NewPickupRegistry() *PickupRegistry {
	return &PickupRegistry{}
}

// Add appends a pickup
func (r *PickupRegistry) Add(p *component.Pickup) {
	r.items = append(r.items, p)
}

// Remove drops the pickup with id; false when it is already gone
func (r *PickupRegistry) Remove(id component.EntityID) bool {
	n := len(r.items)
	r.items = slices.DeleteFunc(r.items, func(p *component.Pickup) bool {
		return p.ID == id
	})
	return len(r.items) != n
}

// Find matches a pickup by identity
func (r *PickupRegistry) Find(id component.EntityID) (*component.Pickup, bool) {
	for _, p := range r.items {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Each visits pickups in insertion order
func (r *PickupRegistry) Each(fn func(*component.Pickup)) {
	for _, p := range r.items {
		fn(p)
	}
}

// IDs returns identities in insertion order
func (r *PickupRegistry) IDs() []component.EntityID {
	ids := make([]component.EntityID, 0, len(r.items))
	for _, p := range r.items {
		ids = append(ids, p.ID)
	}
	return ids
}

// Len returns the number of live pickups
func (r *PickupRegistry) Len() int {
	return len(r.items)
}

// Clear drops every pickup
func (r *PickupRegistry) Clear() {
	r.items = nil
}

// PickupSpawner drops ammo pickups on a fixed interval into a shared registry
type PickupSpawner struct {
	env      *Env
	registry *PickupRegistry

	nextSpawn time.Time
	started   bool

	statLive *atomic.Int64
}

// NewPickupSpawner creates a spawner feeding registry
func NewPickupSpawner(env *Env, registry *PickupRegistry) *PickupSpawner {
	return &PickupSpawner{
		env:      env,
		registry: registry,
		statLive: env.Status.Int(status.LivePickups),
	}
}

func (s *PickupSpawner) Name() string {
	return "pickup"
}

// Init removes all pickups this registry holds
func (s *PickupSpawner) Init() {
	s.registry.Each(func(p *component.Pickup) {
		s.env.Scene.Remove(p.ID)
	})
	s.registry.Clear()
	s.started = false
	s.statLive.Store(0)
}

// Start arms the first spawn one interval from now
func (s *PickupSpawner) Start(now time.Time) {
	s.nextSpawn = now.Add(s.env.Config.Pickup.Interval)
	s.started = true
}

// Update expires stale pickups, spins the rest and spawns when due
func (s *PickupSpawner) Update(now time.Time, dt time.Duration) {
	cfg := &s.env.Config.Pickup

	var expired []component.EntityID
	s.registry.Each(func(p *component.Pickup) {
		if !now.Before(p.ExpiresAt) {
			expired = append(expired, p.ID)
			return
		}
		spin := cfg.SpinRate * dt.Seconds()
		p.Rotation[0] += spin
		p.Rotation[1] += spin
		s.env.Scene.SetTransform(p.ID, p.Position, spinQuat(p.Rotation))
	})
	for _, id := range expired {
		s.registry.Remove(id)
		s.env.Scene.Remove(id)
	}

	if s.started && !now.Before(s.nextSpawn) {
		s.spawn(now)
		s.nextSpawn = now.Add(cfg.Interval)
	}
	s.statLive.Store(int64(s.registry.Len()))
}

func (s *PickupSpawner) spawn(now time.Time) {
	cfg := &s.env.Config.Pickup
	half := s.env.Config.Enemy.SpawnHalfSize

	p := &component.Pickup{
		ID:        component.EntityID(uuid.NewString()),
		Position:  mgl64.Vec3{s.env.uniform(half), 0, s.env.uniform(half)},
		SpawnedAt: now,
		ExpiresAt: now.Add(cfg.TTL),
	}
	s.registry.Add(p)
	s.env.Scene.Add(p.ID, scene.Body{
		Kind:     component.KindPickup,
		Collider: physics.Ball(cfg.Radius, mgl64.Vec3{}),
	})
	s.env.Scene.SetTransform(p.ID, p.Position, spinQuat(p.Rotation))
	s.env.Logger.Debug("pickup spawned", "id", string(p.ID))
}

// spinQuat converts the cosmetic X/Y spin into an orientation
func spinQuat(r mgl64.Vec3) mgl64.Quat {
	return mgl64.AnglesToQuat(r[0], r[1], 0, mgl64.XYZ).Normalize()
}
