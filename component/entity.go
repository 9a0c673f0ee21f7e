package component

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// EntityID identifies an entity across the simulation and the scene
// Collision results carry the ID, never a pointer, so hits map back to registry entries
type EntityID string

// Kind tags what an entity is for collision filtering and rendering
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindProjectile
	KindEnemy
	KindPickup
	KindWall
	KindParticle
	KindFloor
)

var kindNames = [...]string{
	KindNone:       "none",
	KindPlayer:     "player",
	KindProjectile: "projectile",
	KindEnemy:      "enemy",
	KindPickup:     "pickup",
	KindWall:       "wall",
	KindParticle:   "particle",
	KindFloor:      "floor",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Player is the controlled character
type Player struct {
	ID          EntityID
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3 // local frame: Z forward, X sideways
	Orientation mgl64.Quat
	Ammo        int
	Score       float64 // raw score; displayed score is Score / divisor

	// CooldownUntil blocks firing while now is before it
	CooldownUntil time.Time
}

// CoolingDown reports whether a shot at now would be rejected by the cooldown
func (p *Player) CoolingDown(now time.Time) bool {
	return now.Before(p.CooldownUntil)
}

// Projectile is a thrown paper ball travelling in a straight line
type Projectile struct {
	ID       EntityID
	Position mgl64.Vec3
	Velocity mgl64.Vec3

	// Previous is the position before the last advance; bullet probes start here
	Previous mgl64.Vec3

	// Collided is set by the resolver; the projectile is dropped at the end of that tick
	Collided bool

	// ExpiresAt removes a projectile that never hit anything
	ExpiresAt time.Time
}

// Enemy pursues the player at a fixed per-entity speed
type Enemy struct {
	ID          EntityID
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Speed       float64 // units per reference frame
	Scale       float64

	// Placed is false until the model resolved and the enemy joined the scene
	Placed bool
}

// Pickup is a collectible ammo box with a self-expiring lifetime
type Pickup struct {
	ID        EntityID
	Position  mgl64.Vec3
	Rotation  mgl64.Vec3 // cosmetic Euler spin in radians
	SpawnedAt time.Time
	ExpiresAt time.Time
}

// WallSegment is one oscillating block of the arena perimeter
// Height is recomputed from absolute elapsed time, never integrated
type WallSegment struct {
	ID        EntityID
	Index     int // global index across all rows; drives the phase offset
	Row       int
	Base      mgl64.Vec3
	Position  mgl64.Vec3
	Period    time.Duration
	MinHeight float64
	MaxHeight float64
	// HalfExtents of the segment's box
	HalfExtents mgl64.Vec3
}

// Particle is a short-lived expanding burst at an impact point
type Particle struct {
	ID         EntityID
	Position   mgl64.Vec3
	Radius     float64
	GrowthRate float64
	MaxRadius  float64
	SpawnedAt  time.Time
	ExpiresAt  time.Time
}

// Expired reports whether the particle should be removed at now
func (p *Particle) Expired(now time.Time) bool {
	return p.Radius > p.MaxRadius || !now.Before(p.ExpiresAt)
}
