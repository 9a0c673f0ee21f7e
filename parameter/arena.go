package parameter

import (
	"time"
)

// Arena Layout
const (
	// ArenaHalfSize is half the side of the square floor; spawns land in ±ArenaHalfSize
	ArenaHalfSize = 250.0

	// FloorY is the height of the floor plane
	FloorY = -8.0

	// ReferenceFPS converts per-frame tuning values into per-second rates
	ReferenceFPS = 60.0
)

// Player Movement
const (
	// PlayerDragX/Y/Z are per-axis deceleration coefficients applied as v += v*drag*dt
	PlayerDragX = -0.0005
	PlayerDragY = -0.0001
	PlayerDragZ = -5.0

	// PlayerAccelX/Y/Z: Z drives forward speed, Y drives turn rate
	PlayerAccelX = 1.0
	PlayerAccelY = 0.25
	PlayerAccelZ = 50.0

	// PlayerSpeedMultiplier scales forward acceleration
	PlayerSpeedMultiplier = 3.0

	// PlayerSprintFactor multiplies acceleration while sprint is held
	PlayerSprintFactor = 2.0

	// PlayerTurnRate is the angular factor applied with accel.y: ±4π·dt·accel.y
	PlayerTurnRate = 4.0

	// PlayerStartAmmo is the ammunition at session start
	PlayerStartAmmo = 10

	// PlayerBodyRadius is used for enemy contact checks
	PlayerBodyRadius = 4.0
)

// Firing
const (
	// FireCooldown is the minimum interval between shots
	FireCooldown = 800 * time.Millisecond

	// MuzzleSpeed is projectile speed in units/sec
	MuzzleSpeed = 100.0

	// MuzzleHeight lifts the projectile spawn above the player origin
	MuzzleHeight = 10.0

	// ProjectileLifetime expires projectiles that hit nothing
	ProjectileLifetime = 3 * time.Second

	// ProjectileRadius is the visual radius of a projectile
	ProjectileRadius = 2.0
)

// Enemy Spawner
const (
	// EnemySpawnCountdown is the grace period before the first enemy
	EnemySpawnCountdown = 8 * time.Second

	// EnemySpawnInterval is the initial gap between enemies
	EnemySpawnInterval = 8 * time.Second

	// EnemyMinSpawnInterval floors the decaying interval
	EnemyMinSpawnInterval = 1600 * time.Millisecond

	// EnemySpawnDecay multiplies the interval after each spawn
	EnemySpawnDecay = 0.98

	// EnemySpeedInitial/Step/Max ramp per spawn, in units per reference frame
	EnemySpeedInitial = 0.2
	EnemySpeedStep    = 0.1
	EnemySpeedMax     = 1.2

	// EnemyScale is the uniform scale applied to the enemy model
	EnemyScale = 18.0

	// EnemyContactRadius is the reach at which an enemy touching the player ends the game
	EnemyContactRadius = 6.0
)

// Pickups
const (
	// PickupSpawnInterval is the fixed gap between ammo pickups
	PickupSpawnInterval = 8 * time.Second

	// PickupTTL removes an uncollected pickup
	PickupTTL = 10 * time.Second

	// PickupAmmoBonus and PickupScoreBonus are granted on collection
	PickupAmmoBonus  = 5
	PickupScoreBonus = 100

	// PickupSpinRate is the cosmetic rotation on X and Y in rad/sec
	PickupSpinRate = 1.0

	// PickupRadius is the collectible sphere around the pickup
	PickupRadius = 5.0
)

// Walls
const (
	WallMinHeight    = 10.0
	WallMaxHeight    = 30.0
	WallsPerRow      = 17
	WallSpacing      = 30.0
	WallPhaseStep    = 0.2
	WallLength       = 30.0
	WallThickness    = 10.0
	WallHeight       = 100.0
	WallRowInsetEdge = 245.0
)

// Collision
const (
	// PlayerProbeLength bounds the player's travel ray
	PlayerProbeLength = 10.0

	// BulletProbeLength bounds each projectile's ray; extended to the distance travelled in a tick
	BulletProbeLength = 3.0

	// WallBumpForward is subtracted from forward velocity on a wall hit; WallBumpBackward is added when reversing
	WallBumpForward  = 40.0
	WallBumpBackward = 30.0

	// EnemyKillScore is awarded for a projectile hit on an enemy
	EnemyKillScore = 500
)

// Particles
const (
	ParticleStartRadius = 1.0
	ParticleGrowthRate  = 20.0
	ParticleMaxRadius   = 10.0
	ParticleTTL         = 2 * time.Second
	ParticleMaxSize     = 0.5
)

// Camera
const (
	CameraOffsetX = -15.0
	CameraOffsetY = 20.0
	CameraOffsetZ = -30.0
	CameraLookX   = 0.0
	CameraLookY   = 10.0
	CameraLookZ   = 50.0

	// CameraSmoothing is the remaining fraction after one second: l = 1 - CameraSmoothing^dt
	CameraSmoothing = 0.001
)

// Animation
const (
	// CrossfadeDuration is the blend time between animation states
	CrossfadeDuration = 500 * time.Millisecond
)

// Session
const (
	// SurvivalScoreRate is raw score gained per second alive
	SurvivalScoreRate = 60.0

	// ScoreDivisor converts raw score to the displayed score
	ScoreDivisor = 100

	// MaxDeltaTime clamps a single tick's elapsed time
	MaxDeltaTime = 100 * time.Millisecond

	// PersistenceTimeout bounds the game-over score submit/fetch
	PersistenceTimeout = 5 * time.Second
)
