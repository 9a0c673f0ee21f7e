package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/paper-arena/component"
	"github.com/lixenwraith/paper-arena/physics"
	"github.com/lixenwraith/paper-arena/status"
	"github.com/lixenwraith/paper-arena/vmath"
)

// CollisionHooks are notified of gameplay outcomes, for sound and session flow
type CollisionHooks struct {
	OnPickup      func(id component.EntityID)
	OnEnemyKilled func(id component.EntityID)
	OnPlayerDeath func(by component.EntityID)
}

// CollisionResolver casts the player and bullet probes each tick
// It holds back-references only; removals go through the owning registries
type CollisionResolver struct {
	env       *Env
	player    *PlayerController
	walls     *WallField
	enemies   *EnemySpawner
	pickups   *PickupRegistry
	particles *ParticleSystem
	hooks     CollisionHooks

	statKills   *atomic.Int64
	statPickups *atomic.Int64
	statBumps   *atomic.Int64
}

// NewCollisionResolver wires the resolver to the registries it queries
func NewCollisionResolver(env *Env, player *PlayerController, walls *WallField, enemies *EnemySpawner,
	pickups *PickupRegistry, particles *ParticleSystem, hooks CollisionHooks) *CollisionResolver {
	return &CollisionResolver{
		env:         env,
		player:      player,
		walls:       walls,
		enemies:     enemies,
		pickups:     pickups,
		particles:   particles,
		hooks:       hooks,
		statKills:   env.Status.Int(status.Kills),
		statPickups: env.Status.Int(status.Pickups),
		statBumps:   env.Status.Int(status.WallBumps),
	}
}

func (r *CollisionResolver) Name() string {
	return "collision"
}

// CheckPlayer probes along the travel direction
// Returns true when an enemy was hit or touched, which ends the session
func (r *CollisionResolver) CheckPlayer() bool {
	cfg := r.env.Config
	p := r.player.Player()

	orientation := p.Orientation
	if p.Velocity[2] < 0 {
		orientation = vmath.Flip(orientation)
	}
	ray, ok := physics.NewRay(p.Position, vmath.ForwardOf(orientation), cfg.Collision.PlayerProbe)
	if !ok {
		return false
	}

	if hits := r.env.Scene.CastRay(ray, r.walls.IDs()); len(hits) > 0 {
		switch {
		case p.Velocity[2] > 0:
			p.Velocity[2] -= cfg.Collision.BumpForward
		case p.Velocity[2] < 0:
			p.Velocity[2] += cfg.Collision.BumpBackward
		}
		r.statBumps.Add(1)
	}

	if hits := r.env.Scene.CastRay(ray, r.enemies.IDs()); len(hits) > 0 {
		r.playerDeath(hits[0].Key)
		return true
	}
	if id, touched := r.enemyContact(); touched {
		r.playerDeath(id)
		return true
	}

	// Removing on first match makes a repeated hit on the same pickup miss the lookup
	for _, hit := range r.env.Scene.CastRay(ray, r.pickups.IDs()) {
		if _, ok := r.pickups.Find(hit.Key); !ok {
			continue
		}
		r.pickups.Remove(hit.Key)
		r.env.Scene.Remove(hit.Key)
		r.player.AddAmmo(cfg.Pickup.AmmoBonus)
		r.player.AddScore(float64(cfg.Pickup.ScoreBonus))
		r.statPickups.Add(1)
		if r.hooks.OnPickup != nil {
			r.hooks.OnPickup(hit.Key)
		}
	}
	return false
}

// enemyContact reports an enemy body overlapping the player
func (r *CollisionResolver) enemyContact() (component.EntityID, bool) {
	pos := r.player.Player().Position
	radius := r.env.Config.Enemy.ContactRadius
	var hit component.EntityID
	found := false
	r.enemies.Each(func(e *component.Enemy) {
		if found || !e.Placed {
			return
		}
		if vmath.HorizontalDistance(e.Position, pos) <= radius {
			hit, found = e.ID, true
		}
	})
	return hit, found
}

func (r *CollisionResolver) playerDeath(by component.EntityID) {
	r.env.Logger.Info("player caught", "enemy", string(by))
	if r.hooks.OnPlayerDeath != nil {
		r.hooks.OnPlayerDeath(by)
	}
}

// CheckBullets probes every live projectile against walls and enemies
// The probe runs from the position before this tick's move to the probe length past the current one
// Removals are collected during the scan and applied after it
func (r *CollisionResolver) CheckBullets(now time.Time) {
	cfg := r.env.Config
	candidates := append(append([]component.EntityID{}, r.walls.IDs()...), r.enemies.IDs()...)

	var killed []component.EntityID
	dead := make(map[component.EntityID]bool)

	for _, b := range r.player.Bullets() {
		if b.Collided {
			continue
		}
		reach := b.Position.Sub(b.Previous).Len() + cfg.Collision.BulletProbe
		ray, ok := physics.NewRay(b.Previous, b.Velocity, reach)
		if !ok {
			continue
		}
		hits := r.env.Scene.CastRay(ray, candidates)
		if len(hits) == 0 {
			continue
		}

		hit := hits[0]
		r.particles.Spawn(now, hit.Point)
		b.Collided = true

		if _, isEnemy := r.enemies.Find(hit.Key); isEnemy && !dead[hit.Key] {
			dead[hit.Key] = true
			killed = append(killed, hit.Key)
			r.player.AddScore(float64(cfg.Collision.EnemyKillScore))
		}
	}

	r.player.RemoveCollided()
	for _, id := range killed {
		if r.enemies.Remove(id) {
			r.statKills.Add(1)
			if r.hooks.OnEnemyKilled != nil {
				r.hooks.OnEnemyKilled(id)
			}
		}
	}
}
