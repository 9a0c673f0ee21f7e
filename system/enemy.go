package system

import (
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paper-arena/asset"
	"github.com/lixenwraith/paper-arena/component"
	"github.com/lixenwraith/paper-arena/parameter"
	"github.com/lixenwraith/paper-arena/scene"
	"github.com/lixenwraith/paper-arena/status"
	"github.com/lixenwraith/paper-arena/vmath"
)

// enemyEntry pairs an enemy with its pending model
type enemyEntry struct {
	component.Enemy
	model *asset.Handle[asset.Model]
}

// EnemySpawner spawns pursuing enemies on a shrinking interval and owns their registry
type EnemySpawner struct {
	env *Env

	enemies   []*enemyEntry
	nextSpawn time.Time
	interval  time.Duration
	speed     float64
	seq       int
	started   bool

	// OnSpawn runs after an enemy joins the registry
	OnSpawn func(id component.EntityID)

	statSpawned *atomic.Int64
	statLive    *atomic.Int64
}

// NewEnemySpawner creates an idle spawner; Start arms the countdown
func NewEnemySpawner(env *Env) *EnemySpawner {
	s := &EnemySpawner{
		env:         env,
		statSpawned: env.Status.Int(status.EnemiesSpawned),
		statLive:    env.Status.Int(status.LiveEnemies),
	}
	s.Init()
	return s
}

// Init drops every enemy and restores the initial interval and speed
func (s *EnemySpawner) Init() {
	for _, e := range s.enemies {
		s.env.Scene.Remove(e.ID)
	}
	s.enemies = nil
	s.interval = s.env.Config.Enemy.Interval
	s.speed = s.env.Config.Enemy.SpeedInitial
	s.seq = 0
	s.started = false
	s.statLive.Store(0)
}

func (s *EnemySpawner) Name() string {
	return "enemy"
}

// Start arms the grace countdown from now
func (s *EnemySpawner) Start(now time.Time) {
	s.nextSpawn = now.Add(s.env.Config.Enemy.Countdown)
	s.started = true
}

// Interval returns the gap before the next spawn after the current one
func (s *EnemySpawner) Interval() time.Duration {
	return s.interval
}

// Speed returns the speed the next enemy will receive
func (s *EnemySpawner) Speed() float64 {
	return s.speed
}

// Len returns the number of live enemies
func (s *EnemySpawner) Len() int {
	return len(s.enemies)
}

// IDs returns live enemy identities in spawn order
func (s *EnemySpawner) IDs() []component.EntityID {
	ids := make([]component.EntityID, 0, len(s.enemies))
	for _, e := range s.enemies {
		ids = append(ids, e.ID)
	}
	return ids
}

// Find returns the enemy with id
func (s *EnemySpawner) Find(id component.EntityID) (*component.Enemy, bool) {
	for _, e := range s.enemies {
		if e.ID == id {
			return &e.Enemy, true
		}
	}
	return nil, false
}

// Each visits live enemies in spawn order
func (s *EnemySpawner) Each(fn func(*component.Enemy)) {
	for _, e := range s.enemies {
		fn(&e.Enemy)
	}
}

// Remove filters the enemy out of the registry and the scene by identity
func (s *EnemySpawner) Remove(id component.EntityID) bool {
	n := len(s.enemies)
	s.enemies = slices.DeleteFunc(s.enemies, func(e *enemyEntry) bool {
		return e.ID == id
	})
	if len(s.enemies) == n {
		return false
	}
	s.env.Scene.Remove(id)
	s.statLive.Store(int64(len(s.enemies)))
	return true
}

// Update spawns when due and moves every placed enemy toward target
func (s *EnemySpawner) Update(now time.Time, dt time.Duration, target mgl64.Vec3) {
	if s.started && !now.Before(s.nextSpawn) {
		s.spawn()
		s.nextSpawn = now.Add(s.interval)
	}

	for _, e := range s.enemies {
		if !e.Placed {
			s.tryPlace(e)
			continue
		}
		s.pursue(&e.Enemy, dt, target)
		s.env.Scene.SetTransform(e.ID, e.Position, e.Orientation)
	}
}

// spawn creates an enemy at a random arena point with the current speed, then ramps difficulty
func (s *EnemySpawner) spawn() {
	cfg := &s.env.Config.Enemy

	id := component.EntityID(fmt.Sprintf("enemy-%d", s.seq))
	s.seq++

	e := &enemyEntry{
		Enemy: component.Enemy{
			ID:          id,
			Position:    mgl64.Vec3{s.env.uniform(cfg.SpawnHalfSize), cfg.SpawnY, s.env.uniform(cfg.SpawnHalfSize)},
			Orientation: vmath.Identity(),
			Speed:       s.speed,
			Scale:       cfg.Scale,
		},
		model: s.env.Assets.LoadModel(parameter.EnemyModelPath),
	}
	s.enemies = append(s.enemies, e)
	s.tryPlace(e)

	s.speed = min(s.speed+cfg.SpeedStep, cfg.SpeedMax)
	s.interval = max(time.Duration(float64(s.interval)*cfg.Decay), cfg.MinInterval)

	s.statSpawned.Add(1)
	s.statLive.Store(int64(len(s.enemies)))
	s.env.Logger.Debug("enemy spawned", "id", string(id), "speed", e.Speed, "next_interval", s.interval)
	if s.OnSpawn != nil {
		s.OnSpawn(id)
	}
}

// tryPlace adds the enemy to the scene once its model resolved
// Until then it neither moves nor collides
func (s *EnemySpawner) tryPlace(e *enemyEntry) {
	m, ok := e.model.Get()
	if !ok {
		return
	}
	s.env.Scene.Add(e.ID, scene.Body{Kind: component.KindEnemy, Collider: m.Collider(e.Scale)})
	s.env.Scene.SetTransform(e.ID, e.Position, e.Orientation)
	e.Placed = true
}

// pursue turns the enemy toward target and steps along its new heading
// Speed is per reference frame, scaled by dt so movement is frame-rate independent
func (s *EnemySpawner) pursue(e *component.Enemy, dt time.Duration, target mgl64.Vec3) {
	flat := mgl64.Vec3{target[0], e.Position[1], target[2]}
	if vmath.HorizontalDistance(e.Position, flat) < 1e-9 {
		return
	}
	yaw := vmath.YawToward(e.Position, flat)
	e.Orientation = vmath.YawQuat(yaw)

	step := e.Speed * parameter.ReferenceFPS * dt.Seconds()
	e.Position = e.Position.Add(vmath.ForwardOf(e.Orientation).Mul(step))
}
