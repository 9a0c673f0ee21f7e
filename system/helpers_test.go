package system

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paper-arena/asset"
	"github.com/lixenwraith/paper-arena/component"
	"github.com/lixenwraith/paper-arena/config"
	"github.com/lixenwraith/paper-arena/scene"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const tick = 100 * time.Millisecond

// newTestEnv builds an env over a real scene graph with every asset already loaded
func newTestEnv() (*Env, *scene.Graph) {
	g := scene.NewGraph()
	env := NewEnv(config.Default(), g, asset.NewArenaCatalog(0, nil), nil)
	env.Rand = rand.New(rand.NewPCG(1, 2))
	return env, g
}

// pendingLoader hands out handles that stay pending until the test resolves them
type pendingLoader struct {
	models []*asset.Handle[asset.Model]
}

func (l *pendingLoader) LoadModel(path string) *asset.Handle[asset.Model] {
	h := asset.NewHandle[asset.Model]()
	l.models = append(l.models, h)
	return h
}

func (l *pendingLoader) LoadAnimationClip(path string) *asset.Handle[asset.Clip] {
	return asset.NewHandle[asset.Clip]()
}

// world is a full set of systems wired the way the session wires them
type world struct {
	env       *Env
	graph     *scene.Graph
	player    *PlayerController
	walls     *WallField
	enemies   *EnemySpawner
	pickups   *PickupRegistry
	spawner   *PickupSpawner
	particles *ParticleSystem
	resolver  *CollisionResolver

	deaths []string
	kills  []string
	picked []string
}

func newWorld() *world {
	env, g := newTestEnv()
	w := &world{env: env, graph: g}
	w.player = NewPlayerController(env)
	w.walls = NewWallField(env, epoch)
	w.enemies = NewEnemySpawner(env)
	w.pickups = NewPickupRegistry()
	w.spawner = NewPickupSpawner(env, w.pickups)
	w.particles = NewParticleSystem(env)
	w.resolver = NewCollisionResolver(env, w.player, w.walls, w.enemies, w.pickups, w.particles, CollisionHooks{
		OnPickup:      func(id component.EntityID) { w.picked = append(w.picked, string(id)) },
		OnEnemyKilled: func(id component.EntityID) { w.kills = append(w.kills, string(id)) },
		OnPlayerDeath: func(id component.EntityID) { w.deaths = append(w.deaths, string(id)) },
	})
	return w
}

// placeEnemy spawns an enemy and moves it to pos in both registry and scene
func (w *world) placeEnemy(pos mgl64.Vec3) component.EntityID {
	w.enemies.spawn()
	ids := w.enemies.IDs()
	id := ids[len(ids)-1]
	e, _ := w.enemies.Find(id)
	e.Position = pos
	w.graph.SetTransform(id, e.Position, e.Orientation)
	return id
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func approxVec(a, b mgl64.Vec3) bool {
	return approx(a[0], b[0]) && approx(a[1], b[1]) && approx(a[2], b[2])
}
