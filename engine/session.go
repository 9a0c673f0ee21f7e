package engine

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/paper-arena/asset"
	"github.com/lixenwraith/paper-arena/component"
	"github.com/lixenwraith/paper-arena/config"
	"github.com/lixenwraith/paper-arena/scene"
	"github.com/lixenwraith/paper-arena/status"
	"github.com/lixenwraith/paper-arena/system"
)

// Options wires a session to its collaborators
// Scene and Assets are required; nil Display, Sound, Persistence and Input become no-ops
type Options struct {
	Config      *config.Config
	Scene       scene.Scene
	Assets      asset.Loader
	Display     Display
	Persistence Persistence
	Sound       Sound
	Input       InputSource
	Clock       TimeProvider
	Token       string
	Logger      *slog.Logger
	Rand        *rand.Rand
}

// Result is the outcome of the game-over persistence round
// Err holds the remote failure when the session fell back to the local record
type Result struct {
	Final int
	Best  int
	Err   error
}

// GameSession owns the systems and runs one tick per frame
// All methods run on the frame goroutine; only persistence leaves it
type GameSession struct {
	env   *Env
	clock TimeProvider

	display     Display
	persistence Persistence
	sound       Sound
	input       InputSource
	token       string

	player    *system.PlayerController
	walls     *system.WallField
	enemies   *system.EnemySpawner
	pickups   *system.PickupRegistry
	spawner   *system.PickupSpawner
	particles *system.ParticleSystem
	camera    *system.ThirdPersonCamera
	resolver  *system.CollisionResolver

	last    time.Time
	started bool
	paused  bool
	over    bool

	pending chan Result
	result  *Result

	fpsStart  time.Time
	fpsFrames int
	statFPS   *status.Gauge
}

// Env is the shared system environment
type Env = system.Env

// NewGameSession builds the arena and every system; Start begins play
func NewGameSession(opts Options) (*GameSession, error) {
	if opts.Scene == nil {
		return nil, errors.New("session requires a scene")
	}
	if opts.Assets == nil {
		return nil, errors.New("session requires an asset loader")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	env := system.NewEnv(cfg, opts.Scene, opts.Assets, opts.Logger)
	if opts.Rand != nil {
		env.Rand = opts.Rand
	}

	s := &GameSession{
		env:         env,
		clock:       opts.Clock,
		display:     opts.Display,
		persistence: opts.Persistence,
		sound:       opts.Sound,
		input:       opts.Input,
		token:       opts.Token,
		statFPS:     env.Status.Gauge(status.FPS),
	}
	if s.clock == nil {
		s.clock = NewPausableClock(nil)
	}
	if s.display == nil {
		s.display = nopDisplay{}
	}
	if s.persistence == nil {
		s.persistence = nopPersistence{}
	}
	if s.sound == nil {
		s.sound = nopSound{}
	}
	if s.input == nil {
		s.input = noInput{}
	}

	now := s.clock.Now()
	s.player = system.NewPlayerController(env)
	s.player.OnFire = s.sound.Throw
	s.walls = system.NewWallField(env, now)
	s.enemies = system.NewEnemySpawner(env)
	s.pickups = system.NewPickupRegistry()
	s.spawner = system.NewPickupSpawner(env, s.pickups)
	s.particles = system.NewParticleSystem(env)
	s.camera = system.NewThirdPersonCamera(env)
	s.resolver = system.NewCollisionResolver(env, s.player, s.walls, s.enemies, s.pickups, s.particles, system.CollisionHooks{
		OnPickup: func(component.EntityID) { s.sound.Crumple() },
		OnEnemyKilled: func(id component.EntityID) {
			env.Logger.Debug("enemy destroyed", "id", string(id))
		},
	})
	return s, nil
}

// Now reads the session clock
func (s *GameSession) Now() time.Time {
	return s.clock.Now()
}

// Env exposes the shared environment, for the renderer's metric line
func (s *GameSession) Env() *Env {
	return s.env
}

// Status returns the session metrics
func (s *GameSession) Status() *status.Registry {
	return s.env.Status
}

// Player returns the live player entity
func (s *GameSession) Player() *component.Player {
	return s.player.Player()
}

// Enemies exposes the spawner, for inspection
func (s *GameSession) Enemies() *system.EnemySpawner {
	return s.enemies
}

// Pickups exposes the shared pickup registry
func (s *GameSession) Pickups() *system.PickupRegistry {
	return s.pickups
}

// Start arms the spawners, starts the music and pushes the initial HUD values
func (s *GameSession) Start(now time.Time) {
	s.last = now
	s.fpsStart = now
	s.fpsFrames = 0
	s.walls.Reset(now)
	s.enemies.Start(now)
	s.spawner.Start(now)
	s.started = true
	s.sound.StartBackground()
	s.pushHUD()
	s.env.Logger.Info("session started", "ammo", s.player.Player().Ammo)
}

// Tick advances the simulation to now
// Update order: walls, player and bullets, spawners, particles, camera, collisions
func (s *GameSession) Tick(now time.Time) {
	s.pollResult()
	if !s.started || s.over || s.paused {
		s.last = now
		return
	}

	dt := now.Sub(s.last)
	s.last = now
	dt = min(max(dt, 0), s.env.Config.Session.MaxDelta)

	in := s.input.Snapshot(now)
	s.player.AddScore(s.env.Config.Session.SurvivalRate * dt.Seconds())

	p := s.player.Player()
	s.walls.Update(now)
	s.player.Update(now, dt, in)
	s.enemies.Update(now, dt, p.Position)
	s.spawner.Update(now, dt)
	s.particles.Update(now, dt)
	s.camera.Update(dt, p.Position, p.Orientation)

	caught := s.resolver.CheckPlayer()
	if !caught {
		s.resolver.CheckBullets(now)
	}

	s.measureFPS(now)
	s.pushHUD()

	if caught {
		s.GameOver()
	}
}

func (s *GameSession) pushHUD() {
	s.display.UpdateScore(s.Score())
	s.display.UpdateAmmo(s.player.Player().Ammo)
}

func (s *GameSession) measureFPS(now time.Time) {
	s.fpsFrames++
	if elapsed := now.Sub(s.fpsStart); elapsed >= time.Second {
		s.statFPS.Set(float64(s.fpsFrames) / elapsed.Seconds())
		s.fpsStart = now
		s.fpsFrames = 0
	}
}

// Score is the displayed score: raw score over the configured divisor
func (s *GameSession) Score() int {
	return int(s.player.Player().Score) / s.env.Config.Session.ScoreDivisor
}

// Paused reports whether ticks are suspended
func (s *GameSession) Paused() bool {
	return s.paused
}

// Over reports whether the session has ended
func (s *GameSession) Over() bool {
	return s.over
}

// Result returns the presented game-over result, nil until the overlay is shown
func (s *GameSession) Result() *Result {
	return s.result
}

// Pause freezes the simulation and the game clock if it can be frozen
func (s *GameSession) Pause() {
	if s.paused || s.over {
		return
	}
	s.paused = true
	if pc, ok := s.clock.(pausable); ok {
		pc.Pause()
	}
	s.sound.StopBackground()
}

// Resume continues without a catch-up step
func (s *GameSession) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	if pc, ok := s.clock.(pausable); ok {
		pc.Resume()
	}
	s.last = s.clock.Now()
	s.sound.StartBackground()
}

// TogglePause flips between Pause and Resume
func (s *GameSession) TogglePause() {
	if s.paused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// GameOver halts the loop and starts the persistence round in the background
// The overlay is shown by a later Tick or by FinishGameOver; calling twice is a no-op
func (s *GameSession) GameOver() {
	if s.over {
		return
	}
	s.over = true
	final := s.Score()

	s.sound.Death()
	s.sound.StopBackground()
	s.env.Logger.Info("game over", "score", final, "kills", s.env.Status.Int(status.Kills).Load())

	ch := make(chan Result, 1)
	s.pending = ch
	timeout := s.env.Config.Session.PersistenceTimeout
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		ch <- s.persist(ctx, final)
	}()
}

// FinishGameOver waits for the persistence round and presents the overlay
// Returns nil immediately when no round is outstanding
func (s *GameSession) FinishGameOver(ctx context.Context) error {
	if s.pending == nil {
		return nil
	}
	select {
	case r := <-s.pending:
		s.present(r)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *GameSession) pollResult() {
	if s.pending == nil {
		return
	}
	select {
	case r := <-s.pending:
		s.present(r)
	default:
	}
}

func (s *GameSession) present(r Result) {
	s.pending = nil
	s.result = &r
	s.display.ShowGameOverOverlay(r.Final, r.Best)
}

// persist submits the score and resolves the best score to show
// Signed in: submit then fetch, with the local record read alongside as the fallback
func (s *GameSession) persist(ctx context.Context, final int) Result {
	if s.token == "" {
		best, err := s.persistence.FetchLocalHighScore(ctx)
		return s.resolveLocal(ctx, final, best, err)
	}

	var (
		g        errgroup.Group
		remote   int
		local    int
		localErr error
	)
	g.Go(func() error {
		// The fetch follows the submit so a token new to the leaderboard is known by then
		if err := s.persistence.SubmitScore(ctx, s.token, final); err != nil {
			return errors.Wrap(err, "submit score")
		}
		v, err := s.persistence.FetchUserScore(ctx, s.token)
		if err != nil {
			return errors.Wrap(err, "fetch user score")
		}
		remote = v
		return nil
	})
	g.Go(func() error {
		local, localErr = s.persistence.FetchLocalHighScore(ctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		s.env.Logger.Warn("remote score unavailable, using local record", "error", err)
		r := s.resolveLocal(ctx, final, local, localErr)
		r.Err = err
		return r
	}
	return Result{Final: final, Best: max(remote, final)}
}

// resolveLocal compares final against the local record and raises it when beaten
func (s *GameSession) resolveLocal(ctx context.Context, final, best int, err error) Result {
	if err != nil {
		s.env.Logger.Warn("local high score unreadable", "error", err)
		best = 0
	}
	if final > best {
		if err := s.persistence.StoreLocalHighScore(ctx, final); err != nil {
			s.env.Logger.Warn("local high score not stored", "error", err)
		}
		best = final
	}
	return Result{Final: final, Best: best}
}

// Restart resets every system for a new game at now
// An outstanding persistence round still completes but its overlay is dropped
func (s *GameSession) Restart(now time.Time) {
	s.pending = nil
	s.result = nil
	s.over = false
	if s.paused {
		s.paused = false
		if pc, ok := s.clock.(pausable); ok {
			pc.Resume()
		}
	}

	s.player.Init()
	s.enemies.Init()
	s.spawner.Init()
	s.particles.Init()
	s.camera.Init()
	s.env.Status.Reset()

	s.sound.StopBackground()
	s.Start(now)
}
