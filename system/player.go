package system

import (
	"fmt"
	"math"
	"slices"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paper-arena/animation"
	"github.com/lixenwraith/paper-arena/asset"
	"github.com/lixenwraith/paper-arena/component"
	"github.com/lixenwraith/paper-arena/input"
	"github.com/lixenwraith/paper-arena/parameter"
	"github.com/lixenwraith/paper-arena/physics"
	"github.com/lixenwraith/paper-arena/scene"
	"github.com/lixenwraith/paper-arena/status"
	"github.com/lixenwraith/paper-arena/vmath"
)

// PlayerID is the player's scene identity
const PlayerID component.EntityID = "player"

// PlayerController owns player kinematics, firing and the projectile list
type PlayerController struct {
	env *Env

	player  component.Player
	bullets []*component.Projectile
	anim    *animation.Machine
	model   *asset.Handle[asset.Model]
	placed  bool

	bulletSeq uint64

	// OnFire runs after a successful shot
	OnFire func()

	statShots   *atomic.Int64
	statBullets *atomic.Int64
}

// NewPlayerController creates the player at the origin facing +Z and starts loading its assets
func NewPlayerController(env *Env) *PlayerController {
	c := &PlayerController{
		env:         env,
		statShots:   env.Status.Int(status.Shots),
		statBullets: env.Status.Int(status.LiveBullets),
	}
	c.anim = animation.NewMachine(animation.Clips{
		Idle: env.Assets.LoadAnimationClip(parameter.IdleClipPath),
		Walk: env.Assets.LoadAnimationClip(parameter.WalkClipPath),
		Run:  env.Assets.LoadAnimationClip(parameter.RunClipPath),
	}, env.Config.Session.Crossfade, env.Logger)
	c.anim.OnEnter = func(_, to animation.State) {
		env.Status.Label(status.AnimState).Set(to.String())
	}
	c.model = env.Assets.LoadModel(parameter.PlayerModelPath)
	c.Init()
	return c
}

// Init resets the player to the session start state
func (c *PlayerController) Init() {
	for _, b := range c.bullets {
		c.env.Scene.Remove(b.ID)
	}
	c.player = component.Player{
		ID:          PlayerID,
		Orientation: vmath.Identity(),
		Ammo:        c.env.Config.Player.StartAmmo,
	}
	c.bullets = nil
	c.statBullets.Store(0)
	c.env.Scene.Remove(PlayerID)
	c.placed = false
	c.anim.Reset()
}

func (c *PlayerController) Name() string {
	return "player"
}

// Player exposes the entity for collision and display
func (c *PlayerController) Player() *component.Player {
	return &c.player
}

// Bullets returns the live projectiles in fire order
func (c *PlayerController) Bullets() []*component.Projectile {
	return c.bullets
}

// Animation exposes the locomotion state machine
func (c *PlayerController) Animation() *animation.Machine {
	return c.anim
}

// Update advances the player one tick
func (c *PlayerController) Update(now time.Time, dt time.Duration, in input.Snapshot) {
	secs := dt.Seconds()
	cfg := &c.env.Config.Player
	p := &c.player

	c.applyDrag(secs)

	acc := cfg.Accel
	if in.Sprint {
		acc = acc.Mul(cfg.SprintFactor)
	}
	if in.Forward {
		p.Velocity[2] += acc[2] * cfg.SpeedMultiplier * secs
	}
	if in.Backward {
		p.Velocity[2] -= acc[2] * cfg.SpeedMultiplier * secs
	}
	// Sprint scales thrust only
	turn := cfg.TurnRate * math.Pi * secs * cfg.Accel[1]
	if in.Left {
		p.Orientation = vmath.RotateYaw(p.Orientation, turn)
	}
	if in.Right {
		p.Orientation = vmath.RotateYaw(p.Orientation, -turn)
	}

	if in.Fire {
		c.Fire(now)
	}

	forward := vmath.ForwardOf(p.Orientation).Mul(p.Velocity[2] * secs)
	sideways := vmath.RightOf(p.Orientation).Mul(p.Velocity[0] * secs)
	p.Position = p.Position.Add(forward).Add(sideways)

	c.advanceBullets(now, secs)
	c.anim.Update(dt, in)
	c.place()
}

// applyDrag decelerates proportionally to velocity
// The forward term never exceeds the forward acceleration or the speed itself, so drag cannot reverse motion
func (c *PlayerController) applyDrag(secs float64) {
	cfg := &c.env.Config.Player
	v := &c.player.Velocity

	decel := vmath.MulComponents(*v, cfg.Drag).Mul(secs)
	decel[2] = vmath.Sign(decel[2]) * math.Min(math.Abs(decel[2]), math.Min(math.Abs(cfg.Accel[2]), math.Abs(v[2])))
	*v = v.Add(decel)
}

// Fire spawns a projectile along the player's forward direction
// Returns false with no effect when out of ammo or cooling down
func (c *PlayerController) Fire(now time.Time) bool {
	cfg := &c.env.Config.Player
	p := &c.player

	if p.Ammo <= 0 || p.CoolingDown(now) {
		return false
	}

	p.Ammo--
	clampNonNegative("ammo", &p.Ammo, c.env.Logger)
	p.CooldownUntil = now.Add(cfg.FireCooldown)

	c.bulletSeq++
	b := &component.Projectile{
		ID:        component.EntityID(fmt.Sprintf("bullet-%d", c.bulletSeq)),
		Position:  p.Position.Add(mgl64.Vec3{0, cfg.MuzzleHeight, 0}),
		Velocity:  vmath.ForwardOf(p.Orientation).Mul(cfg.MuzzleSpeed),
		ExpiresAt: now.Add(cfg.BulletLifetime),
	}
	b.Previous = b.Position
	c.bullets = append(c.bullets, b)
	c.env.Scene.Add(b.ID, scene.Body{
		Kind:     component.KindProjectile,
		Collider: physics.Ball(parameter.ProjectileRadius, mgl64.Vec3{}),
	})
	c.env.Scene.SetTransform(b.ID, b.Position, vmath.Identity())

	c.statShots.Add(1)
	c.statBullets.Store(int64(len(c.bullets)))
	if c.OnFire != nil {
		c.OnFire()
	}
	return true
}

// advanceBullets moves projectiles and drops those past their lifetime
func (c *PlayerController) advanceBullets(now time.Time, secs float64) {
	for _, b := range c.bullets {
		if now.Before(b.ExpiresAt) {
			b.Previous = b.Position
			b.Position = b.Position.Add(b.Velocity.Mul(secs))
			c.env.Scene.SetTransform(b.ID, b.Position, vmath.Identity())
			continue
		}
		b.Collided = true
	}
	c.RemoveCollided()
}

// RemoveCollided drops every projectile marked collided from the list and the scene
func (c *PlayerController) RemoveCollided() int {
	before := len(c.bullets)
	c.bullets = slices.DeleteFunc(c.bullets, func(b *component.Projectile) bool {
		if b.Collided {
			c.env.Scene.Remove(b.ID)
			return true
		}
		return false
	})
	c.statBullets.Store(int64(len(c.bullets)))
	return before - len(c.bullets)
}

// AddAmmo grants ammunition
func (c *PlayerController) AddAmmo(n int) {
	c.player.Ammo += n
	clampNonNegative("ammo", &c.player.Ammo, c.env.Logger)
}

// AddScore adds raw score
func (c *PlayerController) AddScore(n float64) {
	c.player.Score += n
	clampNonNegative("score", &c.player.Score, c.env.Logger)
}

// place adds the player body once the model resolves and keeps its transform current
func (c *PlayerController) place() {
	if !c.placed {
		m, ok := c.model.Get()
		if !ok {
			return
		}
		c.env.Scene.Add(PlayerID, scene.Body{Kind: component.KindPlayer, Collider: m.Collider(1)})
		c.placed = true
		c.env.Logger.Debug("player model ready", "path", m.Path)
	}
	c.env.Scene.SetTransform(PlayerID, c.player.Position, c.player.Orientation)
}
