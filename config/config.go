package config

import (
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/paper-arena/parameter"
)

// ErrInvalid marks a configuration that would break a simulation invariant
var ErrInvalid = errors.New("invalid config")

// PlayerConfig tunes movement and firing
type PlayerConfig struct {
	Drag            mgl64.Vec3    `yaml:"drag"`
	Accel           mgl64.Vec3    `yaml:"accel"`
	SpeedMultiplier float64       `yaml:"speed_multiplier"`
	SprintFactor    float64       `yaml:"sprint_factor"`
	TurnRate        float64       `yaml:"turn_rate"`
	StartAmmo       int           `yaml:"start_ammo"`
	FireCooldown    time.Duration `yaml:"fire_cooldown"`
	MuzzleSpeed     float64       `yaml:"muzzle_speed"`
	MuzzleHeight    float64       `yaml:"muzzle_height"`
	BulletLifetime  time.Duration `yaml:"bullet_lifetime"`
	BodyRadius      float64       `yaml:"body_radius"`
}

// EnemyConfig tunes the spawner difficulty ramp
type EnemyConfig struct {
	Countdown     time.Duration `yaml:"countdown"`
	Interval      time.Duration `yaml:"interval"`
	MinInterval   time.Duration `yaml:"min_interval"`
	Decay         float64       `yaml:"decay"`
	SpeedInitial  float64       `yaml:"speed_initial"`
	SpeedStep     float64       `yaml:"speed_step"`
	SpeedMax      float64       `yaml:"speed_max"`
	Scale         float64       `yaml:"scale"`
	ContactRadius float64       `yaml:"contact_radius"`
	SpawnHalfSize float64       `yaml:"spawn_half_size"`
	SpawnY        float64       `yaml:"spawn_y"`
}

// PickupConfig tunes ammo pickups
type PickupConfig struct {
	Interval   time.Duration `yaml:"interval"`
	TTL        time.Duration `yaml:"ttl"`
	AmmoBonus  int           `yaml:"ammo_bonus"`
	ScoreBonus int           `yaml:"score_bonus"`
	SpinRate   float64       `yaml:"spin_rate"`
	Radius     float64       `yaml:"radius"`
}

// WallConfig shapes the perimeter field
type WallConfig struct {
	MinHeight float64         `yaml:"min_height"`
	MaxHeight float64         `yaml:"max_height"`
	PerRow    int             `yaml:"per_row"`
	Spacing   float64         `yaml:"spacing"`
	PhaseStep float64         `yaml:"phase_step"`
	Periods   []time.Duration `yaml:"periods"`
}

// CollisionConfig tunes ray probes and their effects
type CollisionConfig struct {
	PlayerProbe    float64 `yaml:"player_probe"`
	BulletProbe    float64 `yaml:"bullet_probe"`
	BumpForward    float64 `yaml:"bump_forward"`
	BumpBackward   float64 `yaml:"bump_backward"`
	EnemyKillScore int     `yaml:"enemy_kill_score"`
}

// ParticleConfig tunes impact bursts
type ParticleConfig struct {
	StartRadius float64       `yaml:"start_radius"`
	GrowthRate  float64       `yaml:"growth_rate"`
	MaxRadius   float64       `yaml:"max_radius"`
	TTL         time.Duration `yaml:"ttl"`
}

// CameraConfig positions the follow camera relative to the player
type CameraConfig struct {
	Offset    mgl64.Vec3 `yaml:"offset"`
	LookAt    mgl64.Vec3 `yaml:"look_at"`
	Smoothing float64    `yaml:"smoothing"`
}

// SessionConfig tunes the frame loop and scoring
type SessionConfig struct {
	SurvivalRate       float64       `yaml:"survival_rate"`
	ScoreDivisor       int           `yaml:"score_divisor"`
	MaxDelta           time.Duration `yaml:"max_delta"`
	Crossfade          time.Duration `yaml:"crossfade"`
	PersistenceTimeout time.Duration `yaml:"persistence_timeout"`
}

// AudioConfig toggles sound
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// AssetConfig tunes the procedural asset loader
type AssetConfig struct {
	LoadLatency time.Duration `yaml:"load_latency"`
}

// Config is the full set of tunables
type Config struct {
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Pickup    PickupConfig    `yaml:"pickup"`
	Wall      WallConfig      `yaml:"wall"`
	Collision CollisionConfig `yaml:"collision"`
	Particle  ParticleConfig  `yaml:"particle"`
	Camera    CameraConfig    `yaml:"camera"`
	Session   SessionConfig   `yaml:"session"`
	Audio     AudioConfig     `yaml:"audio"`
	Assets    AssetConfig     `yaml:"assets"`
}

// Default returns the canonical tuning
func Default() *Config {
	return &Config{
		Player: PlayerConfig{
			Drag:            mgl64.Vec3{parameter.PlayerDragX, parameter.PlayerDragY, parameter.PlayerDragZ},
			Accel:           mgl64.Vec3{parameter.PlayerAccelX, parameter.PlayerAccelY, parameter.PlayerAccelZ},
			SpeedMultiplier: parameter.PlayerSpeedMultiplier,
			SprintFactor:    parameter.PlayerSprintFactor,
			TurnRate:        parameter.PlayerTurnRate,
			StartAmmo:       parameter.PlayerStartAmmo,
			FireCooldown:    parameter.FireCooldown,
			MuzzleSpeed:     parameter.MuzzleSpeed,
			MuzzleHeight:    parameter.MuzzleHeight,
			BulletLifetime:  parameter.ProjectileLifetime,
			BodyRadius:      parameter.PlayerBodyRadius,
		},
		Enemy: EnemyConfig{
			Countdown:     parameter.EnemySpawnCountdown,
			Interval:      parameter.EnemySpawnInterval,
			MinInterval:   parameter.EnemyMinSpawnInterval,
			Decay:         parameter.EnemySpawnDecay,
			SpeedInitial:  parameter.EnemySpeedInitial,
			SpeedStep:     parameter.EnemySpeedStep,
			SpeedMax:      parameter.EnemySpeedMax,
			Scale:         parameter.EnemyScale,
			ContactRadius: parameter.EnemyContactRadius,
			SpawnHalfSize: parameter.ArenaHalfSize,
			SpawnY:        parameter.FloorY,
		},
		Pickup: PickupConfig{
			Interval:   parameter.PickupSpawnInterval,
			TTL:        parameter.PickupTTL,
			AmmoBonus:  parameter.PickupAmmoBonus,
			ScoreBonus: parameter.PickupScoreBonus,
			SpinRate:   parameter.PickupSpinRate,
			Radius:     parameter.PickupRadius,
		},
		Wall: WallConfig{
			MinHeight: parameter.WallMinHeight,
			MaxHeight: parameter.WallMaxHeight,
			PerRow:    parameter.WallsPerRow,
			Spacing:   parameter.WallSpacing,
			PhaseStep: parameter.WallPhaseStep,
			Periods: []time.Duration{
				3000 * time.Millisecond,
				2000 * time.Millisecond,
				4000 * time.Millisecond,
				3000 * time.Millisecond,
			},
		},
		Collision: CollisionConfig{
			PlayerProbe:    parameter.PlayerProbeLength,
			BulletProbe:    parameter.BulletProbeLength,
			BumpForward:    parameter.WallBumpForward,
			BumpBackward:   parameter.WallBumpBackward,
			EnemyKillScore: parameter.EnemyKillScore,
		},
		Particle: ParticleConfig{
			StartRadius: parameter.ParticleStartRadius,
			GrowthRate:  parameter.ParticleGrowthRate,
			MaxRadius:   parameter.ParticleMaxRadius,
			TTL:         parameter.ParticleTTL,
		},
		Camera: CameraConfig{
			Offset:    mgl64.Vec3{parameter.CameraOffsetX, parameter.CameraOffsetY, parameter.CameraOffsetZ},
			LookAt:    mgl64.Vec3{parameter.CameraLookX, parameter.CameraLookY, parameter.CameraLookZ},
			Smoothing: parameter.CameraSmoothing,
		},
		Session: SessionConfig{
			SurvivalRate:       parameter.SurvivalScoreRate,
			ScoreDivisor:       parameter.ScoreDivisor,
			MaxDelta:           parameter.MaxDeltaTime,
			Crossfade:          parameter.CrossfadeDuration,
			PersistenceTimeout: parameter.PersistenceTimeout,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioMasterVolume,
		},
	}
}

// Load overlays a YAML file onto the defaults
// Keys missing from the file keep their default values
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate rejects values that would break spawn ramps, ammo accounting or the frame clamp
func (c *Config) Validate() error {
	switch {
	case c.Player.StartAmmo < 0:
		return errors.Wrap(ErrInvalid, "player.start_ammo must be >= 0")
	case c.Player.FireCooldown < 0:
		return errors.Wrap(ErrInvalid, "player.fire_cooldown must be >= 0")
	case c.Player.BulletLifetime <= 0:
		return errors.Wrap(ErrInvalid, "player.bullet_lifetime must be > 0")
	case c.Enemy.Interval <= 0 || c.Enemy.MinInterval <= 0:
		return errors.Wrap(ErrInvalid, "enemy intervals must be > 0")
	case c.Enemy.MinInterval > c.Enemy.Interval:
		return errors.Wrapf(ErrInvalid, "enemy.min_interval %v above interval %v", c.Enemy.MinInterval, c.Enemy.Interval)
	case c.Enemy.Decay <= 0 || c.Enemy.Decay > 1:
		return errors.Wrapf(ErrInvalid, "enemy.decay %v outside (0,1]", c.Enemy.Decay)
	case c.Enemy.Countdown < 0:
		return errors.Wrap(ErrInvalid, "enemy.countdown must be >= 0")
	case c.Pickup.Interval <= 0 || c.Pickup.TTL <= 0:
		return errors.Wrap(ErrInvalid, "pickup interval and ttl must be > 0")
	case c.Pickup.AmmoBonus < 0 || c.Pickup.ScoreBonus < 0:
		return errors.Wrap(ErrInvalid, "pickup bonuses must be >= 0")
	case c.Wall.MinHeight > c.Wall.MaxHeight:
		return errors.Wrapf(ErrInvalid, "wall.min_height %v above max_height %v", c.Wall.MinHeight, c.Wall.MaxHeight)
	case c.Wall.PerRow <= 0 || len(c.Wall.Periods) != 4:
		return errors.Wrap(ErrInvalid, "wall needs per_row > 0 and four row periods")
	case c.Particle.TTL <= 0 || c.Particle.MaxRadius <= 0:
		return errors.Wrap(ErrInvalid, "particle ttl and max_radius must be > 0")
	case c.Session.MaxDelta <= 0:
		return errors.Wrap(ErrInvalid, "session.max_delta must be > 0")
	case c.Session.ScoreDivisor <= 0:
		return errors.Wrap(ErrInvalid, "session.score_divisor must be > 0")
	case c.Camera.Smoothing <= 0 || c.Camera.Smoothing >= 1:
		return errors.Wrapf(ErrInvalid, "camera.smoothing %v outside (0,1)", c.Camera.Smoothing)
	}
	for i, p := range c.Wall.Periods {
		if p <= 0 {
			return errors.Wrapf(ErrInvalid, "wall.periods[%d] must be > 0", i)
		}
	}
	return nil
}
