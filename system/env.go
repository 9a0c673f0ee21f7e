package system

import (
	"log/slog"
	"math/rand/v2"

	"github.com/lixenwraith/paper-arena/asset"
	"github.com/lixenwraith/paper-arena/config"
	"github.com/lixenwraith/paper-arena/scene"
	"github.com/lixenwraith/paper-arena/status"
)

// Env carries the collaborators every system shares
// Systems keep a pointer and cache their metric pointers at construction
type Env struct {
	Config *config.Config
	Scene  scene.Scene
	Assets asset.Loader
	Status *status.Registry
	Logger *slog.Logger
	Rand   *rand.Rand
}

// NewEnv fills missing optional collaborators
func NewEnv(cfg *config.Config, sc scene.Scene, assets asset.Loader, logger *slog.Logger) *Env {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Env{
		Config: cfg,
		Scene:  sc,
		Assets: assets,
		Status: status.NewRegistry(),
		Logger: logger,
		Rand:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// uniform returns a value in [-half, half)
func (e *Env) uniform(half float64) float64 {
	return e.Rand.Float64()*2*half - half
}
