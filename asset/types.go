package asset

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/paper-arena/physics"
)

// Model describes a loaded mesh hierarchy as far as the simulation cares: its unscaled bounds
type Model struct {
	Path        string
	HalfExtents mgl64.Vec3 // Unscaled half size, model origin at the feet
}

// Collider returns a box standing on the model origin, scaled uniformly
func (m Model) Collider(scale float64) physics.Collider {
	half := m.HalfExtents.Mul(scale)
	return physics.Box(half, mgl64.Vec3{0, half[1], 0})
}

// Clip is an animation clip; only its length matters to playback timing
type Clip struct {
	Name     string
	Path     string
	Duration time.Duration
}

// Loader is the asset collaborator contract
// Both calls return immediately; completion is observed on a later tick
type Loader interface {
	LoadModel(path string) *Handle[Model]
	LoadAnimationClip(path string) *Handle[Clip]
}
