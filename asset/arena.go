package asset

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paper-arena/parameter"
)

// NewArenaCatalog returns a catalog holding the character, enemy and locomotion clips
func NewArenaCatalog(latency time.Duration, logger *slog.Logger) *Catalog {
	c := NewCatalog(latency, logger)
	c.RegisterModel(Model{
		Path:        parameter.PlayerModelPath,
		HalfExtents: mgl64.Vec3{parameter.PlayerModelHalfWidth, parameter.PlayerModelHalfHeight, parameter.PlayerModelHalfWidth},
	})
	c.RegisterModel(Model{
		Path:        parameter.EnemyModelPath,
		HalfExtents: mgl64.Vec3{parameter.EnemyModelHalfWidth, parameter.EnemyModelHalfHeight, parameter.EnemyModelHalfWidth},
	})
	c.RegisterClip(Clip{Name: "idle", Path: parameter.IdleClipPath, Duration: parameter.IdleClipDuration})
	c.RegisterClip(Clip{Name: "walk", Path: parameter.WalkClipPath, Duration: parameter.WalkClipDuration})
	c.RegisterClip(Clip{Name: "run", Path: parameter.RunClipPath, Duration: parameter.RunClipDuration})
	return c
}
