package system

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paper-arena/component"
	"github.com/lixenwraith/paper-arena/parameter"
	"github.com/lixenwraith/paper-arena/physics"
	"github.com/lixenwraith/paper-arena/scene"
	"github.com/lixenwraith/paper-arena/vmath"
)

// wallRow places one perimeter row: segments step along axis from start
type wallRow struct {
	start mgl64.Vec3
	axis  mgl64.Vec3
	half  mgl64.Vec3
}

// perimeterRows are the four arena edges; rows along X use long-X boxes, rows along Z long-Z boxes
var perimeterRows = [4]wallRow{
	{start: mgl64.Vec3{-parameter.ArenaHalfSize, 0, parameter.WallRowInsetEdge}, axis: vmath.Right,
		half: mgl64.Vec3{parameter.WallLength / 2, parameter.WallHeight / 2, parameter.WallThickness / 2}},
	{start: mgl64.Vec3{parameter.ArenaHalfSize, 0, -parameter.ArenaHalfSize}, axis: vmath.Forward,
		half: mgl64.Vec3{parameter.WallThickness / 2, parameter.WallHeight / 2, parameter.WallLength / 2}},
	{start: mgl64.Vec3{-parameter.ArenaHalfSize, 0, -parameter.ArenaHalfSize}, axis: vmath.Forward,
		half: mgl64.Vec3{parameter.WallThickness / 2, parameter.WallHeight / 2, parameter.WallLength / 2}},
	{start: mgl64.Vec3{-parameter.ArenaHalfSize, 0, -parameter.WallRowInsetEdge}, axis: vmath.Right,
		half: mgl64.Vec3{parameter.WallLength / 2, parameter.WallHeight / 2, parameter.WallThickness / 2}},
}

// WallField is the oscillating perimeter
// Heights are a pure function of absolute elapsed time, so nothing accumulates between ticks
type WallField struct {
	env      *Env
	segments []component.WallSegment
	ids      []component.EntityID
	start    time.Time
}

// NewWallField builds the four rows and adds them to the scene
func NewWallField(env *Env, start time.Time) *WallField {
	cfg := &env.Config.Wall
	f := &WallField{env: env, start: start}

	for row, r := range perimeterRows {
		for j := 0; j < cfg.PerRow; j++ {
			i := len(f.segments)
			seg := component.WallSegment{
				ID:          component.EntityID(fmt.Sprintf("wall-%d", i)),
				Index:       i,
				Row:         row,
				Base:        r.start.Add(r.axis.Mul(float64(j) * cfg.Spacing)),
				Period:      cfg.Periods[row],
				MinHeight:   cfg.MinHeight,
				MaxHeight:   cfg.MaxHeight,
				HalfExtents: r.half,
			}
			seg.Position = seg.Base
			seg.Position[1] = WallHeight(&seg, 0, cfg.PhaseStep)

			f.segments = append(f.segments, seg)
			f.ids = append(f.ids, seg.ID)
			env.Scene.Add(seg.ID, scene.Body{
				Kind:     component.KindWall,
				Collider: physics.Box(seg.HalfExtents, mgl64.Vec3{}),
			})
			env.Scene.SetTransform(seg.ID, seg.Position, vmath.Identity())
		}
	}
	return f
}

func (f *WallField) Name() string {
	return "wall"
}

// WallHeight is y = min + range·(0.5 + 0.5·sin(elapsed_ms/period_ms + index·phaseStep))
func WallHeight(seg *component.WallSegment, elapsed time.Duration, phaseStep float64) float64 {
	span := seg.MaxHeight - seg.MinHeight
	phase := float64(elapsed)/float64(seg.Period) + float64(seg.Index)*phaseStep
	y := seg.MinHeight + span*(0.5+0.5*math.Sin(phase))
	return min(max(y, seg.MinHeight), seg.MaxHeight)
}

// Update recomputes every segment height for now
func (f *WallField) Update(now time.Time) {
	elapsed := now.Sub(f.start)
	step := f.env.Config.Wall.PhaseStep
	for i := range f.segments {
		seg := &f.segments[i]
		seg.Position[1] = WallHeight(seg, elapsed, step)
		f.env.Scene.SetTransform(seg.ID, seg.Position, vmath.Identity())
	}
}

// IDs returns wall identities for ray candidates
func (f *WallField) IDs() []component.EntityID {
	return f.ids
}

// Segments exposes the walls read-only
func (f *WallField) Segments() []component.WallSegment {
	return f.segments
}

// Len returns the segment count
func (f *WallField) Len() int {
	return len(f.segments)
}

// Reset restarts the oscillation clock at start
func (f *WallField) Reset(start time.Time) {
	f.start = start
	f.Update(start)
}
