package physics

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/paper-arena/vmath"
)

// parallelEpsilon is the direction component below which a ray is treated as parallel to a slab
const parallelEpsilon = 1e-8

// Ray is a bounded directional probe
// Direction is unit length; MaxDistance bounds accepted hits
type Ray struct {
	Origin      mgl64.Vec3
	Direction   mgl64.Vec3
	MaxDistance float64
}

// NewRay builds a ray with a normalized direction
// Returns false for a zero direction, which can never hit anything
func NewRay(origin, direction mgl64.Vec3, maxDistance float64) (Ray, bool) {
	dir := vmath.Normalize(direction)
	if vmath.IsZero(dir) || maxDistance <= 0 {
		return Ray{}, false
	}
	return Ray{Origin: origin, Direction: dir, MaxDistance: maxDistance}, true
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Hit is one ray intersection against a keyed collider
type Hit[K comparable] struct {
	Key      K
	Distance float64
	Point    mgl64.Vec3
}

// SortHits orders hits nearest first; equal distances keep insertion order
func SortHits[K comparable](hits []Hit[K]) {
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
}

// intersectAABB runs the slab test against box [min, max]
// An origin inside the box reports distance 0
func intersectAABB(r Ray, min, max mgl64.Vec3) (float64, bool) {
	tMin, tMax := 0.0, math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin[axis], r.Direction[axis]
		if math.Abs(d) < parallelEpsilon {
			if o < min[axis] || o > max[axis] {
				return 0, false
			}
			continue
		}

		t1 := (min[axis] - o) / d
		t2 := (max[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMin > r.MaxDistance {
		return 0, false
	}
	return tMin, true
}

// intersectSphere solves the ray/sphere quadratic; direction is unit so a == 1
// An origin inside the sphere reports distance 0
func intersectSphere(r Ray, center mgl64.Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	c := oc.Dot(oc) - radius*radius
	if c <= 0 {
		return 0, true
	}

	b := oc.Dot(r.Direction)
	if b > 0 {
		// Origin outside and pointing away
		return 0, false
	}

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	t := -b - math.Sqrt(disc)
	if t < 0 || t > r.MaxDistance {
		return 0, false
	}
	return t, true
}
