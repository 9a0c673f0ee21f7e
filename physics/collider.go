package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// ShapeKind selects the collider primitive
type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
)

// Collider is a shape in entity-local space, placed in the world by a position
// Boxes stay axis aligned; rotating bodies use symmetric extents so yaw does not matter
type Collider struct {
	Shape       ShapeKind
	HalfExtents mgl64.Vec3 // ShapeBox
	Radius      float64    // ShapeSphere
	Offset      mgl64.Vec3 // Local center relative to the entity position
}

// Box creates an axis-aligned box collider
func Box(halfExtents, offset mgl64.Vec3) Collider {
	return Collider{Shape: ShapeBox, HalfExtents: halfExtents, Offset: offset}
}

// Ball creates a sphere collider
func Ball(radius float64, offset mgl64.Vec3) Collider {
	return Collider{Shape: ShapeSphere, Radius: radius, Offset: offset}
}

// Raycast intersects r with the collider placed at position
func (c Collider) Raycast(r Ray, position mgl64.Vec3) (float64, bool) {
	center := position.Add(c.Offset)
	switch c.Shape {
	case ShapeBox:
		return intersectAABB(r, center.Sub(c.HalfExtents), center.Add(c.HalfExtents))
	case ShapeSphere:
		return intersectSphere(r, center, c.Radius)
	}
	return 0, false
}

// OverlapsSphere reports whether the collider at position touches a sphere
func (c Collider) OverlapsSphere(position, sphereCenter mgl64.Vec3, sphereRadius float64) bool {
	center := position.Add(c.Offset)
	switch c.Shape {
	case ShapeBox:
		min := center.Sub(c.HalfExtents)
		max := center.Add(c.HalfExtents)
		var distSq float64
		for axis := 0; axis < 3; axis++ {
			v := sphereCenter[axis]
			if v < min[axis] {
				distSq += (min[axis] - v) * (min[axis] - v)
			} else if v > max[axis] {
				distSq += (v - max[axis]) * (v - max[axis])
			}
		}
		return distSq <= sphereRadius*sphereRadius
	case ShapeSphere:
		d := sphereCenter.Sub(center)
		sum := c.Radius + sphereRadius
		return d.Dot(d) <= sum*sum
	}
	return false
}
