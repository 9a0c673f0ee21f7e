package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Basis vectors in the arena's right-handed, Y-up frame
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
	Right   = mgl64.Vec3{1, 0, 0}
)

// epsilon below which a vector is treated as zero length
const epsilon = 1e-12

// Normalize returns the unit vector of v, or the zero vector when v has no length
// mgl64.Vec3.Normalize yields NaN components for a zero vector
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// IsZero reports whether v has no usable length
func IsZero(v mgl64.Vec3) bool {
	return v.Len() < epsilon
}

// MulComponents multiplies two vectors per axis
func MulComponents(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Lerp interpolates from a toward b by t
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// HorizontalDistance returns the distance between a and b ignoring Y
func HorizontalDistance(a, b mgl64.Vec3) float64 {
	dx := b[0] - a[0]
	dz := b[2] - a[2]
	return math.Sqrt(dx*dx + dz*dz)
}

// YawToward returns the rotation about Up that turns Forward toward target as seen from origin
// Matches atan2(dx, dz) so yaw 0 faces +Z
func YawToward(origin, target mgl64.Vec3) float64 {
	d := Normalize(target.Sub(origin))
	return math.Atan2(d[0], d[2])
}

// Sign returns -1, 0 or 1
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
