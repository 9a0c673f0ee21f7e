package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Identity is the no-rotation orientation (facing +Z)
func Identity() mgl64.Quat {
	return mgl64.QuatIdent()
}

// YawQuat builds an orientation rotated by angle radians about Up
func YawQuat(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, Up).Normalize()
}

// RotateYaw composes q with a rotation of angle radians about Up
// The result is renormalized so repeated composition does not drift
func RotateYaw(q mgl64.Quat, angle float64) mgl64.Quat {
	return q.Mul(mgl64.QuatRotate(angle, Up)).Normalize()
}

// Flip turns q half a revolution about Up
func Flip(q mgl64.Quat) mgl64.Quat {
	return RotateYaw(q, math.Pi)
}

// ForwardOf returns the unit forward vector of an orientation
func ForwardOf(q mgl64.Quat) mgl64.Vec3 {
	return Normalize(q.Rotate(Forward))
}

// RightOf returns the unit sideways vector of an orientation
func RightOf(q mgl64.Quat) mgl64.Vec3 {
	return Normalize(q.Rotate(Right))
}

// Yaw extracts the heading of q about Up, 0 facing +Z
func Yaw(q mgl64.Quat) float64 {
	f := ForwardOf(q)
	return math.Atan2(f[0], f[2])
}

// IsNormalized reports whether q is a unit quaternion within tolerance
func IsNormalized(q mgl64.Quat) bool {
	return math.Abs(q.Len()-1) < 1e-9
}
