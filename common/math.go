package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the float32 machine epsilon. It is added to distances that are used as scale
// factors so a camera sitting exactly on its target still produces motion.
const Epsilon float32 = 1.1920929e-07

// Axis vectors of the world frame. The engine is right-handed with +Y up.
var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)

// QuatDegrees builds a rotation of the given angle in degrees around axis.
// A zero angle or a zero-length axis yields the identity rotation.
//
// Parameters:
//   - degrees: rotation angle in degrees
//   - axis: rotation axis (normalized internally)
//
// Returns:
//   - mgl32.Quat: the rotation quaternion
func QuatDegrees(degrees float32, axis mgl32.Vec3) mgl32.Quat {
	if degrees == 0 || axis.Len() < 1e-8 {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatRotate(mgl32.DegToRad(degrees), axis.Normalize())
}

// SignedAngle2D returns the signed angle in degrees that rotates a onto b.
// The sign follows the 2D cross product a.x*b.y - a.y*b.x, so in window coordinates (y down)
// a positive result is a clockwise turn on screen. Returns 0 when either vector is zero.
//
// Parameters:
//   - a: the starting vector
//   - b: the destination vector
//
// Returns:
//   - float32: signed angle in degrees in the range (-180, 180]
func SignedAngle2D(a, b mgl32.Vec2) float32 {
	if a.Len() == 0 || b.Len() == 0 {
		return 0
	}
	cross := float64(a.X()*b.Y() - a.Y()*b.X())
	dot := float64(a.Dot(b))
	return float32(math.Atan2(cross, dot) * 180.0 / math.Pi)
}

// Level projects v onto the horizontal plane by zeroing its vertical component.
//
// Parameters:
//   - v: the vector to project
//
// Returns:
//   - mgl32.Vec3: v with Y set to zero
func Level(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), 0, v.Z()}
}

// Abs32 returns the absolute value of a float32.
func Abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Min32 returns the smaller of a and b.
func Min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Clamp32 saturates v into [lo, hi].
func Clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
