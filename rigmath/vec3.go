// Package rigmath provides the float32 vector/quaternion math used by the
// animation core. Bones are driven with quaternions; Euler angles appear only
// at the authoring boundary (pose tables) and are converted with an explicit
// rotation order.
package rigmath

import (
	"github.com/chewxy/math32"
)

type Vec3 struct {
	X, Y, Z float32
}

// Add returns a + b
func Add(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X + b.X,
		Y: a.Y + b.Y,
		Z: a.Z + b.Z,
	}
}

// Sub returns a - b
func Sub(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X - b.X,
		Y: a.Y - b.Y,
		Z: a.Z - b.Z,
	}
}

// Scale returns v * s
func Scale(v Vec3, s float32) Vec3 {
	return Vec3{
		X: v.X * s,
		Y: v.Y * s,
		Z: v.Z * s,
	}
}

// Lerp returns the linear interpolation between a and b at t in [0,1].
func Lerp(a, b Vec3, t float32) Vec3 {
	return Vec3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// Length returns the length of the vector
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// ApproxEqual reports whether a and b match within eps per component.
func ApproxEqual(a, b Vec3, eps float32) bool {
	return math32.Abs(a.X-b.X) <= eps &&
		math32.Abs(a.Y-b.Y) <= eps &&
		math32.Abs(a.Z-b.Z) <= eps
}
