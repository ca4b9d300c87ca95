package rigmath

import (
	"github.com/chewxy/math32"
)

// Quat is a rotation quaternion (x, y, z, w). The zero value is not a valid
// rotation; use QuatIdent for "no rotation".
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdent returns the identity rotation.
func QuatIdent() Quat {
	return Quat{W: 1}
}

// QuatMul returns a ⊗ b, the rotation b followed by a.
func QuatMul(a, b Quat) Quat {
	return Quat{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// Dot returns the 4D dot product of a and b.
func Dot(a, b Quat) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Normalize returns q scaled to unit length. A degenerate q collapses to the
// identity rather than propagating NaNs into bone transforms.
func (q Quat) Normalize() Quat {
	l := math32.Sqrt(Dot(q, q))
	if l < 1e-8 {
		return QuatIdent()
	}
	inv := 1 / l
	return Quat{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

// Conjugate returns the inverse rotation of a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// AxisAngle returns the rotation of angle radians about the given unit axis.
func AxisAngle(axis Vec3, angle float32) Quat {
	s, c := math32.Sincos(angle * 0.5)
	return Quat{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: c}
}

// Slerp returns the spherical interpolation between a and b at t in [0,1],
// taking the shortest arc.
func Slerp(a, b Quat, t float32) Quat {
	d := Dot(a, b)
	if d < 0 {
		b = Quat{X: -b.X, Y: -b.Y, Z: -b.Z, W: -b.W}
		d = -d
	}
	if d > 0.9995 {
		// Nearly parallel: lerp and renormalize.
		return Quat{
			X: a.X + (b.X-a.X)*t,
			Y: a.Y + (b.Y-a.Y)*t,
			Z: a.Z + (b.Z-a.Z)*t,
			W: a.W + (b.W-a.W)*t,
		}.Normalize()
	}
	theta := math32.Acos(d)
	sinTheta := math32.Sin(theta)
	wa := math32.Sin((1-t)*theta) / sinTheta
	wb := math32.Sin(t*theta) / sinTheta
	return Quat{
		X: a.X*wa + b.X*wb,
		Y: a.Y*wa + b.Y*wb,
		Z: a.Z*wa + b.Z*wb,
		W: a.W*wa + b.W*wb,
	}
}

// Rotate applies the rotation q to vector v.
func (q Quat) Rotate(v Vec3) Vec3 {
	// t = 2 * cross(q.xyz, v); v' = v + q.w*t + cross(q.xyz, t)
	tx := 2 * (q.Y*v.Z - q.Z*v.Y)
	ty := 2 * (q.Z*v.X - q.X*v.Z)
	tz := 2 * (q.X*v.Y - q.Y*v.X)
	return Vec3{
		X: v.X + q.W*tx + q.Y*tz - q.Z*ty,
		Y: v.Y + q.W*ty + q.Z*tx - q.X*tz,
		Z: v.Z + q.W*tz + q.X*ty - q.Y*tx,
	}
}

// QuatApproxEqual reports whether a and b represent the same orientation
// within eps, treating q and -q as equal.
func QuatApproxEqual(a, b Quat, eps float32) bool {
	return math32.Abs(Dot(a, b)) >= 1-eps
}
