package rigmath

import (
	"github.com/chewxy/math32"
)

// EulerOrder names one of the six axis-application sequences for converting
// an (x, y, z) angle triple into an orientation. The same numeric triple
// produces a different orientation under a different order, so every authored
// pose target carries its order explicitly.
type EulerOrder int

const (
	OrderXYZ EulerOrder = iota
	OrderXZY
	OrderYXZ
	OrderYZX
	OrderZXY
	OrderZYX
)

func (o EulerOrder) String() string {
	switch o {
	case OrderXYZ:
		return "XYZ"
	case OrderXZY:
		return "XZY"
	case OrderYXZ:
		return "YXZ"
	case OrderYZX:
		return "YZX"
	case OrderZXY:
		return "ZXY"
	case OrderZYX:
		return "ZYX"
	}
	return "XYZ"
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float32) float32 {
	return d * math32.Pi / 180
}

var (
	axisX = Vec3{X: 1}
	axisY = Vec3{Y: 1}
	axisZ = Vec3{Z: 1}
)

// FromEuler converts an angle triple in radians to a quaternion, composing
// the per-axis rotations in the given order (intrinsic, first axis applied
// first).
func FromEuler(x, y, z float32, order EulerOrder) Quat {
	qx := AxisAngle(axisX, x)
	qy := AxisAngle(axisY, y)
	qz := AxisAngle(axisZ, z)

	var q Quat
	switch order {
	case OrderXYZ:
		q = QuatMul(QuatMul(qx, qy), qz)
	case OrderXZY:
		q = QuatMul(QuatMul(qx, qz), qy)
	case OrderYXZ:
		q = QuatMul(QuatMul(qy, qx), qz)
	case OrderYZX:
		q = QuatMul(QuatMul(qy, qz), qx)
	case OrderZXY:
		q = QuatMul(QuatMul(qz, qx), qy)
	case OrderZYX:
		q = QuatMul(QuatMul(qz, qy), qx)
	default:
		q = QuatMul(QuatMul(qx, qy), qz)
	}
	return q.Normalize()
}

// FromEulerDeg is FromEuler with the triple given in degrees.
func FromEulerDeg(x, y, z float32, order EulerOrder) Quat {
	return FromEuler(Deg2Rad(x), Deg2Rad(y), Deg2Rad(z), order)
}
