package rigmath

import (
	"testing"

	"github.com/chewxy/math32"
)

const eps = 1e-5

func TestQuatIdent(t *testing.T) {
	q := QuatIdent()
	v := Vec3{1, 2, 3}
	got := q.Rotate(v)
	if !ApproxEqual(got, v, eps) {
		t.Errorf("identity rotation moved %v to %v", v, got)
	}
}

func TestQuatMulComposes(t *testing.T) {
	// 90° about X then 90° about Y, applied to +Z.
	qx := AxisAngle(Vec3{X: 1}, math32.Pi/2)
	qy := AxisAngle(Vec3{Y: 1}, math32.Pi/2)
	q := QuatMul(qy, qx)

	got := q.Rotate(Vec3{Z: 1})
	// X rotation sends +Z to -Y; Y rotation leaves -Y in place.
	want := Vec3{Y: -1}
	if !ApproxEqual(got, want, eps) {
		t.Errorf("composed rotation = %v, want %v", got, want)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	got := Quat{}.Normalize()
	if !QuatApproxEqual(got, QuatIdent(), eps) {
		t.Errorf("degenerate quat normalized to %v, want identity", got)
	}
}

func TestConjugateInverts(t *testing.T) {
	q := FromEulerDeg(30, -45, 60, OrderXYZ)
	r := QuatMul(q, q.Conjugate())
	if !QuatApproxEqual(r, QuatIdent(), eps) {
		t.Errorf("q*conj(q) = %v, want identity", r)
	}
}

func TestSlerpEndpoints(t *testing.T) {
	a := FromEulerDeg(10, 20, 30, OrderXYZ)
	b := FromEulerDeg(-40, 15, 5, OrderZXY)

	if got := Slerp(a, b, 0); !QuatApproxEqual(got, a, eps) {
		t.Errorf("Slerp(...,0) = %v, want %v", got, a)
	}
	if got := Slerp(a, b, 1); !QuatApproxEqual(got, b, eps) {
		t.Errorf("Slerp(...,1) = %v, want %v", got, b)
	}
}

func TestSlerpShortestArc(t *testing.T) {
	a := AxisAngle(Vec3{Y: 1}, 0)
	b := AxisAngle(Vec3{Y: 1}, math32.Pi/2)
	neg := Quat{X: -b.X, Y: -b.Y, Z: -b.Z, W: -b.W}

	mid := Slerp(a, b, 0.5)
	midNeg := Slerp(a, neg, 0.5)
	if !QuatApproxEqual(mid, midNeg, eps) {
		t.Errorf("slerp against -q took the long arc: %v vs %v", mid, midNeg)
	}
	want := AxisAngle(Vec3{Y: 1}, math32.Pi/4)
	if !QuatApproxEqual(mid, want, eps) {
		t.Errorf("midpoint = %v, want %v", mid, want)
	}
}

func TestRotateMatchesAxisAngle(t *testing.T) {
	q := AxisAngle(Vec3{Z: 1}, math32.Pi/2)
	got := q.Rotate(Vec3{X: 1})
	want := Vec3{Y: 1}
	if !ApproxEqual(got, want, eps) {
		t.Errorf("90° Z rotation of +X = %v, want %v", got, want)
	}
}
