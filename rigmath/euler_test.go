package rigmath

import (
	"testing"
)

func TestOrderMatters(t *testing.T) {
	// The same triple under two different orders must not be the same
	// orientation (for a generic triple).
	a := FromEulerDeg(45, 60, 0, OrderXYZ)
	b := FromEulerDeg(45, 60, 0, OrderYXZ)
	if QuatApproxEqual(a, b, eps) {
		t.Errorf("XYZ and YXZ produced the same orientation for a generic triple")
	}
}

func TestSingleAxisOrderInvariant(t *testing.T) {
	// A rotation about a single axis is the same under every order.
	ref := FromEulerDeg(0, 35, 0, OrderXYZ)
	for o := OrderXYZ; o <= OrderZYX; o++ {
		got := FromEulerDeg(0, 35, 0, o)
		if !QuatApproxEqual(got, ref, eps) {
			t.Errorf("order %v: single-axis rotation = %v, want %v", o, got, ref)
		}
	}
}

func TestFromEulerZeroIsIdentity(t *testing.T) {
	for o := OrderXYZ; o <= OrderZYX; o++ {
		got := FromEulerDeg(0, 0, 0, o)
		if !QuatApproxEqual(got, QuatIdent(), eps) {
			t.Errorf("order %v: zero triple = %v, want identity", o, got)
		}
	}
}

func TestFromEulerDegMatchesRadians(t *testing.T) {
	a := FromEulerDeg(90, -30, 15, OrderZXY)
	b := FromEuler(Deg2Rad(90), Deg2Rad(-30), Deg2Rad(15), OrderZXY)
	if !QuatApproxEqual(a, b, eps) {
		t.Errorf("degree and radian paths disagree: %v vs %v", a, b)
	}
}

func TestOrderString(t *testing.T) {
	cases := map[EulerOrder]string{
		OrderXYZ: "XYZ", OrderXZY: "XZY", OrderYXZ: "YXZ",
		OrderYZX: "YZX", OrderZXY: "ZXY", OrderZYX: "ZYX",
	}
	for o, want := range cases {
		if o.String() != want {
			t.Errorf("order %d String() = %q, want %q", int(o), o.String(), want)
		}
	}
}
