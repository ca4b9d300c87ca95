package rig

import (
	"testing"

	"github.com/nicoguyon/vibefighter-sub001/rigmath"
)

func unitAt(x, y, z float32) Transform {
	return Transform{
		Position: rigmath.Vec3{X: x, Y: y, Z: z},
		Rotation: rigmath.QuatIdent(),
		Scale:    rigmath.Vec3{X: 1, Y: 1, Z: 1},
	}
}

func chain() *Skeleton {
	return NewSkeleton([]Bone{
		{Name: "Hip", Local: unitAt(0, 1, 0)},
		{Name: "Spine01", Parent: "Hip", Local: unitAt(0, 0.5, 0)},
		{Name: "Head", Parent: "Spine01", Local: unitAt(0, 0.25, 0)},
	})
}

func TestBoneLookup(t *testing.T) {
	sk := chain()
	if sk.Bone("Spine01") == nil {
		t.Fatalf("known bone not found")
	}
	if sk.Bone("Tail") != nil {
		t.Errorf("unknown bone lookup returned a bone")
	}
	if sk.Root().Name != "Hip" {
		t.Errorf("root = %s, want Hip", sk.Root().Name)
	}
}

func TestWorldTransformsChain(t *testing.T) {
	sk := chain()
	w := sk.WorldTransforms()
	head := w["Head"]
	want := rigmath.Vec3{X: 0, Y: 1.75, Z: 0}
	if !rigmath.ApproxEqual(head.Position, want, 1e-5) {
		t.Errorf("head world position = %v, want %v", head.Position, want)
	}
}

func TestWorldTransformsRotatedParent(t *testing.T) {
	sk := chain()
	// Pitch the hip 90° about Z: the spine offset (+Y) should map to -X.
	sk.Bone("Hip").Local.Rotation = rigmath.FromEulerDeg(0, 0, 90, rigmath.OrderXYZ)
	w := sk.WorldTransforms()
	spine := w["Spine01"]
	want := rigmath.Vec3{X: -0.5, Y: 1, Z: 0}
	if !rigmath.ApproxEqual(spine.Position, want, 1e-5) {
		t.Errorf("spine world position = %v, want %v", spine.Position, want)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	sk := chain()
	snap := CaptureSnapshot(sk)

	sk.Bone("Spine01").Local.Rotation = rigmath.FromEulerDeg(30, 0, 0, rigmath.OrderXYZ)
	snap.Apply(sk)

	got := sk.Bone("Spine01").Local.Rotation
	if !rigmath.QuatApproxEqual(got, rigmath.QuatIdent(), 1e-5) {
		t.Errorf("snapshot apply did not restore the bone: %v", got)
	}
}

func TestInitialPoseImmutableCopy(t *testing.T) {
	sk := chain()
	init := CaptureInitialPose(sk)

	sk.Bone("Hip").Local.Position = rigmath.Vec3{X: 9}
	if init["Hip"].Position.X == 9 {
		t.Errorf("initial pose aliases live bone data")
	}
}
