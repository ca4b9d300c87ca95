package clip

import (
	"testing"

	"github.com/nicoguyon/vibefighter-sub001/rig"
	"github.com/nicoguyon/vibefighter-sub001/rigmath"
)

const eps = 1e-4

func testSkeleton() *rig.Skeleton {
	ident := rig.Transform{Rotation: rigmath.QuatIdent(), Scale: rigmath.Vec3{X: 1, Y: 1, Z: 1}}
	return rig.NewSkeleton([]rig.Bone{
		{Name: "Hip", Local: ident},
		{Name: "Spine01", Parent: "Hip", Local: ident},
	})
}

func quatY(deg float32) rigmath.Quat {
	return rigmath.FromEulerDeg(0, deg, 0, rigmath.OrderXYZ)
}

func twoKeyClip(name string, dur float32, from, to rigmath.Quat) *Clip {
	c := NewClip(name, dur)
	c.AddRotTrack("Spine01", []float32{0, dur}, []rigmath.Quat{from, to})
	return c
}

func TestQuatTrackSample(t *testing.T) {
	tr := QuatTrack{
		Bone:   "Spine01",
		Times:  []float32{0, 1},
		Values: []rigmath.Quat{quatY(0), quatY(90)},
	}

	if got := tr.Sample(-1); !rigmath.QuatApproxEqual(got, quatY(0), eps) {
		t.Errorf("before-range sample = %v, want first value", got)
	}
	if got := tr.Sample(2); !rigmath.QuatApproxEqual(got, quatY(90), eps) {
		t.Errorf("after-range sample = %v, want last value", got)
	}
	if got := tr.Sample(0.5); !rigmath.QuatApproxEqual(got, quatY(45), eps) {
		t.Errorf("midpoint sample = %v, want 45° about Y", got)
	}
}

func TestOneShotFinishesOnce(t *testing.T) {
	m := NewMixer(testSkeleton())
	a := NewAction(twoKeyClip("move", 1, quatY(0), quatY(90)), LoopOnce, true)
	a.Play()
	m.Play(a)

	var finished int
	for i := 0; i < 30; i++ {
		finished += len(m.Update(0.1))
	}
	if finished != 1 {
		t.Errorf("one-shot reported finished %d times, want 1", finished)
	}
	if !a.Finished() {
		t.Errorf("action not marked finished")
	}
}

func TestClampHoldsEndPose(t *testing.T) {
	sk := testSkeleton()
	m := NewMixer(sk)
	end := quatY(90)
	a := NewAction(twoKeyClip("move", 0.5, quatY(0), end), LoopOnce, true)
	a.Play()
	m.Play(a)

	// Run well past the clip's end; the clamped action must keep pinning
	// the bone to the final keyframe.
	for i := 0; i < 20; i++ {
		m.Update(0.1)
	}
	got := sk.Bone("Spine01").Local.Rotation
	if !rigmath.QuatApproxEqual(got, end, eps) {
		t.Errorf("clamped bone = %v, want end pose %v", got, end)
	}
	if m.ActiveCount() != 1 {
		t.Errorf("clamped action was dropped from the mixer")
	}
}

func TestLoopRepeatWraps(t *testing.T) {
	m := NewMixer(testSkeleton())
	a := NewAction(twoKeyClip("loop", 1, quatY(0), quatY(90)), LoopRepeat, false)
	a.Play()
	m.Play(a)

	if got := m.Update(1.25); len(got) != 0 {
		t.Errorf("looping clip reported finished")
	}
	if a.Time() < 0.24 || a.Time() > 0.26 {
		t.Errorf("loop time after wrap = %v, want 0.25", a.Time())
	}
}

func TestFadeOutDetaches(t *testing.T) {
	m := NewMixer(testSkeleton())
	a := NewAction(twoKeyClip("loop", 1, quatY(0), quatY(90)), LoopRepeat, false)
	a.FadeIn(0)
	m.Play(a)
	m.Update(0.1)

	a.FadeOut(0.2)
	for i := 0; i < 5; i++ {
		m.Update(0.1)
	}
	if m.ActiveCount() != 0 {
		t.Errorf("faded-out action still active")
	}
}

func TestDetachStopsWriting(t *testing.T) {
	sk := testSkeleton()
	m := NewMixer(sk)
	a := NewAction(twoKeyClip("move", 1, quatY(90), quatY(90)), LoopOnce, true)
	a.Play()
	m.Play(a)
	m.Update(0.1)

	m.Detach(a)
	sk.Bone("Spine01").Local.Rotation = rigmath.QuatIdent()
	m.Update(0.1)
	got := sk.Bone("Spine01").Local.Rotation
	if !rigmath.QuatApproxEqual(got, rigmath.QuatIdent(), eps) {
		t.Errorf("detached action still wrote the bone: %v", got)
	}
}

func TestFadeInRamp(t *testing.T) {
	m := NewMixer(testSkeleton())
	a := NewAction(twoKeyClip("move", 10, quatY(0), quatY(90)), LoopOnce, true)
	a.FadeIn(1)
	m.Play(a)

	m.Update(0.5)
	if a.Weight() < 0.45 || a.Weight() > 0.55 {
		t.Errorf("mid-fade weight = %v, want 0.5", a.Weight())
	}
	m.Update(0.6)
	if a.Weight() != 1 {
		t.Errorf("post-fade weight = %v, want 1", a.Weight())
	}
}
