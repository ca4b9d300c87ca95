package synth

import (
	"errors"
	"testing"

	"github.com/nicoguyon/vibefighter-sub001/assets"
	"github.com/nicoguyon/vibefighter-sub001/clip"
	"github.com/nicoguyon/vibefighter-sub001/posecfg"
	"github.com/nicoguyon/vibefighter-sub001/rig"
	"github.com/nicoguyon/vibefighter-sub001/rigmath"
)

const eps = 1e-4

func newSynth(t *testing.T) (*Synthesizer, *rig.Skeleton) {
	t.Helper()
	sk := assets.NewHumanoid()
	s, err := New(sk, rig.CaptureInitialPose(sk))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, sk
}

func rotTrack(t *testing.T, c *clip.Clip, bone string) *clip.QuatTrack {
	t.Helper()
	for i := range c.Rot {
		if c.Rot[i].Bone == bone {
			return &c.Rot[i]
		}
	}
	return nil
}

func TestStanceSparseTracks(t *testing.T) {
	s, _ := newSynth(t)
	c, err := s.Stance()
	if err != nil {
		t.Fatalf("Stance: %v", err)
	}

	if len(c.Rot) != len(posecfg.StanceTargets) {
		t.Errorf("stance tracks = %d, want one per table entry (%d)", len(c.Rot), len(posecfg.StanceTargets))
	}
	// A bone with no stance entry must not be animated.
	if tr := rotTrack(t, c, posecfg.BoneNeck); tr != nil {
		t.Errorf("stance animated %s, which has no table entry", posecfg.BoneNeck)
	}
	// The last keyframe encodes the declared target exactly.
	tr := rotTrack(t, c, posecfg.BoneRUpperarm)
	if tr == nil {
		t.Fatalf("no track for %s", posecfg.BoneRUpperarm)
	}
	want := posecfg.StanceTargets[posecfg.BoneRUpperarm].Quat()
	if !rigmath.QuatApproxEqual(tr.Values[len(tr.Values)-1], want, eps) {
		t.Errorf("stance end pose = %v, want declared target %v", tr.Values[len(tr.Values)-1], want)
	}
}

func TestUnknownBoneSkipped(t *testing.T) {
	// A skeleton bone without an initial-pose entry is left untouched.
	sk := assets.NewHumanoid()
	initial := rig.CaptureInitialPose(sk)
	delete(initial, posecfg.BoneRUpperarm)
	s, err := New(sk, initial)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c, err := s.Stance()
	if err != nil {
		t.Fatalf("Stance: %v", err)
	}
	if tr := rotTrack(t, c, posecfg.BoneRUpperarm); tr != nil {
		t.Errorf("bone without initial pose data got a track")
	}
}

func TestResetRoundTrip(t *testing.T) {
	s, sk := newSynth(t)
	initial := s.InitialPose()

	// Drive the rig to stance, then synthesize and apply a reset.
	m := clip.NewMixer(sk)
	stance, _ := s.Stance()
	a := clip.NewAction(stance, clip.LoopOnce, true)
	a.Play()
	m.Play(a)
	for i := 0; i < 20; i++ {
		m.Update(0.1)
	}
	m.Detach(a)

	reset, err := s.Reset()
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	ra := clip.NewAction(reset, clip.LoopOnce, true)
	ra.Play()
	m.Play(ra)
	for i := 0; i < 20; i++ {
		m.Update(0.1)
	}

	for _, b := range sk.Bones() {
		want := initial[b.Name]
		if !rigmath.QuatApproxEqual(b.Local.Rotation, want.Rotation, eps) {
			t.Errorf("%s rotation after reset = %v, want initial %v", b.Name, b.Local.Rotation, want.Rotation)
		}
		if !rigmath.ApproxEqual(b.Local.Position, want.Position, eps) {
			t.Errorf("%s position after reset = %v, want initial %v", b.Name, b.Local.Position, want.Position)
		}
	}
}

func TestResetNeverEmpty(t *testing.T) {
	// At rest nothing differs from initial, but reset must still be
	// playable: one dummy root track.
	s, sk := newSynth(t)
	c, err := s.Reset()
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if c.TrackCount() != 1 {
		t.Fatalf("no-op reset tracks = %d, want 1 dummy", c.TrackCount())
	}
	if c.Rot[0].Bone != sk.Root().Name {
		t.Errorf("dummy track on %s, want root %s", c.Rot[0].Bone, sk.Root().Name)
	}
}

func TestBreathLoopSeamless(t *testing.T) {
	s, _ := newSynth(t)
	for _, build := range []func() (*clip.Clip, error){s.IdleBreath, s.ArmsCrossedBreath} {
		c, err := build()
		if err != nil {
			t.Fatalf("breath loop: %v", err)
		}
		for _, tr := range c.Rot {
			first := tr.Values[0]
			last := tr.Values[len(tr.Values)-1]
			if first != last {
				t.Errorf("%s %s: loop first/last keyframes differ: %v vs %v", c.Name, tr.Bone, first, last)
			}
		}
	}
}

func TestBreathPinsNonBreathingBones(t *testing.T) {
	s, sk := newSynth(t)
	c, err := s.IdleBreath()
	if err != nil {
		t.Fatalf("IdleBreath: %v", err)
	}
	// Every known bone is explicitly pinned or oscillated.
	if len(c.Rot) != sk.Len() {
		t.Errorf("breath loop tracks = %d, want every bone (%d)", len(c.Rot), sk.Len())
	}
	tr := rotTrack(t, c, posecfg.BoneLFoot)
	if tr == nil {
		t.Fatalf("non-breathing bone has no pin track")
	}
	for _, v := range tr.Values {
		if v != tr.Values[0] {
			t.Errorf("pinned bone moved during breath loop")
		}
	}
}

func TestWalkLoopSeamless(t *testing.T) {
	s, _ := newSynth(t)
	c, err := s.Walk()
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	for _, tr := range c.Rot {
		first := tr.Values[0]
		last := tr.Values[len(tr.Values)-1]
		if !rigmath.QuatApproxEqual(first, last, eps) {
			t.Errorf("walk %s: loop endpoints differ", tr.Bone)
		}
	}
	// Legs are phase-offset: the thighs move in opposite directions at the
	// quarter phase.
	lt := rotTrack(t, c, posecfg.BoneLThigh)
	rt := rotTrack(t, c, posecfg.BoneRThigh)
	if lt == nil || rt == nil {
		t.Fatalf("walk missing thigh tracks")
	}
	if rigmath.QuatApproxEqual(lt.Values[1], rt.Values[1], eps) {
		t.Errorf("thighs in phase; want 180° offset")
	}
}

func TestPunchStartsFromGivenPose(t *testing.T) {
	s, sk := newSynth(t)

	snap := rig.CaptureSnapshot(sk)
	perturbed := snap[posecfg.BoneRUpperarm]
	perturbed.Rotation = rigmath.FromEulerDeg(0, 0, 63, rigmath.OrderXYZ)
	snap[posecfg.BoneRUpperarm] = perturbed

	c, err := s.Punch("R", snap)
	if err != nil {
		t.Fatalf("Punch: %v", err)
	}
	tr := rotTrack(t, c, posecfg.BoneRUpperarm)
	if tr == nil {
		t.Fatalf("punch has no punching-arm track")
	}
	if !rigmath.QuatApproxEqual(tr.Values[0], perturbed.Rotation, eps) {
		t.Errorf("punch start = %v, want snapshot value %v", tr.Values[0], perturbed.Rotation)
	}
	// End returns to the same base.
	if !rigmath.QuatApproxEqual(tr.Values[len(tr.Values)-1], perturbed.Rotation, eps) {
		t.Errorf("punch end = %v, want return to base", tr.Values[len(tr.Values)-1])
	}
	// Apex is the absolute authored target, not an offset of the base.
	want := posecfg.PunchApexRight[posecfg.BoneRUpperarm].Quat()
	if !rigmath.QuatApproxEqual(tr.Values[2], want, eps) {
		t.Errorf("punch apex = %v, want authored %v", tr.Values[2], want)
	}
}

func TestDuckMovesHipPosition(t *testing.T) {
	s, sk := newSynth(t)
	c, err := s.Duck(rig.CaptureSnapshot(sk))
	if err != nil {
		t.Fatalf("Duck: %v", err)
	}
	var hip *clip.VecTrack
	for i := range c.Pos {
		if c.Pos[i].Bone == posecfg.BoneHip {
			hip = &c.Pos[i]
		}
	}
	if hip == nil {
		t.Fatalf("duck emitted no hip position track")
	}
	want := rigmath.Add(s.InitialPose()[posecfg.BoneHip].Position, *posecfg.DuckTargets[posecfg.BoneHip].Pos)
	if !rigmath.ApproxEqual(hip.Values[len(hip.Values)-1], want, eps) {
		t.Errorf("duck hip end position = %v, want %v", hip.Values[len(hip.Values)-1], want)
	}
}

func TestDuckKickPinsEverythingElse(t *testing.T) {
	s, sk := newSynth(t)

	// Put the rig in the duck pose first.
	m := clip.NewMixer(sk)
	duck, _ := s.Duck(rig.CaptureSnapshot(sk))
	a := clip.NewAction(duck, clip.LoopOnce, true)
	a.Play()
	m.Play(a)
	for i := 0; i < 10; i++ {
		m.Update(0.1)
	}

	duckPose := rig.CaptureSnapshot(sk)
	c, err := s.DuckKick(duckPose)
	if err != nil {
		t.Fatalf("DuckKick: %v", err)
	}

	for _, tr := range c.Rot {
		if _, kicks := posecfg.DuckKickApex[tr.Bone]; kicks {
			continue
		}
		want, _ := duckPose.Rotation(tr.Bone)
		for _, v := range tr.Values {
			if !rigmath.QuatApproxEqual(v, want, eps) {
				t.Errorf("%s not pinned to duck pose during kick", tr.Bone)
			}
		}
	}
}

func TestBowAbsoluteTimes(t *testing.T) {
	s, _ := newSynth(t)
	c, err := s.Bow()
	if err != nil {
		t.Fatalf("Bow: %v", err)
	}
	if c.Duration != posecfg.BowKeyTimes[3] {
		t.Errorf("bow duration = %v, want %v", c.Duration, posecfg.BowKeyTimes[3])
	}
	tr := rotTrack(t, c, posecfg.BoneSpine01)
	if tr == nil {
		t.Fatalf("bow has no spine track")
	}
	for i, want := range posecfg.BowKeyTimes {
		if tr.Times[i] != want {
			t.Errorf("bow key time[%d] = %v, want %v", i, tr.Times[i], want)
		}
	}
	// Second stage bends deeper than the first.
	if rigmath.QuatApproxEqual(tr.Values[1], tr.Values[2], eps) {
		t.Errorf("bow spine stages are identical; want a deeper second bend")
	}
}

func TestFallStartsFromLive(t *testing.T) {
	s, sk := newSynth(t)
	sk.Bone(posecfg.BoneSpine01).Local.Rotation = rigmath.FromEulerDeg(0, 40, 0, rigmath.OrderXYZ)
	live := rig.CaptureSnapshot(sk)

	c, err := s.Fall(live)
	if err != nil {
		t.Fatalf("Fall: %v", err)
	}
	tr := rotTrack(t, c, posecfg.BoneSpine01)
	if tr == nil {
		t.Fatalf("fall has no spine track")
	}
	if !rigmath.QuatApproxEqual(tr.Values[0], sk.Bone(posecfg.BoneSpine01).Local.Rotation, eps) {
		t.Errorf("fall start = %v, want live pose", tr.Values[0])
	}
}

func TestEmptySkeletonRejected(t *testing.T) {
	_, err := New(rig.NewSkeleton(nil), rig.InitialPose{})
	if !errors.Is(err, ErrNoSkeleton) {
		t.Errorf("New(empty) err = %v, want ErrNoSkeleton", err)
	}
}
