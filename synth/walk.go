package synth

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/nicoguyon/vibefighter-sub001/clip"
	"github.com/nicoguyon/vibefighter-sub001/posecfg"
	"github.com/nicoguyon/vibefighter-sub001/rig"
	"github.com/nicoguyon/vibefighter-sub001/rigmath"
)

// walkPhases is the number of keyframes across one stride period. Five
// evenly spaced phases; the first and last sample the sinusoid at 0 and 2π,
// so the loop wraps seamlessly.
const walkPhases = 5

// Walk synthesizes the looping walk cycle. Legs swing sinusoidally with the
// sides 180° out of phase, calves and feet counter-rotate, the spine twists
// opposite the leading leg, and the upper body is held at the stance pose.
func (s *Synthesizer) Walk() (*clip.Clip, error) {
	dur := posecfg.WalkPeriod
	c := clip.NewClip(posecfg.ClipWalk, dur)

	times := make([]float32, walkPhases)
	for i := range times {
		times[i] = dur * float32(i) / float32(walkPhases-1)
	}

	swing := func(bone string, amp float32, phase float32, axis func(a float32) rigmath.Vec3) bool {
		base, ok := s.basePose(bone, posecfg.StanceTargets, nil)
		if !ok {
			return false
		}
		vals := make([]rigmath.Quat, walkPhases)
		for i := range vals {
			a := amp * math32.Sin(2*math32.Pi*float32(i)/float32(walkPhases-1)+phase)
			d := axis(a)
			vals[i] = offsetDeg(base, d)
		}
		c.AddRotTrack(bone, times, vals)
		return true
	}

	aboutX := func(a float32) rigmath.Vec3 { return rigmath.Vec3{X: a} }
	aboutY := func(a float32) rigmath.Vec3 { return rigmath.Vec3{Y: a} }

	// Left leg leads at phase 0, right leg mirrors at π.
	swing(posecfg.BoneLThigh, posecfg.WalkStrideDeg, 0, aboutX)
	swing(posecfg.BoneLCalf, posecfg.WalkLiftDeg, math32.Pi/2, aboutX)
	swing(posecfg.BoneLFoot, -posecfg.WalkFootDeg, 0, aboutX)
	swing(posecfg.BoneRThigh, posecfg.WalkStrideDeg, math32.Pi, aboutX)
	swing(posecfg.BoneRCalf, posecfg.WalkLiftDeg, 3*math32.Pi/2, aboutX)
	swing(posecfg.BoneRFoot, -posecfg.WalkFootDeg, math32.Pi, aboutX)

	// Spine counter-twist against the leading leg.
	swing(posecfg.BoneSpine01, posecfg.WalkSpineTwistDeg, math32.Pi, aboutY)
	swing(posecfg.BoneSpine02, posecfg.WalkSpineTwistDeg/2, math32.Pi, aboutY)

	// Upper body held static at the stance pose.
	held := append([]string{}, posecfg.LeftArmBones...)
	held = append(held, posecfg.RightArmBones...)
	held = append(held, posecfg.BoneNeck, posecfg.BoneHead)
	for _, name := range held {
		base, ok := s.basePose(name, posecfg.StanceTargets, nil)
		if !ok {
			continue
		}
		pin(c, name, dur, rig.Transform{Rotation: base})
	}

	if c.TrackCount() == 0 {
		return nil, fmt.Errorf("%s: %w", posecfg.ClipWalk, ErrNoTracks)
	}
	return c, nil
}
