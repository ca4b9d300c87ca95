package synth

import (
	"fmt"

	"github.com/nicoguyon/vibefighter-sub001/clip"
	"github.com/nicoguyon/vibefighter-sub001/posecfg"
	"github.com/nicoguyon/vibefighter-sub001/rig"
	"github.com/nicoguyon/vibefighter-sub001/rigmath"
)

// Stance synthesizes the initial→stance transition.
func (s *Synthesizer) Stance() (*clip.Clip, error) {
	return s.transition(posecfg.ClipStance, posecfg.StanceDuration, posecfg.StanceTargets, nil)
}

// IdleBreath synthesizes the looping stance breath: a small relative offset
// on the breath bones at the loop midpoint, with every other known bone
// pinned to the stance base so nothing external can drift it while the loop
// plays. First and last keyframes match, so the loop wraps without a pop.
func (s *Synthesizer) IdleBreath() (*clip.Clip, error) {
	return s.breathLoop(posecfg.ClipIdleBreath, posecfg.StanceTargets)
}

// breathLoop is shared by the idle and arms-crossed breath loops: the same
// relative offsets, applied around a different base table.
func (s *Synthesizer) breathLoop(name string, table posecfg.PoseTable) (*clip.Clip, error) {
	dur := posecfg.BreathPeriod
	c := clip.NewClip(name, dur)

	for _, b := range s.sk.Bones() {
		base, ok := s.basePose(b.Name, table, nil)
		if !ok {
			continue
		}
		if deg, breathes := posecfg.BreathOffsetDeg[b.Name]; breathes {
			mid := offsetDeg(base, deg)
			c.AddRotTrack(b.Name, []float32{0, dur / 2, dur}, []rigmath.Quat{base, mid, base})
		} else {
			pin(c, b.Name, dur, rig.Transform{Rotation: base})
		}
	}
	if c.TrackCount() == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoTracks)
	}
	return c, nil
}
