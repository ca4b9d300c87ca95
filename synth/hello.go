package synth

import (
	"fmt"

	"github.com/nicoguyon/vibefighter-sub001/clip"
	"github.com/nicoguyon/vibefighter-sub001/posecfg"
	"github.com/nicoguyon/vibefighter-sub001/rigmath"
)

// Hello synthesizes the transition into the wave-ready pose.
func (s *Synthesizer) Hello() (*clip.Clip, error) {
	return s.transition(posecfg.ClipHello, posecfg.HelloDuration, posecfg.HelloTargets, nil)
}

// HelloWave synthesizes the wave loop: the hand and spine bones oscillate
// around the hello target, peak then trough then back. Bones outside the
// wave set are untouched by the loop and keep whatever the transition left
// them at.
func (s *Synthesizer) HelloWave() (*clip.Clip, error) {
	dur := posecfg.WavePeriod
	c := clip.NewClip(posecfg.ClipHelloWave, dur)
	times := []float32{0, dur * 0.25, dur * 0.75, dur}

	for _, b := range s.sk.Bones() {
		deg, waves := posecfg.WaveOffsetDeg[b.Name]
		if !waves {
			continue
		}
		base, ok := s.basePose(b.Name, posecfg.HelloTargets, nil)
		if !ok {
			continue
		}
		peak := offsetDeg(base, deg)
		trough := offsetDeg(base, rigmath.Scale(deg, -1))
		c.AddRotTrack(b.Name, times, []rigmath.Quat{base, peak, trough, base})
	}

	if c.TrackCount() == 0 {
		return nil, fmt.Errorf("%s: %w", posecfg.ClipHelloWave, ErrNoTracks)
	}
	return c, nil
}

// ArmsCrossed synthesizes the transition into the arms-crossed pose.
func (s *Synthesizer) ArmsCrossed() (*clip.Clip, error) {
	return s.transition(posecfg.ClipArmsCrossed, posecfg.ArmsCrossedDur, posecfg.ArmsCrossedTargets, nil)
}

// ArmsCrossedBreath reuses the idle breath offsets around the arms-crossed
// base pose.
func (s *Synthesizer) ArmsCrossedBreath() (*clip.Clip, error) {
	return s.breathLoop(posecfg.ClipArmsCrossedBreath, posecfg.ArmsCrossedTargets)
}
