package synth

import (
	"fmt"

	"github.com/nicoguyon/vibefighter-sub001/clip"
	"github.com/nicoguyon/vibefighter-sub001/posecfg"
	"github.com/nicoguyon/vibefighter-sub001/rigmath"
)

// Bow synthesizes the multi-phase bow on absolute keyframe times: the arms
// reach the bow target and hold while the spine pitches forward in two
// stages (the second deeper), then everything returns to initial. All other
// bones are pinned to the initial pose throughout.
func (s *Synthesizer) Bow() (*clip.Clip, error) {
	kt := posecfg.BowKeyTimes
	dur := kt[3]
	c := clip.NewClip(posecfg.ClipBow, dur)
	times := kt[:]

	tracked := make(map[string]bool)

	// Arms: initial → bow target, hold, return.
	for _, b := range s.sk.Bones() {
		tgt, have := posecfg.BowArmTargets[b.Name]
		if !have {
			continue
		}
		st, ok := s.startTransform(b.Name, nil)
		if !ok {
			continue
		}
		q := tgt.Quat()
		c.AddRotTrack(b.Name, times, []rigmath.Quat{st.Rotation, q, q, st.Rotation})
		tracked[b.Name] = true
	}

	// Spine: shallow bend at the first stage, deeper at the second.
	spine := map[string]float32{
		posecfg.BoneSpine01: 1,
		posecfg.BoneSpine02: posecfg.BowSpine02Scale,
	}
	for bone, scale := range spine {
		st, ok := s.startTransform(bone, nil)
		if !ok {
			continue
		}
		s1 := offsetDeg(st.Rotation, rigmath.Vec3{X: posecfg.BowSpineStage1Deg * scale})
		s2 := offsetDeg(st.Rotation, rigmath.Vec3{X: posecfg.BowSpineStage2Deg * scale})
		c.AddRotTrack(bone, times, []rigmath.Quat{st.Rotation, s1, s2, st.Rotation})
		tracked[bone] = true
	}

	// Everything else pinned to initial for the whole bow.
	for _, b := range s.sk.Bones() {
		if tracked[b.Name] {
			continue
		}
		st, ok := s.startTransform(b.Name, nil)
		if !ok {
			continue
		}
		pin(c, b.Name, dur, st)
	}

	if c.TrackCount() == 0 {
		return nil, fmt.Errorf("%s: %w", posecfg.ClipBow, ErrNoTracks)
	}
	return c, nil
}
