package synth

import (
	"fmt"

	"github.com/nicoguyon/vibefighter-sub001/clip"
	"github.com/nicoguyon/vibefighter-sub001/posecfg"
	"github.com/nicoguyon/vibefighter-sub001/rig"
	"github.com/nicoguyon/vibefighter-sub001/rigmath"
)

// Block synthesizes the transition into the held block pose. Start is the
// captured stance snapshot when available, the live pose otherwise.
func (s *Synthesizer) Block(start rig.Snapshot) (*clip.Clip, error) {
	return s.transition(posecfg.ClipBlock, posecfg.BlockDuration, posecfg.BlockTargets, start)
}

// Duck synthesizes the crouch transition. Duck is the one motion that also
// moves bone position: the hip drops to lower the whole rig.
func (s *Synthesizer) Duck(start rig.Snapshot) (*clip.Clip, error) {
	return s.transition(posecfg.ClipDuck, posecfg.DuckDuration, posecfg.DuckTargets, start)
}

// Duck-kick keyframe times as fractions of the clip: chamber, extend,
// retract, settle.
var duckKickPhases = [5]float32{0, 0.2, 0.45, 0.75, 1}

// DuckKick synthesizes the kick out of the held duck. The kicking leg goes
// chamber → absolute apex → back to the duck pose; every other bone is
// pinned to the duck pose at every keyframe so the character cannot rise out
// of the crouch mid-kick.
func (s *Synthesizer) DuckKick(duckPose rig.Snapshot) (*clip.Clip, error) {
	dur := posecfg.DuckKickDuration
	c := clip.NewClip(posecfg.ClipDuckKick, dur)
	times := make([]float32, len(duckKickPhases))
	for i, p := range duckKickPhases {
		times[i] = p * dur
	}

	for _, b := range s.sk.Bones() {
		st, ok := s.startTransform(b.Name, duckPose)
		if !ok {
			continue
		}
		base := st.Rotation

		tgt, kicks := posecfg.DuckKickApex[b.Name]
		if !kicks {
			pin(c, b.Name, dur, st)
			continue
		}

		windup := base
		if deg, have := posecfg.DuckKickWindupDeg[b.Name]; have {
			windup = offsetDeg(base, deg)
		}
		apex := tgt.Quat()
		c.AddRotTrack(b.Name, times, []rigmath.Quat{base, windup, apex, windup, base})
	}

	if c.TrackCount() == 0 {
		return nil, fmt.Errorf("%s: %w", posecfg.ClipDuckKick, ErrNoTracks)
	}
	return c, nil
}
