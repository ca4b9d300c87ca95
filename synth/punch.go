package synth

import (
	"fmt"

	"github.com/nicoguyon/vibefighter-sub001/clip"
	"github.com/nicoguyon/vibefighter-sub001/posecfg"
	"github.com/nicoguyon/vibefighter-sub001/rig"
	"github.com/nicoguyon/vibefighter-sub001/rigmath"
)

// Punch keyframe times as fractions of the clip: start, wind-up, apex,
// return.
var punchPhases = [4]float32{0, 0.25, 0.55, 1}

// Punch synthesizes a left or right straight from the given start pose. The
// caller resolves the start: the captured stance snapshot while in stance,
// a fresh live snapshot otherwise. Arm apex values are absolute authored
// targets; torso and supporting-leg apex values are offsets from the base.
func (s *Synthesizer) Punch(side string, start rig.Snapshot) (*clip.Clip, error) {
	var (
		name    string
		apex    posecfg.PoseTable
		body    map[string]rigmath.Vec3
		punchUA string
	)
	if side == "L" {
		name = posecfg.ClipPunchLeft
		apex = posecfg.PunchApexLeft
		body = posecfg.PunchBodyOffsetLeft
		punchUA = posecfg.BoneLUpperarm
	} else {
		name = posecfg.ClipPunchRight
		apex = posecfg.PunchApexRight
		body = posecfg.PunchBodyOffsetRight
		punchUA = posecfg.BoneRUpperarm
	}

	dur := posecfg.PunchDuration
	c := clip.NewClip(name, dur)
	times := []float32{
		punchPhases[0] * dur,
		punchPhases[1] * dur,
		punchPhases[2] * dur,
		punchPhases[3] * dur,
	}

	track := func(bone string, apexQ rigmath.Quat) {
		st, ok := s.startTransform(bone, start)
		if !ok {
			return
		}
		base := st.Rotation
		prep := base
		if bone == punchUA {
			wb := posecfg.PunchWindbackDeg
			if side == "L" {
				wb.Z = -wb.Z
			}
			prep = offsetDeg(base, wb)
		}
		c.AddRotTrack(bone, times, []rigmath.Quat{base, prep, apexQ, base})
	}

	for _, b := range s.sk.Bones() {
		if tgt, have := apex[b.Name]; have {
			track(b.Name, tgt.Quat())
			continue
		}
		if deg, have := body[b.Name]; have {
			st, ok := s.startTransform(b.Name, start)
			if !ok {
				continue
			}
			track(b.Name, offsetDeg(st.Rotation, deg))
		}
	}

	if c.TrackCount() == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoTracks)
	}
	return c, nil
}
