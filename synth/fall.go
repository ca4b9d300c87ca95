package synth

import (
	"github.com/nicoguyon/vibefighter-sub001/clip"
	"github.com/nicoguyon/vibefighter-sub001/posecfg"
	"github.com/nicoguyon/vibefighter-sub001/rig"
)

// Fall synthesizes the backward fall. The start pose is always a fresh live
// snapshot — there is no stance-capture path because a fall can be triggered
// from any state. The clip holds the fallen pose until an explicit reset.
func (s *Synthesizer) Fall(live rig.Snapshot) (*clip.Clip, error) {
	return s.transition(posecfg.ClipFall, posecfg.FallDuration, posecfg.FallenTargets, live)
}
