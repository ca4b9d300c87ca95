package synth

import (
	"github.com/nicoguyon/vibefighter-sub001/clip"
	"github.com/nicoguyon/vibefighter-sub001/posecfg"
	"github.com/nicoguyon/vibefighter-sub001/rigmath"
)

// Reset synthesizes the return-to-initial transition from the skeleton's
// current live pose. Only bones that have drifted from the initial pose get
// a track; if nothing drifted, a dummy root track is emitted so an
// always-playable no-op transition exists.
func (s *Synthesizer) Reset() (*clip.Clip, error) {
	dur := posecfg.ResetDuration
	c := clip.NewClip(posecfg.ClipReset, dur)

	for _, b := range s.sk.Bones() {
		init, ok := s.initial[b.Name]
		if !ok {
			continue
		}
		if !rigmath.QuatApproxEqual(b.Local.Rotation, init.Rotation, 1e-6) {
			c.AddRotTrack(b.Name, []float32{0, dur}, []rigmath.Quat{b.Local.Rotation, init.Rotation})
		}
		if !rigmath.ApproxEqual(b.Local.Position, init.Position, posEps) {
			c.AddPosTrack(b.Name, []float32{0, dur}, []rigmath.Vec3{b.Local.Position, init.Position})
		}
	}

	if c.TrackCount() == 0 {
		root := s.sk.Root()
		if root == nil {
			return nil, ErrNoSkeleton
		}
		q := root.Local.Rotation
		c.AddRotTrack(root.Name, []float32{0, dur}, []rigmath.Quat{q, q})
	}
	return c, nil
}
