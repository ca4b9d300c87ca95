// Package synth is the clip synthesizer: it turns the declarative pose
// tables in posecfg into timed keyframe clips, computing per-bone start
// values from the bind pose, a captured stance snapshot, or the live rig.
package synth

import (
	"errors"
	"fmt"

	"github.com/nicoguyon/vibefighter-sub001/clip"
	"github.com/nicoguyon/vibefighter-sub001/posecfg"
	"github.com/nicoguyon/vibefighter-sub001/rig"
	"github.com/nicoguyon/vibefighter-sub001/rigmath"
)

var (
	// ErrNoSkeleton means the synthesizer was built without a rig.
	ErrNoSkeleton = errors.New("synth: no skeleton")
	// ErrNoTracks means a motion produced zero keyframe tracks. The caller
	// refuses to install the clip and leaves the current state unchanged.
	ErrNoTracks = errors.New("synth: clip has no tracks")
)

const posEps = 1e-5

// Synthesizer produces clips for one skeleton. It holds the immutable
// initial pose captured at load time.
type Synthesizer struct {
	sk      *rig.Skeleton
	initial rig.InitialPose
}

// New creates a synthesizer for a skeleton and its captured initial pose.
func New(sk *rig.Skeleton, initial rig.InitialPose) (*Synthesizer, error) {
	if sk == nil || sk.Len() == 0 {
		return nil, ErrNoSkeleton
	}
	return &Synthesizer{sk: sk, initial: initial}, nil
}

// InitialPose returns the captured rest pose.
func (s *Synthesizer) InitialPose() rig.InitialPose {
	return s.initial
}

// startTransform resolves the reference transform a bone animates from: the
// snapshot when one is given and contains the bone, the initial pose
// otherwise. A bone with no initial-pose entry is unknown to the animation
// system and is skipped entirely (ok=false); helper bones stay untouched.
func (s *Synthesizer) startTransform(bone string, snap rig.Snapshot) (rig.Transform, bool) {
	base, ok := s.initial[bone]
	if !ok {
		return rig.Transform{}, false
	}
	if snap != nil {
		if t, have := snap[bone]; have {
			return t, true
		}
	}
	return base, true
}

// basePose resolves the base orientation a loop oscillates around: the table
// target when the bone has an entry, the reference pose otherwise.
func (s *Synthesizer) basePose(bone string, table posecfg.PoseTable, snap rig.Snapshot) (rigmath.Quat, bool) {
	start, ok := s.startTransform(bone, snap)
	if !ok {
		return rigmath.Quat{}, false
	}
	if tgt, have := table[bone]; have {
		return tgt.Quat(), true
	}
	return start.Rotation, true
}

// offsetDeg composes a relative degree offset (XYZ order) onto a base
// orientation.
func offsetDeg(base rigmath.Quat, deg rigmath.Vec3) rigmath.Quat {
	return rigmath.QuatMul(base, rigmath.FromEulerDeg(deg.X, deg.Y, deg.Z, rigmath.OrderXYZ)).Normalize()
}

// transition builds a start→end clip from a reference pose to a pose table.
// Sparse: only bones with a table entry get a track. A position track is
// emitted only when the table moves the bone.
func (s *Synthesizer) transition(name string, dur float32, table posecfg.PoseTable, snap rig.Snapshot) (*clip.Clip, error) {
	c := clip.NewClip(name, dur)
	for _, b := range s.sk.Bones() {
		tgt, have := table[b.Name]
		if !have {
			continue
		}
		start, ok := s.startTransform(b.Name, snap)
		if !ok {
			continue
		}
		c.AddRotTrack(b.Name, []float32{0, dur}, []rigmath.Quat{start.Rotation, tgt.Quat()})
		if tgt.Pos != nil {
			endPos := rigmath.Add(s.initial[b.Name].Position, *tgt.Pos)
			if !rigmath.ApproxEqual(endPos, start.Position, posEps) {
				c.AddPosTrack(b.Name, []float32{0, dur}, []rigmath.Vec3{start.Position, endPos})
			}
		}
	}
	if c.TrackCount() == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoTracks)
	}
	return c, nil
}

// pin emits a static track holding a bone at a fixed transform for the whole
// clip.
func pin(c *clip.Clip, bone string, dur float32, t rig.Transform) {
	c.AddRotTrack(bone, []float32{0, dur}, []rigmath.Quat{t.Rotation, t.Rotation})
}
