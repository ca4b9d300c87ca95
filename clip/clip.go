// Package clip holds the playback half of the animation core: keyframed
// clips, mixer-bound actions with fade ramps, and the per-skeleton mixer that
// advances and applies them every tick.
package clip

import (
	"sort"

	"github.com/nicoguyon/vibefighter-sub001/rig"
	"github.com/nicoguyon/vibefighter-sub001/rigmath"
)

// QuatTrack is a rotation keyframe track for one bone. Times are strictly
// non-decreasing; the first/last values encode the track's start/end pose.
type QuatTrack struct {
	Bone   string
	Times  []float32
	Values []rigmath.Quat
}

// Sample returns the track value at time t, clamping outside the keyframe
// range and slerping between neighbors.
func (tr *QuatTrack) Sample(t float32) rigmath.Quat {
	n := len(tr.Times)
	if n == 0 {
		return rigmath.QuatIdent()
	}
	if t <= tr.Times[0] {
		return tr.Values[0]
	}
	if t >= tr.Times[n-1] {
		return tr.Values[n-1]
	}
	i := sort.Search(n, func(i int) bool { return tr.Times[i] > t })
	t0, t1 := tr.Times[i-1], tr.Times[i]
	if t1 == t0 {
		return tr.Values[i]
	}
	alpha := (t - t0) / (t1 - t0)
	return rigmath.Slerp(tr.Values[i-1], tr.Values[i], alpha)
}

// VecTrack is a position keyframe track for one bone.
type VecTrack struct {
	Bone   string
	Times  []float32
	Values []rigmath.Vec3
}

// Sample returns the track value at time t, clamping outside the keyframe
// range and lerping between neighbors.
func (tr *VecTrack) Sample(t float32) rigmath.Vec3 {
	n := len(tr.Times)
	if n == 0 {
		return rigmath.Vec3{}
	}
	if t <= tr.Times[0] {
		return tr.Values[0]
	}
	if t >= tr.Times[n-1] {
		return tr.Values[n-1]
	}
	i := sort.Search(n, func(i int) bool { return tr.Times[i] > t })
	t0, t1 := tr.Times[i-1], tr.Times[i]
	if t1 == t0 {
		return tr.Values[i]
	}
	alpha := (t - t0) / (t1 - t0)
	return rigmath.Lerp(tr.Values[i-1], tr.Values[i], alpha)
}

// Clip is a named, timed set of per-bone keyframe tracks.
type Clip struct {
	Name     string
	Duration float32
	Rot      []QuatTrack
	Pos      []VecTrack
}

// NewClip creates an empty clip.
func NewClip(name string, duration float32) *Clip {
	return &Clip{Name: name, Duration: duration}
}

// AddRotTrack appends a rotation track.
func (c *Clip) AddRotTrack(bone string, times []float32, values []rigmath.Quat) {
	c.Rot = append(c.Rot, QuatTrack{Bone: bone, Times: times, Values: values})
}

// AddPosTrack appends a position track.
func (c *Clip) AddPosTrack(bone string, times []float32, values []rigmath.Vec3) {
	c.Pos = append(c.Pos, VecTrack{Bone: bone, Times: times, Values: values})
}

// TrackCount returns the total number of tracks.
func (c *Clip) TrackCount() int {
	return len(c.Rot) + len(c.Pos)
}

// apply samples every track at time t and writes the result onto the
// skeleton, blended against the current bone value by weight w.
func (c *Clip) apply(sk *rig.Skeleton, t, w float32) {
	if w <= 0 {
		return
	}
	for i := range c.Rot {
		tr := &c.Rot[i]
		b := sk.Bone(tr.Bone)
		if b == nil {
			continue
		}
		v := tr.Sample(t)
		if w >= 1 {
			b.Local.Rotation = v
		} else {
			b.Local.Rotation = rigmath.Slerp(b.Local.Rotation, v, w)
		}
	}
	for i := range c.Pos {
		tr := &c.Pos[i]
		b := sk.Bone(tr.Bone)
		if b == nil {
			continue
		}
		v := tr.Sample(t)
		if w >= 1 {
			b.Local.Position = v
		} else {
			b.Local.Position = rigmath.Lerp(b.Local.Position, v, w)
		}
	}
}
