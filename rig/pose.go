package rig

import (
	"github.com/nicoguyon/vibefighter-sub001/rigmath"
)

// InitialPose is the per-bone transform captured once when a skeleton is
// loaded. It is the ground-truth rest reference every synthesized motion
// either starts from or returns to, and is immutable for the skeleton's
// lifetime.
type InitialPose map[string]Transform

// CaptureInitialPose snapshots every bone's local transform.
func CaptureInitialPose(s *Skeleton) InitialPose {
	p := make(InitialPose, s.Len())
	for _, b := range s.Bones() {
		p[b.Name] = b.Local
	}
	return p
}

// Snapshot is a runtime capture of bone rotations (and positions, needed for
// moves that translate bones). Taken either right after a stance transition
// completes, or from the live skeleton the instant a move is triggered.
type Snapshot map[string]Transform

// CaptureSnapshot snapshots the skeleton's current local transforms.
func CaptureSnapshot(s *Skeleton) Snapshot {
	snap := make(Snapshot, s.Len())
	for _, b := range s.Bones() {
		snap[b.Name] = b.Local
	}
	return snap
}

// Rotation returns the captured rotation for a bone and whether it exists.
func (s Snapshot) Rotation(bone string) (rigmath.Quat, bool) {
	t, ok := s[bone]
	return t.Rotation, ok
}

// Apply writes the snapshot back onto the skeleton. Bones missing from the
// snapshot are left untouched.
func (s Snapshot) Apply(sk *Skeleton) {
	for _, b := range sk.Bones() {
		if t, ok := s[b.Name]; ok {
			b.Local = t
		}
	}
}
