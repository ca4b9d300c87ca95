// Package rig models the animated humanoid skeleton: named bones with local
// transforms, the immutable pose captured at load time, and live snapshots
// used as dynamic start poses for moves.
package rig

import (
	"github.com/nicoguyon/vibefighter-sub001/rigmath"
)

// Transform is a bone-local TRS transform.
type Transform struct {
	Position rigmath.Vec3
	Rotation rigmath.Quat
	Scale    rigmath.Vec3
}

// Bone is a named joint. Parent is the name of the parent bone, empty for the
// root. The animation core only ever reads Name/Parent and writes Local.
type Bone struct {
	Name   string
	Parent string
	Local  Transform
}

// Skeleton is an ordered collection of bones. Bones are stored in definition
// order with parents before children so world transforms can be computed in
// one forward pass.
type Skeleton struct {
	bones  []*Bone
	byName map[string]*Bone
}

// NewSkeleton builds a skeleton from bone definitions. Definition order is
// preserved; parents must appear before their children.
func NewSkeleton(bones []Bone) *Skeleton {
	s := &Skeleton{
		bones:  make([]*Bone, 0, len(bones)),
		byName: make(map[string]*Bone, len(bones)),
	}
	for i := range bones {
		b := bones[i]
		s.bones = append(s.bones, &b)
		s.byName[b.Name] = &b
	}
	return s
}

// Bone returns the named bone, or nil if the skeleton has no such bone.
func (s *Skeleton) Bone(name string) *Bone {
	return s.byName[name]
}

// Bones returns the bones in definition order. Callers must not reorder the
// slice.
func (s *Skeleton) Bones() []*Bone {
	return s.bones
}

// Root returns the first bone, which by convention is the hierarchy root.
func (s *Skeleton) Root() *Bone {
	if len(s.bones) == 0 {
		return nil
	}
	return s.bones[0]
}

// Len returns the bone count.
func (s *Skeleton) Len() int {
	return len(s.bones)
}

// WorldTransforms computes the world-space position and rotation of every
// bone from the current local transforms. Used by the host renderer; the
// animation core itself only writes local transforms.
func (s *Skeleton) WorldTransforms() map[string]Transform {
	world := make(map[string]Transform, len(s.bones))
	for _, b := range s.bones {
		if b.Parent == "" {
			world[b.Name] = b.Local
			continue
		}
		p, ok := world[b.Parent]
		if !ok {
			// Parent outside the skeleton: treat as root-level.
			world[b.Name] = b.Local
			continue
		}
		world[b.Name] = Transform{
			Position: rigmath.Add(p.Position, p.Rotation.Rotate(b.Local.Position)),
			Rotation: rigmath.QuatMul(p.Rotation, b.Local.Rotation).Normalize(),
			Scale:    b.Local.Scale,
		}
	}
	return world
}
