// Package assets holds the built-in character data the viewer runs with, so
// the demo needs no external files.
package assets

import (
	"github.com/nicoguyon/vibefighter-sub001/posecfg"
	"github.com/nicoguyon/vibefighter-sub001/rig"
	"github.com/nicoguyon/vibefighter-sub001/rigmath"
)

// NewHumanoid builds the default 19-bone humanoid rig in its bind pose:
// Y-up, facing +Z, identity bind rotations, roughly 1.8m tall.
func NewHumanoid() *rig.Skeleton {
	at := func(x, y, z float32) rig.Transform {
		return rig.Transform{
			Position: rigmath.Vec3{X: x, Y: y, Z: z},
			Rotation: rigmath.QuatIdent(),
			Scale:    rigmath.Vec3{X: 1, Y: 1, Z: 1},
		}
	}

	return rig.NewSkeleton([]rig.Bone{
		{Name: posecfg.BoneHip, Local: at(0, 0.98, 0)},
		{Name: posecfg.BoneSpine01, Parent: posecfg.BoneHip, Local: at(0, 0.12, 0)},
		{Name: posecfg.BoneSpine02, Parent: posecfg.BoneSpine01, Local: at(0, 0.15, 0)},
		{Name: posecfg.BoneNeck, Parent: posecfg.BoneSpine02, Local: at(0, 0.13, 0)},
		{Name: posecfg.BoneHead, Parent: posecfg.BoneNeck, Local: at(0, 0.11, 0)},

		{Name: posecfg.BoneLClavicle, Parent: posecfg.BoneSpine02, Local: at(0.07, 0.09, 0)},
		{Name: posecfg.BoneLUpperarm, Parent: posecfg.BoneLClavicle, Local: at(0.12, 0, 0)},
		{Name: posecfg.BoneLForearm, Parent: posecfg.BoneLUpperarm, Local: at(0.27, 0, 0)},
		{Name: posecfg.BoneLHand, Parent: posecfg.BoneLForearm, Local: at(0.25, 0, 0)},

		{Name: posecfg.BoneRClavicle, Parent: posecfg.BoneSpine02, Local: at(-0.07, 0.09, 0)},
		{Name: posecfg.BoneRUpperarm, Parent: posecfg.BoneRClavicle, Local: at(-0.12, 0, 0)},
		{Name: posecfg.BoneRForearm, Parent: posecfg.BoneRUpperarm, Local: at(-0.27, 0, 0)},
		{Name: posecfg.BoneRHand, Parent: posecfg.BoneRForearm, Local: at(-0.25, 0, 0)},

		{Name: posecfg.BoneLThigh, Parent: posecfg.BoneHip, Local: at(0.10, -0.05, 0)},
		{Name: posecfg.BoneLCalf, Parent: posecfg.BoneLThigh, Local: at(0, -0.44, 0)},
		{Name: posecfg.BoneLFoot, Parent: posecfg.BoneLCalf, Local: at(0, -0.42, 0.04)},

		{Name: posecfg.BoneRThigh, Parent: posecfg.BoneHip, Local: at(-0.10, -0.05, 0)},
		{Name: posecfg.BoneRCalf, Parent: posecfg.BoneRThigh, Local: at(0, -0.44, 0)},
		{Name: posecfg.BoneRFoot, Parent: posecfg.BoneRCalf, Local: at(0, -0.42, 0.04)},
	})
}
