package posecfg

import (
	"github.com/nicoguyon/vibefighter-sub001/rigmath"
)

// Punch and kick apex poses are literal hand-tuned values captured from the
// pose editor. The arm entries are absolute targets; torso and supporting-leg
// entries are relative degree offsets applied to whatever base pose the punch
// starts from.

// PunchApexRight is the apex of a right straight: punching arm extended,
// left arm pulled in as guard.
var PunchApexRight = PoseTable{
	BoneRClavicle: {Rot: rigmath.Vec3{X: 0, Y: -12, Z: 6}, Order: rigmath.OrderXYZ},
	BoneRUpperarm: {Rot: rigmath.Vec3{X: -86, Y: -22, Z: 4}, Order: rigmath.OrderZXY},
	BoneRForearm:  {Rot: rigmath.Vec3{X: -8, Y: 0, Z: -4}, Order: rigmath.OrderXYZ},
	BoneRHand:     {Rot: rigmath.Vec3{X: -30, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneLUpperarm: {Rot: rigmath.Vec3{X: -58, Y: 18, Z: -34}, Order: rigmath.OrderZXY},
	BoneLForearm:  {Rot: rigmath.Vec3{X: -118, Y: 0, Z: 16}, Order: rigmath.OrderXYZ},
}

// PunchApexLeft is the mirrored left straight, authored separately (not
// derived from the right-side table).
var PunchApexLeft = PoseTable{
	BoneLClavicle: {Rot: rigmath.Vec3{X: 0, Y: 12, Z: -6}, Order: rigmath.OrderXYZ},
	BoneLUpperarm: {Rot: rigmath.Vec3{X: -86, Y: 22, Z: -4}, Order: rigmath.OrderZXY},
	BoneLForearm:  {Rot: rigmath.Vec3{X: -8, Y: 0, Z: 4}, Order: rigmath.OrderXYZ},
	BoneLHand:     {Rot: rigmath.Vec3{X: -30, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneRUpperarm: {Rot: rigmath.Vec3{X: -58, Y: -18, Z: 34}, Order: rigmath.OrderZXY},
	BoneRForearm:  {Rot: rigmath.Vec3{X: -118, Y: 0, Z: -16}, Order: rigmath.OrderXYZ},
}

// PunchBodyOffsetRight are relative torso-twist and supporting-leg offsets
// (degrees, XYZ) composed onto the base pose at the punch apex.
var PunchBodyOffsetRight = map[string]rigmath.Vec3{
	BoneHip:     {Y: -10},
	BoneSpine01: {Y: -24},
	BoneSpine02: {Y: -12},
	BoneLThigh:  {X: -6, Y: 4},
	BoneLCalf:   {X: 8},
}

// PunchBodyOffsetLeft mirrors the twist for the left straight.
var PunchBodyOffsetLeft = map[string]rigmath.Vec3{
	BoneHip:     {Y: 10},
	BoneSpine01: {Y: 24},
	BoneSpine02: {Y: 12},
	BoneRThigh:  {X: -6, Y: -4},
	BoneRCalf:   {X: 8},
}

// PunchWindbackDeg is the relative pull-back (degrees, XYZ) applied to the
// punching upper arm at the wind-up keyframe.
var PunchWindbackDeg = rigmath.Vec3{X: 18, Z: 10}

// DuckKickApex is the absolute target for the kicking (right) leg at the
// apex of the duck-kick. Every other bone stays pinned to the duck pose.
var DuckKickApex = PoseTable{
	BoneRThigh: {Rot: rigmath.Vec3{X: -94, Y: -4, Z: 0}, Order: rigmath.OrderXYZ},
	BoneRCalf:  {Rot: rigmath.Vec3{X: 6, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneRFoot:  {Rot: rigmath.Vec3{X: 18, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
}

// DuckKickWindupDeg is the relative chamber (degrees, XYZ) applied to the
// kicking thigh/calf before extension.
var DuckKickWindupDeg = map[string]rigmath.Vec3{
	BoneRThigh: {X: -18},
	BoneRCalf:  {X: 22},
}

// Bow spine pitch stages (degrees about X): the first keyframe pair bends
// shallow, the second bends deeper, then the spine returns.
const (
	BowSpineStage1Deg float32 = -24
	BowSpineStage2Deg float32 = -44
	BowSpine02Scale   float32 = 0.6 // Spine02 carries this fraction of the bend
)

// Breath and wave amplitudes (degrees), applied as relative offsets around
// the loop's base pose.
var (
	BreathOffsetDeg = map[string]rigmath.Vec3{
		BoneSpine01:   {X: 2.2},
		BoneSpine02:   {X: 1.6},
		BoneHead:      {X: -1.4},
		BoneLClavicle: {Z: -1.2},
		BoneRClavicle: {Z: 1.2},
		BoneLUpperarm: {Z: -1.8},
		BoneRUpperarm: {Z: 1.8},
	}

	WaveOffsetDeg = map[string]rigmath.Vec3{
		BoneRUpperarm: {Z: 14},
		BoneRForearm:  {Z: 22},
		BoneRHand:     {Z: 10},
		BoneSpine02:   {Z: -2},
	}
)

// Walk cycle shape: sinusoidal stride/lift on the legs with the sides 180°
// out of phase, counter-rotating calves and feet, and a spine twist opposite
// the leading leg.
const (
	WalkStrideDeg     float32 = 34 // thigh swing amplitude
	WalkLiftDeg       float32 = 22 // calf bend amplitude
	WalkFootDeg       float32 = 10 // foot counter-rotation amplitude
	WalkSpineTwistDeg float32 = 7
)
