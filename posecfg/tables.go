package posecfg

import (
	"github.com/nicoguyon/vibefighter-sub001/rigmath"
)

// BoneTarget is one authored pose entry: rotation in degrees interpreted in
// the given Euler order, plus an optional position offset from the reference
// pose. The degree values are exact hand-tuned data captured from the pose
// editor; do not reparameterize them.
type BoneTarget struct {
	Rot   rigmath.Vec3 // degrees
	Order rigmath.EulerOrder
	Pos   *rigmath.Vec3 // offset from reference position, nil = no move
}

// PoseTable is a sparse named pose: bone name → target. A bone absent from
// the table retains whatever pose it had in the reference pose being used.
type PoseTable map[string]BoneTarget

// Quat converts the target's degree triple to a quaternion in its order.
func (t BoneTarget) Quat() rigmath.Quat {
	return rigmath.FromEulerDeg(t.Rot.X, t.Rot.Y, t.Rot.Z, t.Order)
}

func vp(x, y, z float32) *rigmath.Vec3 {
	return &rigmath.Vec3{X: x, Y: y, Z: z}
}

// StanceTargets is the fighting stance: slight crouch, torso quarter-turned,
// both arms up in guard.
var StanceTargets = PoseTable{
	BoneSpine01:   {Rot: rigmath.Vec3{X: -4, Y: 18, Z: 0}, Order: rigmath.OrderYXZ},
	BoneSpine02:   {Rot: rigmath.Vec3{X: -6, Y: 10, Z: 0}, Order: rigmath.OrderYXZ},
	BoneHead:      {Rot: rigmath.Vec3{X: 4, Y: -14, Z: 0}, Order: rigmath.OrderYXZ},
	BoneLClavicle: {Rot: rigmath.Vec3{X: 0, Y: 0, Z: -8}, Order: rigmath.OrderXYZ},
	BoneLUpperarm: {Rot: rigmath.Vec3{X: -52, Y: 12, Z: -28}, Order: rigmath.OrderZXY},
	BoneLForearm:  {Rot: rigmath.Vec3{X: -96, Y: 0, Z: 14}, Order: rigmath.OrderXYZ},
	BoneLHand:     {Rot: rigmath.Vec3{X: -18, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneRClavicle: {Rot: rigmath.Vec3{X: 0, Y: 0, Z: 8}, Order: rigmath.OrderXYZ},
	BoneRUpperarm: {Rot: rigmath.Vec3{X: -48, Y: -16, Z: 32}, Order: rigmath.OrderZXY},
	BoneRForearm:  {Rot: rigmath.Vec3{X: -104, Y: 0, Z: -12}, Order: rigmath.OrderXYZ},
	BoneRHand:     {Rot: rigmath.Vec3{X: -18, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneLThigh:    {Rot: rigmath.Vec3{X: -14, Y: 8, Z: 0}, Order: rigmath.OrderXYZ},
	BoneLCalf:     {Rot: rigmath.Vec3{X: 22, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneRThigh:    {Rot: rigmath.Vec3{X: -20, Y: -6, Z: 0}, Order: rigmath.OrderXYZ},
	BoneRCalf:     {Rot: rigmath.Vec3{X: 26, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
}

// BlockTargets raises both forearms in front of the face. Holds until the
// next command.
var BlockTargets = PoseTable{
	BoneSpine01:   {Rot: rigmath.Vec3{X: -8, Y: 6, Z: 0}, Order: rigmath.OrderYXZ},
	BoneHead:      {Rot: rigmath.Vec3{X: 10, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneLUpperarm: {Rot: rigmath.Vec3{X: -74, Y: 28, Z: -12}, Order: rigmath.OrderZXY},
	BoneLForearm:  {Rot: rigmath.Vec3{X: -128, Y: 16, Z: 0}, Order: rigmath.OrderXYZ},
	BoneLHand:     {Rot: rigmath.Vec3{X: -24, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneRUpperarm: {Rot: rigmath.Vec3{X: -74, Y: -28, Z: 12}, Order: rigmath.OrderZXY},
	BoneRForearm:  {Rot: rigmath.Vec3{X: -128, Y: -16, Z: 0}, Order: rigmath.OrderXYZ},
	BoneRHand:     {Rot: rigmath.Vec3{X: -24, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
}

// DuckTargets folds the rig into a crouch. The hip entry is the one place a
// pose table moves a bone position: it lowers the whole rig.
var DuckTargets = PoseTable{
	BoneHip:       {Rot: rigmath.Vec3{X: -12, Y: 0, Z: 0}, Order: rigmath.OrderXYZ, Pos: vp(0, -0.46, 0.04)},
	BoneSpine01:   {Rot: rigmath.Vec3{X: -26, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneSpine02:   {Rot: rigmath.Vec3{X: -18, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneHead:      {Rot: rigmath.Vec3{X: 16, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneLUpperarm: {Rot: rigmath.Vec3{X: -60, Y: 10, Z: -20}, Order: rigmath.OrderZXY},
	BoneLForearm:  {Rot: rigmath.Vec3{X: -110, Y: 0, Z: 10}, Order: rigmath.OrderXYZ},
	BoneRUpperarm: {Rot: rigmath.Vec3{X: -60, Y: -10, Z: 20}, Order: rigmath.OrderZXY},
	BoneRForearm:  {Rot: rigmath.Vec3{X: -110, Y: 0, Z: -10}, Order: rigmath.OrderXYZ},
	BoneLThigh:    {Rot: rigmath.Vec3{X: -98, Y: 14, Z: 0}, Order: rigmath.OrderXYZ},
	BoneLCalf:     {Rot: rigmath.Vec3{X: 124, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneLFoot:     {Rot: rigmath.Vec3{X: -26, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneRThigh:    {Rot: rigmath.Vec3{X: -98, Y: -14, Z: 0}, Order: rigmath.OrderXYZ},
	BoneRCalf:     {Rot: rigmath.Vec3{X: 124, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneRFoot:     {Rot: rigmath.Vec3{X: -26, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
}

// HelloTargets lifts the right arm into the wave-ready position.
var HelloTargets = PoseTable{
	BoneSpine02:   {Rot: rigmath.Vec3{X: 0, Y: 0, Z: -4}, Order: rigmath.OrderXYZ},
	BoneHead:      {Rot: rigmath.Vec3{X: 0, Y: 0, Z: 6}, Order: rigmath.OrderXYZ},
	BoneRClavicle: {Rot: rigmath.Vec3{X: 0, Y: 0, Z: 18}, Order: rigmath.OrderXYZ},
	BoneRUpperarm: {Rot: rigmath.Vec3{X: -10, Y: 0, Z: 148}, Order: rigmath.OrderZYX},
	BoneRForearm:  {Rot: rigmath.Vec3{X: -34, Y: 0, Z: 18}, Order: rigmath.OrderXYZ},
	BoneRHand:     {Rot: rigmath.Vec3{X: 0, Y: 0, Z: 12}, Order: rigmath.OrderXYZ},
}

// ArmsCrossedTargets folds both arms across the chest.
var ArmsCrossedTargets = PoseTable{
	BoneSpine01:   {Rot: rigmath.Vec3{X: 3, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneLClavicle: {Rot: rigmath.Vec3{X: 0, Y: 0, Z: -10}, Order: rigmath.OrderXYZ},
	BoneLUpperarm: {Rot: rigmath.Vec3{X: -42, Y: 36, Z: -24}, Order: rigmath.OrderZXY},
	BoneLForearm:  {Rot: rigmath.Vec3{X: -118, Y: 30, Z: 26}, Order: rigmath.OrderXYZ},
	BoneLHand:     {Rot: rigmath.Vec3{X: -10, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneRClavicle: {Rot: rigmath.Vec3{X: 0, Y: 0, Z: 10}, Order: rigmath.OrderXYZ},
	BoneRUpperarm: {Rot: rigmath.Vec3{X: -46, Y: -34, Z: 22}, Order: rigmath.OrderZXY},
	BoneRForearm:  {Rot: rigmath.Vec3{X: -122, Y: -28, Z: -24}, Order: rigmath.OrderXYZ},
	BoneRHand:     {Rot: rigmath.Vec3{X: -10, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
}

// BowArmTargets places the arms for the bow: left hand to the stomach, right
// arm swept back. Spine pitch is keyframed separately by the synthesizer.
var BowArmTargets = PoseTable{
	BoneLUpperarm: {Rot: rigmath.Vec3{X: -38, Y: 44, Z: -12}, Order: rigmath.OrderZXY},
	BoneLForearm:  {Rot: rigmath.Vec3{X: -96, Y: 38, Z: 20}, Order: rigmath.OrderXYZ},
	BoneLHand:     {Rot: rigmath.Vec3{X: -12, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneRUpperarm: {Rot: rigmath.Vec3{X: 24, Y: -30, Z: 14}, Order: rigmath.OrderZXY},
	BoneRForearm:  {Rot: rigmath.Vec3{X: -20, Y: 0, Z: -8}, Order: rigmath.OrderXYZ},
	BoneRHand:     {Rot: rigmath.Vec3{X: -8, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
}

// FallenTargets is the end pose of the backward fall: rig flat on its back.
// The hip entry drops and tilts the whole rig.
var FallenTargets = PoseTable{
	BoneHip:       {Rot: rigmath.Vec3{X: -84, Y: 0, Z: 0}, Order: rigmath.OrderXYZ, Pos: vp(0, -0.86, -0.42)},
	BoneSpine01:   {Rot: rigmath.Vec3{X: 4, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneSpine02:   {Rot: rigmath.Vec3{X: 6, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneHead:      {Rot: rigmath.Vec3{X: 22, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneLUpperarm: {Rot: rigmath.Vec3{X: -20, Y: 24, Z: -48}, Order: rigmath.OrderZXY},
	BoneLForearm:  {Rot: rigmath.Vec3{X: -26, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneRUpperarm: {Rot: rigmath.Vec3{X: -20, Y: -24, Z: 48}, Order: rigmath.OrderZXY},
	BoneRForearm:  {Rot: rigmath.Vec3{X: -26, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneLThigh:    {Rot: rigmath.Vec3{X: 8, Y: 6, Z: 0}, Order: rigmath.OrderXYZ},
	BoneLCalf:     {Rot: rigmath.Vec3{X: 14, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
	BoneRThigh:    {Rot: rigmath.Vec3{X: 8, Y: -6, Z: 0}, Order: rigmath.OrderXYZ},
	BoneRCalf:     {Rot: rigmath.Vec3{X: 14, Y: 0, Z: 0}, Order: rigmath.OrderXYZ},
}
