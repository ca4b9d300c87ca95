package posecfg

// Canonical bone names for the humanoid rig. The skeleton may contain extra
// helper bones the core does not know about; those are skipped everywhere.
const (
	BoneHip     = "Hip"
	BoneSpine01 = "Spine01"
	BoneSpine02 = "Spine02"
	BoneNeck    = "Neck"
	BoneHead    = "Head"

	BoneLClavicle = "L_Clavicle"
	BoneLUpperarm = "L_Upperarm"
	BoneLForearm  = "L_Forearm"
	BoneLHand     = "L_Hand"

	BoneRClavicle = "R_Clavicle"
	BoneRUpperarm = "R_Upperarm"
	BoneRForearm  = "R_Forearm"
	BoneRHand     = "R_Hand"

	BoneLThigh = "L_Thigh"
	BoneLCalf  = "L_Calf"
	BoneLFoot  = "L_Foot"

	BoneRThigh = "R_Thigh"
	BoneRCalf  = "R_Calf"
	BoneRFoot  = "R_Foot"
)

// Named bone groups shared by the pose tables and the clip synthesizer, so a
// change to which bones count as "legs" happens in one place.
var (
	SpineBones = []string{BoneSpine01, BoneSpine02, BoneNeck, BoneHead}

	LeftArmBones  = []string{BoneLClavicle, BoneLUpperarm, BoneLForearm, BoneLHand}
	RightArmBones = []string{BoneRClavicle, BoneRUpperarm, BoneRForearm, BoneRHand}

	LeftLegBones  = []string{BoneLThigh, BoneLCalf, BoneLFoot}
	RightLegBones = []string{BoneRThigh, BoneRCalf, BoneRFoot}

	// Bones offset by the idle/arms-crossed breath loops. Everything else is
	// pinned to the base pose so external writers cannot drift them while the
	// loop plays.
	BreathBones = []string{
		BoneSpine01, BoneSpine02, BoneHead,
		BoneLClavicle, BoneRClavicle,
		BoneLUpperarm, BoneRUpperarm,
	}

	// Hand and spine bones oscillated by the hello wave loop.
	WaveBones = []string{BoneRUpperarm, BoneRForearm, BoneRHand, BoneSpine02}

	AllBones = []string{
		BoneHip, BoneSpine01, BoneSpine02, BoneNeck, BoneHead,
		BoneLClavicle, BoneLUpperarm, BoneLForearm, BoneLHand,
		BoneRClavicle, BoneRUpperarm, BoneRForearm, BoneRHand,
		BoneLThigh, BoneLCalf, BoneLFoot,
		BoneRThigh, BoneRCalf, BoneRFoot,
	}
)

// ArmBones returns the arm chain for a side ("L" or "R").
func ArmBones(side string) []string {
	if side == "L" {
		return LeftArmBones
	}
	return RightArmBones
}

// LegBones returns the leg chain for a side ("L" or "R").
func LegBones(side string) []string {
	if side == "L" {
		return LeftLegBones
	}
	return RightLegBones
}
