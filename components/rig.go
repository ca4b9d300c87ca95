package components

import (
	"github.com/nicoguyon/vibefighter-sub001/pose"
	"github.com/nicoguyon/vibefighter-sub001/rig"
	"github.com/yohamta/donburi"
)

// RigData attaches a skeleton and its pose controller to an actor entity.
type RigData struct {
	Skeleton   *rig.Skeleton
	Controller *pose.Controller
}

var Rig = donburi.NewComponentType[RigData]()
