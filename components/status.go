package components

import (
	"github.com/nicoguyon/vibefighter-sub001/posecfg"
	"github.com/yohamta/donburi"
)

// StatusData mirrors the controller's announced state for the HUD. It is
// written only by the listeners registered at actor creation, never by
// polling, so the HUD shows exactly what the controller reported.
type StatusData struct {
	State    posecfg.PoseState
	Busy     bool
	LastClip string // name of the most recently completed clip
}

var Status = donburi.NewComponentType[StatusData]()
