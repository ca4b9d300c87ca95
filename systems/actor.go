package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nicoguyon/vibefighter-sub001/components"
	cfg "github.com/nicoguyon/vibefighter-sub001/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateActors forwards just-pressed commands to each actor's pose
// controller and advances its playback by one tick.
func UpdateActors(e *ecs.ECS) {
	input := getOrCreateInput(e)
	dt := float32(1) / float32(ebiten.TPS())

	components.Rig.Each(e.World, func(entry *donburi.Entry) {
		rigData := components.Rig.Get(entry)
		ctrl := rigData.Controller

		for actionID, cmd := range cfg.CommandActions {
			if GetAction(input, actionID).JustPressed {
				ctrl.HandleCommand(cmd)
			}
		}

		ctrl.Update(dt)
	})
}
