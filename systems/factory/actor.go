package factory

import (
	"log"

	"github.com/nicoguyon/vibefighter-sub001/archetypes"
	"github.com/nicoguyon/vibefighter-sub001/assets"
	"github.com/nicoguyon/vibefighter-sub001/components"
	"github.com/nicoguyon/vibefighter-sub001/pose"
	"github.com/nicoguyon/vibefighter-sub001/posecfg"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateActor spawns the humanoid actor entity with its own skeleton
// and pose controller.
func CreateActor(ecs *ecs.ECS) *donburi.Entry {
	actor := archetypes.Actor.Spawn(ecs)

	sk := assets.NewHumanoid()
	ctrl, err := pose.NewController(sk)
	if err != nil {
		log.Fatalf("Failed to create pose controller: %v", err)
	}

	components.Rig.SetValue(actor, components.RigData{
		Skeleton:   sk,
		Controller: ctrl,
	})

	// The HUD reads announced state from StatusData; the controller's
	// listeners are the only writers.
	components.Status.SetValue(actor, components.StatusData{
		State: ctrl.State(),
		Busy:  ctrl.Busy(),
	})
	status := components.Status.Get(actor)
	ctrl.AddStateListener(func(state posecfg.PoseState, busy bool) {
		status.State = state
		status.Busy = busy
	})
	ctrl.AddClipListener(func(clipName string) {
		status.LastClip = clipName
	})

	return actor
}
