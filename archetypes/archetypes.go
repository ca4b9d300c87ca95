package archetypes

import (
	"github.com/nicoguyon/vibefighter-sub001/components"
	cfg "github.com/nicoguyon/vibefighter-sub001/config"
	"github.com/nicoguyon/vibefighter-sub001/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Actor = newArchetype(
		tags.Actor,
		components.Rig,
		components.Status,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
