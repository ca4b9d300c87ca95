package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nicoguyon/vibefighter-sub001/components"
	cfg "github.com/nicoguyon/vibefighter-sub001/config"
	"github.com/nicoguyon/vibefighter-sub001/posecfg"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// projectX maps a rig-space X coordinate (meters, +X right) to screen pixels.
func projectX(x float32) float32 {
	return cfg.Viewer.CenterX + x*cfg.Viewer.Scale
}

// projectY maps a rig-space Y coordinate (meters, +Y up) to screen pixels.
func projectY(y float32) float32 {
	return cfg.Viewer.GroundY - y*cfg.Viewer.Scale
}

// DrawActors renders each actor as a front-view stick figure: a line per
// bone from its parent joint, circles at the joints, a disc for the head.
func DrawActors(e *ecs.ECS, screen *ebiten.Image) {
	// Floor line
	vector.StrokeLine(screen,
		0, cfg.Viewer.GroundY,
		float32(cfg.C.Width), cfg.Viewer.GroundY,
		2, cfg.Viewer.GroundColor, true)

	components.Rig.Each(e.World, func(entry *donburi.Entry) {
		rigData := components.Rig.Get(entry)
		sk := rigData.Skeleton
		world := sk.WorldTransforms()

		for _, b := range sk.Bones() {
			wt := world[b.Name]
			jx, jy := projectX(wt.Position.X), projectY(wt.Position.Y)

			if b.Parent != "" {
				pt := world[b.Parent]
				vector.StrokeLine(screen,
					projectX(pt.Position.X), projectY(pt.Position.Y),
					jx, jy,
					cfg.Viewer.BoneWidth, cfg.Viewer.BoneColor, true)
			}

			r := cfg.Viewer.JointRadius
			if b.Name == posecfg.BoneHead {
				r = cfg.Viewer.HeadRadius
			}
			vector.DrawFilledCircle(screen, jx, jy, r, cfg.Viewer.JointColor, true)
		}
	})
}
