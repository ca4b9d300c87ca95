package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nicoguyon/vibefighter-sub001/components"
	cfg "github.com/nicoguyon/vibefighter-sub001/config"
	"github.com/nicoguyon/vibefighter-sub001/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug overlays joint markers, bone names, and world coordinates.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	fontFace := fonts.MainSmall.Get()
	labelColor := color.RGBA{0, 255, 255, 255}

	components.Rig.Each(e.World, func(entry *donburi.Entry) {
		rigData := components.Rig.Get(entry)
		world := rigData.Skeleton.WorldTransforms()

		for _, b := range rigData.Skeleton.Bones() {
			wt := world[b.Name]
			jx, jy := projectX(wt.Position.X), projectY(wt.Position.Y)

			// Joint crosshair
			vector.StrokeLine(screen, jx-3, jy, jx+3, jy, 1, labelColor, false)
			vector.StrokeLine(screen, jx, jy-3, jx, jy+3, 1, labelColor, false)

			if cfg.Debug.ShowBoneNames {
				label := fmt.Sprintf("%s (%.2f, %.2f)", b.Name, wt.Position.X, wt.Position.Y)
				text.Draw(screen, label, fontFace, int(jx)+6, int(jy)-2, labelColor)
			}
		}
	})
}
