package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nicoguyon/vibefighter-sub001/components"
	cfg "github.com/nicoguyon/vibefighter-sub001/config"
	"github.com/nicoguyon/vibefighter-sub001/systems"
	"github.com/nicoguyon/vibefighter-sub001/systems/factory"
	"github.com/nicoguyon/vibefighter-sub001/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger switches the active scene on the game shell.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ViewerScene hosts the single-actor rig viewer: command input, pose
// playback, stick figure rendering, and the ebitenui control panel.
type ViewerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	panel        *ui.ControlPanel
	once         sync.Once
}

// NewViewerScene creates the rig viewer scene.
func NewViewerScene(sc SceneChanger) *ViewerScene {
	return &ViewerScene{sceneChanger: sc}
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)
	vs.ecs.Update()

	if systems.GetOrCreateSettings(vs.ecs).PanelVisible {
		vs.panel.Update()
	}
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Viewer.Background)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)

	if systems.GetOrCreateSettings(vs.ecs).PanelVisible {
		vs.panel.Draw(screen)
	}
}

func (vs *ViewerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateActors)

	ecs.AddRenderer(cfg.Default, systems.DrawActors)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	vs.ecs = ecs

	actor := factory.CreateActor(ecs)
	ctrl := components.Rig.Get(actor).Controller
	vs.panel = ui.NewControlPanel(ctrl)
}
