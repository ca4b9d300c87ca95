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
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the actor's state line and, when enabled, the key help
// overlay in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	actorEntry, ok := components.Rig.First(e.World)
	if !ok {
		return
	}
	ctrl := components.Rig.Get(actorEntry).Controller
	status := components.Status.Get(actorEntry)

	fontFace := fonts.Main.Get()
	margin := cfg.HUD.Margin
	y := margin + cfg.HUD.LineHeight

	stateColor := cfg.HUD.IdleColor
	activity := "idle"
	if status.Busy {
		stateColor = cfg.HUD.BusyColor
		activity = "busy"
	}

	stateStr := fmt.Sprintf("state: %s (%s)", status.State, activity)
	text.Draw(screen, stateStr, fontFace, margin, y, stateColor)
	y += cfg.HUD.LineHeight

	clipStr := fmt.Sprintf("clips: %d", ctrl.Mixer().ActiveCount())
	text.Draw(screen, clipStr, fontFace, margin, y, cfg.White)
	y += cfg.HUD.LineHeight

	if status.LastClip != "" {
		lastStr := fmt.Sprintf("last: %s", status.LastClip)
		text.Draw(screen, lastStr, fontFace, margin, y, cfg.White)
		y += cfg.HUD.LineHeight
	}

	if ctrl.Editable() {
		text.Draw(screen, "pose editable", fontFace, margin, y, cfg.LightBlue)
		y += cfg.HUD.LineHeight
	}

	settings := GetOrCreateSettings(e)
	if settings.ShowHelp {
		drawHelp(screen, y+cfg.HUD.LineHeight)
	}
}

var helpActions = []cfg.ActionID{
	cfg.ActionStance,
	cfg.ActionReset,
	cfg.ActionWalk,
	cfg.ActionPunchLeft,
	cfg.ActionPunchRight,
	cfg.ActionBlock,
	cfg.ActionDuck,
	cfg.ActionDuckKick,
	cfg.ActionHello,
	cfg.ActionArmsCrossed,
	cfg.ActionBow,
	cfg.ActionFall,
	cfg.ActionToggleDebug,
	cfg.ActionToggleHelp,
	cfg.ActionTogglePanel,
}

var helpNames = map[cfg.ActionID]string{
	cfg.ActionStance:      "stance",
	cfg.ActionReset:       "reset",
	cfg.ActionWalk:        "walk",
	cfg.ActionPunchLeft:   "punch left",
	cfg.ActionPunchRight:  "punch right",
	cfg.ActionBlock:       "block",
	cfg.ActionDuck:        "duck",
	cfg.ActionDuckKick:    "duck kick",
	cfg.ActionHello:       "hello",
	cfg.ActionArmsCrossed: "arms crossed",
	cfg.ActionBow:         "bow",
	cfg.ActionFall:        "fall",
	cfg.ActionToggleDebug: "debug overlay",
	cfg.ActionToggleHelp:  "this help",
	cfg.ActionTogglePanel: "control panel",
}

func drawHelp(screen *ebiten.Image, startY int) {
	fontFace := fonts.MainSmall.Get()
	margin := cfg.HUD.Margin
	lineH := cfg.HUD.LineHeight - 2

	boxH := float32(lineH*len(helpActions) + 12)
	vector.DrawFilledRect(screen,
		float32(margin-4), float32(startY-lineH),
		150, boxH,
		cfg.BlackOverlay, false)

	y := startY
	for _, id := range helpActions {
		line := fmt.Sprintf("%-4s %s", cfg.KeyLabels[id], helpNames[id])
		text.Draw(screen, line, fontFace, margin, y, color.RGBA{200, 200, 210, 255})
		y += lineH
	}
}
