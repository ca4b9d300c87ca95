package systems

import (
	"github.com/nicoguyon/vibefighter-sub001/components"
	cfg "github.com/nicoguyon/vibefighter-sub001/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the viewer display toggles and persists them.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	changed := false
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if GetAction(input, cfg.ActionToggleHelp).JustPressed {
		settings.ShowHelp = !settings.ShowHelp
		changed = true
	}
	if GetAction(input, cfg.ActionTogglePanel).JustPressed {
		settings.PanelVisible = !settings.PanelVisible
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))

		data := components.SettingsData{
			PanelVisible: true,
			ShowHelp:     true,
		}
		if saved := pendingSettings; saved != nil {
			data.Debug = saved.Debug
			data.ShowHelp = saved.ShowHelp
			data.PanelVisible = saved.PanelVisible
		}
		components.Settings.SetValue(ent, data)
	}
	entry, _ := components.Settings.First(e.World)
	return components.Settings.Get(entry)
}
