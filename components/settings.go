package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the viewer's toggleable display options.
type SettingsData struct {
	Debug        bool // Joint overlay with bone names and coordinates
	ShowHelp     bool // Key binding help overlay
	PanelVisible bool // ebitenui control panel
}

var Settings = donburi.NewComponentType[SettingsData]()
