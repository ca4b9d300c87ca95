package systems

import (
	"encoding/json"
	"log"

	"github.com/nicoguyon/vibefighter-sub001/components"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the viewer settings stored on disk
type SavedSettings struct {
	Debug        bool `json:"debug"`
	ShowHelp     bool `json:"showHelp"`
	PanelVisible bool `json:"panelVisible"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// pendingSettings holds settings loaded before the ECS world exists.
// GetOrCreateSettings consumes them when the singleton is first created.
var pendingSettings *SavedSettings

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "vibefighter",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Debug:        s.Debug,
		ShowHelp:     s.ShowHelp,
		PanelVisible: s.PanelVisible,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal stages loaded settings for the first scene.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	pendingSettings = saved
}
