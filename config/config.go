package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Viewer ViewerConfig
var HUD HUDConfig
var Debug DebugConfig

// Default is the render layer all viewer renderers draw on.
var Default ecs.LayerID = ecs.LayerDefault

// ViewerConfig controls how the rig is projected onto the screen.
type ViewerConfig struct {
	Scale       float32 // pixels per meter
	GroundY     float32 // screen Y of the floor line
	CenterX     float32 // screen X the hip is centered on
	BoneWidth   float32
	JointRadius float32
	HeadRadius  float32

	BoneColor   color.RGBA
	JointColor  color.RGBA
	GroundColor color.RGBA
	Background  color.RGBA
}

// HUDConfig contains status line layout values.
type HUDConfig struct {
	Margin     int
	LineHeight int
	BusyColor  color.RGBA
	IdleColor  color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowBoneNames bool // Label every joint in the debug overlay
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Viewer = ViewerConfig{
		Scale:       220,
		GroundY:     float32(C.Height) - 60,
		CenterX:     float32(C.Width)/2 - 120, // leaves room for the control panel
		BoneWidth:   4,
		JointRadius: 5,
		HeadRadius:  16,

		BoneColor:   color.RGBA{R: 220, G: 220, B: 230, A: 255},
		JointColor:  color.RGBA{R: 255, G: 180, B: 60, A: 255},
		GroundColor: color.RGBA{R: 70, G: 70, B: 85, A: 255},
		Background:  color.RGBA{R: 18, G: 18, B: 26, A: 255},
	}

	HUD = HUDConfig{
		Margin:     10,
		LineHeight: 16,
		BusyColor:  Orange,
		IdleColor:  BrightGreen,
	}

	Debug = DebugConfig{
		ShowBoneNames: true,
	}
}
