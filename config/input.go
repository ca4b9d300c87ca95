package config

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nicoguyon/vibefighter-sub001/posecfg"
)

// ActionID represents a logical viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionStance
	ActionReset
	ActionWalk
	ActionPunchLeft
	ActionPunchRight
	ActionBlock
	ActionDuck
	ActionDuckKick
	ActionHello
	ActionArmsCrossed
	ActionBow
	ActionFall
	ActionToggleDebug
	ActionToggleHelp
	ActionTogglePanel
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

// CommandActions maps viewer actions onto rig commands. Actions missing
// from this map (debug toggles etc.) are handled by the viewer itself.
var CommandActions = map[ActionID]posecfg.Command{
	ActionStance:      posecfg.CmdStance,
	ActionReset:       posecfg.CmdReset,
	ActionWalk:        posecfg.CmdWalk,
	ActionPunchLeft:   posecfg.CmdPunchLeft,
	ActionPunchRight:  posecfg.CmdPunchRight,
	ActionBlock:       posecfg.CmdBlock,
	ActionDuck:        posecfg.CmdDuck,
	ActionDuckKick:    posecfg.CmdDuckKick,
	ActionHello:       posecfg.CmdHello,
	ActionArmsCrossed: posecfg.CmdArmsCrossed,
	ActionBow:         posecfg.CmdBow,
	ActionFall:        posecfg.CmdFall,
}

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionStance: {
				Keys: []ebiten.Key{ebiten.KeyS},
			},
			ActionReset: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
			ActionWalk: {
				Keys: []ebiten.Key{ebiten.KeyW},
			},
			ActionPunchLeft: {
				Keys: []ebiten.Key{ebiten.KeyQ},
			},
			ActionPunchRight: {
				Keys: []ebiten.Key{ebiten.KeyE},
			},
			ActionBlock: {
				Keys: []ebiten.Key{ebiten.KeyG},
			},
			ActionDuck: {
				Keys: []ebiten.Key{ebiten.KeyC},
			},
			ActionDuckKick: {
				Keys: []ebiten.Key{ebiten.KeyK},
			},
			ActionHello: {
				Keys: []ebiten.Key{ebiten.KeyH},
			},
			ActionArmsCrossed: {
				Keys: []ebiten.Key{ebiten.KeyX},
			},
			ActionBow: {
				Keys: []ebiten.Key{ebiten.KeyB},
			},
			ActionFall: {
				Keys: []ebiten.Key{ebiten.KeyF},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionToggleHelp: {
				Keys: []ebiten.Key{ebiten.KeyF2},
			},
			ActionTogglePanel: {
				Keys: []ebiten.Key{ebiten.KeyTab},
			},
		},
	}
}

// KeyLabels maps actions to a short binding label for the help overlay.
var KeyLabels = map[ActionID]string{
	ActionStance:      "S",
	ActionReset:       "R",
	ActionWalk:        "W",
	ActionPunchLeft:   "Q",
	ActionPunchRight:  "E",
	ActionBlock:       "G",
	ActionDuck:        "C",
	ActionDuckKick:    "K",
	ActionHello:       "H",
	ActionArmsCrossed: "X",
	ActionBow:         "B",
	ActionFall:        "F",
	ActionToggleDebug: "F1",
	ActionToggleHelp:  "F2",
	ActionTogglePanel: "TAB",
}
