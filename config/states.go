package config

import "github.com/nicoguyon/vibefighter-sub001/posecfg"

// Type aliases — viewer code using config.PoseState etc. keeps working
// without importing the headless package directly.
type PoseState = posecfg.PoseState
type Command = posecfg.Command

// Re-export pose state constants.
const (
	StateNone = posecfg.StateNone

	StateInitial       = posecfg.StateInitial
	StateStance        = posecfg.StateStance
	StateBlocking      = posecfg.StateBlocking
	StateDucking       = posecfg.StateDucking
	StateWalking       = posecfg.StateWalking
	StateTransitioning = posecfg.StateTransitioning
	StatePunching      = posecfg.StatePunching
	StateKicking       = posecfg.StateKicking
	StateWaving        = posecfg.StateWaving
	StateArmsCrossed   = posecfg.StateArmsCrossed
	StateBowing        = posecfg.StateBowing
	StateFalling       = posecfg.StateFalling
	StateFallen        = posecfg.StateFallen
)

// Re-export pose commands.
const (
	CmdStance      = posecfg.CmdStance
	CmdReset       = posecfg.CmdReset
	CmdWalk        = posecfg.CmdWalk
	CmdPunchLeft   = posecfg.CmdPunchLeft
	CmdPunchRight  = posecfg.CmdPunchRight
	CmdBlock       = posecfg.CmdBlock
	CmdDuck        = posecfg.CmdDuck
	CmdDuckKick    = posecfg.CmdDuckKick
	CmdHello       = posecfg.CmdHello
	CmdArmsCrossed = posecfg.CmdArmsCrossed
	CmdBow         = posecfg.CmdBow
	CmdFall        = posecfg.CmdFall

	CommandCount = posecfg.CommandCount
)
