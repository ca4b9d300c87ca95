// Package posecfg defines the declarative data the animation core runs on:
// pose states, bone names and groups, authored pose target tables and the
// move descriptor table. It must have zero dependencies on ebiten or any
// graphics library so the core packages stay headless.
package posecfg

// PoseState identifies the character's current discrete pose state. Exactly
// one value is current at any time; it gates which commands are accepted.
type PoseState int

const (
	StateNone PoseState = -1

	StateInitial PoseState = iota
	StateStance
	StateBlocking
	StateDucking
	StateWalking
	StateTransitioning
	StatePunching
	StateKicking
	StateWaving
	StateArmsCrossed
	StateBowing
	StateFalling
	StateFallen
)

var stateNames = map[PoseState]string{
	StateNone:          "none",
	StateInitial:       "initial",
	StateStance:        "stance",
	StateBlocking:      "blocking",
	StateDucking:       "ducking",
	StateWalking:       "walking",
	StateTransitioning: "transitioning",
	StatePunching:      "punching",
	StateKicking:       "kicking",
	StateWaving:        "waving",
	StateArmsCrossed:   "armsCrossed",
	StateBowing:        "bowing",
	StateFalling:       "falling",
	StateFallen:        "fallen",
}

func (s PoseState) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}
