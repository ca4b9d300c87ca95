package posecfg

// Command is a discrete user intent, originating from UI buttons or key
// bindings in the host layer.
type Command int

const (
	CmdStance Command = iota
	CmdReset
	CmdWalk
	CmdPunchLeft
	CmdPunchRight
	CmdBlock
	CmdDuck
	CmdDuckKick
	CmdHello
	CmdArmsCrossed
	CmdBow
	CmdFall
	CommandCount
)

var commandNames = map[Command]string{
	CmdStance:      "stance",
	CmdReset:       "reset",
	CmdWalk:        "walk",
	CmdPunchLeft:   "punch-left",
	CmdPunchRight:  "punch-right",
	CmdBlock:       "block",
	CmdDuck:        "duck",
	CmdDuckKick:    "duck-kick",
	CmdHello:       "hello",
	CmdArmsCrossed: "arms-crossed",
	CmdBow:         "bow",
	CmdFall:        "fall",
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return "unknown"
}

// Clip names. One-shot clips complete and notify the state machine; loop
// clips run until faded out by the next command.
const (
	ClipStance            = "stance"
	ClipReset             = "reset"
	ClipIdleBreath        = "idle_breath"
	ClipWalk              = "walk"
	ClipPunchLeft         = "punch_left"
	ClipPunchRight        = "punch_right"
	ClipBlock             = "block"
	ClipDuck              = "duck"
	ClipDuckKick          = "duck_kick"
	ClipHello             = "hello"
	ClipHelloWave         = "hello_wave"
	ClipArmsCrossed       = "arms_crossed"
	ClipArmsCrossedBreath = "arms_crossed_breath"
	ClipBow               = "bow"
	ClipFall              = "fall"
)

// Clip timing, in seconds. Fades are fixed per-transition constants, not
// user-configurable.
const (
	FadeFast float32 = 0.12
	FadeSlow float32 = 0.25

	StanceDuration   float32 = 0.6
	ResetDuration    float32 = 0.5
	BreathPeriod     float32 = 3.2
	WalkPeriod       float32 = 1.1
	PunchDuration    float32 = 0.55
	BlockDuration    float32 = 0.3
	DuckDuration     float32 = 0.4
	DuckKickDuration float32 = 0.7
	HelloDuration    float32 = 0.5
	WavePeriod       float32 = 1.2
	ArmsCrossedDur   float32 = 0.6
	FallDuration     float32 = 0.8
)

// BowKeyTimes are the bow's absolute keyframe times: arms reach the bow
// target and hold, spine bends in two stages, then everything returns.
var BowKeyTimes = [4]float32{0, 1.0, 3.5, 4.5}

// MoveDef describes one user-triggered move. The state machine is a lookup
// over this table instead of a hand-written handler per move.
type MoveDef struct {
	Clip   string
	Busy   bool      // a one-shot is in flight; all commands no-op until it finishes
	During PoseState // state while the clip plays
	Result PoseState // state once the clip finishes

	// Requires gates the command to one state; StateNone allows any.
	Requires PoseState

	// ChainLoop names a loop clip started automatically when the one-shot
	// finishes.
	ChainLoop string

	// DynamicStart moves synthesize their start pose at trigger time
	// (captured stance snapshot or a fresh live snapshot) and therefore
	// regenerate their clip on every trigger.
	DynamicStart bool

	// Release lets the one-shot drop off the mixer at the end instead of
	// clamping its final pose. Only reset releases: its end pose is the
	// initial pose, and an empty mixer is what re-enables direct bone edits.
	Release bool

	// CaptureStance snapshots the rig when the clip finishes; ClearStance
	// invalidates any held snapshot.
	CaptureStance bool
	ClearStance   bool

	FadeIn  float32
	FadeOut float32 // applied to whatever was playing before
}

// Moves is the move descriptor table keyed by command.
var Moves = map[Command]MoveDef{
	CmdStance: {
		Clip: ClipStance, Busy: true,
		During: StateTransitioning, Result: StateStance, Requires: StateNone,
		ChainLoop: ClipIdleBreath, CaptureStance: true,
		FadeIn: FadeFast, FadeOut: FadeSlow,
	},
	CmdReset: {
		Clip: ClipReset, Busy: true,
		During: StateTransitioning, Result: StateInitial, Requires: StateNone,
		ClearStance: true, Release: true,
		FadeIn: FadeFast, FadeOut: FadeSlow,
	},
	CmdWalk: {
		Clip: ClipWalk, Busy: false,
		During: StateWalking, Result: StateWalking, Requires: StateStance,
		FadeIn: FadeSlow, FadeOut: FadeSlow,
	},
	CmdPunchLeft: {
		Clip: ClipPunchLeft, Busy: true,
		During: StatePunching, Result: StateStance, Requires: StateNone,
		DynamicStart: true,
		FadeIn:       FadeFast, FadeOut: FadeFast,
	},
	CmdPunchRight: {
		Clip: ClipPunchRight, Busy: true,
		During: StatePunching, Result: StateStance, Requires: StateNone,
		DynamicStart: true,
		FadeIn:       FadeFast, FadeOut: FadeFast,
	},
	CmdBlock: {
		Clip: ClipBlock, Busy: true,
		During: StateTransitioning, Result: StateBlocking, Requires: StateNone,
		FadeIn: FadeFast, FadeOut: FadeFast,
	},
	CmdDuck: {
		Clip: ClipDuck, Busy: true,
		During: StateTransitioning, Result: StateDucking, Requires: StateNone,
		FadeIn: FadeFast, FadeOut: FadeFast,
	},
	CmdDuckKick: {
		Clip: ClipDuckKick, Busy: true,
		During: StateKicking, Result: StateDucking, Requires: StateDucking,
		FadeIn: FadeFast, FadeOut: FadeFast,
	},
	CmdHello: {
		Clip: ClipHello, Busy: true,
		During: StateTransitioning, Result: StateWaving, Requires: StateNone,
		ChainLoop: ClipHelloWave,
		FadeIn:    FadeFast, FadeOut: FadeSlow,
	},
	CmdArmsCrossed: {
		Clip: ClipArmsCrossed, Busy: true,
		During: StateTransitioning, Result: StateArmsCrossed, Requires: StateNone,
		ChainLoop: ClipArmsCrossedBreath,
		FadeIn:    FadeFast, FadeOut: FadeSlow,
	},
	CmdBow: {
		Clip: ClipBow, Busy: true,
		During: StateBowing, Result: StateInitial, Requires: StateNone,
		FadeIn: FadeFast, FadeOut: FadeSlow,
	},
	CmdFall: {
		Clip: ClipFall, Busy: true,
		During: StateFalling, Result: StateFallen, Requires: StateNone,
		DynamicStart: true,
		FadeIn:       FadeFast, FadeOut: FadeFast,
	},
}
