// Package pose is the orchestration layer of the animation core: it tracks
// the character's discrete pose state, turns user commands into synthesized
// clips, and reacts to clip completion to chain follow-up states.
package pose

import (
	"log"

	"github.com/nicoguyon/vibefighter-sub001/clip"
	"github.com/nicoguyon/vibefighter-sub001/posecfg"
	"github.com/nicoguyon/vibefighter-sub001/rig"
	"github.com/nicoguyon/vibefighter-sub001/synth"
)

// StateListener observes pose-state changes, for UI to enable/disable
// command buttons.
type StateListener func(state posecfg.PoseState, busy bool)

// ClipListener observes clip completions by name.
type ClipListener func(clipName string)

// Controller owns the state machine for one character. All methods are
// called from the host's frame loop; there is no internal concurrency.
type Controller struct {
	sk    *rig.Skeleton
	synth *synth.Synthesizer
	mixer *clip.Mixer

	state posecfg.PoseState
	busy  bool

	// stanceSnap is captured right after the stance transition finishes and
	// is the stable origin for subsequent moves; reset invalidates it.
	stanceSnap rig.Snapshot

	// slots holds at most one live action per clip role. Installing a
	// replacement detaches the old action first.
	slots map[string]*clip.Action

	// finishDefs resolves a completed clip back to its move descriptor.
	finishDefs map[string]posecfg.MoveDef

	stateListeners []StateListener
	clipListeners  []ClipListener
}

// NewController builds the controller for a skeleton, capturing its initial
// pose as the rest reference.
func NewController(sk *rig.Skeleton) (*Controller, error) {
	initial := rig.CaptureInitialPose(sk)
	sy, err := synth.New(sk, initial)
	if err != nil {
		return nil, err
	}
	c := &Controller{
		sk:         sk,
		synth:      sy,
		mixer:      clip.NewMixer(sk),
		state:      posecfg.StateInitial,
		slots:      make(map[string]*clip.Action),
		finishDefs: make(map[string]posecfg.MoveDef, len(posecfg.Moves)),
	}
	for _, def := range posecfg.Moves {
		c.finishDefs[def.Clip] = def
	}
	return c, nil
}

// State returns the current pose state.
func (c *Controller) State() posecfg.PoseState { return c.state }

// Busy reports whether a one-shot move clip is in flight.
func (c *Controller) Busy() bool { return c.busy }

// Mixer exposes the playback context (for the host render loop and debug).
func (c *Controller) Mixer() *clip.Mixer { return c.mixer }

// StanceSnapshot returns the captured stance pose, nil when none is held.
func (c *Controller) StanceSnapshot() rig.Snapshot { return c.stanceSnap }

// Editable reports whether the live control surface may write bone rotations
// directly: only when nothing is playing.
func (c *Controller) Editable() bool {
	return !c.busy && c.mixer.ActiveCount() == 0
}

// AddStateListener registers a state-change observer.
func (c *Controller) AddStateListener(fn StateListener) {
	c.stateListeners = append(c.stateListeners, fn)
}

// AddClipListener registers a clip-completion observer.
func (c *Controller) AddClipListener(fn ClipListener) {
	c.clipListeners = append(c.clipListeners, fn)
}

func (c *Controller) setState(s posecfg.PoseState) {
	c.state = s
	for _, fn := range c.stateListeners {
		fn(c.state, c.busy)
	}
}

// Update advances playback by dt seconds and dispatches completions. Called
// exactly once per frame.
func (c *Controller) Update(dt float32) {
	for _, f := range c.mixer.Update(dt) {
		for _, fn := range c.clipListeners {
			fn(f.Clip)
		}
		c.onFinished(f.Clip)
	}
}

// HandleCommand processes one user command. Commands that arrive while busy,
// or outside their required state, are expected UI races and are silently
// ignored.
func (c *Controller) HandleCommand(cmd posecfg.Command) {
	if c.busy {
		return
	}
	if c.state == posecfg.StateFallen && cmd != posecfg.CmdReset {
		return
	}
	def, ok := posecfg.Moves[cmd]
	if !ok {
		return
	}
	if def.Requires != posecfg.StateNone && c.state != def.Requires {
		return
	}

	cl, err := c.synthesize(cmd, def)
	if err != nil {
		// Synthesis failure leaves the current state unchanged; the
		// character simply does not move.
		log.Printf("pose: %v command dropped: %v", cmd, err)
		return
	}

	// Retire the previous action in this role before installing the
	// replacement, so two evaluators never write the same bones.
	if old := c.slots[def.Clip]; old != nil {
		c.mixer.Detach(old)
	}

	loop := clip.LoopOnce
	clamp := !def.Release
	if !def.Busy && def.During == def.Result {
		loop = clip.LoopRepeat
		clamp = false
	}
	a := clip.NewAction(cl, loop, clamp)

	c.mixer.FadeOutAll(def.FadeOut, nil)
	a.FadeIn(def.FadeIn)
	c.mixer.Play(a)
	c.slots[def.Clip] = a

	c.busy = def.Busy
	c.setState(def.During)
}

// moveStart resolves the dynamic start pose for stance-relative moves: the
// captured stance snapshot while in stance, else a fresh live snapshot.
func (c *Controller) moveStart() rig.Snapshot {
	if c.state == posecfg.StateStance && c.stanceSnap != nil {
		return c.stanceSnap
	}
	return rig.CaptureSnapshot(c.sk)
}

func (c *Controller) synthesize(cmd posecfg.Command, def posecfg.MoveDef) (*clip.Clip, error) {
	switch cmd {
	case posecfg.CmdStance:
		return c.synth.Stance()
	case posecfg.CmdReset:
		return c.synth.Reset()
	case posecfg.CmdWalk:
		return c.synth.Walk()
	case posecfg.CmdPunchLeft:
		return c.synth.Punch("L", c.moveStart())
	case posecfg.CmdPunchRight:
		return c.synth.Punch("R", c.moveStart())
	case posecfg.CmdBlock:
		return c.synth.Block(c.moveStart())
	case posecfg.CmdDuck:
		return c.synth.Duck(c.moveStart())
	case posecfg.CmdDuckKick:
		return c.synth.DuckKick(rig.CaptureSnapshot(c.sk))
	case posecfg.CmdHello:
		return c.synth.Hello()
	case posecfg.CmdArmsCrossed:
		return c.synth.ArmsCrossed()
	case posecfg.CmdBow:
		return c.synth.Bow()
	case posecfg.CmdFall:
		return c.synth.Fall(rig.CaptureSnapshot(c.sk))
	}
	return nil, synth.ErrNoTracks
}

// onFinished reacts to a one-shot completion: clears the busy flag, settles
// the result state, manages the stance snapshot, and auto-starts any chained
// loop.
func (c *Controller) onFinished(name string) {
	def, ok := c.finishDefs[name]
	if !ok {
		return
	}
	c.busy = false
	if def.CaptureStance {
		c.stanceSnap = rig.CaptureSnapshot(c.sk)
	}
	if def.ClearStance {
		c.stanceSnap = nil
	}
	c.setState(def.Result)

	if def.ChainLoop != "" {
		c.startChainLoop(def.ChainLoop)
	}
}

func (c *Controller) startChainLoop(name string) {
	var (
		cl  *clip.Clip
		err error
	)
	switch name {
	case posecfg.ClipIdleBreath:
		cl, err = c.synth.IdleBreath()
	case posecfg.ClipHelloWave:
		cl, err = c.synth.HelloWave()
	case posecfg.ClipArmsCrossedBreath:
		cl, err = c.synth.ArmsCrossedBreath()
	default:
		return
	}
	if err != nil {
		log.Printf("pose: chained loop %q dropped: %v", name, err)
		return
	}

	if old := c.slots[name]; old != nil {
		c.mixer.Detach(old)
	}
	a := clip.NewAction(cl, clip.LoopRepeat, false)
	a.FadeIn(posecfg.FadeFast)
	c.mixer.Play(a)
	c.slots[name] = a
}
