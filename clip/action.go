package clip

import (
	"github.com/google/uuid"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// LoopMode selects one-shot or repeating playback.
type LoopMode int

const (
	LoopOnce LoopMode = iota
	LoopRepeat
)

// Action is a mixer-bound instance of a clip with play/loop/weight/fade
// state. Dynamic moves retire their old action and install a freshly
// synthesized one in the same slot, so the id exists to tell instances apart
// in diagnostics.
type Action struct {
	ID   uuid.UUID
	Clip *Clip

	Loop LoopMode
	// ClampWhenFinished holds the last pose after a one-shot completes
	// instead of releasing the bones.
	ClampWhenFinished bool

	time     float32
	playing  bool
	finished bool

	weight    float32
	fade      *gween.Tween
	fadingOut bool
}

// NewAction wraps a clip for playback. The action starts stopped with zero
// weight; call FadeIn (or Play) to start it.
func NewAction(c *Clip, loop LoopMode, clamp bool) *Action {
	return &Action{
		ID:                uuid.New(),
		Clip:              c,
		Loop:              loop,
		ClampWhenFinished: clamp,
	}
}

// Play starts the action at full weight with no fade.
func (a *Action) Play() {
	a.time = 0
	a.playing = true
	a.finished = false
	a.weight = 1
	a.fade = nil
	a.fadingOut = false
}

// FadeIn starts the action, ramping weight 0→1 over d seconds.
func (a *Action) FadeIn(d float32) {
	a.time = 0
	a.playing = true
	a.finished = false
	a.fadingOut = false
	if d <= 0 {
		a.weight = 1
		a.fade = nil
		return
	}
	a.weight = 0
	a.fade = gween.New(0, 1, d, ease.Linear)
}

// FadeOut ramps weight to 0 over d seconds; the mixer detaches the action
// once the ramp completes. An in-flight fade-in is simply superseded.
func (a *Action) FadeOut(d float32) {
	if !a.playing && a.weight == 0 {
		return
	}
	a.fadingOut = true
	if d <= 0 {
		a.weight = 0
		a.fade = nil
		a.playing = false
		return
	}
	a.fade = gween.New(a.weight, 0, d, ease.Linear)
}

// Stop halts the action immediately with no fade.
func (a *Action) Stop() {
	a.playing = false
	a.weight = 0
	a.fade = nil
	a.fadingOut = false
}

// Running reports whether the action still contributes to the mix.
func (a *Action) Running() bool {
	return a.playing || a.weight > 0
}

// Finished reports whether a one-shot action has reached its end.
func (a *Action) Finished() bool {
	return a.finished
}

// Weight returns the current blend weight.
func (a *Action) Weight() float32 {
	return a.weight
}

// Time returns the current clip-local time.
func (a *Action) Time() float32 {
	return a.time
}

// advance moves the action by dt and returns true the tick a one-shot
// completes.
func (a *Action) advance(dt float32) bool {
	if a.fade != nil {
		w, done := a.fade.Update(dt)
		a.weight = w
		if done {
			a.fade = nil
			if a.fadingOut {
				a.playing = false
			}
		}
	}
	if !a.playing {
		return false
	}

	a.time += dt
	switch a.Loop {
	case LoopRepeat:
		if a.Clip.Duration > 0 {
			for a.time >= a.Clip.Duration {
				a.time -= a.Clip.Duration
			}
		}
	case LoopOnce:
		if a.time >= a.Clip.Duration && !a.finished {
			a.time = a.Clip.Duration
			a.finished = true
			// Non-clamping actions are released by the mixer after the
			// final frame has been applied.
			return true
		}
		if a.finished {
			a.time = a.Clip.Duration
		}
	}
	return false
}

// release zeroes a finished non-clamping action so the mixer drops it.
func (a *Action) release() {
	if a.finished && !a.ClampWhenFinished {
		a.playing = false
		a.weight = 0
		a.fade = nil
	}
}
