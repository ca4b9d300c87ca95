package clip

import (
	"log"

	"github.com/google/uuid"
	"github.com/nicoguyon/vibefighter-sub001/rig"
)

// Finished reports one completed one-shot clip.
type Finished struct {
	Clip   string
	Action uuid.UUID
}

// Mixer is the single evaluation context for one skeleton. It advances all
// active actions by elapsed time each tick, applies their blended output to
// the live bones, and reports which one-shots completed. There is exactly
// one Update per frame and no cross-frame reentrancy.
type Mixer struct {
	skeleton *rig.Skeleton
	actions  []*Action
}

// NewMixer creates a mixer bound to a skeleton.
func NewMixer(sk *rig.Skeleton) *Mixer {
	return &Mixer{skeleton: sk}
}

// Skeleton returns the bound skeleton.
func (m *Mixer) Skeleton() *rig.Skeleton {
	return m.skeleton
}

// Play binds an action to the mixer. Binding the same action twice is a
// no-op.
func (m *Mixer) Play(a *Action) {
	for _, b := range m.actions {
		if b == a {
			return
		}
	}
	m.actions = append(m.actions, a)
}

// Detach stops an action and removes it from the mixer. Used when a dynamic
// move's action is retired before its regenerated replacement is installed,
// so two evaluators never write the same bones.
func (m *Mixer) Detach(a *Action) {
	if a == nil {
		return
	}
	a.Stop()
	for i, b := range m.actions {
		if b == a {
			m.actions = append(m.actions[:i], m.actions[i+1:]...)
			return
		}
	}
}

// FadeOutAll ramps every bound action except keep down over d seconds.
func (m *Mixer) FadeOutAll(d float32, keep *Action) {
	for _, a := range m.actions {
		if a != keep {
			a.FadeOut(d)
		}
	}
}

// ActiveCount returns the number of bound actions still contributing.
func (m *Mixer) ActiveCount() int {
	n := 0
	for _, a := range m.actions {
		if a.Running() {
			n++
		}
	}
	return n
}

// Update advances all actions by dt, applies them to the skeleton in bind
// order, drops fully faded-out actions, and returns the one-shots that
// completed this tick.
func (m *Mixer) Update(dt float32) []Finished {
	var done []Finished

	for _, a := range m.actions {
		if a.advance(dt) {
			done = append(done, Finished{Clip: a.Clip.Name, Action: a.ID})
			log.Printf("mixer: clip %q finished (action %s)", a.Clip.Name, a.ID)
		}
	}

	for _, a := range m.actions {
		if !a.Running() {
			continue
		}
		a.Clip.apply(m.skeleton, a.time, a.weight)
	}

	// Release finished non-clamping actions now that their final frame is
	// on the skeleton.
	for _, a := range m.actions {
		a.release()
	}

	// Drop actions that have faded out completely.
	kept := m.actions[:0]
	for _, a := range m.actions {
		if a.Running() {
			kept = append(kept, a)
		}
	}
	m.actions = kept

	return done
}
