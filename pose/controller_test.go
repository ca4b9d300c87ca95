package pose

import (
	"testing"

	"github.com/nicoguyon/vibefighter-sub001/assets"
	"github.com/nicoguyon/vibefighter-sub001/posecfg"
	"github.com/nicoguyon/vibefighter-sub001/rig"
	"github.com/nicoguyon/vibefighter-sub001/rigmath"
)

const eps = 1e-4

func newController(t *testing.T) (*Controller, *rig.Skeleton) {
	t.Helper()
	sk := assets.NewHumanoid()
	c, err := NewController(sk)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c, sk
}

// settle ticks the controller until the in-flight one-shot completes.
func settle(t *testing.T, c *Controller) {
	t.Helper()
	for i := 0; i < 400; i++ {
		c.Update(1.0 / 60.0)
		if !c.Busy() {
			return
		}
	}
	t.Fatalf("controller never settled (state %v)", c.State())
}

func TestStanceResetStateSequence(t *testing.T) {
	c, sk := newController(t)
	initial := rig.CaptureInitialPose(sk)

	var states []posecfg.PoseState
	c.AddStateListener(func(s posecfg.PoseState, busy bool) {
		states = append(states, s)
	})

	c.HandleCommand(posecfg.CmdStance)
	settle(t, c)
	c.HandleCommand(posecfg.CmdReset)
	settle(t, c)
	// Let the faded-out loop/hold actions drain.
	for i := 0; i < 120; i++ {
		c.Update(1.0 / 60.0)
	}

	want := []posecfg.PoseState{
		posecfg.StateTransitioning, posecfg.StateStance,
		posecfg.StateTransitioning, posecfg.StateInitial,
	}
	if len(states) != len(want) {
		t.Fatalf("state sequence = %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("state sequence = %v, want %v", states, want)
		}
	}

	for _, b := range sk.Bones() {
		if !rigmath.QuatApproxEqual(b.Local.Rotation, initial[b.Name].Rotation, eps) {
			t.Errorf("%s not back at initial pose after reset", b.Name)
		}
	}
}

func TestStanceHoldsDeclaredTargets(t *testing.T) {
	c, sk := newController(t)
	c.HandleCommand(posecfg.CmdStance)
	settle(t, c)

	// The breath loop oscillates some bones; check one it only pins.
	want := posecfg.StanceTargets[posecfg.BoneRThigh].Quat()
	got := sk.Bone(posecfg.BoneRThigh).Local.Rotation
	if !rigmath.QuatApproxEqual(got, want, eps) {
		t.Errorf("stance %s = %v, want declared target %v", posecfg.BoneRThigh, got, want)
	}
}

func TestBlockHoldsDeclaredTargets(t *testing.T) {
	c, sk := newController(t)
	c.HandleCommand(posecfg.CmdBlock)
	settle(t, c)
	if c.State() != posecfg.StateBlocking {
		t.Fatalf("state after block = %v, want blocking", c.State())
	}

	// No chained loop runs after block; the clamped clip must keep every
	// declared bone pinned at its target.
	for i := 0; i < 60; i++ {
		c.Update(1.0 / 60.0)
	}
	for bone, tgt := range posecfg.BlockTargets {
		got := sk.Bone(bone).Local.Rotation
		if !rigmath.QuatApproxEqual(got, tgt.Quat(), eps) {
			t.Errorf("block %s = %v, want declared target %v", bone, got, tgt.Quat())
		}
	}
}

func TestBusyCommandsIgnored(t *testing.T) {
	c, _ := newController(t)
	c.HandleCommand(posecfg.CmdStance)
	if !c.Busy() {
		t.Fatalf("stance did not set busy")
	}
	c.HandleCommand(posecfg.CmdDuck)
	if c.State() != posecfg.StateTransitioning {
		t.Errorf("busy command changed state to %v", c.State())
	}
	settle(t, c)
	if c.State() != posecfg.StateStance {
		t.Errorf("state after stance = %v, want stance", c.State())
	}
}

func TestDuckKickRequiresDucking(t *testing.T) {
	c, _ := newController(t)
	c.HandleCommand(posecfg.CmdDuckKick)
	if c.State() != posecfg.StateInitial || c.Busy() {
		t.Errorf("duck-kick outside ducking changed state to %v", c.State())
	}
	if c.Mixer().ActiveCount() != 0 {
		t.Errorf("rejected duck-kick installed an action")
	}
}

func TestDuckKickReturnsToDuck(t *testing.T) {
	c, sk := newController(t)
	c.HandleCommand(posecfg.CmdDuck)
	settle(t, c)
	if c.State() != posecfg.StateDucking {
		t.Fatalf("state after duck = %v", c.State())
	}

	c.HandleCommand(posecfg.CmdDuckKick)
	if c.State() != posecfg.StateKicking {
		t.Fatalf("state during kick = %v", c.State())
	}
	settle(t, c)
	if c.State() != posecfg.StateDucking {
		t.Errorf("state after kick = %v, want ducking", c.State())
	}

	// The kick never alters the torso/hip end pose.
	for _, bone := range []string{posecfg.BoneHip, posecfg.BoneSpine01, posecfg.BoneSpine02} {
		want := posecfg.DuckTargets[bone].Quat()
		got := sk.Bone(bone).Local.Rotation
		if !rigmath.QuatApproxEqual(got, want, eps) {
			t.Errorf("%s after duck-kick = %v, want duck target %v", bone, got, want)
		}
	}
}

func TestPunchUsesCapturedStancePose(t *testing.T) {
	c, sk := newController(t)
	c.HandleCommand(posecfg.CmdStance)
	settle(t, c)

	snap := c.StanceSnapshot()
	if snap == nil {
		t.Fatalf("stance finish did not capture a snapshot")
	}
	captured, _ := snap.Rotation(posecfg.BoneRUpperarm)

	// Perturb the live rig after the capture.
	sk.Bone(posecfg.BoneRUpperarm).Local.Rotation = rigmath.FromEulerDeg(0, 0, 77, rigmath.OrderXYZ)

	c.HandleCommand(posecfg.CmdPunchRight)
	a := c.slots[posecfg.ClipPunchRight]
	if a == nil {
		t.Fatalf("punch installed no action")
	}
	var start rigmath.Quat
	found := false
	for _, tr := range a.Clip.Rot {
		if tr.Bone == posecfg.BoneRUpperarm {
			start = tr.Values[0]
			found = true
		}
	}
	if !found {
		t.Fatalf("punch clip has no punching-arm track")
	}
	if !rigmath.QuatApproxEqual(start, captured, eps) {
		t.Errorf("punch start = %v, want captured snapshot %v", start, captured)
	}
}

func TestPunchOutsideStanceUsesLivePose(t *testing.T) {
	c, sk := newController(t)
	live := rigmath.FromEulerDeg(0, 0, -31, rigmath.OrderXYZ)
	sk.Bone(posecfg.BoneRUpperarm).Local.Rotation = live

	c.HandleCommand(posecfg.CmdPunchRight)
	a := c.slots[posecfg.ClipPunchRight]
	if a == nil {
		t.Fatalf("punch installed no action")
	}
	for _, tr := range a.Clip.Rot {
		if tr.Bone == posecfg.BoneRUpperarm {
			if !rigmath.QuatApproxEqual(tr.Values[0], live, eps) {
				t.Errorf("punch start = %v, want live pose %v", tr.Values[0], live)
			}
			return
		}
	}
	t.Fatalf("punch clip has no punching-arm track")
}

func TestPunchReplacesOldAction(t *testing.T) {
	c, _ := newController(t)
	c.HandleCommand(posecfg.CmdPunchRight)
	first := c.slots[posecfg.ClipPunchRight]
	settle(t, c)

	c.HandleCommand(posecfg.CmdPunchRight)
	second := c.slots[posecfg.ClipPunchRight]
	if first == second {
		t.Fatalf("dynamic move reused its retired action")
	}
	if first.Running() {
		t.Errorf("retired punch action still running")
	}
	if first.ID == second.ID {
		t.Errorf("replacement action shares the old instance id")
	}
}

func TestWalkOnlyFromStance(t *testing.T) {
	c, _ := newController(t)
	c.HandleCommand(posecfg.CmdWalk)
	if c.State() != posecfg.StateInitial {
		t.Errorf("walk from initial changed state to %v", c.State())
	}

	c.HandleCommand(posecfg.CmdStance)
	settle(t, c)
	c.HandleCommand(posecfg.CmdWalk)
	if c.State() != posecfg.StateWalking || c.Busy() {
		t.Errorf("walk from stance: state=%v busy=%v", c.State(), c.Busy())
	}

	// Walking is ambient: the next command interrupts it immediately.
	c.HandleCommand(posecfg.CmdPunchRight)
	if c.State() != posecfg.StatePunching {
		t.Errorf("punch did not interrupt walking (state %v)", c.State())
	}
	settle(t, c)
	if c.State() != posecfg.StateStance {
		t.Errorf("state after punch = %v, want stance", c.State())
	}
}

func TestFallIsTerminalUntilReset(t *testing.T) {
	c, _ := newController(t)
	c.HandleCommand(posecfg.CmdFall)
	if c.State() != posecfg.StateFalling {
		t.Fatalf("state during fall = %v", c.State())
	}
	settle(t, c)
	if c.State() != posecfg.StateFallen {
		t.Fatalf("state after fall = %v, want fallen", c.State())
	}

	c.HandleCommand(posecfg.CmdStance)
	if c.State() != posecfg.StateFallen {
		t.Errorf("fallen accepted a non-reset command")
	}

	c.HandleCommand(posecfg.CmdReset)
	settle(t, c)
	if c.State() != posecfg.StateInitial {
		t.Errorf("reset from fallen ended in %v", c.State())
	}
}

func TestResetInvalidatesStanceSnapshot(t *testing.T) {
	c, _ := newController(t)
	c.HandleCommand(posecfg.CmdStance)
	settle(t, c)
	if c.StanceSnapshot() == nil {
		t.Fatalf("no snapshot after stance")
	}
	c.HandleCommand(posecfg.CmdReset)
	settle(t, c)
	if c.StanceSnapshot() != nil {
		t.Errorf("reset left a stale stance snapshot")
	}
}

func TestHelloChainsWaveLoop(t *testing.T) {
	c, _ := newController(t)
	var finished []string
	c.AddClipListener(func(name string) { finished = append(finished, name) })

	c.HandleCommand(posecfg.CmdHello)
	settle(t, c)
	if c.State() != posecfg.StateWaving {
		t.Fatalf("state after hello = %v, want waving", c.State())
	}
	if len(finished) != 1 || finished[0] != posecfg.ClipHello {
		t.Errorf("finished clips = %v, want [hello]", finished)
	}
	if c.slots[posecfg.ClipHelloWave] == nil {
		t.Errorf("wave loop was not auto-started")
	}
	if c.Busy() {
		t.Errorf("waving loop left the controller busy")
	}
}

func TestEditableOnlyWhenIdle(t *testing.T) {
	c, _ := newController(t)
	if !c.Editable() {
		t.Fatalf("fresh controller not editable")
	}
	c.HandleCommand(posecfg.CmdStance)
	if c.Editable() {
		t.Errorf("editable while a transition is in flight")
	}
	settle(t, c)
	if c.Editable() {
		t.Errorf("editable while hold/loop actions are active")
	}
}
