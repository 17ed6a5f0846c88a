package core

import (
	"testing"
	"time"
)

func TestTimerFiresAfterDelay(t *testing.T) {
	timer := NewTimer(70 * time.Millisecond)
	base := time.Unix(0, 0)

	if timer.Fire(base) {
		t.Fatal("stopped timer must not fire")
	}
	timer.Start()
	if timer.Fire(base) {
		t.Fatal("timer fired on the arming poll")
	}
	if timer.Fire(base.Add(50 * time.Millisecond)) {
		t.Fatal("timer fired before its delay elapsed")
	}
	if !timer.Fire(base.Add(70 * time.Millisecond)) {
		t.Fatal("timer did not fire once its delay elapsed")
	}
	if timer.Fire(base.Add(80 * time.Millisecond)) {
		t.Fatal("timer fired twice within one delay")
	}
	if !timer.Fire(base.Add(140 * time.Millisecond)) {
		t.Fatal("timer did not fire on the second interval")
	}
}

func TestTimerDropsBacklog(t *testing.T) {
	timer := NewTimer(30 * time.Millisecond)
	base := time.Unix(0, 0)
	timer.Start()
	timer.Fire(base)

	if !timer.Fire(base.Add(time.Second)) {
		t.Fatal("timer did not fire after a long stall")
	}
	if timer.Fire(base.Add(time.Second + time.Millisecond)) {
		t.Fatal("timer replayed the stalled backlog")
	}
}

func TestTimerStopAndRestart(t *testing.T) {
	timer := NewTimer(30 * time.Millisecond)
	base := time.Unix(0, 0)
	timer.Start()
	timer.Fire(base)
	timer.Fire(base.Add(20 * time.Millisecond))

	timer.Stop()
	if timer.Running() {
		t.Fatal("timer still running after Stop")
	}
	if timer.Fire(base.Add(40 * time.Millisecond)) {
		t.Fatal("stopped timer fired")
	}

	timer.Start()
	timer.Fire(base.Add(100 * time.Millisecond))
	if timer.Fire(base.Add(110 * time.Millisecond)) {
		t.Fatal("restart kept progress from before Stop")
	}
	if !timer.Fire(base.Add(130 * time.Millisecond)) {
		t.Fatal("restarted timer did not fire after a full delay")
	}
}

func TestTimerSetDelay(t *testing.T) {
	timer := NewTimer(0)
	if timer.Delay() <= 0 {
		t.Fatalf("non-positive delay not normalised: %v", timer.Delay())
	}
	timer.SetDelay(40 * time.Millisecond)
	if got := timer.Delay(); got != 40*time.Millisecond {
		t.Fatalf("Delay() = %v, want 40ms", got)
	}
}
