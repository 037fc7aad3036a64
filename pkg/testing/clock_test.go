package testing

import (
	"testing"
	"time"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_AdvanceFrames(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.AdvanceFrames(3)
	if got := clk.Now().Sub(start); got != 3*FrameInterval {
		t.Errorf("expected %v elapsed, got %v", 3*FrameInterval, got)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestTester_Clock(t *testing.T) {
	tester := NewTesterWithT(t)
	clk := tester.Clock()

	if clk == nil {
		t.Fatal("expected non-nil clock")
	}

	start := clk.Now()
	tester.Pump(500 * time.Millisecond)
	if clk.Now().Sub(start) != 500*time.Millisecond {
		t.Error("clock advancement not reflected")
	}
	if tester.Host().Scheduler().Now() != clk.Now() {
		t.Error("host scheduler does not read the fake clock")
	}
}
