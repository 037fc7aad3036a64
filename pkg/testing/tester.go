package testing

import (
	"errors"
	"sync"
	"testing"
	"time"

	autofiterrors "github.com/go-drift/autofit/pkg/errors"
	"github.com/go-drift/autofit/pkg/host"
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: host did not settle")

// Tester drives a host with a fake clock so views can be stepped frame by
// frame. It also records every error reported through the errors package
// while it is installed.
type Tester struct {
	host  *host.Host
	clock *FakeClock

	mu          sync.Mutex
	errs        []*autofiterrors.AutofitError
	panics      []*autofiterrors.PanicError
	prevHandler autofiterrors.ErrorHandler
}

// NewTester creates a tester with a fresh host and fake clock.
// Call Cleanup() when done, or use NewTesterWithT() instead.
func NewTester() *Tester {
	clk := NewFakeClock()
	t := &Tester{
		host:  host.New(clk),
		clock: clk,
	}
	t.prevHandler = autofiterrors.SetHandler(t)
	return t
}

// NewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the previous error handler.
func (t *Tester) Cleanup() {
	autofiterrors.SetHandler(t.prevHandler)
}

// Host returns the host driven by this tester.
func (t *Tester) Host() *host.Host {
	return t.host
}

// Clock returns the fake clock for advancing time in tests.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Dispatch queues a callback for the next frame.
func (t *Tester) Dispatch(fn func()) {
	t.host.Dispatch(fn)
}

// Pump advances the clock by d and runs a single frame.
func (t *Tester) Pump(d time.Duration) {
	t.clock.Advance(d)
	t.host.Pump()
}

// PumpFrames runs n frames, advancing the clock by FrameInterval before each.
func (t *Tester) PumpFrames(n int) {
	for range n {
		t.Pump(FrameInterval)
	}
}

// PumpAndSettle runs frames until the host is idle or the timeout is
// reached. Each frame advances the fake clock by FrameInterval.
// Returns ErrSettleTimeout if the host does not settle within timeout.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.host.Pump()
		if !t.host.NeedsFrame() {
			return nil
		}
		t.clock.Advance(FrameInterval)
		elapsed += FrameInterval
	}
	return ErrSettleTimeout
}

// HandleError records err.
func (t *Tester) HandleError(err *autofiterrors.AutofitError) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errs = append(t.errs, err)
}

// HandlePanic records err.
func (t *Tester) HandlePanic(err *autofiterrors.PanicError) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.panics = append(t.panics, err)
}

// Errors returns the errors reported so far.
func (t *Tester) Errors() []*autofiterrors.AutofitError {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*autofiterrors.AutofitError(nil), t.errs...)
}

// Panics returns the panics recovered so far.
func (t *Tester) Panics() []*autofiterrors.PanicError {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*autofiterrors.PanicError(nil), t.panics...)
}
