// Package host drives autofit views frame by frame.
//
// A [Host] owns a dispatch queue and an animation scheduler. Content
// renderers post their size reports with Dispatch from any goroutine; the
// host goroutine drains them on the next Pump, then advances animations.
// [Mount] binds a view to a renderer through a keyed [List] so each
// generation keeps its identity across frames.
package host

import (
	"sync"

	"github.com/go-drift/autofit/pkg/animation"
	"github.com/go-drift/autofit/pkg/errors"
)

// Host runs the frame loop for one or more views.
type Host struct {
	scheduler *animation.Scheduler

	mu    sync.Mutex
	queue []func()
	frame uint64
}

// New creates a host whose animations read time from clock.
// A nil clock uses animation.SystemClock.
func New(clock animation.Clock) *Host {
	return &Host{scheduler: animation.NewScheduler(clock)}
}

// Scheduler returns the host's animation scheduler.
func (h *Host) Scheduler() *animation.Scheduler {
	return h.scheduler
}

// Dispatch queues fn for the next frame. Safe for concurrent use.
func (h *Host) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	h.queue = append(h.queue, fn)
	h.mu.Unlock()
}

func (h *Host) drain() []func() {
	h.mu.Lock()
	callbacks := h.queue
	h.queue = nil
	h.mu.Unlock()
	return callbacks
}

// Pump runs one frame: callbacks queued before the call, then animation
// tickers. Callbacks dispatched while pumping run on the next frame.
func (h *Host) Pump() {
	h.frame++
	for _, fn := range h.drain() {
		h.run(fn)
	}
	h.tick()
}

func (h *Host) run(fn func()) {
	defer errors.Recover("host.Dispatch")
	fn()
}

func (h *Host) tick() {
	defer errors.Recover("host.Tick")
	h.scheduler.Tick()
}

// NeedsFrame reports whether dispatched work or animations are pending.
func (h *Host) NeedsFrame() bool {
	h.mu.Lock()
	pending := len(h.queue) > 0
	h.mu.Unlock()
	return pending || h.scheduler.HasActiveTickers()
}

// FrameCount returns how many frames have been pumped.
func (h *Host) FrameCount() uint64 {
	return h.frame
}
