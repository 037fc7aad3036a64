// Package animation provides the animation primitives used by the autofit
// controller: a clock-driven [Scheduler], spring physics, easing curves, and
// bounded animatable scalars.
//
// # Core Components
//
//   - [Scheduler]: Owns a set of [Ticker]s and advances them once per frame
//     via [Scheduler.Tick]. Each host owns its own scheduler, so animation
//     state is replayable in tests without a rendering engine.
//
//   - [Value]: A single animatable scalar clamped to [LowerBound, UpperBound].
//     Transitions are driven by a [SpringSimulation] by default, or by a timed
//     easing curve when Duration is set.
//
//   - [SpringSimulation]: Explicit spring state (position, velocity, target,
//     elapsed) advanced with Step.
//
//   - Curves: Easing functions such as [EaseIn], [EaseOut], [EaseInOut].
//
// # Basic Usage
//
//	sched := animation.NewScheduler(animation.SystemClock())
//	opacity := animation.NewValue(sched, 0)
//	opacity.AddListener(func() { redraw() })
//	opacity.AnimateTo(1)
//
//	// Once per frame:
//	sched.Tick()
package animation

import (
	"sync"
	"time"
)

// Clock provides time for animations. Tests inject a fake clock to control
// animation timing deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// TickerProvider creates tickers.
type TickerProvider interface {
	CreateTicker(callback func(elapsed time.Duration)) *Ticker
}

// Scheduler advances the tickers it created, once per frame.
//
// Tickers are stepped in the order they were started so that replays are
// deterministic. A scheduler is driven from the single host goroutine that
// also starts and stops its tickers.
type Scheduler struct {
	clock Clock

	mu     sync.Mutex
	active []*Ticker
}

// NewScheduler creates a scheduler reading time from clock.
// A nil clock uses SystemClock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	return &Scheduler{clock: clock}
}

// Now returns the current time from the scheduler's clock.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// CreateTicker returns an inactive ticker bound to this scheduler.
func (s *Scheduler) CreateTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{scheduler: s, callback: callback}
}

// Tick advances all active tickers.
// This should be called once per frame by the host loop.
func (s *Scheduler) Tick() {
	s.mu.Lock()
	if len(s.active) == 0 {
		s.mu.Unlock()
		return
	}
	// Copy so callbacks may start or stop tickers.
	tickers := make([]*Ticker, len(s.active))
	copy(tickers, s.active)
	s.mu.Unlock()

	now := s.clock.Now()
	for _, t := range tickers {
		if t.IsActive() && t.callback != nil {
			t.callback(now.Sub(t.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func (s *Scheduler) HasActiveTickers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active) > 0
}

func (s *Scheduler) add(t *Ticker) {
	s.mu.Lock()
	s.active = append(s.active, t)
	s.mu.Unlock()
}

func (s *Scheduler) remove(t *Ticker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, other := range s.active {
		if other == t {
			s.active = append(s.active[:i], s.active[i+1:]...)
			return
		}
	}
}

// Ticker calls a callback on each scheduler frame while active.
//
// Ticker is the low-level timing primitive used by [Value].
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	isActive  bool
	start     time.Time
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.scheduler.Now()
	t.scheduler.add(t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.scheduler.remove(t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.scheduler.Now().Sub(t.start)
}
