package animation

import (
	"fmt"
	"time"
)

// AnimationStatus represents the current state of a [Value].
//
// The status follows this state machine:
//
//	              AnimateTo(higher)
//	Dismissed ─────────────────────► Forward ──► Completed
//	    ▲                                            │
//	    │            AnimateTo(lower)                │
//	    └─────────────── Reverse ◄───────────────────┘
//
// While moving, status is AnimationForward or AnimationReverse. At rest, the
// status is AnimationDismissed at the lower bound and AnimationCompleted
// anywhere above it.
type AnimationStatus int

const (
	// AnimationDismissed means the value is at rest at the lower bound.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the value is moving toward a higher target.
	AnimationForward
	// AnimationReverse means the value is moving toward a lower target.
	AnimationReverse
	// AnimationCompleted means the value is at rest above the lower bound.
	AnimationCompleted
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// Value is a single animatable scalar clamped to [LowerBound, UpperBound].
//
// AnimateTo starts a transition toward a target, and Snap jumps to a value
// with no transition. Either call supersedes whatever transition is in
// flight; there is nothing to cancel. By default transitions follow Spring.
// Setting Duration to a positive value switches to a timed Curve instead.
//
// Always call Dispose when done to stop the ticker and drop listeners.
type Value struct {
	// LowerBound is the minimum value (default 0.0).
	LowerBound float64
	// UpperBound is the maximum value (default 1.0).
	UpperBound float64
	// Spring drives transitions when Duration is zero.
	Spring SpringDescription
	// Duration selects a timed transition when positive.
	Duration time.Duration
	// Curve eases timed transitions (optional).
	Curve func(float64) float64

	provider        TickerProvider
	value           float64
	target          float64
	velocity        float64
	status          AnimationStatus
	ticker          *Ticker
	spring          *SpringSimulation
	tween           *Tween[float64]
	lastElapsed     time.Duration
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextListenerID  int
}

// NewValue creates a value at rest at initial, clamped to [0, 1].
func NewValue(provider TickerProvider, initial float64) *Value {
	v := &Value{
		LowerBound:      0,
		UpperBound:      1,
		Spring:          DefaultSpring(),
		Curve:           LinearCurve,
		provider:        provider,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
	v.value = v.clamp(initial)
	v.target = v.value
	v.status = v.restingStatus()
	return v
}

// Get returns the current value.
func (v *Value) Get() float64 {
	return v.value
}

// Target returns the value the current transition is heading to, or the
// resting value when idle.
func (v *Value) Target() float64 {
	return v.target
}

// Velocity returns the spring velocity in units per second.
func (v *Value) Velocity() float64 {
	return v.velocity
}

// AnimateTo starts a transition toward target.
// Repeating the current target is a no-op and does not restart motion.
func (v *Value) AnimateTo(target float64) {
	target = v.clamp(target)
	if v.IsAnimating() && target == v.target {
		return
	}
	if !v.IsAnimating() && target == v.value {
		v.target = target
		return
	}

	v.stopTicker()
	v.target = target
	v.lastElapsed = 0
	if v.Duration > 0 {
		v.spring = nil
		v.tween = TweenFloat64(v.value, target)
	} else {
		v.tween = nil
		v.spring = NewSpringSimulation(v.Spring, v.value, v.velocity, target)
	}
	if target > v.value {
		v.setStatus(AnimationForward)
	} else {
		v.setStatus(AnimationReverse)
	}

	v.ticker = v.provider.CreateTicker(v.tick)
	v.ticker.Start()
}

// Snap immediately sets the value with no transition.
func (v *Value) Snap(value float64) {
	v.stopTicker()
	v.spring = nil
	v.tween = nil
	v.velocity = 0
	v.value = v.clamp(value)
	v.target = v.value
	v.setStatus(v.restingStatus())
	v.notifyListeners()
}

// Stop halts any transition at the current value.
func (v *Value) Stop() {
	if !v.IsAnimating() {
		return
	}
	v.target = v.value
	v.finish()
}

func (v *Value) tick(elapsed time.Duration) {
	if v.tween != nil {
		progress := 1.0
		if v.Duration > 0 {
			progress = min(float64(elapsed)/float64(v.Duration), 1)
		}
		eased := progress
		if v.Curve != nil {
			eased = v.Curve(progress)
		}
		v.value = v.clamp(v.tween.Evaluate(eased))
		if progress >= 1 {
			v.value = v.target
		}
		v.notifyListeners()
		if progress >= 1 {
			v.finish()
		}
		return
	}

	if v.spring == nil {
		v.finish()
		return
	}
	dt := elapsed - v.lastElapsed
	v.lastElapsed = elapsed
	done := v.spring.Step(dt.Seconds())
	v.velocity = v.spring.Velocity()
	v.value = v.clamp(v.spring.Position())
	v.notifyListeners()
	if done {
		v.finish()
	}
}

func (v *Value) finish() {
	v.stopTicker()
	v.spring = nil
	v.tween = nil
	v.velocity = 0
	v.setStatus(v.restingStatus())
}

func (v *Value) stopTicker() {
	if v.ticker != nil {
		v.ticker.Stop()
		v.ticker = nil
	}
}

func (v *Value) restingStatus() AnimationStatus {
	if v.value <= v.LowerBound {
		return AnimationDismissed
	}
	return AnimationCompleted
}

func (v *Value) clamp(x float64) float64 {
	return clamp(x, v.LowerBound, v.UpperBound)
}

// Status returns the current animation status.
func (v *Value) Status() AnimationStatus {
	return v.status
}

// IsAnimating returns true if a transition is in flight.
func (v *Value) IsAnimating() bool {
	return v.status == AnimationForward || v.status == AnimationReverse
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (v *Value) AddListener(fn func()) func() {
	id := v.nextListenerID
	v.nextListenerID++
	v.listeners[id] = fn
	return func() {
		delete(v.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (v *Value) AddStatusListener(fn func(AnimationStatus)) func() {
	id := v.nextListenerID
	v.nextListenerID++
	v.statusListeners[id] = fn
	return func() {
		delete(v.statusListeners, id)
	}
}

func (v *Value) setStatus(status AnimationStatus) {
	if v.status == status {
		return
	}
	v.status = status
	for _, listener := range v.statusListeners {
		listener(status)
	}
}

func (v *Value) notifyListeners() {
	for _, listener := range v.listeners {
		listener()
	}
}

// Dispose stops any transition and releases listeners.
func (v *Value) Dispose() {
	v.stopTicker()
	v.listeners = nil
	v.statusListeners = nil
}
