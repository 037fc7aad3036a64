package autofit

import (
	"fmt"
	"time"

	"github.com/go-drift/autofit/pkg/animation"
)

// Phase is the readiness state of a Director.
//
//	Hidden ──(both layouts known)──► Transitioning ──(settled)──► Visible
//	   ▲                                                            │
//	   └──────────────(descriptor changed)──────────────────────────┘
type Phase int

const (
	// PhaseHidden means the container or the content is not measured yet.
	PhaseHidden Phase = iota
	// PhaseTransitioning means both layouts are known and a transition is in flight.
	PhaseTransitioning
	// PhaseVisible means the transition reached its targets.
	PhaseVisible
)

func (p Phase) String() string {
	switch p {
	case PhaseHidden:
		return "hidden"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseVisible:
		return "visible"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// TransitionKind distinguishes the Director's two entry points.
type TransitionKind int

const (
	// TransitionRetarget is an animated move toward new targets.
	TransitionRetarget TransitionKind = iota
	// TransitionSnap is an immediate jump with no animation.
	TransitionSnap
)

func (k TransitionKind) String() string {
	if k == TransitionSnap {
		return "snap"
	}
	return "retarget"
}

// Transition describes one change of the Director's targets.
type Transition struct {
	Kind    TransitionKind
	Opacity float64
	Scale   float64
}

// Motion selects how the Director animates.
type Motion struct {
	Spring   animation.SpringDescription
	Duration time.Duration
	Curve    func(float64) float64
}

// Director owns the opacity and scale scalars and is the only writer of
// either. Both transitions start together and finish independently.
type Director struct {
	opacity   *animation.Value
	scale     *animation.Value
	lastScale float64
	ready     bool
	listeners map[int]func(Transition)
	nextID    int
}

// NewDirector creates a director at rest at the given values.
// The initial scale also seeds the comparison used by the snap rule.
func NewDirector(provider animation.TickerProvider, opacity, scale float64, motion Motion) *Director {
	d := &Director{
		opacity:   animation.NewValue(provider, opacity),
		scale:     animation.NewValue(provider, scale),
		lastScale: scale,
		listeners: make(map[int]func(Transition)),
	}
	for _, v := range []*animation.Value{d.opacity, d.scale} {
		v.Spring = motion.Spring
		v.Duration = motion.Duration
		if motion.Curve != nil {
			v.Curve = motion.Curve
		}
	}
	return d
}

// SetTargets animates both scalars toward the given targets.
// Repeating the current targets does nothing.
func (d *Director) SetTargets(opacity, scale float64) {
	if opacity == d.opacity.Target() && scale == d.scale.Target() {
		return
	}
	d.opacity.AnimateTo(opacity)
	d.scale.AnimateTo(scale)
	d.emit(Transition{Kind: TransitionRetarget, Opacity: opacity, Scale: scale})
}

// SnapTo sets both scalars immediately, superseding any transition.
func (d *Director) SnapTo(opacity, scale float64) {
	d.opacity.Snap(opacity)
	d.scale.Snap(scale)
	d.emit(Transition{Kind: TransitionSnap, Opacity: opacity, Scale: scale})
}

// Apply feeds a freshly computed fit scale.
//
// When ready is false the container or content is unmeasured: the director
// becomes hidden and leaves the scalars alone, so whatever is still rendered
// keeps its appearance. When ready, a fit smaller than the last one snaps
// both scalars to zero first, then both are retargeted to (1, fit).
func (d *Director) Apply(fit float64, ready bool) {
	d.ready = ready
	if !ready {
		return
	}
	if fit < d.lastScale {
		d.SnapTo(0, 0)
	}
	d.lastScale = fit
	d.SetTargets(1, fit)
}

// Phase returns the readiness state.
func (d *Director) Phase() Phase {
	if !d.ready {
		return PhaseHidden
	}
	if d.opacity.IsAnimating() || d.scale.IsAnimating() {
		return PhaseTransitioning
	}
	return PhaseVisible
}

// Values returns the current opacity and scale.
func (d *Director) Values() (opacity, scale float64) {
	return d.opacity.Get(), d.scale.Get()
}

// Targets returns the opacity and scale being animated toward.
func (d *Director) Targets() (opacity, scale float64) {
	return d.opacity.Target(), d.scale.Target()
}

// AddTransitionListener registers fn for every retarget and snap.
// Returns an unsubscribe function.
func (d *Director) AddTransitionListener(fn func(Transition)) func() {
	id := d.nextID
	d.nextID++
	d.listeners[id] = fn
	return func() {
		delete(d.listeners, id)
	}
}

// AddListener registers fn for every change of either scalar.
func (d *Director) AddListener(fn func()) func() {
	a := d.opacity.AddListener(fn)
	b := d.scale.AddListener(fn)
	return func() {
		a()
		b()
	}
}

func (d *Director) emit(t Transition) {
	for _, fn := range d.listeners {
		fn(t)
	}
}

// Dispose stops both transitions.
func (d *Director) Dispose() {
	d.opacity.Dispose()
	d.scale.Dispose()
	d.listeners = nil
}
