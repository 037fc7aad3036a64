package autofit

import (
	"slices"
	"time"

	"github.com/go-drift/autofit/pkg/animation"
	"github.com/go-drift/autofit/pkg/errors"
	"github.com/go-drift/autofit/pkg/graphics"
	"github.com/go-drift/autofit/pkg/layout"
)

// View is the dimensional negotiation controller.
//
// It owns the container and content layouts, recomputes the fit scale on
// every relevant measurement, feeds the result to its Director, and decides
// which generations the host must keep rendered.
type View[D comparable] struct {
	id        string
	opts      Options[D]
	scheduler *animation.Scheduler
	gens      *Generations[D]
	director  *Director

	container *graphics.Size
	content   *graphics.Size
	fit       float64
	completed bool

	staleTicker *animation.Ticker

	listeners map[int]func()
	nextID    int
}

// New creates a view showing initial. Invalid options are returned as an
// *errors.AutofitError wrapping an *errors.ConfigError.
func New[D comparable](initial D, opts Options[D], scheduler *animation.Scheduler) (*View[D], error) {
	if err := opts.Validate(); err != nil {
		return nil, &errors.AutofitError{Op: "autofit.New", Kind: errors.KindConfig, Err: err}
	}
	opts = opts.withDefaults()
	if scheduler == nil {
		scheduler = animation.NewScheduler(nil)
	}
	v := &View[D]{
		id:        opts.ID,
		opts:      opts,
		scheduler: scheduler,
		gens:      NewGenerations(initial),
		listeners: make(map[int]func()),
	}
	v.director = NewDirector(scheduler, opts.InitialOpacity, opts.InitialScale, Motion{
		Spring:   opts.Spring,
		Duration: opts.TransitionDuration,
		Curve:    opts.Curve,
	})
	return v, nil
}

// ID returns the identifier used in generation keys.
func (v *View[D]) ID() string {
	return v.id
}

// Descriptor returns the current descriptor.
func (v *View[D]) Descriptor() D {
	return v.gens.Current()
}

// Director returns the view's animation director.
func (v *View[D]) Director() *Director {
	return v.director
}

// Fit returns the current fit scale, 0 until both layouts are known.
func (v *View[D]) Fit() float64 {
	return v.fit
}

// Visible returns the descriptors the host must keep rendered.
func (v *View[D]) Visible() []D {
	return v.gens.Visible()
}

// OnContainerMeasured records the container's box and refits.
func (v *View[D]) OnContainerMeasured(size graphics.Size) {
	if v.opts.OnContainerLayout != nil {
		v.opts.OnContainerLayout(size)
	}
	if v.container != nil && *v.container == size {
		return
	}
	v.container = &size
	v.refit()
}

// OnContentMeasured records the natural size reported for descriptor d.
//
// Reports for descriptors that are neither current nor previous are stale and
// ignored. A zero-sized report for the current descriptor leaves the content
// unmeasured and keeps the previous generation on screen.
func (v *View[D]) OnContentMeasured(d D, size graphics.Size) {
	if !v.gens.Owns(d) {
		prev, _ := v.gens.Previous()
		errors.Report(&errors.AutofitError{
			Op:   "autofit.OnContentMeasured",
			Kind: errors.KindMeasurement,
			Err:  &errors.StaleMeasurementError{Descriptor: d, Current: v.gens.Current(), Previous: prev},
		})
		return
	}
	if size.IsEmpty() {
		errors.Report(&errors.AutofitError{
			Op:   "autofit.OnContentMeasured",
			Kind: errors.KindMeasurement,
			Err:  &errors.DegenerateContentError{Descriptor: d, Width: size.Width, Height: size.Height},
		})
		if d == v.gens.Current() && v.content != nil {
			v.content = nil
			v.refit()
		}
		return
	}

	v.gens.Reported(d, size)
	if d != v.gens.Current() {
		v.startStaleTimer()
		v.notify()
		return
	}
	v.stopStaleTimer()
	v.content = &size
	v.refit()
}

// SetDescriptor switches to a new descriptor. The content layout is cleared
// until the new descriptor reports a size, while the previously measured
// generation stays rendered.
func (v *View[D]) SetDescriptor(d D) {
	wasRendered := slices.Contains(v.gens.Visible(), d)
	if !v.gens.Changed(d) {
		return
	}
	v.content = nil
	v.fit = 0
	v.completed = false
	v.director.Apply(0, false)

	// A generation that stayed mounted will not report again; reuse its size.
	if last, size, ok := v.gens.LastMeasured(); ok && wasRendered && last == d {
		v.OnContentMeasured(d, size)
		return
	}

	v.startStaleTimer()
	v.notify()
}

func (v *View[D]) refit() {
	v.fit = layout.FitScale(v.container, v.content)
	ready := v.container != nil && v.content != nil
	v.director.Apply(v.fit, ready)
	v.notify()
	if ready && !v.completed {
		v.completed = true
		if v.opts.OnLayoutCompleted != nil {
			v.opts.OnLayoutCompleted(v.gens.Current())
		}
	}
}

func (v *View[D]) startStaleTimer() {
	v.stopStaleTimer()
	if v.opts.StaleGenerationTimeout <= 0 || !v.gens.HoldsPrevious() {
		return
	}
	v.staleTicker = v.scheduler.CreateTicker(func(elapsed time.Duration) {
		if elapsed < v.opts.StaleGenerationTimeout {
			return
		}
		v.stopStaleTimer()
		v.gens.DropPrevious()
		v.notify()
	})
	v.staleTicker.Start()
}

func (v *View[D]) stopStaleTimer() {
	if v.staleTicker != nil {
		v.staleTicker.Stop()
		v.staleTicker = nil
	}
}

// AddListener registers fn for changes to the render set or layout state.
// Returns an unsubscribe function.
func (v *View[D]) AddListener(fn func()) func() {
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	return func() {
		delete(v.listeners, id)
	}
}

func (v *View[D]) notify() {
	for _, fn := range v.listeners {
		fn()
	}
}

// Dispose stops all transitions and timers.
func (v *View[D]) Dispose() {
	v.stopStaleTimer()
	v.director.Dispose()
	v.listeners = nil
}
