package autofit

import (
	"math"
	"time"

	"github.com/rs/xid"

	"github.com/go-drift/autofit/pkg/animation"
	"github.com/go-drift/autofit/pkg/errors"
	"github.com/go-drift/autofit/pkg/graphics"
)

const (
	// DefaultInitialOpacity is the opacity before the first fit.
	DefaultInitialOpacity = 0.2
	// DefaultInitialScale is the render scale before the first fit.
	DefaultInitialScale = 0.0
)

// Options configures a View. Only the fields listed here are recognized.
//
// The zero value is valid and starts fully transparent at scale 0; use
// DefaultOptions for the conventional starting opacity.
type Options[D comparable] struct {
	// ID identifies the view in generation keys. Empty generates a unique ID.
	ID string

	// InitialOpacity is the opacity before the first fit, within [0, 1].
	InitialOpacity float64
	// InitialScale is the render scale before the first fit, within [0, 1].
	InitialScale float64

	// Spring drives transitions. The zero value uses animation.DefaultSpring.
	Spring animation.SpringDescription
	// TransitionDuration switches to timed transitions when positive.
	TransitionDuration time.Duration
	// Curve eases timed transitions.
	Curve func(float64) float64

	// StaleGenerationTimeout drops a previous generation still held after
	// this long. Zero keeps it until the current generation is measured.
	StaleGenerationTimeout time.Duration

	// OnLayoutCompleted fires once per descriptor when the container and the
	// descriptor's content have both been measured.
	OnLayoutCompleted func(descriptor D)
	// OnContainerLayout receives every raw container measurement.
	OnContainerLayout func(size graphics.Size)
}

// DefaultOptions returns options with the conventional initial values.
func DefaultOptions[D comparable]() Options[D] {
	return Options[D]{
		InitialOpacity: DefaultInitialOpacity,
		InitialScale:   DefaultInitialScale,
		Spring:         animation.DefaultSpring(),
	}
}

// Validate reports the first invalid field as a *errors.ConfigError.
// Out-of-range values are rejected, never clamped.
func (o Options[D]) Validate() error {
	if err := checkUnit("InitialOpacity", o.InitialOpacity); err != nil {
		return err
	}
	if err := checkUnit("InitialScale", o.InitialScale); err != nil {
		return err
	}
	if o.TransitionDuration < 0 {
		return &errors.ConfigError{Field: "TransitionDuration", Value: o.TransitionDuration, Reason: "must not be negative"}
	}
	if o.StaleGenerationTimeout < 0 {
		return &errors.ConfigError{Field: "StaleGenerationTimeout", Value: o.StaleGenerationTimeout, Reason: "must not be negative"}
	}
	if o.Spring.Stiffness < 0 || o.Spring.Damping < 0 || o.Spring.Mass < 0 {
		return &errors.ConfigError{Field: "Spring", Value: o.Spring, Reason: "mass, stiffness and damping must not be negative"}
	}
	if o.Spring != (animation.SpringDescription{}) && o.Spring.Stiffness == 0 {
		return &errors.ConfigError{Field: "Spring", Value: o.Spring, Reason: "stiffness must be positive"}
	}
	return nil
}

func checkUnit(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &errors.ConfigError{Field: field, Value: v, Reason: "must be a finite number"}
	}
	if v < 0 || v > 1 {
		return &errors.ConfigError{Field: field, Value: v, Reason: "must be within [0, 1]"}
	}
	return nil
}

func (o Options[D]) withDefaults() Options[D] {
	if o.ID == "" {
		o.ID = xid.New().String()
	}
	if o.Spring == (animation.SpringDescription{}) {
		o.Spring = animation.DefaultSpring()
	}
	return o
}
