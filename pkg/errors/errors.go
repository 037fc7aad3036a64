// Package errors provides structured error handling for autofit.
//
// Only configuration errors are ever returned to callers. Measurement
// anomalies (stale reports, degenerate sizes) are soft: they are reported to
// the global [ErrorHandler] for instrumentation and otherwise absorbed.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates invalid configuration supplied at construction.
	KindConfig
	// KindMeasurement indicates an anomalous size report.
	KindMeasurement
	// KindRender indicates a failure inside a content renderer.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindMeasurement:
		return "measurement"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// AutofitError represents a structured error reported by autofit.
type AutofitError struct {
	// Op is the operation that failed (e.g., "autofit.OnContentMeasured").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *AutofitError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *AutofitError) Unwrap() error {
	return e.Err
}

// ConfigError reports an invalid configuration value.
// It is returned synchronously at construction; values are never clamped.
type ConfigError struct {
	// Field is the option name (e.g., "InitialOpacity").
	Field string
	// Value is the rejected value.
	Value any
	// Reason explains the constraint that was violated.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// StaleMeasurementError reports a size for a descriptor that is neither the
// current nor the previous generation. The callback outlived its generation.
type StaleMeasurementError struct {
	Descriptor any
	Current    any
	Previous   any
}

func (e *StaleMeasurementError) Error() string {
	return fmt.Sprintf("stale measurement for %v (current=%v, previous=%v)", e.Descriptor, e.Current, e.Previous)
}

// DegenerateContentError reports a content size with a zero dimension.
// Such content is treated as not yet fittable.
type DegenerateContentError struct {
	Descriptor    any
	Width, Height float64
}

func (e *DegenerateContentError) Error() string {
	return fmt.Sprintf("content %v reported degenerate size %gx%g", e.Descriptor, e.Width, e.Height)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "host.Pump").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by autofit.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *AutofitError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
