package autofit

import (
	"fmt"

	"github.com/go-drift/autofit/pkg/graphics"
)

// Key returns the stable identity of descriptor d rendered by the view
// identified by id. List renderers use it to keep a generation mounted
// across re-renders.
func Key[D comparable](id string, d D) string {
	return fmt.Sprintf("%s:%v", id, d)
}

// Generations tracks the current descriptor, the one before it, and which
// descriptor was measured most recently.
//
// The previous generation stays renderable only while it is the most
// recently measured one; once the current generation reports a size the
// previous one is dropped. At most two generations are ever visible.
//
// The zero value of D is the empty descriptor and is never rendered.
type Generations[D comparable] struct {
	current D

	previous    D
	hasPrevious bool

	lastMeasured     D
	lastMeasuredSize graphics.Size
	hasLastMeasured  bool
}

// NewGenerations starts tracking with initial as the current descriptor.
func NewGenerations[D comparable](initial D) *Generations[D] {
	return &Generations[D]{current: initial}
}

// Current returns the active descriptor.
func (g *Generations[D]) Current() D {
	return g.current
}

// Previous returns the descriptor being faded out, if any.
func (g *Generations[D]) Previous() (D, bool) {
	return g.previous, g.hasPrevious
}

// LastMeasured returns the descriptor of the most recent accepted size
// report together with that size.
func (g *Generations[D]) LastMeasured() (D, graphics.Size, bool) {
	return g.lastMeasured, g.lastMeasuredSize, g.hasLastMeasured
}

// Changed makes next the current descriptor and shifts the old current to
// previous. It reports false when next is already current.
func (g *Generations[D]) Changed(next D) bool {
	if next == g.current {
		return false
	}
	var zero D
	if g.current == zero {
		g.DropPrevious()
	} else {
		g.previous = g.current
		g.hasPrevious = true
	}
	g.current = next
	return true
}

// Owns reports whether d is the current or previous descriptor.
// Reports for any other descriptor are stale.
func (g *Generations[D]) Owns(d D) bool {
	return d == g.current || (g.hasPrevious && d == g.previous)
}

// Reported records a size report. It returns false for stale descriptors,
// which leave the state untouched. A report for the current descriptor
// drops the previous generation.
func (g *Generations[D]) Reported(d D, size graphics.Size) bool {
	if !g.Owns(d) {
		return false
	}
	g.lastMeasured = d
	g.lastMeasuredSize = size
	g.hasLastMeasured = true
	if d == g.current {
		g.DropPrevious()
	}
	return true
}

// DropPrevious discards the previous generation.
func (g *Generations[D]) DropPrevious() {
	var zero D
	g.previous = zero
	g.hasPrevious = false
}

// HoldsPrevious reports whether the previous generation is still rendered.
func (g *Generations[D]) HoldsPrevious() bool {
	return g.hasPrevious && g.hasLastMeasured && g.lastMeasured == g.previous
}

// Visible returns the descriptors to render, previous first.
//
// The previous generation is included only while it is the most recently
// measured one, meaning the current generation has not reported a size yet
// and rendering it alone would show a blank frame.
func (g *Generations[D]) Visible() []D {
	var zero D
	out := make([]D, 0, 2)
	if g.HoldsPrevious() && g.previous != zero {
		out = append(out, g.previous)
	}
	if g.current != zero {
		out = append(out, g.current)
	}
	return out
}
