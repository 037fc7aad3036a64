package content

import (
	"github.com/go-drift/autofit/pkg/graphics"
	"github.com/go-drift/autofit/pkg/layout"
)

// FixedRenderer reports sizes from a table. It stands in for content whose
// layout is decided elsewhere, and lets tests control report timing per
// descriptor.
type FixedRenderer[D comparable] struct {
	Dispatcher Dispatcher
	// Sizes maps descriptors to natural sizes. Missing entries report 0x0.
	Sizes map[D]graphics.Size
	// Frames overrides the report latency per descriptor.
	Frames map[D]int
	// DefaultFrames is the latency for descriptors without an override.
	DefaultFrames int

	mounts  map[D]int
	history []D
}

// Mount implements Renderer.
func (r *FixedRenderer[D]) Mount(d D, constraints layout.Constraints, onMeasured func(graphics.Size)) Mounted {
	if r.mounts == nil {
		r.mounts = make(map[D]int)
	}
	r.mounts[d]++
	r.history = append(r.history, d)

	h := &handle{onRelease: func() {
		if r.mounts[d]--; r.mounts[d] == 0 {
			delete(r.mounts, d)
		}
	}}
	frames := r.DefaultFrames
	if n, ok := r.Frames[d]; ok {
		frames = n
	}
	size := constraints.Constrain(r.Sizes[d])
	deliver(r.Dispatcher, frames, h, func() { onMeasured(size) })
	return h
}

// Active returns how many live mounts d has.
func (r *FixedRenderer[D]) Active(d D) int {
	return r.mounts[d]
}

// MountCount returns how many times Mount was called in total.
func (r *FixedRenderer[D]) MountCount() int {
	return len(r.history)
}
