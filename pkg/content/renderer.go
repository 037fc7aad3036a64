// Package content provides renderers that mount descriptors and report their
// natural size back to an autofit view.
//
// A renderer never reports synchronously from Mount. Every report goes
// through a [Dispatcher] and lands on a later frame, the way an external
// layout pass would. Each mount reports at most once and never after Unmount.
package content

import (
	"github.com/go-drift/autofit/pkg/graphics"
	"github.com/go-drift/autofit/pkg/layout"
)

// Dispatcher schedules a callback for the next frame on the host goroutine.
type Dispatcher interface {
	Dispatch(fn func())
}

// Renderer mounts descriptors of type D.
type Renderer[D comparable] interface {
	// Mount starts rendering d and calls onMeasured once with its natural
	// size, unless the mount is released first.
	Mount(d D, constraints layout.Constraints, onMeasured func(graphics.Size)) Mounted
}

// Mounted is a live rendering of one descriptor.
type Mounted interface {
	Unmount()
}

type handle struct {
	unmounted bool
	reported  bool
	onRelease func()
}

func (h *handle) Unmount() {
	if h.unmounted {
		return
	}
	h.unmounted = true
	if h.onRelease != nil {
		h.onRelease()
	}
}

// deliver calls fn after the given number of frames unless h is unmounted
// by then.
func deliver(d Dispatcher, frames int, h *handle, fn func()) {
	remaining := max(frames, 1)
	var step func()
	step = func() {
		if h.unmounted || h.reported {
			return
		}
		if remaining > 1 {
			remaining--
			d.Dispatch(step)
			return
		}
		h.reported = true
		fn()
	}
	d.Dispatch(step)
}
