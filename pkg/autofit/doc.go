// Package autofit renders externally-sized content inside a fixed-size
// container, shrinking it to fit without ever enlarging it past its natural
// size.
//
// A [View] negotiates two asynchronous measurements: the container reports its
// own box, and the content renderer reports the natural size of a descriptor
// once laid out. Either may arrive first. From both the view derives a fit
// scale, drives a [Director] that animates opacity and scale, and tells the
// host which content generations to keep mounted.
//
// # Render stability
//
// When the descriptor changes, the new generation cannot be shown until it has
// been measured. Rendering only the new one would produce a blank frame, so
// the previously measured generation stays in the render set until the new
// one reports its size:
//
//	view.SetDescriptor("b")
//	view.Render().Generations // [a, b] while "b" is measured
//	view.OnContentMeasured("b", size)
//	view.Render().Generations // [b]
//
// # Hiding oversized content
//
// When the fit scale shrinks, the director snaps opacity and scale to zero
// before animating back in, so oversized content is never visibly shrunk at
// full opacity.
//
// All methods must be called from the host's event loop. See the host package
// for a runtime that serializes measurement callbacks.
package autofit
