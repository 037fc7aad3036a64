package host

import (
	"github.com/go-drift/autofit/pkg/autofit"
	"github.com/go-drift/autofit/pkg/content"
	"github.com/go-drift/autofit/pkg/graphics"
	"github.com/go-drift/autofit/pkg/layout"
)

// Binding connects a view to the renderer that draws its generations.
type Binding[D comparable] struct {
	view        *autofit.View[D]
	list        *List[D]
	unsubscribe func()
}

// Mount creates a view on h's scheduler showing initial and binds it to r.
// Content is laid out unbounded so it reports its natural size.
func Mount[D comparable](h *Host, initial D, opts autofit.Options[D], r content.Renderer[D]) (*Binding[D], error) {
	view, err := autofit.New(initial, opts, h.Scheduler())
	if err != nil {
		return nil, err
	}
	b := &Binding[D]{
		view: view,
		list: NewList(r, layout.Unbounded()),
	}
	b.unsubscribe = view.AddListener(b.sync)
	b.sync()
	return b, nil
}

func (b *Binding[D]) sync() {
	b.list.Update(b.view.Render().Generations, b.view.OnContentMeasured)
}

// Layout reports the container's box to the view.
func (b *Binding[D]) Layout(container graphics.Size) {
	b.view.OnContainerMeasured(container)
}

// SetDescriptor switches the view to d.
func (b *Binding[D]) SetDescriptor(d D) {
	b.view.SetDescriptor(d)
}

// Frame returns the view's current frame.
func (b *Binding[D]) Frame() autofit.Frame[D] {
	return b.view.Render()
}

// View returns the bound view.
func (b *Binding[D]) View() *autofit.View[D] {
	return b.view
}

// Mounted returns the keys currently mounted, in render order.
func (b *Binding[D]) Mounted() []string {
	return b.list.Keys()
}

// Dispose unmounts all generations and disposes the view.
func (b *Binding[D]) Dispose() {
	b.unsubscribe()
	b.list.Dispose()
	b.view.Dispose()
}
