package host

import (
	"github.com/go-drift/autofit/pkg/autofit"
	"github.com/go-drift/autofit/pkg/content"
	"github.com/go-drift/autofit/pkg/graphics"
	"github.com/go-drift/autofit/pkg/layout"
)

// List keeps one mounted rendering per generation key.
//
// Updating with a key that is already mounted keeps the existing mount, so a
// generation that moves from current to previous is not remounted and does
// not report again. Keys that disappear are unmounted.
type List[D comparable] struct {
	renderer    content.Renderer[D]
	constraints layout.Constraints
	items       map[string]*listItem[D]
	order       []string
}

type listItem[D comparable] struct {
	gen     autofit.Generation[D]
	mounted content.Mounted
}

// NewList creates an empty list mounting through r under constraints.
func NewList[D comparable](r content.Renderer[D], constraints layout.Constraints) *List[D] {
	return &List[D]{
		renderer:    r,
		constraints: constraints,
		items:       make(map[string]*listItem[D]),
	}
}

// Update reconciles the list with gens. New keys are mounted and report
// their size to onMeasured.
func (l *List[D]) Update(gens []autofit.Generation[D], onMeasured func(D, graphics.Size)) {
	keep := make(map[string]bool, len(gens))
	order := make([]string, 0, len(gens))
	for _, gen := range gens {
		keep[gen.Key] = true
		order = append(order, gen.Key)
		if item, ok := l.items[gen.Key]; ok {
			item.gen = gen
			continue
		}
		d := gen.Descriptor
		l.items[gen.Key] = &listItem[D]{
			gen: gen,
			mounted: l.renderer.Mount(d, l.constraints, func(size graphics.Size) {
				onMeasured(d, size)
			}),
		}
	}
	for key, item := range l.items {
		if !keep[key] {
			item.mounted.Unmount()
			delete(l.items, key)
		}
	}
	l.order = order
}

// Keys returns the mounted keys in render order.
func (l *List[D]) Keys() []string {
	return append([]string(nil), l.order...)
}

// Generations returns the mounted generations in render order.
func (l *List[D]) Generations() []autofit.Generation[D] {
	gens := make([]autofit.Generation[D], 0, len(l.order))
	for _, key := range l.order {
		gens = append(gens, l.items[key].gen)
	}
	return gens
}

// Len returns the number of mounted generations.
func (l *List[D]) Len() int {
	return len(l.items)
}

// Dispose unmounts everything.
func (l *List[D]) Dispose() {
	for key, item := range l.items {
		item.mounted.Unmount()
		delete(l.items, key)
	}
	l.order = nil
}
