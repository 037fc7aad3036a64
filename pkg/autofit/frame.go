package autofit

import (
	"github.com/go-drift/autofit/pkg/graphics"
)

// Generation is one descriptor the host must render.
type Generation[D comparable] struct {
	Descriptor D
	// Key is the stable identity for list renderers.
	Key string
	// Measurer is set on the current generation while it renders alongside
	// the previous one and is still being measured.
	Measurer bool
}

// Frame is a snapshot of everything the host needs to draw the view.
type Frame[D comparable] struct {
	// Generations to render, previous first. At most two.
	Generations []Generation[D]

	// Opacity and Scale are the animated values to apply to each generation.
	Opacity float64
	Scale   float64

	// Fit is the target fit scale, 0 until both layouts are known.
	Fit float64
	// Box is the content's natural size multiplied by Fit.
	Box graphics.Size
	// Bounds is Box centered in the container.
	Bounds graphics.Rect

	Phase Phase
}

// Render projects the current state into a Frame. It does not mutate the view.
func (v *View[D]) Render() Frame[D] {
	visible := v.gens.Visible()
	gens := make([]Generation[D], len(visible))
	for i, d := range visible {
		gens[i] = Generation[D]{
			Descriptor: d,
			Key:        Key(v.id, d),
			Measurer:   len(visible) == 2 && d == v.gens.Current(),
		}
	}

	opacity, scale := v.director.Values()
	f := Frame[D]{
		Generations: gens,
		Opacity:     opacity,
		Scale:       scale,
		Fit:         v.fit,
		Phase:       v.director.Phase(),
	}
	if v.content != nil {
		f.Box = v.content.Scale(v.fit)
	}
	if v.container != nil {
		f.Bounds = graphics.RectFromLTWH(0, 0, v.container.Width, v.container.Height).Inscribe(f.Box)
	}
	return f
}
