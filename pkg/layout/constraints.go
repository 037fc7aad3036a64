// Package layout provides box constraints and the fit-to-container scale
// computation used by the autofit controller.
package layout

import (
	"math"

	"github.com/go-drift/autofit/pkg/graphics"
)

// Constraints bound the size a box may take during layout.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that force exactly the given size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints that allow any size up to the given size.
func Loose(size graphics.Size) Constraints {
	return Constraints{
		MaxWidth:  size.Width,
		MaxHeight: size.Height,
	}
}

// Unbounded returns constraints with no upper bound on either axis.
// Content laid out under these constraints reports its natural size.
func Unbounded() Constraints {
	return Constraints{
		MaxWidth:  math.MaxFloat64,
		MaxHeight: math.MaxFloat64,
	}
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool {
	return c.MaxWidth < math.MaxFloat64
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return c.MaxHeight < math.MaxFloat64
}

// IsTight reports whether the constraints allow exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth >= c.MaxWidth && c.MinHeight >= c.MaxHeight
}

// Constrain clamps size into the constraints.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  min(max(size.Width, c.MinWidth), c.MaxWidth),
		Height: min(max(size.Height, c.MinHeight), c.MaxHeight),
	}
}
