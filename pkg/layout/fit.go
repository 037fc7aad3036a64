package layout

import "github.com/go-drift/autofit/pkg/graphics"

// FitScale returns the largest factor no greater than 1 that scales content
// to fit inside container on both axes.
//
// A nil container or content means the layout has not been measured yet, and
// content with a zero dimension is not yet fittable. Both cases return 0.
// Content is never enlarged past its natural size.
func FitScale(container, content *graphics.Size) float64 {
	if container == nil || content == nil {
		return 0
	}
	if content.Width <= 0 || content.Height <= 0 {
		return 0
	}
	return min(container.Width/content.Width, container.Height/content.Height, 1)
}
