// Package graphics provides the geometry types shared by layout, animation,
// and the autofit controller.
package graphics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in logical pixels.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in logical pixels.
//
// Sizes are produced by measurement callbacks and treated as immutable
// once captured.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether either dimension is zero or negative.
// An empty size cannot be fitted into a container.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Scale returns the size multiplied by factor on both axes.
func (s Size) Scale(factor float64) Size {
	return Size{Width: s.Width * factor, Height: s.Height * factor}
}

// Equal reports whether two sizes match within floating-point tolerance.
func (s Size) Equal(other Size) bool {
	return floatEqual(s.Width, other.Width) && floatEqual(s.Height, other.Height)
}

// String formats the size as WxH.
func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// ParseSize parses the WxH form produced by Size.String.
func ParseSize(text string) (Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(text)), "x")
	if !ok {
		return Size{}, fmt.Errorf("invalid size %q: want WxH", text)
	}
	width, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return Size{}, fmt.Errorf("invalid size %q: %w", text, err)
	}
	height, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return Size{}, fmt.Errorf("invalid size %q: %w", text, err)
	}
	if width < 0 || height < 0 {
		return Size{}, fmt.Errorf("invalid size %q: negative dimension", text)
	}
	return Size{Width: width, Height: height}, nil
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Inscribe returns a rect of the given size centered on r.
// The result may extend past r when size is larger on either axis.
func (r Rect) Inscribe(size Size) Rect {
	c := r.Center()
	return RectFromLTWH(c.X-size.Width*0.5, c.Y-size.Height*0.5, size.Width, size.Height)
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
