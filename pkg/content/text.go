package content

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/autofit/pkg/errors"
	"github.com/go-drift/autofit/pkg/graphics"
	"github.com/go-drift/autofit/pkg/layout"
)

// DefaultFontSize is the size in points used when TextStyle.Size is zero.
const DefaultFontSize = 16

// TextStyle configures a TextRenderer.
type TextStyle struct {
	// Size is the font size in points at 72 DPI, so one point is one
	// logical pixel.
	Size float64
	// LineHeight multiplies the font's natural line height. Zero means 1.
	LineHeight float64
	// Font is raw TrueType or OpenType data. Nil uses Go Regular.
	Font []byte
}

// TextRenderer renders string descriptors as unwrapped text. Lines are
// separated by '\n'. The natural size is the widest line's advance by the
// number of lines times the line height.
type TextRenderer struct {
	dispatcher Dispatcher
	face       font.Face
	lineHeight float64

	// Frames is the number of frames between Mount and the size report.
	Frames int
}

// NewTextRenderer parses the style's font and returns a renderer that
// reports through d.
func NewTextRenderer(d Dispatcher, style TextStyle) (*TextRenderer, error) {
	data := style.Font
	if data == nil {
		data = goregular.TTF
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, &errors.AutofitError{Op: "content.NewTextRenderer", Kind: errors.KindRender, Err: fmt.Errorf("parse font: %w", err)}
	}
	size := style.Size
	if size <= 0 {
		size = DefaultFontSize
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, &errors.AutofitError{Op: "content.NewTextRenderer", Kind: errors.KindRender, Err: fmt.Errorf("create face: %w", err)}
	}
	lh := style.LineHeight
	if lh <= 0 {
		lh = 1
	}
	return &TextRenderer{
		dispatcher: d,
		face:       face,
		lineHeight: fixedToFloat(face.Metrics().Height) * lh,
		Frames:     1,
	}, nil
}

// Measure returns the natural size of text.
func (r *TextRenderer) Measure(text string) graphics.Size {
	if text == "" {
		return graphics.Size{}
	}
	lines := strings.Split(text, "\n")
	var width fixed.Int26_6
	for _, line := range lines {
		width = max(width, font.MeasureString(r.face, line))
	}
	return graphics.Size{
		Width:  fixedToFloat(width),
		Height: float64(len(lines)) * r.lineHeight,
	}
}

// Mount implements Renderer.
func (r *TextRenderer) Mount(text string, constraints layout.Constraints, onMeasured func(graphics.Size)) Mounted {
	h := &handle{}
	size := constraints.Constrain(r.Measure(text))
	deliver(r.dispatcher, r.Frames, h, func() { onMeasured(size) })
	return h
}

// Close releases the font face.
func (r *TextRenderer) Close() error {
	return r.face.Close()
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
