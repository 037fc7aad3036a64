package content_test

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/autofit/pkg/content"
	"github.com/go-drift/autofit/pkg/errors"
	"github.com/go-drift/autofit/pkg/graphics"
	"github.com/go-drift/autofit/pkg/layout"
)

type queue struct {
	fns []func()
}

func (q *queue) Dispatch(fn func()) {
	q.fns = append(q.fns, fn)
}

func (q *queue) frame() {
	fns := q.fns
	q.fns = nil
	for _, fn := range fns {
		fn()
	}
}

func TestTextRenderer_Measure(t *testing.T) {
	r, err := content.NewTextRenderer(&queue{}, content.TextStyle{Size: 20})
	if err != nil {
		t.Fatalf("NewTextRenderer: %v", err)
	}
	defer r.Close()

	one := r.Measure("x^2 + y^2")
	if one.Width <= 0 || one.Height <= 0 {
		t.Fatalf("Measure = %v, want positive size", one)
	}
	longer := r.Measure("x^2 + y^2 + z^2")
	if longer.Width <= one.Width {
		t.Errorf("longer text width %v <= %v", longer.Width, one.Width)
	}
	if longer.Height != one.Height {
		t.Errorf("single-line heights differ: %v vs %v", longer.Height, one.Height)
	}

	two := r.Measure("x^2 + y^2\na")
	if two.Width != one.Width {
		t.Errorf("two-line width = %v, want widest line %v", two.Width, one.Width)
	}
	if two.Height != 2*one.Height {
		t.Errorf("two-line height = %v, want %v", two.Height, 2*one.Height)
	}

	if got := r.Measure(""); !got.IsEmpty() {
		t.Errorf("Measure(\"\") = %v, want empty", got)
	}
}

func TestTextRenderer_FontSizeScalesWidth(t *testing.T) {
	small, err := content.NewTextRenderer(&queue{}, content.TextStyle{Size: 10})
	if err != nil {
		t.Fatal(err)
	}
	large, err := content.NewTextRenderer(&queue{}, content.TextStyle{Size: 40})
	if err != nil {
		t.Fatal(err)
	}
	s, l := small.Measure("e=mc^2"), large.Measure("e=mc^2")
	if l.Width < 3*s.Width {
		t.Errorf("width at 40pt = %v, want about 4x %v", l.Width, s.Width)
	}
}

func TestTextRenderer_InvalidFont(t *testing.T) {
	_, err := content.NewTextRenderer(&queue{}, content.TextStyle{Font: []byte("not a font")})
	if err == nil {
		t.Fatal("expected error for invalid font data")
	}
	var ae *errors.AutofitError
	if !stderrors.As(err, &ae) || ae.Kind != errors.KindRender {
		t.Errorf("error = %v, want a render AutofitError", err)
	}
}

func TestTextRenderer_ReportsAsynchronouslyOnce(t *testing.T) {
	q := &queue{}
	r, err := content.NewTextRenderer(q, content.TextStyle{})
	if err != nil {
		t.Fatal(err)
	}
	r.Frames = 2

	var reports []graphics.Size
	r.Mount("abc", layout.Unbounded(), func(s graphics.Size) { reports = append(reports, s) })
	if len(reports) != 0 {
		t.Fatal("Mount must not report synchronously")
	}
	q.frame()
	if len(reports) != 0 {
		t.Fatal("reported before latency elapsed")
	}
	q.frame()
	q.frame()
	q.frame()
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
	if want := r.Measure("abc"); reports[0] != want {
		t.Errorf("report = %v, want %v", reports[0], want)
	}
}

func TestTextRenderer_NoReportAfterUnmount(t *testing.T) {
	q := &queue{}
	r, err := content.NewTextRenderer(q, content.TextStyle{})
	if err != nil {
		t.Fatal(err)
	}
	called := false
	m := r.Mount("abc", layout.Unbounded(), func(graphics.Size) { called = true })
	m.Unmount()
	q.frame()
	if called {
		t.Error("unmounted content reported a size")
	}
}

func TestFixedRenderer(t *testing.T) {
	q := &queue{}
	r := &content.FixedRenderer[string]{
		Dispatcher: q,
		Sizes: map[string]graphics.Size{
			"a": {Width: 100, Height: 50},
			"b": {Width: 400, Height: 100},
		},
		Frames: map[string]int{"a": 3},
	}

	var order []string
	ma := r.Mount("a", layout.Unbounded(), func(graphics.Size) { order = append(order, "a") })
	r.Mount("b", layout.Unbounded(), func(s graphics.Size) {
		order = append(order, "b")
		if s.Width != 400 || s.Height != 100 {
			t.Errorf("b reported %v", s)
		}
	})
	if r.Active("a") != 1 || r.Active("b") != 1 {
		t.Fatalf("Active = %d/%d, want 1/1", r.Active("a"), r.Active("b"))
	}

	for range 3 {
		q.frame()
	}
	if len(order) != 2 || order[0] != "b" || order[1] != "a" {
		t.Errorf("report order = %v, want [b a]", order)
	}

	ma.Unmount()
	ma.Unmount()
	if r.Active("a") != 0 {
		t.Errorf("Active(a) = %d after unmount", r.Active("a"))
	}
	if r.MountCount() != 2 {
		t.Errorf("MountCount = %d, want 2", r.MountCount())
	}
}

func TestFixedRenderer_Constrained(t *testing.T) {
	q := &queue{}
	r := &content.FixedRenderer[string]{
		Dispatcher: q,
		Sizes:      map[string]graphics.Size{"a": {Width: 100, Height: 50}},
	}
	var got graphics.Size
	r.Mount("a", layout.Loose(graphics.Size{Width: 60, Height: 60}), func(s graphics.Size) { got = s })
	q.frame()
	if got.Width != 60 || got.Height != 50 {
		t.Errorf("constrained size = %v, want 60x50", got)
	}
}
