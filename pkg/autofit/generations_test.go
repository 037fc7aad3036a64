package autofit_test

import (
	"slices"
	"testing"

	"github.com/go-drift/autofit/pkg/autofit"
	"github.com/go-drift/autofit/pkg/graphics"
)

func TestGenerations_PreviousHeldUntilCurrentMeasured(t *testing.T) {
	g := autofit.NewGenerations("d1")
	g.Reported("d1", graphics.Size{Width: 10, Height: 10})

	if !g.Changed("d2") {
		t.Fatal("Changed should report a new descriptor")
	}
	if got := g.Visible(); !slices.Equal(got, []string{"d1", "d2"}) {
		t.Fatalf("Visible() = %v, want [d1 d2]", got)
	}

	// A late report from the previous generation keeps it on screen.
	g.Reported("d1", graphics.Size{Width: 10, Height: 10})
	if got := g.Visible(); !slices.Equal(got, []string{"d1", "d2"}) {
		t.Fatalf("Visible() = %v, want [d1 d2]", got)
	}

	g.Reported("d2", graphics.Size{Width: 20, Height: 20})
	if got := g.Visible(); !slices.Equal(got, []string{"d2"}) {
		t.Fatalf("Visible() = %v, want [d2]", got)
	}
	if _, ok := g.Previous(); ok {
		t.Error("previous should be dropped once current is measured")
	}

	// d1 is gone for good: a report for it is stale.
	if g.Reported("d1", graphics.Size{Width: 10, Height: 10}) {
		t.Error("report for a discarded generation should be rejected")
	}
	if got := g.Visible(); !slices.Equal(got, []string{"d2"}) {
		t.Fatalf("Visible() = %v, want [d2]", got)
	}
}

func TestGenerations_UnmeasuredPreviousIsNotRendered(t *testing.T) {
	g := autofit.NewGenerations("a")
	g.Changed("b")
	if got := g.Visible(); !slices.Equal(got, []string{"b"}) {
		t.Fatalf("Visible() = %v, want [b]", got)
	}
	if prev, ok := g.Previous(); !ok || prev != "a" {
		t.Errorf("Previous() = %q, %v; want a, true", prev, ok)
	}
}

func TestGenerations_SameDescriptorIsNoop(t *testing.T) {
	g := autofit.NewGenerations("a")
	if g.Changed("a") {
		t.Error("Changed should ignore the current descriptor")
	}
	if _, ok := g.Previous(); ok {
		t.Error("no previous generation expected")
	}
}

func TestGenerations_EmptyDescriptorNeverRendered(t *testing.T) {
	g := autofit.NewGenerations("")
	if got := g.Visible(); len(got) != 0 {
		t.Fatalf("Visible() = %v, want empty", got)
	}
	g.Changed("a")
	if _, ok := g.Previous(); ok {
		t.Error("empty descriptor should not become a previous generation")
	}
	if got := g.Visible(); !slices.Equal(got, []string{"a"}) {
		t.Fatalf("Visible() = %v, want [a]", got)
	}
}

func TestGenerations_AtMostTwo(t *testing.T) {
	g := autofit.NewGenerations("a")
	g.Reported("a", graphics.Size{Width: 1, Height: 1})
	for _, d := range []string{"b", "c", "d", "e"} {
		g.Changed(d)
		if n := len(g.Visible()); n > 2 {
			t.Fatalf("after %s Visible() has %d generations", d, n)
		}
	}
}

func TestKey(t *testing.T) {
	if got := autofit.Key("view1", "x^2"); got != "view1:x^2" {
		t.Errorf("Key = %q, want view1:x^2", got)
	}
	if autofit.Key("a", 1) == autofit.Key("b", 1) {
		t.Error("keys from different views must differ")
	}
}
