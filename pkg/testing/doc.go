// Package testing provides a deterministic harness for autofit views.
//
// # Quick Start
//
// Create a tester, mount a view on its host, and step frames:
//
//	func TestFits(t *testing.T) {
//	    tester := autofittest.NewTesterWithT(t)
//	    r := &content.FixedRenderer[string]{
//	        Dispatcher: tester.Host(),
//	        Sizes:      map[string]graphics.Size{"x^2": {Width: 400, Height: 100}},
//	    }
//	    b, _ := host.Mount(tester.Host(), "x^2", autofit.DefaultOptions[string](), r)
//	    b.Layout(graphics.Size{Width: 100, Height: 100})
//
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	    if b.Frame().Scale != 0.25 {
//	        t.Errorf("scale = %v", b.Frame().Scale)
//	    }
//	}
//
// # Snapshot Testing
//
// Record frames and compare them against a golden file:
//
//	snap := &autofittest.Snapshot{}
//	autofittest.RecordFrame(snap, b.Frame())
//	snap.MatchesFile(t, "testdata/shrink.snapshot.json")
//
// Update snapshots with:
//
//	AUTOFIT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// Control time for deterministic animation tests:
//
//	tester.Pump(100 * time.Millisecond)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import autofittest "github.com/go-drift/autofit/pkg/testing"
package testing
