package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/autofit/pkg/autofit"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is an ordered record of view frames.
type Snapshot struct {
	Frames []FrameRecord `json:"frames"`
}

// FrameRecord is the serialized form of one autofit.Frame.
type FrameRecord struct {
	Phase       string             `json:"phase"`
	Opacity     float64            `json:"opacity"`
	Scale       float64            `json:"scale"`
	Fit         float64            `json:"fit"`
	Box         [2]float64         `json:"box"`
	Bounds      [4]float64         `json:"bounds"`
	Generations []GenerationRecord `json:"generations,omitempty"`
}

// GenerationRecord is one rendered generation.
type GenerationRecord struct {
	Key      string `json:"key"`
	Measurer bool   `json:"measurer,omitempty"`
}

// RecordFrame appends f to s. Floats are rounded to two decimals so
// snapshots stay stable across platforms.
func RecordFrame[D comparable](s *Snapshot, f autofit.Frame[D]) {
	rec := FrameRecord{
		Phase:   f.Phase.String(),
		Opacity: round2(f.Opacity),
		Scale:   round2(f.Scale),
		Fit:     round2(f.Fit),
		Box:     [2]float64{round2(f.Box.Width), round2(f.Box.Height)},
		Bounds: [4]float64{
			round2(f.Bounds.Left), round2(f.Bounds.Top),
			round2(f.Bounds.Width()), round2(f.Bounds.Height()),
		},
	}
	for _, g := range f.Generations {
		rec.Generations = append(rec.Generations, GenerationRecord{Key: g.Key, Measurer: g.Measurer})
	}
	s.Frames = append(s.Frames, rec)
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When AUTOFIT_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("AUTOFIT_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: AUTOFIT_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: AUTOFIT_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
