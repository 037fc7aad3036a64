// Package scenario replays scripted layout sequences against an autofit view
// and prints the frames they produce.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/autofit/pkg/autofit"
	"github.com/go-drift/autofit/pkg/content"
	"github.com/go-drift/autofit/pkg/graphics"
	"github.com/go-drift/autofit/pkg/host"
)

// Renderer kinds.
const (
	RendererFixed = "fixed"
	RendererText  = "text"
)

// FrameInterval is the simulated time between frames.
const FrameInterval = 16 * time.Millisecond

// Scenario is a scripted sequence of layout events.
type Scenario struct {
	// Renderer selects how descriptors are measured: "fixed" (default)
	// uses Sizes, "text" measures descriptors as text.
	Renderer string `yaml:"renderer,omitempty"`
	// Sizes maps descriptors to WxH natural sizes for the fixed renderer.
	Sizes map[string]string `yaml:"sizes,omitempty"`
	// Latency overrides the report latency in frames per descriptor.
	Latency map[string]int `yaml:"latency,omitempty"`
	Initial string         `yaml:"initial"`
	Steps   []Step         `yaml:"steps"`
}

// Step is one scripted action. Exactly one field must be set.
type Step struct {
	Container  string        `yaml:"container,omitempty"`
	Descriptor *string       `yaml:"descriptor,omitempty"`
	Pump       int           `yaml:"pump,omitempty"`
	Settle     time.Duration `yaml:"settle,omitempty"`
	Print      string        `yaml:"print,omitempty"`
}

func (s Step) action() (string, error) {
	var set []string
	if s.Container != "" {
		set = append(set, "container")
	}
	if s.Descriptor != nil {
		set = append(set, "descriptor")
	}
	if s.Pump != 0 {
		set = append(set, "pump")
	}
	if s.Settle != 0 {
		set = append(set, "settle")
	}
	if s.Print != "" {
		set = append(set, "print")
	}
	if len(set) != 1 {
		return "", fmt.Errorf("step must set exactly one action, got %v", set)
	}
	return set[0], nil
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	switch sc.Renderer {
	case "":
		sc.Renderer = RendererFixed
	case RendererFixed, RendererText:
	default:
		return nil, fmt.Errorf("unknown renderer %q", sc.Renderer)
	}
	for i, step := range sc.Steps {
		action, err := step.action()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		if step.Pump < 0 || step.Settle < 0 {
			return nil, fmt.Errorf("step %d: %s must be positive", i+1, action)
		}
		if action == "container" {
			if _, err := graphics.ParseSize(step.Container); err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
	}
	return &sc, nil
}

// ErrNotSettled is returned when a settle step times out.
var ErrNotSettled = errors.New("view did not settle")

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

// Runner executes a scenario against a view on its own host.
type Runner struct {
	Options autofit.Options[string]
	Text    content.TextStyle
	// Frames is the default report latency.
	Frames int
	Out    io.Writer
}

// Run replays sc and writes one line per print step.
func (r *Runner) Run(sc *Scenario) error {
	clk := &clock{now: time.Unix(0, 0)}
	h := host.New(clk)

	renderer, closeRenderer, err := r.renderer(sc, h)
	if err != nil {
		return err
	}
	defer closeRenderer()

	b, err := host.Mount(h, sc.Initial, r.Options, renderer)
	if err != nil {
		return err
	}
	defer b.Dispose()

	pump := func() {
		clk.now = clk.now.Add(FrameInterval)
		h.Pump()
	}

	for i, step := range sc.Steps {
		action, err := step.action()
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		switch action {
		case "container":
			size, err := graphics.ParseSize(step.Container)
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			b.Layout(size)
		case "descriptor":
			b.SetDescriptor(*step.Descriptor)
		case "pump":
			for range step.Pump {
				pump()
			}
		case "settle":
			var elapsed time.Duration
			for h.NeedsFrame() {
				if elapsed >= step.Settle {
					return fmt.Errorf("step %d: %w within %v", i+1, ErrNotSettled, step.Settle)
				}
				pump()
				elapsed += FrameInterval
			}
		case "print":
			fmt.Fprintln(r.Out, FormatFrame(step.Print, h.FrameCount(), b.Frame()))
		}
	}
	return nil
}

func (r *Runner) renderer(sc *Scenario, h *host.Host) (content.Renderer[string], func(), error) {
	if sc.Renderer == RendererText {
		tr, err := content.NewTextRenderer(h, r.Text)
		if err != nil {
			return nil, nil, err
		}
		tr.Frames = max(r.Frames, 1)
		return tr, func() { _ = tr.Close() }, nil
	}

	sizes := make(map[string]graphics.Size, len(sc.Sizes))
	for d, text := range sc.Sizes {
		size, err := graphics.ParseSize(text)
		if err != nil {
			return nil, nil, fmt.Errorf("sizes[%q]: %w", d, err)
		}
		sizes[d] = size
	}
	return &content.FixedRenderer[string]{
		Dispatcher:    h,
		Sizes:         sizes,
		Frames:        sc.Latency,
		DefaultFrames: r.Frames,
	}, func() {}, nil
}

// FormatFrame renders f as a single line.
func FormatFrame(label string, frame uint64, f autofit.Frame[string]) string {
	keys := make([]string, len(f.Generations))
	for i, g := range f.Generations {
		keys[i] = g.Key
		if g.Measurer {
			keys[i] += "*"
		}
	}
	return fmt.Sprintf("%s frame=%d phase=%s opacity=%.2f scale=%.2f fit=%.2f box=%s gens=[%s]",
		label, frame, f.Phase, f.Opacity, f.Scale, f.Fit, formatSize(f.Box), strings.Join(keys, " "))
}

func formatSize(s graphics.Size) string {
	return fmt.Sprintf("%.1fx%.1f", s.Width, s.Height)
}
