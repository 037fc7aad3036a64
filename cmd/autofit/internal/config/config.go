// Package config loads the optional autofit.yaml and .env files that tune
// the CLI's views and text renderer.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/autofit/pkg/animation"
	"github.com/go-drift/autofit/pkg/autofit"
	"github.com/go-drift/autofit/pkg/content"
)

// FileName is the configuration file looked up in the project directory.
const FileName = "autofit.yaml"

// Environment variables read after .env is loaded.
const (
	EnvConfig   = "AUTOFIT_CONFIG"
	EnvViewID   = "AUTOFIT_VIEW_ID"
	EnvFontSize = "AUTOFIT_FONT_SIZE"
)

// Config represents the optional autofit.yaml configuration.
type Config struct {
	View   ViewConfig   `yaml:"view"`
	Text   TextConfig   `yaml:"text"`
	Engine EngineConfig `yaml:"engine"`
}

// ViewConfig mirrors autofit.Options.
type ViewConfig struct {
	ID                 string        `yaml:"id,omitempty"`
	InitialOpacity     *float64      `yaml:"initial_opacity,omitempty"`
	InitialScale       *float64      `yaml:"initial_scale,omitempty"`
	TransitionDuration time.Duration `yaml:"transition_duration,omitempty"`
	StaleTimeout       time.Duration `yaml:"stale_timeout,omitempty"`
	Spring             SpringConfig  `yaml:"spring,omitempty"`
}

// SpringConfig describes the transition spring.
type SpringConfig struct {
	Mass      float64 `yaml:"mass,omitempty"`
	Stiffness float64 `yaml:"stiffness,omitempty"`
	Damping   float64 `yaml:"damping,omitempty"`
}

// TextConfig configures the text renderer.
type TextConfig struct {
	Size       float64 `yaml:"size,omitempty"`
	LineHeight float64 `yaml:"line_height,omitempty"`
	Font       string  `yaml:"font,omitempty"`
	Frames     int     `yaml:"frames,omitempty"`
}

// EngineConfig pins the minimum autofit version the file was written for.
type EngineConfig struct {
	Version string `yaml:"version,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root    string
	Path    string
	Options autofit.Options[string]
	Text    content.TextStyle
	Frames  int
}

// LoadOptional reads the file at path if present.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	return &cfg, nil
}

// Resolve loads dir/.env and the config file, then resolves defaults.
// The config file is AUTOFIT_CONFIG if set, otherwise dir/autofit.yaml.
// version is the running CLI version checked against engine.version.
func Resolve(dir, version string) (*Resolved, error) {
	if err := loadDotEnv(dir); err != nil {
		return nil, err
	}

	path := os.Getenv(EnvConfig)
	if path == "" {
		path = filepath.Join(dir, FileName)
	}
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}

	if err := checkEngineVersion(cfg.Engine.Version, version); err != nil {
		return nil, err
	}

	opts := autofit.DefaultOptions[string]()
	opts.ID = strings.TrimSpace(cfg.View.ID)
	if env := os.Getenv(EnvViewID); env != "" {
		opts.ID = env
	}
	if opts.ID == "" {
		opts.ID = defaultViewID(dir)
	}
	if cfg.View.InitialOpacity != nil {
		opts.InitialOpacity = *cfg.View.InitialOpacity
	}
	if cfg.View.InitialScale != nil {
		opts.InitialScale = *cfg.View.InitialScale
	}
	opts.TransitionDuration = cfg.View.TransitionDuration
	opts.StaleGenerationTimeout = cfg.View.StaleTimeout
	if s := cfg.View.Spring; s != (SpringConfig{}) {
		spring := animation.DefaultSpring()
		if s.Mass != 0 {
			spring.Mass = s.Mass
		}
		if s.Stiffness != 0 {
			spring.Stiffness = s.Stiffness
		}
		if s.Damping != 0 {
			spring.Damping = s.Damping
		}
		opts.Spring = spring
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	text := content.TextStyle{Size: cfg.Text.Size, LineHeight: cfg.Text.LineHeight}
	if env := os.Getenv(EnvFontSize); env != "" {
		size, err := strconv.ParseFloat(env, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvFontSize, env, err)
		}
		text.Size = size
	}
	if cfg.Text.Font != "" {
		fontPath := cfg.Text.Font
		if !filepath.IsAbs(fontPath) {
			fontPath = filepath.Join(filepath.Dir(path), fontPath)
		}
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
		text.Font = data
	}

	frames := cfg.Text.Frames
	if frames <= 0 {
		frames = 1
	}

	return &Resolved{
		Root:    dir,
		Path:    path,
		Options: opts,
		Text:    text,
		Frames:  frames,
	}, nil
}

func loadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	// Load never overrides variables that are already set.
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

func checkEngineVersion(required, running string) error {
	required = strings.TrimSpace(required)
	if required == "" {
		return nil
	}
	req := canonical(required)
	if !semver.IsValid(req) {
		return fmt.Errorf("engine.version %q is not a semantic version", required)
	}
	run := canonical(running)
	if !semver.IsValid(run) {
		return nil
	}
	if semver.Compare(run, req) < 0 {
		return fmt.Errorf("engine.version requires %s, running %s", req, run)
	}
	return nil
}

func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// FindProjectRoot walks up from the current directory to find go.mod.
// It returns the current directory when no module is found.
func FindProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := wd; ; {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return wd, nil
		}
		dir = parent
	}
}

// defaultViewID names views after the enclosing module, or "autofit".
func defaultViewID(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "autofit"
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "autofit"
	}
	prefix, _, ok := module.SplitPathVersion(path)
	if !ok {
		prefix = path
	}
	parts := strings.Split(prefix, "/")
	return sanitizeSegment(parts[len(parts)-1])
}

func sanitizeSegment(segment string) string {
	var out []rune
	for _, r := range strings.TrimSpace(segment) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		}
	}
	if len(out) == 0 {
		return "autofit"
	}
	return string(out)
}
