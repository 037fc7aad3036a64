package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestResolve_Defaults(t *testing.T) {
	unsetEnv(t, EnvConfig, EnvViewID, EnvFontSize)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/Math-View/v2\n\ngo 1.24\n")

	r, err := Resolve(dir, "0.1.0")
	if err != nil {
		t.Fatal(err)
	}
	if r.Options.ID != "math-view" {
		t.Errorf("ID = %q, want math-view", r.Options.ID)
	}
	if r.Options.InitialOpacity != 0.2 || r.Options.InitialScale != 0 {
		t.Errorf("initial = %v/%v, want 0.2/0", r.Options.InitialOpacity, r.Options.InitialScale)
	}
	if r.Frames != 1 {
		t.Errorf("Frames = %d, want 1", r.Frames)
	}
}

func TestResolve_NoModule(t *testing.T) {
	unsetEnv(t, EnvConfig, EnvViewID, EnvFontSize)
	r, err := Resolve(t.TempDir(), "0.1.0")
	if err != nil {
		t.Fatal(err)
	}
	if r.Options.ID != "autofit" {
		t.Errorf("ID = %q, want autofit", r.Options.ID)
	}
}

func TestResolve_File(t *testing.T) {
	unsetEnv(t, EnvConfig, EnvViewID, EnvFontSize)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `
view:
  id: eq
  initial_opacity: 0
  initial_scale: 0.5
  transition_duration: 250ms
  stale_timeout: 2s
  spring:
    stiffness: 100
text:
  size: 24
  line_height: 1.5
  frames: 3
engine:
  version: 0.1.0
`)

	r, err := Resolve(dir, "0.2.0")
	if err != nil {
		t.Fatal(err)
	}
	o := r.Options
	if o.ID != "eq" || o.InitialOpacity != 0 || o.InitialScale != 0.5 {
		t.Errorf("options = %+v", o)
	}
	if o.TransitionDuration != 250*time.Millisecond || o.StaleGenerationTimeout != 2*time.Second {
		t.Errorf("durations = %v/%v", o.TransitionDuration, o.StaleGenerationTimeout)
	}
	if o.Spring.Stiffness != 100 || o.Spring.Damping != 22 || o.Spring.Mass != 1 {
		t.Errorf("spring = %+v, want stiffness override on the default", o.Spring)
	}
	if r.Text.Size != 24 || r.Text.LineHeight != 1.5 || r.Frames != 3 {
		t.Errorf("text = %+v frames=%d", r.Text, r.Frames)
	}
}

func TestResolve_ConfigEnvAndDotEnv(t *testing.T) {
	unsetEnv(t, EnvConfig, EnvViewID, EnvFontSize)
	dir := t.TempDir()
	other := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, other, "view:\n  id: from-file\n")
	writeFile(t, filepath.Join(dir, ".env"), EnvConfig+"="+other+"\n"+EnvFontSize+"=30\n")

	r, err := Resolve(dir, "0.1.0")
	if err != nil {
		t.Fatal(err)
	}
	if r.Path != other || r.Options.ID != "from-file" {
		t.Errorf("path=%q id=%q", r.Path, r.Options.ID)
	}
	if r.Text.Size != 30 {
		t.Errorf("font size = %v, want 30 from .env", r.Text.Size)
	}

	t.Setenv(EnvViewID, "override")
	r, err = Resolve(dir, "0.1.0")
	if err != nil {
		t.Fatal(err)
	}
	if r.Options.ID != "override" {
		t.Errorf("ID = %q, want env override", r.Options.ID)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     string
		version string
		want    string
	}{
		{name: "bad yaml", yaml: "view: [", want: "failed to parse"},
		{name: "opacity out of range", yaml: "view:\n  initial_opacity: 2\n", want: "InitialOpacity"},
		{name: "negative timeout", yaml: "view:\n  stale_timeout: -1s\n", want: "StaleGenerationTimeout"},
		{name: "engine too new", yaml: "engine:\n  version: 9.0.0\n", version: "0.1.0", want: "requires v9.0.0"},
		{name: "engine not semver", yaml: "engine:\n  version: latest\n", want: "not a semantic version"},
		{name: "bad font size env", env: "big", want: EnvFontSize},
		{name: "missing font", yaml: "text:\n  font: nope.ttf\n", want: "failed to read font"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			unsetEnv(t, EnvConfig, EnvViewID, EnvFontSize)
			dir := t.TempDir()
			if tc.yaml != "" {
				writeFile(t, filepath.Join(dir, FileName), tc.yaml)
			}
			if tc.env != "" {
				t.Setenv(EnvFontSize, tc.env)
			}
			version := tc.version
			if version == "" {
				version = "0.1.0"
			}
			_, err := Resolve(dir, version)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Resolve error = %v, want containing %q", err, tc.want)
			}
		})
	}
}

func TestCheckEngineVersion_DevBuild(t *testing.T) {
	if err := checkEngineVersion("0.1.0", "0.1.0-dev"); err == nil {
		t.Error("a prerelease is older than its release")
	}
	if err := checkEngineVersion("0.0.9", "0.1.0-dev"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := checkEngineVersion("0.1.0", "unknown"); err != nil {
		t.Errorf("unparseable running version should not fail: %v", err)
	}
}

func TestSanitizeSegment(t *testing.T) {
	tests := map[string]string{
		"MyApp":  "myapp",
		"math.v": "mathv",
		"":       "autofit",
		"a_b-c":  "a_b-c",
	}
	for in, want := range tests {
		if got := sanitizeSegment(in); got != want {
			t.Errorf("sanitizeSegment(%q) = %q, want %q", in, got, want)
		}
	}
}
