// Package templates provides embedded template files for project setup.
package templates

import (
	"embed"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed init/*
var FS embed.FS

// TemplateData contains the data for template substitution.
type TemplateData struct {
	ViewID        string // e.g., "math-view"
	EngineVersion string // e.g., "0.1.0"
}

// InitFile maps an embedded template to its destination in a project.
type InitFile struct {
	Template string
	Dest     string
}

// InitFiles lists the files written by autofit init.
var InitFiles = []InitFile{
	{Template: "init/autofit.yaml.tmpl", Dest: "autofit.yaml"},
	{Template: "init/shrink.yaml.tmpl", Dest: "scenarios/shrink.yaml"},
}

// ProcessTemplate processes a template string with the given data.
func ProcessTemplate(content string, data *TemplateData) (string, error) {
	tmpl, err := template.New("").Option("missingkey=error").Parse(content)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// Render reads and processes the embedded template at path.
func Render(path string, data *TemplateData) (string, error) {
	content, err := FS.ReadFile(path)
	if err != nil {
		return "", err
	}
	return ProcessTemplate(string(content), data)
}

// ListFiles returns all files in the embedded filesystem under the given path.
func ListFiles(path string) ([]string, error) {
	var files []string

	err := fs.WalkDir(FS, path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, p)
		}
		return nil
	})

	return files, err
}
